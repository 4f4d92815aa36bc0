package request

import (
	"errors"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FieldErrors maps a form field name to the message shown next to it.
// A nil FieldErrors means the form is valid.
type FieldErrors map[string]string

// newFieldErrors converts the result of validation.ValidateStruct. Internal
// rule errors are returned unchanged.
func newFieldErrors(err error) (FieldErrors, error) {
	if err == nil {
		return nil, nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil, err
	}

	fields := FieldErrors{}
	for field, fieldErr := range errs {
		fields[field] = fieldErr.Error()
	}

	return fields, nil
}

func trim(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}

	return nil
}

func nonNegativeNumber(value interface{}) error {
	s, _ := value.(string)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("must be a number")
	}
	if f < 0 {
		return errors.New("must be no less than 0")
	}

	return nil
}

func positiveInteger(value interface{}) error {
	s, _ := value.(string)
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("must be a whole number")
	}
	if n < 1 {
		return errors.New("must be no less than 1")
	}

	return nil
}
