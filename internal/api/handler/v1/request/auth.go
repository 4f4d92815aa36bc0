package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (f *LoginForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Username, validation.Required, validation.By(notBlank)),
		validation.Field(&f.Password, validation.Required, validation.By(notBlank)),
	)
}

// Parse validates the form. Both fields are compared as typed.
func (f *LoginForm) Parse() FieldErrors {
	fields, err := newFieldErrors(f.Validate())
	if err != nil {
		return FieldErrors{"form": err.Error()}
	}

	return fields
}
