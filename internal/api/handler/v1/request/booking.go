package request

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
)

type BookingForm struct {
	Name      string `form:"name" json:"name"`
	Email     string `form:"email" json:"email"`
	Phone     string `form:"phone" json:"phone"`
	NumPeople string `form:"num_people" json:"num_people"`
	Date      string `form:"date" json:"date"`
}

func (f *BookingForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.RuneLength(0, 120)),
		validation.Field(&f.Email, validation.Required, is.Email, validation.RuneLength(0, 120)),
		validation.Field(&f.Phone, validation.RuneLength(0, 40)),
		validation.Field(&f.NumPeople, validation.Required, validation.By(positiveInteger)),
		validation.Field(&f.Date, validation.Required, validation.RuneLength(0, 20)),
	)
}

// Parse returns a booking for destinationID. The date is kept as typed.
func (f *BookingForm) Parse(destinationID uint) (domain.Booking, FieldErrors) {
	trim(&f.Name, &f.Email, &f.Phone, &f.NumPeople, &f.Date)

	fields, err := newFieldErrors(f.Validate())
	if err != nil {
		return domain.Booking{}, FieldErrors{"form": err.Error()}
	}
	if fields != nil {
		return domain.Booking{}, fields
	}

	numPeople, _ := strconv.Atoi(f.NumPeople)

	return domain.Booking{
		DestinationID: destinationID,
		Name:          f.Name,
		Email:         f.Email,
		Phone:         f.Phone,
		NumPeople:     numPeople,
		Date:          f.Date,
		Status:        domain.BookingStatusBooked,
	}, nil
}
