package request

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
)

type DestinationForm struct {
	Name        string `form:"name" json:"name"`
	Location    string `form:"location" json:"location"`
	Price       string `form:"price" json:"price"`
	Description string `form:"description" json:"description"`
	Image       string `form:"image" json:"image"`
}

// NewDestinationForm prefills the edit form with the stored values.
func NewDestinationForm(d domain.Destination) DestinationForm {
	return DestinationForm{
		Name:        d.Name,
		Location:    d.Location,
		Price:       strconv.FormatFloat(d.Price, 'f', -1, 64),
		Description: d.Description,
		Image:       d.Image,
	}
}

func (f *DestinationForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.RuneLength(0, 120)),
		validation.Field(&f.Location, validation.Required, validation.RuneLength(0, 120)),
		validation.Field(&f.Price, validation.Required, validation.By(nonNegativeNumber)),
		validation.Field(&f.Image, validation.RuneLength(0, 255)),
	)
}

// Parse trims and validates the form. On success it returns the destination
// without an ID; otherwise the returned FieldErrors is non-nil.
func (f *DestinationForm) Parse() (domain.Destination, FieldErrors) {
	trim(&f.Name, &f.Location, &f.Price, &f.Image)

	fields, err := newFieldErrors(f.Validate())
	if err != nil {
		return domain.Destination{}, FieldErrors{"form": err.Error()}
	}
	if fields != nil {
		return domain.Destination{}, fields
	}

	price, _ := strconv.ParseFloat(f.Price, 64)

	return domain.Destination{
		Name:        f.Name,
		Location:    f.Location,
		Price:       price,
		Description: f.Description,
		Image:       f.Image,
	}, nil
}
