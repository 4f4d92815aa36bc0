package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

type Booking struct {
	ID            uint        `gorm:"primaryKey"`
	DestinationID uint        `gorm:"not null;index"`
	Destination   Destination `gorm:"foreignKey:DestinationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Name      string `gorm:"size:120;not null"`
	Email     string `gorm:"size:120;not null"`
	Phone     string `gorm:"size:40"`
	NumPeople int    `gorm:"not null;default:1;check:num_people >= 1"`
	Date      string `gorm:"size:20;not null"`
	Status    string `gorm:"size:30;not null;default:Booked"`

	CreatedAt time.Time `gorm:"not null;index"`
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&booking)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Booking{}, ErrDestinationNotFound
		}

		return Booking{}, result.Error
	}

	return booking, nil
}

// FindAll returns every booking, newest first, with its destination loaded.
func (d *BookingDAO) FindAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking

	result := d.db.WithContext(ctx).
		Preload("Destination").
		Order("created_at DESC").
		Order("id DESC").
		Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

func (d *BookingDAO) FindByID(ctx context.Context, id uint) (Booking, error) {
	var booking Booking

	result := d.db.WithContext(ctx).Preload("Destination").First(&booking, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, result.Error
	}

	return booking, nil
}

func (d *BookingDAO) Update(ctx context.Context, booking Booking) (Booking, error) {
	result := d.db.WithContext(ctx).
		Model(&Booking{ID: booking.ID}).
		Select("name", "email", "phone", "num_people", "date", "status").
		Updates(booking)
	if result.Error != nil {
		return Booking{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Booking{}, ErrBookingNotFound
	}

	return d.FindByID(ctx, booking.ID)
}

func (d *BookingDAO) CountByDestinationID(ctx context.Context, destinationID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Booking{}).
		Where("destination_id = ?", destinationID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
