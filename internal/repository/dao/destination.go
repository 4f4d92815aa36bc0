package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrDestinationHasBookings = errors.New("destination has bookings")
)

type Destination struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:120;not null"`
	Location    string  `gorm:"size:120;not null"`
	Price       float64 `gorm:"not null;check:price >= 0"`
	Description string  `gorm:"type:text"`
	Image       string  `gorm:"size:255"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DestinationDAO struct {
	db *gorm.DB
}

func NewDestinationDAO(db *gorm.DB) *DestinationDAO {
	return &DestinationDAO{
		db: db,
	}
}

func (d *DestinationDAO) Insert(ctx context.Context, destination Destination) (Destination, error) {
	result := d.db.WithContext(ctx).Create(&destination)
	if result.Error != nil {
		return Destination{}, result.Error
	}

	return destination, nil
}

func (d *DestinationDAO) FindAll(ctx context.Context) ([]Destination, error) {
	var destinations []Destination

	result := d.db.WithContext(ctx).Order("id").Find(&destinations)
	if result.Error != nil {
		return nil, result.Error
	}

	return destinations, nil
}

// Search matches query as a case-insensitive substring of name or location.
// LIKE wildcards in query match literally.
func (d *DestinationDAO) Search(ctx context.Context, query string) ([]Destination, error) {
	var destinations []Destination

	pattern := "%" + escapeLike(query) + "%"
	result := d.db.WithContext(ctx).
		Where("name ILIKE ? OR location ILIKE ?", pattern, pattern).
		Order("id").
		Find(&destinations)
	if result.Error != nil {
		return nil, result.Error
	}

	return destinations, nil
}

func (d *DestinationDAO) FindByID(ctx context.Context, id uint) (Destination, error) {
	var destination Destination

	result := d.db.WithContext(ctx).First(&destination, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Destination{}, ErrDestinationNotFound
		}

		return Destination{}, result.Error
	}

	return destination, nil
}

func (d *DestinationDAO) Update(ctx context.Context, destination Destination) (Destination, error) {
	result := d.db.WithContext(ctx).
		Model(&Destination{ID: destination.ID}).
		Select("name", "location", "price", "description", "image", "updated_at").
		Updates(destination)
	if result.Error != nil {
		return Destination{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Destination{}, ErrDestinationNotFound
	}

	return d.FindByID(ctx, destination.ID)
}

func (d *DestinationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Destination{}, id)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrDestinationHasBookings
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDestinationNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
