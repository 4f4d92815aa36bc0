package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

var sampleDestinations = []Destination{
	{
		Name:        "Goa Beach Escape",
		Location:    "Goa",
		Price:       5000,
		Description: "Relax on sunny beaches and enjoy water sports.",
		Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e",
	},
	{
		Name:        "Himalayan Trek",
		Location:    "Manali",
		Price:       12000,
		Description: "7-day guided trek in the Himalayas.",
		Image:       "https://images.unsplash.com/photo-1501785888041-af3ef285b470",
	},
	{
		Name:        "Kerala Backwaters",
		Location:    "Alleppey",
		Price:       8000,
		Description: "Houseboat stay and village tours.",
		Image:       "https://images.unsplash.com/photo-1502082553048-f009c37129b9",
	},
}

// SeedDestinations inserts the sample destinations when the table is empty and
// returns how many rows were written.
func SeedDestinations(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&Destination{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count destinations -> %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	rows := make([]Destination, len(sampleDestinations))
	copy(rows, sampleDestinations)

	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("insert sample destinations -> %w", err)
	}

	return len(rows), nil
}
