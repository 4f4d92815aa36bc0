package domain

import "time"

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID            uint   `json:"id"`
	DestinationID uint   `json:"destination_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	NumPeople     int    `json:"num_people"`
	// Date is kept as submitted, usually YYYY-MM-DD.
	Date      string        `json:"date"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`

	// DestinationName is filled on listings only.
	DestinationName string `json:"destination_name,omitempty"`
}

// Cancel marks the booking as cancelled. Cancelling twice is a no-op.
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
