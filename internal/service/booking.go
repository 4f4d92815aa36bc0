package service

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository"
)

var (
	ErrBookingNotFound = repository.ErrBookingNotFound
)

type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	FindAll(ctx context.Context) ([]domain.Booking, error)
	FindByID(ctx context.Context, id uint) (domain.Booking, error)
	Update(ctx context.Context, booking domain.Booking) (domain.Booking, error)
}

type BookingService struct {
	repo         BookingRepository
	destinations DestinationRepository
}

func NewBookingService(repo BookingRepository, destinations DestinationRepository) *BookingService {
	return &BookingService{
		repo:         repo,
		destinations: destinations,
	}
}

// CreateBooking stores a new booking against an existing destination. The
// status is always reset to Booked.
func (s *BookingService) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	destination, err := s.destinations.FindByID(ctx, booking.DestinationID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.destinations.FindByID -> %w", err)
	}

	booking.ID = 0
	booking.Status = domain.BookingStatusBooked

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	created.DestinationName = destination.Name

	return created, nil
}

// ListBookings returns all bookings, newest first.
func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return bookings, nil
}

// CancelBooking sets the booking status to Cancelled. Cancelling an already
// cancelled booking rewrites the same status.
func (s *BookingService) CancelBooking(ctx context.Context, id uint) (domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	booking.Cancel()

	updated, err := s.repo.Update(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
