package service

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository"
)

var (
	ErrDestinationNotFound    = repository.ErrDestinationNotFound
	ErrDestinationHasBookings = repository.ErrDestinationHasBookings
)

type DestinationRepository interface {
	Create(ctx context.Context, destination domain.Destination) (domain.Destination, error)
	FindAll(ctx context.Context) ([]domain.Destination, error)
	Search(ctx context.Context, query string) ([]domain.Destination, error)
	FindByID(ctx context.Context, id uint) (domain.Destination, error)
	Update(ctx context.Context, destination domain.Destination) (domain.Destination, error)
	Delete(ctx context.Context, id uint) error
}

// BookingCounter is the slice of the booking store the destination service
// needs to enforce the delete policy.
type BookingCounter interface {
	CountByDestinationID(ctx context.Context, destinationID uint) (int64, error)
}

type DestinationService struct {
	repo     DestinationRepository
	bookings BookingCounter
}

func NewDestinationService(repo DestinationRepository, bookings BookingCounter) *DestinationService {
	return &DestinationService{
		repo:     repo,
		bookings: bookings,
	}
}

// ListDestinations returns every destination, or only those whose name or
// location contains query (case-insensitive) when query is not empty. The
// query is matched as typed, surrounding spaces included.
func (s *DestinationService) ListDestinations(ctx context.Context, query string) ([]domain.Destination, error) {
	if query == "" {
		destinations, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
		}

		return destinations, nil
	}

	destinations, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return destinations, nil
}

func (s *DestinationService) GetDestination(ctx context.Context, id uint) (domain.Destination, error) {
	destination, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return destination, nil
}

func (s *DestinationService) CreateDestination(ctx context.Context, destination domain.Destination) (domain.Destination, error) {
	created, err := s.repo.Create(ctx, destination)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateDestination overwrites every editable field of an existing destination.
func (s *DestinationService) UpdateDestination(ctx context.Context, destination domain.Destination) (domain.Destination, error) {
	existing, err := s.repo.FindByID(ctx, destination.ID)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	existing.Name = destination.Name
	existing.Location = destination.Location
	existing.Price = destination.Price
	existing.Description = destination.Description
	existing.Image = destination.Image

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteDestination refuses to delete a destination that still has bookings.
func (s *DestinationService) DeleteDestination(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	count, err := s.bookings.CountByDestinationID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.bookings.CountByDestinationID -> %w", err)
	}
	if count > 0 {
		return ErrDestinationHasBookings
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
