package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository/dao"
)

var (
	ErrBookingNotFound = dao.ErrBookingNotFound
)

type BookingDAO interface {
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	FindAll(ctx context.Context) ([]dao.Booking, error)
	FindByID(ctx context.Context, id uint) (dao.Booking, error)
	Update(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	CountByDestinationID(ctx context.Context, destinationID uint) (int64, error)
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(booking))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	bookings := make([]domain.Booking, len(found))
	for i, b := range found {
		bookings[i] = r.daoToDomain(b)
	}

	return bookings, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uint) (domain.Booking, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *BookingRepository) Update(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(booking))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *BookingRepository) CountByDestinationID(ctx context.Context, destinationID uint) (int64, error) {
	count, err := r.dao.CountByDestinationID(ctx, destinationID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByDestinationID -> %w", err)
	}

	return count, nil
}

func (r *BookingRepository) domainToDao(b domain.Booking) dao.Booking {
	return dao.Booking{
		ID:            b.ID,
		DestinationID: b.DestinationID,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		NumPeople:     b.NumPeople,
		Date:          b.Date,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

func (r *BookingRepository) daoToDomain(b dao.Booking) domain.Booking {
	return domain.Booking{
		ID:              b.ID,
		DestinationID:   b.DestinationID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		NumPeople:       b.NumPeople,
		Date:            b.Date,
		Status:          domain.BookingStatus(b.Status),
		CreatedAt:       b.CreatedAt,
		DestinationName: b.Destination.Name,
	}
}
