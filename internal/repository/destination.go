package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository/dao"
)

var (
	ErrDestinationNotFound    = dao.ErrDestinationNotFound
	ErrDestinationHasBookings = dao.ErrDestinationHasBookings
)

type DestinationDAO interface {
	Insert(ctx context.Context, destination dao.Destination) (dao.Destination, error)
	FindAll(ctx context.Context) ([]dao.Destination, error)
	Search(ctx context.Context, query string) ([]dao.Destination, error)
	FindByID(ctx context.Context, id uint) (dao.Destination, error)
	Update(ctx context.Context, destination dao.Destination) (dao.Destination, error)
	Delete(ctx context.Context, id uint) error
}

type DestinationRepository struct {
	dao DestinationDAO
}

func NewDestinationRepository(dao DestinationDAO) *DestinationRepository {
	return &DestinationRepository{
		dao: dao,
	}
}

func (r *DestinationRepository) Create(ctx context.Context, destination domain.Destination) (domain.Destination, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(destination))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DestinationRepository) FindAll(ctx context.Context) ([]domain.Destination, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *DestinationRepository) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	found, err := r.dao.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id uint) (domain.Destination, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DestinationRepository) Update(ctx context.Context, destination domain.Destination) (domain.Destination, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(destination))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *DestinationRepository) domainToDao(d domain.Destination) dao.Destination {
	return dao.Destination{
		ID:          d.ID,
		Name:        d.Name,
		Location:    d.Location,
		Price:       d.Price,
		Description: d.Description,
		Image:       d.Image,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *DestinationRepository) daoToDomain(d dao.Destination) domain.Destination {
	return domain.Destination{
		ID:          d.ID,
		Name:        d.Name,
		Location:    d.Location,
		Price:       d.Price,
		Description: d.Description,
		Image:       d.Image,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *DestinationRepository) daosToDomain(daos []dao.Destination) []domain.Destination {
	destinations := make([]domain.Destination, len(daos))
	for i, d := range daos {
		destinations[i] = r.daoToDomain(d)
	}

	return destinations
}
