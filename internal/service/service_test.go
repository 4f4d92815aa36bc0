package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
)

type mockDestinationRepo struct {
	mock.Mock
}

func (m *mockDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.Destination), args.Error(1)
}

func (m *mockDestinationRepo) FindAll(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *mockDestinationRepo) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *mockDestinationRepo) FindByID(ctx context.Context, id uint) (domain.Destination, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Destination), args.Error(1)
}

func (m *mockDestinationRepo) Update(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.Destination), args.Error(1)
}

func (m *mockDestinationRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) CountByDestinationID(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var goa = domain.Destination{ID: 1, Name: "Goa Beach Escape", Location: "Goa", Price: 5000}

func TestDestinationService_ListDestinations(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query lists all", func(t *testing.T) {
		repo := &mockDestinationRepo{}
		repo.On("FindAll", ctx).Return([]domain.Destination{goa}, nil)

		got, err := NewDestinationService(repo, &mockBookingRepo{}).ListDestinations(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []domain.Destination{goa}, got)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("query is searched as typed", func(t *testing.T) {
		repo := &mockDestinationRepo{}
		repo.On("Search", ctx, " goa ").Return([]domain.Destination{}, nil)

		got, err := NewDestinationService(repo, &mockBookingRepo{}).ListDestinations(ctx, " goa ")
		require.NoError(t, err)
		assert.Empty(t, got)
		repo.AssertExpectations(t)
	})

	t.Run("whitespace query is a search", func(t *testing.T) {
		repo := &mockDestinationRepo{}
		repo.On("Search", ctx, " ").Return([]domain.Destination{goa}, nil)

		got, err := NewDestinationService(repo, &mockBookingRepo{}).ListDestinations(ctx, " ")
		require.NoError(t, err)
		assert.Equal(t, []domain.Destination{goa}, got)
		repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}

func TestDestinationService_UpdateDestination(t *testing.T) {
	ctx := context.Background()

	repo := &mockDestinationRepo{}
	repo.On("FindByID", ctx, uint(1)).Return(goa, nil)

	want := goa
	want.Name = "Goa Deluxe"
	want.Price = 7000
	want.Description = "Now with breakfast."
	repo.On("Update", ctx, want).Return(want, nil)

	got, err := NewDestinationService(repo, &mockBookingRepo{}).UpdateDestination(ctx, domain.Destination{
		ID:          1,
		Name:        "Goa Deluxe",
		Location:    "Goa",
		Price:       7000,
		Description: "Now with breakfast.",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestDestinationService_UpdateMissing(t *testing.T) {
	ctx := context.Background()

	repo := &mockDestinationRepo{}
	repo.On("FindByID", ctx, uint(9)).Return(domain.Destination{}, ErrDestinationNotFound)

	_, err := NewDestinationService(repo, &mockBookingRepo{}).UpdateDestination(ctx, domain.Destination{ID: 9})
	assert.ErrorIs(t, err, ErrDestinationNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDestinationService_DeleteDestination(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked when bookings exist", func(t *testing.T) {
		repo := &mockDestinationRepo{}
		repo.On("FindByID", ctx, uint(1)).Return(goa, nil)
		bookings := &mockBookingRepo{}
		bookings.On("CountByDestinationID", ctx, uint(1)).Return(int64(2), nil)

		err := NewDestinationService(repo, bookings).DeleteDestination(ctx, 1)
		assert.ErrorIs(t, err, ErrDestinationHasBookings)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deleted when unused", func(t *testing.T) {
		repo := &mockDestinationRepo{}
		repo.On("FindByID", ctx, uint(1)).Return(goa, nil)
		repo.On("Delete", ctx, uint(1)).Return(nil)
		bookings := &mockBookingRepo{}
		bookings.On("CountByDestinationID", ctx, uint(1)).Return(int64(0), nil)

		require.NoError(t, NewDestinationService(repo, bookings).DeleteDestination(ctx, 1))
		repo.AssertExpectations(t)
	})

	t.Run("missing destination", func(t *testing.T) {
		repo := &mockDestinationRepo{}
		repo.On("FindByID", ctx, uint(3)).Return(domain.Destination{}, ErrDestinationNotFound)

		err := NewDestinationService(repo, &mockBookingRepo{}).DeleteDestination(ctx, 3)
		assert.ErrorIs(t, err, ErrDestinationNotFound)
	})
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	destinations := &mockDestinationRepo{}
	destinations.On("FindByID", ctx, uint(1)).Return(goa, nil)

	in := domain.Booking{DestinationID: 1, Name: "A", Email: "a@b.com", Phone: "123", NumPeople: 2, Date: "2025-01-01", Status: "Whatever"}
	stored := in
	stored.Status = domain.BookingStatusBooked

	repo := &mockBookingRepo{}
	repo.On("Create", ctx, stored).Return(func() domain.Booking {
		b := stored
		b.ID = 10
		return b
	}(), nil)

	got, err := NewBookingService(repo, destinations).CreateBooking(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, uint(10), got.ID)
	assert.Equal(t, domain.BookingStatusBooked, got.Status)
	assert.Equal(t, "Goa Beach Escape", got.DestinationName)
	repo.AssertExpectations(t)
}

func TestBookingService_CreateBookingUnknownDestination(t *testing.T) {
	ctx := context.Background()

	destinations := &mockDestinationRepo{}
	destinations.On("FindByID", ctx, uint(2)).Return(domain.Destination{}, ErrDestinationNotFound)
	repo := &mockBookingRepo{}

	_, err := NewBookingService(repo, destinations).CreateBooking(ctx, domain.Booking{DestinationID: 2})
	assert.ErrorIs(t, err, ErrDestinationNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_CancelBookingTwice(t *testing.T) {
	ctx := context.Background()

	booked := domain.Booking{ID: 4, DestinationID: 1, Status: domain.BookingStatusBooked}
	cancelled := booked
	cancelled.Status = domain.BookingStatusCancelled

	repo := &mockBookingRepo{}
	repo.On("FindByID", ctx, uint(4)).Return(booked, nil).Once()
	repo.On("FindByID", ctx, uint(4)).Return(cancelled, nil).Once()
	repo.On("Update", ctx, cancelled).Return(cancelled, nil).Twice()

	svc := NewBookingService(repo, &mockDestinationRepo{})

	got, err := svc.CancelBooking(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)

	got, err = svc.CancelBooking(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	repo.AssertExpectations(t)
}

func TestBookingService_CancelMissing(t *testing.T) {
	ctx := context.Background()

	repo := &mockBookingRepo{}
	repo.On("FindByID", ctx, uint(8)).Return(domain.Booking{}, ErrBookingNotFound)

	_, err := NewBookingService(repo, &mockDestinationRepo{}).CancelBooking(ctx, 8)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingService_ListBookingsError(t *testing.T) {
	ctx := context.Background()

	repo := &mockBookingRepo{}
	repo.On("FindAll", ctx).Return([]domain.Booking(nil), errors.New("boom"))

	_, err := NewBookingService(repo, &mockDestinationRepo{}).ListBookings(ctx)
	assert.ErrorContains(t, err, "s.repo.FindAll -> boom")
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(AdminCredentials{Username: "admin", Password: "password"})

	assert.NoError(t, svc.Login(ctx, "admin", "password"))
	assert.ErrorIs(t, svc.Login(ctx, "admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Login(ctx, "root", "password"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Login(ctx, "", ""), ErrInvalidCredentials)
}

func TestAuthService_NoPasswordConfigured(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(AdminCredentials{Username: "admin"})

	assert.False(t, svc.LoginEnabled())
	assert.ErrorIs(t, svc.Login(ctx, "admin", ""), ErrAdminLoginDisabled)
}

func TestAuthService_SetCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(AdminCredentials{Username: "admin", Password: "old"})

	svc.SetCredentials(AdminCredentials{Username: "admin", Password: "new"})

	assert.ErrorIs(t, svc.Login(ctx, "admin", "old"), ErrInvalidCredentials)
	assert.NoError(t, svc.Login(ctx, "admin", "new"))
}
