package api

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/service"
)

// memoryStore backs both repositories in router tests.
type memoryStore struct {
	mu           sync.Mutex
	destinations map[uint]domain.Destination
	bookings     map[uint]domain.Booking
	nextDestID   uint
	nextBookID   uint
	clock        time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		destinations: map[uint]domain.Destination{},
		bookings:     map[uint]domain.Booking{},
		clock:        time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memoryStore) repositories() Repositories {
	return Repositories{
		Destinations: &memoryDestinations{m},
		Bookings:     &memoryBookings{m},
	}
}

func (m *memoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memoryStore) destination(id uint) (domain.Destination, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.destinations[id]
	return d, ok
}

func (m *memoryStore) booking(id uint) (domain.Booking, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	return b, ok
}

func (m *memoryStore) destinationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.destinations)
}

func (m *memoryStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

type memoryDestinations struct {
	*memoryStore
}

func (r *memoryDestinations) Create(_ context.Context, d domain.Destination) (domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextDestID++
	d.ID = r.nextDestID
	d.CreatedAt = r.tick()
	d.UpdatedAt = d.CreatedAt
	r.destinations[d.ID] = d

	return d, nil
}

func (r *memoryDestinations) FindAll(_ context.Context) ([]domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sorted(func(domain.Destination) bool { return true }), nil
}

func (r *memoryDestinations) Search(_ context.Context, query string) ([]domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := strings.ToLower(query)
	return r.sorted(func(d domain.Destination) bool {
		return strings.Contains(strings.ToLower(d.Name), q) || strings.Contains(strings.ToLower(d.Location), q)
	}), nil
}

func (r *memoryDestinations) sorted(keep func(domain.Destination) bool) []domain.Destination {
	var out []domain.Destination
	for _, d := range r.destinations {
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (r *memoryDestinations) FindByID(_ context.Context, id uint) (domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.destinations[id]
	if !ok {
		return domain.Destination{}, service.ErrDestinationNotFound
	}

	return d, nil
}

func (r *memoryDestinations) Update(_ context.Context, d domain.Destination) (domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.destinations[d.ID]; !ok {
		return domain.Destination{}, service.ErrDestinationNotFound
	}
	d.UpdatedAt = r.tick()
	r.destinations[d.ID] = d

	return d, nil
}

func (r *memoryDestinations) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.destinations[id]; !ok {
		return service.ErrDestinationNotFound
	}
	for _, b := range r.bookings {
		if b.DestinationID == id {
			return service.ErrDestinationHasBookings
		}
	}
	delete(r.destinations, id)

	return nil
}

type memoryBookings struct {
	*memoryStore
}

func (r *memoryBookings) Create(_ context.Context, b domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.destinations[b.DestinationID]
	if !ok {
		return domain.Booking{}, service.ErrDestinationNotFound
	}

	r.nextBookID++
	b.ID = r.nextBookID
	b.CreatedAt = r.tick()
	r.bookings[b.ID] = b
	b.DestinationName = d.Name

	return b, nil
}

func (r *memoryBookings) FindAll(_ context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		b.DestinationName = r.destinations[b.DestinationID].Name
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (r *memoryBookings) FindByID(_ context.Context, id uint) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return domain.Booking{}, service.ErrBookingNotFound
	}

	return b, nil
}

func (r *memoryBookings) Update(_ context.Context, b domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return domain.Booking{}, service.ErrBookingNotFound
	}
	r.bookings[b.ID] = b

	return b, nil
}

func (r *memoryBookings) CountByDestinationID(_ context.Context, destinationID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, b := range r.bookings {
		if b.DestinationID == destinationID {
			n++
		}
	}

	return n, nil
}
