package reservations

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockPublisher is a mock implementation of events.Publisher for testing
type MockPublisher struct {
	mu          sync.Mutex
	Published   [][]byte
	PublishFunc func(ctx context.Context, topic string, msg []byte) error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, msg)
	return nil
}

// MockReservationRepo is a mock implementation of ReservationRepo for testing
type MockReservationRepo struct {
	mu           sync.RWMutex
	reservations map[uuid.UUID]*Reservation
	CreateFunc   func(ctx context.Context, reservation *Reservation) error
	GetFunc      func(ctx context.Context, id uuid.UUID) (*Reservation, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func NewMockReservationRepo() *MockReservationRepo {
	return &MockReservationRepo{
		reservations: make(map[uuid.UUID]*Reservation),
	}
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *Reservation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reservation)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *MockReservationRepo) Get(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	reservation, ok := m.reservations[id]
	if !ok {
		return nil, nil
	}
	return reservation, nil
}

func (m *MockReservationRepo) List(ctx context.Context) ([]*Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Reservation
	for _, r := range m.reservations {
		result = append(result, r)
	}
	return result, nil
}

func (m *MockReservationRepo) ListByDate(ctx context.Context, date string) ([]*Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Reservation
	for _, r := range m.reservations {
		if r.Date == date {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *MockReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reservations[id]; !ok {
		return ErrNotFound
	}
	delete(m.reservations, id)
	return nil
}

func (m *MockReservationRepo) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reservations)
}
