package contact

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockContactMessageRepo is a mock implementation of ContactMessageRepo for testing
type MockContactMessageRepo struct {
	mu         sync.RWMutex
	messages   map[uuid.UUID]*ContactMessage
	CreateFunc func(ctx context.Context, message *ContactMessage) error
}

func NewMockContactMessageRepo() *MockContactMessageRepo {
	return &MockContactMessageRepo{
		messages: make(map[uuid.UUID]*ContactMessage),
	}
}

func (m *MockContactMessageRepo) Create(ctx context.Context, message *ContactMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[message.ID] = message
	return nil
}

func (m *MockContactMessageRepo) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages)
}
