package notice

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Storage keeps the notices of a screen.
type Storage interface {
	// Create stores a new notice.
	Create(ctx context.Context, n Notice) error

	// List returns stored notices in creation order.
	List(ctx context.Context) ([]Notice, error)

	// Delete removes notices by ID. Unknown IDs are ignored.
	Delete(ctx context.Context, ids ...uuid.UUID) error

	// Clear removes every notice.
	Clear(ctx context.Context) error
}

// MemoryStorage is an in-memory Storage.
type MemoryStorage struct {
	mu      sync.RWMutex
	notices []Notice
}

// NewMemoryStorage creates an empty in-memory notice storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Create(ctx context.Context, n Notice) error {
	if n.ID == uuid.Nil {
		return errors.New("notice ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.notices, func(existing Notice) bool { return existing.ID == n.ID }) {
		return ErrDuplicateNotice
	}
	s.notices = append(s.notices, n)
	return nil
}

func (s *MemoryStorage) List(ctx context.Context) ([]Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notices), nil
}

func (s *MemoryStorage) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notices = slices.DeleteFunc(s.notices, func(n Notice) bool {
		return slices.Contains(ids, n.ID)
	})
	return nil
}

func (s *MemoryStorage) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.notices = nil
	s.mu.Unlock()
	return nil
}
