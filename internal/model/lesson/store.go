package lesson

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lesson id has no backing record.
var ErrNotFound = errors.New("lesson not found")

// Store exposes lesson retrieval for services and HTTP handlers.
type Store interface {
	List(ctx context.Context) ([]Lesson, error)
	FindByID(ctx context.Context, id string) (Lesson, error)
}

// MemoryStore implements Store with an in-memory slice, suitable for
// development and tests.
type MemoryStore struct {
	items []Lesson
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied lessons.
func NewMemoryStore(items []Lesson) *MemoryStore {
	return &MemoryStore{items: append([]Lesson(nil), items...)}
}

// List returns all lessons in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]Lesson, error) {
	return append([]Lesson(nil), s.items...), nil
}

// FindByID looks up a lesson by identifier.
func (s *MemoryStore) FindByID(_ context.Context, id string) (Lesson, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Lesson{}, ErrNotFound
}
