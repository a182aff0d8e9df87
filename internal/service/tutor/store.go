package tutor

import (
	"sync"
	"time"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/tutor"
)

// SessionStore holds tutoring sessions keyed by owner and lesson. The store
// is injected into the service so deployments can bound its growth.
type SessionStore interface {
	Get(ownerID, lessonID string) (tutor.Session, bool)
	Put(session tutor.Session)
	Delete(ownerID, lessonID string)
	SweepExpired(olderThan time.Time) int
}

// MemorySessionStore implements SessionStore with a two-level in-memory map.
// Entries survive only for the process lifetime.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]tutor.Session
}

// NewMemorySessionStore returns an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]map[string]tutor.Session),
	}
}

// Get returns the session for the owner/lesson pair.
func (s *MemorySessionStore) Get(ownerID, lessonID string) (tutor.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[ownerID][lessonID]
	return session, ok
}

// Put stores the session, overwriting any previous entry for its pair.
func (s *MemorySessionStore) Put(session tutor.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byLesson, ok := s.sessions[session.OwnerID]
	if !ok {
		byLesson = make(map[string]tutor.Session)
		s.sessions[session.OwnerID] = byLesson
	}
	byLesson[session.LessonID] = session
}

// Delete removes the session for the owner/lesson pair, if present.
func (s *MemorySessionStore) Delete(ownerID, lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byLesson, ok := s.sessions[ownerID]
	if !ok {
		return
	}
	delete(byLesson, lessonID)
	if len(byLesson) == 0 {
		delete(s.sessions, ownerID)
	}
}

// SweepExpired drops sessions whose last activity predates olderThan and
// reports how many were removed.
func (s *MemorySessionStore) SweepExpired(olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for ownerID, byLesson := range s.sessions {
		for lessonID, session := range byLesson {
			if session.LastActive.Before(olderThan) {
				delete(byLesson, lessonID)
				removed++
			}
		}
		if len(byLesson) == 0 {
			delete(s.sessions, ownerID)
		}
	}
	return removed
}
