package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
)

func newTestStore(t *testing.T) *SQLiteLessons {
	t.Helper()

	s, err := NewSQLiteLessons(filepath.Join(t.TempDir(), "lessons.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSeedAndRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed := lesson.Seed()
	if err := s.SeedIfEmpty(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := s.FindByID(ctx, seed[0].ID)
	if err != nil {
		t.Fatalf("FindByID err: %v", err)
	}
	if got.Title != seed[0].Title {
		t.Fatalf("unexpected title: %q", got.Title)
	}
	if !reflect.DeepEqual(got.Quiz, seed[0].Quiz) {
		t.Fatalf("quiz bank did not round-trip:\n got %+v\nwant %+v", got.Quiz, seed[0].Quiz)
	}
	if !reflect.DeepEqual(got.PracticeQuestions, seed[0].PracticeQuestions) {
		t.Fatalf("practice questions did not round-trip: %v", got.PracticeQuestions)
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SeedIfEmpty(ctx, lesson.Seed()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := s.SeedIfEmpty(ctx, lesson.Seed()); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	lessons, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(lessons) != len(lesson.Seed()) {
		t.Fatalf("expected %d lessons, got %d", len(lesson.Seed()), len(lessons))
	}
}

func TestFindByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindByID(context.Background(), "missing")
	if !errors.Is(err, lesson.ErrNotFound) {
		t.Fatalf("expected lesson.ErrNotFound, got %v", err)
	}
}

func TestUpsertReplacesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l := lesson.Seed()[0]
	if err := s.Upsert(ctx, l); err != nil {
		t.Fatalf("insert: %v", err)
	}

	l.Title = "Fractions, Revised"
	if err := s.Upsert(ctx, l); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.FindByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("FindByID err: %v", err)
	}
	if got.Title != "Fractions, Revised" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
}
