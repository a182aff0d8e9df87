package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
)

// SQLiteLessons implements lesson.Store on SQLite. Question banks are kept as
// JSON columns; the catalogue is read-heavy and small.
type SQLiteLessons struct {
	db *sql.DB
}

// NewSQLiteLessons opens (creating if needed) the lesson database at dbPath.
func NewSQLiteLessons(dbPath string) (*SQLiteLessons, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// WAL keeps concurrent readers cheap.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteLessons{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteLessons) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS lessons (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		summary TEXT NOT NULL,
		content TEXT NOT NULL,
		practice_json TEXT NOT NULL,
		quiz_json TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return err
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteLessons) Close() error {
	return s.db.Close()
}

// SeedIfEmpty inserts the supplied lessons when the table has no rows.
func (s *SQLiteLessons) SeedIfEmpty(ctx context.Context, lessons []lesson.Lesson) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lessons`).Scan(&count); err != nil {
		return fmt.Errorf("count lessons: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, l := range lessons {
		if err := s.Upsert(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

// Upsert writes one lesson, replacing any existing row with the same id.
func (s *SQLiteLessons) Upsert(ctx context.Context, l lesson.Lesson) error {
	practiceJSON, err := json.Marshal(l.PracticeQuestions)
	if err != nil {
		return fmt.Errorf("marshal practice questions for %s: %w", l.ID, err)
	}
	quizJSON, err := json.Marshal(l.Quiz)
	if err != nil {
		return fmt.Errorf("marshal quiz for %s: %w", l.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO lessons (id, title, summary, content, practice_json, quiz_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			content = excluded.content,
			practice_json = excluded.practice_json,
			quiz_json = excluded.quiz_json`,
		l.ID, l.Title, l.Summary, l.Content, string(practiceJSON), string(quizJSON), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert lesson %s: %w", l.ID, err)
	}
	return nil
}

// List returns all lessons ordered by insertion time.
func (s *SQLiteLessons) List(ctx context.Context) ([]lesson.Lesson, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, summary, content, practice_json, quiz_json
		FROM lessons ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []lesson.Lesson
	for rows.Next() {
		l, err := scanLesson(rows.Scan)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lessons: %w", err)
	}
	return lessons, nil
}

// FindByID looks up one lesson.
func (s *SQLiteLessons) FindByID(ctx context.Context, id string) (lesson.Lesson, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, summary, content, practice_json, quiz_json
		FROM lessons WHERE id = ?`, id)

	l, err := scanLesson(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	if err != nil {
		return lesson.Lesson{}, err
	}
	return l, nil
}

func scanLesson(scan func(dest ...any) error) (lesson.Lesson, error) {
	var l lesson.Lesson
	var practiceJSON, quizJSON string

	if err := scan(&l.ID, &l.Title, &l.Summary, &l.Content, &practiceJSON, &quizJSON); err != nil {
		return lesson.Lesson{}, err
	}

	if err := json.Unmarshal([]byte(practiceJSON), &l.PracticeQuestions); err != nil {
		return lesson.Lesson{}, fmt.Errorf("decode practice questions for %s: %w", l.ID, err)
	}
	if err := json.Unmarshal([]byte(quizJSON), &l.Quiz); err != nil {
		return lesson.Lesson{}, fmt.Errorf("decode quiz for %s: %w", l.ID, err)
	}
	return l, nil
}
