package lesson

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(lesson.NewMemoryStore(lesson.Seed())).RegisterRoutes(r)
	return r
}

func TestListLessons(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/lessons", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var summaries []lessonSummary
	if err := json.Unmarshal(resp.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(summaries) != len(lesson.Seed()) {
		t.Fatalf("expected %d lessons, got %d", len(lesson.Seed()), len(summaries))
	}
}

func TestGetLesson(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/lessons/fractions-basics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var l lesson.Lesson
	if err := json.Unmarshal(resp.Body.Bytes(), &l); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if l.Content == "" || len(l.Quiz) == 0 {
		t.Fatalf("expected full lesson payload, got %+v", l)
	}
}

func TestGetLessonNotFound(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/lessons/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
