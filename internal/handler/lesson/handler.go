package lesson

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
	"github.com/lucidlearn/lucidlearn/backend/pkg/utils"
)

// Handler serves the lesson catalogue.
type Handler struct {
	lessons lesson.Store
}

// New creates the lesson handler.
func New(lessons lesson.Store) *Handler {
	return &Handler{lessons: lessons}
}

// RegisterRoutes registers lesson routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/lessons", h.handleList)
	r.Get("/lessons/{lessonID}", h.handleGet)
}

type lessonSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.lessons.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to list lessons")
		return
	}

	summaries := make([]lessonSummary, 0, len(lessons))
	for _, l := range lessons {
		summaries = append(summaries, lessonSummary{ID: l.ID, Title: l.Title, Summary: l.Summary})
	}
	utils.RespondJSON(w, http.StatusOK, summaries)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "lessonID")

	l, err := h.lessons.FindByID(r.Context(), id)
	if errors.Is(err, lesson.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "lesson not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load lesson")
		return
	}

	utils.RespondJSON(w, http.StatusOK, l)
}
