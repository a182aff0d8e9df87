package tutor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
	tutorservice "github.com/lucidlearn/lucidlearn/backend/internal/service/tutor"
	"github.com/lucidlearn/lucidlearn/backend/pkg/utils"
)

// Handler exposes the adaptive tutoring loop over HTTP. A nil service means
// the generation backend is not configured; every route then answers 503.
type Handler struct {
	tutorSvc *tutorservice.Service
}

// New creates the tutoring handler.
func New(tutorSvc *tutorservice.Service) *Handler {
	return &Handler{tutorSvc: tutorSvc}
}

// RegisterRoutes registers tutoring routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/tutor/sessions", h.handleStartSession)
	r.Post("/tutor/messages", h.handleMessage)
	r.Post("/tutor/quiz", h.handleGenerateQuiz)
}

type sessionRequest struct {
	OwnerID  string `json:"ownerId"`
	LessonID string `json:"lessonId"`
	Message  string `json:"message,omitempty"`
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decode(w, r, false)
	if !ok {
		return
	}

	result, err := h.tutorSvc.StartSession(r.Context(), payload.OwnerID, payload.LessonID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decode(w, r, true)
	if !ok {
		return
	}

	result, err := h.tutorSvc.HandleMessage(r.Context(), payload.OwnerID, payload.LessonID, payload.Message)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decode(w, r, false)
	if !ok {
		return
	}

	items, err := h.tutorSvc.GenerateQuiz(r.Context(), payload.OwnerID, payload.LessonID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"questions": items})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, needMessage bool) (sessionRequest, bool) {
	if h.tutorSvc == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "tutoring unavailable: generation service not configured")
		return sessionRequest{}, false
	}

	var payload sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return sessionRequest{}, false
	}
	if payload.OwnerID == "" || payload.LessonID == "" {
		utils.RespondError(w, http.StatusBadRequest, "ownerId and lessonId are required")
		return sessionRequest{}, false
	}
	if needMessage && payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return sessionRequest{}, false
	}
	return payload, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, lesson.ErrNotFound) || errors.Is(err, tutorservice.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	// Remaining failures come from the generation backend.
	utils.RespondError(w, http.StatusBadGateway, err.Error())
}
