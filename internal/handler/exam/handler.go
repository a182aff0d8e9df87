package exam

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/exam"
	examservice "github.com/lucidlearn/lucidlearn/backend/internal/service/exam"
	"github.com/lucidlearn/lucidlearn/backend/pkg/utils"
)

const maxPDFBytes = 20 << 20

// Handler exposes exam-text extraction and validation.
type Handler struct {
	extractor *examservice.Extractor
}

// New creates the exam handler.
func New(extractor *examservice.Extractor) *Handler {
	return &Handler{extractor: extractor}
}

// RegisterRoutes registers exam routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/exam/parse", h.handleParse)
	r.Post("/exam/validate", h.handleValidate)
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPDFBytes))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(data) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "request body must contain PDF bytes")
		return
	}

	result, err := h.extractor.Parse(data)
	if err != nil {
		utils.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Questions []exam.Question `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	utils.RespondJSON(w, http.StatusOK, examservice.Validate(payload.Questions))
}
