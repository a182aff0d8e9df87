package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	examHandler "github.com/lucidlearn/lucidlearn/backend/internal/handler/exam"
	lessonHandler "github.com/lucidlearn/lucidlearn/backend/internal/handler/lesson"
	tutorHandler "github.com/lucidlearn/lucidlearn/backend/internal/handler/tutor"
	middlewarePkg "github.com/lucidlearn/lucidlearn/backend/internal/middleware"
	lessonModel "github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
	examService "github.com/lucidlearn/lucidlearn/backend/internal/service/exam"
	tutorService "github.com/lucidlearn/lucidlearn/backend/internal/service/tutor"
)

// NewRouter wires HTTP routes to core services. tutorSvc may be nil when the
// generation backend is not configured.
func NewRouter(lessons lessonModel.Store, tutorSvc *tutorService.Service, extractor *examService.Extractor) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		lessonHandler.New(lessons).RegisterRoutes(api)
		tutorHandler.New(tutorSvc).RegisterRoutes(api)
		examHandler.New(extractor).RegisterRoutes(api)
	})

	return r
}
