package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lucidlearn/lucidlearn/backend/internal/config"
	"github.com/lucidlearn/lucidlearn/backend/internal/handler"
	lessonModel "github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
	"github.com/lucidlearn/lucidlearn/backend/internal/service/ai"
	examService "github.com/lucidlearn/lucidlearn/backend/internal/service/exam"
	tutorService "github.com/lucidlearn/lucidlearn/backend/internal/service/tutor"
	"github.com/lucidlearn/lucidlearn/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	lessons, cleanup, err := newLessonStore(ctx, cfg.Store)
	if err != nil {
		log.Fatalf("failed to initialize lesson store: %v", err)
	}
	defer cleanup()

	var tutorSvc *tutorService.Service
	if cfg.AI.Enabled() {
		aiSvc, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize generation service: %v", err)
			log.Println("continuing without tutoring - check the ARK_* environment variables")
		} else {
			sessions := tutorService.NewMemorySessionStore()
			tutorSvc = tutorService.NewService(lessons, sessions, aiSvc)
			go tutorSvc.RunSweeper(ctx, cfg.Session.SweepInterval, cfg.Session.TTL)
			log.Printf("tutoring service initialized, session ttl %s", cfg.Session.TTL)
		}
	} else {
		log.Println("Ark credentials not configured, tutoring routes disabled")
	}

	extractor := examService.NewExtractor(examService.PDFTextExtractor{})

	router := handler.NewRouter(lessons, tutorSvc, extractor)
	startServer(ctx, cfg.Server, router)
}

// newLessonStore opens the SQLite catalogue when a path is configured and
// falls back to the seeded in-memory store otherwise.
func newLessonStore(ctx context.Context, cfg config.StoreConfig) (lessonModel.Store, func(), error) {
	if cfg.LessonDBPath == "" {
		log.Println("LESSON_DB_PATH not set, using in-memory lesson catalogue")
		return lessonModel.NewMemoryStore(lessonModel.Seed()), func() {}, nil
	}

	sqlStore, err := store.NewSQLiteLessons(cfg.LessonDBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := sqlStore.SeedIfEmpty(ctx, lessonModel.Seed()); err != nil {
		sqlStore.Close()
		return nil, nil, err
	}

	log.Printf("lesson catalogue backed by sqlite at %s", cfg.LessonDBPath)
	return sqlStore, func() { _ = sqlStore.Close() }, nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("LucidLearn backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
