package tutor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
	"github.com/lucidlearn/lucidlearn/backend/internal/model/tutor"
)

// Tuning constants for the adaptive tutoring loop.
const (
	initialLevel = 1.0
	maxLevel     = 5.0
	levelStep    = 0.5

	// A turn only counts toward the understanding level when the student
	// writes more than this many words. Deliberately coarse; not a scored
	// assessment.
	longMessageWords = 20

	// Transcript entries handed to the model as conversation history.
	historyWindow = 3

	// Transcript length at which the student is considered quiz-ready.
	readyTranscriptLen = 5

	maxQuizQuestions        = 5
	explanationContextChars = 500
)

// ErrSessionNotFound is returned when no session exists for an owner/lesson
// pair. Callers must start a session before chatting or generating a quiz.
var ErrSessionNotFound = errors.New("session not found")

// Generator abstracts the text-generation backend so the service can be
// exercised without live credentials.
type Generator interface {
	Generate(ctx context.Context, system string, history []tutor.Message, query string) (string, error)
}

// StartResult is the outcome of opening a tutoring session.
type StartResult struct {
	WelcomeMessage string `json:"welcomeMessage"`
	LessonTitle    string `json:"lessonTitle"`
	FirstContent   string `json:"firstContent"`
}

// TurnResult is the outcome of one chat turn.
type TurnResult struct {
	Response           string  `json:"response"`
	ShouldStartQuiz    bool    `json:"shouldStartQuiz"`
	UnderstandingLevel float64 `json:"understandingLevel"`
}

// QuizItem is a bank question enriched with a generated explanation.
type QuizItem struct {
	lesson.QuizQuestion
	Explanation string `json:"explanation"`
}

// Service drives the adaptive tutoring loop for one process.
type Service struct {
	lessons  lesson.Store
	sessions SessionStore
	gen      Generator
}

// NewService wires the session manager to its collaborators.
func NewService(lessons lesson.Store, sessions SessionStore, gen Generator) *Service {
	return &Service{
		lessons:  lessons,
		sessions: sessions,
		gen:      gen,
	}
}

// StartSession creates (or overwrites) the session for the owner/lesson pair
// and produces the opening material. Both generation calls are synchronous
// and unretried; a failure propagates to the caller.
func (s *Service) StartSession(ctx context.Context, ownerID, lessonID string) (StartResult, error) {
	l, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return StartResult{}, err
	}

	s.sessions.Put(tutor.Session{
		OwnerID:            ownerID,
		LessonID:           lessonID,
		UnderstandingLevel: initialLevel,
		Transcript:         []tutor.Message{},
		Phase:              tutor.PhaseChat,
		LastActive:         time.Now().UTC(),
	})

	welcome, err := s.gen.Generate(ctx, tutorSystemPrompt(l, initialLevel), nil, welcomeQuery(l))
	if err != nil {
		return StartResult{}, fmt.Errorf("generate welcome: %w", err)
	}

	firstContent, err := s.gen.Generate(ctx, tutorSystemPrompt(l, initialLevel), nil, adaptContentQuery(l, initialLevel))
	if err != nil {
		return StartResult{}, fmt.Errorf("adapt lesson content: %w", err)
	}

	return StartResult{
		WelcomeMessage: welcome,
		LessonTitle:    l.Title,
		FirstContent:   firstContent,
	}, nil
}

// HandleMessage records one student message, synthesizes the tutor's reply,
// and updates the understanding level heuristic.
func (s *Service) HandleMessage(ctx context.Context, ownerID, lessonID, userMessage string) (TurnResult, error) {
	session, ok := s.sessions.Get(ownerID, lessonID)
	if !ok {
		return TurnResult{}, ErrSessionNotFound
	}

	l, err := s.lessons.FindByID(ctx, session.LessonID)
	if err != nil {
		return TurnResult{}, err
	}

	history := lastMessages(session.Transcript, historyWindow)
	session.Transcript = append(session.Transcript, tutor.Message{Role: tutor.RoleUser, Content: userMessage})

	reply, err := s.gen.Generate(ctx, tutorSystemPrompt(l, session.UnderstandingLevel), history, userMessage)
	if err != nil {
		return TurnResult{}, fmt.Errorf("generate reply: %w", err)
	}
	session.Transcript = append(session.Transcript, tutor.Message{Role: tutor.RoleAssistant, Content: reply})

	if len(strings.Fields(userMessage)) > longMessageWords && session.UnderstandingLevel < maxLevel {
		session.UnderstandingLevel += levelStep
		if session.UnderstandingLevel > maxLevel {
			session.UnderstandingLevel = maxLevel
		}
	}

	// Signal only: the phase flips when the caller asks for the quiz.
	ready := len(session.Transcript) >= readyTranscriptLen &&
		session.Phase == tutor.PhaseChat &&
		!session.Completed

	session.LastActive = time.Now().UTC()
	s.sessions.Put(session)

	return TurnResult{
		Response:           reply,
		ShouldStartQuiz:    ready,
		UnderstandingLevel: session.UnderstandingLevel,
	}, nil
}

// GenerateQuiz selects bank questions the student is ready for and attaches a
// generated explanation to each. Explanations are requested concurrently; any
// single failure discards the whole batch.
func (s *Service) GenerateQuiz(ctx context.Context, ownerID, lessonID string) ([]QuizItem, error) {
	session, ok := s.sessions.Get(ownerID, lessonID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	l, err := s.lessons.FindByID(ctx, session.LessonID)
	if err != nil {
		return nil, err
	}

	maxDifficulty := session.UnderstandingLevel + 1
	selected := make([]lesson.QuizQuestion, 0, maxQuizQuestions)
	for _, q := range l.Quiz {
		if q.Difficulty <= maxDifficulty {
			selected = append(selected, q)
			if len(selected) == maxQuizQuestions {
				break
			}
		}
	}

	items := make([]QuizItem, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range selected {
		g.Go(func() error {
			explanation, err := s.gen.Generate(gctx, explanationSystemPrompt, nil, explanationQuery(l, q))
			if err != nil {
				return fmt.Errorf("explain question %d: %w", i+1, err)
			}
			items[i] = QuizItem{QuizQuestion: q, Explanation: explanation}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	session.Phase = tutor.PhaseQuiz
	session.LastActive = time.Now().UTC()
	s.sessions.Put(session)

	return items, nil
}

// RunSweeper evicts idle sessions until ctx is cancelled.
func (s *Service) RunSweeper(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sessions.SweepExpired(time.Now().UTC().Add(-ttl)); removed > 0 {
				log.Printf("[tutor] evicted %d idle sessions", removed)
			}
		}
	}
}

func lastMessages(transcript []tutor.Message, n int) []tutor.Message {
	if len(transcript) <= n {
		return transcript
	}
	return transcript[len(transcript)-n:]
}
