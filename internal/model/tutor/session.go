package tutor

import "time"

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Phase is the coarse stage of a tutoring session.
type Phase string

const (
	PhaseChat Phase = "chat"
	PhaseQuiz Phase = "quiz"
)

// Message is one transcript turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session tracks a student's in-progress work on one lesson. State is
// process-local and non-durable; a restart discards it. A single student is
// assumed not to issue concurrent requests for the same lesson, so same-key
// updates are last-write-wins.
type Session struct {
	OwnerID            string    `json:"ownerId"`
	LessonID           string    `json:"lessonId"`
	UnderstandingLevel float64   `json:"understandingLevel"`
	Transcript         []Message `json:"transcript"`
	Phase              Phase     `json:"phase"`
	Completed          bool      `json:"completed"`
	LastActive         time.Time `json:"lastActive"`
}
