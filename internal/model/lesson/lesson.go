package lesson

// QuizQuestion is one entry in a lesson's question bank.
type QuizQuestion struct {
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Difficulty float64  `json:"difficulty"`
}

// Lesson carries the teachable content for one unit of a course.
type Lesson struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Summary           string         `json:"summary"`
	Content           string         `json:"content"`
	PracticeQuestions []string       `json:"practiceQuestions,omitempty"`
	Quiz              []QuizQuestion `json:"quiz,omitempty"`
}
