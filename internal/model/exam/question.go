package exam

// Question is one multiple-choice record mined from exam text. Extraction is
// best effort: a missing answer marker defaults to the first option's letter,
// and under-supported matches are dropped rather than surfaced individually.
type Question struct {
	Number          int      `json:"questionNumber"`
	Text            string   `json:"questionText"`
	Options         []string `json:"options"`
	Answer          string   `json:"answer"`
	AnswerDefaulted bool     `json:"answerDefaulted,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"` // attached by a later manual step
	Marks           int      `json:"marks"`
}

// ParseResult aggregates one extraction run. Dropped and DefaultedAnswers
// make the extractor's silent policies observable to the caller.
type ParseResult struct {
	ID               string     `json:"id"`
	TotalPages       int        `json:"totalPages"`
	TotalQuestions   int        `json:"totalQuestions"`
	Questions        []Question `json:"questions"`
	Dropped          int        `json:"dropped"`
	DefaultedAnswers int        `json:"defaultedAnswers"`
	Warnings         []string   `json:"warnings,omitempty"`
}

// ValidationReport is the outcome of a pure audit pass over extracted
// questions. Warnings never affect validity.
type ValidationReport struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
