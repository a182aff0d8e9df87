package tutor

import (
	"fmt"
	"strings"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/lesson"
)

const explanationSystemPrompt = "You are a tutor writing brief, friendly answer explanations for quiz questions."

// tutorSystemPrompt grounds the model in the full lesson and the student's
// current level before each conversational turn.
func tutorSystemPrompt(l lesson.Lesson, level float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a patient tutor guiding a student through the lesson %q.\n\n", l.Title)
	b.WriteString("Lesson content:\n")
	b.WriteString(l.Content)

	if len(l.PracticeQuestions) > 0 {
		b.WriteString("\n\nPractice questions to draw on:\n")
		for _, q := range l.PracticeQuestions {
			b.WriteString("- ")
			b.WriteString(q)
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\nThe student's current understanding level is %.1f out of 5. ", level)
	b.WriteString("Match your explanations to that level, answer in a few short sentences, and stay encouraging.")
	return b.String()
}

func welcomeQuery(l lesson.Lesson) string {
	return fmt.Sprintf(
		"Write a two or three sentence welcome for a student who is about to start the lesson %q. Lesson summary: %s",
		l.Title, l.Summary,
	)
}

func adaptContentQuery(l lesson.Lesson, level float64) string {
	return fmt.Sprintf(
		"Rewrite the lesson content below for a student at understanding level %.1f of 5. "+
			"Keep every idea, simplify the wording, and use short paragraphs.\n\n%s",
		level, l.Content,
	)
}

func explanationQuery(l lesson.Lesson, q lesson.QuizQuestion) string {
	excerpt := l.Content
	if len(excerpt) > explanationContextChars {
		excerpt = excerpt[:explanationContextChars]
	}
	return fmt.Sprintf(
		"In one or two sentences, explain the idea a student needs to answer this question.\n\nLesson excerpt:\n%s\n\nQuestion: %s",
		excerpt, q.Text,
	)
}
