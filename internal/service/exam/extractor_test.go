package exam_test

import (
	"errors"
	"reflect"
	"testing"

	exam "github.com/lucidlearn/lucidlearn/backend/internal/service/exam"
)

func TestParseTextSingleQuestion(t *testing.T) {
	result := exam.ParseText("Q.1 What is 2+2? (A) 3 (B) 4 (C) 5 (D) 6 Answer: B")

	if result.TotalQuestions != 1 {
		t.Fatalf("expected 1 question, got %d", result.TotalQuestions)
	}

	q := result.Questions[0]
	if q.Number != 1 {
		t.Fatalf("unexpected number: %d", q.Number)
	}
	if q.Text != "What is 2+2?" {
		t.Fatalf("unexpected text: %q", q.Text)
	}
	if !reflect.DeepEqual(q.Options, []string{"3", "4", "5", "6"}) {
		t.Fatalf("unexpected options: %v", q.Options)
	}
	if q.Answer != "B" {
		t.Fatalf("unexpected answer: %q", q.Answer)
	}
	if q.AnswerDefaulted {
		t.Fatal("explicit answer should not be marked defaulted")
	}
	if q.Marks != 1 {
		t.Fatalf("unexpected marks: %d", q.Marks)
	}
}

func TestParseTextDefaultsAnswerToFirstOption(t *testing.T) {
	result := exam.ParseText("Q.1 What is 2+2? (A) 3 (B) 4 (C) 5 (D) 6")

	if result.TotalQuestions != 1 {
		t.Fatalf("expected 1 question, got %d", result.TotalQuestions)
	}

	q := result.Questions[0]
	if q.Answer != "A" {
		t.Fatalf("expected defaulted answer A, got %q", q.Answer)
	}
	if !q.AnswerDefaulted {
		t.Fatal("expected AnswerDefaulted to be set")
	}
	if result.DefaultedAnswers != 1 {
		t.Fatalf("expected 1 defaulted answer, got %d", result.DefaultedAnswers)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for the defaulted answer")
	}
}

func TestParseTextDropsShortBodies(t *testing.T) {
	text := "7. short\n" +
		"Q.8 Which color mixes with blue to make green? (A) Yellow (B) Red (C) Purple (D) Brown Answer: A"
	result := exam.ParseText(text)

	if result.TotalQuestions != 1 {
		t.Fatalf("expected only the real question, got %d", result.TotalQuestions)
	}
	if result.Questions[0].Number != 8 {
		t.Fatalf("unexpected surviving question: %d", result.Questions[0].Number)
	}
	if result.Dropped != 1 {
		t.Fatalf("expected 1 dropped match, got %d", result.Dropped)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for the dropped match")
	}
}

func TestParseTextDropsQuestionsWithTooFewOptions(t *testing.T) {
	result := exam.ParseText("1. Which planet is nearest the sun? (A) Mercury Answer: A")

	if result.TotalQuestions != 0 {
		t.Fatalf("expected no accepted questions, got %d", result.TotalQuestions)
	}
	if result.Dropped != 1 {
		t.Fatalf("expected 1 dropped question, got %d", result.Dropped)
	}
}

func TestParseTextMultipleQuestions(t *testing.T) {
	text := "Q1. Which planet is nearest the sun? (A) Venus (B) Mercury (C) Earth (D) Mars Answer: B\n" +
		"Q2. Which gas do plants absorb? (A) Oxygen (B) Helium (C) Carbon dioxide (D) Neon Answer: C"
	result := exam.ParseText(text)

	if result.TotalQuestions != 2 {
		t.Fatalf("expected 2 questions, got %d", result.TotalQuestions)
	}
	if result.Questions[0].Number != 1 || result.Questions[1].Number != 2 {
		t.Fatalf("unexpected numbering: %d, %d", result.Questions[0].Number, result.Questions[1].Number)
	}
	if result.Questions[0].Answer != "B" || result.Questions[1].Answer != "C" {
		t.Fatalf("unexpected answers: %q, %q", result.Questions[0].Answer, result.Questions[1].Answer)
	}
	if got := result.Questions[1].Options[2]; got != "Carbon dioxide" {
		t.Fatalf("unexpected option text: %q", got)
	}
}

type stubPDF struct {
	text  string
	pages int
	err   error
}

func (s stubPDF) Extract(_ []byte) (string, int, error) {
	return s.text, s.pages, s.err
}

func TestParseAttachesPageCountAndID(t *testing.T) {
	extractor := exam.NewExtractor(stubPDF{
		text:  "Q.1 What is 2+2? (A) 3 (B) 4 (C) 5 (D) 6 Answer: B",
		pages: 3,
	})

	result, err := extractor.Parse([]byte("%PDF-stub"))
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", result.TotalPages)
	}
	if result.ID == "" {
		t.Fatal("expected a parse id")
	}
	if result.TotalQuestions != 1 {
		t.Fatalf("expected 1 question, got %d", result.TotalQuestions)
	}
}

func TestParseUnreadablePDF(t *testing.T) {
	extractor := exam.NewExtractor(stubPDF{err: errors.New("bad xref table")})

	if _, err := extractor.Parse([]byte("not a pdf")); err == nil {
		t.Fatal("expected error for unreadable pdf")
	}
}

func TestValidateMirrorsExtraction(t *testing.T) {
	result := exam.ParseText("Q.1 What is 2+2? (A) 3 (B) 4 (C) 5 (D) 6")
	report := exam.Validate(result.Questions)

	if !report.IsValid {
		t.Fatalf("defaulted answer must not invalidate: %+v", report)
	}
	if len(report.Warnings) == 0 {
		t.Fatal("expected a warning for the defaulted answer")
	}
	if len(report.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
}
