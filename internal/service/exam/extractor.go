package exam

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/exam"
)

// Acceptance thresholds for mined questions.
const (
	// Bodies shorter than this are treated as false positives, e.g. a page
	// header that happens to match the numeric marker.
	minQuestionBody = 10

	minOptions   = 2
	defaultMarks = 1
)

// Extractor converts exam PDFs into structured multiple-choice records.
type Extractor struct {
	pdf TextExtractor
}

// NewExtractor wires the extractor to a PDF text backend.
func NewExtractor(pdf TextExtractor) *Extractor {
	return &Extractor{pdf: pdf}
}

// Parse decodes the PDF and mines its text for questions. Unreadable bytes
// fail the whole call; under-supported questions are dropped and counted.
func (e *Extractor) Parse(data []byte) (exam.ParseResult, error) {
	text, pages, err := e.pdf.Extract(data)
	if err != nil {
		return exam.ParseResult{}, fmt.Errorf("unreadable pdf: %w", err)
	}

	result := ParseText(text)
	result.ID = uuid.NewString()
	result.TotalPages = pages

	if result.Dropped > 0 || result.DefaultedAnswers > 0 {
		log.Printf("[exam] parse %s: %d questions kept, %d dropped, %d defaulted answers",
			result.ID, result.TotalQuestions, result.Dropped, result.DefaultedAnswers)
	}
	return result, nil
}

// optionSpan is one recognized option marker with absolute text offsets.
type optionSpan struct {
	letter    string
	markStart int
	markEnd   int
}

// ParseText assembles question records from the lexed marker stream. Each
// question owns the text between its marker and the next question marker; an
// answer marker inside that span closes the body early.
func ParseText(text string) exam.ParseResult {
	result := exam.ParseResult{Questions: []exam.Question{}}
	tokens := lex(text)

	for i := 0; i < len(tokens); i++ {
		if tokens[i].kind != tokQuestion {
			continue
		}

		segEnd := len(text)
		next := len(tokens)
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].kind == tokQuestion {
				segEnd = tokens[j].start
				next = j
				break
			}
		}

		if q, ok := buildQuestion(text, tokens[i], tokens[i+1:next], segEnd, &result); ok {
			result.Questions = append(result.Questions, q)
		}
	}

	result.TotalQuestions = len(result.Questions)
	return result
}

func buildQuestion(text string, qtok token, segTokens []token, segEnd int, result *exam.ParseResult) (exam.Question, bool) {
	var answer string
	bodyEnd := segEnd
	for _, tok := range segTokens {
		if tok.kind == tokAnswer {
			answer = strings.ToUpper(tok.label)
			if tok.start < bodyEnd {
				bodyEnd = tok.start
			}
			break
		}
	}

	if len(strings.TrimSpace(text[qtok.end:bodyEnd])) < minQuestionBody {
		result.Dropped++
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("question %s: body shorter than %d characters, dropped", qtok.label, minQuestionBody))
		return exam.Question{}, false
	}

	spans := make([]optionSpan, 0, 4)
	for _, tok := range segTokens {
		if tok.kind == tokOption && tok.start < bodyEnd {
			spans = append(spans, optionSpan{
				letter:    strings.ToUpper(tok.label),
				markStart: tok.start,
				markEnd:   tok.end,
			})
		}
	}
	if len(spans) == 0 {
		spans = fallbackOptionSpans(text, qtok.end, bodyEnd)
	}

	if len(spans) < minOptions {
		result.Dropped++
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("question %s: fewer than %d options, dropped", qtok.label, minOptions))
		return exam.Question{}, false
	}

	options := make([]string, len(spans))
	for i, span := range spans {
		textEnd := bodyEnd
		if i+1 < len(spans) {
			textEnd = spans[i+1].markStart
		}
		options[i] = strings.TrimSpace(text[span.markEnd:textEnd])
	}

	defaulted := false
	if answer == "" {
		// Ambiguous fallback: no explicit marker, so the first option wins.
		answer = spans[0].letter
		defaulted = true
		result.DefaultedAnswers++
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("question %s: no answer marker, defaulted to option %s", qtok.label, answer))
	}

	number, _ := strconv.Atoi(qtok.label)
	return exam.Question{
		Number:          number,
		Text:            strings.TrimSpace(text[qtok.end:spans[0].markStart]),
		Options:         options,
		Answer:          answer,
		AnswerDefaulted: defaulted,
		Marks:           defaultMarks,
	}, true
}

// fallbackOptionSpans retries the body with the permissive "A) text" grammar.
func fallbackOptionSpans(text string, bodyStart, bodyEnd int) []optionSpan {
	body := text[bodyStart:bodyEnd]
	matches := fallbackOptionRe.FindAllStringSubmatchIndex(body, -1)

	spans := make([]optionSpan, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, optionSpan{
			letter:    strings.ToUpper(body[m[2]:m[3]]),
			markStart: bodyStart + m[0],
			markEnd:   bodyStart + m[1],
		})
	}
	return spans
}
