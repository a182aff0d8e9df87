package exam

import (
	"fmt"
	"strings"

	"github.com/lucidlearn/lucidlearn/backend/internal/model/exam"
)

const fullOptionCount = 4

// Validate audits extracted questions without mutating them. Short text and
// missing options are errors; thin option lists and doubtful answers are
// warnings and never affect validity.
func Validate(questions []exam.Question) exam.ValidationReport {
	report := exam.ValidationReport{
		Errors:   []string{},
		Warnings: []string{},
	}

	for i, q := range questions {
		label := fmt.Sprintf("question %d", i+1)
		if q.Number > 0 {
			label = fmt.Sprintf("question %d", q.Number)
		}

		if len(strings.TrimSpace(q.Text)) < minQuestionBody {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: text shorter than %d characters", label, minQuestionBody))
		}
		if len(q.Options) < minOptions {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: fewer than %d options", label, minOptions))
		}

		if len(q.Options) < fullOptionCount {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s: only %d options", label, len(q.Options)))
		}
		if !validAnswerLetter(q.Answer) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s: answer %q is not a letter A-D", label, q.Answer))
		} else if q.AnswerDefaulted {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s: answer was defaulted to the first option", label))
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

func validAnswerLetter(answer string) bool {
	switch strings.ToUpper(answer) {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
