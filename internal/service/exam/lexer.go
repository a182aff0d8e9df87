package exam

import (
	"regexp"
	"sort"
)

// The extractor is a best-effort text miner, not a guaranteed-correct parser.
// The lexer recognizes three marker shapes and the parser assembles records
// from the token stream; layouts the markers cannot describe (multi-line OCR
// artifacts, exotic delimiters) produce dropped questions, not errors.

type tokenKind int

const (
	tokQuestion tokenKind = iota
	tokOption
	tokAnswer
)

type token struct {
	kind  tokenKind
	label string // question number, or option/answer letter
	start int    // offset of the marker
	end   int    // offset just past the marker
}

var (
	// "Q.12", "Q12)", or a bare "12." / "12)" question marker.
	questionMarkerRe = regexp.MustCompile(`(?i)(?:\bq\.?\s*(\d{1,3})[.)]?|\b(\d{1,3})[.)])\s*`)

	// "(A)", "A)", "a." option marker.
	optionMarkerRe = regexp.MustCompile(`(?i)(?:\(([a-d])\)|\b([a-d])[.)])\s*`)

	// Permissive fallback grammar used when the primary option pattern finds
	// nothing inside a question body.
	fallbackOptionRe = regexp.MustCompile(`(?i)\b([a-d])\)\s*`)

	answerMarkerRe = regexp.MustCompile(`(?i)\banswer\s*[:\-]?\s*([a-d])\b`)
)

// lex scans the text for question, option and answer markers and returns them
// in document order with overlapping matches discarded.
func lex(text string) []token {
	var tokens []token
	tokens = appendMarkers(tokens, text, tokQuestion, questionMarkerRe)
	tokens = appendMarkers(tokens, text, tokOption, optionMarkerRe)
	tokens = appendMarkers(tokens, text, tokAnswer, answerMarkerRe)

	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].start != tokens[j].start {
			return tokens[i].start < tokens[j].start
		}
		return tokens[i].end > tokens[j].end
	})

	merged := tokens[:0]
	prevEnd := -1
	for _, tok := range tokens {
		if tok.start < prevEnd {
			continue
		}
		merged = append(merged, tok)
		prevEnd = tok.end
	}
	return merged
}

func appendMarkers(tokens []token, text string, kind tokenKind, re *regexp.Regexp) []token {
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		tokens = append(tokens, token{
			kind:  kind,
			label: firstGroup(text, m),
			start: m[0],
			end:   m[1],
		})
	}
	return tokens
}

// firstGroup returns the text of the first capture group that participated in
// the match.
func firstGroup(text string, m []int) string {
	for i := 2; i < len(m); i += 2 {
		if m[i] >= 0 {
			return text[m[i]:m[i+1]]
		}
	}
	return ""
}
