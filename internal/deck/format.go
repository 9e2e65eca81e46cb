// Package deck normalizes parsed outline sections into presentation
// slides: it formats raw bullets into "<Key Term>: <explanation>" points,
// synthesizes additional points when a section is under-specified, and
// assembles the final deck.
package deck

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/calebmoss/deckgen/internal/domain"
)

// FormatPoint normalizes one raw bullet into a Point. It never fails:
// input that cannot be split into a meaningful key term degrades to the
// generic "Key Point" form. Colons beyond the first are stripped so the
// rendered point always contains exactly one.
func FormatPoint(raw string) domain.Point {
	if idx := strings.Index(raw, ":"); idx > 0 {
		keyTerm := strings.TrimSpace(raw[:idx])
		explanation := strings.TrimSpace(raw[idx+1:])
		explanation = strings.ReplaceAll(explanation, ":", "")
		return domain.Point{
			KeyTerm:     titleCase(keyTerm),
			Explanation: punctuate(explanation),
		}
	}

	clean := strings.ReplaceAll(raw, ":", "")
	words := strings.Fields(clean)
	if len(words) >= 4 {
		n := min(3, max(2, len(words)/4))
		return domain.Point{
			KeyTerm:     titleCase(strings.Join(words[:n], " ")),
			Explanation: punctuate(strings.Join(words[n:], " ")),
		}
	}

	return domain.Point{
		KeyTerm:     "Key Point",
		Explanation: punctuate(strings.TrimSpace(clean)),
	}
}

// titleCase capitalizes each whitespace-separated word: first letter
// upper, remaining letters lower.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	first, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
}

// punctuate terminates a non-empty explanation with a period unless it
// already ends in terminal punctuation.
func punctuate(s string) string {
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
