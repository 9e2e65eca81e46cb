package deck

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/calebmoss/deckgen/internal/domain"
)

// titleStopwords are short filler words excluded from key-term extraction.
var titleStopwords = map[string]bool{
	"with": true, "this": true, "that": true, "from": true,
	"into": true, "over": true, "some": true, "what": true,
}

const wordStripSet = ",.;:()[]{}"

// Synthesize manufactures deficit additional points for a slide that has
// fewer than the required five. Key terms come from the title and
// content, topped up from the domain term banks; explanations prefer
// substantive content sentences and otherwise draw from the explanation
// pool, offset by a per-slide seed so different slides sharing a pool do
// not repeat. Identical inputs always produce identical output.
func Synthesize(title, content string, existing []domain.Point, deficit int) []domain.Point {
	if deficit <= 0 {
		return nil
	}

	cleanTitle := strings.ReplaceAll(title, ":", "")
	lowerTitle := strings.ToLower(cleanTitle)
	sentences := strings.Split(content, ".")

	terms := importantTerms(cleanTitle, sentences)
	if len(terms) < deficit {
		terms = append(terms, domainTerms(lowerTitle)...)
	}

	pool := explanationPool(lowerTitle)
	seed := slideSeed(cleanTitle)

	points := make([]domain.Point, 0, deficit)
	for j := 0; j < deficit; j++ {
		var keyTerm string
		if j < len(terms) {
			keyTerm = terms[j]
		} else {
			keyTerm = contentKeyTerm(content, j)
		}

		var explanation string
		if j < len(sentences) && utf8.RuneCountInString(strings.TrimSpace(sentences[j])) > 20 {
			explanation = strings.ReplaceAll(strings.TrimSpace(sentences[j]), ":", "")
		} else {
			explanation = pool[(j+seed)%len(pool)]
		}

		points = append(points, domain.Point{
			KeyTerm:     keyTerm,
			Explanation: punctuate(explanation),
		})
	}
	return points
}

// importantTerms collects substantive words from the title, then any
// qualifying words from the content sentences, deduplicated against the
// title terms.
func importantTerms(cleanTitle string, sentences []string) []string {
	var terms []string
	for _, word := range strings.Fields(cleanTitle) {
		if utf8.RuneCountInString(word) > 3 && !titleStopwords[strings.ToLower(word)] {
			terms = append(terms, capitalize(word))
		}
	}

	for _, sentence := range sentences {
		for _, word := range strings.Fields(sentence) {
			clean := capitalize(strings.Trim(word, wordStripSet))
			if utf8.RuneCountInString(clean) > 3 && !containsTerm(terms, clean) && startsUpper(clean) {
				terms = append(terms, clean)
			}
		}
	}
	return terms
}

// domainTerms picks the term bank whose keywords match the lower-cased
// title, falling back to the generic bank.
func domainTerms(lowerTitle string) []string {
	for _, bank := range domainTermBanks {
		for _, kw := range bank.keywords {
			if strings.Contains(lowerTitle, kw) {
				return bank.terms
			}
		}
	}
	return genericTerms
}

// explanationPool returns the general explanation bank, with a
// topic-specific bank prepended when the title matches one.
func explanationPool(lowerTitle string) []string {
	for _, bank := range topicExplanationBanks {
		for _, kw := range bank.keywords {
			if strings.Contains(lowerTitle, kw) {
				pool := make([]string, 0, len(bank.explanations)+len(generalExplanations))
				pool = append(pool, bank.explanations...)
				return append(pool, generalExplanations...)
			}
		}
	}
	return generalExplanations
}

// slideSeed derives a stable per-slide offset from the title so
// explanation choice varies across slides without randomness.
func slideSeed(cleanTitle string) int {
	sum := 0
	for _, r := range cleanTitle {
		sum += int(r)
	}
	return sum % 100
}

// contentKeyTerm falls back to the first substantial alphabetic word in
// the content, or a positional placeholder.
func contentKeyTerm(content string, j int) string {
	words := strings.Fields(content)
	if len(words) > 10 {
		words = words[:10]
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) > 4 && isAlpha(w) {
			return capitalize(w)
		}
	}
	return fmt.Sprintf("Point %d", j+1)
}

func containsTerm(terms []string, t string) bool {
	for _, v := range terms {
		if v == t {
			return true
		}
	}
	return false
}

func startsUpper(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(first)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
