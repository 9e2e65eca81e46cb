package deck

import (
	"strings"

	"github.com/calebmoss/deckgen/internal/domain"
)

// ApplyStyle returns a copy of the deck with presentation hints applied.
// Point content is never modified; bolding and highlight color only
// affect how exporters render each point.
func ApplyStyle(d domain.Deck, boldKeyTerms bool, highlightColor string) domain.Deck {
	styled := domain.Deck{Slides: make([]domain.Slide, len(d.Slides))}
	for i, s := range d.Slides {
		s.Points = append([]domain.Point(nil), s.Points...)
		if boldKeyTerms {
			s.BoldKeyTerms = true
		}
		if highlightColor != "" {
			s.HighlightColor = highlightColor
		}
		styled.Slides[i] = s
	}
	return styled
}

// StyledPoint renders a point for display. With bolding enabled, only
// the first word of the rendered text is wrapped in the bold sentinel,
// even when the key term spans several words; points shorter than three
// words are left unmarked. Exporters depend on this exact shape.
func StyledPoint(p domain.Point, bold bool) string {
	text := p.String()
	if !bold {
		return text
	}
	words := strings.Fields(text)
	if len(words) < 3 {
		return text
	}
	return "**" + words[0] + "** " + strings.Join(words[1:], " ")
}
