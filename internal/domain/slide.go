package domain

import (
	"encoding/json"
	"strings"
)

// RawSlide is the intermediate parse result for one outline section.
// It carries unnormalized text; SlideAssembler turns it into a Slide.
type RawSlide struct {
	Title   string
	Content string
	Points  []string
}

// Point is a single formatted key point. The rendered form is
// "<KeyTerm>: <Explanation>" and the explanation never contains a colon,
// so downstream renderers can split on the first colon.
type Point struct {
	KeyTerm     string
	Explanation string
}

func (p Point) String() string {
	return p.KeyTerm + ": " + p.Explanation
}

// ParsePoint splits a rendered point on its first colon.
func ParsePoint(s string) Point {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return Point{Explanation: strings.TrimSpace(s)}
	}
	return Point{
		KeyTerm:     strings.TrimSpace(s[:idx]),
		Explanation: strings.TrimSpace(s[idx+1:]),
	}
}

// Points serialize as their rendered string form so stored decks stay
// readable as plain "<key>: <explanation>" bullets.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ParsePoint(s)
	return nil
}

// Slide is the final unit of presentation. Points always has exactly
// five entries once assembled. HighlightColor and BoldKeyTerms are
// presentation hints added by the style pass; they never alter point
// content.
type Slide struct {
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Points         []Point   `json:"points"`
	Type           SlideType `json:"type"`
	HighlightColor string    `json:"highlight_color,omitempty"`
	BoldKeyTerms   bool      `json:"bold_key_terms,omitempty"`
}

// Deck is the ordered collection of slides for one presentation.
type Deck struct {
	Slides []Slide `json:"slides"`
}

func (d Deck) Empty() bool {
	return len(d.Slides) == 0
}
