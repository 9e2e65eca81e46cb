package deck

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmoss/deckgen/internal/domain"
)

func TestAssemble_FivePointsPerSlide(t *testing.T) {
	raws := []domain.RawSlide{
		{Title: "No Points", Content: "Some content to draw from here."},
		{Title: "Two Points", Points: []string{"alpha: first", "beta: second"}},
		{Title: "Many Points", Points: []string{
			"one: a", "two: b", "three: c", "four: d", "five: e", "six: f", "seven: g",
		}},
	}

	d, err := Assemble(raws)
	require.NoError(t, err)
	require.Len(t, d.Slides, 3)
	for _, s := range d.Slides {
		assert.Len(t, s.Points, 5, "slide %q", s.Title)
	}

	// Overflow slides keep their first five points.
	assert.Equal(t, "One", d.Slides[2].Points[0].KeyTerm)
	assert.Equal(t, "Five", d.Slides[2].Points[4].KeyTerm)
}

func TestAssemble_EveryPointHasOneColon(t *testing.T) {
	raws := []domain.RawSlide{
		{Title: "Ratios: 3:1", Points: []string{"mix: 3:1 ratio", "note", "a:b:c:d"}},
		{Title: "", Content: "Plain content without any structure at all."},
	}

	d, err := Assemble(raws)
	require.NoError(t, err)
	for _, s := range d.Slides {
		for _, p := range s.Points {
			rendered := p.String()
			assert.Equal(t, 1, strings.Count(rendered, ":"), "point %q on slide %q", rendered, s.Title)
		}
	}
}

func TestAssemble_FirstSlideIsTitleSlide(t *testing.T) {
	d, err := Assemble([]domain.RawSlide{
		{Title: "Opening"}, {Title: "Second"}, {Title: "Third"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SlideTitle, d.Slides[0].Type)
	assert.Equal(t, domain.SlideContent, d.Slides[1].Type)
	assert.Equal(t, domain.SlideContent, d.Slides[2].Type)
}

func TestAssemble_DefaultTitle(t *testing.T) {
	d, err := Assemble([]domain.RawSlide{{Content: "only content"}})
	require.NoError(t, err)
	assert.Equal(t, "Slide", d.Slides[0].Title)
}

func TestAssemble_EmptyInput(t *testing.T) {
	d, err := Assemble(nil)
	require.NoError(t, err)
	assert.True(t, d.Empty())

	d, err = Assemble([]domain.RawSlide{})
	require.NoError(t, err)
	assert.True(t, d.Empty())
}

func TestAssemble_Deterministic(t *testing.T) {
	raws := []domain.RawSlide{
		{Title: "Consciousness Expansion", Content: "A look at awareness. It spans several longer sentences of content."},
	}
	a, err := Assemble(raws)
	require.NoError(t, err)
	b, err := Assemble(raws)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAssemble_ManySlides(t *testing.T) {
	raws := make([]domain.RawSlide, 20)
	for i := range raws {
		raws[i] = domain.RawSlide{Title: fmt.Sprintf("Section %d", i+1)}
	}
	d, err := Assemble(raws)
	require.NoError(t, err)
	require.Len(t, d.Slides, 20)
	for _, s := range d.Slides {
		assert.Len(t, s.Points, 5)
	}
}
