package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_StringAndParse(t *testing.T) {
	p := Point{KeyTerm: "Focus", Explanation: "One thing at a time."}
	assert.Equal(t, "Focus: One thing at a time.", p.String())
	assert.Equal(t, p, ParsePoint(p.String()))
}

func TestParsePoint_NoColon(t *testing.T) {
	p := ParsePoint("  just text  ")
	assert.Empty(t, p.KeyTerm)
	assert.Equal(t, "just text", p.Explanation)
}

func TestPoint_JSONIsRenderedString(t *testing.T) {
	p := Point{KeyTerm: "Depth", Explanation: "How far we go."}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"Depth: How far we go."`, string(data))

	var back Point
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p, back)
}

func TestSlide_JSONOmitsUnsetHints(t *testing.T) {
	s := Slide{Title: "T", Type: SlideContent}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "highlight_color")
	assert.NotContains(t, string(data), "bold_key_terms")
}

func TestProject_DisplayID(t *testing.T) {
	p := Project{ID: "abcdefgh-1234"}
	assert.Equal(t, "abcdefgh", p.DisplayID())

	short := Project{ID: "abc"}
	assert.Equal(t, "abc", short.DisplayID())
}

func TestExportFormat_Valid(t *testing.T) {
	assert.True(t, FormatHTML.Valid())
	assert.True(t, FormatGoogleSlides.Valid())
	assert.False(t, ExportFormat("keynote").Valid())
}
