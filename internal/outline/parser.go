// Package outline turns raw outline text, either JSON or markdown-like,
// into an ordered sequence of raw slide records.
package outline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/calebmoss/deckgen/internal/domain"
)

var numberedBullet = regexp.MustCompile(`^\d+\.`)

// Parse interprets outline text as JSON when possible, otherwise falls
// back to line-oriented parsing of markdown-style headers and bullets.
// Empty or unparseable input yields an empty sequence; callers decide
// whether zero slides is a failure.
func Parse(text string) []domain.RawSlide {
	cleaned := strings.TrimSpace(stripCodeFences(text))
	if slides, ok := parseJSON(cleaned); ok {
		return slides
	}
	return parseLines(text)
}

// parseJSON handles the three accepted JSON shapes: a bare array of
// slides, an object with a "slides" array, or any other object whose
// top-level keys become one slide each.
func parseJSON(cleaned string) ([]domain.RawSlide, bool) {
	if cleaned == "" || !json.Valid([]byte(cleaned)) {
		return nil, false
	}

	switch cleaned[0] {
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal([]byte(cleaned), &entries); err != nil {
			return nil, false
		}
		return slidesFromArray(entries), true
	case '{':
		entries, err := orderedEntries([]byte(cleaned))
		if err != nil {
			return nil, false
		}
		for _, e := range entries {
			if e.key != "slides" {
				continue
			}
			trimmed := strings.TrimSpace(string(e.value))
			if !strings.HasPrefix(trimmed, "[") {
				// Malformed "slides" value; an empty result signals
				// the parse failure to the caller.
				return nil, true
			}
			var inner []json.RawMessage
			if err := json.Unmarshal(e.value, &inner); err != nil {
				return nil, true
			}
			return slidesFromArray(inner), true
		}
		slides := make([]domain.RawSlide, 0, len(entries))
		for _, e := range entries {
			slides = append(slides, domain.RawSlide{
				Title:   e.key,
				Content: coerceString(e.value),
			})
		}
		return slides, true
	default:
		// Valid JSON scalar (string, number, bool, null) is not an
		// outline; let the line parser have it.
		return nil, false
	}
}

func slidesFromArray(entries []json.RawMessage) []domain.RawSlide {
	slides := make([]domain.RawSlide, 0, len(entries))
	for _, raw := range entries {
		var fields struct {
			Title   string            `json:"title"`
			Content json.RawMessage   `json:"content"`
			Points  []json.RawMessage `json:"points"`
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			// Non-object entries default to an empty slide record.
			slides = append(slides, domain.RawSlide{})
			continue
		}
		slide := domain.RawSlide{
			Title:   fields.Title,
			Content: coerceString(fields.Content),
		}
		for _, p := range fields.Points {
			slide.Points = append(slide.Points, coerceString(p))
		}
		slides = append(slides, slide)
	}
	return slides
}

type objectEntry struct {
	key   string
	value json.RawMessage
}

// orderedEntries decodes a JSON object's top-level key/value pairs in
// source order. A plain map would randomize slide order.
func orderedEntries(data []byte) ([]objectEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []objectEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		entries = append(entries, objectEntry{key: key, value: value})
	}
	return entries, nil
}

// coerceString renders any JSON value as slide text: strings verbatim,
// scalars formatted, composite values as compact JSON.
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return strings.TrimSpace(string(raw))
	}
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return strings.TrimSpace(string(raw))
		}
		return buf.String()
	}
}

// parseLines handles markdown-style outlines: "#" headers start slides,
// bullets collect into points, everything else joins the content.
// Lines before the first header are dropped.
func parseLines(text string) []domain.RawSlide {
	var slides []domain.RawSlide
	var current *domain.RawSlide

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#"):
			if current != nil {
				slides = append(slides, *current)
			}
			current = &domain.RawSlide{
				Title: strings.TrimSpace(strings.TrimLeft(line, "#")),
			}
		case strings.HasPrefix(line, "*") || strings.HasPrefix(line, "-") || numberedBullet.MatchString(line):
			if current != nil {
				point := strings.TrimSpace(strings.TrimLeft(line, "*-0123456789. "))
				current.Points = append(current.Points, point)
			}
		default:
			if current != nil {
				if current.Content == "" {
					current.Content = line
				} else {
					current.Content += " " + line
				}
			}
		}
	}

	if current != nil {
		slides = append(slides, *current)
	}
	return slides
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}
