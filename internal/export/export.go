// Package export writes slide decks to presentation files. HTML is the
// only native format; powerpoint and pdf fall back to HTML with a
// message, and google_slides is HTML with the same layout.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/calebmoss/deckgen/internal/domain"
)

// Result describes a completed export.
type Result struct {
	// Path is the file the deck was written to.
	Path string
	// Format is the effective format, e.g. "html (pdf unavailable)".
	Format string
	// Message is set when the requested format was substituted.
	Message string
}

// Exporter writes decks to an output directory.
type Exporter struct {
	// Now supplies timestamps for fallback filenames. Defaults to
	// time.Now; tests override it.
	Now func() time.Time
}

func NewExporter() *Exporter {
	return &Exporter{Now: time.Now}
}

var (
	nonFilenameChars = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns    = regexp.MustCompile(`[-\s]+`)
)

// Filename derives the export filename (without extension) from the
// deck: a slug of the first slide's title, or a timestamped fallback
// when the deck is empty or untitled.
func (e *Exporter) Filename(deck domain.Deck) string {
	if len(deck.Slides) > 0 && deck.Slides[0].Title != "" {
		slug := nonFilenameChars.ReplaceAllString(deck.Slides[0].Title, "")
		slug = separatorRuns.ReplaceAllString(slug, "-")
		slug = strings.ToLower(strings.Trim(slug, "-_"))
		if slug != "" {
			return slug
		}
	}
	return "presentation_" + e.Now().Format("20060102_150405")
}

// Export writes the deck in the given format under outputDir, creating
// the directory if needed.
func (e *Exporter) Export(deck domain.Deck, format domain.ExportFormat, outputDir string) (Result, error) {
	if !format.Valid() {
		return Result{}, fmt.Errorf("unsupported export format: %s", format)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}

	filename := e.Filename(deck)
	path := filepath.Join(outputDir, filename+".html")

	switch format {
	case domain.FormatGoogleSlides:
		if err := writeHTML(deck, path); err != nil {
			return Result{}, err
		}
		return Result{Path: path, Format: "google_slides (HTML)"}, nil

	case domain.FormatPowerPoint:
		if err := writeHTML(deck, path); err != nil {
			return Result{}, err
		}
		return Result{
			Path:    path,
			Format:  "html (powerpoint unavailable)",
			Message: "PowerPoint export is not available. Exported as HTML instead.",
		}, nil

	case domain.FormatPDF:
		if err := writeHTML(deck, path); err != nil {
			return Result{}, err
		}
		return Result{
			Path:    path,
			Format:  "html (pdf unavailable)",
			Message: "PDF export is not available. Exported as HTML instead.",
		}, nil

	default: // domain.FormatHTML
		if err := writeHTML(deck, path); err != nil {
			return Result{}, err
		}
		return Result{Path: path, Format: "html"}, nil
	}
}
