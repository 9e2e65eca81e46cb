package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/calebmoss/deckgen/internal/deck"
	"github.com/calebmoss/deckgen/internal/domain"
)

// RenderDeck renders a terminal preview of the deck: one block per
// slide with its points, key terms highlighted.
func RenderDeck(d domain.Deck) string {
	var b strings.Builder
	for i, s := range d.Slides {
		if i > 0 {
			b.WriteString("\n")
		}
		header := fmt.Sprintf("Slide %d", i+1)
		if s.Type == domain.SlideTitle {
			header += " (title)"
		}
		b.WriteString(StyleDim.Render(header))
		b.WriteString("\n")
		b.WriteString(StyleHeader.Render(s.Title))
		b.WriteString("\n")
		if s.Content != "" {
			b.WriteString(StyleFg.Render(s.Content))
			b.WriteString("\n")
		}
		for _, p := range s.Points {
			b.WriteString("  ")
			b.WriteString(renderPoint(p, s.BoldKeyTerms))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderPoint(p domain.Point, bold bool) string {
	text := deck.StyledPoint(p, bold)
	// Replace the bold sentinel pair with terminal styling.
	if start := strings.Index(text, "**"); start >= 0 {
		rest := text[start+2:]
		if end := strings.Index(rest, "**"); end >= 0 {
			return text[:start] + StyleBold.Render(rest[:end]) + rest[end+2:]
		}
	}
	if idx := strings.Index(text, ":"); idx >= 0 {
		return StyleKeyTerm.Render(text[:idx+1]) + text[idx+1:]
	}
	return text
}

// RenderProjectList renders projects as a table.
func RenderProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return StyleDim.Render("No projects yet. Create one with: deckgen project new <title>") + "\n"
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		slides := "-"
		if p.Deck != nil {
			slides = fmt.Sprintf("%d", len(p.Deck.Slides))
		}
		rows = append(rows, []string{
			p.DisplayID(),
			p.Title,
			StatusBadge(p.Status),
			slides,
			p.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "STATUS", "SLIDES", "UPDATED"}, rows)
}

// RenderProject renders a full project summary.
func RenderProject(p *domain.Project) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(p.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(p.DisplayID()), StatusBadge(p.Status))
	fmt.Fprintf(&b, "Created %s\n", p.CreatedAt.Local().Format(time.RFC1123))

	if len(p.Brainstorms) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render("Brainstorms"))
		b.WriteString("\n")
		for model, bs := range p.Brainstorms {
			fmt.Fprintf(&b, "  %s  %s\n", StyleBlue.Render(model), StyleDim.Render(bs.Topic))
		}
	}
	if p.Outline != nil {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render("Outline"))
		fmt.Fprintf(&b, " %s\n", StyleDim.Render("("+string(p.Outline.Source)+")"))
	}
	if p.Deck != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %d slides\n", StyleBold.Render("Deck"), len(p.Deck.Slides))
	}
	if p.Export != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s (%s)\n", StyleBold.Render("Exported"), p.Export.Path, p.Export.Format)
	}
	return b.String()
}
