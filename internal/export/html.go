package export

import (
	"fmt"
	"html/template"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/calebmoss/deckgen/internal/deck"
	"github.com/calebmoss/deckgen/internal/domain"
)

type pointView struct {
	// Term is the highlighted span content, including its trailing
	// colon. Empty for plain points.
	Term string
	Text string
	// Style carries an optional inline color override for the span.
	Style template.CSS
}

type slideView struct {
	Class   string
	Title   string
	Content string
	Points  []pointView
}

// sectionTitles are short connective titles rendered as section breaks.
var sectionTitles = map[string]bool{
	"overview": true, "agenda": true, "contents": true,
	"summary": true, "conclusion": true,
}

func buildSlideViews(d domain.Deck) []slideView {
	views := make([]slideView, 0, len(d.Slides))
	for i, s := range d.Slides {
		class := "content-slide"
		if i == 0 {
			class = "title-slide"
		} else if utf8.RuneCountInString(s.Title) <= 5 || sectionTitles[strings.ToLower(s.Title)] {
			class = "section-slide"
		}

		var style template.CSS
		if c := safeColor(s.HighlightColor); c != "" {
			style = template.CSS("color: " + c)
		}

		points := make([]pointView, 0, len(s.Points))
		for _, p := range s.Points {
			points = append(points, buildPointView(deck.StyledPoint(p, s.BoldKeyTerms), style))
		}
		views = append(views, slideView{
			Class:   class,
			Title:   s.Title,
			Content: s.Content,
			Points:  points,
		})
	}
	return views
}

// buildPointView splits a rendered point for key-term highlighting. A
// colon wins over the bold sentinel; the sentinel form only appears on
// points without one.
func buildPointView(text string, style template.CSS) pointView {
	if idx := strings.Index(text, ":"); idx >= 0 {
		return pointView{
			Term:  strings.TrimSpace(text[:idx]) + ":",
			Text:  strings.TrimSpace(text[idx+1:]),
			Style: style,
		}
	}
	if strings.Count(text, "**") >= 2 {
		rest := text[strings.Index(text, "**")+2:]
		end := strings.Index(rest, "**")
		return pointView{
			Term:  rest[:end],
			Text:  strings.TrimSpace(rest[end+2:]),
			Style: style,
		}
	}
	return pointView{Text: text}
}

// safeColor accepts only simple CSS color tokens so user-supplied
// values cannot smuggle extra declarations into the inline style.
func safeColor(c string) string {
	if c == "" {
		return ""
	}
	for _, r := range c {
		ok := r == '#' || (r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !ok {
			return ""
		}
	}
	return c
}

var htmlTemplate = template.Must(template.New("deck").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Presentation Slides</title>
    <style>
        body, html {
            margin: 0;
            padding: 0;
            font-family: 'Segoe UI', Arial, sans-serif;
            background-color: #f5f5f5;
        }
        .slide-container {
            width: 100%;
            max-width: 900px;
            margin: 20px auto;
            box-shadow: 0 4px 8px rgba(0,0,0,0.1);
        }
        .slide {
            background-color: #444;
            color: white;
            position: relative;
            margin-bottom: 40px;
            border-radius: 4px;
            overflow: hidden;
        }
        .slide-header {
            padding: 30px 20px 10px;
        }
        .slide-title {
            font-size: 32px;
            font-weight: 600;
            margin: 0;
            padding-bottom: 10px;
        }
        .slide-content {
            background-color: #555;
            color: white;
            padding: 20px 30px 30px;
        }
        .slide-main-text {
            margin-bottom: 25px;
            font-size: 18px;
            line-height: 1.4;
        }
        .slide-point {
            margin: 12px 0;
            font-size: 18px;
            line-height: 1.4;
        }
        .key-term {
            color: #ffd700;
            font-weight: 600;
            display: inline-block;
            margin-right: 5px;
        }
        .title-slide .slide-title {
            font-size: 42px;
            text-align: center;
            padding: 60px 0;
        }
        .title-slide .slide-content {
            background-color: #444;
        }
        .section-slide {
            background-color: #2980b9;
        }
        .section-slide .slide-content {
            background-color: #3498db;
        }
        .content-slide:nth-child(odd) .slide-content {
            background-color: #505050;
        }
    </style>
</head>
<body>
    <div class="slide-container">
{{- range .}}
        <div class="slide {{.Class}}">
            <div class="slide-header">
                <h2 class="slide-title">{{.Title}}</h2>
            </div>
            <div class="slide-content">
{{- if .Content}}
                <div class="slide-main-text">{{.Content}}</div>
{{- end}}
{{- range .Points}}
{{- if .Term}}
                <div class="slide-point"><span class="key-term"{{if .Style}} style="{{.Style}}"{{end}}>{{.Term}}</span> {{.Text}}</div>
{{- else}}
                <div class="slide-point">{{.Text}}</div>
{{- end}}
{{- end}}
            </div>
        </div>
{{- end}}
    </div>
</body>
</html>
`))

func writeHTML(d domain.Deck, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	if err := htmlTemplate.Execute(f, buildSlideViews(d)); err != nil {
		f.Close()
		return fmt.Errorf("rendering slides: %w", err)
	}
	return f.Close()
}
