package workflow

import (
	"fmt"
	"strings"

	"github.com/calebmoss/deckgen/internal/domain"
)

const (
	brainstormSystemPrompt = "You are a concise thought partner for brainstorming. Keep responses focused and brief."
	outlineSystemPrompt    = "You are an expert content strategist who excels at creating structured outlines."
	enhanceSystemPrompt    = "You are an expert presentation designer who excels at creating substantive, insightful slide content."
)

func brainstormPrompt(topic string, assumptions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	if len(assumptions) > 0 {
		b.WriteString("Assumptions:\n")
		for _, a := range assumptions {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	b.WriteString("\nProvide a brief, focused brainstorming on this topic.")
	return b.String()
}

func outlinePrompt(topic, brainstormResult string) string {
	return fmt.Sprintf(`Based on the following brainstorming for the topic %q, create a structured outline for a presentation.

BRAINSTORMING:
%s

Create an outline with the following:
1. An attention-grabbing title
2. 5-8 main sections
3. 2-3 key points for each section
4. A strong conclusion

Format the outline in a clean, hierarchical structure using markdown.`, topic, brainstormResult)
}

func enhancePrompt(slide domain.Slide) string {
	points := make([]string, 0, len(slide.Points))
	for _, p := range slide.Points {
		points = append(points, "- "+p.String())
	}

	return fmt.Sprintf(`I need you to enhance the content for a presentation slide with the following details:

SLIDE TITLE: %s

SLIDE CONTENT: %s

EXISTING POINTS:
%s

Please generate 5 improved, substantive key points for this slide that follow this EXACT format:
"<Key Term>: <One complete sentence explanation>"

Each point should:
1. Start with a meaningful key term (1-3 words) that captures an important concept
2. Follow with a colon
3. End with a full, informative sentence that provides valuable context or explanation
4. Be substantive and specific to the slide's topic
5. Avoid generic placeholders

The explanation should be insightful, specific, and directly relevant to the topic.
DO NOT use generic explanations like "This represents a fundamental concept within the realm of..."

Only provide the 5 points in the exact format requested, nothing else.`,
		slide.Title, slide.Content, strings.Join(points, "\n"))
}
