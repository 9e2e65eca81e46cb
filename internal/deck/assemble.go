package deck

import (
	"fmt"

	"github.com/calebmoss/deckgen/internal/domain"
)

// pointsPerSlide is the content contract every assembled slide satisfies.
const pointsPerSlide = 5

// Assemble turns parsed outline sections into a finalized deck: every
// raw point is formatted, slides with fewer than five points are padded
// by synthesis, and the first slide becomes the title slide. An empty
// input yields an empty deck without error; callers decide whether zero
// slides means the outline failed to parse.
func Assemble(raws []domain.RawSlide) (d domain.Deck, err error) {
	defer func() {
		if r := recover(); r != nil {
			d = domain.Deck{}
			err = fmt.Errorf("assembling slides: %v", r)
		}
	}()

	slides := make([]domain.Slide, 0, len(raws))
	for i, raw := range raws {
		title := domain.CoalesceStr(raw.Title, "Slide")

		points := make([]domain.Point, 0, pointsPerSlide)
		for _, p := range raw.Points {
			points = append(points, FormatPoint(p))
		}
		if len(points) < pointsPerSlide {
			points = append(points, Synthesize(title, raw.Content, points, pointsPerSlide-len(points))...)
		}
		points = points[:pointsPerSlide]

		slideType := domain.SlideContent
		if i == 0 {
			slideType = domain.SlideTitle
		}

		slides = append(slides, domain.Slide{
			Title:   title,
			Content: raw.Content,
			Points:  points,
			Type:    slideType,
		})
	}

	return domain.Deck{Slides: slides}, nil
}
