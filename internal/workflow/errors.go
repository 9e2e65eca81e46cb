package workflow

import "errors"

var (
	// ErrTopicRequired is returned when brainstorming is started
	// without a topic.
	ErrTopicRequired = errors.New("topic is required")

	// ErrEmptyResponse is returned when a model answers with no text.
	ErrEmptyResponse = errors.New("received empty response from model")

	// ErrNoBrainstorm is returned when outline generation references a
	// model that has no stored brainstorming result.
	ErrNoBrainstorm = errors.New("no brainstorming result selected and no manual outline provided")

	// ErrNoOutline is returned when slide generation runs before an
	// outline exists.
	ErrNoOutline = errors.New("no outline available")

	// ErrNoSlides is returned when formatting or export runs before
	// slides are generated.
	ErrNoSlides = errors.New("no slides available")

	// ErrEmptyDeck is returned when the outline produced no slides.
	ErrEmptyDeck = errors.New("outline produced no slides")

	// ErrAllModelsFailed is returned when a model comparison gets no
	// result from any model.
	ErrAllModelsFailed = errors.New("failed to get results from any model")
)
