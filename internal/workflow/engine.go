// Package workflow drives the slide deck pipeline: brainstorming,
// outlining, slide generation, formatting, and export. Each step loads
// the project, performs its work, and persists the updated record.
package workflow

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calebmoss/deckgen/internal/concurrency"
	"github.com/calebmoss/deckgen/internal/deck"
	"github.com/calebmoss/deckgen/internal/domain"
	"github.com/calebmoss/deckgen/internal/export"
	"github.com/calebmoss/deckgen/internal/llm"
	"github.com/calebmoss/deckgen/internal/outline"
	"github.com/calebmoss/deckgen/internal/repository"
)

const (
	defaultBrainstormModel = "claude"
	defaultOutlineModel    = "claude-sonnet"
	defaultEnhanceModel    = "claude-sonnet"
	fallbackEnhanceModel   = "claude"
)

// compareDefaults are the models polled when no explicit list is given.
var compareDefaults = []string{"claude-sonnet", "gpt4"}

// Engine orchestrates the content pipeline over a project repository,
// an LLM client, and an exporter.
type Engine struct {
	projects repository.ProjectRepo
	client   llm.Client
	exporter *export.Exporter
	observer StepObserver
	now      func() time.Time
}

func NewEngine(projects repository.ProjectRepo, client llm.Client, exporter *export.Exporter, observer StepObserver) *Engine {
	if observer == nil {
		observer = NoopStepObserver{}
	}
	if exporter == nil {
		exporter = export.NewExporter()
	}
	return &Engine{
		projects: projects,
		client:   client,
		exporter: exporter,
		observer: observer,
		now:      time.Now,
	}
}

func (e *Engine) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	e.observer.ObserveStep(ctx, StepEvent{
		Name:      name,
		Duration:  e.now().Sub(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

// CreateProject starts a new project record.
func (e *Engine) CreateProject(ctx context.Context, title string) (*domain.Project, error) {
	start := e.now()
	now := start.UTC()
	p := &domain.Project{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    domain.ProjectInitialized,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := e.projects.Create(ctx, p)
	e.observe(ctx, "create_project", start, err, map[string]any{"project_id": p.ID})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProject resolves a project by full ID or unique prefix.
func (e *Engine) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	p, err := e.projects.GetByID(ctx, id)
	if err == nil {
		return p, nil
	}
	return e.projects.GetByIDPrefix(ctx, id)
}

// ListProjects returns all projects in creation order.
func (e *Engine) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return e.projects.List(ctx)
}

// DeleteProject removes a project record.
func (e *Engine) DeleteProject(ctx context.Context, id string) error {
	p, err := e.GetProject(ctx, id)
	if err != nil {
		return err
	}
	return e.projects.Delete(ctx, p.ID)
}

// RunBrainstorm asks one model to brainstorm a topic and stores the
// result on the project, keyed by model id.
func (e *Engine) RunBrainstorm(ctx context.Context, projectID, topic, modelID string, assumptions []string) (*domain.Brainstorm, error) {
	start := e.now()
	modelID = domain.CoalesceStr(modelID, defaultBrainstormModel)

	bs, err := e.runBrainstorm(ctx, projectID, topic, modelID, assumptions)
	e.observe(ctx, "brainstorm", start, err, map[string]any{"model": modelID, "topic": topic})
	return bs, err
}

func (e *Engine) runBrainstorm(ctx context.Context, projectID, topic, modelID string, assumptions []string) (*domain.Brainstorm, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrTopicRequired
	}

	p, err := e.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskBrainstorm,
		ModelID:      modelID,
		SystemPrompt: brainstormSystemPrompt,
		UserPrompt:   brainstormPrompt(topic, assumptions),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate brainstorming: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResponse, modelID)
	}

	bs := domain.Brainstorm{
		Topic:       topic,
		Assumptions: assumptions,
		Result:      resp.Text,
		Model:       modelID,
		CreatedAt:   e.now().UTC(),
	}
	if p.Brainstorms == nil {
		p.Brainstorms = make(map[string]domain.Brainstorm)
	}
	p.Brainstorms[modelID] = bs
	p.UpdatedAt = e.now().UTC()

	if err := e.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return &bs, nil
}

// CompareResult holds the per-model outcomes of a comparison run.
type CompareResult struct {
	// Results maps model id to its brainstorming text.
	Results map[string]string
	// Errors lists "model: message" entries for failed models.
	Errors []string
}

// CompareModels runs the same brainstorming prompt against several
// models concurrently. Successful results are stored on the project;
// the call fails only when every model fails.
func (e *Engine) CompareModels(ctx context.Context, projectID, topic string, assumptions []string, models []string) (*CompareResult, error) {
	start := e.now()
	if len(models) == 0 {
		models = compareDefaults
	}

	res, err := e.compareModels(ctx, projectID, topic, assumptions, models)
	e.observe(ctx, "compare_models", start, err, map[string]any{"models": strings.Join(models, ","), "topic": topic})
	return res, err
}

func (e *Engine) compareModels(ctx context.Context, projectID, topic string, assumptions []string, models []string) (*CompareResult, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrTopicRequired
	}
	p, err := e.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	type modelResult struct {
		bs   domain.Brainstorm
		text string
	}
	results, errs := concurrency.ProcessParallel(ctx, models, concurrency.DefaultOptions(),
		func(ctx context.Context, i int, modelID string) (modelResult, error) {
			resp, err := e.client.Generate(ctx, llm.GenerateRequest{
				Task:         llm.TaskBrainstorm,
				ModelID:      modelID,
				SystemPrompt: brainstormSystemPrompt,
				UserPrompt:   brainstormPrompt(topic, assumptions),
			})
			if err != nil {
				return modelResult{}, err
			}
			if strings.TrimSpace(resp.Text) == "" {
				return modelResult{}, fmt.Errorf("%w: %s", ErrEmptyResponse, modelID)
			}
			return modelResult{
				bs: domain.Brainstorm{
					Topic:       topic,
					Assumptions: assumptions,
					Result:      resp.Text,
					Model:       modelID,
					CreatedAt:   e.now().UTC(),
				},
				text: resp.Text,
			}, nil
		})

	out := &CompareResult{Results: make(map[string]string)}
	if p.Brainstorms == nil {
		p.Brainstorms = make(map[string]domain.Brainstorm)
	}
	for i, modelID := range models {
		if errs[i] != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", modelID, errs[i]))
			continue
		}
		out.Results[modelID] = results[i].text
		p.Brainstorms[modelID] = results[i].bs
	}
	sort.Strings(out.Errors)

	if len(out.Results) == 0 {
		return out, fmt.Errorf("%w: %s", ErrAllModelsFailed, strings.Join(out.Errors, "; "))
	}

	p.UpdatedAt = e.now().UTC()
	if err := e.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return out, nil
}

// OutlineParams selects the source material for an outline.
type OutlineParams struct {
	// Manual, when set, is used verbatim as the outline.
	Manual string
	// FromModel selects which model's stored brainstorming result to
	// expand into an outline. Ignored when Manual is set.
	FromModel string
	// ModelID is the model used to generate the outline. Defaults to
	// the outline model.
	ModelID string
}

// CreateOutline stores a manual outline or generates one from a stored
// brainstorming result, and advances the project to outlined.
func (e *Engine) CreateOutline(ctx context.Context, projectID string, params OutlineParams) (*domain.Outline, error) {
	start := e.now()
	o, err := e.createOutline(ctx, projectID, params)
	fields := map[string]any{"manual": params.Manual != ""}
	if params.FromModel != "" {
		fields["from_model"] = params.FromModel
	}
	e.observe(ctx, "create_outline", start, err, fields)
	return o, err
}

func (e *Engine) createOutline(ctx context.Context, projectID string, params OutlineParams) (*domain.Outline, error) {
	p, err := e.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var o domain.Outline
	switch {
	case strings.TrimSpace(params.Manual) != "":
		o = domain.Outline{
			Content:   params.Manual,
			Source:    domain.OutlineManual,
			CreatedAt: e.now().UTC(),
		}

	case params.FromModel != "":
		bs, ok := p.Brainstorms[params.FromModel]
		if !ok {
			return nil, fmt.Errorf("%w (model %q)", ErrNoBrainstorm, params.FromModel)
		}
		modelID := domain.CoalesceStr(params.ModelID, defaultOutlineModel)
		resp, err := e.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskOutline,
			ModelID:      modelID,
			SystemPrompt: outlineSystemPrompt,
			UserPrompt:   outlinePrompt(bs.Topic, bs.Result),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate outline: %w", err)
		}
		o = domain.Outline{
			Content:   resp.Text,
			Source:    domain.OutlineAI,
			Model:     modelID,
			CreatedAt: e.now().UTC(),
		}

	default:
		return nil, ErrNoBrainstorm
	}

	p.Outline = &o
	p.Status = domain.ProjectOutlined
	p.UpdatedAt = e.now().UTC()
	if err := e.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return &o, nil
}

// GenerateParams controls slide generation.
type GenerateParams struct {
	// Enhance runs each assembled slide through an LLM for improved
	// points, keeping the original slide when enhancement fails.
	Enhance bool
	// ModelID is the enhancement model. Defaults to the enhance model.
	ModelID string
}

// GenerateDeck builds slides from the project outline and stores the
// deck, advancing the project to generated.
func (e *Engine) GenerateDeck(ctx context.Context, projectID string, params GenerateParams) (*domain.Deck, error) {
	start := e.now()
	d, err := e.generateDeck(ctx, projectID, params)
	e.observe(ctx, "generate_deck", start, err, map[string]any{"enhance": params.Enhance})
	return d, err
}

func (e *Engine) generateDeck(ctx context.Context, projectID string, params GenerateParams) (*domain.Deck, error) {
	p, err := e.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Outline == nil || strings.TrimSpace(p.Outline.Content) == "" {
		return nil, fmt.Errorf("%w: create an outline first", ErrNoOutline)
	}

	raws := outline.Parse(p.Outline.Content)
	d, err := deck.Assemble(raws)
	if err != nil {
		return nil, fmt.Errorf("error generating slides: %w", err)
	}
	if d.Empty() {
		return nil, ErrEmptyDeck
	}

	if params.Enhance {
		d = e.EnhanceDeck(ctx, d, params.ModelID)
	}

	p.Deck = &d
	p.Status = domain.ProjectGenerated
	p.UpdatedAt = e.now().UTC()
	if err := e.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Deck, nil
}

// EnhanceDeck asks a model for improved points on every slide,
// concurrently. A slide is replaced only when the model returns at
// least five well-formed points; on any failure the original slide is
// kept. The input deck is not modified.
func (e *Engine) EnhanceDeck(ctx context.Context, d domain.Deck, modelID string) domain.Deck {
	modelID = domain.CoalesceStr(modelID, defaultEnhanceModel)
	if !e.client.Available(ctx, modelID) && modelID != fallbackEnhanceModel {
		modelID = fallbackEnhanceModel
	}

	enhanced, errs := concurrency.ProcessParallel(ctx, d.Slides, concurrency.DefaultOptions(),
		func(ctx context.Context, i int, s domain.Slide) (domain.Slide, error) {
			resp, err := e.client.Generate(ctx, llm.GenerateRequest{
				Task:         llm.TaskEnhance,
				ModelID:      modelID,
				SystemPrompt: enhanceSystemPrompt,
				UserPrompt:   enhancePrompt(s),
			})
			if err != nil {
				return s, err
			}
			points := parseEnhancedPoints(resp.Text)
			if len(points) < pointsPerEnhancedSlide {
				return s, fmt.Errorf("only %d usable points for slide %q", len(points), s.Title)
			}
			s.Points = points[:pointsPerEnhancedSlide]
			return s, nil
		})

	out := domain.Deck{Slides: make([]domain.Slide, len(d.Slides))}
	for i := range d.Slides {
		if errs[i] != nil {
			out.Slides[i] = d.Slides[i]
			continue
		}
		out.Slides[i] = enhanced[i]
	}
	return out
}

const pointsPerEnhancedSlide = 5

// parseEnhancedPoints extracts well-formed points from a model
// response: one per line, bullets and numbering stripped, keeping only
// lines that carry a colon and enough text to be a real point.
func parseEnhancedPoints(text string) []domain.Point {
	var points []domain.Point
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•-*#0123456789. ")
		if len(line) <= 5 || !strings.Contains(line, ":") {
			continue
		}
		points = append(points, deck.FormatPoint(line))
	}
	return points
}

// FormatParams controls deck styling.
type FormatParams struct {
	// BoldKeyTerms defaults to true when nil.
	BoldKeyTerms *bool
	// HighlightColor is an optional CSS color for key terms.
	HighlightColor string
}

// FormatDeck applies presentation styling to the stored deck and
// records the formatting choices on the project.
func (e *Engine) FormatDeck(ctx context.Context, projectID string, params FormatParams) (*domain.Deck, error) {
	start := e.now()
	d, err := e.formatDeck(ctx, projectID, params)
	e.observe(ctx, "format_deck", start, err, nil)
	return d, err
}

func (e *Engine) formatDeck(ctx context.Context, projectID string, params FormatParams) (*domain.Deck, error) {
	p, err := e.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Deck == nil || p.Deck.Empty() {
		return nil, fmt.Errorf("%w: generate slides first", ErrNoSlides)
	}

	bold := domain.BoolFromPtrWithDefault(true, params.BoldKeyTerms)
	styled := deck.ApplyStyle(*p.Deck, bold, params.HighlightColor)

	p.Deck = &styled
	p.Formatting = &domain.Formatting{
		BoldKeyTerms:   bold,
		HighlightColor: params.HighlightColor,
		CreatedAt:      e.now().UTC(),
	}
	p.UpdatedAt = e.now().UTC()
	if err := e.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Deck, nil
}

// Export writes the stored deck to outputDir in the requested format
// and records the export on the project.
func (e *Engine) Export(ctx context.Context, projectID string, format domain.ExportFormat, outputDir string) (*export.Result, error) {
	start := e.now()
	res, err := e.exportDeck(ctx, projectID, format, outputDir)
	e.observe(ctx, "export", start, err, map[string]any{"format": string(format)})
	return res, err
}

func (e *Engine) exportDeck(ctx context.Context, projectID string, format domain.ExportFormat, outputDir string) (*export.Result, error) {
	p, err := e.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Deck == nil || p.Deck.Empty() {
		return nil, fmt.Errorf("%w: generate slides first", ErrNoSlides)
	}

	res, err := e.exporter.Export(*p.Deck, format, outputDir)
	if err != nil {
		return nil, fmt.Errorf("error exporting slides: %w", err)
	}

	p.Export = &domain.ExportRecord{
		Path:      res.Path,
		Format:    format,
		CreatedAt: e.now().UTC(),
	}
	p.Status = domain.ProjectExported
	p.UpdatedAt = e.now().UTC()
	if err := e.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return &res, nil
}
