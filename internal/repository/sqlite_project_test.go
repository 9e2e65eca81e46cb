package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmoss/deckgen/internal/domain"
	"github.com/calebmoss/deckgen/internal/testutil"
)

func newProject(title string) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Project{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    domain.ProjectInitialized,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSQLiteProjectRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := newProject("Consciousness Research Deck")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Consciousness Research Deck", got.Title)
	assert.Equal(t, domain.ProjectInitialized, got.Status)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
	assert.Nil(t, got.Outline)
	assert.Nil(t, got.Deck)
}

func TestSQLiteProjectRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSQLiteProjectRepo_RoundTripsPayloads(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	p := newProject("AI Ethics")
	p.Status = domain.ProjectGenerated
	p.Brainstorms = map[string]domain.Brainstorm{
		"claude": {Topic: "ai ethics", Result: "1. Fairness\n2. Accountability", Model: "claude", CreatedAt: now},
	}
	p.Outline = &domain.Outline{Content: "# Intro\n- fairness", Source: domain.OutlineAI, Model: "claude", CreatedAt: now}
	p.Deck = &domain.Deck{Slides: []domain.Slide{
		{
			Title: "AI Ethics",
			Type:  domain.SlideTitle,
			Points: []domain.Point{
				{KeyTerm: "Fairness", Explanation: "Treating groups equitably."},
			},
		},
	}}
	p.Formatting = &domain.Formatting{BoldKeyTerms: true, HighlightColor: "#ffd700", CreatedAt: now}
	p.Export = &domain.ExportRecord{Path: "/tmp/ai-ethics.html", Format: domain.FormatHTML, CreatedAt: now}

	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	require.Contains(t, got.Brainstorms, "claude")
	assert.Equal(t, "1. Fairness\n2. Accountability", got.Brainstorms["claude"].Result)

	require.NotNil(t, got.Outline)
	assert.Equal(t, domain.OutlineAI, got.Outline.Source)

	require.NotNil(t, got.Deck)
	require.Len(t, got.Deck.Slides, 1)
	require.Len(t, got.Deck.Slides[0].Points, 1)
	assert.Equal(t, "Fairness", got.Deck.Slides[0].Points[0].KeyTerm)
	assert.Equal(t, "Treating groups equitably.", got.Deck.Slides[0].Points[0].Explanation)

	require.NotNil(t, got.Formatting)
	assert.True(t, got.Formatting.BoldKeyTerms)
	assert.Equal(t, "#ffd700", got.Formatting.HighlightColor)

	require.NotNil(t, got.Export)
	assert.Equal(t, domain.FormatHTML, got.Export.Format)
}

func TestSQLiteProjectRepo_Update(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := newProject("Draft")
	require.NoError(t, repo.Create(ctx, p))

	p.Title = "Final Title"
	p.Status = domain.ProjectOutlined
	p.Outline = &domain.Outline{Content: "# Slide One", Source: domain.OutlineManual, CreatedAt: time.Now().UTC()}
	p.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final Title", got.Title)
	assert.Equal(t, domain.ProjectOutlined, got.Status)
	require.NotNil(t, got.Outline)
	assert.Equal(t, domain.OutlineManual, got.Outline.Source)
}

func TestSQLiteProjectRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	err := repo.Update(context.Background(), newProject("ghost"))
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSQLiteProjectRepo_List_OrderedByCreation(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := newProject("first")
	first.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	second := newProject("second")
	second.CreatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)
}

func TestSQLiteProjectRepo_GetByIDPrefix(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := newProject("prefixed")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByIDPrefix(ctx, p.DisplayID())
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = repo.GetByIDPrefix(ctx, "zzzzzzzz")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = repo.GetByIDPrefix(ctx, "")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSQLiteProjectRepo_GetByIDPrefix_Ambiguous(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := newProject("a")
	a.ID = "abc11111-1111-1111-1111-111111111111"
	b := newProject("b")
	b.ID = "abc22222-2222-2222-2222-222222222222"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	_, err := repo.GetByIDPrefix(ctx, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestSQLiteProjectRepo_Delete(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := newProject("doomed")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrProjectNotFound)
}
