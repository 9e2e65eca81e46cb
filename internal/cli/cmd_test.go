package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmoss/deckgen/internal/config"
	"github.com/calebmoss/deckgen/internal/llm"
	"github.com/calebmoss/deckgen/internal/repository"
	"github.com/calebmoss/deckgen/internal/testutil"
	"github.com/calebmoss/deckgen/internal/workflow"
)

type stubClient struct {
	responses map[string]string
}

func (s *stubClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	return &llm.GenerateResponse{Text: s.responses[req.ModelID], Model: req.ModelID}, nil
}

func (s *stubClient) Available(ctx context.Context, modelID string) bool { return true }

func newTestApp(t *testing.T, client llm.Client) *App {
	t.Helper()
	if client == nil {
		client = &stubClient{}
	}
	repo := repository.NewSQLiteProjectRepo(testutil.NewTestDB(t))
	return &App{
		Engine: workflow.NewEngine(repo, client, nil, nil),
		Config: &config.Config{OutputDir: t.TempDir()},
	}
}

func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func createProjectID(t *testing.T, app *App) string {
	t.Helper()
	out, err := runCmd(t, app, "project", "new", "Test", "Deck")
	require.NoError(t, err)
	// Output: "Created project Test Deck [abcd1234]"
	start := strings.Index(out, "[")
	end := strings.Index(out, "]")
	require.Greater(t, end, start)
	return out[start+1 : end]
}

func TestProjectNewAndList(t *testing.T) {
	app := newTestApp(t, nil)
	id := createProjectID(t, app)
	assert.Len(t, id, 8)

	out, err := runCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Test Deck")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "initialized")
}

func TestProjectShowAndRemove(t *testing.T) {
	app := newTestApp(t, nil)
	id := createProjectID(t, app)

	out, err := runCmd(t, app, "project", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Test Deck")

	_, err = runCmd(t, app, "project", "remove", id)
	require.NoError(t, err)

	_, err = runCmd(t, app, "project", "show", id)
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestBrainstormCommand(t *testing.T) {
	app := newTestApp(t, &stubClient{responses: map[string]string{"claude": "some ideas"}})
	id := createProjectID(t, app)

	out, err := runCmd(t, app, "brainstorm", "ai", "ethics", "--project", id, "-a", "time is short")
	require.NoError(t, err)
	assert.Contains(t, out, "some ideas")
	assert.Contains(t, out, "claude")
}

func TestBrainstormRequiresProject(t *testing.T) {
	app := newTestApp(t, nil)
	_, err := runCmd(t, app, "brainstorm", "topic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project")
}

func TestBrainstormCompareCommand(t *testing.T) {
	app := newTestApp(t, &stubClient{responses: map[string]string{
		"claude-sonnet": "sonnet take",
		"gpt4":          "gpt take",
	}})
	id := createProjectID(t, app)

	out, err := runCmd(t, app, "brainstorm", "compare", "ai ethics", "--project", id)
	require.NoError(t, err)
	assert.Contains(t, out, "sonnet take")
	assert.Contains(t, out, "gpt take")
}

func TestFullPipelineThroughCLI(t *testing.T) {
	app := newTestApp(t, nil)
	id := createProjectID(t, app)

	outlineText := "# Deep Learning\n- Backpropagation: how networks learn from errors\n# Applications\n- Vision: image recognition at scale"
	_, err := runCmd(t, app, "outline", "set", id, outlineText)
	require.NoError(t, err)

	out, err := runCmd(t, app, "outline", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "# Deep Learning")

	out, err = runCmd(t, app, "slides", "generate", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 2 slides")
	assert.Contains(t, out, "Backpropagation:")

	out, err = runCmd(t, app, "slides", "format", id, "--highlight", "#ffd700")
	require.NoError(t, err)
	assert.Contains(t, out, "Deep Learning")

	out, err = runCmd(t, app, "export", id, "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to")
	assert.Contains(t, out, filepath.Join(app.Config.OutputDir, "deep-learning.html"))
}

func TestSlidesGenerateWithoutOutline(t *testing.T) {
	app := newTestApp(t, nil)
	id := createProjectID(t, app)

	_, err := runCmd(t, app, "slides", "generate", id)
	assert.ErrorIs(t, err, workflow.ErrNoOutline)
}

func TestOutlineGenerateCommand(t *testing.T) {
	app := newTestApp(t, &stubClient{responses: map[string]string{
		"claude":        "raw ideas",
		"claude-sonnet": "# Generated\n- point: detail",
	}})
	id := createProjectID(t, app)

	_, err := runCmd(t, app, "brainstorm", "ml", "--project", id)
	require.NoError(t, err)

	out, err := runCmd(t, app, "outline", "generate", id, "--from", "claude")
	require.NoError(t, err)
	assert.Contains(t, out, "# Generated")
}

func TestExportInvalidFormat(t *testing.T) {
	app := newTestApp(t, nil)
	id := createProjectID(t, app)

	_, err := runCmd(t, app, "export", id, "--format", "keynote")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestExportFallbackMessageShown(t *testing.T) {
	app := newTestApp(t, nil)
	id := createProjectID(t, app)

	_, err := runCmd(t, app, "outline", "set", id, "# T\n- a: b")
	require.NoError(t, err)
	_, err = runCmd(t, app, "slides", "generate", id)
	require.NoError(t, err)

	out, err := runCmd(t, app, "export", id, "--format", "pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported as HTML instead")
}
