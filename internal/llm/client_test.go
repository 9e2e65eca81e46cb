package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []CallEvent
}

func (r *recordingObserver) OnCallComplete(e CallEvent) {
	r.events = append(r.events, e)
}

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.AnthropicAPIKey = "test-anthropic-key"
	cfg.OpenAIAPIKey = "test-openai-key"
	cfg.MaxRetries = 0
	return cfg
}

func TestGenerate_Anthropic(t *testing.T) {
	var gotReq anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-anthropic-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"text":"five slide ideas"}],"usage":{"input_tokens":12,"output_tokens":34}}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.AnthropicEndpoint = srv.URL
	obs := &recordingObserver{}
	client := NewClient(cfg, obs)

	// Empty ModelID falls back to the configured default ("claude").
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskBrainstorm,
		SystemPrompt: "You are concise.",
		UserPrompt:   "brainstorm photosynthesis",
	})
	require.NoError(t, err)

	assert.Equal(t, "five slide ideas", resp.Text)
	assert.Equal(t, ProviderAnthropic, resp.Provider)
	assert.Equal(t, 12, resp.Usage.InputTokens)
	assert.Equal(t, 34, resp.Usage.OutputTokens)

	assert.Equal(t, "claude-3-opus-20240229", gotReq.Model)
	assert.Equal(t, "You are concise.", gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "brainstorm photosynthesis", gotReq.Messages[0].Content)
	// Task config for brainstorm overrides the model defaults.
	assert.Equal(t, 0.7, gotReq.Temperature)
	assert.Equal(t, 800, gotReq.MaxTokens)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "claude", obs.events[0].ModelID)
}

func TestGenerate_OpenAI(t *testing.T) {
	var gotReq openaiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"an outline"}}],"usage":{"prompt_tokens":5,"completion_tokens":9}}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.OpenAIEndpoint = srv.URL
	client := NewClient(cfg, nil)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskOutline,
		ModelID:      "gpt4",
		SystemPrompt: "system text",
		UserPrompt:   "outline please",
	})
	require.NoError(t, err)

	assert.Equal(t, "an outline", resp.Text)
	assert.Equal(t, ProviderOpenAI, resp.Provider)
	assert.Equal(t, 5, resp.Usage.InputTokens)
	assert.Equal(t, 9, resp.Usage.OutputTokens)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestGenerate_Ollama(t *testing.T) {
	var gotReq ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"model":"llama3.2","response":"local answer"}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.OllamaEndpoint = srv.URL
	client := NewClient(cfg, nil)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskEnhance,
		ModelID:    "local",
		UserPrompt: "enhance these",
	})
	require.NoError(t, err)

	assert.Equal(t, "local answer", resp.Text)
	assert.Equal(t, ProviderOllama, resp.Provider)
	assert.False(t, gotReq.Stream)
	assert.Equal(t, "llama3.2", gotReq.Model)
}

func TestGenerate_UnknownModel(t *testing.T) {
	client := NewClient(testConfig(t), nil)

	_, err := client.Generate(context.Background(), GenerateRequest{ModelID: "nope"})
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestGenerate_MissingCredentials(t *testing.T) {
	cfg := testConfig(t)
	cfg.AnthropicAPIKey = ""
	client := NewClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{ModelID: "claude"})
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestGenerate_RequestOverridesBeatTaskConfig(t *testing.T) {
	var gotReq anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"content":[{"text":"ok"}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.AnthropicEndpoint = srv.URL
	client := NewClient(cfg, nil)

	temp := 0.2
	maxTok := 64
	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:        TaskBrainstorm,
		ModelID:     "claude",
		UserPrompt:  "x",
		Temperature: &temp,
		MaxTokens:   &maxTok,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.2, gotReq.Temperature)
	assert.Equal(t, 64, gotReq.MaxTokens)
}

func TestGenerate_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"content":[{"text":"second try"}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.AnthropicEndpoint = srv.URL
	cfg.MaxRetries = 1
	client := NewClient(cfg, nil)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskBrainstorm,
		ModelID:    "claude",
		UserPrompt: "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "second try", resp.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerate_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.AnthropicEndpoint = srv.URL
	obs := &recordingObserver{}
	client := NewClient(cfg, obs)

	_, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskBrainstorm,
		ModelID:    "claude",
		UserPrompt: "x",
	})
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Contains(t, err.Error(), "502")

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestGenerate_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.AnthropicEndpoint = srv.URL
	client := NewClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{ModelID: "claude", UserPrompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.Write([]byte(`{"models":[]}`))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.OllamaEndpoint = srv.URL
	client := NewClient(cfg, nil)

	ctx := context.Background()
	assert.True(t, client.Available(ctx, "claude"))
	assert.True(t, client.Available(ctx, "local"))
	assert.False(t, client.Available(ctx, "nope"))

	noKey := testConfig(t)
	noKey.OpenAIAPIKey = ""
	assert.False(t, NewClient(noKey, nil).Available(ctx, "gpt4"))
}

func TestAvailable_OllamaDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	cfg := testConfig(t)
	cfg.OllamaEndpoint = endpoint
	client := NewClient(cfg, nil)

	assert.False(t, client.Available(context.Background(), "local"))
}
