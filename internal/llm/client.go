package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for a completion call.
type GenerateRequest struct {
	Task         TaskType
	ModelID      string // empty uses the configured default model
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses model default
	MaxTokens    *int     // nil uses model default
}

// TokenUsage reports provider-side token accounting when available.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// GenerateResponse holds the result of a completion call.
type GenerateResponse struct {
	Text      string
	Model     string
	Provider  Provider
	Usage     TokenUsage
	LatencyMs int64
}

// Client provides access to the configured completion providers.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the given model's provider is configured
	// and, for local providers, reachable.
	Available(ctx context.Context, modelID string) bool
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client that dispatches to the provider registered
// for each model id.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	modelID := req.ModelID
	if modelID == "" {
		modelID = c.cfg.DefaultModel
	}
	model, ok := c.cfg.Models[modelID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, modelID)
	}
	if !c.configured(model.Provider) {
		return nil, fmt.Errorf("%w: %s credentials not configured", ErrProviderUnavailable, model.Provider)
	}

	temp := model.Temperature
	if tc, ok := c.cfg.Tasks[req.Task]; ok && tc.Temperature > 0 {
		temp = tc.Temperature
	}
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := model.MaxTokens
	if tc, ok := c.cfg.Tasks[req.Task]; ok && tc.MaxTokens > 0 {
		maxTok = tc.MaxTokens
	}
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		if i > 0 {
			// Exponential backoff between attempts: 1s, 2s, 4s, ...
			if err := sleepCtx(ctx, time.Duration(1<<(i-1))*time.Second); err != nil {
				break
			}
		}

		text, usage, err := c.doRequest(ctx, model, req.SystemPrompt, req.UserPrompt, temp, maxTok)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Task:      req.Task,
				ModelID:   modelID,
				Provider:  model.Provider,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      text,
				Model:     model.Model,
				Provider:  model.Provider,
				Usage:     usage,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	errCode := errorCode(lastErr)
	if ctx.Err() != nil {
		errCode = "TIMEOUT"
	}
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		ModelID:   modelID,
		Provider:  model.Provider,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errCode,
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if isConnectionError(lastErr) {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, lastErr)
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *httpClient) Available(ctx context.Context, modelID string) bool {
	model, ok := c.cfg.Models[modelID]
	if !ok {
		return false
	}
	if model.Provider != ProviderOllama {
		return c.configured(model.Provider)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.OllamaEndpoint + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *httpClient) configured(p Provider) bool {
	switch p {
	case ProviderAnthropic:
		return c.cfg.AnthropicAPIKey != ""
	case ProviderOpenAI:
		return c.cfg.OpenAIAPIKey != ""
	case ProviderOllama:
		return c.cfg.OllamaEndpoint != ""
	default:
		return false
	}
}

func (c *httpClient) doRequest(ctx context.Context, model ModelConfig, system, prompt string, temp float64, maxTok int) (string, TokenUsage, error) {
	switch model.Provider {
	case ProviderAnthropic:
		return c.doAnthropic(ctx, model, system, prompt, temp, maxTok)
	case ProviderOpenAI:
		return c.doOpenAI(ctx, model, system, prompt, temp, maxTok)
	case ProviderOllama:
		return c.doOllama(ctx, model, system, prompt, temp, maxTok)
	default:
		return "", TokenUsage{}, fmt.Errorf("unsupported provider: %s", model.Provider)
	}
}

// anthropicRequest is the JSON body sent to POST /v1/messages.
type anthropicRequest struct {
	Model       string            `json:"model"`
	MaxTokens   int               `json:"max_tokens"`
	Temperature float64           `json:"temperature"`
	System      string            `json:"system,omitempty"`
	Messages    []providerMessage `json:"messages"`
	Stream      bool              `json:"stream"`
}

type providerMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (c *httpClient) doAnthropic(ctx context.Context, model ModelConfig, system, prompt string, temp float64, maxTok int) (string, TokenUsage, error) {
	body := anthropicRequest{
		Model:       model.Model,
		MaxTokens:   maxTok,
		Temperature: temp,
		System:      system,
		Messages:    []providerMessage{{Role: "user", Content: prompt}},
		Stream:      false,
	}

	var resp anthropicResponse
	if err := c.post(ctx, c.cfg.AnthropicEndpoint+"/v1/messages", body, &resp, map[string]string{
		"x-api-key":         c.cfg.AnthropicAPIKey,
		"anthropic-version": "2023-06-01",
	}); err != nil {
		return "", TokenUsage{}, err
	}
	if len(resp.Content) == 0 {
		return "", TokenUsage{}, fmt.Errorf("%w: empty content", ErrInvalidOutput)
	}
	return resp.Content[0].Text, TokenUsage{
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}

// openaiRequest is the JSON body sent to POST /v1/chat/completions.
type openaiRequest struct {
	Model       string            `json:"model"`
	Temperature float64           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens"`
	Messages    []providerMessage `json:"messages"`
}

type openaiResponse struct {
	Choices []struct {
		Message providerMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (c *httpClient) doOpenAI(ctx context.Context, model ModelConfig, system, prompt string, temp float64, maxTok int) (string, TokenUsage, error) {
	body := openaiRequest{
		Model:       model.Model,
		Temperature: temp,
		MaxTokens:   maxTok,
		Messages: []providerMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	var resp openaiResponse
	if err := c.post(ctx, c.cfg.OpenAIEndpoint+"/v1/chat/completions", body, &resp, map[string]string{
		"Authorization": "Bearer " + c.cfg.OpenAIAPIKey,
	}); err != nil {
		return "", TokenUsage{}, err
	}
	if len(resp.Choices) == 0 {
		return "", TokenUsage{}, fmt.Errorf("%w: no choices", ErrInvalidOutput)
	}
	return resp.Choices[0].Message.Content, TokenUsage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *httpClient) doOllama(ctx context.Context, model ModelConfig, system, prompt string, temp float64, maxTok int) (string, TokenUsage, error) {
	body := ollamaRequest{
		Model:  model.Model,
		System: system,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: temp,
			NumPredict:  maxTok,
		},
	}

	var resp ollamaResponse
	if err := c.post(ctx, c.cfg.OllamaEndpoint+"/api/generate", body, &resp, nil); err != nil {
		return "", TokenUsage{}, err
	}
	return resp.Response, TokenUsage{}, nil
}

func (c *httpClient) post(ctx context.Context, url string, body, out any, headers map[string]string) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
