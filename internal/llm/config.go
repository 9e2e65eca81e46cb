package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of completion task being performed.
type TaskType string

const (
	TaskBrainstorm TaskType = "brainstorm"
	TaskOutline    TaskType = "outline"
	TaskEnhance    TaskType = "enhance"
)

// Provider identifies the backing completion API.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderOllama    Provider = "ollama"
)

// ModelConfig describes one entry in the model registry.
type ModelConfig struct {
	Name        string   `yaml:"name"`
	Provider    Provider `yaml:"provider"`
	Model       string   `yaml:"model"`
	Temperature float64  `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
}

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	TimeoutMs   int     `yaml:"timeout_ms"` // overrides global if > 0
}

// Config holds all configuration for the completion subsystem.
type Config struct {
	LogCalls          bool                    `yaml:"log_calls"`
	DefaultModel      string                  `yaml:"default_model"`
	TimeoutMs         int                     `yaml:"timeout_ms"`
	MaxRetries        int                     `yaml:"max_retries"`
	AnthropicAPIKey   string                  `yaml:"anthropic_api_key"`
	OpenAIAPIKey      string                  `yaml:"openai_api_key"`
	AnthropicEndpoint string                  `yaml:"anthropic_endpoint"`
	OpenAIEndpoint    string                  `yaml:"openai_endpoint"`
	OllamaEndpoint    string                  `yaml:"ollama_endpoint"`
	Models            map[string]ModelConfig  `yaml:"models"`
	Tasks             map[TaskType]TaskConfig `yaml:"tasks"`
}

// DefaultConfig returns a Config with the built-in model registry and
// sensible task defaults.
func DefaultConfig() Config {
	return Config{
		LogCalls:          false,
		DefaultModel:      "claude",
		TimeoutMs:         30000,
		MaxRetries:        1,
		AnthropicEndpoint: "https://api.anthropic.com",
		OpenAIEndpoint:    "https://api.openai.com",
		OllamaEndpoint:    "http://localhost:11434",
		Models: map[string]ModelConfig{
			"claude": {
				Name:        "Claude",
				Provider:    ProviderAnthropic,
				Model:       "claude-3-opus-20240229",
				Temperature: 0.7,
				MaxTokens:   4000,
			},
			"claude-sonnet": {
				Name:        "Claude 3.7 Sonnet",
				Provider:    ProviderAnthropic,
				Model:       "claude-3-7-sonnet-20250219",
				Temperature: 0.7,
				MaxTokens:   4000,
			},
			"gpt4": {
				Name:        "GPT-4",
				Provider:    ProviderOpenAI,
				Model:       "gpt-4-turbo",
				Temperature: 0.7,
				MaxTokens:   4000,
			},
			"local": {
				Name:        "Ollama",
				Provider:    ProviderOllama,
				Model:       "llama3.2",
				Temperature: 0.7,
				MaxTokens:   2048,
			},
		},
		Tasks: map[TaskType]TaskConfig{
			TaskBrainstorm: {Temperature: 0.7, MaxTokens: 800, TimeoutMs: 25000},
			TaskOutline:    {Temperature: 0.5, MaxTokens: 2048, TimeoutMs: 90000},
			TaskEnhance:    {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 45000},
		},
	}
}

// LoadConfig reads completion configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays environment variables on an existing configuration.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("DECKGEN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DECKGEN_DEFAULT_MODEL"); v != "" {
		cfg.DefaultModel = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("DECKGEN_OLLAMA_ENDPOINT"); v != "" {
		cfg.OllamaEndpoint = v
	}
	if v := os.Getenv("DECKGEN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DECKGEN_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskBrainstorm, "DECKGEN_BRAINSTORM_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskOutline, "DECKGEN_OUTLINE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskEnhance, "DECKGEN_ENHANCE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
