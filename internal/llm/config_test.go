package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("DECKGEN_DEFAULT_MODEL", "local")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")
	t.Setenv("DECKGEN_LLM_MAX_RETRIES", "3")
	t.Setenv("DECKGEN_OUTLINE_TIMEOUT_MS", "120000")

	cfg := LoadConfig()

	assert.Equal(t, "local", cfg.DefaultModel)
	assert.Equal(t, "sk-ant-env", cfg.AnthropicAPIKey)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 120000, cfg.Tasks[TaskOutline].TimeoutMs)
}

func TestApplyEnv_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("DECKGEN_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("DECKGEN_BRAINSTORM_TIMEOUT_MS", "-5")

	cfg := LoadConfig()

	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 25000, cfg.Tasks[TaskBrainstorm].TimeoutMs)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 90000, cfg.TaskTimeout(TaskOutline))

	// Unknown tasks fall back to the global timeout.
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskType("other")))
}
