package workflow

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// StepEvent captures lightweight execution telemetry for one workflow step.
type StepEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// StepObserver receives workflow step events.
type StepObserver interface {
	ObserveStep(ctx context.Context, event StepEvent)
}

// NoopStepObserver ignores all events.
type NoopStepObserver struct{}

func (NoopStepObserver) ObserveStep(context.Context, StepEvent) {}

type logStepObserver struct {
	logger *slog.Logger
}

// NewLogStepObserver writes workflow step events to the provided writer.
func NewLogStepObserver(w io.Writer) StepObserver {
	if w == nil {
		return NoopStepObserver{}
	}
	return &logStepObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logStepObserver) ObserveStep(ctx context.Context, event StepEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"step", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "workflow_step", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "workflow_step", attrs...)
}
