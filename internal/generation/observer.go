package generation

import (
	"context"
	"errors"

	"github.com/tulikamejora/homework-help/internal/domain"
	"go.uber.org/zap"
)

// GenerationEvent records metadata about a single generation run.
type GenerationEvent struct {
	Subject        string
	Length         string
	EducationLevel string
	LatencyMs      int64
	Success        bool
	ErrorCode      string
}

// Observer receives events about generation runs for logging and metrics.
type Observer interface {
	OnGenerationComplete(event GenerationEvent)
}

// ZapObserver writes generation events to a zap logger.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an Observer that logs events to log.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnGenerationComplete(event GenerationEvent) {
	fields := []zap.Field{
		zap.String("subject", event.Subject),
		zap.String("length", event.Length),
		zap.String("education_level", event.EducationLevel),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success {
		o.log.Info("generation complete", fields...)
		return
	}
	o.log.Warn("generation failed", append(fields, zap.String("error_code", event.ErrorCode))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnGenerationComplete(GenerationEvent) {}

// errorCode classifies a generation error for event reporting.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrIncomplete):
		return "incomplete"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline"
	default:
		return "internal"
	}
}
