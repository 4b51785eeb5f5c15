package generation

import (
	"context"
	"errors"
	"time"

	"github.com/tulikamejora/homework-help/internal/domain"
)

// DefaultDelay is how long a generation appears to take.
const DefaultDelay = 3 * time.Second

// ErrPending is returned by Task.Result before the task has finished.
var ErrPending = errors.New("generation still in progress")

// Generator runs Synthesize behind a fixed delay.
type Generator struct {
	delay    time.Duration
	observer Observer
}

// NewGenerator creates a Generator. A negative delay is treated as zero and
// a nil observer discards events.
func NewGenerator(delay time.Duration, observer Observer) *Generator {
	if delay < 0 {
		delay = 0
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Generator{delay: delay, observer: observer}
}

// Delay returns the configured artificial latency.
func (g *Generator) Delay() time.Duration { return g.delay }

// Task is a single deferred generation. Its result becomes available once
// Done is closed.
type Task struct {
	done   chan struct{}
	cancel context.CancelFunc
	doc    string
	err    error
}

// Start begins generating a document for cfg and returns immediately.
// The configuration is copied, so later edits by the caller do not affect
// the task. Incomplete configurations fail without waiting for the delay.
func (g *Generator) Start(ctx context.Context, cfg domain.Configuration) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{done: make(chan struct{}), cancel: cancel}

	if err := cfg.Validate(); err != nil {
		g.finish(t, cfg, time.Now(), "", err)
		return t
	}

	go func() {
		start := time.Now()
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			g.finish(t, cfg, start, "", ctx.Err())
		case <-timer.C:
			doc, err := Synthesize(cfg)
			g.finish(t, cfg, start, doc, err)
		}
	}()
	return t
}

// Generate starts a task and waits for it.
func (g *Generator) Generate(ctx context.Context, cfg domain.Configuration) (string, error) {
	return g.Start(ctx, cfg).Wait(ctx)
}

func (g *Generator) finish(t *Task, cfg domain.Configuration, start time.Time, doc string, err error) {
	t.doc, t.err = doc, err
	g.observer.OnGenerationComplete(GenerationEvent{
		Subject:        cfg.Subject,
		Length:         cfg.Length,
		EducationLevel: cfg.EducationLevel,
		LatencyMs:      time.Since(start).Milliseconds(),
		Success:        err == nil,
		ErrorCode:      errorCode(err),
	})
	t.cancel()
	close(t.done)
}

// Done is closed when the task has a result.
func (t *Task) Done() <-chan struct{} { return t.done }

// Result returns the generated document, or ErrPending if the task has not
// finished yet.
func (t *Task) Result() (string, error) {
	select {
	case <-t.done:
		return t.doc, t.err
	default:
		return "", ErrPending
	}
}

// Wait blocks until the task finishes or ctx is done. Abandoning the wait
// does not cancel the task; use Cancel for that.
func (t *Task) Wait(ctx context.Context) (string, error) {
	select {
	case <-t.done:
		return t.doc, t.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Cancel stops a pending task. It is safe to call more than once and after
// completion.
func (t *Task) Cancel() { t.cancel() }
