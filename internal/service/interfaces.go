package service

import (
	"context"
	"errors"

	"github.com/tulikamejora/homework-help/internal/domain"
)

var (
	// ErrRecordNotFound is returned when no history record matches an id.
	ErrRecordNotFound = errors.New("history record not found")

	// ErrAmbiguousID is returned when an id prefix matches several records.
	ErrAmbiguousID = errors.New("id prefix matches more than one record")
)

// HomeworkService validates a configuration, generates its document and
// records the result in history.
type HomeworkService interface {
	Generate(ctx context.Context, cfg domain.Configuration) (*domain.HistoryRecord, error)
}

// HistoryService reads and prunes the generation history.
type HistoryService interface {
	List(ctx context.Context) []domain.HistoryRecord
	Get(ctx context.Context, idOrPrefix string) (*domain.HistoryRecord, error)
	Delete(ctx context.Context, idOrPrefix string) (*domain.HistoryRecord, error)
}

// DocumentGenerator produces a document for a complete configuration.
// Implemented by *generation.Generator.
type DocumentGenerator interface {
	Generate(ctx context.Context, cfg domain.Configuration) (string, error)
}

// RecordStore is the bounded history log. Implemented by *history.Store.
type RecordStore interface {
	Load(ctx context.Context) []domain.HistoryRecord
	Append(ctx context.Context, rec domain.HistoryRecord) []domain.HistoryRecord
	Delete(ctx context.Context, id string) bool
}
