package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tulikamejora/homework-help/internal/domain"
	"go.uber.org/zap"
)

type homeworkService struct {
	generator DocumentGenerator
	records   RecordStore
	log       *zap.Logger
	now       func() time.Time
}

// NewHomeworkService wires the generation pipeline. A nil logger discards
// output.
func NewHomeworkService(generator DocumentGenerator, records RecordStore, log *zap.Logger) HomeworkService {
	if log == nil {
		log = zap.NewNop()
	}
	return &homeworkService{generator: generator, records: records, log: log, now: time.Now}
}

func (s *homeworkService) Generate(ctx context.Context, cfg domain.Configuration) (*domain.HistoryRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.generator.Generate(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("generating assignment: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("allocating record id: %w", err)
	}
	rec := domain.HistoryRecord{
		ID:        id.String(),
		Config:    cfg,
		Document:  doc,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	retained := s.records.Append(ctx, rec)
	s.log.Info("assignment generated",
		zap.String("id", rec.ID),
		zap.String("subject", cfg.Subject),
		zap.Int("history_size", len(retained)))

	return &rec, nil
}
