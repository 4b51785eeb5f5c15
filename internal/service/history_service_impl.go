package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tulikamejora/homework-help/internal/domain"
	"go.uber.org/zap"
)

type historyService struct {
	records RecordStore
	log     *zap.Logger
}

// NewHistoryService exposes the history log to the shell. A nil logger
// discards output.
func NewHistoryService(records RecordStore, log *zap.Logger) HistoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &historyService{records: records, log: log}
}

func (s *historyService) List(ctx context.Context) []domain.HistoryRecord {
	return s.records.Load(ctx)
}

func (s *historyService) Get(ctx context.Context, idOrPrefix string) (*domain.HistoryRecord, error) {
	return resolveRecord(s.records.Load(ctx), idOrPrefix)
}

func (s *historyService) Delete(ctx context.Context, idOrPrefix string) (*domain.HistoryRecord, error) {
	rec, err := resolveRecord(s.records.Load(ctx), idOrPrefix)
	if err != nil {
		return nil, err
	}
	if !s.records.Delete(ctx, rec.ID) {
		return nil, fmt.Errorf("%s: %w", rec.ID, ErrRecordNotFound)
	}
	s.log.Info("history record deleted", zap.String("id", rec.ID))
	return rec, nil
}

// resolveRecord finds the record whose id equals idOrPrefix, or failing
// that, the single record whose id starts with it.
func resolveRecord(records []domain.HistoryRecord, idOrPrefix string) (*domain.HistoryRecord, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return nil, fmt.Errorf("empty id: %w", ErrRecordNotFound)
	}

	for i := range records {
		if records[i].ID == idOrPrefix {
			r := records[i]
			return &r, nil
		}
	}

	var match *domain.HistoryRecord
	for i := range records {
		r := records[i]
		if strings.HasPrefix(r.ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("%s: %w", idOrPrefix, ErrAmbiguousID)
			}
			match = &r
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%s: %w", idOrPrefix, ErrRecordNotFound)
	}
	return match, nil
}
