package repository

import (
	"context"
	"errors"
)

// HistorySlot is the slot name holding the generation history.
const HistorySlot = "homeworkHistory"

// SlotStorage binds one named slot to a read/write pair, satisfying the
// history package's Storage interface. A missing slot reads as nil.
type SlotStorage struct {
	repo SlotRepo
	name string
}

// NewSlotStorage creates a SlotStorage for the named slot.
func NewSlotStorage(repo SlotRepo, name string) *SlotStorage {
	return &SlotStorage{repo: repo, name: name}
}

func (s *SlotStorage) Read(ctx context.Context) ([]byte, error) {
	data, err := s.repo.Get(ctx, s.name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return data, err
}

func (s *SlotStorage) Write(ctx context.Context, data []byte) error {
	return s.repo.Put(ctx, s.name, data)
}
