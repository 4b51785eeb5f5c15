package testutil

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrStorageUnavailable is the error injected by FailingStorage.
var ErrStorageUnavailable = errors.New("storage unavailable")

// FailingStorage simulates a disabled or full persistent slot. Reads and
// writes fail according to FailReads and FailWrites; calls are counted so
// tests can assert that persistence was attempted.
type FailingStorage struct {
	FailReads  bool
	FailWrites bool
	Data       []byte

	Reads  atomic.Int32
	Writes atomic.Int32
}

func (f *FailingStorage) Read(ctx context.Context) ([]byte, error) {
	f.Reads.Add(1)
	if f.FailReads {
		return nil, ErrStorageUnavailable
	}
	return f.Data, nil
}

func (f *FailingStorage) Write(ctx context.Context, data []byte) error {
	f.Writes.Add(1)
	if f.FailWrites {
		return ErrStorageUnavailable
	}
	f.Data = append([]byte(nil), data...)
	return nil
}
