package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/tulikamejora/homework-help/internal/catalog"
	"github.com/tulikamejora/homework-help/internal/domain"
)

var testRecordCounter atomic.Int64

// Catalog labels used by tests that need a complete, picker-valid configuration.
var (
	TestSubject        = "🧬 Biology"
	TestLength         = catalog.Lengths()[1]
	TestEducationLevel = catalog.EducationLevels()[1]
)

// Configuration options
type ConfigOption func(*domain.Configuration)

func WithSubject(s string) ConfigOption {
	return func(c *domain.Configuration) { c.Subject = s }
}

func WithLength(l string) ConfigOption {
	return func(c *domain.Configuration) { c.Length = l }
}

func WithEducationLevel(l string) ConfigOption {
	return func(c *domain.Configuration) { c.EducationLevel = l }
}

func WithCustomTopic(t string) ConfigOption {
	return func(c *domain.Configuration) { c.CustomTopic = t }
}

// NewTestConfig returns a complete configuration built from catalog labels.
func NewTestConfig(opts ...ConfigOption) domain.Configuration {
	c := domain.Configuration{
		Subject:        TestSubject,
		Length:         TestLength,
		EducationLevel: TestEducationLevel,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Record options
type RecordOption func(*domain.HistoryRecord)

func WithRecordID(id string) RecordOption {
	return func(r *domain.HistoryRecord) { r.ID = id }
}

func WithConfig(c domain.Configuration) RecordOption {
	return func(r *domain.HistoryRecord) { r.Config = c }
}

func WithDocument(doc string) RecordOption {
	return func(r *domain.HistoryRecord) { r.Document = doc }
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.HistoryRecord) { r.CreatedAt = t }
}

// NewTestRecord returns a record with a fresh UUIDv7 id and a unique
// document body. CreatedAt is truncated to the second in UTC so it survives
// serialization unchanged.
func NewTestRecord(opts ...RecordOption) domain.HistoryRecord {
	n := testRecordCounter.Add(1)
	r := domain.HistoryRecord{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Config:    NewTestConfig(),
		Document:  fmt.Sprintf("# Test Assignment %d", n),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
