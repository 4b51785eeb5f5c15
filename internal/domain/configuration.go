package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/tulikamejora/homework-help/internal/catalog"
)

// Configuration is the in-progress set of selections describing a
// requested assignment. The zero value is an empty, incomplete configuration.
type Configuration struct {
	Subject        string
	Length         string
	EducationLevel string
	CustomTopic    string
}

// Get returns the current value of a field.
func (c Configuration) Get(f Field) string {
	switch f {
	case FieldSubject:
		return c.Subject
	case FieldLength:
		return c.Length
	case FieldEducationLevel:
		return c.EducationLevel
	case FieldCustomTopic:
		return c.CustomTopic
	}
	return ""
}

// SetField replaces one field. Subject, length and education level accept
// only catalog labels, or the empty string to clear the selection.
func (c *Configuration) SetField(f Field, value string) error {
	switch f {
	case FieldSubject:
		if value != "" && !catalog.HasSubject(value) {
			return fmt.Errorf("subject %q: %w", value, ErrNotInCatalog)
		}
		c.Subject = value
	case FieldLength:
		if value != "" && !catalog.HasLength(value) {
			return fmt.Errorf("length %q: %w", value, ErrNotInCatalog)
		}
		c.Length = value
	case FieldEducationLevel:
		if value != "" && !catalog.HasEducationLevel(value) {
			return fmt.Errorf("education level %q: %w", value, ErrNotInCatalog)
		}
		c.EducationLevel = value
	case FieldCustomTopic:
		c.CustomTopic = strings.TrimSpace(value)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownField)
	}
	return nil
}

// MissingFields returns the required fields that are still empty.
func (c Configuration) MissingFields() []Field {
	var missing []Field
	for _, f := range RequiredFields {
		if c.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// IsComplete reports whether subject, length and education level are set.
func (c Configuration) IsComplete() bool {
	return len(c.MissingFields()) == 0
}

// CompletionRatio returns the share of required fields that are set, as a
// whole percentage rounded to nearest (0, 33, 67 or 100).
func (c Configuration) CompletionRatio() int {
	filled := len(RequiredFields) - len(c.MissingFields())
	return int(math.Round(float64(filled) / float64(len(RequiredFields)) * 100))
}

// Validate returns ErrIncomplete naming the missing fields, or nil.
func (c Configuration) Validate() error {
	missing := c.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = strings.ToLower(f.Label())
	}
	return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(names, ", "))
}
