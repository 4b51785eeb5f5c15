package domain

import "errors"

var (
	// ErrIncomplete is returned when generation is requested before every
	// required field is set.
	ErrIncomplete = errors.New("configuration incomplete")

	// ErrUnknownField is returned by SetField for a field name it does not know.
	ErrUnknownField = errors.New("unknown configuration field")

	// ErrNotInCatalog is returned when a picker value is not a catalog label.
	ErrNotInCatalog = errors.New("value is not a catalog option")
)
