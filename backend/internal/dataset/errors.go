package dataset

import "errors"

var (
	// ErrNotFound is returned when no record matches a name or symbol.
	ErrNotFound = errors.New("asset not found")

	// ErrInvalidRecord is returned when a record breaks a field invariant.
	ErrInvalidRecord = errors.New("invalid asset record")

	// ErrDuplicateName is returned when two records share a name.
	ErrDuplicateName = errors.New("duplicate asset name")

	// ErrDuplicateSymbol is returned when two records share a symbol.
	ErrDuplicateSymbol = errors.New("duplicate asset symbol")

	// ErrEmpty is returned when a dataset would have no records.
	ErrEmpty = errors.New("dataset has no records")
)
