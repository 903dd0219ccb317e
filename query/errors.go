package query

import "errors"

var (
	// ErrEmptySequence is returned when an operation needs at least one
	// element but the query produced none.
	ErrEmptySequence = errors.New("query: empty sequence")

	// ErrKeyNotFound is returned by Grouping.Get for a key with no bucket.
	ErrKeyNotFound = errors.New("query: key not found")
)
