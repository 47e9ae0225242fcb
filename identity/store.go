package identity

import (
	"context"
	"errors"
)

// Sentinel errors for registry operations.
var (
	// ErrExists is returned when an enrollment would register an
	// identifier the registry already holds.
	ErrExists = errors.New("identifier already registered")

	// ErrLookupBy is returned for an unsupported lookup-by mode.
	ErrLookupBy = errors.New("invalid lookup-by mode")

	// ErrEmptyFilter rejects writes scoped by a zero filter.
	ErrEmptyFilter = errors.New("filter has no predicates")
)

// Registry is the identity store the resolver and enrollment flows
// consult. Lookups signal absence with a nil record, not an error.
// Implementations must be safe for concurrent use.
type Registry interface {
	// FindOne returns the first record matching the filter, or nil.
	FindOne(ctx context.Context, f Filter) (*Record, error)

	// Count returns the number of records matching the filter.
	Count(ctx context.Context, f Filter) (int64, error)

	// Insert stores a new record and returns its generated ID.
	Insert(ctx context.Context, rec *Record) (string, error)

	// Update patches all records matching the filter and returns the
	// matched count.
	Update(ctx context.Context, f Filter, p Patch) (int64, error)
}
