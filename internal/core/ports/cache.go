package ports

import (
	"context"

	"go.trai.ch/symex/internal/core/domain"
)

// ElementCache maps element ids to their last-fetched representation
// within one session. Entries are created on first fetch, overwritten
// idempotently on refetch, and destroyed only by Clear on
// project/commit switch. No eviction, no TTL, no partial entries.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ElementCache interface {
	// Session returns the project+commit scope of the cached entries.
	Session() domain.Session

	// Get is a pure lookup.
	Get(id string) (domain.Element, bool)

	// GetOrFetch returns the cached element or delegates to the model
	// client, storing the result before returning. Concurrent calls
	// for the same uncached id share one fetch.
	GetOrFetch(ctx context.Context, id string) (domain.Element, error)

	// Set stores an element fetched out of band (roots, batch pages).
	Set(el domain.Element)

	// Snapshot returns a copy of all cached entries keyed by id.
	Snapshot() map[string]domain.Element

	// Len returns the number of cached entries.
	Len() int

	// Clear drops every entry. The next GetOrFetch for any previously
	// cached id issues a new request.
	Clear()
}
