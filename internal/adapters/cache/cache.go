// Package cache implements the session-scoped element cache.
package cache

import (
	"context"
	"sync"

	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Store is an in-memory id -> element map scoped to one project+commit.
// Entries are written on first fetch and only removed by Clear. Because
// a commit is immutable, a refetch under the same key overwrites with
// an identical payload, so last-wins writes are safe.
//
// Concurrent GetOrFetch calls for the same uncached id are collapsed
// into a single request via singleflight.
type Store struct {
	session domain.Session
	client  ports.ModelClient
	logger  ports.Logger

	mu       sync.RWMutex
	elements map[string]domain.Element
	group    singleflight.Group
}

// New creates an empty Store bound to the given session.
func New(session domain.Session, client ports.ModelClient, log ports.Logger) *Store {
	return &Store{
		session:  session,
		client:   client,
		logger:   log,
		elements: make(map[string]domain.Element),
	}
}

// Session returns the project+commit scope of the cached entries.
func (s *Store) Session() domain.Session {
	return s.session
}

// Get is a pure lookup.
func (s *Store) Get(id string) (domain.Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	el, ok := s.elements[id]
	return el, ok
}

// GetOrFetch returns the cached element or fetches and stores it.
func (s *Store) GetOrFetch(ctx context.Context, id string) (domain.Element, error) {
	if el, ok := s.Get(id); ok {
		return el, nil
	}

	v, err, _ := s.group.Do(id, func() (any, error) {
		// A racing call may have stored the element between the miss
		// and acquiring the flight.
		if el, ok := s.Get(id); ok {
			return el, nil
		}

		el, err := s.client.Element(ctx, s.session, id)
		if err != nil {
			return domain.Element{}, zerr.With(zerr.Wrap(err, domain.ErrNotFoundInCache.Error()), "id", id)
		}
		s.Set(el)
		return el, nil
	})
	if err != nil {
		return domain.Element{}, err
	}
	return v.(domain.Element), nil
}

// Set stores an element fetched out of band.
func (s *Store) Set(el domain.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements[el.ID] = el
}

// Snapshot returns a copy of all cached entries keyed by id.
func (s *Store) Snapshot() map[string]domain.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Element, len(s.elements))
	for id, el := range s.elements {
		out[id] = el
	}
	return out
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = make(map[string]domain.Element)
}

var _ ports.ElementCache = (*Store)(nil)
