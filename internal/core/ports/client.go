// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/symex/internal/core/domain"
)

// ModelClient defines the read surface of the remote SysML v2 model
// server. All calls are synchronous single requests; callers decide
// about retries (interactive expansion omits failed children instead).
//
//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks
type ModelClient interface {
	// Projects lists the projects visible to the authenticated user.
	Projects(ctx context.Context) ([]domain.Project, error)

	// Commits lists the commits of a project in server order. Callers
	// that need a particular ordering sort by the Created timestamp.
	Commits(ctx context.Context, projectID string) ([]domain.Commit, error)

	// Roots fetches the root elements of the session's commit.
	Roots(ctx context.Context, session domain.Session) ([]domain.Element, error)

	// Element fetches a single element by id within the session.
	Element(ctx context.Context, session domain.Session, id string) (domain.Element, error)

	// Elements enumerates every element of the session's commit in
	// pages, invoking fn per element. Used by batch export only; the
	// interactive explorer fetches on demand instead.
	Elements(ctx context.Context, session domain.Session, pageSize int, fn func(domain.Element) error) error
}
