package tui

import "go.trai.ch/symex/internal/core/domain"

// childrenLoadedMsg reports that an async expansion of a node finished,
// successfully or not. The node itself carries the results.
type childrenLoadedMsg struct {
	node *domain.Node
	err  error
}
