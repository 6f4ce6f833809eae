package domain

import "sync"

// NodeState represents the expansion state of a tree node.
type NodeState string

const (
	// StateUnexpanded indicates the node still carries its placeholder child.
	StateUnexpanded NodeState = "Unexpanded"
	// StateExpanding indicates a child fetch is in flight.
	StateExpanding NodeState = "Expanding"
	// StateExpanded indicates the placeholder has been replaced by the real children.
	StateExpanded NodeState = "Expanded"
)

// ChildResult is the tagged outcome of resolving one child reference
// during expansion: loaded, failed to fetch, or filtered out as a
// non-displayable type. Failed and filtered slots stay out of the tree
// but remain distinguishable from "no children at all".
type ChildResult struct {
	Ref      string
	Element  Element
	Err      error
	Filtered bool
}

// Loaded reports whether the slot resolved to a displayable element.
func (r ChildResult) Loaded() bool {
	return r.Err == nil && !r.Filtered
}

// Node wraps one cached element in the explorer tree. A node is either
// unexpanded (exactly one synthetic placeholder child), expanding, or
// expanded (zero or more real children); it never holds a mix of
// placeholder and real children. Once expanded, the placeholder never
// reappears, even if expansion is retried.
type Node struct {
	Element Element
	Depth   int

	mu       sync.Mutex
	state    NodeState
	children []*Node
	results  []ChildResult
}

// NewNode creates an unexpanded node for the given element.
func NewNode(el Element, depth int) *Node {
	return &Node{Element: el, Depth: depth, state: StateUnexpanded}
}

// State returns the node's current expansion state.
func (n *Node) State() NodeState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// HasPlaceholder reports whether the synthetic placeholder child is
// still standing in for the real children.
func (n *Node) HasPlaceholder() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state != StateExpanded
}

// BeginExpand transitions Unexpanded -> Expanding. It returns false when
// the node is already expanding or expanded, so concurrent expansion
// requests collapse into one fetch.
func (n *Node) BeginExpand() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StateUnexpanded {
		return false
	}
	n.state = StateExpanding
	return true
}

// AbortExpand reverts Expanding -> Unexpanded after a hard failure so a
// later attempt can retry. Expanded nodes are left untouched.
func (n *Node) AbortExpand() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state == StateExpanding {
		n.state = StateUnexpanded
	}
}

// Complete atomically replaces the placeholder with the materialized
// children built from the loaded results, preserving result order, and
// transitions the node to Expanded. The full result list is retained so
// callers can distinguish empty-because-childless from
// empty-because-failed.
func (n *Node) Complete(results []ChildResult) {
	children := make([]*Node, 0, len(results))
	for _, res := range results {
		if res.Loaded() {
			children = append(children, NewNode(res.Element, n.Depth+1))
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.results = results
	n.children = children
	n.state = StateExpanded
}

// Children returns the materialized child nodes. Empty until expanded.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Results returns all child slot outcomes from the last expansion.
func (n *Node) Results() []ChildResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ChildResult, len(n.results))
	copy(out, n.results)
	return out
}

// FailedResults returns the slots whose fetch failed during expansion.
func (n *Node) FailedResults() []ChildResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	var failed []ChildResult
	for _, res := range n.results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}
