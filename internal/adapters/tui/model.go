package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/symex/internal/core/domain"
)

const (
	treeWidthRatio   = 0.4
	detailPaneBorder = 4
)

// NodeExpander resolves a node's children, fetching uncached elements.
// Satisfied by *expander.Expander.
type NodeExpander interface {
	ExpandNode(ctx context.Context, n *domain.Node) ([]domain.ChildResult, error)
}

type rowKind int

const (
	rowElement rowKind = iota
	rowLoading
	rowFailed
)

// row is one visible line of the flattened tree. Loading and failed
// rows belong to the element row above them and cannot be selected
// into expansion.
type row struct {
	kind  rowKind
	node  *domain.Node
	depth int
	label string
}

// Model is the interactive tree explorer state.
type Model struct {
	Session domain.Session
	Roots   []*domain.Node

	expander     NodeExpander
	expandedView map[*domain.Node]bool
	rows         []row

	SelectedIdx  int
	ListOffset   int
	ListHeight   int
	DetailWidth  int
	DetailHeight int

	err error
}

// NewModel builds the explorer over the given root elements. Expansion
// state starts fully collapsed; children load on demand.
func NewModel(session domain.Session, exp NodeExpander, roots []domain.Element) *Model {
	nodes := make([]*domain.Node, 0, len(roots))
	for _, root := range roots {
		if !domain.Displayable(root.Type) {
			continue
		}
		nodes = append(nodes, domain.NewNode(root, 0))
	}
	m := &Model{
		Session:      session,
		Roots:        nodes,
		expander:     exp,
		expandedView: make(map[*domain.Node]bool),
	}
	m.rebuild()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.ensureVisible()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.rows)-1 {
				m.SelectedIdx++
				m.ensureVisible()
			}
		case "g":
			m.SelectedIdx = 0
			m.ensureVisible()
		case "G":
			if len(m.rows) > 0 {
				m.SelectedIdx = len(m.rows) - 1
				m.ensureVisible()
			}
		case "enter", " ", "l", "right":
			return m, m.toggleSelected()
		case "h", "left":
			m.collapseSelected()
		}

	case tea.WindowSizeMsg:
		treeWidth := int(float64(msg.Width) * treeWidthRatio)
		m.DetailWidth = msg.Width - treeWidth - detailPaneBorder
		headerHeight := 2
		footerHeight := 1
		m.ListHeight = msg.Height - headerHeight - footerHeight
		m.DetailHeight = m.ListHeight
		m.ensureVisible()

	case childrenLoadedMsg:
		m.err = msg.err
		m.rebuild()
	}

	return m, nil
}

// toggleSelected expands a collapsed element row or collapses an
// expanded one. Expanding an unloaded node kicks off an async fetch and
// leaves a loading placeholder behind until the message arrives.
func (m *Model) toggleSelected() tea.Cmd {
	r := m.currentRow()
	if r == nil || r.kind != rowElement {
		return nil
	}
	n := r.node

	if m.expandedView[n] {
		delete(m.expandedView, n)
		m.rebuild()
		return nil
	}
	if !n.Element.HasChildRefs() {
		return nil
	}
	m.expandedView[n] = true

	var cmd tea.Cmd
	if n.State() == domain.StateUnexpanded {
		cmd = func() tea.Msg {
			_, err := m.expander.ExpandNode(context.Background(), n)
			return childrenLoadedMsg{node: n, err: err}
		}
	}
	m.rebuild()
	return cmd
}

func (m *Model) collapseSelected() {
	r := m.currentRow()
	if r == nil {
		return
	}
	n := r.node
	if r.kind == rowElement && m.expandedView[n] {
		delete(m.expandedView, n)
	}
	m.rebuild()
}

func (m *Model) currentRow() *row {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.rows) {
		return &m.rows[m.SelectedIdx]
	}
	return nil
}

// rebuild flattens the tree into visible rows, honoring per-node view
// expansion and load state.
func (m *Model) rebuild() {
	m.rows = m.rows[:0]
	for _, root := range m.Roots {
		m.appendRows(root, 0)
	}
	if m.SelectedIdx >= len(m.rows) {
		m.SelectedIdx = len(m.rows) - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
	m.ensureVisible()
}

func (m *Model) appendRows(n *domain.Node, depth int) {
	m.rows = append(m.rows, row{kind: rowElement, node: n, depth: depth})
	if !m.expandedView[n] {
		return
	}
	if n.HasPlaceholder() {
		m.rows = append(m.rows, row{kind: rowLoading, node: n, depth: depth + 1})
		return
	}
	for _, child := range n.Children() {
		m.appendRows(child, depth+1)
	}
	for _, failed := range n.FailedResults() {
		m.rows = append(m.rows, row{kind: rowFailed, node: n, depth: depth + 1, label: failed.Ref})
	}
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}
