package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/symex/internal/core/domain"
)

func (m *Model) View() string {
	if m.ListHeight <= 0 {
		return "Initializing..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.treePane(),
		m.detailPane(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("MODEL %s @ %s", m.Session.ProjectID, m.Session.CommitID)),
		body,
		m.footer(),
	)
}

func (m *Model) treePane() string {
	var s strings.Builder

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.rows) {
		end = len(m.rows)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i, m.rows[i]) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderRow(index int, r row) string {
	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
	}
	indent := strings.Repeat("  ", r.depth)

	switch r.kind {
	case rowLoading:
		return cursor + indent + loadingStyle.Render("… loading")
	case rowFailed:
		return cursor + indent + failedStyle.Render("✗ "+r.label)
	default:
		return cursor + indent + m.renderElementRow(index, r)
	}
}

func (m *Model) renderElementRow(index int, r row) string {
	el := r.node.Element
	keyword, _ := domain.Keyword(el.Type)

	marker := "· "
	if el.HasChildRefs() {
		if m.expandedView[r.node] {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	label := keywordStyle.Render(keyword) + " " + el.Name()
	if index == m.SelectedIdx {
		return marker + selectedStyle.Render(keyword+" "+el.Name())
	}
	return marker + label
}

func (m *Model) detailPane() string {
	r := m.currentRow()
	if r == nil {
		return detailStyle.Render(metaStyle.Render("empty model"))
	}

	el := r.node.Element
	header := metaStyle.Render(el.Type + " " + el.ID)
	body := el.PrettyJSON()

	lines := strings.Split(body, "\n")
	if len(lines) > m.DetailHeight-1 {
		lines = lines[:m.DetailHeight-1]
	}
	if m.DetailWidth > 0 {
		for i, line := range lines {
			lines[i] = clipLine(line, m.DetailWidth)
		}
	}

	return detailStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n")),
	)
}

// clipLine keeps at most width terminal cells of line without splitting
// multibyte runes. Width is counted per rune, matching lipgloss.Width
// for the JSON bodies rendered here.
func clipLine(line string, width int) string {
	if len(line) <= width {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width])
}

func (m *Model) footer() string {
	hint := "j/k move · enter expand · h collapse · q quit"
	if m.err != nil {
		return failedStyle.Render("expansion failed: "+m.err.Error()) + "  " + metaStyle.Render(hint)
	}
	return metaStyle.Render(hint)
}
