package model

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mosaic/pkg/mosaic"
)

// minPaneCells is the smallest width or height a pane is drawn at, border
// included, no matter how far a divider has been pushed.
const minPaneCells = 4

// View implements tea.Model. The tree is rendered recursively: every split
// divides its cell budget between its children in proportion to its
// percentage, so the terminal ends up tiled exactly like the tree.
func (m *Workspace) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	status := m.statusLine()
	helpView := m.help.View(m.keymap)
	chrome := lipgloss.Height(status) + lipgloss.Height(helpView)

	layoutHeight := m.height - chrome
	if layoutHeight < minPaneCells {
		layoutHeight = minPaneCells
	}
	layout := m.renderNode(m.manager.Snapshot(), m.width, layoutHeight)

	return lipgloss.JoinVertical(lipgloss.Left, layout, status, helpView)
}

func (m *Workspace) renderNode(node mosaic.Node[string], width, height int) string {
	switch n := node.(type) {
	case nil:
		return m.theme.Subtle.
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("no panes. press s to split")

	case mosaic.Leaf[string]:
		return m.renderPane(n.Key, width, height)

	case mosaic.Hidden[string]:
		return lipgloss.NewStyle().Width(width).Height(height).Render("")

	case *mosaic.Split[string]:
		if n.Direction == mosaic.Row {
			firstWidth := share(width, n.SplitPercentage())
			return lipgloss.JoinHorizontal(lipgloss.Top,
				m.renderNode(n.First, firstWidth, height),
				m.renderNode(n.Second, width-firstWidth, height),
			)
		}
		firstHeight := share(height, n.SplitPercentage())
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderNode(n.First, width, firstHeight),
			m.renderNode(n.Second, width, height-firstHeight),
		)

	default:
		return ""
	}
}

func (m *Workspace) renderPane(key string, width, height int) string {
	style := m.theme.Pane
	if key == m.focused {
		style = m.theme.PaneFocused
		if m.moving {
			style = m.theme.PaneMoving
		}
	}

	// Width/Height are content dimensions; the border takes one cell on
	// each edge.
	return style.
		Width(width - 2).
		Height(height - 2).
		Render(key)
}

// share splits total cells by percentage, keeping both halves drawable.
func share(total int, percentage float64) int {
	first := int(float64(total)*percentage/100 + 0.5)
	if first < minPaneCells {
		first = minPaneCells
	}
	if first > total-minPaneCells {
		first = total - minPaneCells
	}
	if first < 0 {
		first = 0
	}
	return first
}

func (m *Workspace) statusLine() string {
	mode := ""
	if m.moving {
		mode = m.theme.StatusMode.Render("MOVE")
	}

	info := fmt.Sprintf("%d panes", len(m.manager.Leaves()))
	if m.focused != "" {
		if path, ok := m.manager.PathOfLeaf(m.focused); ok {
			info = fmt.Sprintf("%s · %s @ %s", info, m.focused, path)
		}
	}
	if m.status != "" {
		info = fmt.Sprintf("%s · %s", info, m.status)
	}

	bar := m.theme.StatusBar.Width(m.width - lipgloss.Width(mode)).Render(info)
	return lipgloss.JoinHorizontal(lipgloss.Top, mode, bar)
}
