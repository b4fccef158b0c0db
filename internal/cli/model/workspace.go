// Package model contains the bubbletea models for the mosaic demo TUI.
package model

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/bnema/mosaic/internal/cli/styles"
	"github.com/bnema/mosaic/internal/config"
	"github.com/bnema/mosaic/internal/workspace"
	"github.com/bnema/mosaic/pkg/mosaic"
)

// Workspace is the interactive layout demo. Panes are identified by the
// label they were created with; focus follows the label, not the path, so
// it survives any restructuring of the tree.
type Workspace struct {
	manager *workspace.Manager[string]
	cfg     *config.Config
	theme   *styles.Theme
	keymap  styles.WorkspaceKeyMap
	help    help.Model
	logger  zerolog.Logger

	focused  string
	moving   bool
	nextID   int
	width    int
	height   int
	showHelp bool
	status   string
}

// NewWorkspace creates the demo model with the configured number of panes
// arranged as a balanced tree.
func NewWorkspace(cfg *config.Config, logger zerolog.Logger) *Workspace {
	theme := styles.NewTheme(cfg)

	direction := mosaic.Row
	if cfg.Workspace.StartDirection == "column" {
		direction = mosaic.Column
	}

	keys := make([]string, cfg.Workspace.InitialPanes)
	for i := range keys {
		keys[i] = fmt.Sprintf("pane %d", i+1)
	}
	root := mosaic.BalancedTreeFromLeaves(keys, direction)

	m := &Workspace{
		manager: workspace.NewManager[string](root, logger),
		cfg:     cfg,
		theme:   theme,
		keymap:  styles.DefaultWorkspaceKeyMap(),
		help:    styles.NewStyledHelp(theme),
		logger:  logger,
		nextID:  cfg.Workspace.InitialPanes,
	}
	if len(keys) > 0 {
		m.focused = keys[0]
	}
	return m
}

// Init implements tea.Model.
func (m *Workspace) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Workspace) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Workspace) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.FocusUp):
		m.handleDirection(mosaic.SideTop)
	case key.Matches(msg, m.keymap.FocusDown):
		m.handleDirection(mosaic.SideBottom)
	case key.Matches(msg, m.keymap.FocusLeft):
		m.handleDirection(mosaic.SideLeft)
	case key.Matches(msg, m.keymap.FocusRight):
		m.handleDirection(mosaic.SideRight)

	case key.Matches(msg, m.keymap.SplitRow):
		m.splitFocused(mosaic.Row)
	case key.Matches(msg, m.keymap.SplitCol):
		m.splitFocused(mosaic.Column)
	case key.Matches(msg, m.keymap.Close):
		m.closeFocused()
	case key.Matches(msg, m.keymap.Expand):
		m.expandFocused()
	case key.Matches(msg, m.keymap.Balance):
		direction := mosaic.Row
		if m.cfg.Workspace.StartDirection == "column" {
			direction = mosaic.Column
		}
		m.manager.Balance(direction)
		m.status = "balanced"
	case key.Matches(msg, m.keymap.Move):
		if m.focused != "" {
			m.moving = !m.moving
			m.status = ""
		}
	case key.Matches(msg, m.keymap.Shrink):
		m.resizeFocused(-m.cfg.Workspace.ResizeStep)
	case key.Matches(msg, m.keymap.Grow):
		m.resizeFocused(m.cfg.Workspace.ResizeStep)
	}
	return m, nil
}

// handleDirection routes an arrow key: plain arrows move focus, arrows in
// move mode relocate the focused pane next to its neighbor.
func (m *Workspace) handleDirection(side mosaic.Side) {
	if m.focused == "" {
		return
	}
	neighbor, ok := m.neighbor(m.focused, side)
	if !ok {
		m.status = "no pane there"
		return
	}

	if !m.moving {
		m.focused = neighbor
		m.status = ""
		return
	}

	sourcePath, okSource := m.manager.PathOfLeaf(m.focused)
	destPath, okDest := m.manager.PathOfLeaf(neighbor)
	if !okSource || !okDest {
		return
	}
	if m.manager.MovePane(sourcePath, destPath, side) {
		m.status = fmt.Sprintf("moved %s %s", m.focused, side)
	}
	m.moving = false
}

// neighbor finds the pane adjacent to paneKey on the given side by probing
// just past the pane's edge at its center line.
func (m *Workspace) neighbor(paneKey string, side mosaic.Side) (string, bool) {
	root := m.manager.Snapshot()
	path, ok := mosaic.PathOfLeaf(root, paneKey)
	if !ok {
		return "", false
	}
	box, err := mosaic.BoundingBoxForPath[string](root, path)
	if err != nil {
		return "", false
	}

	const step = 0.5
	x := box.Left + box.Width()/2
	y := box.Top + box.Height()/2
	switch side {
	case mosaic.SideTop:
		y = box.Top - step
	case mosaic.SideBottom:
		y = 100 - box.Bottom + step
	case mosaic.SideLeft:
		x = box.Left - step
	case mosaic.SideRight:
		x = 100 - box.Right + step
	}
	if x < 0 || x > 100 || y < 0 || y > 100 {
		return "", false
	}

	found := ""
	mosaic.Walk(root, func(node mosaic.Node[string], nodePath mosaic.Path) bool {
		leaf, isLeaf := node.(mosaic.Leaf[string])
		if !isLeaf {
			return true
		}
		leafBox, boxErr := mosaic.BoundingBoxForPath[string](root, nodePath)
		if boxErr == nil && leafBox.Contains(x, y) {
			found = leaf.Key
			return false
		}
		return true
	})
	return found, found != ""
}

func (m *Workspace) splitFocused(direction mosaic.Direction) {
	m.nextID++
	newKey := fmt.Sprintf("pane %d", m.nextID)

	if m.focused == "" {
		if err := m.manager.SplitPane(mosaic.Path{}, newKey, direction); err != nil {
			m.status = err.Error()
			return
		}
		m.focused = newKey
		return
	}

	path, ok := m.manager.PathOfLeaf(m.focused)
	if !ok {
		return
	}
	if err := m.manager.SplitPane(path, newKey, direction); err != nil {
		m.status = err.Error()
		return
	}
	m.focused = newKey
	m.status = ""
}

func (m *Workspace) closeFocused() {
	if m.focused == "" {
		return
	}
	path, ok := m.manager.PathOfLeaf(m.focused)
	if !ok {
		return
	}
	if err := m.manager.ClosePane(path); err != nil {
		m.status = err.Error()
		return
	}

	// Focus whichever pane now occupies the closed pane's ancestor slot.
	leaves := m.manager.Leaves()
	if len(leaves) == 0 {
		m.focused = ""
		m.status = "workspace empty, split to start over"
		return
	}
	if node := mosaic.NodeAtPath[string](m.manager.Snapshot(), path.Parent()); node != nil {
		if keys := mosaic.Leaves[string](node); len(keys) > 0 {
			m.focused = keys[0]
			return
		}
	}
	m.focused = leaves[0]
}

func (m *Workspace) expandFocused() {
	if m.focused == "" {
		return
	}
	path, ok := m.manager.PathOfLeaf(m.focused)
	if !ok {
		return
	}
	m.manager.ExpandPane(path, m.cfg.Workspace.ExpandPercentage)
	m.status = fmt.Sprintf("expanded %s", m.focused)
}

// resizeFocused shifts the divider of the focused pane's parent split so
// the pane grows or shrinks by delta percentage points.
func (m *Workspace) resizeFocused(delta float64) {
	if m.focused == "" {
		return
	}
	path, ok := m.manager.PathOfLeaf(m.focused)
	if !ok || len(path) == 0 {
		return
	}

	parentPath := path.Parent()
	parent, err := mosaic.RequireNodeAtPath[string](m.manager.Snapshot(), parentPath)
	if err != nil {
		return
	}
	split, isSplit := parent.(*mosaic.Split[string])
	if !isSplit {
		return
	}

	pct := split.SplitPercentage()
	if path.Last() == mosaic.First {
		pct += delta
	} else {
		pct -= delta
	}
	m.manager.Resize(parentPath, pct)
}
