package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// WorkspaceKeyMap defines keybindings for the layout demo.
type WorkspaceKeyMap struct {
	FocusUp    key.Binding
	FocusDown  key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding
	SplitRow   key.Binding
	SplitCol   key.Binding
	Close      key.Binding
	Expand     key.Binding
	Balance    key.Binding
	Move       key.Binding
	Shrink     key.Binding
	Grow       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WorkspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitRow, k.Close, k.Move, k.Balance, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WorkspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusUp, k.FocusDown, k.FocusLeft, k.FocusRight},
		{k.SplitRow, k.SplitCol, k.Close},
		{k.Expand, k.Balance, k.Shrink, k.Grow},
		{k.Move, k.Help, k.Quit},
	}
}

// DefaultWorkspaceKeyMap returns the default layout demo keybindings.
func DefaultWorkspaceKeyMap() WorkspaceKeyMap {
	return WorkspaceKeyMap{
		FocusUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "focus up"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "focus down"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "focus left"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "focus right"),
		),
		SplitRow: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split right"),
		),
		SplitCol: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "split below"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close pane"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand pane"),
		),
		Balance: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "balance"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move mode"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "shrink split"),
		),
		Grow: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "grow split"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
