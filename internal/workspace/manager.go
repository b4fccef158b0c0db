// Package workspace maintains a live pane layout and exposes the gestures
// a frontend needs: split, close, move, resize, expand, balance.
package workspace

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/mosaic/pkg/mosaic"
)

// Manager owns the layout tree for one workspace. All gestures funnel
// through Apply so every mutation is an update batch against the current
// snapshot; reads hand out the immutable tree directly.
type Manager[T comparable] struct {
	mu     sync.RWMutex
	root   mosaic.Node[T]
	logger zerolog.Logger
}

// NewManager creates a workspace around an initial tree. A nil root is the
// empty workspace; the first split populates it.
func NewManager[T comparable](root mosaic.Node[T], logger zerolog.Logger) *Manager[T] {
	return &Manager[T]{
		root:   root,
		logger: logger.With().Str("component", "workspace").Logger(),
	}
}

// Snapshot returns the current tree. The tree is immutable, so the caller
// may hold it across later mutations and diff by pointer identity.
func (m *Manager[T]) Snapshot() mosaic.Node[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// Apply runs an update batch against the current tree and installs the
// result. It returns the new root.
func (m *Manager[T]) Apply(updates []mosaic.Update[T]) mosaic.Node[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.root = mosaic.UpdateTree(m.root, updates)
	return m.root
}

// SplitPane replaces the node at path with a split holding the existing
// subtree on the first branch and a fresh pane on the second. Splitting the
// empty workspace seats the new pane as the root.
func (m *Manager[T]) SplitPane(path mosaic.Path, newKey T, direction mosaic.Direction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.root == nil && len(path) == 0 {
		m.root = mosaic.NewLeaf(newKey)
		m.logger.Debug().Str("op", "split").Msg("seeded empty workspace")
		return nil
	}

	existing, err := mosaic.RequireNodeAtPath[T](m.root, path)
	if err != nil {
		return err
	}

	replacement := mosaic.NewSplit[T](direction, existing, mosaic.NewLeaf(newKey))
	m.root = mosaic.UpdateTree(m.root, []mosaic.Update[T]{
		mosaic.NewReplaceUpdate[T](path, replacement),
	})

	m.logger.Debug().
		Str("op", "split").
		Stringer("path", path).
		Stringer("direction", direction).
		Msg("pane split")
	return nil
}

// ClosePane removes the pane at path, collapsing its parent into the
// sibling. Closing the last pane empties the workspace instead of erroring.
func (m *Manager[T]) ClosePane(path mosaic.Path) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(path) == 0 {
		if _, ok := m.root.(*mosaic.Split[T]); ok {
			return mosaic.ErrRootRemoval
		}
		m.root = nil
		m.logger.Debug().Str("op", "close").Msg("closed last pane")
		return nil
	}

	update, err := mosaic.NewRemoveUpdate[T](m.root, path)
	if err != nil {
		return err
	}
	m.root = mosaic.UpdateTree(m.root, []mosaic.Update[T]{update})

	m.logger.Debug().
		Str("op", "close").
		Stringer("path", path).
		Msg("pane closed")
	return nil
}

// ExpandPane grows the pane at path to the given share of the whole layout.
func (m *Manager[T]) ExpandPane(path mosaic.Path, percentage float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.root = mosaic.UpdateTree(m.root, []mosaic.Update[T]{
		mosaic.NewExpandUpdate[T](path, percentage),
	})

	m.logger.Debug().
		Str("op", "expand").
		Stringer("path", path).
		Float64("percentage", percentage).
		Msg("pane expanded")
}

// MovePane relocates the subtree at sourcePath next to destinationPath on
// the given side. It reports whether the layout changed; impossible moves
// (unresolvable paths, dropping a subtree into itself) are no-ops.
func (m *Manager[T]) MovePane(sourcePath, destinationPath mosaic.Path, side mosaic.Side) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	updates := mosaic.DragToUpdates[T](m.root, sourcePath, destinationPath, side)
	if len(updates) == 0 {
		return false
	}
	m.root = mosaic.UpdateTree[T](m.root, updates)

	m.logger.Debug().
		Str("op", "move").
		Stringer("source", sourcePath).
		Stringer("destination", destinationPath).
		Stringer("side", side).
		Msg("pane moved")
	return true
}

// Resize sets the split percentage of the split at path.
func (m *Manager[T]) Resize(path mosaic.Path, percentage float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.root = mosaic.UpdateTree(m.root, []mosaic.Update[T]{
		{Path: path.Clone(), Spec: mosaic.Spec[T]{Percentage: mosaic.Pct(percentage)}},
	})

	m.logger.Debug().
		Str("op", "resize").
		Stringer("path", path).
		Float64("percentage", percentage).
		Msg("split resized")
}

// Balance rebuilds the layout as an even tree over the current panes,
// preserving their reading order.
func (m *Manager[T]) Balance(startDirection mosaic.Direction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := mosaic.Leaves[T](m.root)
	m.root = mosaic.BalancedTreeFromLeaves[T](keys, startDirection)

	m.logger.Debug().
		Str("op", "balance").
		Int("panes", len(keys)).
		Msg("layout balanced")
}

// Leaves returns the pane keys in reading order.
func (m *Manager[T]) Leaves() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return mosaic.Leaves[T](m.root)
}

// PathOfLeaf returns the path of the pane carrying key.
func (m *Manager[T]) PathOfLeaf(key T) (mosaic.Path, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return mosaic.PathOfLeaf(m.root, key)
}
