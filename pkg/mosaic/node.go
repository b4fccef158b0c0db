// Package mosaic implements a persistent binary split layout tree.
//
// A layout ("mosaic") is a binary tree whose leaves are panes identified by
// an opaque, comparable key and whose internal nodes split the available
// space in two. The tree is a pure value: every edit returns a new tree that
// shares all untouched subtrees with its predecessor, so callers can detect
// change by reference identity and hold snapshots without copying.
package mosaic

// Direction indicates the axis a split divides.
type Direction uint8

const (
	// Row splits the horizontal axis: first child left, second child right.
	Row Direction = iota
	// Column splits the vertical axis: first child top, second child bottom.
	Column
)

// Other returns the perpendicular direction.
func (d Direction) Other() Direction {
	if d == Row {
		return Column
	}
	return Row
}

func (d Direction) String() string {
	if d == Row {
		return "row"
	}
	return "column"
}

// DefaultPercentage is the share of the split axis the first child receives
// when a split carries no explicit percentage.
const DefaultPercentage = 50.0

// Node is a node of the layout tree: either a Leaf, a *Split, or a Hidden
// placeholder. A whole tree is a Node; nil means an empty layout.
type Node[T comparable] interface {
	node()
}

// Leaf is a terminal node holding a caller-defined pane key.
type Leaf[T comparable] struct {
	Key T
}

func (Leaf[T]) node() {}

// NewLeaf wraps a pane key as a tree node.
func NewLeaf[T comparable](key T) Leaf[T] {
	return Leaf[T]{Key: key}
}

// Split is an internal node dividing its region between two ordered
// children. Percentage is the share of the split axis given to the first
// child; nil means DefaultPercentage. Children are owned exclusively and
// must not be nil.
type Split[T comparable] struct {
	Direction  Direction
	First      Node[T]
	Second     Node[T]
	Percentage *float64
}

func (*Split[T]) node() {}

// NewSplit creates an even split of the given direction.
func NewSplit[T comparable](direction Direction, first, second Node[T]) *Split[T] {
	return &Split[T]{Direction: direction, First: first, Second: second}
}

// SplitPercentage returns the effective first-child share, clamped to
// [0, 100], defaulting to DefaultPercentage when unset.
func (s *Split[T]) SplitPercentage() float64 {
	if s.Percentage == nil {
		return DefaultPercentage
	}
	return clampPercentage(*s.Percentage)
}

// Child returns the child selected by the branch.
func (s *Split[T]) Child(branch Branch) Node[T] {
	if branch == First {
		return s.First
	}
	return s.Second
}

// copy returns a shallow copy sharing both children. Edits clone splits
// along the update path this way and leave everything else untouched.
func (s *Split[T]) copy() *Split[T] {
	c := *s
	return &c
}

func (s *Split[T]) setChild(branch Branch, child Node[T]) {
	if branch == First {
		s.First = child
	} else {
		s.Second = child
	}
}

// Hidden is a transient placeholder standing in for a subtree that is
// visually removed mid-drag. It keeps the slot addressable while rendering
// nothing; a hide must be followed by a real structural change before the
// tree is shown again. It is distinct from the nil empty layout on purpose.
type Hidden[T comparable] struct{}

func (Hidden[T]) node() {}

// Pct returns a pointer to v, for filling optional percentage fields.
func Pct(v float64) *float64 {
	return &v
}

func clampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
