package mosaic

// Spec describes one edit to the node an Update addresses. Set, when
// non-nil, replaces the node wholesale and wins over everything else.
// Otherwise the spec patches a split in place: Percentage and Direction
// overwrite the split's own fields, and First/Second recurse into the
// children without consuming a path segment. An empty spec is the identity.
type Spec[T comparable] struct {
	Set        Node[T]
	Percentage *float64
	Direction  *Direction
	First      *Spec[T]
	Second     *Spec[T]
}

func (s Spec[T]) isEmpty() bool {
	return s.Set == nil && s.Percentage == nil && s.Direction == nil &&
		s.First == nil && s.Second == nil
}

// Update pairs a path with the edit to perform there. A batch of updates is
// applied in order, each against the result of the previous one.
type Update[T comparable] struct {
	Path Path
	Spec Spec[T]
}

// UpdateTree applies a batch of updates and returns the resulting tree. It
// is total: an update whose path or patch runs through a leaf (or a hidden
// placeholder) is dropped silently, so batches computed against a slightly
// stale shape degrade instead of failing mid-batch. Only splits along each
// update's path are reallocated; every untouched subtree is shared with the
// input tree.
func UpdateTree[T comparable](root Node[T], updates []Update[T]) Node[T] {
	for _, update := range updates {
		if next, ok := applyAt(root, update.Path, update.Spec); ok {
			root = next
		}
	}
	return root
}

func applyAt[T comparable](node Node[T], path Path, spec Spec[T]) (Node[T], bool) {
	if len(path) == 0 {
		return applySpec(node, spec)
	}
	split, ok := node.(*Split[T])
	if !ok {
		return nil, false
	}
	child, ok := applyAt(split.Child(path[0]), path[1:], spec)
	if !ok {
		return nil, false
	}
	out := split.copy()
	out.setChild(path[0], child)
	return out, true
}

func applySpec[T comparable](node Node[T], spec Spec[T]) (Node[T], bool) {
	if spec.Set != nil {
		return spec.Set, true
	}
	if spec.isEmpty() {
		return node, true
	}
	split, ok := node.(*Split[T])
	if !ok {
		return nil, false
	}
	out := split.copy()
	if spec.Percentage != nil {
		out.Percentage = Pct(*spec.Percentage)
	}
	if spec.Direction != nil {
		out.Direction = *spec.Direction
	}
	if spec.First != nil {
		first, ok := applySpec(split.First, *spec.First)
		if !ok {
			return nil, false
		}
		out.First = first
	}
	if spec.Second != nil {
		second, ok := applySpec(split.Second, *spec.Second)
		if !ok {
			return nil, false
		}
		out.Second = second
	}
	return out, true
}

// NewRemoveUpdate builds the update that removes the node at path by
// collapsing its parent split into the sibling subtree. Removing the root
// is rejected with ErrRootRemoval; a parent that does not resolve to a
// split yields a PathNotFoundError.
func NewRemoveUpdate[T comparable](root Node[T], path Path) (Update[T], error) {
	if len(path) == 0 {
		return Update[T]{}, ErrRootRemoval
	}
	parentPath := path.Parent()
	parent, err := RequireNodeAtPath[T](root, parentPath)
	if err != nil {
		return Update[T]{}, err
	}
	split, ok := parent.(*Split[T])
	if !ok {
		return Update[T]{}, newPathNotFound(parentPath)
	}
	sibling := split.Child(path.Last().Other())
	return Update[T]{
		Path: parentPath.Clone(),
		Spec: Spec[T]{Set: sibling},
	}, nil
}

// defaultExpandPercentage is the share an expanded pane receives when the
// caller passes a percentage outside (0, 100].
const defaultExpandPercentage = 70.0

// NewExpandUpdate builds the update that grows the node at path to the
// given share of every split on the way down, so it ends up occupying that
// share of the whole layout regardless of which branches it sits on.
func NewExpandUpdate[T comparable](path Path, percentage float64) Update[T] {
	if percentage <= 0 || percentage > 100 {
		percentage = defaultExpandPercentage
	}
	spec := Spec[T]{}
	for i := len(path) - 1; i >= 0; i-- {
		pct := percentage
		if path[i] == Second {
			pct = 100 - percentage
		}
		inner := spec
		spec = Spec[T]{Percentage: Pct(pct)}
		if path[i] == First {
			spec.First = &inner
		} else {
			spec.Second = &inner
		}
	}
	return Update[T]{Path: Path{}, Spec: spec}
}

// NewHideUpdate builds the update that swaps the node at path for a Hidden
// placeholder. Drag-internal: follow it with a real structural change
// before presenting the tree again.
func NewHideUpdate[T comparable](path Path) Update[T] {
	return Update[T]{Path: path.Clone(), Spec: Spec[T]{Set: Hidden[T]{}}}
}

// NewReplaceUpdate builds the update that sets the node at path wholesale.
func NewReplaceUpdate[T comparable](path Path, node Node[T]) Update[T] {
	return Update[T]{Path: path.Clone(), Spec: Spec[T]{Set: node}}
}

// NewSplitUpdate builds the update that turns the node at path into an even
// split seeded with the same new leaf on both sides; the caller
// distinguishes the halves afterwards.
func NewSplitUpdate[T comparable](path Path, newKey T, direction Direction) Update[T] {
	seed := NewLeaf(newKey)
	return NewReplaceUpdate[T](path, NewSplit[T](direction, seed, seed))
}
