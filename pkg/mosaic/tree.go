package mosaic

// Corner identifies one corner of the layout space.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Side identifies one edge of a drop target.
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	default:
		return "left"
	}
}

// IsParent reports whether the node is a split.
func IsParent[T comparable](node Node[T]) bool {
	_, ok := node.(*Split[T])
	return ok
}

// Leaves returns the pane keys of the tree in pre-order: all leaves of the
// first subtree before any leaf of the second. Hidden placeholders and the
// empty tree contribute nothing.
func Leaves[T comparable](root Node[T]) []T {
	var keys []T
	Walk(root, func(node Node[T], _ Path) bool {
		if leaf, ok := node.(Leaf[T]); ok {
			keys = append(keys, leaf.Key)
		}
		return true
	})
	return keys
}

// Walk visits every node in pre-order with its path. Returning false from
// fn stops the traversal.
func Walk[T comparable](root Node[T], fn func(node Node[T], path Path) bool) {
	var walk func(node Node[T], path Path) bool
	walk = func(node Node[T], path Path) bool {
		if node == nil {
			return true
		}
		if !fn(node, path) {
			return false
		}
		if split, ok := node.(*Split[T]); ok {
			if !walk(split.First, path.Child(First)) {
				return false
			}
			if !walk(split.Second, path.Child(Second)) {
				return false
			}
		}
		return true
	}
	walk(root, Path{})
}

// NodeAtPath resolves the node addressed by path, or nil when the path
// descends through a non-split. Never panics.
func NodeAtPath[T comparable](root Node[T], path Path) Node[T] {
	current := root
	for _, branch := range path {
		split, ok := current.(*Split[T])
		if !ok {
			return nil
		}
		current = split.Child(branch)
	}
	return current
}

// RequireNodeAtPath resolves the node addressed by path and returns a
// PathNotFoundError when it does not exist. Use where the caller has
// already established the path must be valid.
func RequireNodeAtPath[T comparable](root Node[T], path Path) (Node[T], error) {
	node := NodeAtPath[T](root, path)
	if node == nil {
		return nil, newPathNotFound(path)
	}
	return node, nil
}

// PathOfLeaf returns the path to the first leaf carrying the given key in
// pre-order, and whether one exists.
func PathOfLeaf[T comparable](root Node[T], key T) (Path, bool) {
	var found Path
	ok := false
	Walk(root, func(node Node[T], path Path) bool {
		if leaf, isLeaf := node.(Leaf[T]); isLeaf && leaf.Key == key {
			found = path
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// BalancedTreeFromLeaves arranges the keys into an even tree of 50/50
// splits, alternating direction at each level starting from startDirection.
// Order is preserved; zero keys yield nil and a single key yields a bare
// leaf. The result has O(log n) depth, which makes it the natural
// "auto-arrange" layout.
func BalancedTreeFromLeaves[T comparable](keys []T, startDirection Direction) Node[T] {
	switch len(keys) {
	case 0:
		return nil
	case 1:
		return NewLeaf(keys[0])
	}
	mid := len(keys) / 2
	next := startDirection.Other()
	return NewSplit[T](startDirection,
		BalancedTreeFromLeaves(keys[:mid], next),
		BalancedTreeFromLeaves(keys[mid:], next),
	)
}

// PathToCorner descends from the root toward the leaf whose region touches
// the given corner, combining each split's direction with the side of the
// corner on that axis.
func PathToCorner[T comparable](root Node[T], corner Corner) Path {
	path := Path{}
	current := root
	for {
		split, ok := current.(*Split[T])
		if !ok {
			return path
		}
		branch := Second
		if split.Direction == Row {
			if corner == TopLeft || corner == BottomLeft {
				branch = First
			}
		} else {
			if corner == TopLeft || corner == TopRight {
				branch = First
			}
		}
		path = append(path, branch)
		current = split.Child(branch)
	}
}

// CountNodes returns the total node count: 0 for the empty tree, 1 for a
// leaf, 1 plus both subtrees for a split.
func CountNodes[T comparable](root Node[T]) int {
	split, ok := root.(*Split[T])
	if !ok {
		if root == nil {
			return 0
		}
		return 1
	}
	return 1 + CountNodes[T](split.First) + CountNodes[T](split.Second)
}

// TreeDepth returns the height of the tree: 0 for the empty tree, 1 for a
// leaf.
func TreeDepth[T comparable](root Node[T]) int {
	split, ok := root.(*Split[T])
	if !ok {
		if root == nil {
			return 0
		}
		return 1
	}
	return 1 + max(TreeDepth[T](split.First), TreeDepth[T](split.Second))
}
