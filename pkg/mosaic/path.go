package mosaic

import (
	"slices"
	"strings"
)

// Branch selects one of a split's two children.
type Branch uint8

const (
	First Branch = iota
	Second
)

// Other returns the sibling branch.
func (b Branch) Other() Branch {
	if b == First {
		return Second
	}
	return First
}

func (b Branch) String() string {
	if b == First {
		return "first"
	}
	return "second"
}

// Path addresses a node as the sequence of branches taken from the root.
// The empty path addresses the root itself. A path is only meaningful
// against the tree snapshot it was derived from: structural edits shift
// the addresses of everything below the edit point.
type Path []Branch

// Equal reports whether both paths select the same sequence of branches.
func (p Path) Equal(q Path) bool {
	return slices.Equal(p, q)
}

// IsPrefixOf reports whether p is a (not necessarily proper) prefix of q.
func (p Path) IsPrefixOf(q Path) bool {
	if len(p) > len(q) {
		return false
	}
	return slices.Equal(p, q[:len(p)])
}

// Parent returns the path to the enclosing split. Calling Parent on the
// empty path returns the empty path.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Last returns the final branch selector. Only valid on non-empty paths.
func (p Path) Last() Branch {
	return p[len(p)-1]
}

// Child returns a new path descending one branch further. The receiver is
// never aliased, so held paths stay stable.
func (p Path) Child(branch Branch) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = branch
	return child
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = b.String()
	}
	return strings.Join(parts, "/")
}
