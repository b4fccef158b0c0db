package mosaic

import (
	"errors"
	"fmt"
)

// ErrRootRemoval is returned when a removal targets the root. A single-node
// tree has no sibling to promote, so the request is ambiguous and rejected.
var ErrRootRemoval = errors.New("mosaic: cannot remove the root node")

// PathNotFoundError reports a path that does not resolve against the tree
// it was applied to.
type PathNotFoundError struct {
	Path Path
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("mosaic: no node at path %s", e.Path)
}

func newPathNotFound(path Path) *PathNotFoundError {
	return &PathNotFoundError{Path: path.Clone()}
}
