package mosaic

// DragToUpdates computes the batch that relocates the subtree at sourcePath
// to sit beside the subtree at destinationPath, on the given side of it.
// The new joint split runs Row for left/right drops and Column for
// top/bottom drops, with the source taking the first slot for left/top
// drops and the second for right/bottom, at an even percentage.
//
// The batch is a no-op (empty) when either path fails to resolve, when the
// drop lands on the source itself, or when the destination lies inside the
// dragged subtree and would move along with it.
//
// Removing the source can shift the address of the destination, so the
// second update of the batch is rebased where needed:
//
//   - destination an ancestor of the source: removing the source first would
//     tear apart the node about to be rewritten, so the batch is a single
//     replacement at the destination built from the destination subtree with
//     the source already removed from it;
//   - destination the source's sibling, or a descendant of it: collapsing
//     the source's parent promotes the sibling one level, so the branch
//     segment at the parent's depth is spliced out of the destination path;
//   - unrelated paths: removal cannot affect the destination's address and
//     the batch is used as is.
//
// Applying the batch never loses a leaf: every pane of the input tree is
// present exactly once in the result.
func DragToUpdates[T comparable](root Node[T], sourcePath, destinationPath Path, side Side) []Update[T] {
	sourceNode := NodeAtPath[T](root, sourcePath)
	destinationNode := NodeAtPath[T](root, destinationPath)
	if sourceNode == nil || destinationNode == nil || sourcePath.Equal(destinationPath) {
		return nil
	}

	if destinationPath.IsPrefixOf(sourcePath) {
		relative := Path(sourcePath[len(destinationPath):])
		remove, err := NewRemoveUpdate[T](destinationNode, relative)
		if err != nil {
			return nil
		}
		trimmed := UpdateTree(destinationNode, []Update[T]{remove})
		joint := joinNodes[T](side, sourceNode, trimmed)
		return []Update[T]{NewReplaceUpdate[T](destinationPath, joint)}
	}

	if sourcePath.IsPrefixOf(destinationPath) {
		// Dropping inside the dragged subtree: the destination would move
		// with the source, no relocation is expressible.
		return nil
	}

	remove, err := NewRemoveUpdate[T](root, sourcePath)
	if err != nil {
		return nil
	}

	target := destinationPath
	parent := sourcePath.Parent()
	if parent.IsPrefixOf(destinationPath) {
		// The destination descends through the source's sibling, which the
		// removal promotes into the parent's slot: drop that one segment.
		rebased := make(Path, 0, len(destinationPath)-1)
		rebased = append(rebased, destinationPath[:len(parent)]...)
		rebased = append(rebased, destinationPath[len(parent)+1:]...)
		target = rebased
	}

	joint := joinNodes[T](side, sourceNode, destinationNode)
	return []Update[T]{remove, NewReplaceUpdate[T](target, joint)}
}

// joinNodes builds the split that places source on the given side of
// destination.
func joinNodes[T comparable](side Side, source, destination Node[T]) *Split[T] {
	direction := Column
	if side == SideLeft || side == SideRight {
		direction = Row
	}
	if side == SideRight || side == SideBottom {
		return NewSplit[T](direction, destination, source)
	}
	return NewSplit[T](direction, source, destination)
}
