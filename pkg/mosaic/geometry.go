package mosaic

// BoundingBox is a rectangular region of the normalized layout space,
// expressed as inset percentages from each edge of a [0,100] square. The
// zero value is the full space. Boxes are derived from the tree on demand
// and never stored on it; mapping them to pixels is the caller's business.
type BoundingBox struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Width returns the horizontal extent of the box in layout units.
func (b BoundingBox) Width() float64 {
	return 100 - b.Right - b.Left
}

// Height returns the vertical extent of the box in layout units.
func (b BoundingBox) Height() float64 {
	return 100 - b.Bottom - b.Top
}

// Split divides the box in two at the given first-child percentage, clamped
// to [0, 100]. Row yields (left, right); Column yields (top, bottom). The
// two boxes tile the input exactly.
func (b BoundingBox) Split(percentage float64, direction Direction) (first, second BoundingBox) {
	absolute := AbsoluteSplitPercentage(b, clampPercentage(percentage), direction)
	first, second = b, b
	if direction == Row {
		first.Right = 100 - absolute
		second.Left = absolute
	} else {
		first.Bottom = 100 - absolute
		second.Top = absolute
	}
	return first, second
}

// Contains reports whether the point lies inside the box, bounds inclusive.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.Left && x <= 100-b.Right &&
		y >= b.Top && y <= 100-b.Bottom
}

// AbsoluteSplitPercentage converts a split's own percentage into the global
// coordinate of its divider along the split axis.
func AbsoluteSplitPercentage(b BoundingBox, relative float64, direction Direction) float64 {
	if direction == Row {
		return b.Left + b.Width()*relative/100
	}
	return b.Top + b.Height()*relative/100
}

// RelativeSplitPercentage converts a global divider coordinate back into the
// split-local percentage. Used when a resize gesture reports an absolute
// position. The box must have positive extent on the split axis.
func RelativeSplitPercentage(b BoundingBox, absolute float64, direction Direction) float64 {
	if direction == Row {
		return (absolute - b.Left) / b.Width() * 100
	}
	return (absolute - b.Top) / b.Height() * 100
}

// BoundingBoxForPath projects the node at path onto the layout space by
// walking the splits above it. Returns a PathNotFoundError if the path does
// not resolve.
func BoundingBoxForPath[T comparable](root Node[T], path Path) (BoundingBox, error) {
	box := BoundingBox{}
	current := root
	for i, branch := range path {
		split, ok := current.(*Split[T])
		if !ok {
			return BoundingBox{}, newPathNotFound(path[:i+1])
		}
		first, second := box.Split(split.SplitPercentage(), split.Direction)
		if branch == First {
			box = first
		} else {
			box = second
		}
		current = split.Child(branch)
	}
	if current == nil {
		return BoundingBox{}, newPathNotFound(path)
	}
	return box, nil
}
