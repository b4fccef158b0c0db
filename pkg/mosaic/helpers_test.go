package mosaic_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/mosaic/pkg/mosaic"
)

// Tree-building shorthand for tests.

func leaf(key string) mosaic.Node[string] {
	return mosaic.NewLeaf(key)
}

func split(direction mosaic.Direction, first, second mosaic.Node[string], pct ...float64) mosaic.Node[string] {
	s := mosaic.NewSplit[string](direction, first, second)
	if len(pct) > 0 {
		s.Percentage = mosaic.Pct(pct[0])
	}
	return s
}

// nodesEqual compares trees structurally, treating an absent percentage and
// an explicit 50 as the same thing.
func nodesEqual(a, b mosaic.Node[string]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch an := a.(type) {
	case mosaic.Leaf[string]:
		bn, ok := b.(mosaic.Leaf[string])
		return ok && an.Key == bn.Key
	case mosaic.Hidden[string]:
		_, ok := b.(mosaic.Hidden[string])
		return ok
	case *mosaic.Split[string]:
		bn, ok := b.(*mosaic.Split[string])
		return ok &&
			an.Direction == bn.Direction &&
			an.SplitPercentage() == bn.SplitPercentage() &&
			nodesEqual(an.First, bn.First) &&
			nodesEqual(an.Second, bn.Second)
	}
	return false
}

func formatNode(n mosaic.Node[string]) string {
	switch node := n.(type) {
	case nil:
		return "<empty>"
	case mosaic.Leaf[string]:
		return node.Key
	case mosaic.Hidden[string]:
		return "<hidden>"
	case *mosaic.Split[string]:
		return fmt.Sprintf("%s[%v](%s, %s)",
			node.Direction, node.SplitPercentage(),
			formatNode(node.First), formatNode(node.Second))
	}
	return "<unknown>"
}

func assertTreesEqual(t *testing.T, want, got mosaic.Node[string]) {
	t.Helper()
	assert.True(t, nodesEqual(want, got),
		"trees differ\nwant: %s\ngot:  %s", formatNode(want), formatNode(got))
}
