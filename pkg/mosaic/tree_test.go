package mosaic_test

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mosaic/pkg/mosaic"
)

func TestIsParent(t *testing.T) {
	assert.True(t, mosaic.IsParent[string](split(mosaic.Row, leaf("a"), leaf("b"))))
	assert.False(t, mosaic.IsParent[string](leaf("a")))
	assert.False(t, mosaic.IsParent[string](mosaic.Hidden[string]{}))
	assert.False(t, mosaic.IsParent[string](nil))
}

func TestLeaves_PreOrder(t *testing.T) {
	root := split(mosaic.Row,
		split(mosaic.Column, leaf("a"), leaf("b")),
		split(mosaic.Column, leaf("c"), split(mosaic.Row, leaf("d"), leaf("e"))),
	)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, mosaic.Leaves[string](root))
}

func TestLeaves_EmptyAndHidden(t *testing.T) {
	assert.Empty(t, mosaic.Leaves[string](nil))
	assert.Equal(t, []string{"a"}, mosaic.Leaves[string](leaf("a")))

	withHidden := split(mosaic.Row, leaf("a"), mosaic.Hidden[string]{})
	assert.Equal(t, []string{"a"}, mosaic.Leaves[string](withHidden))
}

func TestNodeAtPath(t *testing.T) {
	inner := split(mosaic.Column, leaf("b"), leaf("c"))
	root := split(mosaic.Row, leaf("a"), inner)

	assert.Equal(t, root, mosaic.NodeAtPath[string](root, mosaic.Path{}))
	assert.Equal(t, leaf("a"), mosaic.NodeAtPath[string](root, mosaic.Path{mosaic.First}))
	assert.Equal(t, inner, mosaic.NodeAtPath[string](root, mosaic.Path{mosaic.Second}))
	assert.Equal(t, leaf("c"), mosaic.NodeAtPath[string](root, mosaic.Path{mosaic.Second, mosaic.Second}))

	assert.Nil(t, mosaic.NodeAtPath[string](root, mosaic.Path{mosaic.First, mosaic.First}),
		"descending through a leaf resolves to nothing")
	assert.Nil(t, mosaic.NodeAtPath[string](nil, mosaic.Path{mosaic.First}))
}

func TestRequireNodeAtPath(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	node, err := mosaic.RequireNodeAtPath[string](root, mosaic.Path{mosaic.Second})
	require.NoError(t, err)
	assert.Equal(t, leaf("b"), node)

	_, err = mosaic.RequireNodeAtPath[string](root, mosaic.Path{mosaic.Second, mosaic.First})
	var pathErr *mosaic.PathNotFoundError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, mosaic.Path{mosaic.Second, mosaic.First}, pathErr.Path)
}

func TestPathOfLeaf(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), split(mosaic.Column, leaf("b"), leaf("c")))

	path, ok := mosaic.PathOfLeaf[string](root, "c")
	require.True(t, ok)
	assert.Equal(t, mosaic.Path{mosaic.Second, mosaic.Second}, path)

	_, ok = mosaic.PathOfLeaf[string](root, "missing")
	assert.False(t, ok)
}

func TestBalancedTreeFromLeaves_RoundTrip(t *testing.T) {
	for n := 0; n <= 9; n++ {
		keys := make([]string, n)
		for i := range keys {
			keys[i] = fmt.Sprintf("pane-%d", i)
		}

		root := mosaic.BalancedTreeFromLeaves[string](keys, mosaic.Row)
		if n == 0 {
			assert.Nil(t, root)
			continue
		}
		assert.Equal(t, keys, mosaic.Leaves[string](root), "order must survive the build for %d leaves", n)
	}
}

func TestBalancedTreeFromLeaves_SingleLeafIsBare(t *testing.T) {
	root := mosaic.BalancedTreeFromLeaves[string]([]string{"only"}, mosaic.Row)
	assert.Equal(t, leaf("only"), root)
}

func TestBalancedTreeFromLeaves_AlternatesDirection(t *testing.T) {
	root := mosaic.BalancedTreeFromLeaves[string]([]string{"a", "b", "c", "d"}, mosaic.Row)

	assertTreesEqual(t,
		split(mosaic.Row,
			split(mosaic.Column, leaf("a"), leaf("b")),
			split(mosaic.Column, leaf("c"), leaf("d")),
		),
		root,
	)
}

func TestBalancedTreeFromLeaves_DepthBound(t *testing.T) {
	for n := 1; n <= 32; n++ {
		keys := make([]string, n)
		for i := range keys {
			keys[i] = fmt.Sprintf("pane-%d", i)
		}

		depth := mosaic.TreeDepth[string](mosaic.BalancedTreeFromLeaves[string](keys, mosaic.Row))

		ceilLog2 := 0
		if n > 1 {
			ceilLog2 = bits.Len(uint(n - 1))
		}
		assert.LessOrEqual(t, depth, ceilLog2+1, "depth for %d leaves", n)
	}
}

func TestPathToCorner(t *testing.T) {
	rowTree := split(mosaic.Row, leaf("a"), leaf("b"))
	assert.Equal(t, mosaic.Path{mosaic.Second}, mosaic.PathToCorner[string](rowTree, mosaic.TopRight))
	assert.Equal(t, mosaic.Path{mosaic.First}, mosaic.PathToCorner[string](rowTree, mosaic.BottomLeft))

	columnTree := split(mosaic.Column, leaf("a"), leaf("b"))
	assert.Equal(t, mosaic.Path{mosaic.First}, mosaic.PathToCorner[string](columnTree, mosaic.TopRight))
	assert.Equal(t, mosaic.Path{mosaic.Second}, mosaic.PathToCorner[string](columnTree, mosaic.BottomLeft))
}

func TestPathToCorner_Nested(t *testing.T) {
	// a | (b over c): bottom-right corner belongs to c.
	root := split(mosaic.Row, leaf("a"), split(mosaic.Column, leaf("b"), leaf("c")))

	assert.Equal(t, mosaic.Path{mosaic.Second, mosaic.Second}, mosaic.PathToCorner[string](root, mosaic.BottomRight))
	assert.Equal(t, mosaic.Path{mosaic.First}, mosaic.PathToCorner[string](root, mosaic.TopLeft))
}

func TestCountNodesAndTreeDepth(t *testing.T) {
	tests := []struct {
		name  string
		root  mosaic.Node[string]
		count int
		depth int
	}{
		{name: "empty", root: nil, count: 0, depth: 0},
		{name: "single leaf", root: leaf("a"), count: 1, depth: 1},
		{name: "one split", root: split(mosaic.Row, leaf("a"), leaf("b")), count: 3, depth: 2},
		{
			name: "lopsided",
			root: split(mosaic.Row,
				leaf("a"),
				split(mosaic.Column, leaf("b"), split(mosaic.Row, leaf("c"), leaf("d"))),
			),
			count: 7,
			depth: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, mosaic.CountNodes[string](tt.root))
			assert.Equal(t, tt.depth, mosaic.TreeDepth[string](tt.root))
		})
	}
}

func TestWalk_StopsEarly(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	visited := 0
	mosaic.Walk[string](root, func(_ mosaic.Node[string], _ mosaic.Path) bool {
		visited++
		return false
	})

	assert.Equal(t, 1, visited)
}
