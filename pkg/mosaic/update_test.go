package mosaic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mosaic/pkg/mosaic"
)

func TestUpdateTree_RootSetReplacesWholeTree(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))
	replacement := leaf("z")

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		mosaic.NewReplaceUpdate[string](mosaic.Path{}, replacement),
	})

	assertTreesEqual(t, replacement, got)
}

func TestUpdateTree_SetIsIdempotent(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), split(mosaic.Column, leaf("b"), leaf("c")))
	update := mosaic.NewReplaceUpdate[string](mosaic.Path{mosaic.Second}, leaf("z"))

	once := mosaic.UpdateTree[string](root, []mosaic.Update[string]{update})
	twice := mosaic.UpdateTree[string](once, []mosaic.Update[string]{update})

	assertTreesEqual(t, once, twice)
}

func TestUpdateTree_SharesUntouchedSubtrees(t *testing.T) {
	untouched := split(mosaic.Column, leaf("b"), leaf("c"))
	root := split(mosaic.Row, leaf("a"), untouched).(*mosaic.Split[string])

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		mosaic.NewReplaceUpdate[string](mosaic.Path{mosaic.First}, leaf("z")),
	})

	gotSplit, ok := got.(*mosaic.Split[string])
	require.True(t, ok)
	assert.NotSame(t, root, gotSplit, "the path to the edit must be reallocated")
	assert.Same(t, untouched.(*mosaic.Split[string]), gotSplit.Second.(*mosaic.Split[string]),
		"subtrees off the update path must be shared, not copied")
}

func TestUpdateTree_PathThroughLeafIsDropped(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		mosaic.NewReplaceUpdate[string](mosaic.Path{mosaic.First, mosaic.Second}, leaf("z")),
	})

	assert.Same(t, root.(*mosaic.Split[string]), got.(*mosaic.Split[string]),
		"an unresolvable update must leave the tree untouched")
}

func TestUpdateTree_PartialPatch(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), split(mosaic.Column, leaf("b"), leaf("c")))

	direction := mosaic.Row
	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		{
			Path: mosaic.Path{mosaic.Second},
			Spec: mosaic.Spec[string]{Percentage: mosaic.Pct(25), Direction: &direction},
		},
	})

	assertTreesEqual(t,
		split(mosaic.Row, leaf("a"), split(mosaic.Row, leaf("b"), leaf("c"), 25)),
		got,
	)
}

func TestUpdateTree_NestedSpecEditsChildrenInPlace(t *testing.T) {
	root := split(mosaic.Row,
		leaf("a"),
		split(mosaic.Column, leaf("b"), leaf("c")),
	)

	// One update, no extra path segments: patch the root's percentage and
	// the second child's percentage together.
	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		{
			Path: mosaic.Path{},
			Spec: mosaic.Spec[string]{
				Percentage: mosaic.Pct(30),
				Second:     &mosaic.Spec[string]{Percentage: mosaic.Pct(80)},
			},
		},
	})

	assertTreesEqual(t,
		split(mosaic.Row, leaf("a"), split(mosaic.Column, leaf("b"), leaf("c"), 80), 30),
		got,
	)
}

func TestUpdateTree_PartialPatchOnLeafIsDropped(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		{Path: mosaic.Path{mosaic.First}, Spec: mosaic.Spec[string]{Percentage: mosaic.Pct(10)}},
	})

	assert.Same(t, root.(*mosaic.Split[string]), got.(*mosaic.Split[string]))
}

func TestUpdateTree_LaterUpdatesSeeEarlierResults(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		mosaic.NewReplaceUpdate[string](mosaic.Path{mosaic.Second},
			split(mosaic.Column, leaf("b"), leaf("c"))),
		mosaic.NewReplaceUpdate[string](mosaic.Path{mosaic.Second, mosaic.Second}, leaf("z")),
	})

	assertTreesEqual(t,
		split(mosaic.Row, leaf("a"), split(mosaic.Column, leaf("b"), leaf("z"))),
		got,
	)
}

func TestNewRemoveUpdate_CollapsesToSibling(t *testing.T) {
	// Concrete scenario: removing 'a' from (a | b) leaves just b.
	root := split(mosaic.Row, leaf("a"), leaf("b"), 50)

	update, err := mosaic.NewRemoveUpdate[string](root, mosaic.Path{mosaic.First})
	require.NoError(t, err)

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{update})
	assertTreesEqual(t, leaf("b"), got)
}

func TestNewRemoveUpdate_DeepCollapse(t *testing.T) {
	root := split(mosaic.Row,
		leaf("a"),
		split(mosaic.Column, leaf("b"), leaf("c"), 30),
		40,
	)

	update, err := mosaic.NewRemoveUpdate[string](root, mosaic.Path{mosaic.Second, mosaic.First})
	require.NoError(t, err)

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{update})
	assertTreesEqual(t, split(mosaic.Row, leaf("a"), leaf("c"), 40), got)
	assert.Equal(t, []string{"a", "c"}, mosaic.Leaves[string](got))
}

func TestNewRemoveUpdate_RootIsRejected(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	_, err := mosaic.NewRemoveUpdate[string](root, mosaic.Path{})

	require.ErrorIs(t, err, mosaic.ErrRootRemoval)
}

func TestNewRemoveUpdate_ParentNotASplit(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	_, err := mosaic.NewRemoveUpdate[string](root, mosaic.Path{mosaic.Second, mosaic.First})

	var pathErr *mosaic.PathNotFoundError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, mosaic.Path{mosaic.Second}, pathErr.Path)
}

func TestNewExpandUpdate_SetsShareAlongPath(t *testing.T) {
	root := split(mosaic.Row,
		leaf("a"),
		split(mosaic.Column, leaf("b"), leaf("c")),
	)

	update := mosaic.NewExpandUpdate[string](mosaic.Path{mosaic.Second, mosaic.First}, 70)
	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{update})

	// 'b' sits on the second branch of the root (30/70 toward it) and the
	// first branch of the inner split (70/30 toward it).
	assertTreesEqual(t,
		split(mosaic.Row, leaf("a"), split(mosaic.Column, leaf("b"), leaf("c"), 70), 30),
		got,
	)
	assert.Equal(t, mosaic.Leaves[string](root), mosaic.Leaves[string](got), "expanding must not move panes")
}

func TestNewExpandUpdate_FallsBackToDefaultShare(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		mosaic.NewExpandUpdate[string](mosaic.Path{mosaic.First}, 0),
	})

	assertTreesEqual(t, split(mosaic.Row, leaf("a"), leaf("b"), 70), got)
}

func TestNewHideUpdate_SwapsInPlaceholder(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		mosaic.NewHideUpdate[string](mosaic.Path{mosaic.First}),
	})

	assertTreesEqual(t, split(mosaic.Row, mosaic.Hidden[string]{}, leaf("b")), got)
	assert.Equal(t, []string{"b"}, mosaic.Leaves[string](got), "hidden subtrees render nothing")
	assert.Equal(t, 3, mosaic.CountNodes[string](got), "the slot stays addressable")
}

func TestNewSplitUpdate_SeedsBothHalves(t *testing.T) {
	root := split(mosaic.Row, leaf("a"), leaf("b"))

	got := mosaic.UpdateTree[string](root, []mosaic.Update[string]{
		mosaic.NewSplitUpdate(mosaic.Path{mosaic.Second}, "fresh", mosaic.Column),
	})

	assertTreesEqual(t,
		split(mosaic.Row, leaf("a"), split(mosaic.Column, leaf("fresh"), leaf("fresh"))),
		got,
	)
}
