package components

import (
	"sort"
	"testing"

	"github.com/adolgert/landquad/morton"
	"github.com/adolgert/landquad/quadtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paperMask is the same 8x8 worked example quadtree_test.go builds its
// expectations from; reused here so the components test exercises the exact
// tree whose three connected blobs (one black staircase, two disjoint white
// regions) were hand-traced from the mask.
func paperMask() quadtree.Mask {
	orig := [8][8]int{
		{1, 1, 1, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 0, 0},
		{1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	return func(x, y int) bool {
		return orig[7-y][x] == 1
	}
}

func codesOf(c Component) []morton.Code {
	out := make([]morton.Code, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.N
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestFindPaperSample(t *testing.T) {
	store, err := quadtree.Build(8, 8, paperMask())
	require.NoError(t, err)

	comps, err := Find(store)
	require.NoError(t, err)
	require.Len(t, comps, 3)

	var black, whiteA, whiteB []morton.Code
	for _, c := range comps {
		switch {
		case c.Color == quadtree.Black:
			black = codesOf(c)
		case codesOf(c)[0] == 0:
			whiteA = codesOf(c)
		default:
			whiteB = codesOf(c)
		}
	}

	assert.ElementsMatch(t, []morton.Code{0, 16, 20}, whiteA)
	assert.ElementsMatch(t, []morton.Code{52, 57, 59, 60}, whiteB)
	assert.ElementsMatch(t, []morton.Code{24, 28, 32, 48, 56, 58}, black)
}

func TestFindCancellable(t *testing.T) {
	store, err := quadtree.Build(8, 8, paperMask())
	require.NoError(t, err)

	comps, err := FindCancellable(store, func() bool { return true })
	assert.Error(t, err)
	assert.Nil(t, comps)
}

func TestFindAllBlack(t *testing.T) {
	store, err := quadtree.Build(4, 4, func(x, y int) bool { return true })
	require.NoError(t, err)

	comps, err := Find(store)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, quadtree.Black, comps[0].Color)
	assert.Len(t, comps[0].Entries, 1)
}

func TestFindCheckerboardIsAllSeparateComponents(t *testing.T) {
	store, err := quadtree.Build(4, 4, func(x, y int) bool { return (x+y)%2 == 0 })
	require.NoError(t, err)

	comps, err := Find(store)
	require.NoError(t, err)

	totalCells := 0
	for _, c := range comps {
		for _, e := range c.Entries {
			llx, lly, urx, ury := morton.CodeToRange(e.N, e.L, store.Resolution())
			totalCells += (urx - llx) * (ury - lly)
		}
	}
	assert.Equal(t, 16, totalCells)
	// No two adjacent checkerboard cells share color, so every single-pixel
	// quad is its own component.
	assert.Len(t, comps, 16)
}
