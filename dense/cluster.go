// Package dense implements the parallel, simpler cluster engine geometry
// scoring usually runs against: a two-pass union-find
// segmentation directly over a raster, with output semantics identical to
// the quadtree engine's connected-components pass but without ever
// building a tree.
package dense

import (
	"sort"

	"github.com/adolgert/landquad/label"
)

// Point is one raster cell coordinate.
type Point struct {
	X, Y int
}

// flat returns the canonical ordering key for (x,y): the same x*H+y layout
// raster.Raster stores cells in, so cluster order here matches cell order
// there.
func flat(x, y, h int) int { return x*h + y }

// AllClustersGrouped segments the whole w×h raster into maximal 4-connected
// blobs of equal value simultaneously, across every distinct value at()
// returns — not filtered to one category. Clusters are ordered by the
// smallest flat index (x*h+y) any of their cells occupies, so discovery
// order is deterministic.
func AllClustersGrouped(w, h int, at func(x, y int) uint8) [][]Point {
	forest := label.NewForest()
	handle := make([]label.Handle, w*h)

	idx := func(x, y int) int { return flat(x, y, h) }

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			handle[idx(x, y)] = forest.NewLabel()
		}
	}

	union := func(x0, y0, x1, y1 int) {
		if x1 < 0 || x1 >= w || y1 < 0 || y1 >= h {
			return
		}
		if at(x0, y0) != at(x1, y1) {
			return
		}
		forest.Assign(handle[idx(x0, y0)], handle[idx(x1, y1)])
	}

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			union(x, y, x+1, y)
			union(x, y, x, y+1)
		}
	}

	groups := map[int][]Point{}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			root := forest.Idx(handle[idx(x, y)])
			groups[root] = append(groups[root], Point{X: x, Y: y})
		}
	}

	out := make([][]Point, 0, len(groups))
	for _, pts := range groups {
		sort.Slice(pts, func(i, j int) bool {
			return flat(pts[i].X, pts[i].Y, h) < flat(pts[j].X, pts[j].Y, h)
		})
		out = append(out, pts)
	}
	sort.Slice(out, func(i, j int) bool {
		return flat(out[i][0].X, out[i][0].Y, h) < flat(out[j][0].X, out[j][0].Y, h)
	})
	return out
}

// Clusters returns the connected components of category c only — the
// single-category dense-engine interface, a thin filter over the general
// multi-value segmentation.
func Clusters(w, h int, at func(x, y int) uint8, c uint8) [][]Point {
	groups := AllClustersGrouped(w, h, at)
	out := make([][]Point, 0)
	for _, g := range groups {
		if at(g[0].X, g[0].Y) == c {
			out = append(out, g)
		}
	}
	return out
}
