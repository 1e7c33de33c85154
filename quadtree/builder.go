package quadtree

import (
	"log"

	"github.com/adolgert/landquad/landquaderr"
	"github.com/adolgert/landquad/morton"
)

// Logger receives build diagnostics (a rejected resolution, a cancellation
// firing mid-build). Callers may swap it; nothing on the hot path writes to
// it.
var Logger = log.Default()

// Mask answers whether a pixel is "on" for the category under analysis.
// Cells outside [0,W)x[0,H) are always treated as off by the builder, so a
// Mask only ever needs to answer in-bounds queries.
type Mask func(x, y int) bool

// CancelFunc is polled between GRAY-subdivision steps; when it returns true
// the build aborts with a Cancelled error and no partial tree.
type CancelFunc func() bool

// active is one quad's mutable construction-time state: a work queue of
// location codes plus one shared map takes the place of a splicing list; gray
// and already-resolved entries share one map so neighbor bumps are O(1)
// regardless of which ones are still subject to subdivision.
type active struct {
	n  morton.Code
	l  int
	v  Color
	ld [4]LD
}

// parentSide maps a child's Z-order index (0..3 = SW,SE,NW,NE) to the first
// of the two sides that face outside the parent quad (and so inherit the
// parent's level difference); the other inherited side is (parentSide+1)%4.
// The two remaining sides face siblings and are always same-level (ld=0).
var parentSide = [4]Direction{West, South, North, East}

// Build constructs the linear quadtree for a w×h raster's binary mask.
// Resolution r = ceil(log2(max(w,h))) is computed internally; cells outside
// the raster are treated as WHITE/off.
func Build(w, h int, on Mask) (*Store, error) {
	return BuildCancellable(w, h, on, nil)
}

// BuildCancellable is Build with an optional cooperative cancel token,
// polled once per GRAY subdivision.
func BuildCancellable(w, h int, on Mask, cancel CancelFunc) (*Store, error) {
	if w <= 0 || h <= 0 {
		return nil, landquaderr.New(landquaderr.InvalidInput, 0)
	}
	r := morton.DimensionsToLevels(w, h)
	if r > morton.MaxResolution {
		Logger.Printf("quadtree: %dx%d raster needs resolution %d, past the uint64 location-code limit %d", w, h, r, morton.MaxResolution)
		return nil, landquaderr.New(landquaderr.ResolutionOverflow, 0)
	}

	tx, ty := morton.TxTy(r)
	dn := morton.Dn4(r)
	integral := newIntegralMask(w, h, on)

	side := 1 << uint(r)
	rootColor := Gray
	switch onCount, total := integral.count(0, 0, side, side); {
	case onCount == total:
		rootColor = Black
	case onCount == 0:
		rootColor = White
	}

	entries := map[morton.Code]*active{}
	var queue []morton.Code
	if rootColor == Gray {
		queue = []morton.Code{0}
	}
	entries[0] = &active{n: 0, l: 0, v: rootColor, ld: [4]LD{NoNeighbor, NoNeighbor, NoNeighbor, NoNeighbor}}

	for len(queue) > 0 {
		if cancel != nil && cancel() {
			Logger.Printf("quadtree: build cancelled with %d quads resolved", len(entries))
			return nil, landquaderr.New(landquaderr.Cancelled, 0)
		}

		gn := queue[0]
		queue = queue[1:]
		g, ok := entries[gn]
		if !ok || g.v != Gray {
			continue
		}

		bumpNeighbors(entries, g.n, g.l, g.ld, r, tx, ty, dn)
		delete(entries, gn)

		children := make([]*active, 4)
		for k := uint8(0); k < 4; k++ {
			childLD := [4]LD{0, 0, 0, 0}
			s0 := parentSide[k]
			for _, side := range [2]Direction{s0, (s0 + 1) % 4} {
				v := g.ld[side]
				if v != NoNeighbor {
					v--
				}
				childLD[side] = v
			}

			childN := morton.ChildLocation(g.n, g.l, r, k)
			childL := g.l + 1
			llx, lly, urx, ury := morton.CodeToRange(childN, childL, r)
			onCount, total := integral.count(llx, lly, urx, ury)

			var color Color
			switch {
			case onCount == total:
				color = Black
			case onCount == 0:
				color = White
			default:
				color = Gray
			}

			children[k] = &active{n: childN, l: childL, v: color, ld: childLD}
		}

		for _, child := range children {
			bumpNeighbors(entries, child.n, child.l, child.ld, r, tx, ty, dn)
		}

		for _, child := range children {
			entries[child.n] = child
			if child.v == Gray {
				queue = append(queue, child.n)
			}
		}
	}

	store := &Store{r: r, tx: tx, ty: ty, dn: dn}
	store.n = make([]morton.Code, 0, len(entries))
	store.l = make([]int, 0, len(entries))
	store.v = make([]Color, 0, len(entries))
	store.ld = make([][4]LD, 0, len(entries))
	store.index = make(map[morton.Code]int, len(entries))
	for _, e := range entries {
		store.n = append(store.n, e.n)
		store.l = append(store.l, e.l)
		store.v = append(store.v, e.v)
		store.ld = append(store.ld, e.ld)
	}
	store.finalize()
	return store, nil
}

// bumpNeighbors increments ld[opposite(d)] on every currently-stored,
// same-level neighbor of (n,l) in each direction whose ld isn't NoNeighbor —
// used both when a GRAY quad is about to be replaced by its children (its
// same-level neighbors just became one level deeper relative to them) and
// when a freshly created child is inserted (its pre-existing, non-sibling
// same-level neighbors just became one level deeper relative to it).
func bumpNeighbors(entries map[morton.Code]*active, n morton.Code, l int, ld [4]LD, r int, tx, ty morton.Code, dn [4]morton.Code) {
	for d := morton.East; d <= morton.South; d++ {
		if ld[d] == NoNeighbor {
			continue
		}
		loc := morton.NeighborEqualSize(n, l, r, dn[d], tx, ty)
		neighbor, ok := entries[loc]
		if !ok || neighbor.l != l {
			continue
		}
		opp := d.Opposite()
		if neighbor.ld[opp] != NoNeighbor {
			neighbor.ld[opp]++
		}
	}
}
