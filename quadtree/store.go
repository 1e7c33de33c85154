// Package quadtree implements Aizawa's linear quadtree with level-difference
// encoding: a compact array-backed representation of a binary mask as
// bit-packed Morton-coded quads, each carrying the level difference to its
// neighbor on every side, and the O(1) neighbor lookups that encoding buys.
//
// Only BLACK and WHITE quads persist once the tree is built; GRAY quads are
// transient subdivision state and never appear in the final Store.
package quadtree

import (
	"sort"

	"github.com/adolgert/landquad/morton"
)

// Color is a quad's classification against the source mask.
type Color uint8

const (
	Undef Color = iota
	Black
	White
	Gray
)

func (c Color) String() string {
	switch c {
	case Black:
		return "B"
	case White:
		return "W"
	case Gray:
		return "G"
	default:
		return "?"
	}
}

// Direction and its Opposite are re-exported from morton so callers of this
// package don't need to import morton just to name a side.
type Direction = morton.Direction

const (
	East  = morton.East
	North = morton.North
	West  = morton.West
	South = morton.South
)

// LD is a signed level difference. NoNeighbor marks "outside the conceptual
// 2^r square"; 127 sits outside the range any real difference can take
// while keeping the field a single int8.
type LD = int8

const NoNeighbor LD = 127

// Entry is one persisted BLACK or WHITE quad: its location code, level,
// color, and level difference to the neighbor on each of the four sides, in
// (East, North, West, South) order.
type Entry struct {
	N  morton.Code
	L  int
	V  Color
	LD [4]LD
}

// Store is the columnar quad entry store: location codes, levels,
// colors, and level-differences grow together and are indexed by location
// code for O(1) lookup once the tree is built.
type Store struct {
	r     int
	tx    morton.Code
	ty    morton.Code
	dn    [4]morton.Code
	n     []morton.Code
	l     []int
	v     []Color
	ld    [][4]LD
	index map[morton.Code]int
}

// Resolution returns r, the fixed quadtree resolution this store was built
// at; every location code is 2r bits wide.
func (s *Store) Resolution() int { return s.r }

// Len returns the number of persisted BLACK/WHITE entries.
func (s *Store) Len() int { return len(s.n) }

// At returns the i'th entry in canonical (location-code ascending) order.
func (s *Store) At(i int) Entry {
	return Entry{N: s.n[i], L: s.l[i], V: s.v[i], LD: s.ld[i]}
}

// Find looks up the entry at a location code, if one is persisted there.
func (s *Store) Find(n morton.Code) (Entry, bool) {
	idx, ok := s.index[n]
	if !ok {
		return Entry{}, false
	}
	return s.At(idx), true
}

// Entries returns every persisted entry in canonical order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// ByLevelDesc returns every entry ordered level descending (smallest quads
// first), then by location code ascending — the scan order the connected
// components pass requires.
func (s *Store) ByLevelDesc() []Entry {
	out := s.Entries()
	sort.Slice(out, func(i, j int) bool {
		if out[i].L != out[j].L {
			return out[i].L > out[j].L
		}
		return out[i].N < out[j].N
	})
	return out
}

func (s *Store) finalize() {
	order := make([]int, len(s.n))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return s.n[order[a]] < s.n[order[b]] })

	n2 := make([]morton.Code, len(order))
	l2 := make([]int, len(order))
	v2 := make([]Color, len(order))
	ld2 := make([][4]LD, len(order))
	index2 := make(map[morton.Code]int, len(order))
	for newIdx, oldIdx := range order {
		n2[newIdx] = s.n[oldIdx]
		l2[newIdx] = s.l[oldIdx]
		v2[newIdx] = s.v[oldIdx]
		ld2[newIdx] = s.ld[oldIdx]
		index2[n2[newIdx]] = newIdx
	}
	s.n, s.l, s.v, s.ld, s.index = n2, l2, v2, ld2, index2
}
