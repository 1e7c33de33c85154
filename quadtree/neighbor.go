package quadtree

import (
	"github.com/adolgert/landquad/landquaderr"
	"github.com/adolgert/landquad/morton"
)

// Neighbor finds the neighbor Q in direction d of quad e: the smallest
// quadrant adjacent to e in that direction with size >= e's.
//
// ok is false with err == nil for a legitimate "no neighbor" — either e.LD[d]
// is NoNeighbor (outside the conceptual 2^r square), or the same-level
// neighbor is itself subdivided smaller than e, in which case the paper's
// finder would need to return a GRAY node this store never persists; by
// contract that case returns NO_NEIGHBOR too; the components pass relies on
// its smallest-first scan order to have already connected across that gap.
//
// ok is false with a non-nil *landquaderr.Error only when the lookup should
// have found an entry and didn't — an invariant violation that should never
// happen for a well-formed tree.
func (s *Store) Neighbor(e Entry, d Direction) (Entry, bool, error) {
	ld := e.LD[d]
	if ld == NoNeighbor {
		return Entry{}, false, nil
	}

	var nq morton.Code
	var dn morton.Code
	if ld < 0 {
		// The neighbor is -ld levels shallower; align e's code to the
		// neighbor's level and apply the increment there.
		shift := uint(2 * (s.r - e.L - int(ld)))
		nq = (e.N >> shift) << shift
		dn = s.dn[d] << shift
	} else {
		nq = e.N
		dn = s.dn[d] << uint(2*(s.r-e.L))
	}

	mq := morton.LocationAddition(nq, dn, s.tx, s.ty)
	found, ok := s.Find(mq)
	if !ok {
		err := landquaderr.New(landquaderr.Internal, 0).WithQuad(uint64(e.N), e.L)
		return Entry{}, false, err
	}

	// The found quad may be one level deeper than e (its same-level cover is
	// GRAY and unstored); that departs from the paper, see the method comment.
	if found.L > e.L {
		return Entry{}, false, nil
	}

	return found, true, nil
}

// Neighbors returns every existing neighbor of e across all four
// directions, in (East, North, West, South) order, skipping NO_NEIGHBOR.
func (s *Store) Neighbors(e Entry) ([]Entry, error) {
	out := make([]Entry, 0, 4)
	for d := morton.East; d <= morton.South; d++ {
		n, ok, err := s.Neighbor(e, d)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}
