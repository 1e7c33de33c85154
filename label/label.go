// Package label implements the union-find label forest the connected
// components pass uses to merge quad labels as it scans the quadtree
// smallest-quad-first. It is a flattened, array-backed substitute for the
// paper's Label/SubLabel linked-chain structure (see landquad's design notes
// for why): every handle lives in one arena, path-halving keeps find() near
// O(1) amortized, and a handle's arena index doubles as its creation-order
// tiebreaker without a separate counter.
package label

// Handle identifies one label slot in a Forest by its arena index, so the
// first label a Forest allocates is Handle 0; Forest.NewLabel and
// Forest.MakeFrom are the only ways to get one.
type Handle int

// Forest is an arena of union-find label slots. The zero Forest is ready to
// use.
type Forest struct {
	parent []Handle
}

// NewForest returns an empty label forest.
func NewForest() *Forest {
	return &Forest{}
}

// NewLabel allocates a fresh root label, unrelated to any other label in the
// forest.
func (f *Forest) NewLabel() Handle {
	h := Handle(len(f.parent))
	f.parent = append(f.parent, h)
	return h
}

// MakeFrom allocates a new label that starts out merged with h: it shares
// h's root from the moment it's created, but (unlike h) it is never itself a
// root, so it never changes Resolve(h)'s identity.
func (f *Forest) MakeFrom(h Handle) Handle {
	root := f.find(h)
	child := Handle(len(f.parent))
	f.parent = append(f.parent, root)
	return child
}

// find walks to h's root, halving the path as it goes.
func (f *Forest) find(h Handle) Handle {
	for f.parent[h] != h {
		f.parent[h] = f.parent[f.parent[h]]
		h = f.parent[h]
	}
	return h
}

// Resolve returns the canonical handle for whichever label set h currently
// belongs to. Two handles denote the same label exactly when Resolve
// returns equal values.
func (f *Forest) Resolve(h Handle) Handle {
	return f.find(h)
}

// Idx returns a label's canonical ordering key: the arena index of its
// resolved root. Roots are allocated in creation order, so this is exactly
// the "smallest label wins" comparison the components pass needs —
// no separate counter required, since only NewLabel-created slots can ever
// satisfy parent[x]==x.
func (f *Forest) Idx(h Handle) int {
	return int(f.find(h))
}

// Less reports whether a's label was created before b's — the comparison
// the components pass uses to pick the smaller of two candidate labels.
func (f *Forest) Less(a, b Handle) bool {
	return f.Idx(a) < f.Idx(b)
}

// Same reports whether a and b currently denote the same label.
func (f *Forest) Same(a, b Handle) bool {
	return f.find(a) == f.find(b)
}

// Assign merges other into self's label set: after this call Same(self,
// other) holds, and every handle previously resolving to either one now
// resolves to whichever root was reached first by self.
func (f *Forest) Assign(self, other Handle) {
	ra, rb := f.find(self), f.find(other)
	if ra == rb {
		return
	}
	f.parent[rb] = ra
}
