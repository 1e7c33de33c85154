// Package landquad ties the quadtree and dense cluster engines together
// behind one facade: given a raster and a set of categories, produce
// connected components and their geometry measures, picking whichever
// engine Options.Engine names.
package landquad

import (
	"log"

	"github.com/adolgert/landquad/components"
	"github.com/adolgert/landquad/dense"
	"github.com/adolgert/landquad/landquaderr"
	"github.com/adolgert/landquad/morton"
	"github.com/adolgert/landquad/quadtree"
	"github.com/adolgert/landquad/raster"
)

// Engine selects which cluster engine Analyze runs.
type Engine int

const (
	// Dense runs the union-find segmentation directly over the raster.
	Dense Engine = iota
	// Quadtree builds a linear quadtree per category and runs the
	// components pass over it.
	Quadtree
)

// Options is the one configuration record an Analyze call takes.
type Options struct {
	// Connectivity is the neighbor adjacency; zero and 4 both mean
	// 4-neighbor, the only connectivity the cluster decomposition supports.
	// Any other value is rejected.
	Connectivity int
	// Categories restricts analysis to these category codes; empty means
	// every distinct value raster.Categories finds.
	Categories []uint8
	// Engine picks Dense or Quadtree.
	Engine Engine
	// CategoryCountCt overrides the detected category count used to
	// normalize the diversity-adjusted perimeter; zero means "detect".
	CategoryCountCt int
	// Cancel is a cooperative cancel token, polled between subdivision and
	// labeling steps; when it returns true the pass aborts with a Cancelled
	// error and no partial result.
	Cancel func() bool
	// Logger receives per-category progress; nil uses log.Default().
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// CategoryResult is one category's clusters and their aligned geometry.
type CategoryResult struct {
	Category   uint8
	Clusters   [][]dense.Point
	Geometries []dense.Geometry
}

// Analyze runs the configured engine against r for every requested
// category, returning one CategoryResult per category: in the order given by
// Options.Categories, or ascending when the categories are detected.
func Analyze(r *raster.Raster, opts Options) ([]CategoryResult, error) {
	if opts.Connectivity != 0 && opts.Connectivity != 4 {
		return nil, landquaderr.New(landquaderr.InvalidInput, 0)
	}

	detected := r.Categories()
	present := make(map[uint8]bool, len(detected))
	for _, c := range detected {
		present[c] = true
	}

	categories := opts.Categories
	explicit := len(categories) > 0
	if !explicit {
		categories = detected
	}

	ct := opts.CategoryCountCt
	if ct == 0 {
		ct = len(detected)
	}

	out := make([]CategoryResult, 0, len(categories))
	for _, c := range categories {
		if opts.Cancel != nil && opts.Cancel() {
			return nil, landquaderr.New(landquaderr.Cancelled, c)
		}
		if explicit && !present[c] {
			return nil, landquaderr.New(landquaderr.InvalidInput, c)
		}
		opts.logger().Printf("landquad: analyzing category %d", c)

		var clusters [][]dense.Point
		var err error
		switch opts.Engine {
		case Quadtree:
			clusters, err = clustersViaQuadtree(r, c, opts.Cancel)
		default:
			clusters = dense.Clusters(r.W, r.H, r.At, c)
		}
		if err != nil {
			if le, ok := err.(*landquaderr.Error); ok {
				err = le.WithCategory(c)
			}
			return nil, err
		}

		geoms := make([]dense.Geometry, len(clusters))
		for i, cluster := range clusters {
			geoms[i] = dense.ComputeGeometry(cluster, c, r.CategoryAt(), ct)
		}

		out = append(out, CategoryResult{Category: c, Clusters: clusters, Geometries: geoms})
	}
	return out, nil
}

// clustersViaQuadtree builds a linear quadtree for category c, runs the
// components pass, and converts each surviving BLACK component's quad
// ranges into cell sets so its output is directly comparable to the dense
// engine's: both decompose the same mask the same way.
func clustersViaQuadtree(r *raster.Raster, c uint8, cancel func() bool) ([][]dense.Point, error) {
	store, err := quadtree.BuildCancellable(r.W, r.H, r.Mask(c), quadtree.CancelFunc(cancel))
	if err != nil {
		return nil, err
	}
	comps, err := components.FindCancellable(store, components.CancelFunc(cancel))
	if err != nil {
		return nil, err
	}

	out := make([][]dense.Point, 0, len(comps))
	for _, comp := range comps {
		if comp.Color != quadtree.Black {
			continue
		}
		out = append(out, entriesToPoints(comp.Entries, store.Resolution()))
	}
	return out, nil
}

// Clusters returns category c's connected components as cell sets, via the
// dense engine.
func Clusters(r *raster.Raster, c uint8) [][]dense.Point {
	return dense.Clusters(r.W, r.H, r.At, c)
}

// ClustersQT returns category c's connected components as quad entry lists,
// via the quadtree engine. Only BLACK
// components are returned; the WHITE complement is an implementation detail
// of the labeling pass.
func ClustersQT(r *raster.Raster, c uint8) ([][]quadtree.Entry, error) {
	store, err := quadtree.Build(r.W, r.H, r.Mask(c))
	if err != nil {
		return nil, err
	}
	comps, err := components.Find(store)
	if err != nil {
		return nil, err
	}
	out := make([][]quadtree.Entry, 0, len(comps))
	for _, comp := range comps {
		if comp.Color == quadtree.Black {
			out = append(out, comp.Entries)
		}
	}
	return out, nil
}

// Geometry returns category c's per-cluster geometry measures, aligned with
// the cluster order Clusters returns.
func Geometry(r *raster.Raster, c uint8) []dense.Geometry {
	clusters := Clusters(r, c)
	ct := len(r.Categories())
	out := make([]dense.Geometry, len(clusters))
	for i, cluster := range clusters {
		out[i] = dense.ComputeGeometry(cluster, c, r.CategoryAt(), ct)
	}
	return out
}

func entriesToPoints(entries []quadtree.Entry, resolution int) []dense.Point {
	var pts []dense.Point
	for _, e := range entries {
		llx, lly, urx, ury := morton.CodeToRange(e.N, e.L, resolution)
		for x := llx; x < urx; x++ {
			for y := lly; y < ury; y++ {
				pts = append(pts, dense.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// ErrorKind re-exports landquaderr.Kind so callers rarely need the
// landquaderr import just to branch on error category.
type ErrorKind = landquaderr.Kind
