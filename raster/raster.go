// Package raster loads dense land-use rasters from flat byte files and
// exposes per-category boolean masks for the quadtree and dense cluster
// engines to build from.
package raster

import (
	"github.com/adolgert/landquad/landquaderr"
)

// Raster is a dense W×H grid of land-use category codes, indexed R.At(x,y)
// and stored at x*H+y, so y is the fast-varying axis.
type Raster struct {
	W, H int
	data []uint8
}

// NewRaster allocates a zeroed w×h raster.
func NewRaster(w, h int) *Raster {
	if w <= 0 || h <= 0 {
		return &Raster{W: w, H: h}
	}
	return &Raster{W: w, H: h, data: make([]uint8, w*h)}
}

// At returns the category code at (x, y).
func (r *Raster) At(x, y int) uint8 {
	return r.data[x*r.H+y]
}

// Set assigns the category code at (x, y).
func (r *Raster) Set(x, y int, v uint8) {
	r.data[x*r.H+y] = v
}

// Mask returns a predicate true where the raster holds category c, suitable
// for passing straight to quadtree.Build.
func (r *Raster) Mask(c uint8) func(x, y int) bool {
	return func(x, y int) bool {
		if x < 0 || x >= r.W || y < 0 || y >= r.H {
			return false
		}
		return r.At(x, y) == c
	}
}

// CategoryAt returns a bounds-checked cell lookup in the shape
// dense.CategoryAt expects, without this package needing to import dense.
func (r *Raster) CategoryAt() func(x, y int) (uint8, bool) {
	return func(x, y int) (uint8, bool) {
		if x < 0 || x >= r.W || y < 0 || y >= r.H {
			return 0, false
		}
		return r.At(x, y), true
	}
}

// Categories returns every distinct category code present in the raster, in
// ascending order.
func (r *Raster) Categories() []uint8 {
	seen := [256]bool{}
	for _, v := range r.data {
		seen[v] = true
	}
	out := make([]uint8, 0, 8)
	for v := 0; v < 256; v++ {
		if seen[v] {
			out = append(out, uint8(v))
		}
	}
	return out
}

// LoadRawBytes interprets raw as a flat, row-major h0×w0 byte array (h0 rows
// of w0 bytes each) and returns the W=w0, H=h0 Raster the analysis runs on,
// transposing and flipping the y axis so R(x,y) = raw[(h0-1-y)*w0 + x].
func LoadRawBytes(raw []byte, h0, w0 int) (*Raster, error) {
	if h0 <= 0 || w0 <= 0 {
		return nil, landquaderr.New(landquaderr.InvalidInput, 0)
	}
	if len(raw) != h0*w0 {
		return nil, landquaderr.New(landquaderr.InvalidInput, 0)
	}

	out := NewRaster(w0, h0)
	for y := 0; y < h0; y++ {
		srcRow := (h0 - 1 - y) * w0
		for x := 0; x < w0; x++ {
			out.Set(x, y, raw[srcRow+x])
		}
	}
	return out, nil
}
