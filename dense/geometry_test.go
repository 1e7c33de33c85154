package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func noBounds(x, y int) (uint8, bool) { return 0, false }

func TestGeometryIsolatedSingleCell(t *testing.T) {
	g := ComputeGeometry([]Point{{X: 0, Y: 0}}, 1, noBounds, 1)
	assert.Equal(t, 1, g.Area)
	assert.Equal(t, 4, g.Perimeter)
	assert.Equal(t, 1.0, g.P)
}

func TestGeometryFullyOn2x2(t *testing.T) {
	cluster := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	g := ComputeGeometry(cluster, 1, noBounds, 1)
	assert.Equal(t, 4, g.Area)
	assert.Equal(t, 8, g.Perimeter)
	assert.Equal(t, 2.0, g.P)
}

// TestGeometryS2Uniform2x2 is scenario S2: a uniform 2x2 block of one
// category, no other categories present in the raster, so the
// diversity-adjusted perimeter equals the corner-adjusted one.
func TestGeometryS2Uniform2x2(t *testing.T) {
	cluster := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	g := ComputeGeometry(cluster, 1, noBounds, 1)
	assert.Equal(t, 4, g.Area)
	assert.Equal(t, 8, g.Perimeter)
	assert.Equal(t, 2.0, g.P)
	assert.Equal(t, 2.0, g.DP)
}

// TestGeometryS6LTromino is scenario S6: an L-shaped 3-cell cluster.
func TestGeometryS6LTromino(t *testing.T) {
	cluster := []Point{{0, 0}, {1, 0}, {0, 1}}
	g := ComputeGeometry(cluster, 1, noBounds, 1)
	assert.Equal(t, 3, g.Area)
	assert.Equal(t, 8, g.Perimeter)
	assert.Equal(t, 3.0, g.P)
}

func TestGeometryDiversityWeighting(t *testing.T) {
	// Two cells of category 1 bordered by categories 2 and 3 (2 appears
	// twice, on two different sides, but only counts once toward C).
	grid := map[Point]uint8{
		{0, 0}: 1, {1, 0}: 1,
		{0, 1}: 2, {2, 0}: 3, {1, 1}: 2,
	}
	at := func(x, y int) (uint8, bool) {
		v, ok := grid[Point{x, y}]
		return v, ok
	}

	cluster := []Point{{0, 0}, {1, 0}}
	g := ComputeGeometry(cluster, 1, at, 3)
	assert.Equal(t, 2, g.Area)
	assert.Equal(t, 6, g.Perimeter)
	// C = 2 distinct foreign categories (2 and 3); Ct = 3.
	wantDP := (6.0 + 2*1*2.0/2.0) / 4
	assert.Equal(t, wantDP, g.DP)
}

func TestGeometryCtAtMostOneFallsBackToRawPerimeter(t *testing.T) {
	cluster := []Point{{0, 0}, {1, 0}}
	g := ComputeGeometry(cluster, 1, noBounds, 1)
	assert.Equal(t, float64(g.Perimeter)/4, g.DP)
}
