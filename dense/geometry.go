package dense

// Geometry holds the per-cluster shape measures: raw area and
// perimeter plus two corrected variants applied before clusters feed into
// fractal-dimension estimation.
type Geometry struct {
	Area      int
	Perimeter int
	P         float64 // corner-adjusted perimeter
	DP        float64 // diversity-adjusted perimeter
}

// CategoryAt answers a raster cell's category code, with inBounds false for
// any cell outside the raster — those are clipped from diversity weighting
// rather than contributing a phantom category.
type CategoryAt func(x, y int) (cat uint8, inBounds bool)

// ComputeGeometry measures one cluster's area, perimeter, and its two
// corrected variants. categoryCount is Ct, the total number of distinct
// categories present in the raster (or an override); when Ct<=1 there is no
// "other" category to weight by and dP falls back to the raw-perimeter form
// with C=0.
func ComputeGeometry(cluster []Point, category uint8, at CategoryAt, categoryCount int) Geometry {
	inCluster := make(map[Point]bool, len(cluster))
	for _, p := range cluster {
		inCluster[p] = true
	}

	area := len(cluster)
	edges := 0
	boundaryOther := map[uint8]bool{}

	neighborOffsets := [4]Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

	for _, p := range cluster {
		degree := 0
		for _, d := range neighborOffsets {
			nb := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if inCluster[nb] {
				degree++
			}
		}
		edges += degree
		if degree < 4 && at != nil {
			for _, d := range neighborOffsets {
				nb := Point{X: p.X + d.X, Y: p.Y + d.Y}
				if inCluster[nb] {
					continue
				}
				if cat, ok := at(nb.X, nb.Y); ok {
					boundaryOther[cat] = true
				}
			}
		}
	}
	edges /= 2

	perimeter := 4*area - 2*edges
	cornerAdjusted := float64(perimeter+2*(area-1)) / 4

	c := diversityCount(boundaryOther, category)
	var diversityAdjusted float64
	if categoryCount <= 1 {
		diversityAdjusted = float64(perimeter) / 4
	} else {
		diversityAdjusted = (float64(perimeter) + 2*float64(area-1)*float64(c)/float64(categoryCount-1)) / 4
	}

	return Geometry{
		Area:      area,
		Perimeter: perimeter,
		P:         cornerAdjusted,
		DP:        diversityAdjusted,
	}
}

// diversityCount turns the set of off-cluster categories encountered on the
// boundary into C: the distinct *other* category count, subtracting one for
// the cluster's own category if it showed up among them.
func diversityCount(seen map[uint8]bool, own uint8) int {
	n := len(seen)
	if seen[own] {
		n--
	}
	return n
}
