package dense

import "sort"

// SizeBin is one cluster-size bucket: how many clusters have exactly Size
// cells, and how many have Size cells or fewer (Cumulative).
type SizeBin struct {
	Size       int
	Count      int
	Cumulative int
}

// SizeHistogram tallies a cluster-size distribution: one bin per distinct
// cluster size observed, ascending by size, each carrying both its own
// count and the running total up to and including that size.
func SizeHistogram(clusters [][]Point) []SizeBin {
	counts := map[int]int{}
	for _, c := range clusters {
		counts[len(c)]++
	}

	sizes := make([]int, 0, len(counts))
	for s := range counts {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)

	out := make([]SizeBin, len(sizes))
	running := 0
	for i, s := range sizes {
		running += counts[s]
		out[i] = SizeBin{Size: s, Count: counts[s], Cumulative: running}
	}
	return out
}
