package huffc

// splitRange divides [0, n) into up to parts contiguous chunks of
// near-uniform length.  Chunks are returned in index order; parallel stages
// depend on that order for their deterministic merges.
func splitRange(n, parts int) [][2]int {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	bounds := make([][2]int, 0, parts)
	for i := 0; i < parts; i++ {
		lo := i * n / parts
		hi := (i + 1) * n / parts
		if lo < hi {
			bounds = append(bounds, [2]int{lo, hi})
		}
	}
	return bounds
}
