package editdist

// Cell count below which the DP table lives in a fixed local array
// instead of a heap allocation. Purely a tuning constant; the result is
// the same either way.
const localCells = 512

// FullMatrix computes the distance over a complete (|s|+1) x (|t|+1)
// cost table, stored as a flat row-major buffer. D[i][j] is the distance
// between the first i runes of source and the first j runes of target.
type FullMatrix struct{}

func (FullMatrix) EditDistance(source, target string) int {
	ra := []rune(source)
	rb := []rune(target)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	w := lb + 1
	cells := (la + 1) * w
	var local [localCells]int
	var d []int
	if cells <= localCells {
		d = local[:cells]
	} else {
		d = make([]int, cells)
	}

	for i := 0; i <= la; i++ {
		d[i*w] = i
	}
	for j := 0; j <= lb; j++ {
		d[j] = j
	}
	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			x := d[i*w+j-1] + 1
			if y := d[(i-1)*w+j] + 1; y < x {
				x = y
			}
			if z := d[(i-1)*w+j-1] + cost; z < x {
				x = z
			}
			d[i*w+j] = x
		}
	}
	return d[la*w+lb]
}
