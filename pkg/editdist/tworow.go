package editdist

// TwoRow computes the same recurrence as FullMatrix while keeping only
// the previous and current rows of the table, since row i depends only
// on row i-1 and on cells of row i already filled to the left. Space is
// O(|t|) instead of O(|s|*|t|).
type TwoRow struct{}

func (TwoRow) EditDistance(source, target string) int {
	ra := []rune(source)
	rb := []rune(target)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			x := curr[j-1] + 1
			if y := prev[j] + 1; y < x {
				x = y
			}
			if z := prev[j-1] + cost; z < x {
				x = z
			}
			curr[j] = x
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
