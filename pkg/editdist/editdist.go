// Package editdist provides interchangeable Levenshtein distance
// calculators: a recursive reference implementation, a full
// dynamic-programming matrix, and a two-row optimized variant. All three
// return identical results for identical inputs; they differ only in time
// and memory behavior.
package editdist

import "fmt"

// Calculator computes the Levenshtein distance between two strings:
// the minimum number of single-rune insertions, deletions and
// substitutions transforming source into target. Runes are compared by
// plain equality; case folding is the caller's job. Implementations are
// stateless and safe for concurrent use.
type Calculator interface {
	EditDistance(source, target string) int
}

// Select returns the calculator registered under name. Recognized names
// are "recursive", "matrix" and "tworow".
func Select(name string) (Calculator, error) {
	switch name {
	case "recursive":
		return Recursive{}, nil
	case "matrix":
		return FullMatrix{}, nil
	case "tworow":
		return TwoRow{}, nil
	}
	return nil, fmt.Errorf("unknown edit distance algorithm %q", name)
}

// Recursive implements the distance recurrence directly, without
// memoization. Exponential in the input lengths; keep it for short words
// and reference checks.
type Recursive struct{}

func (Recursive) EditDistance(source, target string) int {
	return recurse([]rune(source), []rune(target))
}

func recurse(ra, rb []rune) int {
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	if ra[0] == rb[0] {
		return recurse(ra[1:], rb[1:])
	}
	ins := recurse(ra, rb[1:])
	del := recurse(ra[1:], rb)
	sub := recurse(ra[1:], rb[1:])
	return 1 + min(ins, min(del, sub))
}
