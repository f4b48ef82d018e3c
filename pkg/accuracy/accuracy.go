// Package accuracy maps a qualitative accuracy level and a query length
// to the maximum edit distance still considered a plausible match.
// Thresholds scale with query length: a fixed distance of 3 would be
// enormous for a 2-letter word and trivial for a 12-letter one, so each
// level applies a scale factor clamped to per-level bounds.
package accuracy

import (
	"fmt"
	"math"
)

// Level is a strictness tier, ordered from most permissive to most
// restrictive: Low < Medium < High.
type Level int

const (
	Low Level = iota
	Medium
	High
)

var levelParams = [...]struct {
	scale    float64
	min, max int
}{
	Low:    {0.45, 2, 5},
	Medium: {0.35, 1, 3},
	High:   {0.25, 0, 2},
}

var levelNames = [...]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

func (l Level) String() string {
	if l < Low || l > High {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel converts a flag or request value to a Level.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if s == name {
			return Level(l), nil
		}
	}
	return Low, fmt.Errorf("unknown accuracy level %q", s)
}

// Threshold returns the maximum acceptable edit distance for a query of
// queryLen runes at the given level:
//
//	clamp(ceil(queryLen*scale), min, max)
//
// A negative length or an out-of-range level is a contract violation by
// the caller and panics.
func Threshold(l Level, queryLen int) int {
	if queryLen < 0 {
		panic(fmt.Sprintf("accuracy: negative query length %d", queryLen))
	}
	if l < Low || l > High {
		panic(fmt.Sprintf("accuracy: unknown level %d", int(l)))
	}
	p := levelParams[l]
	t := int(math.Ceil(float64(queryLen) * p.scale))
	if t < p.min {
		return p.min
	}
	if t > p.max {
		return p.max
	}
	return t
}
