package editdist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculators() map[string]Calculator {
	return map[string]Calculator{
		"recursive": Recursive{},
		"matrix":    FullMatrix{},
		"tworow":    TwoRow{},
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"both empty", "", "", 0},
		{"empty source", "", "test", 4},
		{"empty target", "test", "", 4},
		{"identical", "kitten", "kitten", 0},
		{"kitten sitting", "kitten", "sitting", 3},
		{"saturday sunday", "saturday", "sunday", 3},
		{"single substitution", "cat", "cut", 1},
		{"single insertion", "cat", "cart", 1},
		{"single deletion", "cart", "cat", 1},
		{"disjoint", "abc", "xyz", 3},
		{"multibyte runes", "über", "uber", 1},
	}
	for calcName, calc := range calculators() {
		t.Run(calcName, func(t *testing.T) {
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					assert.Equal(t, tt.want, calc.EditDistance(tt.a, tt.b))
				})
			}
		})
	}
}

func TestVariantsAgree(t *testing.T) {
	// Short words only: the recursive variant is exponential.
	words := []string{"", "a", "ab", "cab", "hat", "hats", "chat", "hello", "help", "spell", "spore"}
	for _, a := range words {
		for _, b := range words {
			r := Recursive{}.EditDistance(a, b)
			m := FullMatrix{}.EditDistance(a, b)
			w := TwoRow{}.EditDistance(a, b)
			require.Equal(t, r, m, "matrix disagrees with recursive on (%q, %q)", a, b)
			require.Equal(t, r, w, "tworow disagrees with recursive on (%q, %q)", a, b)
		}
	}
}

func TestMetricProperties(t *testing.T) {
	words := []string{"", "a", "ab", "abc", "bac", "hat", "chat", "hello", "world"}
	calc := TwoRow{}
	for _, a := range words {
		assert.Zero(t, calc.EditDistance(a, a), "distance to self for %q", a)
		for _, b := range words {
			d := calc.EditDistance(a, b)
			assert.Equal(t, d, calc.EditDistance(b, a), "symmetry on (%q, %q)", a, b)
			assert.LessOrEqual(t, d, max(len(a), len(b)), "upper bound on (%q, %q)", a, b)
			for _, c := range words {
				sum := calc.EditDistance(a, c) + calc.EditDistance(c, b)
				assert.LessOrEqual(t, d, sum, "triangle inequality on (%q, %q, %q)", a, b, c)
			}
		}
	}
}

func TestFullMatrixHeapBuffer(t *testing.T) {
	// 31x31 runes exceeds the local buffer, forcing the heap path. The
	// result must not change.
	a := strings.Repeat("a", 30)
	b := strings.Repeat("a", 29) + "b"
	assert.Equal(t, 1, FullMatrix{}.EditDistance(a, b))
	assert.Equal(t, TwoRow{}.EditDistance(a, b), FullMatrix{}.EditDistance(a, b))
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		want    Calculator
		wantErr bool
	}{
		{name: "recursive", want: Recursive{}},
		{name: "matrix", want: FullMatrix{}},
		{name: "tworow", want: TwoRow{}},
		{name: "levenshtein", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		calc, err := Select(tt.name)
		if tt.wantErr {
			assert.Error(t, err, "Select(%q)", tt.name)
			continue
		}
		require.NoError(t, err, "Select(%q)", tt.name)
		assert.Equal(t, tt.want, calc)
	}
}
