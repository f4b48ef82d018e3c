package accuracy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreshold(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		len   int
		want  int
	}{
		{"low clamps up at zero length", Low, 0, 2},
		{"low short word", Low, 3, 2},
		{"low mid word", Low, 8, 4},
		{"low clamps down at long word", Low, 20, 5},
		{"medium clamps up at zero length", Medium, 0, 1},
		{"medium short word", Medium, 3, 2},
		{"medium six letters", Medium, 6, 3},
		{"medium clamps down at long word", Medium, 15, 3},
		{"high zero length", High, 0, 0},
		{"high three letters", High, 3, 1},
		{"high eight letters", High, 8, 2},
		{"high clamps down at long word", High, 30, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Threshold(tt.level, tt.len))
		})
	}
}

func TestThresholdMonotonic(t *testing.T) {
	for _, level := range []Level{Low, Medium, High} {
		prev := Threshold(level, 0)
		for n := 1; n <= 30; n++ {
			cur := Threshold(level, n)
			require.GreaterOrEqual(t, cur, prev, "level %s not monotonic at length %d", level, n)
			prev = cur
		}
	}
	// Stricter levels never allow more edits than looser ones.
	for n := 0; n <= 30; n++ {
		require.GreaterOrEqual(t, Threshold(Low, n), Threshold(Medium, n), "length %d", n)
		require.GreaterOrEqual(t, Threshold(Medium, n), Threshold(High, n), "length %d", n)
	}
}

func TestThresholdContractViolations(t *testing.T) {
	assert.Panics(t, func() { Threshold(Medium, -1) })
	assert.Panics(t, func() { Threshold(Level(42), 5) })
	assert.Panics(t, func() { Threshold(Level(-1), 5) })
}

func TestLevelOrdering(t *testing.T) {
	assert.True(t, Low < Medium)
	assert.True(t, Medium < High)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "low", want: Low},
		{in: "medium", want: Medium},
		{in: "high", want: High},
		{in: "Medium", wantErr: true},
		{in: "strict", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		l, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseLevel(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseLevel(%q)", tt.in)
		assert.Equal(t, tt.want, l)
		assert.Equal(t, tt.in, l.String())
	}
}
