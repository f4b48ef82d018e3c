package speller

import (
	"speller/pkg/accuracy"
	"speller/pkg/editdist"
)

// Config controls how a Speller ranks candidates.
type Config struct {
	Calculator editdist.Calculator
	Level      accuracy.Level
	// Workers above 1 partitions the dictionary across that many
	// goroutines during ranking. The merged output is identical to the
	// sequential result.
	Workers int
}

var DefaultConfig = Config{
	Calculator: editdist.TwoRow{},
	Level:      accuracy.Medium,
	Workers:    1,
}

// Option mutates a Config during construction.
type Option interface {
	Apply(*Config)
}

type funcOption struct {
	ops func(*Config)
}

func (o funcOption) Apply(cfg *Config) {
	o.ops(cfg)
}

func newFuncOption(f func(*Config)) Option {
	return funcOption{ops: f}
}

// WithCalculator selects the edit distance implementation.
func WithCalculator(c editdist.Calculator) Option {
	return newFuncOption(func(cfg *Config) {
		cfg.Calculator = c
	})
}

// WithLevel sets the accuracy level used for thresholding.
func WithLevel(l accuracy.Level) Option {
	return newFuncOption(func(cfg *Config) {
		cfg.Level = l
	})
}

// WithWorkers sets the ranking parallelism. Values below 1 are treated
// as 1.
func WithWorkers(n int) Option {
	return newFuncOption(func(cfg *Config) {
		if n < 1 {
			n = 1
		}
		cfg.Workers = n
	})
}
