// Package speller classifies a queried word against a dictionary: exact
// members are reported correct, everything else gets a ranked list of
// plausible replacements within the active accuracy threshold.
package speller

import (
	"sort"
	"sync"

	"speller/internal/dictionary"
	"speller/pkg/accuracy"
	"speller/pkg/editdist"
)

// Match pairs a dictionary word with its edit distance to the query.
type Match struct {
	Word     string `json:"word"`
	Distance int    `json:"distance"`
}

// Result is the outcome of checking one word.
type Result struct {
	Query   string  `json:"query"`
	Correct bool    `json:"correct"`
	Matches []Match `json:"matches,omitempty"`
}

// Speller checks words against a dictionary using a configured distance
// calculator and accuracy level. It holds no mutable state of its own
// and is safe for concurrent use.
type Speller struct {
	dict *dictionary.Dictionary
	cfg  Config
}

func New(dict *dictionary.Dictionary, opts ...Option) *Speller {
	cfg := DefaultConfig
	for _, opt := range opts {
		opt.Apply(&cfg)
	}
	return &Speller{dict: dict, cfg: cfg}
}

// Check classifies query. Queries are expected lowercase, matching the
// dictionary's case convention. Dictionary members short-circuit to a
// correct verdict with no ranking pass.
func (s *Speller) Check(query string) Result {
	if s.dict.Contains(query) {
		return Result{Query: query, Correct: true}
	}
	var matches []Match
	if s.cfg.Workers > 1 {
		matches = rankParallel(query, s.dict.Words(), s.cfg.Calculator, s.cfg.Level, s.cfg.Workers)
	} else {
		matches = Rank(query, s.dict, s.cfg.Calculator, s.cfg.Level)
	}
	return Result{Query: query, Matches: matches}
}

// Rank computes the distance from query to every dictionary word, keeps
// those within the level's threshold and returns them sorted by
// ascending distance, ties broken by word. The ordering is fully
// deterministic.
func Rank(query string, dict *dictionary.Dictionary, calc editdist.Calculator, level accuracy.Level) []Match {
	limit := accuracy.Threshold(level, len([]rune(query)))
	matches := rankWords(query, dict.Words(), calc, limit)
	sortMatches(matches)
	return matches
}

func rankWords(query string, words []string, calc editdist.Calculator, limit int) []Match {
	var matches []Match
	for _, w := range words {
		d := calc.EditDistance(query, w)
		if d <= limit {
			matches = append(matches, Match{Word: w, Distance: d})
		}
	}
	return matches
}

// rankParallel partitions words across workers goroutines. The
// dictionary snapshot is read-only and each call keeps its own buffers,
// so the only coordination is the final merge. One global sort applies
// the same tie-break as the sequential path.
func rankParallel(query string, words []string, calc editdist.Calculator, level accuracy.Level, workers int) []Match {
	limit := accuracy.Threshold(level, len([]rune(query)))
	if workers > len(words) {
		workers = len(words)
	}
	if workers < 2 {
		matches := rankWords(query, words, calc, limit)
		sortMatches(matches)
		return matches
	}

	parts := make([][]Match, workers)
	chunk := (len(words) + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(words))
		wg.Add(1)
		go func(i int, words []string) {
			defer wg.Done()
			parts[i] = rankWords(query, words, calc, limit)
		}(i, words[lo:hi])
	}
	wg.Wait()

	var matches []Match
	for _, p := range parts {
		matches = append(matches, p...)
	}
	sortMatches(matches)
	return matches
}

func sortMatches(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance == matches[j].Distance {
			return matches[i].Word < matches[j].Word
		}
		return matches[i].Distance < matches[j].Distance
	})
}
