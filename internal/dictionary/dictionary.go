// Package dictionary holds the in-memory word set the speller ranks
// against, plus the loader for word-list files.
package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	mmap "github.com/edsrzf/mmap-go"
)

// Dictionary is a set of lowercase words. Reads may run concurrently
// with each other; mutations (custom words added at runtime) take the
// write lock.
type Dictionary struct {
	mu    sync.RWMutex
	words map[string]bool
}

func New(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]bool, len(words))}
	for _, w := range words {
		d.words[strings.ToLower(w)] = true
	}
	return d
}

func (d *Dictionary) Add(word string) {
	d.mu.Lock()
	d.words[strings.ToLower(word)] = true
	d.mu.Unlock()
}

func (d *Dictionary) Remove(word string) {
	d.mu.Lock()
	delete(d.words, strings.ToLower(word))
	d.mu.Unlock()
}

func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	ok := d.words[word]
	d.mu.RUnlock()
	return ok
}

func (d *Dictionary) Len() int {
	d.mu.RLock()
	n := len(d.words)
	d.mu.RUnlock()
	return n
}

// Words returns a snapshot of the set. Order is unspecified; callers
// that need determinism sort downstream.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	d.mu.RUnlock()
	return out
}

// Load reads a word list from path. The file is memory-mapped read-only
// and scanned in place. Each non-empty line contributes its first field,
// lowercased, so both plain lists and "word count" frequency lists work.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary: %w", err)
	}
	if fi.Size() == 0 {
		return New(), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dictionary: %w", err)
	}
	defer m.Unmap()

	d := New()
	s := bufio.NewScanner(bytes.NewReader(m))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		d.words[strings.ToLower(fields[0])] = true
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan dictionary: %w", err)
	}
	return d, nil
}
