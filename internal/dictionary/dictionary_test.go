package dictionary

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "Hello\nworld 123\n\n  WORLD  \nfoo 7 extra\n")

	dict, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, dict.Len(), "duplicates collapse after lowercasing")
	assert.True(t, dict.Contains("hello"))
	assert.True(t, dict.Contains("world"))
	assert.True(t, dict.Contains("foo"))
	assert.False(t, dict.Contains("Hello"), "lookups are case sensitive by design")
	assert.False(t, dict.Contains("123"), "counts are not words")
}

func TestLoadEmptyFile(t *testing.T) {
	dict, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Zero(t, dict.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestAddRemove(t *testing.T) {
	dict := New("one")
	dict.Add("TWO")
	assert.True(t, dict.Contains("two"), "Add lowercases")

	dict.Remove("ONE")
	assert.False(t, dict.Contains("one"), "Remove lowercases")
	assert.Equal(t, 1, dict.Len())
}

func TestWordsSnapshot(t *testing.T) {
	dict := New("b", "a", "c")
	words := dict.Words()
	sort.Strings(words)
	assert.Equal(t, []string{"a", "b", "c"}, words)

	// Mutating the snapshot must not touch the set.
	words[0] = "z"
	assert.True(t, dict.Contains("a"))
}
