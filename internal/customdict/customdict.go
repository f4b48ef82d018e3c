// Package customdict persists user-added dictionary words in a Redis
// set so they survive restarts and are shared across instances.
package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "speller:custom_words"

// Store wraps a Redis client holding the custom word set.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store over the provided Redis client. An empty key
// selects the default set key.
func New(client *redis.Client, key string) *Store {
	if key == "" {
		key = defaultKey
	}
	return &Store{client: client, key: key}
}

// Add inserts a word into the custom dictionary.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// Has reports whether word is in the custom dictionary.
func (s *Store) Has(ctx context.Context, word string) (bool, error) {
	return s.client.SIsMember(ctx, s.key, word).Result()
}

// All returns every word in the custom dictionary.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}
