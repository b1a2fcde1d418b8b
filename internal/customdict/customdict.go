// Package customdict persists the shared custom word set for the HTTP
// service in a Redis set. The CLI never uses it; its extra words live in
// memory for a single run.
package customdict

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Store wraps a Redis client holding the custom dictionary words.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store backed by the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: "spellagent:custom_words"}
}

// Add inserts a word, lowercased, into the custom dictionary.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, strings.ToLower(word)).Err()
}

// Remove deletes a word from the custom dictionary.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, strings.ToLower(word)).Err()
}

// All returns every word stored in the custom dictionary.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}
