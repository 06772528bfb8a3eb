package redis

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// Store holds user bookmark associations: one Redis SET of contest IDs
// per user. Bookmarks are soft references into the canonical contest
// store; the retention sweep may orphan an ID and that is accepted, so
// no referential integrity is enforced here.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Add bookmarks a contest for a user. Idempotent.
func (s *Store) Add(ctx context.Context, userID, contestID string) error {
	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, UserBookmarksKey(userID), contestID)
	pipe.SAdd(ctx, AllUsersKey(), userID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

// Remove drops one bookmarked contest for a user. Removing an ID that
// was never bookmarked is a no-op.
func (s *Store) Remove(ctx context.Context, userID, contestID string) error {
	if err := s.client.SRem(ctx, UserBookmarksKey(userID), contestID).Err(); err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	return nil
}

// List returns the user's bookmarked contest IDs, sorted for stable
// output. SETs have no order of their own.
func (s *Store) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, UserBookmarksKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Ping verifies the connection, for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
