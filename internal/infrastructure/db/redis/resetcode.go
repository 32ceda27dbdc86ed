package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetCodeTTL = 10 * time.Minute

// ResetCodeStore holds pending password-reset codes in Redis.
// Key format: pwdreset:<lowercased email>
// An expired key reads back as "no code pending"; no cleanup job is needed.
type ResetCodeStore struct {
	client *redis.Client
}

// NewResetCodeStore creates a ResetCodeStore wrapping the given Redis client.
func NewResetCodeStore(client *redis.Client) *ResetCodeStore {
	return &ResetCodeStore{client: client}
}

// Set stores the code for the email, overwriting any pending one and
// restarting the TTL.
func (s *ResetCodeStore) Set(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, s.key(email), code, resetCodeTTL).Err(); err != nil {
		return fmt.Errorf("store reset code: %w", err)
	}
	return nil
}

// Get returns the pending code, or an empty string when none exists or the
// previous one expired.
func (s *ResetCodeStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, s.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("read reset code: %w", err)
	}
	return code, nil
}

// Delete consumes the code so it cannot be replayed.
func (s *ResetCodeStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("delete reset code: %w", err)
	}
	return nil
}

func (s *ResetCodeStore) key(email string) string {
	return "pwdreset:" + strings.ToLower(email)
}
