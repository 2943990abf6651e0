package lib

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil, err
	}
	return redis.NewClient(opt), nil
}

// TokenRevoker keeps a denylist of logged-out token ids. A revoker without a
// client accepts every token.
type TokenRevoker struct {
	rd *redis.Client
}

func NewTokenRevoker(rd *redis.Client) *TokenRevoker {
	return &TokenRevoker{rd: rd}
}

func revokedKey(jti string) string {
	return fmt.Sprintf("revoked:%s", jti)
}

func (r *TokenRevoker) Enabled() bool {
	return r != nil && r.rd != nil
}

// Revoke denies jti until ttl elapses.
func (r *TokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if !r.Enabled() || ttl <= 0 {
		return nil
	}
	return r.rd.Set(ctx, revokedKey(jti), "1", ttl).Err()
}

func (r *TokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if !r.Enabled() {
		return false, nil
	}
	n, err := r.rd.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
