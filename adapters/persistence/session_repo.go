package persistence

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio-api/internal/domain/session"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

const sessionKeyPrefix = "session:"

// redisSessionRepo issues opaque random tokens and keeps them in redis with a
// TTL. Nothing about the token is decodable client-side.
type redisSessionRepo struct {
	rdb      *redis.Client
	lifespan time.Duration
}

func NewRedisSessionRepo(rdb *redis.Client, lifespan time.Duration) session.Repository {
	return &redisSessionRepo{rdb: rdb, lifespan: lifespan}
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cannot generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (r *redisSessionRepo) Create(ctx context.Context) (*session.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, apperror.NewInternal("session token generation failed", err)
	}

	now := time.Now().UTC()
	key := sessionKeyPrefix + token
	if err := r.rdb.Set(ctx, key, now.Format(time.RFC3339), r.lifespan).Err(); err != nil {
		return nil, apperror.NewInternal("failed to store session", err)
	}

	return &session.Session{Token: token, CreatedAt: now}, nil
}

func (r *redisSessionRepo) Exists(ctx context.Context, token string) (bool, error) {
	err := r.rdb.Get(ctx, sessionKeyPrefix+token).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, apperror.NewInternal("failed to look up session", err)
	}
	return true, nil
}

func (r *redisSessionRepo) Delete(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return apperror.NewInternal("failed to delete session", err)
	}
	return nil
}
