package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a JSON value whose TTL is refreshed on every save.
type RedisStore struct {
	client *redis.Client
	clock  clock.Clock
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, clock clock.Clock, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		clock:  clock,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (*shared.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return shared.NewSession(id, r.clock.Now()), nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load session")
	}

	var s shared.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errs.Wrap(err, "failed to decode session")
	}
	s.ID = id
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *shared.Session) error {
	s.UpdatedAt = r.clock.Now()
	data, err := json.Marshal(s)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}
	if err := r.client.Set(ctx, r.key(s.ID), data, r.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save session")
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete session")
	}
	return nil
}
