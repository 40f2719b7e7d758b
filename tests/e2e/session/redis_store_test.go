//go:build e2e

package session_test

import (
	"testing"
	"time"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/infra/db"
	"appointment-assistant/internal/infra/sessionstore"
	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/internal/usecase/shared"
	"appointment-assistant/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sessionTTL = 30 * time.Minute

var start = time.Date(2030, 3, 10, 10, 0, 0, 0, time.UTC)

type RedisStoreSuite struct {
	suite.Suite
	cfg    config.RedisConfig
	client *redis.Client
	clock  *clock.MockClock
	store  *sessionstore.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.cfg = e2e.RedisConfig(s.T())

	client, cleanup, err := db.ConnectRedis(s.T().Context(), s.cfg)
	require.NoError(s.T(), err, "redis connection failed")
	s.T().Cleanup(cleanup)

	s.client = client
	s.clock = clock.NewMockClock(start)
	s.store = sessionstore.NewRedisStore(client, s.clock, s.cfg.KeyPrefix, sessionTTL)
}

func (s *RedisStoreSuite) TestStore() {
	s.Run("Normal case: unknown id yields a fresh session without writing", func() {
		t := s.T()
		got, err := s.store.Get(t.Context(), "missing")
		require.NoError(t, err)
		require.Equal(t, "missing", got.ID)
		require.True(t, got.Draft.IsEmpty())
		require.False(t, got.Staff)
		require.Equal(t, start, got.UpdatedAt)

		n, err := s.client.Exists(t.Context(), s.cfg.KeyPrefix+"missing").Result()
		require.NoError(t, err)
		require.Zero(t, n)
	})

	s.Run("Normal case: draft staff flag and history survive a round trip", func() {
		t := s.T()
		sess := shared.NewSession("round-trip", start)
		sess.Draft = appointment.Draft{Name: "Alice Smith", Email: "alice@example.com", Service: "haircut", Date: "2030-03-11"}
		sess.Staff = true
		sess.AppendHistory(shared.RoleUser, "hi", 10)
		sess.AppendHistory(shared.RoleAssistant, "hello", 10)

		s.clock.Set(start.Add(time.Minute))
		require.NoError(t, s.store.Save(t.Context(), sess))

		got, err := s.store.Get(t.Context(), "round-trip")
		require.NoError(t, err)
		if diff := cmp.Diff(sess, got); diff != "" {
			t.Errorf("Session mismatch (-want +got):\n%s", diff)
		}
		require.True(t, got.UpdatedAt.Equal(start.Add(time.Minute)))
	})

	s.Run("Normal case: save sets and refreshes the ttl", func() {
		t := s.T()
		key := s.cfg.KeyPrefix + "ttl"
		sess := shared.NewSession("ttl", start)
		require.NoError(t, s.store.Save(t.Context(), sess))

		require.NoError(t, s.client.Expire(t.Context(), key, time.Minute).Err())
		sess.Draft.Name = "Bob"
		require.NoError(t, s.store.Save(t.Context(), sess))

		ttl, err := s.client.TTL(t.Context(), key).Result()
		require.NoError(t, err)
		require.Greater(t, ttl, time.Minute)
		require.LessOrEqual(t, ttl, sessionTTL)
	})

	s.Run("Normal case: delete removes the session", func() {
		t := s.T()
		sess := shared.NewSession("gone", start)
		sess.Draft.Email = "gone@example.com"
		require.NoError(t, s.store.Save(t.Context(), sess))

		require.NoError(t, s.store.Delete(t.Context(), "gone"))
		require.NoError(t, s.store.Delete(t.Context(), "gone"))

		got, err := s.store.Get(t.Context(), "gone")
		require.NoError(t, err)
		require.True(t, got.Draft.IsEmpty())
	})

	s.Run("Abnormal case: undecodable value is an error", func() {
		t := s.T()
		require.NoError(t, s.client.Set(t.Context(), s.cfg.KeyPrefix+"broken", "{not json", sessionTTL).Err())

		_, err := s.store.Get(t.Context(), "broken")
		require.Error(t, err)
	})
}
