// Package telemetry provides the fire-and-forget sink implementations
// behind the quiz session's ActivitySink and AttemptStore contracts.
// Events are queued in Redis and drained into Postgres by the workers;
// every failure here is logged and swallowed so the quiz stays usable
// when the backend is unavailable.
package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/config"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"
)

// pushTimeout bounds each queue write so a slow Redis never stalls the
// emitting goroutine for long.
const pushTimeout = 2 * time.Second

// RedisActivitySink queues activity events and publishes them on the
// live feed channel.
type RedisActivitySink struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewRedisActivitySink creates a RedisActivitySink.
func NewRedisActivitySink(rdb *redis.Client, log zerolog.Logger) *RedisActivitySink {
	return &RedisActivitySink{
		rdb: rdb,
		log: log.With().Str("component", "activity_sink").Logger(),
	}
}

// Record implements quiz.ActivitySink. It returns immediately; the
// queue write happens on its own goroutine and errors are swallowed.
func (s *RedisActivitySink) Record(event quiz.ActivityEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		payload, err := json.Marshal(event)
		if err != nil {
			s.log.Error().Err(err).Msg("marshal activity event")
			return
		}
		if err := s.rdb.LPush(ctx, config.WorkerKey.ActivityEventsQueue, payload).Err(); err != nil {
			s.log.Warn().Err(err).Str("action", event.Action).Msg("drop activity event")
			return
		}
		// Live feed is best-effort on top of best-effort.
		_ = s.rdb.Publish(ctx, config.CacheKey.ActivityFeedChannel(), payload).Err()
	}()
}

// RedisAttemptStore queues completed attempt records for persistence.
type RedisAttemptStore struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewRedisAttemptStore creates a RedisAttemptStore.
func NewRedisAttemptStore(rdb *redis.Client, log zerolog.Logger) *RedisAttemptStore {
	return &RedisAttemptStore{
		rdb: rdb,
		log: log.With().Str("component", "attempt_store").Logger(),
	}
}

// SaveAttempt implements quiz.AttemptStore. Queue failures are logged
// and the record is lost, matching the best-effort persistence intent.
func (s *RedisAttemptStore) SaveAttempt(record quiz.AttemptRecord) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		payload, err := json.Marshal(record)
		if err != nil {
			s.log.Error().Err(err).Msg("marshal attempt record")
			return
		}
		if err := s.rdb.LPush(ctx, config.WorkerKey.PersistAttemptsQueue, payload).Err(); err != nil {
			s.log.Warn().Err(err).
				Str("user_id", record.UserID).
				Str("bank_id", string(record.BankID)).
				Msg("drop attempt record")
		}
	}()
}
