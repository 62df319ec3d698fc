package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/config"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/repository"
)

const (
	ActivityBatchSize    = 50
	ActivityBatchTimeout = 2 * time.Second
	ActivityPollTimeout  = 1 * time.Second
)

// ActivityWorker drains queued activity events into Postgres in
// batches. Malformed payloads are dropped with a log line; the queue is
// best-effort end to end.
type ActivityWorker struct {
	repo *repository.ActivityRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewActivityWorker creates an ActivityWorker.
func NewActivityWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *ActivityWorker {
	return &ActivityWorker{
		repo: repository.NewActivityRepository(pool),
		rdb:  rdb,
		log:  log.With().Str("component", "activity_worker").Logger(),
	}
}

// Start runs the drain loop until ctx is cancelled, flushing any
// remaining batch on shutdown.
func (w *ActivityWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ActivityWorker started")

	batch := make([]model.ActivityEntry, 0, ActivityBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= ActivityBatchSize || time.Since(lastFlush) >= ActivityBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, ActivityPollTimeout, config.WorkerKey.ActivityEventsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}
			if len(item) < 2 {
				continue
			}

			entry, ok := w.decode(item[1])
			if !ok {
				continue
			}
			batch = append(batch, entry)
		}
	}
}

func (w *ActivityWorker) decode(raw string) (model.ActivityEntry, bool) {
	var event quiz.ActivityEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		w.log.Warn().Err(err).Msg("drop malformed activity payload")
		return model.ActivityEntry{}, false
	}
	userID, err := uuid.Parse(event.ActorID)
	if err != nil {
		w.log.Warn().Str("actor_id", event.ActorID).Msg("drop activity event with bad actor ID")
		return model.ActivityEntry{}, false
	}
	return model.ActivityEntry{
		UserID:    userID,
		Action:    event.Action,
		CreatedAt: event.OccurredAt,
	}, true
}

func (w *ActivityWorker) flushSafe(ctx context.Context, batch []model.ActivityEntry) {
	if len(batch) == 0 {
		return
	}
	if err := w.repo.BatchInsert(ctx, batch); err != nil {
		w.log.Error().Err(err).Int("count", len(batch)).Msg("persist activity batch failed")
		return
	}
	w.log.Debug().Int("count", len(batch)).Msg("activity batch persisted")
}
