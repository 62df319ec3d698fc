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
	AttemptBatchSize    = 50
	AttemptBatchTimeout = 2 * time.Second
	AttemptPollTimeout  = 1 * time.Second
)

// AttemptWorker drains queued attempt records into Postgres in batches.
type AttemptWorker struct {
	repo *repository.AttemptRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewAttemptWorker creates an AttemptWorker.
func NewAttemptWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *AttemptWorker {
	return &AttemptWorker{
		repo: repository.NewAttemptRepository(pool),
		rdb:  rdb,
		log:  log.With().Str("component", "attempt_worker").Logger(),
	}
}

// Start runs the drain loop until ctx is cancelled, flushing any
// remaining batch on shutdown.
func (w *AttemptWorker) Start(ctx context.Context) {
	w.log.Info().Msg("AttemptWorker started")

	batch := make([]model.Attempt, 0, AttemptBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= AttemptBatchSize || time.Since(lastFlush) >= AttemptBatchTimeout) {

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
			item, err := w.rdb.BLPop(ctx, AttemptPollTimeout, config.WorkerKey.PersistAttemptsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}
			if len(item) < 2 {
				continue
			}

			attempt, ok := w.decode(item[1])
			if !ok {
				continue
			}
			batch = append(batch, attempt)
		}
	}
}

func (w *AttemptWorker) decode(raw string) (model.Attempt, bool) {
	var record quiz.AttemptRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		w.log.Warn().Err(err).Msg("drop malformed attempt payload")
		return model.Attempt{}, false
	}
	userID, err := uuid.Parse(record.UserID)
	if err != nil {
		w.log.Warn().Str("user_id", record.UserID).Msg("drop attempt with bad user ID")
		return model.Attempt{}, false
	}
	return model.Attempt{
		UserID:         userID,
		BankID:         string(record.BankID),
		Score:          record.Score,
		TotalQuestions: record.TotalQuestions,
		CompletedAt:    record.CompletedAt,
	}, true
}

func (w *AttemptWorker) flushSafe(ctx context.Context, batch []model.Attempt) {
	if len(batch) == 0 {
		return
	}
	if err := w.repo.BatchInsert(ctx, batch); err != nil {
		w.log.Error().Err(err).Int("count", len(batch)).Msg("persist attempt batch failed")
		return
	}
	w.log.Debug().Int("count", len(batch)).Msg("attempt batch persisted")
}
