package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/config"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/repository"
)

// leaderboardLimit is the number of ranked entries served.
const leaderboardLimit = 100

// LeaderboardService serves the top best-score ranking with a short
// Redis cache in front of the aggregation query.
type LeaderboardService struct {
	cfg      *config.Config
	rdb      *redis.Client
	attempts *repository.AttemptRepository
	log      zerolog.Logger
}

// NewLeaderboardService creates a LeaderboardService.
func NewLeaderboardService(cfg *config.Config, rdb *redis.Client, attempts *repository.AttemptRepository, log zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{
		cfg:      cfg,
		rdb:      rdb,
		attempts: attempts,
		log:      log.With().Str("component", "leaderboard_service").Logger(),
	}
}

// Top returns the ranked entries, cache-first. Cache failures degrade
// to the database query rather than failing the request.
func (s *LeaderboardService) Top(ctx context.Context) ([]model.LeaderboardEntry, error) {
	key := config.CacheKey.LeaderboardKey()

	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var entries []model.LeaderboardEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			return entries, nil
		}
		s.log.Warn().Msg("discard unreadable leaderboard cache")
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Msg("leaderboard cache read failed")
	}

	entries, err := s.attempts.BestScores(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}

	if payload, err := json.Marshal(entries); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.LeaderboardTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("leaderboard cache write failed")
		}
	}

	return entries, nil
}
