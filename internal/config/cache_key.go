package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active login JTI.
func (r *CacheKeyStruct) UserSessionKey(userID string) string {
	return fmt.Sprintf("login:%s", userID)
}

// LeaderboardKey returns the cache key for the rendered leaderboard.
func (r *CacheKeyStruct) LeaderboardKey() string {
	return "leaderboard:top"
}

// ActivityFeedChannel returns the Redis Pub/Sub channel for the live
// activity feed consumed by the admin dashboard.
func (r *CacheKeyStruct) ActivityFeedChannel() string {
	return "activity:feed"
}

var CacheKey = NewCacheKeyStruct()
