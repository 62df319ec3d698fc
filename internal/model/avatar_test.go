package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnlockedAchievements(t *testing.T) {
	assert.Empty(t, UnlockedAchievements(0))
	assert.Equal(t, []AchievementKey{AchievementFirstQuiz}, UnlockedAchievements(1))
	assert.Equal(t,
		[]AchievementKey{AchievementFirstQuiz, AchievementQuizEnthusiast},
		UnlockedAchievements(5))
	assert.Equal(t,
		[]AchievementKey{AchievementFirstQuiz, AchievementQuizEnthusiast, AchievementQuizChampion},
		UnlockedAchievements(20))
}

func TestAvatarUnlocked(t *testing.T) {
	spark := AvatarByKey("spark")
	trophy := AvatarByKey("trophy")

	assert.True(t, AvatarUnlocked(spark, nil))
	assert.False(t, AvatarUnlocked(trophy, UnlockedAchievements(5)))
	assert.True(t, AvatarUnlocked(trophy, UnlockedAchievements(15)))
}

func TestAvatarByKeyFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultAvatarKey, AvatarByKey("nope").Key)
	assert.Equal(t, DefaultAvatarKey, AvatarByKey("").Key)
}

func TestKnownAvatarKey(t *testing.T) {
	assert.True(t, KnownAvatarKey("rocket"))
	assert.False(t, KnownAvatarKey("dragon"))
}

func TestAttemptPercent(t *testing.T) {
	assert.Equal(t, 90, Attempt{Score: 9, TotalQuestions: 10}.Percent())
	assert.Equal(t, 0, Attempt{Score: 0, TotalQuestions: 0}.Percent())
}
