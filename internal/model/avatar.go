package model

// AchievementKey identifies an unlockable achievement.
type AchievementKey string

const (
	AchievementFirstQuiz      AchievementKey = "first_quiz"
	AchievementQuizEnthusiast AchievementKey = "quiz_enthusiast"
	AchievementQuizChampion   AchievementKey = "quiz_champion"
)

// Achievement is earned by completing a threshold number of quizzes.
type Achievement struct {
	Key         AchievementKey `json:"key"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Threshold   int            `json:"threshold"`
}

// Achievements lists every achievement in ascending threshold order.
var Achievements = []Achievement{
	{Key: AchievementFirstQuiz, Label: "First Quiz", Description: "Complete 1 quiz", Threshold: 1},
	{Key: AchievementQuizEnthusiast, Label: "Quiz Enthusiast", Description: "Complete 5 quizzes", Threshold: 5},
	{Key: AchievementQuizChampion, Label: "Quiz Champion", Description: "Complete 15 quizzes", Threshold: 15},
}

// AvatarOption is a selectable profile avatar, optionally gated behind
// an achievement.
type AvatarOption struct {
	Key                 string         `json:"key"`
	Label               string         `json:"label"`
	Emoji               string         `json:"emoji"`
	Description         string         `json:"description"`
	RequiredAchievement AchievementKey `json:"required_achievement,omitempty"`
}

// AvatarOptions lists the avatar catalog. The first entry is the
// default and is always unlocked.
var AvatarOptions = []AvatarOption{
	{Key: "spark", Label: "Spark", Emoji: "⚡", Description: "Default avatar full of energy."},
	{Key: "rocket", Label: "Rocket", Emoji: "🚀", Description: "Launch into learning orbit.", RequiredAchievement: AchievementFirstQuiz},
	{Key: "flame", Label: "Phoenix", Emoji: "🔥", Description: "Rise with a blazing streak.", RequiredAchievement: AchievementQuizEnthusiast},
	{Key: "atom", Label: "Quantum", Emoji: "⚛️", Description: "For curious minds who go deeper.", RequiredAchievement: AchievementQuizEnthusiast},
	{Key: "trophy", Label: "Champion", Emoji: "🏆", Description: "Reserved for quiz champions.", RequiredAchievement: AchievementQuizChampion},
}

// DefaultAvatarKey is assigned to new accounts.
const DefaultAvatarKey = "spark"

// AvatarByKey resolves an avatar option, falling back to the default
// for unknown or empty keys.
func AvatarByKey(key string) AvatarOption {
	for _, opt := range AvatarOptions {
		if opt.Key == key {
			return opt
		}
	}
	return AvatarOptions[0]
}

// KnownAvatarKey reports whether key names a catalog avatar.
func KnownAvatarKey(key string) bool {
	for _, opt := range AvatarOptions {
		if opt.Key == key {
			return true
		}
	}
	return false
}

// UnlockedAchievements returns the achievements earned after
// completing attemptCount quizzes.
func UnlockedAchievements(attemptCount int) []AchievementKey {
	var keys []AchievementKey
	for _, a := range Achievements {
		if attemptCount >= a.Threshold {
			keys = append(keys, a.Key)
		}
	}
	return keys
}

// AvatarUnlocked reports whether opt is selectable given the earned
// achievements.
func AvatarUnlocked(opt AvatarOption, unlocked []AchievementKey) bool {
	if opt.RequiredAchievement == "" {
		return true
	}
	for _, k := range unlocked {
		if k == opt.RequiredAchievement {
			return true
		}
	}
	return false
}
