package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/bank"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/repository"
)

// Profile errors.
var (
	ErrAvatarLocked  = errors.New("avatar requires an achievement not yet earned")
	ErrUnknownAvatar = errors.New("unknown avatar key")
	ErrUnknownBranch = errors.New("unknown branch")
)

// AvatarStatus pairs a catalog avatar with its unlock state for a user.
type AvatarStatus struct {
	model.AvatarOption
	Unlocked bool `json:"unlocked"`
}

// Profile is the full profile view: account, progress, and unlocks.
type Profile struct {
	User         model.User             `json:"user"`
	AttemptCount int                    `json:"attempt_count"`
	Achievements []model.AchievementKey `json:"achievements"`
	Avatars      []AvatarStatus         `json:"avatars"`
}

// ProfileService handles profile views and edits, including the
// achievement-gated avatar unlocks.
type ProfileService struct {
	users    *repository.UserRepository
	attempts *repository.AttemptRepository
	activity *repository.ActivityRepository
}

// NewProfileService creates a ProfileService.
func NewProfileService(users *repository.UserRepository, attempts *repository.AttemptRepository, activity *repository.ActivityRepository) *ProfileService {
	return &ProfileService{users: users, attempts: attempts, activity: activity}
}

// Get assembles the profile view for a user.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	count, err := s.attempts.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	unlocked := model.UnlockedAchievements(count)
	avatars := make([]AvatarStatus, 0, len(model.AvatarOptions))
	for _, opt := range model.AvatarOptions {
		avatars = append(avatars, AvatarStatus{
			AvatarOption: opt,
			Unlocked:     model.AvatarUnlocked(opt, unlocked),
		})
	}

	return &Profile{
		User:         *user,
		AttemptCount: count,
		Achievements: unlocked,
		Avatars:      avatars,
	}, nil
}

// Update applies profile edits. Empty request fields keep their current
// values. An avatar change is rejected if the avatar is unknown or
// still locked for this user.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	fullName := user.FullName
	if req.FullName != "" {
		fullName = req.FullName
	}

	branch := user.Branch
	if req.Branch != "" {
		if !bank.IsBranch(req.Branch) {
			return nil, ErrUnknownBranch
		}
		branch = req.Branch
	}

	avatarKey := user.AvatarKey
	if req.AvatarKey != "" && req.AvatarKey != user.AvatarKey {
		if !model.KnownAvatarKey(req.AvatarKey) {
			return nil, ErrUnknownAvatar
		}
		count, err := s.attempts.CountByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("count attempts: %w", err)
		}
		opt := model.AvatarByKey(req.AvatarKey)
		if !model.AvatarUnlocked(opt, model.UnlockedAchievements(count)) {
			return nil, ErrAvatarLocked
		}
		avatarKey = req.AvatarKey
	}

	if err := s.users.UpdateProfile(ctx, userID, fullName, avatarKey, branch); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.Get(ctx, userID)
}

// History returns the user's most recent attempts.
func (s *ProfileService) History(ctx context.Context, userID uuid.UUID, limit int) ([]model.Attempt, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.attempts.ListByUser(ctx, userID, limit)
}

// Activity returns the user's most recent activity log entries.
func (s *ProfileService) Activity(ctx context.Context, userID uuid.UUID, limit int) ([]model.ActivityEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.activity.ListByUser(ctx, userID, limit)
}
