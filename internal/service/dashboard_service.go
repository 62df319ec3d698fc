package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/repository"
)

// StudentDashboard summarizes a student's progress.
type StudentDashboard struct {
	Stats        repository.UserStats   `json:"stats"`
	Achievements []model.AchievementKey `json:"achievements"`
	Recent       []model.Attempt        `json:"recent"`
}

// TeacherDashboard summarizes a teacher's authored content.
type TeacherDashboard struct {
	AuthoredSets int                     `json:"authored_sets"`
	Startable    []repository.SetSummary `json:"startable"`
}

// DashboardService assembles the role-specific dashboard views.
type DashboardService struct {
	attempts  *repository.AttemptRepository
	sets      *repository.QuestionSetRepository
	dashboard *repository.DashboardRepository
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(attempts *repository.AttemptRepository, sets *repository.QuestionSetRepository, dashboard *repository.DashboardRepository) *DashboardService {
	return &DashboardService{attempts: attempts, sets: sets, dashboard: dashboard}
}

// Student builds the student dashboard.
func (s *DashboardService) Student(ctx context.Context, userID uuid.UUID) (*StudentDashboard, error) {
	stats, err := s.attempts.StatsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	recent, err := s.attempts.ListByUser(ctx, userID, 10)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}
	if recent == nil {
		recent = []model.Attempt{}
	}

	return &StudentDashboard{
		Stats:        *stats,
		Achievements: model.UnlockedAchievements(stats.AttemptCount),
		Recent:       recent,
	}, nil
}

// Teacher builds the teacher dashboard.
func (s *DashboardService) Teacher(ctx context.Context, userID uuid.UUID) (*TeacherDashboard, error) {
	authored, err := s.sets.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count sets: %w", err)
	}

	startable, err := s.sets.ListStartable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list startable: %w", err)
	}
	if startable == nil {
		startable = []repository.SetSummary{}
	}

	return &TeacherDashboard{AuthoredSets: authored, Startable: startable}, nil
}

// Admin returns the platform-wide totals.
func (s *DashboardService) Admin(ctx context.Context) (*repository.PlatformTotals, error) {
	return s.dashboard.Totals(ctx)
}
