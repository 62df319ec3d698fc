package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/bank"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/repository"
)

// Question set errors.
var (
	ErrUnknownSubject = errors.New("subject not in the branch catalog")
	ErrSetNotFound    = errors.New("no question set for this subject")
)

// QuestionSetService handles the teacher question editor and the
// startable-set listing for the quiz selection screen.
type QuestionSetService struct {
	sets *repository.QuestionSetRepository
}

// NewQuestionSetService creates a QuestionSetService.
func NewQuestionSetService(sets *repository.QuestionSetRepository) *QuestionSetService {
	return &QuestionSetService{sets: sets}
}

// Get retrieves the set for a branch/subject pair.
func (s *QuestionSetService) Get(ctx context.Context, branch, subject string) (*model.QuestionSet, error) {
	if err := validateSubject(branch, subject); err != nil {
		return nil, err
	}
	set, err := s.sets.GetBySubject(ctx, branch, subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("get set: %w", err)
	}
	return set, nil
}

// Save replaces the set's questions wholesale under the given author.
func (s *QuestionSetService) Save(ctx context.Context, branch, subject string, authorID uuid.UUID, req model.SaveQuestionSetRequest) (*model.QuestionSet, error) {
	if err := validateSubject(branch, subject); err != nil {
		return nil, err
	}

	questions := make([]model.SetQuestion, 0, len(req.Questions))
	for i, q := range req.Questions {
		questions = append(questions, model.SetQuestion{
			Prompt:       q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			OrderNum:     i,
		})
	}

	set, err := s.sets.Replace(ctx, branch, subject, authorID, questions)
	if err != nil {
		return nil, fmt.Errorf("save set: %w", err)
	}
	return set, nil
}

// ListStartable returns branch/subject pairs with at least one question.
func (s *QuestionSetService) ListStartable(ctx context.Context) ([]repository.SetSummary, error) {
	sets, err := s.sets.ListStartable(ctx)
	if err != nil {
		return nil, err
	}
	if sets == nil {
		sets = []repository.SetSummary{}
	}
	return sets, nil
}

// validateSubject checks the branch/subject pair against the catalog.
func validateSubject(branch, subject string) error {
	years, ok := bank.Subjects(branch)
	if !ok {
		return ErrUnknownBranch
	}
	for _, list := range years {
		for _, s := range list {
			if s == subject {
				return nil
			}
		}
	}
	return ErrUnknownSubject
}
