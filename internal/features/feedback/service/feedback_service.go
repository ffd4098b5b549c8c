package service

import (
	"context"
	"fmt"

	"meditrack/internal/features/feedback/domain"
	"meditrack/internal/features/feedback/ports"
)

// FeedbackService records customer satisfaction submissions.
type FeedbackService struct {
	repo ports.FeedbackRepository
}

func NewFeedbackService(repo ports.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// Submit validates the submission and stores it.
func (s *FeedbackService) Submit(ctx context.Context, rating int, message string) (*domain.Feedback, error) {
	feedback, err := domain.NewFeedback(rating, message)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateFeedback(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	return feedback, nil
}
