package ports

import (
	"context"

	"meditrack/internal/features/feedback/domain"
)

// FeedbackRepository persists customer feedback submissions.
type FeedbackRepository interface {
	// CreateFeedback stores the submission and fills in its generated
	// ID and creation time.
	CreateFeedback(ctx context.Context, feedback *domain.Feedback) error
}
