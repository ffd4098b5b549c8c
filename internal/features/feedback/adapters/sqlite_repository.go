package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"meditrack/internal/features/feedback/domain"
)

// SQLiteFeedbackRepository stores submissions in the feedback table.
type SQLiteFeedbackRepository struct {
	db *sql.DB
}

func NewSQLiteFeedbackRepository(db *sql.DB) *SQLiteFeedbackRepository {
	return &SQLiteFeedbackRepository{db: db}
}

func (r *SQLiteFeedbackRepository) CreateFeedback(ctx context.Context, feedback *domain.Feedback) error {
	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO feedback (rating, message, created_at) VALUES (?, ?, ?)`,
		feedback.Rating, feedback.Message, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read feedback id: %w", err)
	}
	feedback.ID = id
	feedback.CreatedAt = createdAt
	return nil
}
