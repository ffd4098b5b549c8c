package adapters

import (
	"context"
	"testing"

	"meditrack/internal/core/storage"
	"meditrack/internal/features/feedback/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeedback(t *testing.T) {
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	repo := NewSQLiteFeedbackRepository(store.DB())

	fb := &domain.Feedback{Rating: 5, Message: "Excellent delivery times"}
	require.NoError(t, repo.CreateFeedback(context.Background(), fb))

	assert.NotZero(t, fb.ID)
	assert.False(t, fb.CreatedAt.IsZero())

	var rating int
	var message string
	require.NoError(t, store.DB().QueryRow(
		`SELECT rating, message FROM feedback WHERE id = ?`, fb.ID,
	).Scan(&rating, &message))
	assert.Equal(t, 5, rating)
	assert.Equal(t, "Excellent delivery times", message)
}
