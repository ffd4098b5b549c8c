package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFeedback signals a feedback submission that fails validation.
var ErrInvalidFeedback = errors.New("invalid feedback")

// Feedback is one customer satisfaction submission.
type Feedback struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Message   string    `json:"feedback"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFeedback validates the submission. The rating is a 1 to 5 star
// score and the message must not be blank.
func NewFeedback(rating int, message string) (*Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidFeedback)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: feedback message is required", ErrInvalidFeedback)
	}
	return &Feedback{Rating: rating, Message: message}, nil
}
