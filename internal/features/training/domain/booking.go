package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBooking signals a booking request that fails validation.
var ErrInvalidBooking = errors.New("invalid booking")

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Booking is a scheduled product training session.
type Booking struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBooking validates the requested slot and returns a booking ready
// to persist. The date must be a calendar day and the time a 24-hour
// clock value.
func NewBooking(date, bookingTime string) (*Booking, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidBooking)
	}
	if _, err := time.Parse(TimeLayout, bookingTime); err != nil {
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidBooking)
	}
	return &Booking{Date: date, Time: bookingTime}, nil
}
