package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	booking, err := NewBooking("2024-12-01", "14:30")

	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", booking.Date)
	assert.Equal(t, "14:30", booking.Time)
}

func TestNewBooking_InvalidDate(t *testing.T) {
	cases := []string{"", "01-12-2024", "2024-13-01", "tomorrow"}
	for _, date := range cases {
		_, err := NewBooking(date, "14:30")
		assert.ErrorIs(t, err, ErrInvalidBooking, "date %q", date)
	}
}

func TestNewBooking_InvalidTime(t *testing.T) {
	cases := []string{"", "25:00", "2pm", "14:60"}
	for _, tm := range cases {
		_, err := NewBooking("2024-12-01", tm)
		assert.ErrorIs(t, err, ErrInvalidBooking, "time %q", tm)
	}
}
