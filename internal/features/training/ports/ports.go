package ports

import (
	"context"

	"meditrack/internal/features/training/domain"
)

// BookingRepository persists training session bookings.
type BookingRepository interface {
	// CreateBooking stores the booking and fills in its generated ID
	// and creation time.
	CreateBooking(ctx context.Context, booking *domain.Booking) error
}
