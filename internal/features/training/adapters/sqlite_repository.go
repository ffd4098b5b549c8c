package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"meditrack/internal/features/training/domain"
)

// SQLiteBookingRepository stores bookings in the training_bookings table.
type SQLiteBookingRepository struct {
	db *sql.DB
}

func NewSQLiteBookingRepository(db *sql.DB) *SQLiteBookingRepository {
	return &SQLiteBookingRepository{db: db}
}

func (r *SQLiteBookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO training_bookings (date, time, created_at) VALUES (?, ?, ?)`,
		booking.Date, booking.Time, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read booking id: %w", err)
	}
	booking.ID = id
	booking.CreatedAt = createdAt
	return nil
}
