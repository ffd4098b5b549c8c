package service

import (
	"context"
	"fmt"

	"meditrack/internal/features/training/domain"
	"meditrack/internal/features/training/ports"
)

// TrainingService books product training sessions.
type TrainingService struct {
	repo ports.BookingRepository
}

func NewTrainingService(repo ports.BookingRepository) *TrainingService {
	return &TrainingService{repo: repo}
}

// Book validates the requested slot and records the booking.
func (s *TrainingService) Book(ctx context.Context, date, bookingTime string) (*domain.Booking, error) {
	booking, err := domain.NewBooking(date, bookingTime)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}
	return booking, nil
}
