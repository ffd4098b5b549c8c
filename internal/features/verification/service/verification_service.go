package service

import (
	"context"
	"fmt"
	"time"

	"meditrack/internal/features/verification/domain"
	"meditrack/internal/features/verification/ports"
)

// VerificationService decides the disposition of certification lookups.
type VerificationService struct {
	repo ports.CertificationRepository
	// now is injectable so tests can pin the evaluation time.
	now func() time.Time
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(repo ports.CertificationRepository) *VerificationService {
	return &VerificationService{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock replaces the evaluation clock. Intended for tests.
func (s *VerificationService) WithClock(now func() time.Time) *VerificationService {
	s.now = now
	return s
}

// Verify looks up the certification for a scanned code and evaluates its
// validity at the current time. An empty code fails before any lookup.
func (s *VerificationService) Verify(ctx context.Context, code string) (*domain.VerificationResult, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: certification code is required", domain.ErrInvalidArgument)
	}

	cert, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up certification %s: %w", code, err)
	}

	return domain.Verify(cert, s.now()), nil
}
