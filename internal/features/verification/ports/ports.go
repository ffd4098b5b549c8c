package ports

import (
	"context"

	"meditrack/internal/features/verification/domain"
)

// CertificationRepository defines the secondary port for certification storage.
type CertificationRepository interface {
	// GetByCode retrieves a certification by its code, or nil if none exists.
	GetByCode(ctx context.Context, code string) (*domain.Certification, error)
}
