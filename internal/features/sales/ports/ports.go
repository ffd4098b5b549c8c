package ports

import (
	"context"

	"meditrack/internal/features/sales/domain"
)

// DemandRepository reads the stored per-product monthly demand figures.
type DemandRepository interface {
	ListDemand(ctx context.Context) ([]domain.DemandPoint, error)
}
