package service

import (
	"context"
	"fmt"

	"meditrack/internal/features/sales/domain"
	"meditrack/internal/features/sales/ports"
)

// SalesService serves the demand chart for the dashboard.
type SalesService struct {
	repo ports.DemandRepository
}

func NewSalesService(repo ports.DemandRepository) *SalesService {
	return &SalesService{repo: repo}
}

// DemandChart loads all stored demand points and buckets them into a
// month axis with one aligned series per product.
func (s *SalesService) DemandChart(ctx context.Context) (domain.DemandChart, error) {
	points, err := s.repo.ListDemand(ctx)
	if err != nil {
		return domain.DemandChart{}, fmt.Errorf("failed to load sales demand: %w", err)
	}
	return domain.BuildChart(points), nil
}
