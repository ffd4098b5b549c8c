package adapters

import (
	"context"
	"database/sql"
	"fmt"

	"meditrack/internal/features/sales/domain"
)

// SQLiteDemandRepository reads demand figures from the sales_demand table.
type SQLiteDemandRepository struct {
	db *sql.DB
}

func NewSQLiteDemandRepository(db *sql.DB) *SQLiteDemandRepository {
	return &SQLiteDemandRepository{db: db}
}

func (r *SQLiteDemandRepository) ListDemand(ctx context.Context) ([]domain.DemandPoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT month, product_name, units FROM sales_demand ORDER BY month, product_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales demand: %w", err)
	}
	defer rows.Close()

	var points []domain.DemandPoint
	for rows.Next() {
		var p domain.DemandPoint
		if err := rows.Scan(&p.Month, &p.ProductName, &p.Units); err != nil {
			return nil, fmt.Errorf("failed to scan demand row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate demand rows: %w", err)
	}
	return points, nil
}
