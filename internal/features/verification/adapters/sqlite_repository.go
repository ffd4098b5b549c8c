package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meditrack/internal/features/verification/domain"
)

// SQLiteCertificationRepository implements ports.CertificationRepository
// over the console database.
type SQLiteCertificationRepository struct {
	db *sql.DB
}

// NewSQLiteCertificationRepository creates a new SQLiteCertificationRepository.
func NewSQLiteCertificationRepository(db *sql.DB) *SQLiteCertificationRepository {
	return &SQLiteCertificationRepository{db: db}
}

// GetByCode retrieves a certification by its code, or nil if none exists.
func (r *SQLiteCertificationRepository) GetByCode(ctx context.Context, code string) (*domain.Certification, error) {
	var (
		cert       domain.Certification
		status     string
		issueDate  string
		expiryDate string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT code, issue_date, expiry_date, status, product_name, batch_number, manufacturer
		 FROM certifications WHERE code = ?`, code,
	).Scan(&cert.Code, &issueDate, &expiryDate, &status, &cert.ProductName, &cert.BatchNumber, &cert.Manufacturer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query certification %s: %w", code, err)
	}

	cert.Status = domain.CertificationStatus(status)

	cert.IssueDate, err = time.Parse(domain.DateLayout, issueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse issue date %q for %s: %w", issueDate, code, err)
	}
	cert.ExpiryDate, err = time.Parse(domain.DateLayout, expiryDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expiry date %q for %s: %w", expiryDate, code, err)
	}

	return &cert, nil
}
