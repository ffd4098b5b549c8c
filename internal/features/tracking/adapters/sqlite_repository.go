package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meditrack/internal/features/tracking/domain"
)

// SQLiteShipmentRepository implements ports.ShipmentRepository over the
// console database.
type SQLiteShipmentRepository struct {
	db *sql.DB
}

// NewSQLiteShipmentRepository creates a new SQLiteShipmentRepository.
func NewSQLiteShipmentRepository(db *sql.DB) *SQLiteShipmentRepository {
	return &SQLiteShipmentRepository{db: db}
}

// GetShipment retrieves a shipment by order ID, or nil if none exists.
func (r *SQLiteShipmentRepository) GetShipment(ctx context.Context, orderID string) (*domain.Shipment, error) {
	var (
		shipment domain.Shipment
		status   int
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT order_id, status, customer_name, product_name, quantity, order_date
		 FROM orders WHERE order_id = ?`, orderID,
	).Scan(&shipment.OrderID, &status, &shipment.CustomerName, &shipment.ProductName, &shipment.Quantity, &shipment.OrderDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query shipment %s: %w", orderID, err)
	}

	shipment.CurrentStatus = domain.ShipmentStatus(status)
	if !shipment.CurrentStatus.IsValid() {
		return nil, fmt.Errorf("%w: order %s has status ordinal %d", domain.ErrIntegrityFault, orderID, status)
	}

	return &shipment, nil
}

// ListEvents retrieves the complete event history for an order.
func (r *SQLiteShipmentRepository) ListEvents(ctx context.Context, orderID string) ([]domain.TrackingEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, location, timestamp FROM tracking_events WHERE order_id = ?`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracking events for %s: %w", orderID, err)
	}
	defer rows.Close()

	var events []domain.TrackingEvent
	for rows.Next() {
		var (
			status    int
			location  string
			timestamp string
		)
		if err := rows.Scan(&status, &location, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan tracking event for %s: %w", orderID, err)
		}

		ts, err := time.Parse(domain.EventTimeLayout, timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event timestamp %q for %s: %w", timestamp, orderID, err)
		}

		events = append(events, domain.TrackingEvent{
			Status:    domain.ShipmentStatus(status),
			Location:  location,
			Timestamp: ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tracking events for %s: %w", orderID, err)
	}

	return events, nil
}

// AppendEvent inserts the event and advances the shipment's status in one
// transaction. The status update is guarded on the prior value, so a
// concurrent transition that got there first makes this one fail instead of
// producing a duplicated history.
func (r *SQLiteShipmentRepository) AppendEvent(ctx context.Context, orderID string, event domain.TrackingEvent, prior domain.ShipmentStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", orderID, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE order_id = ? AND status = ?`,
		int(event.Status), orderID, int(prior))
	if err != nil {
		return fmt.Errorf("failed to advance status for %s: %w", orderID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check status update for %s: %w", orderID, err)
	}
	if affected != 1 {
		return fmt.Errorf("%w: order %s moved concurrently", domain.ErrInvalidTransition, orderID)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tracking_events (order_id, status, location, timestamp) VALUES (?, ?, ?, ?)`,
		orderID, int(event.Status), event.Location, event.Timestamp.Format(domain.EventTimeLayout),
	); err != nil {
		return fmt.Errorf("failed to insert tracking event for %s: %w", orderID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transition for %s: %w", orderID, err)
	}

	return nil
}
