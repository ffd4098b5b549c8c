package ports

import (
	"context"

	"meditrack/internal/features/tracking/domain"
)

// ShipmentRepository defines the secondary port for shipment storage.
type ShipmentRepository interface {
	// GetShipment retrieves a shipment by order ID, or nil if none exists.
	GetShipment(ctx context.Context, orderID string) (*domain.Shipment, error)

	// ListEvents retrieves the complete event history for an order, in any order.
	ListEvents(ctx context.Context, orderID string) ([]domain.TrackingEvent, error)

	// AppendEvent inserts the event and advances the shipment's status from
	// prior to event.Status as one atomic unit. It must fail with
	// domain.ErrInvalidTransition if the stored status no longer equals
	// prior, so concurrent transitions for the same shipment cannot both
	// win.
	AppendEvent(ctx context.Context, orderID string, event domain.TrackingEvent, prior domain.ShipmentStatus) error
}
