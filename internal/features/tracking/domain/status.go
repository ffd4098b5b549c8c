package domain

import "fmt"

// ShipmentStatus is the lifecycle position of a shipment. The integer
// ordinal is the canonical encoding; slugs and display labels are derived
// from it, never the other way around.
type ShipmentStatus int

const (
	// StatusPlaced indicates the order has been placed but not dispatched.
	StatusPlaced ShipmentStatus = iota
	// StatusShipped indicates the order has left the warehouse.
	StatusShipped
	// StatusOutForDelivery indicates the order is on its final leg.
	StatusOutForDelivery
	// StatusDelivered indicates the order has reached the customer.
	StatusDelivered
)

// StatusCount is the number of steps in the lifecycle, for rendering
// progress indicators.
const StatusCount = 4

var statusSlugs = [StatusCount]string{"placed", "shipped", "out_for_delivery", "delivered"}

var statusLabels = [StatusCount]string{"Order Placed", "Shipped", "Out for Delivery", "Delivered"}

// IsValid reports whether s is a member of the closed enumeration.
func (s ShipmentStatus) IsValid() bool {
	return s >= StatusPlaced && s <= StatusDelivered
}

// Slug returns the stable machine-readable code for the status.
func (s ShipmentStatus) Slug() string {
	if !s.IsValid() {
		return "unknown"
	}
	return statusSlugs[s]
}

// Label returns the human-readable display name for the status.
func (s ShipmentStatus) Label() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return statusLabels[s]
}

// ProgressIndex returns the zero-based position of the status in the
// lifecycle ordering.
func (s ShipmentStatus) ProgressIndex() int {
	return int(s)
}

func (s ShipmentStatus) String() string {
	return s.Slug()
}

// ParseStatus resolves a slug or display label to its status. Legacy rows
// and clients use either form interchangeably.
func ParseStatus(value string) (ShipmentStatus, error) {
	for i := 0; i < StatusCount; i++ {
		if value == statusSlugs[i] || value == statusLabels[i] {
			return ShipmentStatus(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shipment status %q", ErrInvalidArgument, value)
}
