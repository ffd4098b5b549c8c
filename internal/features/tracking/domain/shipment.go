package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidArgument is returned when required input is empty or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOrderNotFound is returned when no shipment exists for the identifier.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned when an event would skip a lifecycle
	// step, regress, or move backwards in time.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrIntegrityFault is returned when the stored status disagrees with the
	// status derived from the event history. It is surfaced, never repaired.
	ErrIntegrityFault = errors.New("tracking history integrity fault")
)

// Shipment represents a trackable order. The descriptive fields are
// immutable after creation; only CurrentStatus advances.
type Shipment struct {
	// OrderID is the unique identifier assigned at creation.
	OrderID string
	// CurrentStatus is the lifecycle position. It must equal the status of
	// the most recent TrackingEvent, if any exist.
	CurrentStatus ShipmentStatus
	// CustomerName is the recipient of the order.
	CustomerName string
	// ProductName is the ordered product.
	ProductName string
	// Quantity is the number of units ordered.
	Quantity int
	// OrderDate is the calendar date the order was placed (YYYY-MM-DD).
	OrderDate string
}

// TrackingEvent is one immutable record of a shipment's state at a point
// in time and place. Events form an append-only history per shipment.
type TrackingEvent struct {
	// Status is the lifecycle position recorded by this event.
	Status ShipmentStatus
	// Location is a free-text description of the physical location.
	Location string
	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// TrackingView is the answer to "where is this shipment in its lifecycle".
type TrackingView struct {
	// OrderID identifies the shipment.
	OrderID string `json:"orderId"`
	// Status is the display label for the current status.
	Status string `json:"status"`
	// StatusCode is the stable slug for the current status.
	StatusCode string `json:"status_code"`
	// ProgressIndex is the zero-based position in the four-step lifecycle.
	ProgressIndex int `json:"progress_index"`
	// CustomerName is the recipient of the order.
	CustomerName string `json:"customerName"`
	// ProductName is the ordered product.
	ProductName string `json:"productName"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// OrderDate is the calendar date the order was placed.
	OrderDate string `json:"orderDate"`
	// Details is the full event history, ascending by timestamp.
	Details []EventView `json:"details"`
}

// EventView is one history entry as rendered to clients.
type EventView struct {
	// Status is the display label recorded by the event.
	Status string `json:"status"`
	// Location is where the event occurred.
	Location string `json:"location"`
	// Timestamp is when the event occurred (YYYY-MM-DD HH:MM).
	Timestamp string `json:"timestamp"`
}

// EventTimeLayout is the wire format for event timestamps.
const EventTimeLayout = "2006-01-02 15:04"
