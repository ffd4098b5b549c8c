package domain

import (
	"fmt"
	"sort"
)

// SortEvents returns a copy of events ordered ascending by timestamp.
// Two events sharing a timestamp are ordered by status ordinal: progression
// cannot go backward at equal time, so the higher ordinal is the later one.
func SortEvents(events []TrackingEvent) []TrackingEvent {
	sorted := make([]TrackingEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Status < sorted[j].Status
		}
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// Resolve answers a tracking query for a shipment and its complete event
// history. The reported status is derived from the chronologically last
// event; a disagreement with the stored CurrentStatus is a data-integrity
// fault and is surfaced as ErrIntegrityFault, never silently corrected.
func Resolve(shipment *Shipment, events []TrackingEvent) (*TrackingView, error) {
	if shipment == nil {
		return nil, ErrOrderNotFound
	}

	sorted := SortEvents(events)

	derived := shipment.CurrentStatus
	if len(sorted) > 0 {
		derived = sorted[len(sorted)-1].Status
	}
	if derived != shipment.CurrentStatus {
		return nil, fmt.Errorf("%w: order %s stored %s but history derives %s",
			ErrIntegrityFault, shipment.OrderID, shipment.CurrentStatus, derived)
	}

	details := make([]EventView, len(sorted))
	for i, e := range sorted {
		details[i] = EventView{
			Status:    e.Status.Label(),
			Location:  e.Location,
			Timestamp: e.Timestamp.Format(EventTimeLayout),
		}
	}

	return &TrackingView{
		OrderID:       shipment.OrderID,
		Status:        derived.Label(),
		StatusCode:    derived.Slug(),
		ProgressIndex: derived.ProgressIndex(),
		CustomerName:  shipment.CustomerName,
		ProductName:   shipment.ProductName,
		Quantity:      shipment.Quantity,
		OrderDate:     shipment.OrderDate,
		Details:       details,
	}, nil
}

// AppendEvent validates a status change against the shipment's current
// history. The new status must be equal to (identical retry only) or
// exactly one step ahead of the current status; no skipping, no regression.
// It returns the event to persist and whether it must actually be applied:
// applied is false when the event is an identical retry of the latest one,
// which is accepted without effect.
//
// The caller owns persistence and must apply the event insert and the
// CurrentStatus update as one atomic unit per shipment.
func AppendEvent(shipment *Shipment, events []TrackingEvent, next TrackingEvent) (TrackingEvent, bool, error) {
	if shipment == nil {
		return TrackingEvent{}, false, ErrOrderNotFound
	}
	if !next.Status.IsValid() {
		return TrackingEvent{}, false, fmt.Errorf("%w: status ordinal %d out of range", ErrInvalidArgument, int(next.Status))
	}
	if next.Timestamp.IsZero() {
		return TrackingEvent{}, false, fmt.Errorf("%w: event timestamp is required", ErrInvalidArgument)
	}

	sorted := SortEvents(events)

	current := shipment.CurrentStatus
	if len(sorted) > 0 {
		derived := sorted[len(sorted)-1].Status
		if derived != current {
			return TrackingEvent{}, false, fmt.Errorf("%w: order %s stored %s but history derives %s",
				ErrIntegrityFault, shipment.OrderID, current, derived)
		}
	}

	switch {
	case next.Status == current:
		// Retry of the identical event is idempotent; any other same-status
		// event is a duplicate transition and is rejected.
		if len(sorted) > 0 {
			last := sorted[len(sorted)-1]
			if last.Status == next.Status && last.Timestamp.Equal(next.Timestamp) {
				return last, false, nil
			}
		}
		return TrackingEvent{}, false, fmt.Errorf("%w: order %s is already %s",
			ErrInvalidTransition, shipment.OrderID, current)

	case next.Status == current+1:
		if len(sorted) > 0 && next.Timestamp.Before(sorted[len(sorted)-1].Timestamp) {
			return TrackingEvent{}, false, fmt.Errorf("%w: event timestamp precedes existing history for order %s",
				ErrInvalidTransition, shipment.OrderID)
		}
		return next, true, nil

	default:
		return TrackingEvent{}, false, fmt.Errorf("%w: cannot move order %s from %s to %s",
			ErrInvalidTransition, shipment.OrderID, current, next.Status)
	}
}
