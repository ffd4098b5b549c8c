package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"meditrack/internal/core/cache"
	"meditrack/internal/features/tracking/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockShipmentRepository is a mock implementation of ShipmentRepository for testing.
type mockShipmentRepository struct {
	shipment    *domain.Shipment
	events      []domain.TrackingEvent
	returnError error

	appendedEvent *domain.TrackingEvent
	appendedPrior domain.ShipmentStatus
	getCalls      int
}

func (m *mockShipmentRepository) GetShipment(ctx context.Context, orderID string) (*domain.Shipment, error) {
	m.getCalls++
	if m.returnError != nil {
		return nil, m.returnError
	}
	if m.shipment == nil || m.shipment.OrderID != orderID {
		return nil, nil
	}
	return m.shipment, nil
}

func (m *mockShipmentRepository) ListEvents(ctx context.Context, orderID string) ([]domain.TrackingEvent, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.events, nil
}

func (m *mockShipmentRepository) AppendEvent(ctx context.Context, orderID string, event domain.TrackingEvent, prior domain.ShipmentStatus) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.appendedEvent = &event
	m.appendedPrior = prior
	return nil
}

func ts(value string) time.Time {
	t, err := time.Parse(domain.EventTimeLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func shippedOrder() (*domain.Shipment, []domain.TrackingEvent) {
	shipment := &domain.Shipment{
		OrderID:       "ORD003",
		CurrentStatus: domain.StatusShipped,
		CustomerName:  "Bob Johnson",
		ProductName:   "Ibuprofen 200mg",
		Quantity:      200,
		OrderDate:     "2024-11-16",
	}
	events := []domain.TrackingEvent{
		{Status: domain.StatusPlaced, Location: "Warehouse A", Timestamp: ts("2024-11-16 11:00")},
		{Status: domain.StatusShipped, Location: "Distribution Center", Timestamp: ts("2024-11-17 16:45")},
	}
	return shipment, events
}

// TestTrackingService_Resolve_Success verifies a lookup resolves the view.
func TestTrackingService_Resolve_Success(t *testing.T) {
	shipment, events := shippedOrder()
	repo := &mockShipmentRepository{shipment: shipment, events: events}

	svc := NewTrackingService(repo, nil, 0)

	view, err := svc.Resolve(context.Background(), "ORD003")

	require.NoError(t, err)
	assert.Equal(t, "shipped", view.StatusCode)
	assert.Equal(t, 1, view.ProgressIndex)
	assert.Len(t, view.Details, 2)
}

// TestTrackingService_Resolve_NotFound verifies an unknown order fails with
// the not-found sentinel.
func TestTrackingService_Resolve_NotFound(t *testing.T) {
	repo := &mockShipmentRepository{}
	svc := NewTrackingService(repo, nil, 0)

	view, err := svc.Resolve(context.Background(), "ZZZ999")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

// TestTrackingService_Resolve_EmptyOrderID verifies empty input fails before
// any repository access.
func TestTrackingService_Resolve_EmptyOrderID(t *testing.T) {
	repo := &mockShipmentRepository{}
	svc := NewTrackingService(repo, nil, 0)

	view, err := svc.Resolve(context.Background(), "")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Zero(t, repo.getCalls)
}

// TestTrackingService_Resolve_IntegrityFault verifies a corrupted stored
// status propagates the integrity fault.
func TestTrackingService_Resolve_IntegrityFault(t *testing.T) {
	shipment, events := shippedOrder()
	shipment.CurrentStatus = domain.StatusDelivered
	repo := &mockShipmentRepository{shipment: shipment, events: events}

	svc := NewTrackingService(repo, nil, 0)

	_, err := svc.Resolve(context.Background(), "ORD003")

	assert.ErrorIs(t, err, domain.ErrIntegrityFault)
}

// TestTrackingService_Resolve_CacheHit verifies a second lookup within the
// TTL is served from the cache without touching the repository.
func TestTrackingService_Resolve_CacheHit(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	shipment, events := shippedOrder()
	repo := &mockShipmentRepository{shipment: shipment, events: events}

	svc := NewTrackingService(repo, adapter, time.Minute)

	first, err := svc.Resolve(context.Background(), "ORD003")
	require.NoError(t, err)

	second, err := svc.Resolve(context.Background(), "ORD003")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getCalls)
}

// TestTrackingService_AppendEvent_Success verifies a valid transition is
// persisted with the prior status and invalidates the cached view.
func TestTrackingService_AppendEvent_Success(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	shipment, events := shippedOrder()
	repo := &mockShipmentRepository{shipment: shipment, events: events}

	svc := NewTrackingService(repo, adapter, time.Minute)

	_, err = svc.Resolve(context.Background(), "ORD003")
	require.NoError(t, err)
	assert.True(t, mr.Exists("tracking:view:ORD003"))

	next := domain.TrackingEvent{
		Status:    domain.StatusOutForDelivery,
		Location:  "Local Hub",
		Timestamp: ts("2024-11-18 08:00"),
	}

	event, err := svc.AppendEvent(context.Background(), "ORD003", next)

	require.NoError(t, err)
	assert.Equal(t, next, *event)
	require.NotNil(t, repo.appendedEvent)
	assert.Equal(t, domain.StatusShipped, repo.appendedPrior)
	assert.False(t, mr.Exists("tracking:view:ORD003"))
}

// TestTrackingService_AppendEvent_IdenticalRetry verifies an identical retry
// succeeds without writing anything.
func TestTrackingService_AppendEvent_IdenticalRetry(t *testing.T) {
	shipment, events := shippedOrder()
	repo := &mockShipmentRepository{shipment: shipment, events: events}

	svc := NewTrackingService(repo, nil, 0)

	retry := domain.TrackingEvent{
		Status:    domain.StatusShipped,
		Location:  "Distribution Center",
		Timestamp: ts("2024-11-17 16:45"),
	}

	event, err := svc.AppendEvent(context.Background(), "ORD003", retry)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, event.Status)
	assert.Nil(t, repo.appendedEvent)
}

// TestTrackingService_AppendEvent_InvalidTransition verifies a regression is
// rejected and nothing is persisted.
func TestTrackingService_AppendEvent_InvalidTransition(t *testing.T) {
	shipment, events := shippedOrder()
	repo := &mockShipmentRepository{shipment: shipment, events: events}

	svc := NewTrackingService(repo, nil, 0)

	regress := domain.TrackingEvent{
		Status:    domain.StatusPlaced,
		Location:  "Warehouse A",
		Timestamp: ts("2024-11-18 08:00"),
	}

	event, err := svc.AppendEvent(context.Background(), "ORD003", regress)

	assert.Nil(t, event)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Nil(t, repo.appendedEvent)
}

// TestTrackingService_AppendEvent_MissingLocation verifies location is
// required input.
func TestTrackingService_AppendEvent_MissingLocation(t *testing.T) {
	shipment, events := shippedOrder()
	repo := &mockShipmentRepository{shipment: shipment, events: events}

	svc := NewTrackingService(repo, nil, 0)

	next := domain.TrackingEvent{Status: domain.StatusOutForDelivery, Timestamp: ts("2024-11-18 08:00")}

	_, err := svc.AppendEvent(context.Background(), "ORD003", next)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

// TestTrackingService_Resolve_RepositoryError verifies storage failures are
// wrapped and propagated.
func TestTrackingService_Resolve_RepositoryError(t *testing.T) {
	repo := &mockShipmentRepository{returnError: errors.New("database locked")}
	svc := NewTrackingService(repo, nil, 0)

	_, err := svc.Resolve(context.Background(), "ORD003")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load shipment")
}
