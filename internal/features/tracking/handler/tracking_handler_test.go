package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meditrack/internal/features/tracking/domain"
	"meditrack/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockShipmentRepository is a mock implementation of ShipmentRepository for testing.
type mockShipmentRepository struct {
	shipment *domain.Shipment
	events   []domain.TrackingEvent
	appended *domain.TrackingEvent
}

func (m *mockShipmentRepository) GetShipment(ctx context.Context, orderID string) (*domain.Shipment, error) {
	if m.shipment == nil || m.shipment.OrderID != orderID {
		return nil, nil
	}
	return m.shipment, nil
}

func (m *mockShipmentRepository) ListEvents(ctx context.Context, orderID string) ([]domain.TrackingEvent, error) {
	return m.events, nil
}

func (m *mockShipmentRepository) AppendEvent(ctx context.Context, orderID string, event domain.TrackingEvent, prior domain.ShipmentStatus) error {
	m.appended = &event
	return nil
}

func ts(value string) time.Time {
	t, err := time.Parse(domain.EventTimeLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestApp(repo *mockShipmentRepository) *fiber.App {
	svc := service.NewTrackingService(repo, nil, 0)
	handler := NewTrackingHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/api/track_order", handler.TrackOrder)
	app.Post("/api/track_order/:orderId/events", handler.AppendEvent)
	return app
}

func deliveredOrder() *mockShipmentRepository {
	return &mockShipmentRepository{
		shipment: &domain.Shipment{
			OrderID:       "ORD001",
			CurrentStatus: domain.StatusDelivered,
			CustomerName:  "John Doe",
			ProductName:   "Paracetamol 500mg",
			Quantity:      100,
			OrderDate:     "2024-11-10",
		},
		events: []domain.TrackingEvent{
			{Status: domain.StatusPlaced, Location: "Warehouse A", Timestamp: ts("2024-11-10 09:00")},
			{Status: domain.StatusShipped, Location: "Distribution Center", Timestamp: ts("2024-11-11 14:30")},
			{Status: domain.StatusOutForDelivery, Location: "Local Hub", Timestamp: ts("2024-11-12 08:15")},
			{Status: domain.StatusDelivered, Location: "Customer Address", Timestamp: ts("2024-11-12 16:45")},
		},
	}
}

// TestTrackingHandler_TrackOrder_Success verifies the full tracking payload.
func TestTrackingHandler_TrackOrder_Success(t *testing.T) {
	app := newTestApp(deliveredOrder())

	req := httptest.NewRequest("GET", "/api/track_order?orderId=ORD001", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view domain.TrackingView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "ORD001", view.OrderID)
	assert.Equal(t, "Delivered", view.Status)
	assert.Equal(t, "delivered", view.StatusCode)
	assert.Equal(t, 3, view.ProgressIndex)
	assert.Equal(t, "John Doe", view.CustomerName)
	require.Len(t, view.Details, 4)
	assert.Equal(t, "Order Placed", view.Details[0].Status)
}

// TestTrackingHandler_TrackOrder_NotFound verifies the 404 path.
func TestTrackingHandler_TrackOrder_NotFound(t *testing.T) {
	app := newTestApp(deliveredOrder())

	req := httptest.NewRequest("GET", "/api/track_order?orderId=ZZZ999", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Order not found", errResp.Message)
	assert.Equal(t, "test-ray-id", errResp.RayID)
}

// TestTrackingHandler_TrackOrder_MissingOrderID verifies empty input is a 400.
func TestTrackingHandler_TrackOrder_MissingOrderID(t *testing.T) {
	app := newTestApp(deliveredOrder())

	req := httptest.NewRequest("GET", "/api/track_order", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// TestTrackingHandler_TrackOrder_IntegrityFault verifies the 500 path when
// the stored status disagrees with the history.
func TestTrackingHandler_TrackOrder_IntegrityFault(t *testing.T) {
	repo := deliveredOrder()
	repo.shipment.CurrentStatus = domain.StatusShipped
	app := newTestApp(repo)

	req := httptest.NewRequest("GET", "/api/track_order?orderId=ORD001", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

// TestTrackingHandler_AppendEvent_Success verifies a valid transition is recorded.
func TestTrackingHandler_AppendEvent_Success(t *testing.T) {
	repo := &mockShipmentRepository{
		shipment: &domain.Shipment{OrderID: "ORD003", CurrentStatus: domain.StatusShipped},
		events: []domain.TrackingEvent{
			{Status: domain.StatusPlaced, Location: "Warehouse A", Timestamp: ts("2024-11-16 11:00")},
			{Status: domain.StatusShipped, Location: "Distribution Center", Timestamp: ts("2024-11-17 16:45")},
		},
	}
	app := newTestApp(repo)

	body := `{"status":"out_for_delivery","location":"Local Hub","timestamp":"2024-11-18 08:00"}`
	req := httptest.NewRequest("POST", "/api/track_order/ORD003/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var event domain.EventView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&event))
	assert.Equal(t, "Out for Delivery", event.Status)
	require.NotNil(t, repo.appended)
	assert.Equal(t, domain.StatusOutForDelivery, repo.appended.Status)
}

// TestTrackingHandler_AppendEvent_InvalidTransition verifies the 409 path.
func TestTrackingHandler_AppendEvent_InvalidTransition(t *testing.T) {
	repo := deliveredOrder()
	app := newTestApp(repo)

	body := `{"status":"shipped","location":"Distribution Center","timestamp":"2024-11-13 08:00"}`
	req := httptest.NewRequest("POST", "/api/track_order/ORD001/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Nil(t, repo.appended)
}

// TestTrackingHandler_AppendEvent_UnknownStatus verifies a bad status slug is a 400.
func TestTrackingHandler_AppendEvent_UnknownStatus(t *testing.T) {
	app := newTestApp(deliveredOrder())

	body := `{"status":"teleported","location":"Nowhere"}`
	req := httptest.NewRequest("POST", "/api/track_order/ORD001/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
