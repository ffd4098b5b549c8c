package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meditrack/internal/core/storage"
	"meditrack/internal/features/auth/adapters"
	"meditrack/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Seed())

	svc := service.NewAuthService(adapters.NewSQLiteUserRepository(store.DB()), "test-secret", time.Hour)
	handler := NewAuthHandler(svc)

	app := fiber.New()
	app.Post("/api/login", handler.Login)
	app.Post("/api/register", handler.Register)
	return app
}

func TestAuthHandler_Login_SeededAccount(t *testing.T) {
	app := newTestApp(t)

	body := `{"email":"admin@meditrack.local","password":"admin123"}`
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.NotEmpty(t, payload.Token)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	app := newTestApp(t)

	body := `{"email":"admin@meditrack.local","password":"wrongpass"}`
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var payload ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	// The message must not say which of the two fields was wrong.
	assert.Equal(t, "Invalid email or password", payload.Message)
}

func TestAuthHandler_Login_UnknownEmailSameMessage(t *testing.T) {
	app := newTestApp(t)

	body := `{"email":"nobody@meditrack.local","password":"admin123"}`
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var payload ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Invalid email or password", payload.Message)
}

func TestAuthHandler_RegisterThenLogin(t *testing.T) {
	app := newTestApp(t)

	register := `{"email":"newops@meditrack.local","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/api/register", strings.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	login := `{"email":"newops@meditrack.local","password":"supersecret"}`
	req = httptest.NewRequest("POST", "/api/login", strings.NewReader(login))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	app := newTestApp(t)

	body := `{"email":"admin@meditrack.local","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAuthHandler_Register_Invalid(t *testing.T) {
	app := newTestApp(t)

	body := `{"email":"not-an-email","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
