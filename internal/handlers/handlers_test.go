package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/maya-portal/internal/auth"
	"github.com/example/maya-portal/internal/config"
	"github.com/example/maya-portal/internal/ledger"
	"github.com/example/maya-portal/internal/models"
	"github.com/example/maya-portal/internal/routes"
	"github.com/example/maya-portal/internal/store"
	"github.com/example/maya-portal/internal/utils"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *store.Memory) {
	t.Helper()

	cfg := &config.Config{
		AppPort:      "0",
		JWTSecret:    testSecret,
		TokenExpires: 7 * 24 * time.Hour,
		CORSOrigin:   "*",
	}

	st := store.NewMemory()
	app := fiber.New()
	routes.Register(app, st, ledger.New(), cfg)
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func registerUser(t *testing.T, app *fiber.App, email string) (string, int64) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"first_name": "Ana",
		"last_name":  "Poot",
		"email":      email,
		"password":   "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	return token, int64(user["id"].(float64))
}

func TestRegister_CreatesAccount(t *testing.T) {
	app, _ := newTestApp(t)

	token, id := registerUser(t, app, "a@x.com")
	assert.Equal(t, int64(1), id)

	claims, err := auth.ParseToken(testSecret, token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "a@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"first_name": "Beto",
		"last_name":  "Cruz",
		"email":      "a@x.com",
		"password":   "secret2",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []map[string]any{
		{"first_name": "A", "last_name": "Poot", "email": "a@x.com", "password": "secret1"},
		{"first_name": "Ana", "last_name": "P", "email": "a@x.com", "password": "secret1"},
		{"first_name": "Ana", "last_name": "Poot", "email": "not-an-email", "password": "secret1"},
		{"first_name": "Ana", "last_name": "Poot", "email": "a@x.com", "password": "short"},
	}
	for i, payload := range cases {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "case %d", i)
	}
}

func TestLogin_Succeeds(t *testing.T) {
	app, _ := newTestApp(t)

	_, id := registerUser(t, app, "a@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(testSecret, token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
}

func TestLogin_BadCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "a@x.com")

	wrongPassword := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "a@x.com",
		"password": "wrong",
	})
	unknownUser := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "nobody@x.com",
		"password": "secret1",
	})

	// Both failures must be indistinguishable.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.StatusCode)

	wrongBody, _ := io.ReadAll(wrongPassword.Body)
	unknownBody, _ := io.ReadAll(unknownUser.Body)
	assert.Equal(t, string(wrongBody), string(unknownBody))
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/user/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/user/history", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/user/history", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMe_ReturnsProfile(t *testing.T) {
	app, _ := newTestApp(t)

	token, id := registerUser(t, app, "a@x.com")

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(id), user["id"])
	assert.Equal(t, "a@x.com", user["email"])
}

func TestReservationFlow(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "a@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/reservations/hotel", token, map[string]any{
		"name":          "Hotel Balam Kú",
		"total":         2500.0,
		"checkin_date":  "2026-09-01",
		"checkout_date": "2026-09-05",
		"addons":        []string{"spa"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	reservationID, _ := data["id"].(string)
	require.NotEmpty(t, reservationID)
	assert.Equal(t, "confirmed", data["status"])

	resp = doJSON(t, app, http.MethodGet, "/api/user/history", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, 2500.0, history["total_spent"])
	assert.Len(t, history["hotels"], 1)

	resp = doJSON(t, app, http.MethodDelete, "/api/reservations/"+reservationID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/user/history", token, nil)
	history = decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, 0.0, history["total_spent"])
	hotels := history["hotels"].([]any)
	require.Len(t, hotels, 1)
	assert.Equal(t, "cancelled", hotels[0].(map[string]any)["status"])

	resp = doJSON(t, app, http.MethodDelete, "/api/reservations/"+reservationID, token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/reservations/H0-missing", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReservation_RejectsInvalidPayload(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "a@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/reservations/hotel", token, map[string]any{
		"name":  "",
		"total": 100.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/reservations/restaurant", token, map[string]any{
		"name":  "La Ceiba",
		"total": -10.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/reservations/experience", token, map[string]any{
		"name":     "Tour a Chichén Itzá",
		"total":    1200.0,
		"personas": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHotelOwnership_Endpoint(t *testing.T) {
	app, st := newTestApp(t)

	token, userID := registerUser(t, app, "owner@x.com")

	// Not the owner yet.
	resp := doJSON(t, app, http.MethodGet, "/api/hotels/1/ownership", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decodeBody(t, resp)["allowed"])

	require.True(t, st.SetHotelOwner(1, userID))
	resp = doJSON(t, app, http.MethodGet, "/api/hotels/1/ownership", token, nil)
	assert.Equal(t, true, decodeBody(t, resp)["allowed"])

	// Nonexistent hotel: allowed is false, not an error.
	resp = doJSON(t, app, http.MethodGet, "/api/hotels/999/ownership", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decodeBody(t, resp)["allowed"])

	resp = doJSON(t, app, http.MethodGet, "/api/hotels/abc/ownership", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHotelOwnership_AdminBypass(t *testing.T) {
	app, st := newTestApp(t)

	hash, err := utils.HashPassword("admin-secret")
	require.NoError(t, err)
	admin := models.User{FirstName: "Root", LastName: "Admin", Email: "admin@x.com", PasswordHash: hash, Role: models.RoleAdmin}
	require.NoError(t, st.Insert(context.Background(), &admin))

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "admin@x.com",
		"password": "admin-secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := decodeBody(t, resp)["token"].(string)

	for _, hotelID := range []int{1, 2, 3} {
		resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/hotels/%d/ownership", hotelID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decodeBody(t, resp)["allowed"])
	}
}

func TestCatalog_PublicEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/hotels", "/api/restaurants", "/api/experiences"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Len(t, decodeBody(t, resp)["data"], 3, path)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/products/1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	product := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Huipil Ceremonial", product["name"])

	resp = doJSON(t, app, http.MethodGet, "/api/products/99", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
