package server

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"rentdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPropertiesNewestFirst(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/properties", "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var props []models.Property
	decodeBody(t, w, &props)
	require.Len(t, props, 5)
	assert.Equal(t, uint(5), props[0].ID)
	assert.Equal(t, "Budget Room in Neukölln", props[0].Title)
}

func TestPropertyStatusBreakdown(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/properties/status", "", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var counts map[string]int64
	decodeBody(t, w, &counts)
	assert.Equal(t, map[string]int64{"Available": 3, "Occupied": 2}, counts)
}

func TestCreatePropertyRequiresLogin(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/properties",
		map[string]any{"title": "Ghost Flat"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "login required")
}

func TestCreateAndUpdateProperty(t *testing.T) {
	r, _ := setupRouter(t)
	cookies := login(t, r, "staff", "staffpass")

	w := doJSON(t, r, http.MethodPost, "/api/properties", map[string]any{
		"title":    "Penthouse in Wedding",
		"district": "Wedding",
		"status":   "Available",
		"price":    "1750.50",
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var props []models.Property
	w = do(t, r, http.MethodGet, "/api/properties", "", nil, nil)
	decodeBody(t, w, &props)
	require.Len(t, props, 6)
	created := props[0]
	assert.Equal(t, "Penthouse in Wedding", created.Title)
	assert.Equal(t, 1750.50, created.Price)

	// id present means update in place
	w = doJSON(t, r, http.MethodPost, "/api/properties", map[string]any{
		"id":       created.ID,
		"title":    "Penthouse in Wedding",
		"district": "Wedding",
		"status":   "Occupied",
		"price":    1800,
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/properties", "", nil, nil)
	decodeBody(t, w, &props)
	require.Len(t, props, 6)
	assert.Equal(t, "Occupied", props[0].Status)
	assert.Equal(t, float64(1800), props[0].Price)
}

func TestPropertyImageUploadSanitized(t *testing.T) {
	r, cfg := setupRouter(t)
	cookies := login(t, r, "staff", "staffpass")

	body, contentType := multipartBody(t, map[string]string{
		"title":    "Flat with photo",
		"district": "Moabit",
		"status":   "Available",
		"price":    "950",
	}, "image", "../../evil photo.png", []byte("not-really-a-png"))

	w := do(t, r, http.MethodPost, "/api/properties", contentType, body, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// stored under the sanitized name inside the upload dir
	stored := filepath.Join(cfg.UploadDir, "evil_photo.png")
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "not-really-a-png", string(data))

	var props []models.Property
	w = do(t, r, http.MethodGet, "/api/properties", "", nil, nil)
	decodeBody(t, w, &props)
	assert.Equal(t, "evil_photo.png", props[0].Image)
}

func TestDeletePropertyAdminOnly(t *testing.T) {
	r, _ := setupRouter(t)

	staff := login(t, r, "staff", "staffpass")
	w := doJSON(t, r, http.MethodDelete, "/api/properties/1", nil, staff)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin required")

	var props []models.Property
	w = do(t, r, http.MethodGet, "/api/properties", "", nil, nil)
	decodeBody(t, w, &props)
	require.Len(t, props, 5, "forbidden delete must leave the row present")

	admin := login(t, r, "admin", "adminpass")
	w = doJSON(t, r, http.MethodDelete, "/api/properties/1", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)

	w = do(t, r, http.MethodGet, "/api/properties", "", nil, nil)
	decodeBody(t, w, &props)
	assert.Len(t, props, 4)
}

func TestDeletePropertyAnonymousRedirects(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/properties/1", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
}
