package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"folio_backend/internals/configs"
	"folio_backend/internals/features/settings/model"
	helper "folio_backend/internals/helpers"
	authMiddleware "folio_backend/internals/middlewares/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SettingsModel{}))

	ctrl := NewSettingsController(db)
	adminOnly := authMiddleware.AdminOnly()

	app := fiber.New()
	settings := app.Group("/api/settings")
	settings.Get("/", ctrl.GetSettings)
	settings.Put("/", adminOnly, ctrl.UpsertSettings)

	return app, db
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "admin@admin.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return &http.Cookie{Name: helper.AdminTokenCookie, Value: token}
}

func jsonRequest(method, path string, payload any, cookie *http.Cookie) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestUpsertSettingsKeepsSingleRow(t *testing.T) {
	app, db := newTestApp(t)

	first := fiber.Map{"logo_image": "/uploads/logo.webp", "copyright": "© 2025 Folio"}
	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/settings/", first, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "first upsert creates the row")

	second := fiber.Map{"logo_image": "/uploads/logo-v2.webp", "copyright": "© 2026 Folio"}
	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/settings/", second, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "second upsert updates in place")

	var count int64
	require.NoError(t, db.Model(&model.SettingsModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var stored model.SettingsModel
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, "/uploads/logo-v2.webp", stored.SettingsLogoImage)
	require.Equal(t, "© 2026 Folio", stored.SettingsCopyright)
}

func TestUpsertSettingsRequiresAuth(t *testing.T) {
	app, db := newTestApp(t)

	payload := fiber.Map{"logo_image": "/uploads/logo.webp", "copyright": "© 2025 Folio"}
	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/settings/", payload, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.SettingsModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpsertSettingsValidatesRequiredFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/settings/", fiber.Map{"copyright": "© 2025 Folio"}, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	fields := body["fields"].(map[string]any)
	require.Contains(t, fields, "logoimage")
}

func TestGetSettingsReturnsNullWhenUnset(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/settings/", nil, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Nil(t, body["data"])
}
