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
	"folio_backend/internals/features/profile/model"
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
	require.NoError(t, db.AutoMigrate(&model.ProfileModel{}))

	ctrl := NewProfileController(db)
	adminOnly := authMiddleware.AdminOnly()

	app := fiber.New()
	profile := app.Group("/api/profile")
	profile.Get("/", ctrl.GetProfile)
	profile.Put("/", adminOnly, ctrl.UpsertProfile)

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

func TestProfileUpsertCreatesThenUpdates(t *testing.T) {
	app, db := newTestApp(t)

	create := fiber.Map{"name": "Jane Roe", "title": "Engineer", "bio": "I build things."}
	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/profile/", create, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "first upsert creates the row")

	update := fiber.Map{"name": "Jane Roe", "title": "Staff Engineer", "bio": "I build bigger things.", "githubUrl": "https://github.com/janeroe"}
	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/profile/", update, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ProfileModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count, "repeated upserts must keep a single profile row")

	var stored model.ProfileModel
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, "Staff Engineer", stored.ProfileTitle)
	require.NotNil(t, stored.ProfileGithubURL)
	require.Equal(t, "https://github.com/janeroe", *stored.ProfileGithubURL)
}

func TestProfileUpsertRequiresAuth(t *testing.T) {
	app, db := newTestApp(t)

	payload := fiber.Map{"name": "Jane", "title": "Engineer", "bio": "hi"}
	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/profile/", payload, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ProfileModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProfileUpsertRejectsMalformedSocialURL(t *testing.T) {
	app, _ := newTestApp(t)

	payload := fiber.Map{"name": "Jane", "title": "Engineer", "bio": "hi", "linkedinUrl": "not-a-url"}
	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/profile/", payload, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProfileIsPublic(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&model.ProfileModel{
		ProfileName:  "Jane Roe",
		ProfileTitle: "Engineer",
		ProfileBio:   "hello",
	}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/profile/", nil, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	data := body["data"].(map[string]any)
	require.Equal(t, "Jane Roe", data["name"])
}
