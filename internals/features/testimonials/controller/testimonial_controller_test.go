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
	"folio_backend/internals/features/testimonials/model"
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
	require.NoError(t, db.AutoMigrate(&model.TestimonialModel{}))

	ctrl := NewTestimonialController(db)
	adminOnly := authMiddleware.AdminOnly()

	app := fiber.New()
	testimonials := app.Group("/api/testimonials")
	testimonials.Get("/", ctrl.GetAllTestimonials)
	testimonials.Get("/:id", ctrl.GetTestimonialByID)
	testimonials.Post("/", adminOnly, ctrl.CreateTestimonial)
	testimonials.Put("/:id", adminOnly, ctrl.UpdateTestimonial)
	testimonials.Delete("/:id", adminOnly, ctrl.DeleteTestimonial)

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

func testimonialPayload(rating int) fiber.Map {
	return fiber.Map{
		"name":     "Satisfied Client",
		"location": "Berlin, Germany",
		"content":  "Great work, delivered on time.",
		"rating":   rating,
	}
}

func TestCreateTestimonialRejectsRatingOutOfRange(t *testing.T) {
	app, db := newTestApp(t)

	tests := []struct {
		name   string
		rating int
	}{
		{"below range", 0},
		{"above range", 6},
		{"negative", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/testimonials/", testimonialPayload(tt.rating), adminCookie(t)))
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			fields := body["fields"].(map[string]any)
			require.Contains(t, fields, "rating")
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.TestimonialModel{}).Count(&count).Error)
	require.Zero(t, count, "out-of-range ratings must never reach the store")
}

func TestCreateTestimonialAcceptsBoundaryRatings(t *testing.T) {
	app, db := newTestApp(t)

	for _, rating := range []int{1, 5} {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/testimonials/", testimonialPayload(rating), adminCookie(t)))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&model.TestimonialModel{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestCreateTestimonialRequiresAuth(t *testing.T) {
	app, db := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/testimonials/", testimonialPayload(5), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.TestimonialModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateTestimonialRevalidatesRating(t *testing.T) {
	app, db := newTestApp(t)

	stored := model.TestimonialModel{
		TestimonialName:     "Client",
		TestimonialLocation: "Oslo, Norway",
		TestimonialContent:  "Solid.",
		TestimonialRating:   4,
	}
	require.NoError(t, db.Create(&stored).Error)

	path := "/api/testimonials/" + stored.TestimonialID.String()
	resp, err := app.Test(jsonRequest(http.MethodPut, path, testimonialPayload(9), adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var after model.TestimonialModel
	require.NoError(t, db.First(&after, "testimonial_id = ?", stored.TestimonialID).Error)
	require.Equal(t, 4, after.TestimonialRating, "rejected update must not touch the row")
}

func TestTestimonialListIsPublic(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&model.TestimonialModel{
		TestimonialName:     "Client",
		TestimonialLocation: "Lisbon, Portugal",
		TestimonialContent:  "Recommended.",
		TestimonialRating:   5,
	}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/testimonials/", nil, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Data, 1)
	require.EqualValues(t, 5, body.Data[0]["rating"])
}
