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
	"folio_backend/internals/features/contact/model"
	"folio_backend/internals/features/contact/service"
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
	require.NoError(t, db.AutoMigrate(&model.ContactInfoModel{}, &model.ContactMessageModel{}))

	infoCtrl := NewContactInfoController(db)
	msgCtrl := NewContactMessageController(db, &service.Mailer{}) // SMTP off in tests
	adminOnly := authMiddleware.AdminOnly()

	app := fiber.New()
	contact := app.Group("/api/contact")
	contact.Get("/", infoCtrl.GetContactInfo)
	contact.Put("/", adminOnly, infoCtrl.UpsertContactInfo)

	messages := app.Group("/api/messages")
	messages.Post("/", msgCtrl.CreateMessage)
	messages.Get("/", adminOnly, msgCtrl.GetAllMessages)
	messages.Get("/:id", adminOnly, msgCtrl.GetMessageByID)
	messages.Patch("/:id", adminOnly, msgCtrl.UpdateMessage)
	messages.Delete("/:id", adminOnly, msgCtrl.DeleteMessage)

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

func TestContactInfoUpsertKeepsSingleRow(t *testing.T) {
	app, db := newTestApp(t)

	first := fiber.Map{"name": "Jane Roe", "title": "Engineer", "email": "jane@example.com"}
	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/contact/", first, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "first upsert creates the row")

	second := fiber.Map{"name": "Jane Roe", "title": "Principal Engineer", "email": "jane@example.com"}
	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/contact/", second, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ContactInfoModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count, "upsert must never create a second row")

	var stored model.ContactInfoModel
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, "Principal Engineer", stored.ContactInfoTitle)
}

func TestContactInfoEmptyReturnsNullData(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact/", nil, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Nil(t, body["data"])
}

func TestVisitorCanSubmitMessage(t *testing.T) {
	app, db := newTestApp(t)

	payload := fiber.Map{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Project inquiry",
		"message": "I would like a quote.",
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/messages/", payload, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored model.ContactMessageModel
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, "Project inquiry", stored.ContactMessageSubject)
	require.False(t, stored.ContactMessageRead, "new messages start unread")
}

func TestMessageListRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/messages/", nil, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMarkMessageRead(t *testing.T) {
	app, db := newTestApp(t)

	msg := model.ContactMessageModel{
		ContactMessageName:    "Visitor",
		ContactMessageEmail:   "visitor@example.com",
		ContactMessageSubject: "Hi",
		ContactMessageBody:    "Hello",
	}
	require.NoError(t, db.Create(&msg).Error)

	payload := fiber.Map{"read": true}
	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/messages/"+msg.ContactMessageID.String(), payload, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored model.ContactMessageModel
	require.NoError(t, db.First(&stored, "contact_message_id = ?", msg.ContactMessageID).Error)
	require.True(t, stored.ContactMessageRead)
}

func TestDeleteMessageTwice(t *testing.T) {
	app, db := newTestApp(t)

	msg := model.ContactMessageModel{
		ContactMessageName:    "Visitor",
		ContactMessageEmail:   "visitor@example.com",
		ContactMessageSubject: "Hi",
		ContactMessageBody:    "Hello",
	}
	require.NoError(t, db.Create(&msg).Error)

	path := "/api/messages/" + msg.ContactMessageID.String()
	resp, err := app.Test(jsonRequest(http.MethodDelete, path, nil, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodDelete, path, nil, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode, "second delete of the same id must 404")
}
