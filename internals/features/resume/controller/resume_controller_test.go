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
	"folio_backend/internals/features/resume/model"
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
	require.NoError(t, db.AutoMigrate(
		&model.EducationModel{},
		&model.CertificationModel{},
		&model.SkillModel{},
		&model.ExperienceModel{},
	))

	ctrl := NewResumeController(db)
	adminOnly := authMiddleware.AdminOnly()

	app := fiber.New()
	resume := app.Group("/api/resume")
	resume.Get("/:type", ctrl.GetAll)
	resume.Get("/:type/:id", ctrl.GetByID)
	resume.Post("/:type", adminOnly, ctrl.Create)
	resume.Put("/:type/:id", adminOnly, ctrl.Update)
	resume.Delete("/:type/:id", adminOnly, ctrl.Delete)

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

func TestUnknownResumeType(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/resume/awards", nil, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/resume/awards", fiber.Map{"name": "x"}, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateEducation(t *testing.T) {
	app, db := newTestApp(t)

	payload := fiber.Map{
		"institution": "State University",
		"degree":      "BSc",
		"field":       "Computer Science",
		"startDate":   "2015-09-01",
		"endDate":     "2019-06-30",
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/resume/education", payload, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored model.EducationModel
	require.NoError(t, db.First(&stored).Error)
	require.Equal(t, "State University", stored.EducationInstitution)
	require.Equal(t, 2015, stored.EducationStartDate.Year())
	require.Nil(t, stored.EducationGPA)
}

func TestCreateSkillRejectsLevelOutOfRange(t *testing.T) {
	app, db := newTestApp(t)

	tests := []struct {
		name  string
		level int
	}{
		{"above range", 150},
		{"below range", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := fiber.Map{"name": "Go", "category": "Backend", "level": tt.level}
			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/resume/skill", payload, adminCookie(t)))
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.SkillModel{}).Count(&count).Error)
	require.Zero(t, count, "out-of-range levels must never reach the store")
}

func TestCreateSkillAcceptsBoundaryLevels(t *testing.T) {
	app, db := newTestApp(t)

	for _, level := range []int{0, 100} {
		payload := fiber.Map{"name": fmt.Sprintf("Skill %d", level), "category": "Backend", "level": level}
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/resume/skill", payload, adminCookie(t)))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&model.SkillModel{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestCreateExperienceCurrentDropsEndDate(t *testing.T) {
	app, db := newTestApp(t)

	payload := fiber.Map{
		"title":       "Backend Engineer",
		"company":     "Acme",
		"location":    "Remote",
		"startDate":   "2022-01-10",
		"endDate":     "2023-01-10",
		"current":     true,
		"description": "Building APIs",
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/resume/experience", payload, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored model.ExperienceModel
	require.NoError(t, db.First(&stored).Error)
	require.True(t, stored.ExperienceCurrent)
	require.Nil(t, stored.ExperienceEndDate, "current position must not keep an end date")
}

func TestCreateExperienceRequiresEndDateWhenNotCurrent(t *testing.T) {
	app, _ := newTestApp(t)

	payload := fiber.Map{
		"title":       "Backend Engineer",
		"company":     "Acme",
		"location":    "Remote",
		"startDate":   "2020-01-10",
		"current":     false,
		"description": "Building APIs",
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/resume/experience", payload, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAllOnlyReturnsRequestedType(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&model.SkillModel{SkillName: "Go", SkillCategory: "Backend", SkillLevel: 90}).Error)
	require.NoError(t, db.Create(&model.CertificationModel{
		CertificationName:      "Cloud Architect",
		CertificationIssuer:    "Example Org",
		CertificationIssueDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/resume/skill", nil, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Go", body.Data[0]["name"])
}

func TestDeleteResumeEntry(t *testing.T) {
	app, db := newTestApp(t)

	skill := model.SkillModel{SkillName: "Go", SkillCategory: "Backend", SkillLevel: 90}
	require.NoError(t, db.Create(&skill).Error)

	path := "/api/resume/skill/" + skill.SkillID.String()
	resp, err := app.Test(jsonRequest(http.MethodDelete, path, nil, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodDelete, path, nil, adminCookie(t)))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
