package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"folio_backend/internals/features/settings/dto"
	"folio_backend/internals/features/settings/model"
	helper "folio_backend/internals/helpers"
)

var validateSettings = validator.New()

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// =======================
// Get Settings (singleton, first row)
// =======================
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	var settings model.SettingsModel
	if err := ctrl.DB.
		Order("settings_created_at ASC").
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve settings")
	}
	return helper.JsonOK(c, "ok", settings)
}

// =======================
// Upsert Settings
// =======================
func (ctrl *SettingsController) UpsertSettings(c *fiber.Ctx) error {
	var body dto.UpsertSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSettings.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var settings model.SettingsModel
	err := ctrl.DB.Order("settings_created_at ASC").First(&settings).Error
	switch {
	case err == nil:
		body.ApplyTo(&settings)
		if err := ctrl.DB.Save(&settings).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update settings")
		}
		return helper.JsonUpdated(c, "Settings updated", settings)
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = body.ToModel()
		if err := ctrl.DB.Create(&settings).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create settings")
		}
		return helper.JsonCreated(c, "Settings created", settings)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve settings")
	}
}
