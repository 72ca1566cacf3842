package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"folio_backend/internals/features/profile/dto"
	"folio_backend/internals/features/profile/model"
	helper "folio_backend/internals/helpers"
)

var validateProfile = validator.New()

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// =======================
// Get Profile (singleton, first row)
// =======================
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	var profile model.ProfileModel
	if err := ctrl.DB.
		Order("profile_created_at ASC").
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve profile")
	}
	return helper.JsonOK(c, "ok", profile)
}

// =======================
// Upsert Profile
// =======================
// Resolves the "first save or edit" ambiguity server-side: updates the
// existing row when one exists, creates it otherwise. Never a second row.
func (ctrl *ProfileController) UpsertProfile(c *fiber.Ctx) error {
	var body dto.UpsertProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var profile model.ProfileModel
	err := ctrl.DB.Order("profile_created_at ASC").First(&profile).Error
	switch {
	case err == nil:
		body.ApplyTo(&profile)
		if err := ctrl.DB.Save(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
		return helper.JsonUpdated(c, "Profile updated", profile)
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = body.ToModel()
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create profile")
		}
		return helper.JsonCreated(c, "Profile created", profile)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve profile")
	}
}
