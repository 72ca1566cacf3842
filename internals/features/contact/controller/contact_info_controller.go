package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"folio_backend/internals/features/contact/dto"
	"folio_backend/internals/features/contact/model"
	helper "folio_backend/internals/helpers"
)

var validateContact = validator.New()

type ContactInfoController struct {
	DB *gorm.DB
}

func NewContactInfoController(db *gorm.DB) *ContactInfoController {
	return &ContactInfoController{DB: db}
}

// =======================
// Get ContactInfo (singleton, first row)
// =======================
func (ctrl *ContactInfoController) GetContactInfo(c *fiber.Ctx) error {
	var info model.ContactInfoModel
	if err := ctrl.DB.
		Order("contact_info_created_at ASC").
		First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve contact info")
	}
	return helper.JsonOK(c, "ok", info)
}

// =======================
// Upsert ContactInfo
// =======================
func (ctrl *ContactInfoController) UpsertContactInfo(c *fiber.Ctx) error {
	var body dto.UpsertContactInfoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var info model.ContactInfoModel
	err := ctrl.DB.Order("contact_info_created_at ASC").First(&info).Error
	switch {
	case err == nil:
		body.ApplyTo(&info)
		if err := ctrl.DB.Save(&info).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update contact info")
		}
		return helper.JsonUpdated(c, "Contact info updated", info)
	case errors.Is(err, gorm.ErrRecordNotFound):
		info = body.ToModel()
		if err := ctrl.DB.Create(&info).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create contact info")
		}
		return helper.JsonCreated(c, "Contact info created", info)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve contact info")
	}
}
