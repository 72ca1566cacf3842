package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"folio_backend/internals/features/contact/dto"
	"folio_backend/internals/features/contact/model"
	"folio_backend/internals/features/contact/service"
	helper "folio_backend/internals/helpers"
)

var validateMessage = validator.New()

type ContactMessageController struct {
	DB     *gorm.DB
	Mailer *service.Mailer
}

func NewContactMessageController(db *gorm.DB, mailer *service.Mailer) *ContactMessageController {
	return &ContactMessageController{DB: db, Mailer: mailer}
}

// =======================
// Create Message (public contact form)
// =======================
// Persists the row first, then forwards it by mail. Mail failure is
// logged only: the visitor's message is already stored.
func (ctrl *ContactMessageController) CreateMessage(c *fiber.Ctx) error {
	var body dto.CreateContactMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMessage.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	message := body.ToModel()
	if err := ctrl.DB.Create(&message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save message")
	}

	if err := ctrl.Mailer.SendContactMessage(&message); err != nil {
		log.Printf("[WARN] message %s stored but mail not delivered", message.ContactMessageID)
	}

	return helper.JsonCreated(c, "Message sent", message)
}

// =======================
// Get All Messages (admin)
// =======================
func (ctrl *ContactMessageController) GetAllMessages(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ContactMessageModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var messages []model.ContactMessageModel
	if err := ctrl.DB.
		Order("contact_message_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve messages")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, messages, &pagination)
}

// =======================
// Get Message by ID (admin)
// =======================
func (ctrl *ContactMessageController) GetMessageByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var message model.ContactMessageModel
	if err := ctrl.DB.First(&message, "contact_message_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve message")
	}
	return helper.JsonOK(c, "ok", message)
}

// =======================
// Update Message read flag (admin, PATCH)
// =======================
func (ctrl *ContactMessageController) UpdateMessage(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateContactMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMessage.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var message model.ContactMessageModel
	if err := ctrl.DB.First(&message, "contact_message_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve message")
	}

	message.ContactMessageRead = *body.Read
	if err := ctrl.DB.Save(&message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}

	return helper.JsonUpdated(c, "Message updated", message)
}

// =======================
// Delete Message (admin)
// =======================
// Deleting an id that is already gone is a 404, never a silent success.
func (ctrl *ContactMessageController) DeleteMessage(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.ContactMessageModel{}, "contact_message_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}

	return helper.JsonDeleted(c, "Message deleted", fiber.Map{"id": id})
}
