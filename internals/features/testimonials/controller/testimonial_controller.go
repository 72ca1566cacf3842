package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"folio_backend/internals/features/testimonials/dto"
	"folio_backend/internals/features/testimonials/model"
	helper "folio_backend/internals/helpers"
)

var validateTestimonial = validator.New()

type TestimonialController struct {
	DB *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// =======================
// Create Testimonial
// =======================
func (ctrl *TestimonialController) CreateTestimonial(c *fiber.Ctx) error {
	var body dto.CreateTestimonialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTestimonial.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	testimonial := body.ToModel()
	if err := ctrl.DB.Create(&testimonial).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create testimonial")
	}

	return helper.JsonCreated(c, "Testimonial created", testimonial)
}

// =======================
// Get All Testimonials
// =======================
func (ctrl *TestimonialController) GetAllTestimonials(c *fiber.Ctx) error {
	var testimonials []model.TestimonialModel
	if err := ctrl.DB.
		Order("testimonial_created_at DESC").
		Find(&testimonials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve testimonials")
	}
	return helper.JsonList(c, testimonials, nil)
}

// =======================
// Get Testimonial by ID
// =======================
func (ctrl *TestimonialController) GetTestimonialByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var testimonial model.TestimonialModel
	if err := ctrl.DB.First(&testimonial, "testimonial_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve testimonial")
	}
	return helper.JsonOK(c, "ok", testimonial)
}

// =======================
// Update Testimonial
// =======================
func (ctrl *TestimonialController) UpdateTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.CreateTestimonialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTestimonial.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var testimonial model.TestimonialModel
	if err := ctrl.DB.First(&testimonial, "testimonial_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve testimonial")
	}

	body.ApplyTo(&testimonial)
	if err := ctrl.DB.Save(&testimonial).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update testimonial")
	}

	return helper.JsonUpdated(c, "Testimonial updated", testimonial)
}

// =======================
// Delete Testimonial
// =======================
func (ctrl *TestimonialController) DeleteTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.TestimonialModel{}, "testimonial_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete testimonial")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Testimonial not found")
	}

	return helper.JsonDeleted(c, "Testimonial deleted", fiber.Map{"id": id})
}
