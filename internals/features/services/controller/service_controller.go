package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"folio_backend/internals/features/services/dto"
	"folio_backend/internals/features/services/model"
	helper "folio_backend/internals/helpers"
)

var validateService = validator.New()

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// =======================
// Create Service
// =======================
func (ctrl *ServiceController) CreateService(c *fiber.Ctx) error {
	var body dto.CreateServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	service := body.ToModel()
	if err := ctrl.DB.Create(&service).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create service")
	}

	return helper.JsonCreated(c, "Service created", service)
}

// =======================
// Get All Services
// =======================
func (ctrl *ServiceController) GetAllServices(c *fiber.Ctx) error {
	var services []model.ServiceModel
	if err := ctrl.DB.
		Order("service_created_at DESC").
		Find(&services).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve services")
	}
	return helper.JsonList(c, services, nil)
}

// =======================
// Get Service by ID
// =======================
func (ctrl *ServiceController) GetServiceByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var service model.ServiceModel
	if err := ctrl.DB.First(&service, "service_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve service")
	}
	return helper.JsonOK(c, "ok", service)
}

// =======================
// Update Service
// =======================
func (ctrl *ServiceController) UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.CreateServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var service model.ServiceModel
	if err := ctrl.DB.First(&service, "service_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve service")
	}

	body.ApplyTo(&service)
	if err := ctrl.DB.Save(&service).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update service")
	}

	return helper.JsonUpdated(c, "Service updated", service)
}

// =======================
// Delete Service
// =======================
func (ctrl *ServiceController) DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.ServiceModel{}, "service_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete service")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
	}

	return helper.JsonDeleted(c, "Service deleted", fiber.Map{"id": id})
}
