package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"folio_backend/internals/features/projects/dto"
	"folio_backend/internals/features/projects/model"
	helper "folio_backend/internals/helpers"
)

var validateProject = validator.New()

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

// =======================
// Create Project
// =======================
func (ctrl *ProjectController) CreateProject(c *fiber.Ctx) error {
	var body dto.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProject.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	project := body.ToModel()
	if err := ctrl.DB.Create(&project).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create project")
	}

	return helper.JsonCreated(c, "Project created", project)
}

// =======================
// Get All Projects
// =======================
func (ctrl *ProjectController) GetAllProjects(c *fiber.Ctx) error {
	var projects []model.ProjectModel
	if err := ctrl.DB.
		Order("project_created_at DESC").
		Find(&projects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve projects")
	}
	return helper.JsonList(c, projects, nil)
}

// =======================
// Get Project by ID
// =======================
func (ctrl *ProjectController) GetProjectByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var project model.ProjectModel
	if err := ctrl.DB.First(&project, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve project")
	}
	return helper.JsonOK(c, "ok", project)
}

// =======================
// Update Project
// =======================
func (ctrl *ProjectController) UpdateProject(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProject.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var project model.ProjectModel
	if err := ctrl.DB.First(&project, "project_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve project")
	}

	body.ApplyTo(&project)
	if err := ctrl.DB.Save(&project).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update project")
	}

	return helper.JsonUpdated(c, "Project updated", project)
}

// =======================
// Delete Project
// =======================
func (ctrl *ProjectController) DeleteProject(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.ProjectModel{}, "project_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete project")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
	}

	return helper.JsonDeleted(c, "Project deleted", fiber.Map{"id": id})
}
