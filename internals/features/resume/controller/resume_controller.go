package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"folio_backend/internals/features/resume/dto"
	"folio_backend/internals/features/resume/model"
	helper "folio_backend/internals/helpers"
)

var validateResume = validator.New()

// ResumeController serves the four resume sub-types behind one route
// group. The path discriminator is parsed into dto.Kind once; every
// switch below is exhaustive over that closed set.
type ResumeController struct {
	DB *gorm.DB
}

func NewResumeController(db *gorm.DB) *ResumeController {
	return &ResumeController{DB: db}
}

func (ctrl *ResumeController) kind(c *fiber.Ctx) (dto.Kind, error) {
	return dto.ParseKind(c.Params("type"))
}

// =======================
// Get All (per sub-type, documented default order)
// =======================
func (ctrl *ResumeController) GetAll(c *fiber.Ctx) error {
	kind, err := ctrl.kind(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	switch kind {
	case dto.KindEducation:
		var rows []model.EducationModel
		if err := ctrl.DB.Order("education_start_date DESC").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve education entries")
		}
		return helper.JsonList(c, rows, nil)
	case dto.KindCertification:
		var rows []model.CertificationModel
		if err := ctrl.DB.Order("certification_issue_date DESC").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve certifications")
		}
		return helper.JsonList(c, rows, nil)
	case dto.KindSkill:
		var rows []model.SkillModel
		if err := ctrl.DB.Order("skill_category ASC").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve skills")
		}
		return helper.JsonList(c, rows, nil)
	case dto.KindExperience:
		var rows []model.ExperienceModel
		if err := ctrl.DB.Order("experience_start_date DESC").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve experience entries")
		}
		return helper.JsonList(c, rows, nil)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resume type")
}

// =======================
// Create (per sub-type)
// =======================
func (ctrl *ResumeController) Create(c *fiber.Ctx) error {
	kind, err := ctrl.kind(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	switch kind {
	case dto.KindEducation:
		var body dto.CreateEducationRequest
		if err := bindAndValidate(c, &body); err != nil {
			return respondBindError(c, err)
		}
		row := body.ToModel()
		if err := ctrl.DB.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create education entry")
		}
		return helper.JsonCreated(c, "Education entry created", row)
	case dto.KindCertification:
		var body dto.CreateCertificationRequest
		if err := bindAndValidate(c, &body); err != nil {
			return respondBindError(c, err)
		}
		row := body.ToModel()
		if err := ctrl.DB.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create certification")
		}
		return helper.JsonCreated(c, "Certification created", row)
	case dto.KindSkill:
		var body dto.CreateSkillRequest
		if err := bindAndValidate(c, &body); err != nil {
			return respondBindError(c, err)
		}
		row := body.ToModel()
		if err := ctrl.DB.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create skill")
		}
		return helper.JsonCreated(c, "Skill created", row)
	case dto.KindExperience:
		var body dto.CreateExperienceRequest
		if err := bindAndValidate(c, &body); err != nil {
			return respondBindError(c, err)
		}
		row := body.ToModel()
		if err := ctrl.DB.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create experience entry")
		}
		return helper.JsonCreated(c, "Experience entry created", row)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resume type")
}

// =======================
// Get by ID (per sub-type)
// =======================
func (ctrl *ResumeController) GetByID(c *fiber.Ctx) error {
	kind, err := ctrl.kind(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id := c.Params("id")

	switch kind {
	case dto.KindEducation:
		var row model.EducationModel
		return ctrl.respondFirst(c, ctrl.DB.First(&row, "education_id = ?", id).Error, &row, "Education entry")
	case dto.KindCertification:
		var row model.CertificationModel
		return ctrl.respondFirst(c, ctrl.DB.First(&row, "certification_id = ?", id).Error, &row, "Certification")
	case dto.KindSkill:
		var row model.SkillModel
		return ctrl.respondFirst(c, ctrl.DB.First(&row, "skill_id = ?", id).Error, &row, "Skill")
	case dto.KindExperience:
		var row model.ExperienceModel
		return ctrl.respondFirst(c, ctrl.DB.First(&row, "experience_id = ?", id).Error, &row, "Experience entry")
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resume type")
}

// =======================
// Update (per sub-type, PUT replace)
// =======================
func (ctrl *ResumeController) Update(c *fiber.Ctx) error {
	kind, err := ctrl.kind(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id := c.Params("id")

	switch kind {
	case dto.KindEducation:
		var body dto.CreateEducationRequest
		if err := bindAndValidate(c, &body); err != nil {
			return respondBindError(c, err)
		}
		var row model.EducationModel
		if err := ctrl.DB.First(&row, "education_id = ?", id).Error; err != nil {
			return ctrl.notFoundOr500(c, err, "Education entry")
		}
		body.ApplyTo(&row)
		if err := ctrl.DB.Save(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update education entry")
		}
		return helper.JsonUpdated(c, "Education entry updated", row)
	case dto.KindCertification:
		var body dto.CreateCertificationRequest
		if err := bindAndValidate(c, &body); err != nil {
			return respondBindError(c, err)
		}
		var row model.CertificationModel
		if err := ctrl.DB.First(&row, "certification_id = ?", id).Error; err != nil {
			return ctrl.notFoundOr500(c, err, "Certification")
		}
		body.ApplyTo(&row)
		if err := ctrl.DB.Save(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update certification")
		}
		return helper.JsonUpdated(c, "Certification updated", row)
	case dto.KindSkill:
		var body dto.CreateSkillRequest
		if err := bindAndValidate(c, &body); err != nil {
			return respondBindError(c, err)
		}
		var row model.SkillModel
		if err := ctrl.DB.First(&row, "skill_id = ?", id).Error; err != nil {
			return ctrl.notFoundOr500(c, err, "Skill")
		}
		body.ApplyTo(&row)
		if err := ctrl.DB.Save(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update skill")
		}
		return helper.JsonUpdated(c, "Skill updated", row)
	case dto.KindExperience:
		var body dto.CreateExperienceRequest
		if err := bindAndValidate(c, &body); err != nil {
			return respondBindError(c, err)
		}
		var row model.ExperienceModel
		if err := ctrl.DB.First(&row, "experience_id = ?", id).Error; err != nil {
			return ctrl.notFoundOr500(c, err, "Experience entry")
		}
		body.ApplyTo(&row)
		if err := ctrl.DB.Save(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update experience entry")
		}
		return helper.JsonUpdated(c, "Experience entry updated", row)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resume type")
}

// =======================
// Delete (per sub-type)
// =======================
func (ctrl *ResumeController) Delete(c *fiber.Ctx) error {
	kind, err := ctrl.kind(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id := c.Params("id")

	var res *gorm.DB
	var label string
	switch kind {
	case dto.KindEducation:
		res = ctrl.DB.Delete(&model.EducationModel{}, "education_id = ?", id)
		label = "Education entry"
	case dto.KindCertification:
		res = ctrl.DB.Delete(&model.CertificationModel{}, "certification_id = ?", id)
		label = "Certification"
	case dto.KindSkill:
		res = ctrl.DB.Delete(&model.SkillModel{}, "skill_id = ?", id)
		label = "Skill"
	case dto.KindExperience:
		res = ctrl.DB.Delete(&model.ExperienceModel{}, "experience_id = ?", id)
		label = "Experience entry"
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resume type")
	}

	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete "+label)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, label+" not found")
	}
	return helper.JsonDeleted(c, label+" deleted", fiber.Map{"id": id})
}

// =============================
// utils
// =============================

// bindAndValidate parses and validates without writing a response;
// callers map the returned error through respondBindError.
func bindAndValidate(c *fiber.Ctx, body any) error {
	if err := c.BodyParser(body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResume.Struct(body); err != nil {
		return err
	}
	return nil
}

func respondBindError(c *fiber.Ctx, err error) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return helper.JsonValidationError(c, err)
	}
	return helper.FromFiberError(c, err)
}

func (ctrl *ResumeController) respondFirst(c *fiber.Ctx, err error, row any, label string) error {
	if err != nil {
		return ctrl.notFoundOr500(c, err, label)
	}
	return helper.JsonOK(c, "ok", row)
}

func (ctrl *ResumeController) notFoundOr500(c *fiber.Ctx, err error, label string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, label+" not found")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve "+label)
}
