package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"folio_backend/internals/features/resume/model"
)

// DateLayout is the wire format for all resume dates.
const DateLayout = "2006-01-02"

// ============================
// Resume kind (path discriminator)
// ============================

// Kind is the closed set of resume sub-types. Path dispatch parses into
// Kind once; everything downstream switches exhaustively.
type Kind string

const (
	KindEducation     Kind = "education"
	KindCertification Kind = "certification"
	KindSkill         Kind = "skill"
	KindExperience    Kind = "experience"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindEducation, KindCertification, KindSkill, KindExperience:
		return Kind(s), nil
	default:
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid resume type")
	}
}

// ============================
// Request DTOs
// ============================

type CreateEducationRequest struct {
	Institution string  `json:"institution" validate:"required"`
	Degree      string  `json:"degree" validate:"required"`
	Field       string  `json:"field" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	GPA         *string `json:"gpa" validate:"omitempty"`
}

func (r CreateEducationRequest) ToModel() model.EducationModel {
	m := model.EducationModel{}
	r.ApplyTo(&m)
	return m
}

func (r CreateEducationRequest) ApplyTo(m *model.EducationModel) {
	m.EducationInstitution = r.Institution
	m.EducationDegree = r.Degree
	m.EducationField = r.Field
	m.EducationStartDate = mustDate(r.StartDate)
	m.EducationEndDate = mustDate(r.EndDate)
	m.EducationGPA = r.GPA
}

type CreateCertificationRequest struct {
	Name         string  `json:"name" validate:"required"`
	Issuer       string  `json:"issuer" validate:"required"`
	IssueDate    string  `json:"issueDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate   *string `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	CredentialID *string `json:"credentialId" validate:"omitempty"`
}

func (r CreateCertificationRequest) ToModel() model.CertificationModel {
	m := model.CertificationModel{}
	r.ApplyTo(&m)
	return m
}

func (r CreateCertificationRequest) ApplyTo(m *model.CertificationModel) {
	m.CertificationName = r.Name
	m.CertificationIssuer = r.Issuer
	m.CertificationIssueDate = mustDate(r.IssueDate)
	m.CertificationExpiryDate = optionalDate(r.ExpiryDate)
	m.CertificationCredentialID = r.CredentialID
}

type CreateSkillRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Level    *int   `json:"level" validate:"required,min=0,max=100"`
}

func (r CreateSkillRequest) ToModel() model.SkillModel {
	m := model.SkillModel{}
	r.ApplyTo(&m)
	return m
}

func (r CreateSkillRequest) ApplyTo(m *model.SkillModel) {
	m.SkillName = r.Name
	m.SkillCategory = r.Category
	if r.Level != nil {
		m.SkillLevel = *r.Level
	}
}

// EndDate is required exactly when Current is false; while Current is
// true any submitted end date is dropped.
type CreateExperienceRequest struct {
	Title       string  `json:"title" validate:"required"`
	Company     string  `json:"company" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"endDate" validate:"required_if=Current false,omitempty,datetime=2006-01-02"`
	Current     bool    `json:"current"`
	Description string  `json:"description" validate:"required"`
}

func (r CreateExperienceRequest) ToModel() model.ExperienceModel {
	m := model.ExperienceModel{}
	r.ApplyTo(&m)
	return m
}

func (r CreateExperienceRequest) ApplyTo(m *model.ExperienceModel) {
	m.ExperienceTitle = r.Title
	m.ExperienceCompany = r.Company
	m.ExperienceLocation = r.Location
	m.ExperienceStartDate = mustDate(r.StartDate)
	m.ExperienceCurrent = r.Current
	if r.Current {
		m.ExperienceEndDate = nil
	} else {
		m.ExperienceEndDate = optionalDate(r.EndDate)
	}
	m.ExperienceDescription = r.Description
}

// mustDate is only called after validator has checked the layout.
func mustDate(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

func optionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := mustDate(*s)
	return &t
}
