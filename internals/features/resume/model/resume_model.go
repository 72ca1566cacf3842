package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EducationModel struct {
	EducationID          uuid.UUID `gorm:"column:education_id;primaryKey;type:uuid" json:"id"`
	EducationInstitution string    `gorm:"column:education_institution;type:varchar(150);not null" json:"institution"`
	EducationDegree      string    `gorm:"column:education_degree;type:varchar(100);not null" json:"degree"`
	EducationField       string    `gorm:"column:education_field;type:varchar(150);not null" json:"field"`
	EducationStartDate   time.Time `gorm:"column:education_start_date;not null" json:"startDate"`
	EducationEndDate     time.Time `gorm:"column:education_end_date;not null" json:"endDate"`
	EducationGPA         *string   `gorm:"column:education_gpa;type:varchar(10)" json:"gpa"`
	EducationCreatedAt   time.Time `gorm:"column:education_created_at;autoCreateTime" json:"createdAt"`
}

func (EducationModel) TableName() string {
	return "educations"
}

func (m *EducationModel) BeforeCreate(tx *gorm.DB) error {
	if m.EducationID == uuid.Nil {
		m.EducationID = uuid.New()
	}
	return nil
}

type CertificationModel struct {
	CertificationID           uuid.UUID  `gorm:"column:certification_id;primaryKey;type:uuid" json:"id"`
	CertificationName         string     `gorm:"column:certification_name;type:varchar(150);not null" json:"name"`
	CertificationIssuer       string     `gorm:"column:certification_issuer;type:varchar(150);not null" json:"issuer"`
	CertificationIssueDate    time.Time  `gorm:"column:certification_issue_date;not null" json:"issueDate"`
	CertificationExpiryDate   *time.Time `gorm:"column:certification_expiry_date" json:"expiryDate"`
	CertificationCredentialID *string    `gorm:"column:certification_credential_id;type:varchar(150)" json:"credentialId"`
	CertificationCreatedAt    time.Time  `gorm:"column:certification_created_at;autoCreateTime" json:"createdAt"`
}

func (CertificationModel) TableName() string {
	return "certifications"
}

func (m *CertificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificationID == uuid.Nil {
		m.CertificationID = uuid.New()
	}
	return nil
}

type SkillModel struct {
	SkillID        uuid.UUID `gorm:"column:skill_id;primaryKey;type:uuid" json:"id"`
	SkillName      string    `gorm:"column:skill_name;type:varchar(100);not null" json:"name"`
	SkillCategory  string    `gorm:"column:skill_category;type:varchar(100);not null" json:"category"`
	SkillLevel     int       `gorm:"column:skill_level;not null" json:"level"`
	SkillCreatedAt time.Time `gorm:"column:skill_created_at;autoCreateTime" json:"createdAt"`
}

func (SkillModel) TableName() string {
	return "skills"
}

func (m *SkillModel) BeforeCreate(tx *gorm.DB) error {
	if m.SkillID == uuid.Nil {
		m.SkillID = uuid.New()
	}
	return nil
}

// ExperienceModel: end date is nullable and ignored while current is true.
// The literal "Present" is a rendering concern, never persisted.
type ExperienceModel struct {
	ExperienceID          uuid.UUID  `gorm:"column:experience_id;primaryKey;type:uuid" json:"id"`
	ExperienceTitle       string     `gorm:"column:experience_title;type:varchar(150);not null" json:"title"`
	ExperienceCompany     string     `gorm:"column:experience_company;type:varchar(150);not null" json:"company"`
	ExperienceLocation    string     `gorm:"column:experience_location;type:varchar(150);not null" json:"location"`
	ExperienceStartDate   time.Time  `gorm:"column:experience_start_date;not null" json:"startDate"`
	ExperienceEndDate     *time.Time `gorm:"column:experience_end_date" json:"endDate"`
	ExperienceCurrent     bool       `gorm:"column:experience_current;not null;default:false" json:"current"`
	ExperienceDescription string     `gorm:"column:experience_description;type:text;not null" json:"description"`
	ExperienceCreatedAt   time.Time  `gorm:"column:experience_created_at;autoCreateTime" json:"createdAt"`
}

func (ExperienceModel) TableName() string {
	return "experiences"
}

func (m *ExperienceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExperienceID == uuid.Nil {
		m.ExperienceID = uuid.New()
	}
	return nil
}
