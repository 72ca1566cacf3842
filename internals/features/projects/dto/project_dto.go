package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"folio_backend/internals/features/projects/model"
)

// ============================
// Create / Update Request DTO
// ============================

// Images must be non-empty at create time; every entry is an already
// uploaded URL (the upload completes before the record is saved).
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"required,min=1,dive,required"`
	LiveURL     *string  `json:"liveUrl" validate:"omitempty,url"`
	GithubURL   *string  `json:"githubUrl" validate:"omitempty,url"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
}

func (r CreateProjectRequest) ToModel() model.ProjectModel {
	m := model.ProjectModel{
		ProjectTitle:       r.Title,
		ProjectDescription: r.Description,
		ProjectLiveURL:     r.LiveURL,
		ProjectGithubURL:   r.GithubURL,
	}
	m.ProjectImages = toJSON(r.Images)
	m.ProjectTags = toJSON(r.Tags)
	return m
}

func (r CreateProjectRequest) ApplyTo(m *model.ProjectModel) {
	m.ProjectTitle = r.Title
	m.ProjectDescription = r.Description
	m.ProjectImages = toJSON(r.Images)
	m.ProjectLiveURL = r.LiveURL
	m.ProjectGithubURL = r.GithubURL
	m.ProjectTags = toJSON(r.Tags)
}

func toJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}
