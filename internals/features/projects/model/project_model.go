package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectModel keeps images (ordered URL list) and tags as JSON columns
// so the same schema works on Postgres and the SQLite test store.
type ProjectModel struct {
	ProjectID          uuid.UUID      `gorm:"column:project_id;primaryKey;type:uuid" json:"id"`
	ProjectTitle       string         `gorm:"column:project_title;type:varchar(150);not null" json:"title"`
	ProjectDescription string         `gorm:"column:project_description;type:text;not null" json:"description"`
	ProjectImages      datatypes.JSON `gorm:"column:project_images;not null" json:"images"`
	ProjectLiveURL     *string        `gorm:"column:project_live_url;type:text" json:"liveUrl"`
	ProjectGithubURL   *string        `gorm:"column:project_github_url;type:text" json:"githubUrl"`
	ProjectTags        datatypes.JSON `gorm:"column:project_tags" json:"tags"`
	ProjectCreatedAt   time.Time      `gorm:"column:project_created_at;autoCreateTime" json:"createdAt"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

func (m *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProjectID == uuid.Nil {
		m.ProjectID = uuid.New()
	}
	return nil
}
