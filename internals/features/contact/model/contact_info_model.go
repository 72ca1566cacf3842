package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactInfoModel is a singleton, separate from the profile.
type ContactInfoModel struct {
	ContactInfoID           uuid.UUID `gorm:"column:contact_info_id;primaryKey;type:uuid" json:"id"`
	ContactInfoName         string    `gorm:"column:contact_info_name;type:varchar(100);not null" json:"name"`
	ContactInfoTitle        string    `gorm:"column:contact_info_title;type:varchar(150);not null" json:"title"`
	ContactInfoEmail        string    `gorm:"column:contact_info_email;type:varchar(255);not null" json:"email"`
	ContactInfoPhone        *string   `gorm:"column:contact_info_phone;type:varchar(30)" json:"phone"`
	ContactInfoDescription  *string   `gorm:"column:contact_info_description;type:text" json:"description"`
	ContactInfoImage        *string   `gorm:"column:contact_info_image;type:text" json:"image"`
	ContactInfoGithubURL    *string   `gorm:"column:contact_info_github_url;type:text" json:"githubUrl"`
	ContactInfoLinkedinURL  *string   `gorm:"column:contact_info_linkedin_url;type:text" json:"linkedinUrl"`
	ContactInfoFacebookURL  *string   `gorm:"column:contact_info_facebook_url;type:text" json:"facebookUrl"`
	ContactInfoInstagramURL *string   `gorm:"column:contact_info_instagram_url;type:text" json:"instagramUrl"`
	ContactInfoTwitterURL   *string   `gorm:"column:contact_info_twitter_url;type:text" json:"twitterUrl"`
	ContactInfoCreatedAt    time.Time `gorm:"column:contact_info_created_at;autoCreateTime" json:"createdAt"`
}

func (ContactInfoModel) TableName() string {
	return "contact_infos"
}

func (m *ContactInfoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactInfoID == uuid.Nil {
		m.ContactInfoID = uuid.New()
	}
	return nil
}
