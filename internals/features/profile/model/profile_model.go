package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileModel is a singleton: at most one row is meaningfully used.
type ProfileModel struct {
	ProfileID           uuid.UUID `gorm:"column:profile_id;primaryKey;type:uuid" json:"id"`
	ProfileName         string    `gorm:"column:profile_name;type:varchar(100);not null" json:"name"`
	ProfileTitle        string    `gorm:"column:profile_title;type:varchar(150);not null" json:"title"`
	ProfileBio          string    `gorm:"column:profile_bio;type:text;not null" json:"bio"`
	ProfileImage        *string   `gorm:"column:profile_image;type:text" json:"image"`
	ProfileGithubURL    *string   `gorm:"column:profile_github_url;type:text" json:"githubUrl"`
	ProfileLinkedinURL  *string   `gorm:"column:profile_linkedin_url;type:text" json:"linkedinUrl"`
	ProfileFacebookURL  *string   `gorm:"column:profile_facebook_url;type:text" json:"facebookUrl"`
	ProfileInstagramURL *string   `gorm:"column:profile_instagram_url;type:text" json:"instagramUrl"`
	ProfileTwitterURL   *string   `gorm:"column:profile_twitter_url;type:text" json:"twitterUrl"`
	ProfileWhatsapp     *string   `gorm:"column:profile_whatsapp;type:varchar(30)" json:"whatsapp"`
	ProfileWebsiteURL   *string   `gorm:"column:profile_website_url;type:text" json:"websiteUrl"`
	ProfileCreatedAt    time.Time `gorm:"column:profile_created_at;autoCreateTime" json:"createdAt"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (m *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProfileID == uuid.Nil {
		m.ProfileID = uuid.New()
	}
	return nil
}
