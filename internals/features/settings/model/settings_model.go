package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsModel is a singleton.
type SettingsModel struct {
	SettingsID        uuid.UUID `gorm:"column:settings_id;primaryKey;type:uuid" json:"id"`
	SettingsLogoImage string    `gorm:"column:settings_logo_image;type:text;not null" json:"logo_image"`
	SettingsCopyright string    `gorm:"column:settings_copyright;type:varchar(255);not null" json:"copyright"`
	SettingsCreatedAt time.Time `gorm:"column:settings_created_at;autoCreateTime" json:"createdAt"`
}

func (SettingsModel) TableName() string {
	return "settings"
}

func (m *SettingsModel) BeforeCreate(tx *gorm.DB) error {
	if m.SettingsID == uuid.Nil {
		m.SettingsID = uuid.New()
	}
	return nil
}
