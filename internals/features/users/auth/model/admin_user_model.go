package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUserModel struct {
	AdminUserID        uuid.UUID `gorm:"column:admin_user_id;primaryKey;type:uuid" json:"id"`
	AdminUserName      string    `gorm:"column:admin_user_name;type:varchar(100);not null" json:"name"`
	AdminUserEmail     string    `gorm:"column:admin_user_email;type:varchar(255);uniqueIndex;not null" json:"email"`
	AdminUserPassword  string    `gorm:"column:admin_user_password;type:text;not null" json:"-"`
	AdminUserCreatedAt time.Time `gorm:"column:admin_user_created_at;autoCreateTime" json:"created_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}

func (m *AdminUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminUserID == uuid.Nil {
		m.AdminUserID = uuid.New()
	}
	return nil
}
