package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceModel struct {
	ServiceID          uuid.UUID `gorm:"column:service_id;primaryKey;type:uuid" json:"id"`
	ServiceTitle       string    `gorm:"column:service_title;type:varchar(150);not null" json:"title"`
	ServiceDescription string    `gorm:"column:service_description;type:text;not null" json:"description"`
	ServiceIcon        string    `gorm:"column:service_icon;type:varchar(50);not null" json:"icon"`
	ServiceCreatedAt   time.Time `gorm:"column:service_created_at;autoCreateTime" json:"createdAt"`
}

func (ServiceModel) TableName() string {
	return "services"
}

func (m *ServiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ServiceID == uuid.Nil {
		m.ServiceID = uuid.New()
	}
	return nil
}
