package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessageModel stores messages submitted via the public contact form.
// Only the read flag is ever mutated, and only by the admin.
type ContactMessageModel struct {
	ContactMessageID        uuid.UUID `gorm:"column:contact_message_id;primaryKey;type:uuid" json:"id"`
	ContactMessageName      string    `gorm:"column:contact_message_name;type:varchar(100);not null" json:"name"`
	ContactMessageEmail     string    `gorm:"column:contact_message_email;type:varchar(255);not null" json:"email"`
	ContactMessagePhone     *string   `gorm:"column:contact_message_phone;type:varchar(30)" json:"phone"`
	ContactMessageSubject   string    `gorm:"column:contact_message_subject;type:varchar(255);not null" json:"subject"`
	ContactMessageBody      string    `gorm:"column:contact_message_body;type:text;not null" json:"message"`
	ContactMessageRead      bool      `gorm:"column:contact_message_read;not null;default:false" json:"read"`
	ContactMessageCreatedAt time.Time `gorm:"column:contact_message_created_at;autoCreateTime" json:"createdAt"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactMessageID == uuid.Nil {
		m.ContactMessageID = uuid.New()
	}
	return nil
}
