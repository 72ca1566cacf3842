package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialModel struct {
	TestimonialID        uuid.UUID `gorm:"column:testimonial_id;primaryKey;type:uuid" json:"id"`
	TestimonialName      string    `gorm:"column:testimonial_name;type:varchar(100);not null" json:"name"`
	TestimonialLocation  string    `gorm:"column:testimonial_location;type:varchar(150);not null" json:"location"`
	TestimonialContent   string    `gorm:"column:testimonial_content;type:text;not null" json:"content"`
	TestimonialRating    int       `gorm:"column:testimonial_rating;not null" json:"rating"`
	TestimonialCreatedAt time.Time `gorm:"column:testimonial_created_at;autoCreateTime" json:"createdAt"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestimonialID == uuid.Nil {
		m.TestimonialID = uuid.New()
	}
	return nil
}
