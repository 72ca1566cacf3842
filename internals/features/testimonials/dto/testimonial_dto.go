package dto

import (
	"folio_backend/internals/features/testimonials/model"
)

// ============================
// Create / Update Request DTO
// ============================

type CreateTestimonialRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
}

func (r CreateTestimonialRequest) ToModel() model.TestimonialModel {
	return model.TestimonialModel{
		TestimonialName:     r.Name,
		TestimonialLocation: r.Location,
		TestimonialContent:  r.Content,
		TestimonialRating:   r.Rating,
	}
}

func (r CreateTestimonialRequest) ApplyTo(m *model.TestimonialModel) {
	m.TestimonialName = r.Name
	m.TestimonialLocation = r.Location
	m.TestimonialContent = r.Content
	m.TestimonialRating = r.Rating
}
