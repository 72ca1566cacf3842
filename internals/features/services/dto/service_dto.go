package dto

import (
	"folio_backend/internals/features/services/model"
)

// ============================
// Create / Update Request DTO
// ============================

type CreateServiceRequest struct {
	Title       string `json:"title" validate:"required,min=2"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
}

func (r CreateServiceRequest) ToModel() model.ServiceModel {
	return model.ServiceModel{
		ServiceTitle:       r.Title,
		ServiceDescription: r.Description,
		ServiceIcon:        r.Icon,
	}
}

func (r CreateServiceRequest) ApplyTo(m *model.ServiceModel) {
	m.ServiceTitle = r.Title
	m.ServiceDescription = r.Description
	m.ServiceIcon = r.Icon
}
