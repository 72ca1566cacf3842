package dto

import (
	"folio_backend/internals/features/contact/model"
)

// ============================
// ContactInfo upsert
// ============================

type UpsertContactInfoRequest struct {
	Name         string  `json:"name" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone" validate:"omitempty"`
	Description  *string `json:"description" validate:"omitempty"`
	Image        *string `json:"image" validate:"omitempty,url"`
	GithubURL    *string `json:"githubUrl" validate:"omitempty,url"`
	LinkedinURL  *string `json:"linkedinUrl" validate:"omitempty,url"`
	FacebookURL  *string `json:"facebookUrl" validate:"omitempty,url"`
	InstagramURL *string `json:"instagramUrl" validate:"omitempty,url"`
	TwitterURL   *string `json:"twitterUrl" validate:"omitempty,url"`
}

func (r UpsertContactInfoRequest) ToModel() model.ContactInfoModel {
	m := model.ContactInfoModel{}
	r.ApplyTo(&m)
	return m
}

func (r UpsertContactInfoRequest) ApplyTo(m *model.ContactInfoModel) {
	m.ContactInfoName = r.Name
	m.ContactInfoTitle = r.Title
	m.ContactInfoEmail = r.Email
	m.ContactInfoPhone = r.Phone
	m.ContactInfoDescription = r.Description
	m.ContactInfoImage = r.Image
	m.ContactInfoGithubURL = r.GithubURL
	m.ContactInfoLinkedinURL = r.LinkedinURL
	m.ContactInfoFacebookURL = r.FacebookURL
	m.ContactInfoInstagramURL = r.InstagramURL
	m.ContactInfoTwitterURL = r.TwitterURL
}

// ============================
// ContactMessage (public form)
// ============================

type CreateContactMessageRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty"`
	Subject string  `json:"subject" validate:"required"`
	Message string  `json:"message" validate:"required"`
}

func (r CreateContactMessageRequest) ToModel() model.ContactMessageModel {
	return model.ContactMessageModel{
		ContactMessageName:    r.Name,
		ContactMessageEmail:   r.Email,
		ContactMessagePhone:   r.Phone,
		ContactMessageSubject: r.Subject,
		ContactMessageBody:    r.Message,
	}
}

// PATCH body for the read flag, the only mutation a message supports.
type UpdateContactMessageRequest struct {
	Read *bool `json:"read" validate:"required"`
}
