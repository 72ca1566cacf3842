package dto

import (
	"folio_backend/internals/features/profile/model"
)

// ============================
// Upsert Request DTO
// ============================

type UpsertProfileRequest struct {
	Name         string  `json:"name" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Bio          string  `json:"bio" validate:"required"`
	Image        *string `json:"image" validate:"omitempty,url"`
	GithubURL    *string `json:"githubUrl" validate:"omitempty,url"`
	LinkedinURL  *string `json:"linkedinUrl" validate:"omitempty,url"`
	FacebookURL  *string `json:"facebookUrl" validate:"omitempty,url"`
	InstagramURL *string `json:"instagramUrl" validate:"omitempty,url"`
	TwitterURL   *string `json:"twitterUrl" validate:"omitempty,url"`
	Whatsapp     *string `json:"whatsapp" validate:"omitempty"`
	WebsiteURL   *string `json:"websiteUrl" validate:"omitempty,url"`
}

func (r UpsertProfileRequest) ToModel() model.ProfileModel {
	m := model.ProfileModel{}
	r.ApplyTo(&m)
	return m
}

func (r UpsertProfileRequest) ApplyTo(m *model.ProfileModel) {
	m.ProfileName = r.Name
	m.ProfileTitle = r.Title
	m.ProfileBio = r.Bio
	m.ProfileImage = r.Image
	m.ProfileGithubURL = r.GithubURL
	m.ProfileLinkedinURL = r.LinkedinURL
	m.ProfileFacebookURL = r.FacebookURL
	m.ProfileInstagramURL = r.InstagramURL
	m.ProfileTwitterURL = r.TwitterURL
	m.ProfileWhatsapp = r.Whatsapp
	m.ProfileWebsiteURL = r.WebsiteURL
}
