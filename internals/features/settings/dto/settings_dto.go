package dto

import (
	"folio_backend/internals/features/settings/model"
)

type UpsertSettingsRequest struct {
	LogoImage string `json:"logo_image" validate:"required"`
	Copyright string `json:"copyright" validate:"required"`
}

func (r UpsertSettingsRequest) ToModel() model.SettingsModel {
	m := model.SettingsModel{}
	r.ApplyTo(&m)
	return m
}

func (r UpsertSettingsRequest) ApplyTo(m *model.SettingsModel) {
	m.SettingsLogoImage = r.LogoImage
	m.SettingsCopyright = r.Copyright
}
