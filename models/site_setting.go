package models

import (
	"time"
)

// Recognized site setting names. The settings table holds nothing else;
// writes for any other name are dropped at the handler.
var RecognizedSettingNames = []string{
	"main_background_image",
	"menu_background_image",
	"admin_panel_background_image",
	"cart_background_image",
	"order_history_background_image",
	"logo_image",
	"mini_logo_image",
}

// IsRecognizedSettingName reports whether name is one of the fixed setting keys
func IsRecognizedSettingName(name string) bool {
	for _, n := range RecognizedSettingNames {
		if n == name {
			return true
		}
	}
	return false
}

// SiteSetting is a single key/value row of site appearance configuration.
// Globally shared, last-write-wins.
type SiteSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingName  string    `gorm:"uniqueIndex;not null" json:"setting_name"`
	SettingValue string    `json:"setting_value"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the SiteSetting model
func (SiteSetting) TableName() string {
	return "site_settings"
}
