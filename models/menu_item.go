package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem represents a purchasable dish on the menu
type MenuItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `gorm:"not null;check:price > 0" json:"price"`
	Rating      int            `json:"rating"`
	Description string         `gorm:"type:text" json:"description"`
	Category    *string        `gorm:"index" json:"category"`       // nullable, free text
	ImagePath   string         `json:"image_path"`                  // external URL or storage key
	ImageURL    string         `gorm:"-" json:"image_url,omitempty"` // computed, resolved per request
	Active      bool           `gorm:"not null;default:true" json:"active"` // visibility toggle, not a hard delete
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
