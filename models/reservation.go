package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation represents a table booking made by a user
type Reservation struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"` // foreign key to users table
	User        User           `gorm:"foreignKey:UserID" json:"-"`
	GuestName   string         `gorm:"not null" json:"guest_name"`
	Guests      int            `gorm:"not null;check:guests > 0" json:"guests"`
	ReservedFor time.Time      `gorm:"not null" json:"reserved_for"`
	Note        string         `gorm:"type:text" json:"note"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservations"
}
