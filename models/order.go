package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses. PENDING lines sit in the cart and stay mutable; CONFIRMED
// and later statuses are no longer user-editable; CANCELLED is terminal.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderStatuses lists every recognized status name, in pipeline order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus reports whether name is a recognized status name
func IsValidOrderStatus(name string) bool {
	for _, s := range OrderStatuses {
		if s == name {
			return true
		}
	}
	return false
}

// Order represents a single order line: one menu item with a quantity,
// owned by one user. A user's cart is the set of their PENDING lines.
type Order struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"` // foreign key to users table
	User       User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	MenuItemID uint           `gorm:"not null;index" json:"menu_item_id"` // foreign key to menu_items table
	MenuItem   MenuItem       `gorm:"foreignKey:MenuItemID" json:"menu_item"`
	Quantity   int            `gorm:"not null;check:quantity > 0" json:"quantity"`
	TotalPrice float64        `gorm:"not null" json:"total_price"` // unit price * quantity, recomputed on every mutation
	Status     string         `gorm:"not null;default:'PENDING'" json:"status"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
