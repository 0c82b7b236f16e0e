package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/middleware"
	"github.com/sushibar/sushi-bar-api/models"
)

// AddToCartRequest represents the request body for adding an item to the cart.
// Quantity defaults to 1 when omitted; negative values are rejected.
type AddToCartRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,gte=0"`
}

// UpdateCartRequest represents the request body for changing a cart line.
// Quantity 0 removes the line.
type UpdateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// AddToCart handles POST /api/v1/add_to_cart/:item_id - puts an active menu
// item into the caller's cart. A PENDING line for the same item is merged by
// incrementing its quantity; the total is recomputed from the item's current
// price either way.
func AddToCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Quantity must not be negative",
				"details": err.Error(),
			},
		})
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	db := config.GetDB()

	var order models.Order
	txErr := db.Transaction(func(tx *gorm.DB) error {
		var menuItem models.MenuItem
		if err := tx.Where("id = ? AND active = ?", c.Param("item_id"), true).First(&menuItem).Error; err != nil {
			return err
		}

		// Merge-on-add: one PENDING line per (user, item)
		err := tx.Where("user_id = ? AND menu_item_id = ? AND status = ?",
			userID, menuItem.ID, models.OrderStatusPending).First(&order).Error
		switch {
		case err == nil:
			order.Quantity += quantity
			order.TotalPrice = menuItem.Price * float64(order.Quantity)
			return tx.Save(&order).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			order = models.Order{
				UserID:     userID,
				MenuItemID: menuItem.ID,
				Quantity:   quantity,
				TotalPrice: menuItem.Price * float64(quantity),
				Status:     models.OrderStatusPending,
			}
			return tx.Create(&order).Error
		default:
			return err
		}
	})

	if errors.Is(txErr, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Menu item not found",
			},
		})
		return
	}
	if txErr != nil {
		respondDatabaseError(c, "Failed to add item to cart")
		return
	}

	if err := db.Preload("MenuItem").First(&order, order.ID).Error; err != nil {
		respondDatabaseError(c, "Failed to load cart line")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Item added to cart",
		"data":    order,
	})
}

// GetCart handles GET /api/v1/cart - lists the caller's PENDING lines with a running total
func GetCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	db := config.GetDB()
	var items []models.Order
	if err := db.Preload("MenuItem").
		Where("user_id = ? AND status = ?", userID, models.OrderStatusPending).
		Find(&items).Error; err != nil {
		respondDatabaseError(c, "Failed to load cart")
		return
	}

	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": items,
			"total": total,
		},
	})
}

// UpdateCart handles POST /api/v1/update_cart/:order_id - sets the quantity
// of a PENDING cart line. Quantity 0 removes the line; another user's line
// is reported as not found.
func UpdateCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Quantity is required",
				"details": err.Error(),
			},
		})
		return
	}
	quantity := *req.Quantity
	if quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Quantity must not be negative",
			},
		})
		return
	}

	db := config.GetDB()

	// Ownership check fails closed: another user's line looks like a missing one
	var order models.Order
	if err := db.Preload("MenuItem").
		Where("id = ? AND user_id = ? AND status = ?", c.Param("order_id"), userID, models.OrderStatusPending).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Cart line not found or not editable",
			},
		})
		return
	}

	if quantity == 0 {
		// Zero means removal, not an error
		if err := db.Delete(&order).Error; err != nil {
			respondDatabaseError(c, "Failed to remove cart line")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Item removed from cart",
		})
		return
	}

	order.Quantity = quantity
	order.TotalPrice = order.MenuItem.Price * float64(quantity)
	if err := db.Save(&order).Error; err != nil {
		respondDatabaseError(c, "Failed to update cart line")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Quantity updated",
		"data":    order,
	})
}

// Checkout handles POST /api/v1/checkout - confirms every PENDING line owned
// by the caller in one statement. With nothing pending it is a no-op.
func Checkout(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	db := config.GetDB()
	result := db.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, models.OrderStatusPending).
		Update("status", models.OrderStatusConfirmed)
	if result.Error != nil {
		respondDatabaseError(c, "Failed to check out")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order placed, awaiting confirmation",
		"data": gin.H{
			"confirmed_lines": result.RowsAffected,
		},
	})
}

// CancelOrder handles GET /api/v1/cancel_order/:order_id - removes one of the
// caller's PENDING lines. Confirmed lines and other users' lines cannot be
// cancelled here.
func CancelOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.Where("id = ? AND user_id = ? AND status = ?",
		c.Param("order_id"), userID, models.OrderStatusPending).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Order not found or not cancellable",
			},
		})
		return
	}

	// User cancellation of a pending cart line removes the row; admin
	// cancellation marks it CANCELLED instead (see AdminCancelOrder).
	if err := db.Delete(&order).Error; err != nil {
		respondDatabaseError(c, "Failed to cancel order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled",
	})
}

// OrderHistory handles GET /api/v1/order_history - all of the caller's order
// lines, newest first
func OrderHistory(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	db := config.GetDB()
	var orders []models.Order
	if err := db.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		respondDatabaseError(c, "Failed to load order history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": "Could not extract user information",
		},
	})
}

func respondDatabaseError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": message,
		},
	})
}
