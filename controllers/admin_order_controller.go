package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/models"
)

// UpdateOrderStatusRequest represents the request body for an admin status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminListOrders handles GET /api/v1/admin/orders - every order line in the
// system, newest first
func AdminListOrders(c *gin.Context) {
	db := config.GetDB()

	var orders []models.Order
	if err := db.Preload("MenuItem").Preload("User").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		respondDatabaseError(c, "Failed to load orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// AdminUpdateOrderStatus handles POST /api/v1/admin/orders/update_status/:order_id.
// Any recognized status can be set from any state; an unrecognized name
// leaves the order untouched.
func AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Status is required",
				"details": err.Error(),
			},
		})
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_STATUS",
				"message": "Unrecognized order status: " + req.Status,
			},
		})
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("order_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	order.Status = req.Status
	if err := db.Save(&order).Error; err != nil {
		respondDatabaseError(c, "Failed to update order status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
		"data":    order,
	})
}

// AdminCancelOrder handles POST /api/v1/admin/orders/cancel/:order_id -
// force-sets CANCELLED from any state. Unlike user cancellation the row is
// kept, preserving history.
func AdminCancelOrder(c *gin.Context) {
	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("order_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	order.Status = models.OrderStatusCancelled
	if err := db.Save(&order).Error; err != nil {
		respondDatabaseError(c, "Failed to cancel order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled by admin",
		"data":    order,
	})
}
