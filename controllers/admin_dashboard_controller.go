package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/models"
)

// AdminDashboard handles GET /api/v1/admin/dashboard - headline counts for
// the back office landing page
func AdminDashboard(c *gin.Context) {
	db := config.GetDB()

	var totalOrders, pendingOrders, activeMenuItems int64
	if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		respondDatabaseError(c, "Failed to load dashboard counts")
		return
	}
	if err := db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&pendingOrders).Error; err != nil {
		respondDatabaseError(c, "Failed to load dashboard counts")
		return
	}
	if err := db.Model(&models.MenuItem{}).
		Where("active = ?", true).
		Count(&activeMenuItems).Error; err != nil {
		respondDatabaseError(c, "Failed to load dashboard counts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_orders":      totalOrders,
			"pending_orders":    pendingOrders,
			"active_menu_items": activeMenuItems,
		},
	})
}
