package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/middleware"
	"github.com/sushibar/sushi-bar-api/models"
)

// ToggleAdminRequest represents the request body for granting or revoking the admin flag
type ToggleAdminRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// AdminListUsers handles GET /api/v1/admin/users
func AdminListUsers(c *gin.Context) {
	db := config.GetDB()

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		respondDatabaseError(c, "Failed to load users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}

// AdminToggleAdmin handles POST /api/v1/admin/users/toggle_admin/:user_id.
// An admin cannot change their own flag.
func AdminToggleAdmin(c *gin.Context) {
	callerID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req ToggleAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "is_admin is required",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, "id = ?", c.Param("user_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "User not found",
			},
		})
		return
	}

	if user.ID == callerID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SELF_DEMOTION",
				"message": "You cannot change your own admin rights",
			},
		})
		return
	}

	user.IsAdmin = *req.IsAdmin
	if err := db.Save(&user).Error; err != nil {
		respondDatabaseError(c, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin rights updated",
		"data":    user,
	})
}

// AdminDeleteUser handles POST /api/v1/admin/users/delete/:user_id. The
// user's order and reservation rows are deleted before the user row, inside
// one transaction, so no orphaned references remain. An admin cannot delete
// their own account.
func AdminDeleteUser(c *gin.Context) {
	callerID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, "id = ?", c.Param("user_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "User not found",
			},
		})
		return
	}

	if user.ID == callerID {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SELF_DELETION",
				"message": "You cannot delete your own account",
			},
		})
		return
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if txErr != nil {
		respondDatabaseError(c, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User " + user.Username + " deleted",
	})
}
