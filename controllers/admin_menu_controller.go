package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/models"
	"github.com/sushibar/sushi-bar-api/services"
	"github.com/sushibar/sushi-bar-api/utils"
)

// MenuItemRequest represents the request body for creating or editing a menu item
type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Rating      int     `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Description string  `json:"description"`
	Category    *string `json:"category"`
	ImagePath   string  `json:"image_path"`
	Active      *bool   `json:"active"`
}

// AdminListMenuItems handles GET /api/v1/admin/menu - all menu items,
// inactive ones included
func AdminListMenuItems(c *gin.Context) {
	db := config.GetDB()

	var items []models.MenuItem
	if err := db.Find(&items).Error; err != nil {
		respondDatabaseError(c, "Failed to load menu items")
		return
	}

	resolveMenuImageURLs(items)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// AdminCreateMenuItem handles POST /api/v1/admin/menu
func AdminCreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Rating:      req.Rating,
		Description: req.Description,
		Category:    req.Category,
		ImagePath:   req.ImagePath,
		Active:      true,
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	db := config.GetDB()
	if err := db.Create(&item).Error; err != nil {
		respondDatabaseError(c, "Failed to create menu item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Menu item added",
		"data":    item,
	})
}

// AdminUpdateMenuItem handles PUT /api/v1/admin/menu/:item_id
func AdminUpdateMenuItem(c *gin.Context) {
	db := config.GetDB()

	var item models.MenuItem
	if err := db.First(&item, "id = ?", c.Param("item_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Menu item not found",
			},
		})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	item.Name = req.Name
	item.Price = req.Price
	item.Rating = req.Rating
	item.Description = req.Description
	item.Category = req.Category
	item.ImagePath = req.ImagePath
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := db.Save(&item).Error; err != nil {
		respondDatabaseError(c, "Failed to update menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item updated",
		"data":    item,
	})
}

// AdminDeleteMenuItem handles DELETE /api/v1/admin/menu/:item_id. The row is
// soft-deleted so historical order lines keep a valid reference.
func AdminDeleteMenuItem(c *gin.Context) {
	db := config.GetDB()

	var item models.MenuItem
	if err := db.First(&item, "id = ?", c.Param("item_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Menu item not found",
			},
		})
		return
	}

	if err := db.Delete(&item).Error; err != nil {
		respondDatabaseError(c, "Failed to delete menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item deleted",
	})
}

// AdminUploadMenuItemImage handles POST /api/v1/admin/menu/:item_id/image -
// multipart image upload stored through the image service; the storage key
// replaces the item's image path.
func AdminUploadMenuItemImage(c *gin.Context) {
	db := config.GetDB()

	var item models.MenuItem
	if err := db.First(&item, "id = ?", c.Param("item_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Menu item not found",
			},
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "An image file is required",
			},
		})
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "IMAGE_SERVICE_UNAVAILABLE",
				"message": "Image storage is not configured",
			},
		})
		return
	}

	imageKey, err := imageService.UploadImage(fileHeader)
	if err != nil {
		if uploadErr, ok := err.(*utils.FileUploadError); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_ERROR",
				"message": "Failed to store image",
			},
		})
		return
	}

	// Drop the previous stored image, if any. External URLs are left alone.
	if item.ImagePath != "" && !isExternalURL(item.ImagePath) {
		if err := imageService.DeleteImage(item.ImagePath); err != nil {
			log.Printf("warning: failed to delete old menu image %s: %v", item.ImagePath, err)
		}
	}

	item.ImagePath = imageKey
	if err := db.Save(&item).Error; err != nil {
		respondDatabaseError(c, "Failed to update menu item")
		return
	}

	url, _ := imageService.GetImageURL(imageKey)
	item.ImageURL = url

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image uploaded",
		"data":    item,
	})
}

func isExternalURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
