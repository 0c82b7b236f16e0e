package controllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/models"
	"github.com/sushibar/sushi-bar-api/services"
)

// ListMenu handles GET /api/v1/menu - lists active menu items and the
// category list derived from them
func ListMenu(c *gin.Context) {
	db := config.GetDB()

	var items []models.MenuItem
	if err := db.Where("active = ?", true).Find(&items).Error; err != nil {
		respondDatabaseError(c, "Failed to load menu")
		return
	}

	// Distinct, sorted set of non-null categories, recomputed per request
	seen := make(map[string]bool)
	categories := []string{}
	for _, item := range items {
		if item.Category != nil && *item.Category != "" && !seen[*item.Category] {
			seen[*item.Category] = true
			categories = append(categories, *item.Category)
		}
	}
	sort.Strings(categories)

	resolveMenuImageURLs(items)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":      items,
			"categories": categories,
		},
	})
}

// resolveMenuImageURLs fills the computed ImageURL field. External URLs pass
// through unchanged; storage keys are resolved by the image service.
func resolveMenuImageURLs(items []models.MenuItem) {
	imageService := services.GetImageService()
	for i := range items {
		path := items[i].ImagePath
		if path == "" {
			continue
		}
		if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
			items[i].ImageURL = path
			continue
		}
		if imageService != nil {
			if url, err := imageService.GetImageURL(path); err == nil {
				items[i].ImageURL = url
			}
		}
	}
}
