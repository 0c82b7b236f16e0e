package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/models"
)

// GetSiteSettings handles GET /api/v1/settings - returns the recognized site
// appearance settings as a flat map. Fetched from the database on every
// request; there is no process-wide settings cache.
func GetSiteSettings(c *gin.Context) {
	db := config.GetDB()

	var settings []models.SiteSetting
	if err := db.Where("setting_name IN ?", models.RecognizedSettingNames).
		Find(&settings).Error; err != nil {
		respondDatabaseError(c, "Failed to load site settings")
		return
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.SettingName] = s.SettingValue
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    values,
	})
}
