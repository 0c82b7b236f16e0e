package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/models"
)

// AdminGetSiteSettings handles GET /api/v1/admin/settings - the recognized
// settings with their descriptions, for the settings form
func AdminGetSiteSettings(c *gin.Context) {
	db := config.GetDB()

	var settings []models.SiteSetting
	if err := db.Where("setting_name IN ?", models.RecognizedSettingNames).
		Find(&settings).Error; err != nil {
		respondDatabaseError(c, "Failed to load site settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}

// AdminUpdateSiteSettings handles POST /api/v1/admin/settings - upserts each
// recognized key present in the payload. Keys outside the fixed set are
// ignored; the settings table never holds anything else. Last write wins.
func AdminUpdateSiteSettings(c *gin.Context) {
	var payload map[string]string
	if err := c.ShouldBindJSON(&payload); err != nil {
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

	db := config.GetDB()
	txErr := db.Transaction(func(tx *gorm.DB) error {
		for _, name := range models.RecognizedSettingNames {
			value, present := payload[name]
			if !present {
				continue
			}

			var setting models.SiteSetting
			err := tx.Where("setting_name = ?", name).First(&setting).Error
			switch {
			case err == nil:
				setting.SettingValue = value
				if err := tx.Save(&setting).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				setting = models.SiteSetting{
					SettingName:  name,
					SettingValue: value,
					Description:  "Site setting " + name,
				}
				if err := tx.Create(&setting).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		respondDatabaseError(c, "Failed to save site settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Settings saved",
	})
}
