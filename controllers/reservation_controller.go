package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/middleware"
	"github.com/sushibar/sushi-bar-api/models"
)

// CreateReservationRequest represents the request body for booking a table
type CreateReservationRequest struct {
	GuestName   string    `json:"guest_name" binding:"required"`
	Guests      int       `json:"guests" binding:"required,gt=0"`
	ReservedFor time.Time `json:"reserved_for" binding:"required"`
	Note        string    `json:"note"`
}

// CreateReservation handles POST /api/v1/reservations
func CreateReservation(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req CreateReservationRequest
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

	reservation := models.Reservation{
		UserID:      userID,
		GuestName:   req.GuestName,
		Guests:      req.Guests,
		ReservedFor: req.ReservedFor,
		Note:        req.Note,
	}

	db := config.GetDB()
	if err := db.Create(&reservation).Error; err != nil {
		respondDatabaseError(c, "Failed to create reservation")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    reservation,
	})
}

// MyReservations handles GET /api/v1/reservations - the caller's bookings, newest first
func MyReservations(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	db := config.GetDB()
	var reservations []models.Reservation
	if err := db.Where("user_id = ?", userID).
		Order("reserved_for DESC").
		Find(&reservations).Error; err != nil {
		respondDatabaseError(c, "Failed to load reservations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reservations,
	})
}
