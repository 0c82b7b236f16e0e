package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/models"
)

func newReservationRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := mockAuth(userID, false)
	router.POST("/api/v1/reservations", auth, CreateReservation)
	router.GET("/api/v1/reservations", auth, MyReservations)
	return router
}

func TestCreateReservation(t *testing.T) {
	db := setupCartTestDB(t)
	config.SetDB(db)

	user := createTestUser(t, db, "booker")
	router := newReservationRouter(user.ID)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
	}{
		{
			name: "Book a table",
			requestBody: map[string]interface{}{
				"guest_name":   "Booker Family",
				"guests":       4,
				"reserved_for": "2025-06-01T19:00:00Z",
				"note":         "Window seat please",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Guest count must be positive",
			requestBody: map[string]interface{}{
				"guest_name":   "Booker Family",
				"guests":       0,
				"reserved_for": "2025-06-01T19:00:00Z",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Guest name is required",
			requestBody: map[string]interface{}{
				"guests":       2,
				"reserved_for": "2025-06-01T19:00:00Z",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/v1/reservations", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	var reservation models.Reservation
	assert.NoError(t, db.Where("user_id = ?", user.ID).First(&reservation).Error)
	assert.Equal(t, "Booker Family", reservation.GuestName)
	assert.Equal(t, 4, reservation.Guests)
	assert.Equal(t, "Window seat please", reservation.Note)
}

func TestMyReservationsOnlyShowsOwn(t *testing.T) {
	db := setupCartTestDB(t)
	config.SetDB(db)

	user := createTestUser(t, db, "booker")
	other := createTestUser(t, db, "other_guest")

	when := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	for _, r := range []models.Reservation{
		{UserID: user.ID, GuestName: "Mine early", Guests: 2, ReservedFor: when},
		{UserID: user.ID, GuestName: "Mine late", Guests: 2, ReservedFor: when.Add(2 * time.Hour)},
		{UserID: other.ID, GuestName: "Not mine", Guests: 6, ReservedFor: when},
	} {
		assert.NoError(t, db.Create(&r).Error)
	}

	router := newReservationRouter(user.ID)
	w := getJSON(router, "/api/v1/reservations")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2, "Only the caller's bookings are listed")

	first := data[0].(map[string]interface{})
	assert.Equal(t, "Mine late", first["guest_name"], "Latest booking listed first")
}
