package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		GoEnv:     "test",
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: 42, Username: "test_user", IsAdmin: true}

	token, err := GenerateToken(cfg, user)
	assert.NoError(t, err, "Token generation should succeed")
	assert.NotEmpty(t, token)

	claims, err := ParseToken(cfg, token)
	assert.NoError(t, err, "Token should parse with the same secret")
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "test_user", claims.Subject)
}

func TestParseTokenWrongSecret(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: 1, Username: "test_user"}

	token, err := GenerateToken(cfg, user)
	assert.NoError(t, err)

	other := &config.Config{JWTSecret: "different-secret"}
	_, err = ParseToken(other, token)
	assert.Error(t, err, "Token signed with another secret must not validate")
}

func TestParseTokenGarbage(t *testing.T) {
	cfg := testConfig()
	_, err := ParseToken(cfg, "not.a.token")
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	user := &models.User{ID: 7, Username: "customer"}
	token, err := GenerateToken(cfg, user)
	assert.NoError(t, err)

	router := gin.New()
	router.GET("/protected", RequireAuth(cfg), func(c *gin.Context) {
		userID, err := GetUserID(c)
		assert.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"success": true, "user_id": userID})
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer header", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"malformed token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	adminToken, err := GenerateToken(cfg, &models.User{ID: 1, Username: "admin", IsAdmin: true})
	assert.NoError(t, err)
	customerToken, err := GenerateToken(cfg, &models.User{ID: 2, Username: "customer"})
	assert.NoError(t, err)

	router := gin.New()
	router.GET("/admin-only", RequireAuth(cfg), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{"admin allowed", adminToken, http.StatusOK},
		{"customer forbidden", customerToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGetUserIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserID(c)
	assert.Error(t, err, "GetUserID should fail outside an authenticated request")

	authErr, ok := err.(*AuthError)
	assert.True(t, ok, "Error should be an AuthError")
	assert.Equal(t, "MISSING_USER_ID", authErr.Code)
}

func TestIsAdminWithoutContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, IsAdmin(c))
}
