package testutil

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/middleware"
	"github.com/sushibar/sushi-bar-api/models"
)

// TestJWTSecret is the signing secret used by test configurations
const TestJWTSecret = "test-secret-do-not-use-in-production"

// NewTestConfig returns a configuration suitable for in-process tests
func NewTestConfig() *config.Config {
	return &config.Config{
		GoEnv:     "test",
		JWTSecret: TestJWTSecret,
		Port:      "8080",
	}
}

// IssueTestToken signs a real session token for the given user so tests can
// exercise the full authentication middleware
func IssueTestToken(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()

	token, err := middleware.GenerateToken(cfg, user)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// SetMockAuthContext sets up a mock authenticated context for testing,
// bypassing token parsing entirely
func SetMockAuthContext(c *gin.Context, userID uint, isAdmin bool) {
	c.Set("user_id", userID)
	c.Set("is_admin", isAdmin)
	c.Set("session_claims", &middleware.SessionClaims{UserID: userID, IsAdmin: isAdmin})
}

// MockAuthMiddleware returns a middleware that injects a fixed identity,
// standing in for RequireAuth in handler-level tests
func MockAuthMiddleware(userID uint, isAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetMockAuthContext(c, userID, isAdmin)
		c.Next()
	}
}

// CreateTestContext creates a test Gin context
func CreateTestContext() (*gin.Context, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	c, engine := gin.CreateTestContext(nil)
	return c, engine
}
