package acceptance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sushibar/sushi-bar-api/config"
	"github.com/sushibar/sushi-bar-api/controllers"
	"github.com/sushibar/sushi-bar-api/middleware"
	"github.com/sushibar/sushi-bar-api/models"
	"github.com/sushibar/sushi-bar-api/tests/testutil"
)

// OrderingAcceptanceTestSuite drives the API over a real HTTP server, the way
// the storefront client would: register, log in, browse, order, check out.
type OrderingAcceptanceTestSuite struct {
	suite.Suite
	server *httptest.Server
	db     *gorm.DB
	cfg    *config.Config
}

// SetupSuite runs once before all tests
func (suite *OrderingAcceptanceTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("GO_ENV", "test")

	suite.cfg = testutil.NewTestConfig()
	config.SetConfig(suite.cfg)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.Reservation{},
		&models.SiteSetting{},
	)
	suite.NoError(err)

	config.SetDB(db)

	router := suite.createRouter()
	suite.server = httptest.NewServer(router)
}

// TearDownSuite runs once after all tests
func (suite *OrderingAcceptanceTestSuite) TearDownSuite() {
	suite.server.Close()
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	}
}

// SetupTest runs before each test
func (suite *OrderingAcceptanceTestSuite) SetupTest() {
	// Clean up database before each test
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM reservations")
	suite.db.Exec("DELETE FROM site_settings")
	suite.db.Exec("DELETE FROM users")
	suite.db.Exec("DELETE FROM menu_items")
}

// createRouter assembles the application routes with the real middleware chain
func (suite *OrderingAcceptanceTestSuite) createRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/menu", controllers.ListMenu)
		v1.GET("/settings", controllers.GetSiteSettings)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		authed := v1.Group("")
		authed.Use(middleware.RequireAuth(suite.cfg))
		{
			authed.POST("/add_to_cart/:item_id", controllers.AddToCart)
			authed.GET("/cart", controllers.GetCart)
			authed.POST("/update_cart/:order_id", controllers.UpdateCart)
			authed.POST("/checkout", controllers.Checkout)
			authed.GET("/order_history", controllers.OrderHistory)
			authed.POST("/reservations", controllers.CreateReservation)
			authed.GET("/reservations", controllers.MyReservations)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAuth(suite.cfg), middleware.RequireAdmin())
		{
			admin.GET("/orders", controllers.AdminListOrders)
			admin.POST("/orders/update_status/:order_id", controllers.AdminUpdateOrderStatus)
			admin.POST("/settings", controllers.AdminUpdateSiteSettings)
		}
	}

	return router
}

// makeRequest is a helper to make HTTP requests against the test server
func (suite *OrderingAcceptanceTestSuite) makeRequest(method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	var bodyReader *bytes.Reader
	if body != nil {
		bodyJSON, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyJSON)
	} else {
		bodyReader = bytes.NewReader([]byte{})
	}

	req, err := http.NewRequest(method, suite.server.URL+path, bodyReader)
	suite.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	suite.NoError(err)

	var responseData map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&responseData)
	suite.NoError(err)
	resp.Body.Close()

	return resp, responseData
}

// seedMenuItem stores an active menu item directly
func (suite *OrderingAcceptanceTestSuite) seedMenuItem(name string, price float64) models.MenuItem {
	item := models.MenuItem{Name: name, Price: price, Active: true}
	suite.NoError(suite.db.Create(&item).Error)
	return item
}

// TestGuestOrderingJourney_Acceptance covers the complete storefront flow
func (suite *OrderingAcceptanceTestSuite) TestGuestOrderingJourney_Acceptance() {
	philadelphia := suite.seedMenuItem("Philadelphia roll", 320.0)
	suite.seedMenuItem("Miso soup", 120.0)

	// Step 1: Register a new account
	resp, data := suite.makeRequest(http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "first_timer",
		"email":    "first_timer@sushi-bar.ua",
		"password": "Password123!",
	})
	assert.Equal(suite.T(), http.StatusCreated, resp.StatusCode)
	assert.True(suite.T(), data["success"].(bool))

	// Step 2: Log in and keep the session token
	resp, data = suite.makeRequest(http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"username": "first_timer",
		"password": "Password123!",
	})
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	token := data["data"].(map[string]interface{})["token"].(string)
	assert.NotEmpty(suite.T(), token)

	// Step 3: Browse the menu
	resp, data = suite.makeRequest(http.MethodGet, "/api/v1/menu", "", nil)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	menuData := data["data"].(map[string]interface{})
	assert.Len(suite.T(), menuData["items"].([]interface{}), 2)

	// Step 4: Put two portions of one roll in the cart
	resp, _ = suite.makeRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/add_to_cart/%d", philadelphia.ID), token,
		map[string]interface{}{"quantity": 2})
	assert.Equal(suite.T(), http.StatusCreated, resp.StatusCode)

	// Step 5: Check the cart total
	resp, data = suite.makeRequest(http.MethodGet, "/api/v1/cart", token, nil)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	cart := data["data"].(map[string]interface{})
	assert.Equal(suite.T(), 640.0, cart["total"])

	// Step 6: Check out
	resp, data = suite.makeRequest(http.MethodPost, "/api/v1/checkout", token, nil)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(suite.T(), float64(1), data["data"].(map[string]interface{})["confirmed_lines"])

	// Step 7: The order shows up in history as CONFIRMED
	resp, data = suite.makeRequest(http.MethodGet, "/api/v1/order_history", token, nil)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	history := data["data"].([]interface{})
	assert.Len(suite.T(), history, 1)
	assert.Equal(suite.T(), models.OrderStatusConfirmed, history[0].(map[string]interface{})["status"])
}

// TestKitchenWorkflow_Acceptance covers the admin side of a confirmed order
func (suite *OrderingAcceptanceTestSuite) TestKitchenWorkflow_Acceptance() {
	item := suite.seedMenuItem("Dragon roll", 420.0)

	admin := models.User{Username: "sushi_admin", Email: "admin@sushi-bar.ua", IsAdmin: true}
	suite.NoError(admin.SetPassword("SushiAdmin123!"))
	suite.NoError(suite.db.Create(&admin).Error)

	guest := models.User{Username: "regular", Email: "regular@sushi-bar.ua"}
	suite.NoError(guest.SetPassword("Password123!"))
	suite.NoError(suite.db.Create(&guest).Error)

	guestToken := testutil.IssueTestToken(suite.T(), suite.cfg, &guest)
	adminToken := testutil.IssueTestToken(suite.T(), suite.cfg, &admin)

	// Guest orders and checks out
	resp, _ := suite.makeRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/add_to_cart/%d", item.ID), guestToken,
		map[string]interface{}{"quantity": 1})
	assert.Equal(suite.T(), http.StatusCreated, resp.StatusCode)

	resp, _ = suite.makeRequest(http.MethodPost, "/api/v1/checkout", guestToken, nil)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	// A plain guest is kept out of the back office
	resp, data := suite.makeRequest(http.MethodGet, "/api/v1/admin/orders", guestToken, nil)
	assert.Equal(suite.T(), http.StatusForbidden, resp.StatusCode)
	assert.Equal(suite.T(), "ADMIN_REQUIRED", data["error"].(map[string]interface{})["code"])

	// The admin sees the confirmed order
	resp, data = suite.makeRequest(http.MethodGet, "/api/v1/admin/orders", adminToken, nil)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	orders := data["data"].([]interface{})
	assert.Len(suite.T(), orders, 1)

	orderID := orders[0].(map[string]interface{})["id"].(float64)

	// Kitchen moves the order through the pipeline
	for _, status := range []string{models.OrderStatusPreparing, models.OrderStatusDelivered} {
		resp, _ = suite.makeRequest(http.MethodPost,
			fmt.Sprintf("/api/v1/admin/orders/update_status/%d", int(orderID)), adminToken,
			map[string]interface{}{"status": status})
		assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	}

	var delivered models.Order
	suite.NoError(suite.db.First(&delivered, uint(orderID)).Error)
	assert.Equal(suite.T(), models.OrderStatusDelivered, delivered.Status)

	// The guest watches the status change in their history
	resp, data = suite.makeRequest(http.MethodGet, "/api/v1/order_history", guestToken, nil)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	history := data["data"].([]interface{})
	assert.Equal(suite.T(), models.OrderStatusDelivered, history[0].(map[string]interface{})["status"])
}

// TestSiteAppearance_Acceptance covers admin settings reaching the public endpoint
func (suite *OrderingAcceptanceTestSuite) TestSiteAppearance_Acceptance() {
	admin := models.User{Username: "sushi_admin", Email: "admin@sushi-bar.ua", IsAdmin: true}
	suite.NoError(admin.SetPassword("SushiAdmin123!"))
	suite.NoError(suite.db.Create(&admin).Error)

	adminToken := testutil.IssueTestToken(suite.T(), suite.cfg, &admin)

	resp, _ := suite.makeRequest(http.MethodPost, "/api/v1/admin/settings", adminToken, map[string]string{
		"logo_image":            "/img/logo.png",
		"main_background_image": "/img/hero.jpg",
	})
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	// Anyone can read the appearance settings, no token needed
	resp, data := suite.makeRequest(http.MethodGet, "/api/v1/settings", "", nil)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	settings := data["data"].(map[string]interface{})
	assert.Equal(suite.T(), "/img/logo.png", settings["logo_image"])
	assert.Equal(suite.T(), "/img/hero.jpg", settings["main_background_image"])
}

// TestOrderingAcceptanceSuite runs the test suite
func TestOrderingAcceptanceSuite(t *testing.T) {
	suite.Run(t, new(OrderingAcceptanceTestSuite))
}
