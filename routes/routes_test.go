package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	authcontroller "github.com/xpluscommerce/storefront-api/controllers/auth"
	"github.com/xpluscommerce/storefront-api/middleware"
	"github.com/xpluscommerce/storefront-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const webhookSecret = "hook-secret"

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("FLW_WEBHOOK_SECRET", webhookSecret)
	t.Setenv("FLW_MODE", "")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Review{}, &models.Order{}))

	r := gin.New()
	SetupRoutes(r, db)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username: username,
		Password: string(hash),
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func sessionCookie(user models.User) *http.Cookie {
	return &http.Cookie{Name: middleware.SessionCookie, Value: authcontroller.IssueSessionToken(user)}
}

func doRequest(r http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCatalog(t *testing.T, db *gorm.DB) []models.Product {
	t.Helper()
	products := []models.Product{
		{Name: "Smart Watch Pro", Description: "d", Price: 50.99, ImageURL: "u", Category: models.CategoryHotDeals},
		{Name: "Heritage Analog", Description: "d", Price: 86.00, ImageURL: "u", Category: models.CategoryDiscounts},
		{Name: "Desk Lamp", Description: "d", Price: 42.50, ImageURL: "u", Category: models.CategoryNewArrivals},
	}
	require.NoError(t, db.Create(&products).Error)
	return products
}

func TestHealthCheck(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doRequest(r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "up", body["database"])
}

func TestListProducts(t *testing.T) {
	r, db := setupTestServer(t)
	seedCatalog(t, db)

	w := doRequest(r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 3)
}

func TestListProductsFilterByCategory(t *testing.T) {
	r, db := setupTestServer(t)
	seedCatalog(t, db)

	w := doRequest(r, http.MethodGet, "/api/products?category=Hot+Deals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Smart Watch Pro", products[0].Name)
}

func TestListProductsSearchIsCaseInsensitive(t *testing.T) {
	r, db := setupTestServer(t)
	seedCatalog(t, db)

	w := doRequest(r, http.MethodGet, "/api/products?search=WATCH", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Smart Watch Pro", products[0].Name)
}

func TestListProductsEmptyIsArrayNotNull(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doRequest(r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProductNotFound(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doRequest(r, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductRequiresSession(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/products", gin.H{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProductForbiddenForRegularUser(t *testing.T) {
	r, db := setupTestServer(t)
	user := createUser(t, db, "ada", models.RoleUser)

	w := doRequest(r, http.MethodPost, "/api/products", gin.H{
		"name": "x", "description": "d", "price": 10, "imageUrl": "u", "category": models.CategoryHotDeals,
	}, sessionCookie(user))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateProductAsAdmin(t *testing.T) {
	r, db := setupTestServer(t)
	admin := createUser(t, db, "root", models.RoleAdmin)

	w := doRequest(r, http.MethodPost, "/api/products", gin.H{
		"name":        "Game Pad",
		"description": "controller",
		"price":       45.00,
		"imageUrl":    "https://example.com/pad.jpg",
		"category":    models.CategoryHotDeals,
	}, sessionCookie(admin))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Game Pad", created.Name)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	r, db := setupTestServer(t)
	admin := createUser(t, db, "root", models.RoleAdmin)

	w := doRequest(r, http.MethodPost, "/api/products", gin.H{
		"name": "x", "description": "d", "price": 10, "imageUrl": "u", "category": "Clearance",
	}, sessionCookie(admin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	r, db := setupTestServer(t)
	admin := createUser(t, db, "root", models.RoleAdmin)

	w := doRequest(r, http.MethodPost, "/api/products", gin.H{
		"name": "x", "description": "d", "price": -5, "imageUrl": "u", "category": models.CategoryHotDeals,
	}, sessionCookie(admin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductPartialPatch(t *testing.T) {
	r, db := setupTestServer(t)
	admin := createUser(t, db, "root", models.RoleAdmin)
	products := seedCatalog(t, db)

	w := doRequest(r, http.MethodPatch, "/api/products/1", gin.H{"price": 39.99}, sessionCookie(admin))
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.InDelta(t, 39.99, updated.Price, 1e-9)
	// Untouched fields survive the patch.
	assert.Equal(t, products[0].Name, updated.Name)
}

func TestDeleteProductRemovesItsReviews(t *testing.T) {
	r, db := setupTestServer(t)
	admin := createUser(t, db, "root", models.RoleAdmin)
	products := seedCatalog(t, db)
	require.NoError(t, db.Create(&models.Review{
		ProductID: products[0].ID, UserID: admin.ID, UserName: admin.Username, Rating: 5, Comment: "great",
	}).Error)

	w := doRequest(r, http.MethodDelete, "/api/products/1", nil, sessionCookie(admin))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, http.MethodGet, "/api/products/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var reviewCount int64
	db.Model(&models.Review{}).Where("product_id = ?", products[0].ID).Count(&reviewCount)
	assert.EqualValues(t, 0, reviewCount)
}

func TestListReviewsEmptyIsArrayNotNull(t *testing.T) {
	r, db := setupTestServer(t)
	seedCatalog(t, db)

	w := doRequest(r, http.MethodGet, "/api/products/1/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateReviewRequiresSession(t *testing.T) {
	r, db := setupTestServer(t)
	seedCatalog(t, db)

	w := doRequest(r, http.MethodPost, "/api/products/1/reviews", gin.H{"rating": 5, "comment": "great"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReviewCachesDisplayName(t *testing.T) {
	r, db := setupTestServer(t)
	user := createUser(t, db, "ada", models.RoleUser)
	seedCatalog(t, db)

	w := doRequest(r, http.MethodPost, "/api/products/1/reviews",
		gin.H{"rating": 4, "comment": "solid"}, sessionCookie(user))
	require.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	assert.Equal(t, "ada", review.UserName)
	assert.Equal(t, 4, review.Rating)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	r, db := setupTestServer(t)
	user := createUser(t, db, "ada", models.RoleUser)
	seedCatalog(t, db)

	for _, rating := range []int{0, 6} {
		w := doRequest(r, http.MethodPost, "/api/products/1/reviews",
			gin.H{"rating": rating, "comment": "?"}, sessionCookie(user))
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	r, db := setupTestServer(t)
	user := createUser(t, db, "ada", models.RoleUser)

	w := doRequest(r, http.MethodPost, "/api/products/999/reviews",
		gin.H{"rating": 5, "comment": "great"}, sessionCookie(user))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterSignsInAndHidesPassword(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/register", gin.H{
		"username": "ada", "email": "ada@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())
	assert.NotContains(t, w.Body.String(), "password")

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, db := setupTestServer(t)
	createUser(t, db, "ada", models.RoleUser)

	w := doRequest(r, http.MethodPost, "/api/register", gin.H{
		"username": "ada", "email": "other@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/register", gin.H{
		"username": "ada", "email": "ada@example.com", "password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSuccess(t *testing.T) {
	r, db := setupTestServer(t)
	createUser(t, db, "ada", models.RoleUser)

	w := doRequest(r, http.MethodPost, "/api/login", gin.H{"username": "ada", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	r, db := setupTestServer(t)
	createUser(t, db, "ada", models.RoleUser)

	wrong := doRequest(r, http.MethodPost, "/api/login", gin.H{"username": "ada", "password": "nope12"})
	unknown := doRequest(r, http.MethodPost, "/api/login", gin.H{"username": "ghost", "password": "nope12"})

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrong.Body.String(), unknown.Body.String())
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func successfulChargePayload(reference string) gin.H {
	return gin.H{
		"event": "charge.completed",
		"data": gin.H{
			"status":   "successful",
			"tx_ref":   reference,
			"amount":   34.99,
			"currency": "USD",
			"customer": gin.H{"name": "Ada Obi", "email": "ada@example.com", "phone_number": "+234801"},
		},
	}
}

func webhookRequest(r http.Handler, payload interface{}, signature string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("verif-hash", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	r, db := setupTestServer(t)

	assert.Equal(t, http.StatusForbidden, webhookRequest(r, successfulChargePayload("tx-1"), "").Code)
	assert.Equal(t, http.StatusForbidden, webhookRequest(r, successfulChargePayload("tx-1"), "wrong").Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestWebhookFinalizesOrder(t *testing.T) {
	r, db := setupTestServer(t)

	w := webhookRequest(r, successfulChargePayload("tx-1"), webhookSecret)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.Where("reference = ?", "tx-1").First(&order).Error)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.InDelta(t, 34.99, order.Amount, 1e-9)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, "Ada Obi", order.CustomerName)
}

func TestWebhookRedeliveryDoesNotDoubleBook(t *testing.T) {
	r, db := setupTestServer(t)

	require.Equal(t, http.StatusOK, webhookRequest(r, successfulChargePayload("tx-1"), webhookSecret).Code)
	w := webhookRequest(r, successfulChargePayload("tx-1"), webhookSecret)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already finalized")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestWebhookIgnoresUnsuccessfulCharge(t *testing.T) {
	r, db := setupTestServer(t)

	payload := successfulChargePayload("tx-1")
	payload["data"].(gin.H)["status"] = "failed"

	w := webhookRequest(r, payload, webhookSecret)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not successful")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestWebhookRejectsMissingReference(t *testing.T) {
	r, _ := setupTestServer(t)

	payload := successfulChargePayload("")
	assert.Equal(t, http.StatusBadRequest, webhookRequest(r, payload, webhookSecret).Code)
}

func TestOrderConfirmationPage(t *testing.T) {
	r, _ := setupTestServer(t)

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/api/orders/tx-1", nil).Code)

	require.Equal(t, http.StatusOK, webhookRequest(r, successfulChargePayload("tx-1"), webhookSecret).Code)

	w := doRequest(r, http.MethodGet, "/api/orders/tx-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "tx-1", order.Reference)
}

func TestAdminOrderListRequiresAdmin(t *testing.T) {
	r, db := setupTestServer(t)
	user := createUser(t, db, "ada", models.RoleUser)
	admin := createUser(t, db, "root", models.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodGet, "/api/admin/orders", nil).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodGet, "/api/admin/orders", nil, sessionCookie(user)).Code)

	require.Equal(t, http.StatusOK, webhookRequest(r, successfulChargePayload("tx-1"), webhookSecret).Code)

	w := doRequest(r, http.MethodGet, "/api/admin/orders", nil, sessionCookie(admin))
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "tx-1", orders[0].Reference)
}

func TestCatalogExportAsAdmin(t *testing.T) {
	r, db := setupTestServer(t)
	admin := createUser(t, db, "root", models.RoleAdmin)
	seedCatalog(t, db)

	w := doRequest(r, http.MethodGet, "/api/admin/products/export", nil, sessionCookie(admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestExpiredSessionRejected(t *testing.T) {
	r, db := setupTestServer(t)
	createUser(t, db, "ada", models.RoleUser)

	cookie := &http.Cookie{Name: middleware.SessionCookie, Value: "not-a-jwt"}
	w := doRequest(r, http.MethodPost, "/api/products/1/reviews", gin.H{"rating": 5, "comment": "x"}, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
