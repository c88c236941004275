package routes

import (
	"github.com/gin-gonic/gin"
	authcontroller "github.com/xpluscommerce/storefront-api/controllers/auth"
	healthcontroller "github.com/xpluscommerce/storefront-api/controllers/health"
	ordercontroller "github.com/xpluscommerce/storefront-api/controllers/order"
	productcontroller "github.com/xpluscommerce/storefront-api/controllers/product"
	reviewcontroller "github.com/xpluscommerce/storefront-api/controllers/review"
	"github.com/xpluscommerce/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront-facing endpoints. Catalog mutations
// live on the same /products paths but behind the session + admin gate.
func SetupPublicRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/health", healthcontroller.Check(db))

	// ──────────────── Catalog ────────────────
	api.GET("/products", productcontroller.GetProducts(db))
	api.GET("/products/:id", productcontroller.GetProductByID(db))
	api.POST("/products", middleware.ValidateSession, middleware.RequireAdmin, productcontroller.CreateProduct(db))
	api.PATCH("/products/:id", middleware.ValidateSession, middleware.RequireAdmin, productcontroller.UpdateProduct(db))
	api.DELETE("/products/:id", middleware.ValidateSession, middleware.RequireAdmin, productcontroller.DeleteProduct(db))

	// ──────────────── Reviews ────────────────
	api.GET("/products/:id/reviews", reviewcontroller.GetProductReviews(db))
	api.POST("/products/:id/reviews", middleware.ValidateSession, reviewcontroller.CreateReview(db))

	// ──────────────── Auth ────────────────
	api.POST("/login", authcontroller.Login(db))
	api.POST("/register", authcontroller.Register(db))
	api.POST("/logout", authcontroller.Logout())

	// ──────────────── Order confirmation ────────────────
	api.GET("/orders/:reference", ordercontroller.GetOrderByReference(db))
}
