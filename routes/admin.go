package routes

import (
	"github.com/gin-gonic/gin"
	ordercontroller "github.com/xpluscommerce/storefront-api/controllers/order"
	productcontroller "github.com/xpluscommerce/storefront-api/controllers/product"
	"github.com/xpluscommerce/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the admin console extras: the order list, the live
// order feed and the catalog export. Product CRUD itself lives on /api/products.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateSession, middleware.RequireAdmin)
	{
		adminGroup.GET("/orders", ordercontroller.GetAllOrders(db))
		adminGroup.GET("/orders/feed", ordercontroller.OrderWebSocketHandler)
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(db))
	}
}
