package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public API, the payment
// webhook and the admin console routes.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupPublicRoutes(api, db)
	SetupPaymentRoutes(api, db)
	SetupAdminRoutes(api, db)
}
