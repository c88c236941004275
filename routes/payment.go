package routes

import (
	"github.com/gin-gonic/gin"
	paymentcontroller "github.com/xpluscommerce/storefront-api/controllers/payment"
	"github.com/xpluscommerce/storefront-api/middleware"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(api *gin.RouterGroup, db *gorm.DB) {
	payment := api.Group("/payment")
	{
		// Webhook endpoint: middleware handles signature verification
		payment.POST("/webhook",
			middleware.WebhookAuth(),
			paymentcontroller.Webhook(db),
		)
	}
}
