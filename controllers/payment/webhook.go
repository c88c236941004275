package paymentcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	ordercontroller "github.com/xpluscommerce/storefront-api/controllers/order"
	"gorm.io/gorm"
)

// WebhookPayload is the gateway's charge.completed notification.
type WebhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		Status   string  `json:"status"`
		TxRef    string  `json:"tx_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Customer struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Phone string `json:"phone_number"`
		} `json:"customer"`
	} `json:"data"`
}

// Webhook finalizes an order on a successful charge notification. Anything other
// than a successful charge is acknowledged and dropped; no order row exists until
// the gateway has actually been paid.
func Webhook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload WebhookPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}
		if payload.Data.TxRef == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing tx_ref"})
			return
		}

		if payload.Event != "charge.completed" ||
			(payload.Data.Status != "successful" && payload.Data.Status != "completed") {
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		}

		order, err := ordercontroller.FinalizeOrder(db, ordercontroller.FinalizeOrderRequest{
			Reference:     payload.Data.TxRef,
			CustomerName:  payload.Data.Customer.Name,
			CustomerEmail: payload.Data.Customer.Email,
			CustomerPhone: payload.Data.Customer.Phone,
			Amount:        payload.Data.Amount,
			Currency:      payload.Data.Currency,
		})
		if errors.Is(err, ordercontroller.ErrDuplicateReference) {
			c.JSON(http.StatusOK, gin.H{"message": "Order already finalized", "order": order})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finalize order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})
	}
}
