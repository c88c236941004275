package ordercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xpluscommerce/storefront-api/models"
	"gorm.io/gorm"
)

// FinalizeOrderRequest is what the payment webhook hands over once the gateway
// reports a successful charge.
type FinalizeOrderRequest struct {
	Reference     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Amount        float64
	Currency      string
}

var ErrDuplicateReference = errors.New("order already finalized for reference")

// FinalizeOrder creates the confirmed, paid order record. This is the only code path
// that inserts orders; a repeated webhook for the same reference is a no-op error so
// retried deliveries cannot double-book.
func FinalizeOrder(db *gorm.DB, req FinalizeOrderRequest) (models.Order, error) {
	var existing models.Order
	err := db.Where("reference = ?", req.Reference).First(&existing).Error
	if err == nil {
		return existing, ErrDuplicateReference
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, err
	}

	order := models.Order{
		Reference:     req.Reference,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Status:        models.OrderStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
	}
	if err := db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}

	broadcastNewOrder(order)
	return order, nil
}

// GetAllOrders lists finalized orders, newest first (admin).
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByReference fetches one order by its gateway reference, for the
// confirmation page.
func GetOrderByReference(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("reference")

		var order models.Order
		if err := db.Where("reference = ?", ref).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
