package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xpluscommerce/storefront-api/models"
	"gorm.io/gorm"
)

// GetProducts lists the catalog. Optional query params: category (exact tag match)
// and search (case-insensitive name substring).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := c.Query("search")

		query := db.Model(&models.Product{})
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if search != "" {
			query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
		}

		var products []models.Product
		if err := query.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}
