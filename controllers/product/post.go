package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xpluscommerce/storefront-api/models"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Price          float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice  *float64 `json:"originalPrice"`
	ImageURL       string   `json:"imageUrl" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	Specifications string   `json:"specifications"`
}

// CreateProduct adds a catalog entry. Admin-only; the route group enforces the role
// check before this handler runs.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !models.ValidCategory(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + input.Category})
			return
		}

		product := models.Product{
			Name:           input.Name,
			Description:    input.Description,
			Price:          input.Price,
			OriginalPrice:  input.OriginalPrice,
			ImageURL:       input.ImageURL,
			Category:       input.Category,
			Specifications: input.Specifications,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
