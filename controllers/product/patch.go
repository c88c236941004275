package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xpluscommerce/storefront-api/models"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price"`
	OriginalPrice  *float64 `json:"originalPrice"`
	ImageURL       *string  `json:"imageUrl"`
	Category       *string  `json:"category"`
	Specifications *string  `json:"specifications"`
}

// UpdateProduct applies a partial update; absent fields are left untouched.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
				return
			}
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = input.OriginalPrice
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.Category != nil {
			if !models.ValidCategory(*input.Category) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + *input.Category})
				return
			}
			product.Category = *input.Category
		}
		if input.Specifications != nil {
			product.Specifications = *input.Specifications
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
