package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/xpluscommerce/storefront-api/models"
)

// ProductInput is the admin create payload. All fields except OriginalPrice and
// Specifications are required server-side.
type ProductInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	OriginalPrice  *float64 `json:"originalPrice,omitempty"`
	ImageURL       string   `json:"imageUrl"`
	Category       string   `json:"category"`
	Specifications string   `json:"specifications,omitempty"`
}

// ProductPatch carries partial updates; nil fields are left untouched.
type ProductPatch struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	OriginalPrice  *float64 `json:"originalPrice,omitempty"`
	ImageURL       *string  `json:"imageUrl,omitempty"`
	Category       *string  `json:"category,omitempty"`
	Specifications *string  `json:"specifications,omitempty"`
}

// CreateProduct is admin-only; callers without the admin role get ErrForbidden and
// no catalog change happens.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodPost, "/api/products", nil, input, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, patch ProductPatch) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodPatch, "/api/products/"+strconv.FormatUint(uint64(id), 10), nil, patch, &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+strconv.FormatUint(uint64(id), 10), nil, nil, nil)
}
