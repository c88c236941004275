package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/xpluscommerce/storefront-api/models"
)

// ListProducts fetches the catalog, optionally narrowed by category tag and a
// case-insensitive name search. Both filters are server-side.
func (c *Client) ListProducts(ctx context.Context, category, search string) ([]models.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.FormatUint(uint64(id), 10), nil, nil, &product)
	return product, err
}

func (c *Client) ListReviews(ctx context.Context, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	path := "/api/products/" + strconv.FormatUint(uint64(productID), 10) + "/reviews"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SubmitReview posts a review for the signed-in user. Unauthenticated calls fail
// with ErrUnauthorized.
func (c *Client) SubmitReview(ctx context.Context, productID uint, input ReviewInput) (models.Review, error) {
	var review models.Review
	path := "/api/products/" + strconv.FormatUint(uint64(productID), 10) + "/reviews"
	err := c.do(ctx, http.MethodPost, path, nil, input, &review)
	return review, err
}
