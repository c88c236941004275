package models

import (
	"time"

	"gorm.io/gorm"
)

// Categories form a fixed set of storefront tags; anything else is rejected at the
// API boundary.
const (
	CategoryHotDeals    = "Hot Deals"
	CategoryDiscounts   = "Discounts"
	CategoryNewArrivals = "New Arrivals"
	CategoryBlackFriday = "Black Friday Deals"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryHotDeals, CategoryDiscounts, CategoryNewArrivals, CategoryBlackFriday:
		return true
	default:
		return false
	}
}

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `gorm:"not null" json:"description"`
	Price         float64        `gorm:"not null" json:"price"` // Base currency (USD)
	OriginalPrice *float64       `json:"originalPrice"`         // Pre-discount price, shown struck through
	ImageURL      string         `gorm:"not null" json:"imageUrl"`
	Category      string         `gorm:"not null;index" json:"category"`
	Specifications string        `json:"specifications"` // "key:value;key:value" pairs
	CreatedAt     time.Time      `json:"-"`
	UpdatedAt     time.Time      `json:"-"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
