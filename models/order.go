package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Order exists only after the payment gateway reports a successful charge; the
// webhook handler is the single writer. There is no "awaiting payment" order row.
type Order struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference     string        `gorm:"uniqueIndex;not null" json:"reference"` // Gateway tx_ref
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone"`
	Amount        float64       `gorm:"not null" json:"amount"` // In Currency, as charged
	Currency      string        `gorm:"not null" json:"currency"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}
