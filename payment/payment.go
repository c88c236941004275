// Package payment defines the contract with the external payment collaborator and a
// Flutterwave HTTP client implementing it.
package payment

import "context"

type Status string

const (
	StatusSuccessful Status = "successful"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone_number"`
}

// ChargeRequest carries the already-converted amount; the gateway never sees
// base-currency figures.
type ChargeRequest struct {
	Amount    float64  `json:"amount"`
	Currency  string   `json:"currency"`
	Customer  Customer `json:"customer"`
	Reference string   `json:"tx_ref"`
}

type ChargeResult struct {
	Status        Status `json:"status"`
	Reference     string `json:"tx_ref"`
	TransactionID string `json:"id"`
	Message       string `json:"message"`
}

func (r ChargeResult) Succeeded() bool {
	return r.Status == StatusSuccessful || r.Status == StatusCompleted
}

// Callbacks is how the gateway reports back. Exactly one of the two fires per
// Charge: OnComplete with the terminal result, or OnDismiss when the customer
// closed the payment UI without finishing.
type Callbacks struct {
	OnComplete func(ChargeResult)
	OnDismiss  func()
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest, cb Callbacks)
}
