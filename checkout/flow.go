// Package checkout implements the three-step checkout state machine: Shipping →
// Payment → Review, with a terminal confirmed state reached only through the payment
// gateway's success callback.
package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/xpluscommerce/storefront-api/payment"
	"github.com/xpluscommerce/storefront-api/store"
)

type Step int

const (
	StepShipping Step = iota
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "Shipping"
	case StepPayment:
		return "Payment"
	case StepReview:
		return "Review"
	default:
		return "Unknown"
	}
}

var (
	ErrWrongStep         = errors.New("checkout: operation not valid at current step")
	ErrEmptyCart         = errors.New("checkout: cart is empty")
	ErrPaymentInProgress = errors.New("checkout: a payment is already being processed")
	ErrAlreadyConfirmed  = errors.New("checkout: order already confirmed")
)

// Flow coordinates one checkout session. It reads the cart and currency stores,
// hands off to the payment gateway and, on the success callback only, clears the
// cart and becomes confirmed. Gateway callbacks may arrive on another goroutine, so
// all state lives behind the mutex.
type Flow struct {
	mu          sync.Mutex
	step        Step
	shipping    *ShippingData
	processing  bool
	confirmed   bool
	reference   string
	cart        *store.CartStore
	currency    *store.CurrencyStore
	gateway     payment.Gateway
	onConfirmed func(reference string)
}

func NewFlow(cart *store.CartStore, currency *store.CurrencyStore, gateway payment.Gateway) *Flow {
	return &Flow{
		step:     StepShipping,
		cart:     cart,
		currency: currency,
		gateway:  gateway,
	}
}

// OnConfirmed registers the navigation hook fired once, after the success callback
// has cleared the cart.
func (f *Flow) OnConfirmed(fn func(reference string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onConfirmed = fn
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// ShippingData returns the data entered at the shipping step, if any. It survives
// backward navigation so the form can be re-populated.
func (f *Flow) ShippingData() (ShippingData, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shipping == nil {
		return ShippingData{}, false
	}
	return *f.shipping, true
}

func (f *Flow) Processing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processing
}

func (f *Flow) Confirmed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmed
}

// Reference is the gateway tx_ref of the confirmed order, empty until confirmed.
func (f *Flow) Reference() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.confirmed {
		return ""
	}
	return f.reference
}

// SubmitShipping validates the form and, when clean, stores it and advances to the
// payment step. Validation failures block the transition and carry per-field
// messages.
func (f *Flow) SubmitShipping(data ShippingData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepShipping {
		return ErrWrongStep
	}
	if errs := data.Validate(); errs != nil {
		return errs
	}
	f.shipping = &data
	f.step = StepPayment
	return nil
}

// ContinueToReview moves from Payment to Review. No gateway contact happens here.
func (f *Flow) ContinueToReview() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepPayment {
		return ErrWrongStep
	}
	f.step = StepReview
	return nil
}

// Back steps backwards from Payment or Review. Previously entered shipping data is
// preserved. Blocked while a payment is in flight.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.processing {
		return ErrPaymentInProgress
	}
	switch f.step {
	case StepPayment:
		f.step = StepShipping
	case StepReview:
		f.step = StepPayment
	default:
		return ErrWrongStep
	}
	return nil
}

// PlaceOrder hands the converted order total to the payment gateway. The processing
// flag is raised for the whole window between invocation and the gateway's callback;
// a second PlaceOrder inside that window is rejected, which is what prevents double
// charges.
func (f *Flow) PlaceOrder(ctx context.Context) error {
	f.mu.Lock()
	if f.confirmed {
		f.mu.Unlock()
		return ErrAlreadyConfirmed
	}
	if f.step != StepReview {
		f.mu.Unlock()
		return ErrWrongStep
	}
	if f.processing {
		f.mu.Unlock()
		return ErrPaymentInProgress
	}
	if f.shipping == nil {
		f.mu.Unlock()
		return ErrWrongStep
	}
	if f.cart.ItemCount() == 0 {
		f.mu.Unlock()
		return ErrEmptyCart
	}

	shipping := *f.shipping
	reference := uuid.NewString()
	req := payment.ChargeRequest{
		Amount:    f.currency.Convert(f.cart.Total()),
		Currency:  string(f.currency.Current().Code),
		Reference: reference,
		Customer: payment.Customer{
			Name:  shipping.FullName(),
			Email: shipping.Email,
			Phone: shipping.Phone,
		},
	}
	f.processing = true
	gateway := f.gateway
	// Release before charging: the gateway is allowed to call back synchronously.
	f.mu.Unlock()

	gateway.Charge(ctx, req, payment.Callbacks{
		OnComplete: f.handleComplete,
		OnDismiss:  f.handleDismiss,
	})
	return nil
}

func (f *Flow) handleComplete(res payment.ChargeResult) {
	f.mu.Lock()
	f.processing = false
	if !res.Succeeded() {
		// Stay in Review; the user may retry.
		f.mu.Unlock()
		return
	}
	f.confirmed = true
	f.reference = res.Reference
	hook := f.onConfirmed
	f.mu.Unlock()

	f.cart.Clear()
	if hook != nil {
		hook(res.Reference)
	}
}

func (f *Flow) handleDismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processing = false
}
