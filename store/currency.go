package store

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type CurrencyCode string

const (
	NGN CurrencyCode = "NGN"
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
)

// Currency pairs an ISO code with its display symbol and exchange rate relative to
// the base currency (USD, rate 1). Product prices are stored in the base currency
// only; every displayed amount is converted on render.
type Currency struct {
	Code   CurrencyCode `json:"code"`
	Symbol string       `json:"symbol"`
	Rate   float64      `json:"rate"`
}

var currencies = map[CurrencyCode]Currency{
	NGN: {Code: NGN, Symbol: "₦", Rate: 1500},
	USD: {Code: USD, Symbol: "$", Rate: 1},
	EUR: {Code: EUR, Symbol: "€", Rate: 0.92},
	GBP: {Code: GBP, Symbol: "£", Rate: 0.79},
}

const defaultCurrency = NGN

// CurrencyStore holds the active currency selection and persists it across
// sessions.
type CurrencyStore struct {
	mu      sync.Mutex
	current Currency
	storage Storage
	printer *message.Printer
}

func NewCurrencyStore(storage Storage) *CurrencyStore {
	s := &CurrencyStore{
		current: currencies[defaultCurrency],
		storage: storage,
		printer: message.NewPrinter(language.English),
	}
	if data, ok := storage.Get(CurrencyStorageKey); ok {
		if cur, found := currencies[CurrencyCode(data)]; found {
			s.current = cur
		}
	}
	return s
}

func (s *CurrencyStore) Current() Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetCurrency switches the active currency and persists the choice. Unknown codes
// are rejected; the rate table is fixed at build time.
func (s *CurrencyStore) SetCurrency(code CurrencyCode) error {
	cur, ok := currencies[code]
	if !ok {
		return fmt.Errorf("unknown currency code %q", code)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = cur
	return s.storage.Set(CurrencyStorageKey, []byte(code))
}

// Convert turns a base-currency amount into the active currency.
func (s *CurrencyStore) Convert(amount float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return amount * s.current.Rate
}

// Format converts and renders an amount with the active currency's symbol, grouped
// digits and at most two decimal places. NaN and infinities format to the empty
// string; that is the defined degenerate case, not an error.
func (s *CurrencyStore) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	converted := amount * s.current.Rate
	return s.printer.Sprintf("%s%v", s.current.Symbol,
		number.Decimal(converted, number.MinFractionDigits(0), number.MaxFractionDigits(2)))
}
