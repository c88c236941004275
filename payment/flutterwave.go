package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.flutterwave.com/v3"

// Client charges cards through the Flutterwave direct-charge API. It satisfies
// Gateway: each Charge delivers exactly one terminal callback, or the dismissal
// callback if the context is cancelled before the gateway answers.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
	log       *zap.SugaredLogger
}

// NewClientFromEnv reads FLW_SECRET_KEY and the optional FLW_API_URL override.
func NewClientFromEnv(log *zap.SugaredLogger) (*Client, error) {
	secret := os.Getenv("FLW_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("flutterwave configuration missing: FLW_SECRET_KEY not set")
	}
	baseURL := os.Getenv("FLW_API_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return NewClient(baseURL, secret, log), nil
}

func NewClient(baseURL, secretKey string, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		http:      &http.Client{},
		log:       log,
	}
}

type chargeResponse struct {
	Status  string `json:"status"` // "success" or "error"
	Message string `json:"message"`
	Data    struct {
		ID     json.Number `json:"id"`
		TxRef  string      `json:"tx_ref"`
		Status string      `json:"status"` // "successful", "failed", ...
	} `json:"data"`
}

func (c *Client) Charge(ctx context.Context, req ChargeRequest, cb Callbacks) {
	result, err := c.createCharge(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			// Caller walked away before the gateway answered.
			if cb.OnDismiss != nil {
				cb.OnDismiss()
			}
			return
		}
		c.log.Warnw("charge failed", "tx_ref", req.Reference, "err", err)
		if cb.OnComplete != nil {
			cb.OnComplete(ChargeResult{
				Status:    StatusFailed,
				Reference: req.Reference,
				Message:   err.Error(),
			})
		}
		return
	}
	if cb.OnComplete != nil {
		cb.OnComplete(result)
	}
}

func (c *Client) createCharge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	payload := map[string]interface{}{
		"tx_ref":   req.Reference,
		"amount":   req.Amount,
		"currency": req.Currency,
		"customer": map[string]string{
			"name":         req.Customer.Name,
			"email":        req.Customer.Email,
			"phone_number": req.Customer.Phone,
		},
	}
	body, _ := json.Marshal(payload)
	c.log.Debugw("creating charge", "tx_ref", req.Reference, "amount", req.Amount, "currency", req.Currency)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return ChargeResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return ChargeResult{}, fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return ChargeResult{}, fmt.Errorf("gateway error (%d): %s", resp.StatusCode, raw)
	}

	var parsed chargeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ChargeResult{}, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if parsed.Status != "success" {
		return ChargeResult{}, fmt.Errorf("gateway rejected charge: %s", parsed.Message)
	}

	status := Status(parsed.Data.Status)
	if status != StatusSuccessful && status != StatusCompleted {
		status = StatusFailed
	}
	return ChargeResult{
		Status:        status,
		Reference:     parsed.Data.TxRef,
		TransactionID: parsed.Data.ID.String(),
		Message:       parsed.Message,
	}, nil
}
