package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-fleet/internal/pricing"
)

const billingService = "billing"

// BillingClient fetches subscription terms for a customer.
type BillingClient struct {
	BaseURL  string
	Client   *http.Client
	validate *validator.Validate
}

// NewBillingClient constructs a client for the billing collaborator.
func NewBillingClient(baseURL string, client *http.Client) *BillingClient {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &BillingClient{BaseURL: baseURL, Client: client, validate: validator.New()}
}

type termsPayload struct {
	StartMonth    string  `json:"start_month" validate:"required,datetime=2006-01-02"`
	EndMonth      string  `json:"end_month" validate:"required,datetime=2006-01-02"`
	PricePerMonth float64 `json:"price_per_month" validate:"gte=0"`
}

// Terms retrieves and validates the subscription terms for a customer.
// Malformed payloads are rejected here, before they reach the pricing
// core.
func (c *BillingClient) Terms(ctx context.Context, customerID int64) (pricing.SubscriptionTerms, error) {
	start := time.Now()
	terms, err := c.fetch(ctx, customerID)
	observeUpstream(billingService, start, err)
	return terms, err
}

func (c *BillingClient) fetch(ctx context.Context, customerID int64) (pricing.SubscriptionTerms, error) {
	url := fmt.Sprintf("%s/abonnement/%d", c.BaseURL, customerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pricing.SubscriptionTerms{}, &Error{Service: billingService, Err: err}
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return pricing.SubscriptionTerms{}, &Error{Service: billingService, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return pricing.SubscriptionTerms{}, &Error{Service: billingService, Status: resp.StatusCode}
	}

	var payload termsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return pricing.SubscriptionTerms{}, &Error{Service: billingService, Err: fmt.Errorf("decode payload: %w", err)}
	}
	if err := c.validate.Struct(payload); err != nil {
		return pricing.SubscriptionTerms{}, &Error{Service: billingService, Err: fmt.Errorf("invalid payload: %w", err)}
	}

	return pricing.SubscriptionTerms{
		StartDate:     payload.StartMonth,
		EndDate:       payload.EndMonth,
		PricePerMonth: payload.PricePerMonth,
	}, nil
}
