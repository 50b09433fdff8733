package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/noah-isme/backend-fleet/internal/obs"
	"github.com/noah-isme/backend-fleet/internal/pricing"
)

const damageService = "damage"

// identifier fields in the damage payload that are not damage categories.
var damageIdentifierFields = map[string]struct{}{
	"car_id":     {},
	"vehicle_id": {},
	"id":         {},
}

// DamageClient fetches per-category vehicle condition reports.
type DamageClient struct {
	BaseURL string
	Client  *http.Client
}

// NewDamageClient constructs a client for the damage collaborator.
func NewDamageClient(baseURL string, client *http.Client) *DamageClient {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &DamageClient{BaseURL: baseURL, Client: client}
}

// Report retrieves the damage report for a vehicle. An empty collection
// from the collaborator means no damage on record and yields an empty
// report rather than an error.
func (c *DamageClient) Report(ctx context.Context, carID int64) (pricing.DamageReport, error) {
	start := time.Now()
	report, err := c.fetch(ctx, carID)
	observeUpstream(damageService, start, err)
	return report, err
}

func (c *DamageClient) fetch(ctx context.Context, carID int64) (pricing.DamageReport, error) {
	url := fmt.Sprintf("%s/damage/%d", c.BaseURL, carID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Service: damageService, Err: err}
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &Error{Service: damageService, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Service: damageService, Status: resp.StatusCode}
	}

	var payload []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{Service: damageService, Err: fmt.Errorf("decode payload: %w", err)}
	}
	if len(payload) == 0 {
		return pricing.DamageReport{}, nil
	}

	report := make(pricing.DamageReport, len(payload[0]))
	for field, value := range payload[0] {
		if _, skip := damageIdentifierFields[field]; skip {
			continue
		}
		condition, ok := value.(string)
		if !ok {
			return nil, &Error{Service: damageService, Err: fmt.Errorf("field %q is not a condition string", field)}
		}
		report[field] = condition
	}
	return report, nil
}

func observeUpstream(service string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	if obs.UpstreamRequestsTotal != nil {
		obs.UpstreamRequestsTotal.WithLabelValues(service, result).Inc()
	}
	if obs.UpstreamLatency != nil {
		obs.UpstreamLatency.WithLabelValues(service).Observe(obs.DurationMillis(time.Since(start)))
	}
}
