package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-fleet/internal/upstream"
)

func TestBillingTerms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/abonnement/9", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"start_month": "2024-01-01", "end_month": "2024-04-01", "price_per_month": 200}`))
	}))
	defer srv.Close()

	client := upstream.NewBillingClient(srv.URL, srv.Client())
	terms, err := client.Terms(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", terms.StartDate)
	require.Equal(t, "2024-04-01", terms.EndDate)
	require.Equal(t, float64(200), terms.PricePerMonth)
}

func TestBillingTermsRejectsMalformedPayload(t *testing.T) {
	cases := map[string]string{
		"missing start":     `{"end_month": "2024-04-01", "price_per_month": 200}`,
		"bad date format":   `{"start_month": "01/01/2024", "end_month": "2024-04-01", "price_per_month": 200}`,
		"negative price":    `{"start_month": "2024-01-01", "end_month": "2024-04-01", "price_per_month": -5}`,
		"not even json":     `<html>`,
		"wrong value types": `{"start_month": 20240101, "end_month": "2024-04-01", "price_per_month": 200}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			client := upstream.NewBillingClient(srv.URL, srv.Client())
			_, err := client.Terms(context.Background(), 9)
			var upErr *upstream.Error
			require.ErrorAs(t, err, &upErr)
			require.Equal(t, "billing", upErr.Service)
		})
	}
}

func TestBillingTermsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := upstream.NewBillingClient(srv.URL, srv.Client())
	_, err := client.Terms(context.Background(), 9)
	var upErr *upstream.Error
	require.ErrorAs(t, err, &upErr)
	require.Equal(t, http.StatusNotFound, upErr.Status)
}
