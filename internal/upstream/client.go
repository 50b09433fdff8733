package upstream

import (
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Error represents a failed collaborator interaction: transport fault,
// timeout, non-success status, or a payload the boundary rejected.
type Error struct {
	Service string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s service returned status %d", e.Service, e.Status)
	}
	return fmt.Sprintf("%s service: %v", e.Service, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewHTTPClient builds the shared outbound client with a bounded
// deadline and otel instrumentation. Expiry surfaces as an Error.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
