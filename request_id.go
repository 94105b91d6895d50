package client

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDTransport stamps each outgoing request with an X-Request-Id so
// client and service logs can be correlated. A caller-supplied ID wins.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	if cloned.Header.Get("X-Request-Id") == "" {
		cloned.Header.Set("X-Request-Id", uuid.NewString())
	}
	return t.base.RoundTrip(cloned)
}

// wrapTransportWithRequestID wraps the HTTP client's transport so every
// request carries a request ID, whatever transport the options installed.
func (c *Client) wrapTransportWithRequestID() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &requestIDTransport{base: baseTransport}
}
