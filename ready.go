package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// WaitUntilReady probes the service under exponential backoff until it
// answers an HTTP request, the context is cancelled, or its deadline expires.
// Intended for dev and test startup ordering; the four API operations never
// retry on their own.
//
// Any HTTP answer below 500 counts as ready: the service is up and routing,
// whatever it thinks of the probe itself.
func (c *Client) WaitUntilReady(ctx context.Context) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	exp.MaxInterval = 2 * time.Second
	exp.MaxElapsedTime = 0 // bounded by ctx only

	probe := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/polls?skip=0&limit=1", nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode >= 500 {
			return fmt.Errorf("service not ready: status %d", resp.StatusCode)
		}
		return nil
	}

	return backoff.Retry(probe, backoff.WithContext(exp, ctx))
}
