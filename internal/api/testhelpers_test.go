package api

import (
	"fmt"
	"net/http"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// errClient returns an *http.Client whose every request fails at the transport.
func errClient() *http.Client { return &http.Client{Transport: &errRT{}} }
