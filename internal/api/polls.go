package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apierrors "github.com/pollwise/pollwise-client/internal/errors"
	"github.com/pollwise/pollwise-client/internal/types"
)

// ListPolls retrieves one page of polls. skip and limit are forwarded to the
// service exactly as given; no clamping happens client-side.
func ListPolls(ctx context.Context, httpClient *http.Client, baseURL string, skip, limit int) ([]types.Poll, error) {
	const op = "list polls"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	reqURL := fmt.Sprintf("%s/polls?%s", baseURL, q.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierrors.NewTransport(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		return nil, apierrors.NewStatus(op, resp.StatusCode, readBody(resp.Body))
	}

	var polls []types.Poll
	if err := json.NewDecoder(resp.Body).Decode(&polls); err != nil {
		return nil, apierrors.NewTransport(op, err)
	}
	return polls, nil
}
