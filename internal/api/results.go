package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apierrors "github.com/pollwise/pollwise-client/internal/errors"
	"github.com/pollwise/pollwise-client/internal/types"
)

// Results retrieves the tally for pollID.
func Results(ctx context.Context, httpClient *http.Client, baseURL string, pollID int) (*types.PollResults, error) {
	const op = "get results"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(pollID, "poll id"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/polls/%d/results", baseURL, pollID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierrors.NewTransport(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case is2xx(resp.StatusCode):
	case resp.StatusCode == http.StatusNotFound:
		return nil, apierrors.NewStatusAs(op, resp.StatusCode, readBody(resp.Body), apierrors.ErrNotFound)
	default:
		return nil, apierrors.NewStatus(op, resp.StatusCode, readBody(resp.Body))
	}

	var pr types.PollResults
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, apierrors.NewTransport(op, err)
	}
	return &pr, nil
}
