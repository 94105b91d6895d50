package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apierrors "github.com/pollwise/pollwise-client/internal/errors"
	"github.com/pollwise/pollwise-client/internal/types"
)

// Vote casts a ballot for optionID on pollID, authenticated by accessToken.
// Repeated calls cast repeated votes; the service owns any dedup policy.
func Vote(ctx context.Context, httpClient *http.Client, baseURL string, pollID, optionID int, accessToken string) (*types.Vote, error) {
	const op = "vote"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(pollID, "poll id"); err != nil {
		return nil, err
	}
	if err := types.ValidateID(optionID, "option id"); err != nil {
		return nil, err
	}
	if err := types.ValidateAccessToken(accessToken); err != nil {
		return nil, err
	}
	body, err := json.Marshal(types.VoteRequest{OptionID: optionID})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/polls/%d/vote", baseURL, pollID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierrors.NewTransport(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case is2xx(resp.StatusCode):
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, apierrors.NewStatusAs(op, resp.StatusCode, readBody(resp.Body), apierrors.ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return nil, apierrors.NewStatusAs(op, resp.StatusCode, readBody(resp.Body), apierrors.ErrNotFound)
	default:
		return nil, apierrors.NewStatus(op, resp.StatusCode, readBody(resp.Body))
	}

	var vote types.Vote
	if err := json.NewDecoder(resp.Body).Decode(&vote); err != nil {
		return nil, apierrors.NewTransport(op, err)
	}
	return &vote, nil
}
