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

// Register creates a new user account.
func Register(ctx context.Context, httpClient *http.Client, baseURL string, req types.RegisterRequest) (*types.User, error) {
	const op = "register"
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateCredentials(req.Username, req.Password); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/register", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierrors.NewTransport(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case is2xx(resp.StatusCode):
	case resp.StatusCode == http.StatusBadRequest:
		return nil, apierrors.NewStatusAs(op, resp.StatusCode, readBody(resp.Body), apierrors.ErrDuplicateUsername)
	default:
		return nil, apierrors.NewStatus(op, resp.StatusCode, readBody(resp.Body))
	}

	var user types.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, apierrors.NewTransport(op, err)
	}
	return &user, nil
}
