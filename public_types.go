package client

import "github.com/pollwise/pollwise-client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	RegisterRequest = types.RegisterRequest
	VoteRequest     = types.VoteRequest

	// Domain entities
	User       = types.User
	Poll       = types.Poll
	PollOption = types.PollOption
	Vote       = types.Vote

	// Responses
	PollResults  = types.PollResults
	OptionResult = types.OptionResult
)

// Errors re-exported in errors.go
