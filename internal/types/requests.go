package types

// ------------------------------
// Request Types
// ------------------------------

// RegisterRequest holds credentials for a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VoteRequest holds the option chosen for a ballot.
type VoteRequest struct {
	OptionID int `json:"option_id"`
}
