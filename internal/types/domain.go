package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// User is the account record returned by registration.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// PollOption is one selectable answer within a poll.
type PollOption struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Poll is a question with its selectable options.
type Poll struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
}

// Vote is the record created when a ballot is cast.
type Vote struct {
	ID       int `json:"id"`
	UserID   int `json:"user_id"`
	OptionID int `json:"option_id"`
}
