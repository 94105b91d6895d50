package types

// ------------------------------
// Response Types
// ------------------------------

// OptionResult is the tally for one option, in service-defined order.
type OptionResult struct {
	Text      string `json:"text"`
	VoteCount int    `json:"vote_count"`
}

// PollResults mirrors the /polls/{id}/results response shape.
type PollResults struct {
	Question string         `json:"question"`
	Results  []OptionResult `json:"results"`
}
