package domain

import "time"

// Session owns exactly one Outline. The id is an opaque string chosen by the
// caller (or generated) and is passed through to the workflow webhook
// unchanged.
type Session struct {
	ID       string
	Outline  *Outline
	Feedback string

	// Busy gates every mutation entry point while a generate call is in
	// flight. No cancellation: the call runs to completion, timeout, or
	// failure.
	Busy bool

	// RawResponse holds the last webhook body that was not structured
	// data, kept for manual inspection instead of being merged.
	RawResponse string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionResponse struct {
	ID          string    `json:"id"`
	Busy        bool      `json:"busy"`
	Feedback    string    `json:"feedback"`
	RawResponse string    `json:"raw_response,omitempty"`
	Outline     Snapshot  `json:"outline"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
