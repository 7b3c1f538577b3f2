package service

import "errors"

// ErrSessionBusy is returned by every mutation entry point while a generate
// call is in flight for the session.
var ErrSessionBusy = errors.New("session is busy generating")

var ErrSectionNotFound = errors.New("section index out of range")

// MalformedResponseError reports a webhook body that was valid JSON but not
// an outline in any accepted wrapping. The outline is left untouched.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	return "webhook response has an unexpected shape"
}
