package gateway

import "errors"

// ErrUnavailable reports that the gateway could not be reached or returned a
// malformed response. For user messaging it is handled exactly like a
// rejection, only without a backend-provided message.
var ErrUnavailable = errors.New("gateway unavailable")

// RejectedError is returned when the gateway processed the request and
// refused it. Message holds the backend-provided text and may be empty.
type RejectedError struct {
	Op      string
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return e.Op + ": rejected by gateway"
	}
	return e.Op + ": " + e.Message
}

// UserMessage returns the backend-provided message carried by err, or
// fallback when err is not a rejection or carries no message. This mirrors
// how the dashboard surfaces gateway errors: verbatim detail when present,
// a fixed operation-specific string otherwise.
func UserMessage(err error, fallback string) string {
	var rej *RejectedError
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message
	}
	return fallback
}
