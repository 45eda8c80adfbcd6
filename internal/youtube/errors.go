package youtube

import (
	"errors"
	"fmt"
)

// Reason codes returned by the API in error bodies. Callers branch on these,
// never on message text.
const (
	ReasonCommentsDisabled = "commentsDisabled"
	ReasonVideoNotFound    = "videoNotFound"
	ReasonQuotaExceeded    = "quotaExceeded"
)

// APIError is a structured failure reported by the YouTube Data API.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("youtube API error (status %d, reason %s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("youtube API error (status %d): %s", e.StatusCode, e.Message)
}

// HasReason reports whether err is an APIError carrying the given reason code.
func HasReason(err error, reason string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Reason == reason
}
