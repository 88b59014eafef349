package sheets

import (
	"errors"
	"fmt"
	"strings"
)

// Known backend failure strings mapped to messages fit for a toast.
// Matching is substring-based because the spreadsheet backend wraps its
// errors differently depending on the failing script step.
var friendlyMessages = []struct {
	pattern string
	message string
}{
	{"Script function not found", "The booking sheet is being updated. Please try again in a minute."},
	{"Service invoked too many times", "Too many requests to the booking sheet. Please wait a moment and retry."},
	{"Exception: The sheet", "The booking sheet layout changed. Contact the administrator."},
	{"Authorization is required", "The booking sheet connection expired. Contact the administrator."},
	{"unreachable", "Cannot reach the booking sheet. Check your internet connection."},
	{"deadline exceeded", "The booking sheet took too long to respond. Please retry."},
}

// APIError wraps a sheet API failure with a user-presentable message while
// keeping the underlying error for logs.
type APIError struct {
	Friendly string
	Err      error
}

func (e *APIError) Error() string {
	return e.Err.Error()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// FriendlyError wraps err with a pattern-matched friendly message. Errors
// with no known pattern get a generic message.
func FriendlyError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	for _, fm := range friendlyMessages {
		if strings.Contains(msg, fm.pattern) {
			return &APIError{Friendly: fm.message, Err: err}
		}
	}
	return &APIError{
		Friendly: "Something went wrong talking to the booking sheet.",
		Err:      fmt.Errorf("sheet API: %w", err),
	}
}

// Friendly extracts the presentable message from an error, falling back to
// the raw error text.
func Friendly(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Friendly
	}
	return err.Error()
}
