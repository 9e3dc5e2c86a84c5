package entity

import "errors"

var (
	// ErrRenderTimeout: expected content never appeared within the wait budget.
	ErrRenderTimeout = errors.New("render timeout")
	// ErrElementNotFound: a selector yielded no or fewer elements than expected.
	ErrElementNotFound = errors.New("element not found")
	// ErrMalformedField: a text field failed its stripping/parsing contract.
	ErrMalformedField = errors.New("malformed field")
	// ErrSessionFailure: the browser session is no longer usable.
	ErrSessionFailure = errors.New("browser session failure")
)

// Reason maps an error onto the taxonomy above. Unknown errors are reported as "other".
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRenderTimeout):
		return "render_timeout"
	case errors.Is(err, ErrElementNotFound):
		return "element_not_found"
	case errors.Is(err, ErrMalformedField):
		return "malformed_field"
	case errors.Is(err, ErrSessionFailure):
		return "session_failure"
	default:
		return "other"
	}
}
