package auth

import "fmt"

// Error codes used by handlers to pick HTTP status codes.
const (
	CodeValidation  = "validation"
	CodeAuth        = "auth"
	CodeConflict    = "conflict"
	CodeNotFound    = "notFound"
	CodeRateLimited = "rateLimited"
)

// AuthError carries a machine code and a user-facing message. RetryAfter is
// set (in seconds) only for rate-limited OTP sends.
type AuthError struct {
	Code       string
	Message    string
	RetryAfter int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(msg string) error {
	return &AuthError{Code: CodeValidation, Message: msg}
}

func newAuthFailure(msg string) error {
	return &AuthError{Code: CodeAuth, Message: msg}
}
