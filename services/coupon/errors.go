package coupon

import "fmt"

// Error codes used by handlers to pick HTTP status codes.
const (
	CodeNotFound   = "notFound"
	CodeValidation = "validation"
	CodeConflict   = "conflict"
)

// CouponError carries a machine code and a user-facing message.
type CouponError struct {
	Code    string
	Message string
}

func (e *CouponError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Rejection reasons for Validate, first failure wins.
var (
	ErrCouponNotFound     = &CouponError{Code: CodeNotFound, Message: "Coupon not found"}
	ErrCouponInactive     = &CouponError{Code: CodeValidation, Message: "Coupon inactive"}
	ErrCouponNotYetActive = &CouponError{Code: CodeValidation, Message: "Coupon not yet active"}
	ErrCouponExpired      = &CouponError{Code: CodeValidation, Message: "Coupon expired"}
)

func newValidationError(msg string) error {
	return &CouponError{Code: CodeValidation, Message: msg}
}
