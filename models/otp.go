package models

import "time"

// OTP purposes.
const (
	OTPPurposeSignup            = "signup"
	OTPPurposeLogin             = "login"
	OTPPurposePasswordReset     = "password_reset"
	OTPPurposeEmailVerification = "email_verification"
)

// MaxOTPAttempts caps failed verifications per record.
const MaxOTPAttempts = 3

// OTPRecord represents one pending email verification attempt. The backing
// collection carries a TTL index on expires_at, so records also age out on
// their own.
type OTPRecord struct {
	Email     string    `bson:"email" json:"email"`
	Purpose   string    `bson:"purpose" json:"purpose"`
	OTP       string    `bson:"otp" json:"-"` // 6 digits
	IsUsed    bool      `bson:"is_used" json:"isUsed"`
	Attempts  int       `bson:"attempts" json:"attempts"`
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
