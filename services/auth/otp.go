package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"citixo/config"
	otpRepo "citixo/database/repository/otp"
	userRepo "citixo/database/repository/user"
	"citixo/models"
	"citixo/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CooldownStore is the subset of redis commands used for resend throttling.
// *redis.Client satisfies it; tests install fakes.
type CooldownStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultAuthService is the production AuthService implementation.
type DefaultAuthService struct {
	Users userRepo.UserRepository
	OTPs  otpRepo.OTPRepository
	// Cooldown tracks per-email resend throttling; nil disables it.
	Cooldown CooldownStore
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAuthService) otpTTL() time.Duration {
	if sec := config.AppConfig.OTPTTLSeconds; sec > 0 {
		return time.Duration(sec) * time.Second
	}
	return 60 * time.Second
}

func (s *DefaultAuthService) resendCooldown() time.Duration {
	if sec := config.AppConfig.OTPResendCooldownSec; sec > 0 {
		return time.Duration(sec) * time.Second
	}
	return 60 * time.Second
}

// generateNumericOTP generates a secure random code of the given number of
// decimal digits.
func generateNumericOTP(length int) (string, error) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validPurpose(purpose string) bool {
	switch purpose {
	case models.OTPPurposeSignup, models.OTPPurposeLogin,
		models.OTPPurposePasswordReset, models.OTPPurposeEmailVerification:
		return true
	}
	return false
}

// SendOTP issues a fresh 6-digit code for (email, purpose), replacing any
// previous one. Repeat requests inside the cooldown window are rejected with
// a retryAfter value.
func (s *DefaultAuthService) SendOTP(email, purpose string) error {
	email = normalizeEmail(email)
	if email == "" {
		return newValidationError("Email is required")
	}
	if !validPurpose(purpose) {
		return newValidationError("Invalid OTP purpose")
	}

	ctx := context.Background()
	cooldownKey := fmt.Sprintf("otpCooldown:%s:%s", email, purpose)
	if s.Cooldown != nil {
		ok, err := s.Cooldown.SetNX(ctx, cooldownKey, 1, s.resendCooldown()).Result()
		if err != nil {
			utils.GetLogger().Error("OTP cooldown check failed", zap.Error(err))
			return fmt.Errorf("failed to check OTP cooldown: %w", err)
		}
		if !ok {
			ttl, _ := s.Cooldown.TTL(ctx, cooldownKey).Result()
			retryAfter := int(ttl.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			return &AuthError{
				Code:       CodeRateLimited,
				Message:    "An OTP was sent recently, please wait before requesting another",
				RetryAfter: retryAfter,
			}
		}
	}

	code, err := generateNumericOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	rec := &models.OTPRecord{
		Email:     email,
		Purpose:   purpose,
		OTP:       code,
		ExpiresAt: s.now().Add(s.otpTTL()),
	}
	if err := s.OTPs.Put(rec); err != nil {
		// Release the cooldown, otherwise the user sits out the window with
		// no code to verify.
		if s.Cooldown != nil {
			s.Cooldown.Del(ctx, cooldownKey)
		}
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	// Email dispatch goes through the mail provider; here the send is logged.
	utils.GetLogger().Sugar().Infof("Sending OTP email to %s for %s (expires %s)", email, purpose, rec.ExpiresAt.Format(time.RFC3339))
	return nil
}

// VerifyOTP checks a submitted code. Each failed comparison burns an attempt;
// after three the record is exhausted and a new OTP must be requested. A
// successful comparison marks the record used, which Signup later requires.
func (s *DefaultAuthService) VerifyOTP(email, purpose, otp string) error {
	email = normalizeEmail(email)
	if email == "" || otp == "" {
		return newValidationError("Email and OTP are required")
	}
	if !validPurpose(purpose) {
		return newValidationError("Invalid OTP purpose")
	}

	rec, err := s.OTPs.Get(email, purpose)
	if err != nil {
		return fmt.Errorf("failed to load OTP record: %w", err)
	}
	if rec == nil {
		return newAuthFailure("OTP not found or expired, please request a new one")
	}
	if rec.IsUsed {
		return newAuthFailure("This OTP has already been used")
	}
	if rec.Attempts >= models.MaxOTPAttempts {
		return newAuthFailure("Too many failed attempts, please request a new OTP")
	}
	// The TTL index reaps expired records eventually; the timestamp check
	// here covers the gap.
	if !s.now().Before(rec.ExpiresAt) {
		return newAuthFailure("OTP expired, please request a new one")
	}

	if rec.OTP != otp {
		if err := s.OTPs.IncrementAttempts(email, purpose); err != nil {
			utils.GetLogger().Error("failed to increment OTP attempts", zap.String("email", email), zap.Error(err))
		}
		return newAuthFailure("Incorrect OTP")
	}

	if err := s.OTPs.MarkUsed(email, purpose); err != nil {
		return fmt.Errorf("failed to mark OTP used: %w", err)
	}
	return nil
}
