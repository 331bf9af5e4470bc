package auth

import (
	"fmt"
	"time"

	"citixo/models"
	"citixo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenTTL = 7 * 24 * time.Hour

// CheckEmail reports whether an account already exists for the email.
func (s *DefaultAuthService) CheckEmail(email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, newValidationError("Email is required")
	}
	existing, err := s.Users.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return existing != nil, nil
}

// Signup finalizes an OTP-verified registration. The signup OTP for the email
// must have been verified (marked used) and must not have aged out yet.
func (s *DefaultAuthService) Signup(in SignupInput) (*AuthResponse, error) {
	email := normalizeEmail(in.Email)
	if in.Name == "" || email == "" || in.Password == "" {
		return nil, newValidationError("Name, email and password are required")
	}
	if len(in.Password) < 8 {
		return nil, newValidationError("Password must be at least 8 characters")
	}

	exists, err := s.CheckEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &AuthError{Code: CodeConflict, Message: "An account with this email already exists"}
	}

	rec, err := s.OTPs.Get(email, models.OTPPurposeSignup)
	if err != nil {
		return nil, fmt.Errorf("failed to load OTP record: %w", err)
	}
	if rec == nil || !rec.IsUsed {
		return nil, newAuthFailure("Email not verified, please complete OTP verification first")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		Role:         models.RoleUser,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueSession(user)
}

// Login authenticates by email and password and issues a fresh session token.
func (s *DefaultAuthService) Login(email, password string) (*AuthResponse, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, newValidationError("Email and password are required")
	}

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, newAuthFailure("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, newAuthFailure("Invalid email or password")
	}

	return s.issueSession(user)
}

// issueSession mints a JWT for the user and stores its hash for revocation
// checks.
func (s *DefaultAuthService) issueSession(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	if err := s.Users.SetTokenHash(user.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("failed to store session token hash", zap.String("userId", user.ID), zap.Error(err))
	} else {
		utils.InvalidateSession(user.ID)
	}
	user.TokenHash = ""
	return &AuthResponse{User: user, Token: token}, nil
}
