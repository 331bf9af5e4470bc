package auth

import "citixo/models"

// AuthService owns OTP-gated registration and session issuance. Verification
// and registration are separate steps: VerifyOTP marks the record used, and
// Signup requires that a used record exists for the email.
type AuthService interface {
	SendOTP(email, purpose string) error
	VerifyOTP(email, purpose, otp string) error
	CheckEmail(email string) (exists bool, err error)
	Signup(in SignupInput) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
}

// SignupInput is the payload finalizing an OTP-verified registration.
type SignupInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// AuthResponse carries the created/authenticated user and its session token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
