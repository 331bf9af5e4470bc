package userRepo

import "citixo/models"

// UserRepository defines data access for user records.
type UserRepository interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(u *models.User) error
	SetTokenHash(id, tokenHash string) error
	// IncrementBookingStats bumps totalBookings by one and totalSpent by
	// amount.
	IncrementBookingStats(id string, amount float64) error
}
