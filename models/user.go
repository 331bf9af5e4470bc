package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a platform user (customer or administrator).
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	PhoneNumber  string `bson:"phone_number" json:"phoneNumber"`
	Address      string `bson:"address" json:"address"`
	Role         string `bson:"role" json:"role"`

	// Aggregate booking statistics, incremented as a side effect of
	// booking creation.
	TotalBookings int     `bson:"total_bookings" json:"totalBookings"`
	TotalSpent    float64 `bson:"total_spent" json:"totalSpent"`

	// SHA-256 hash of the current session token; cleared on revocation.
	TokenHash string `bson:"token_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
