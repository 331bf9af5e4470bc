package models

import "time"

// Service statuses.
const (
	ServiceStatusActive   = "Active"
	ServiceStatusInactive = "Inactive"
)

// Service represents one bookable catalog entry.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	BasePrice   float64 `bson:"base_price" json:"basePrice"`
	Category    string  `bson:"category" json:"category"`
	Status      string  `bson:"status" json:"status"`

	// Incremented as a side effect of booking creation.
	BookingCount int `bson:"booking_count" json:"bookingCount"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
