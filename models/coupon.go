package models

import "time"

// CouponUsage is one entry in a coupon's append-only usage log.
type CouponUsage struct {
	UserID    string    `bson:"user_id" json:"userId"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	UsedAt    time.Time `bson:"used_at" json:"usedAt"`
}

// Coupon represents one percentage discount code with an activity window.
type Coupon struct {
	Code               string        `bson:"code" json:"code"` // 6 uppercase alphanumerics
	Description        string        `bson:"description" json:"description"`
	DiscountPercentage float64       `bson:"discount_percentage" json:"discountPercentage"`
	StartDate          time.Time     `bson:"start_date" json:"startDate"`
	ExpiryDate         time.Time     `bson:"expiry_date" json:"expiryDate"`
	IsActive           bool          `bson:"is_active" json:"isActive"`
	UsageCount         int           `bson:"usage_count" json:"usageCount"`
	UsedBy             []CouponUsage `bson:"used_by" json:"usedBy"`
	CreatedAt          time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updatedAt"`
}

// DiscountPreview is the result of validating a coupon against an order amount.
type DiscountPreview struct {
	CouponCode         string  `json:"couponCode"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountAmount     float64 `json:"discountAmount"`
	OriginalAmount     float64 `json:"originalAmount"`
	FinalAmount        float64 `json:"finalAmount"`
	Description        string  `json:"description"`
}
