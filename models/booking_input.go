package models

// CreateBookingInput is the payload for POST /api/bookings. Any client-sent
// discount amount is advisory only; the server recomputes amounts from the
// live coupon and service records.
type CreateBookingInput struct {
	ServiceID           string           `json:"serviceId" binding:"required"`
	ScheduledDate       string           `json:"scheduledDate" binding:"required"`
	ScheduledTime       string           `json:"scheduledTime" binding:"required"`
	Quantity            int              `json:"quantity"`
	CustomerDetails     CustomerDetails  `json:"customerDetails" binding:"required"`
	SpecialInstructions string           `json:"specialInstructions"`
	Notes               string           `json:"notes"`
	Discount            *DiscountInfo    `json:"discount,omitempty"`
	PaymentData         *PaymentDataInput `json:"paymentData,omitempty"`
}

// PaymentDataInput carries the client's completed-payment reference for the
// pay-first flow.
type PaymentDataInput struct {
	PaymentID string  `json:"paymentId" binding:"required"`
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// UserEditInput is the payload for PUT /api/bookings/{id}/user-edit. Amounts,
// service and status are deliberately absent.
type UserEditInput struct {
	ScheduledDate       string           `json:"scheduledDate"`
	ScheduledTime       string           `json:"scheduledTime"`
	CustomerDetails     *CustomerDetails `json:"customerDetails,omitempty"`
	SpecialInstructions *string          `json:"specialInstructions,omitempty"`
	Notes               *string          `json:"notes,omitempty"`
}

// AdminEditInput is the payload for PUT /api/bookings, the admin partial
// patch. Absent fields leave the booking untouched; a status change goes
// through the same transition rules as the dedicated status endpoint.
type AdminEditInput struct {
	BookingID           string               `json:"bookingId" binding:"required"`
	Status              string               `json:"status"`
	StatusNotes         string               `json:"statusNotes"`
	PaymentStatus       string               `json:"paymentStatus"`
	ScheduledDate       string               `json:"scheduledDate"`
	ScheduledTime       string               `json:"scheduledTime"`
	CustomerDetails     *CustomerDetails     `json:"customerDetails,omitempty"`
	ProfessionalDetails *ProfessionalDetails `json:"professionalDetails,omitempty"`
	SpecialInstructions *string              `json:"specialInstructions,omitempty"`
	Notes               *string              `json:"notes,omitempty"`
}

// StatusUpdateInput is the payload for PUT /api/bookings/{id}/status.
type StatusUpdateInput struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// CancelBookingInput is the payload for a user-initiated cancellation.
type CancelBookingInput struct {
	Reason string `json:"reason"`
}

// ReviewInput is the payload for POST /api/bookings/{id}/review.
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ValidateCouponInput is the payload for POST /api/coupons/validate.
type ValidateCouponInput struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// CouponInput is the admin payload for coupon create/update.
type CouponInput struct {
	Code               string  `json:"code" binding:"required"`
	Description        string  `json:"description"`
	DiscountPercentage float64 `json:"discountPercentage" binding:"required"`
	StartDate          string  `json:"startDate" binding:"required"`  // RFC 3339
	ExpiryDate         string  `json:"expiryDate" binding:"required"` // RFC 3339
	IsActive           *bool   `json:"isActive,omitempty"`
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	UserID    string // empty for admin listing across users
	Status    string
	ServiceID string
	DateFrom  string // "YYYY-MM-DD", inclusive
	DateTo    string // "YYYY-MM-DD", inclusive
	Page      int
	PageSize  int
}
