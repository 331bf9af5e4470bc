package models

import "time"

// Booking statuses.
const (
	BookingStatusPending     = "Pending"
	BookingStatusConfirmed   = "Confirmed"
	BookingStatusAssigned    = "Assigned"
	BookingStatusInProgress  = "In Progress"
	BookingStatusCompleted   = "Completed"
	BookingStatusCancelled   = "Cancelled"
	BookingStatusRescheduled = "Rescheduled"
)

// Payment statuses.
const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusFailed   = "Failed"
	PaymentStatusRefunded = "Refunded"
	PaymentStatusPartial  = "Partial"
)

// BookingStatuses enumerates every legal booking status.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusAssigned,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusRescheduled,
}

// PaymentStatuses enumerates every legal payment status.
var PaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusFailed,
	PaymentStatusRefunded,
	PaymentStatusPartial,
}

// IsValidPaymentStatus reports whether s is one of the enumerated payment
// statuses.
func IsValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidBookingStatus reports whether s is one of the enumerated statuses.
func IsValidBookingStatus(s string) bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminalBookingStatus reports whether s admits no further transitions.
func IsTerminalBookingStatus(s string) bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CustomerDetails is the customer snapshot embedded in a booking at creation
// time. It is never updated from the user record afterwards.
type CustomerDetails struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address" json:"address"`
}

// ServiceSnapshot is the service snapshot embedded in a booking at creation time.
type ServiceSnapshot struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	BasePrice   float64 `bson:"base_price" json:"basePrice"`
	Category    string  `bson:"category" json:"category"`
}

// Discount types.
const (
	DiscountTypeFixed      = "Fixed"
	DiscountTypePercentage = "Percentage"
)

// DiscountInfo records the discount applied to a booking.
type DiscountInfo struct {
	Amount     float64 `bson:"amount" json:"amount"`
	Type       string  `bson:"type" json:"type"`
	CouponCode string  `bson:"coupon_code" json:"couponCode"`
}

// StatusChange is one entry in a booking's append-only status history.
type StatusChange struct {
	Status    string    `bson:"status" json:"status"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	UpdatedBy string    `bson:"updated_by" json:"updatedBy"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// ProfessionalDetails identifies the professional assigned to a booking.
type ProfessionalDetails struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
}

// ReviewDetails holds the review attached to a completed booking.
type ReviewDetails struct {
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Cancellation records why and by whom a booking was cancelled.
type Cancellation struct {
	Reason      string    `bson:"reason" json:"reason"`
	CancelledBy string    `bson:"cancelled_by" json:"cancelledBy"`
	CancelledAt time.Time `bson:"cancelled_at" json:"cancelledAt"`
}

// PaymentInfo records the online payment attached to a booking, if any.
type PaymentInfo struct {
	PaymentID string    `bson:"payment_id" json:"paymentId"`
	Method    string    `bson:"method" json:"method"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	PaidAt    time.Time `bson:"paid_at" json:"paidAt"`
}

// Booking represents one scheduled service purchase.
type Booking struct {
	BookingID string `bson:"booking_id" json:"bookingId"`
	UserID    string `bson:"user_id" json:"userId"`
	ServiceID string `bson:"service_id" json:"serviceId"`

	CustomerDetails CustomerDetails `bson:"customer_details" json:"customerDetails"`
	ServiceDetails  ServiceSnapshot `bson:"service_details" json:"serviceDetails"`

	ScheduledDate string `bson:"scheduled_date" json:"scheduledDate"` // "YYYY-MM-DD"
	ScheduledTime string `bson:"scheduled_time" json:"scheduledTime"` // "HH:MM"
	Quantity      int    `bson:"quantity" json:"quantity"`

	TotalAmount float64       `bson:"total_amount" json:"totalAmount"`
	Discount    *DiscountInfo `bson:"discount,omitempty" json:"discount,omitempty"`
	FinalAmount float64       `bson:"final_amount" json:"finalAmount"`

	Status        string         `bson:"status" json:"status"`
	PaymentStatus string         `bson:"payment_status" json:"paymentStatus"`
	StatusHistory []StatusChange `bson:"status_history" json:"statusHistory"`

	SpecialInstructions string `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	Notes               string `bson:"notes,omitempty" json:"notes,omitempty"`

	ProfessionalDetails *ProfessionalDetails `bson:"professional_details,omitempty" json:"professionalDetails,omitempty"`
	ReviewDetails       *ReviewDetails       `bson:"review_details,omitempty" json:"reviewDetails,omitempty"`
	Cancellation        *Cancellation        `bson:"cancellation,omitempty" json:"cancellation,omitempty"`
	Payment             *PaymentInfo         `bson:"payment,omitempty" json:"payment,omitempty"`

	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}

// ScheduledAt combines ScheduledDate and ScheduledTime into a single instant
// in the local timezone.
func (b *Booking) ScheduledAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.ScheduledDate+" "+b.ScheduledTime, time.Local)
}
