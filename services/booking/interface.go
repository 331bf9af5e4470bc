package booking

import "citixo/models"

// BookingService owns the booking lifecycle: creation, status transitions,
// the time-windowed self-service edit, cancellation and review attachment.
type BookingService interface {
	Create(principal models.Principal, in models.CreateBookingInput) (*models.Booking, error)
	Get(principal models.Principal, bookingID string) (*models.Booking, error)
	List(principal models.Principal, filter models.BookingFilter) ([]models.Booking, int64, error)
	UpdateStatus(principal models.Principal, bookingID string, in models.StatusUpdateInput) (*models.Booking, error)
	AdminUpdate(principal models.Principal, in models.AdminEditInput) (*models.Booking, error)
	UserEdit(principal models.Principal, bookingID string, in models.UserEditInput) (*models.Booking, error)
	CancelByUser(principal models.Principal, bookingID string, in models.CancelBookingInput) (*models.Booking, error)
	AttachReview(principal models.Principal, bookingID string, in models.ReviewInput) (*models.Booking, error)
	CreatePaymentIntent(principal models.Principal, in models.CreateBookingInput) (*PaymentIntentResult, error)
}
