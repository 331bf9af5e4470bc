package booking

import (
	"errors"
	"fmt"
	"time"

	"citixo/models"
	"citixo/services/coupon"
	"citixo/utils"

	"go.uber.org/zap"
)

// Create validates the request against the live user, service and coupon
// records, persists the booking, and then fires the post-commit side effects.
// Client-sent discount or final amounts are advisory only; every amount is
// recomputed here.
func (s *DefaultBookingService) Create(principal models.Principal, in models.CreateBookingInput) (*models.Booking, error) {
	if principal.IsAdmin() {
		return nil, NewForbiddenError("Admins cannot create bookings for themselves")
	}

	user, err := s.Users.GetByID(principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, NewNotFoundError("User not found")
	}

	svc, err := s.Services.GetByID(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, NewNotFoundError("Service not found")
	}
	if svc.Status != models.ServiceStatusActive {
		return nil, NewValidationError("Service is not available for booking")
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, NewValidationError("Quantity must be at least 1")
	}
	if _, err := time.ParseInLocation("2006-01-02 15:04", in.ScheduledDate+" "+in.ScheduledTime, time.Local); err != nil {
		return nil, NewValidationError("Invalid scheduled date or time")
	}

	totalAmount := ComputeTotal(svc.BasePrice, quantity)

	// Re-validate any applied coupon against the live record; the discount
	// amount the client sent is never trusted.
	var discount *models.DiscountInfo
	if in.Discount != nil && in.Discount.CouponCode != "" {
		preview, err := s.CouponSvc.Validate(in.Discount.CouponCode, totalAmount)
		if err != nil {
			var ce *coupon.CouponError
			if errors.As(err, &ce) {
				return nil, NewValidationError(ce.Message)
			}
			return nil, fmt.Errorf("coupon validation failed: %w", err)
		}
		discount = &models.DiscountInfo{
			Amount:     preview.DiscountAmount,
			Type:       models.DiscountTypePercentage,
			CouponCode: preview.CouponCode,
		}
	}
	finalAmount := ApplyDiscount(totalAmount, discount)

	now := s.now()
	status := models.BookingStatusPending
	paymentStatus := models.PaymentStatusPending
	var payment *models.PaymentInfo
	if in.PaymentData != nil {
		// Payment-first flow: the booking starts out Confirmed.
		status = models.BookingStatusConfirmed
		paymentStatus = models.PaymentStatusPaid
		payment = &models.PaymentInfo{
			PaymentID: in.PaymentData.PaymentID,
			Method:    in.PaymentData.Method,
			Amount:    finalAmount,
			Currency:  in.PaymentData.Currency,
			PaidAt:    now,
		}
	}

	b := &models.Booking{
		BookingID: s.newBookingID(),
		UserID:    user.ID,
		ServiceID: svc.ID,
		CustomerDetails: models.CustomerDetails{
			Name:    in.CustomerDetails.Name,
			Phone:   in.CustomerDetails.Phone,
			Email:   in.CustomerDetails.Email,
			Address: in.CustomerDetails.Address,
		},
		ServiceDetails: models.ServiceSnapshot{
			Name:        svc.Name,
			Description: svc.Description,
			BasePrice:   svc.BasePrice,
			Category:    svc.Category,
		},
		ScheduledDate:       in.ScheduledDate,
		ScheduledTime:       in.ScheduledTime,
		Quantity:            quantity,
		TotalAmount:         totalAmount,
		Discount:            discount,
		FinalAmount:         finalAmount,
		Status:              status,
		PaymentStatus:       paymentStatus,
		SpecialInstructions: in.SpecialInstructions,
		Notes:               in.Notes,
		Payment:             payment,
		StatusHistory: []models.StatusChange{{
			Status:    status,
			Timestamp: now,
			UpdatedBy: user.ID,
			Notes:     "Booking created",
		}},
	}

	if err := s.Bookings.Create(b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.runPostCommitEffects(b)
	return b, nil
}

// runPostCommitEffects fires the secondary writes that follow a committed
// booking. Each one has its own failure boundary: the booking is already
// durable, so a failing effect is logged and skipped, never propagated.
func (s *DefaultBookingService) runPostCommitEffects(b *models.Booking) {
	logger := utils.GetLogger()

	if b.Discount != nil && b.Discount.CouponCode != "" {
		usage := models.CouponUsage{
			UserID:    b.UserID,
			BookingID: b.BookingID,
			UsedAt:    s.now(),
		}
		if err := s.Coupons.RecordUsage(b.Discount.CouponCode, usage); err != nil {
			logger.Error("failed to record coupon usage",
				zap.String("bookingId", b.BookingID),
				zap.String("coupon", b.Discount.CouponCode),
				zap.Error(err))
		}
	}

	if err := s.Users.IncrementBookingStats(b.UserID, b.FinalAmount); err != nil {
		logger.Error("failed to update user booking stats",
			zap.String("bookingId", b.BookingID),
			zap.String("userId", b.UserID),
			zap.Error(err))
	}

	if err := s.Services.IncrementBookingCount(b.ServiceID); err != nil {
		logger.Error("failed to update service booking count",
			zap.String("bookingId", b.BookingID),
			zap.String("serviceId", b.ServiceID),
			zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(b); err != nil {
			logger.Error("failed to schedule booking reminder",
				zap.String("bookingId", b.BookingID),
				zap.Error(err))
		}
	}
}
