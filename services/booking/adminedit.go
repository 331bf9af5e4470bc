package booking

import (
	"fmt"
	"time"

	"citixo/models"
)

// AdminUpdate applies a partial patch to any booking: schedule, contact
// snapshot, professional assignment, payment status and notes. A status
// change rides along under the same transition rules as UpdateStatus and
// appends a history entry. Amounts stay derived; they are never patchable.
func (s *DefaultBookingService) AdminUpdate(principal models.Principal, in models.AdminEditInput) (*models.Booking, error) {
	if !principal.IsAdmin() {
		return nil, NewForbiddenError("Only admins can edit bookings directly")
	}

	b, err := s.loadBooking(in.BookingID)
	if err != nil {
		return nil, err
	}

	statusChange := in.Status != "" && in.Status != b.Status
	if statusChange {
		if !models.IsValidBookingStatus(in.Status) {
			return nil, NewValidationError("Invalid booking status: " + in.Status)
		}
		if models.IsTerminalBookingStatus(b.Status) {
			return nil, NewConflictError(fmt.Sprintf("Booking is already %s and cannot change status", b.Status))
		}
	}
	if in.PaymentStatus != "" && !models.IsValidPaymentStatus(in.PaymentStatus) {
		return nil, NewValidationError("Invalid payment status: " + in.PaymentStatus)
	}

	if in.ScheduledDate != "" || in.ScheduledTime != "" {
		newDate := b.ScheduledDate
		newTime := b.ScheduledTime
		if in.ScheduledDate != "" {
			newDate = in.ScheduledDate
		}
		if in.ScheduledTime != "" {
			newTime = in.ScheduledTime
		}
		if _, err := time.ParseInLocation("2006-01-02 15:04", newDate+" "+newTime, time.Local); err != nil {
			return nil, NewValidationError("Invalid scheduled date or time")
		}
		b.ScheduledDate = newDate
		b.ScheduledTime = newTime
	}
	if in.CustomerDetails != nil {
		b.CustomerDetails = *in.CustomerDetails
	}
	if in.ProfessionalDetails != nil {
		b.ProfessionalDetails = in.ProfessionalDetails
	}
	if in.PaymentStatus != "" {
		b.PaymentStatus = in.PaymentStatus
	}
	if in.SpecialInstructions != nil {
		b.SpecialInstructions = *in.SpecialInstructions
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}

	if statusChange {
		s.applyStatus(b, in.Status, principal.UserID, in.StatusNotes)
	}

	if err := s.Bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to save booking update: %w", err)
	}
	return b, nil
}
