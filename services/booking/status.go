package booking

import (
	"fmt"

	"citixo/models"
)

// UpdateStatus performs an admin status transition. The requested status must
// be one of the enumerated values, and terminal bookings (Completed,
// Cancelled) cannot be moved again. A changed status is appended to the
// history; entering Completed stamps completedAt.
func (s *DefaultBookingService) UpdateStatus(principal models.Principal, bookingID string, in models.StatusUpdateInput) (*models.Booking, error) {
	if !principal.IsAdmin() {
		return nil, NewForbiddenError("Only admins can update booking status")
	}
	if !models.IsValidBookingStatus(in.Status) {
		return nil, NewValidationError("Invalid booking status: " + in.Status)
	}

	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status == in.Status {
		return b, nil
	}
	if models.IsTerminalBookingStatus(b.Status) {
		return nil, NewConflictError(fmt.Sprintf("Booking is already %s and cannot change status", b.Status))
	}

	s.applyStatus(b, in.Status, principal.UserID, in.Notes)

	if err := s.Bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return b, nil
}

// CancelByUser is the self-service cancellation path. It is only available
// while the booking has not yet been assigned to a professional.
func (s *DefaultBookingService) CancelByUser(principal models.Principal, bookingID string, in models.CancelBookingInput) (*models.Booking, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && b.UserID != principal.UserID {
		return nil, NewForbiddenError("You can only cancel your own bookings")
	}
	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return nil, NewConflictError(fmt.Sprintf("A booking in status %s cannot be cancelled", b.Status))
	}

	now := s.now()
	b.Cancellation = &models.Cancellation{
		Reason:      in.Reason,
		CancelledBy: principal.UserID,
		CancelledAt: now,
	}
	s.applyStatus(b, models.BookingStatusCancelled, principal.UserID, in.Reason)

	if err := s.Bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return b, nil
}

// applyStatus sets the new status and appends the history entry.
func (s *DefaultBookingService) applyStatus(b *models.Booking, status, updatedBy, notes string) {
	now := s.now()
	b.Status = status
	b.StatusHistory = append(b.StatusHistory, models.StatusChange{
		Status:    status,
		Timestamp: now,
		UpdatedBy: updatedBy,
		Notes:     notes,
	})
	if status == models.BookingStatusCompleted {
		b.CompletedAt = &now
	}
}

// loadBooking fetches a booking or returns a typed not-found error.
func (s *DefaultBookingService) loadBooking(bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByBookingID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, NewNotFoundError("Booking not found")
	}
	return b, nil
}
