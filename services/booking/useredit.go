package booking

import (
	"fmt"
	"time"

	"citixo/models"
)

// userEditCutoff is how far ahead of the scheduled time self-service edits
// stay open. A booking scheduled exactly at the cutoff is still editable.
const userEditCutoff = 2 * time.Hour

// UserEdit applies a constrained self-service edit: schedule, contact
// snapshot and notes only. Amounts, service and status are untouchable here.
func (s *DefaultBookingService) UserEdit(principal models.Principal, bookingID string, in models.UserEditInput) (*models.Booking, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != principal.UserID {
		return nil, NewForbiddenError("You can only edit your own bookings")
	}
	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return nil, NewConflictError(fmt.Sprintf("A booking in status %s can no longer be edited", b.Status))
	}

	scheduledAt, err := b.ScheduledAt()
	if err != nil {
		return nil, fmt.Errorf("booking %s has an unparseable schedule: %w", b.BookingID, err)
	}
	if scheduledAt.Sub(s.now()) < userEditCutoff {
		return nil, NewConflictError("Bookings can only be edited up to 2 hours before the scheduled time")
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
	if in.SpecialInstructions != nil {
		b.SpecialInstructions = *in.SpecialInstructions
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}

	if err := s.Bookings.Update(b); err != nil {
		return nil, fmt.Errorf("failed to save booking edit: %w", err)
	}
	return b, nil
}
