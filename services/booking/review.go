package booking

import "citixo/models"

// AttachReview stores a rating and comment on a completed booking that has
// not been reviewed yet.
func (s *DefaultBookingService) AttachReview(principal models.Principal, bookingID string, in models.ReviewInput) (*models.Booking, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != principal.UserID {
		return nil, NewForbiddenError("You can only review your own bookings")
	}
	if b.Status != models.BookingStatusCompleted {
		return nil, NewConflictError("Only completed bookings can be reviewed")
	}
	if b.ReviewDetails != nil {
		return nil, NewConflictError("This booking has already been reviewed")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, NewValidationError("Rating must be between 1 and 5")
	}

	b.ReviewDetails = &models.ReviewDetails{
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: s.now(),
	}
	if err := s.Bookings.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}
