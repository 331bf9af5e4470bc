package booking

import "citixo/models"

// Get returns one booking, restricted to its owner for non-admins.
func (s *DefaultBookingService) Get(principal models.Principal, bookingID string) (*models.Booking, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && b.UserID != principal.UserID {
		return nil, NewForbiddenError("You can only view your own bookings")
	}
	return b, nil
}

// List returns bookings matching the filter. Non-admins are always scoped to
// their own bookings regardless of what the filter asks for.
func (s *DefaultBookingService) List(principal models.Principal, filter models.BookingFilter) ([]models.Booking, int64, error) {
	if !principal.IsAdmin() {
		filter.UserID = principal.UserID
	}
	return s.Bookings.List(filter)
}
