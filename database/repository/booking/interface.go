package bookingRepo

import "citixo/models"

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByBookingID(bookingID string) (*models.Booking, error)
	// Update rewrites the whole document. Concurrent writers are
	// last-write-wins at the document level.
	Update(b *models.Booking) error
	List(filter models.BookingFilter) ([]models.Booking, int64, error)
}
