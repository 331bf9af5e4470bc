package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	bookingRepo "citixo/database/repository/booking"
	couponRepo "citixo/database/repository/coupon"
	serviceRepo "citixo/database/repository/service"
	userRepo "citixo/database/repository/user"
	"citixo/services/coupon"
)

// DefaultBookingService is the production BookingService implementation.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Coupons   couponRepo.CouponRepository
	Users     userRepo.UserRepository
	Services  serviceRepo.ServiceRepository
	CouponSvc coupon.CouponService
	Reminders *ReminderScheduler
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

const bookingIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newBookingID generates a booking identifier from the creation timestamp
// plus a short random suffix, e.g. "CS1756371200123X7QD".
func (s *DefaultBookingService) newBookingID() string {
	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(bookingIDAlphabet))))
		if err != nil {
			// crypto/rand only fails if the platform entropy source is broken.
			n = big.NewInt(int64(i))
		}
		suffix[i] = bookingIDAlphabet[n.Int64()]
	}
	return fmt.Sprintf("CS%d%s", s.now().UnixMilli(), suffix)
}
