package booking

import (
	"errors"
	"testing"
	"time"

	"citixo/models"
	"citixo/services/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory fakes ---

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	cp := *b
	r.bookings[b.BookingID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByBookingID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	if _, ok := r.bookings[b.BookingID]; !ok {
		return errors.New("not found")
	}
	cp := *b
	r.bookings[b.BookingID] = &cp
	return nil
}

func (r *fakeBookingRepo) List(filter models.BookingFilter) ([]models.Booking, int64, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

type fakeCouponRepo struct {
	coupons map[string]*models.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[string]*models.Coupon)}
}

func (r *fakeCouponRepo) Create(c *models.Coupon) error {
	cp := *c
	r.coupons[c.Code] = &cp
	return nil
}

func (r *fakeCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	c, ok := r.coupons[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCouponRepo) Update(c *models.Coupon) error { return nil }

func (r *fakeCouponRepo) Delete(code string) error { return nil }
func (r *fakeCouponRepo) List() ([]models.Coupon, error) {
	return nil, nil
}

func (r *fakeCouponRepo) RecordUsage(code string, usage models.CouponUsage) error {
	c, ok := r.coupons[code]
	if !ok {
		return errors.New("not found")
	}
	c.UsageCount++
	c.UsedBy = append(c.UsedBy, usage)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *models.User) error { return nil }

func (r *fakeUserRepo) SetTokenHash(id, tokenHash string) error { return nil }
func (r *fakeUserRepo) IncrementBookingStats(id string, amount float64) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.TotalBookings++
	u.TotalSpent += amount
	return nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*models.Service)}
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) Update(s *models.Service) error { return nil }

func (r *fakeServiceRepo) Delete(id string) error { return nil }
func (r *fakeServiceRepo) List(activeOnly bool) ([]models.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) IncrementBookingCount(id string) error {
	s, ok := r.services[id]
	if !ok {
		return errors.New("not found")
	}
	s.BookingCount++
	return nil
}

// --- fixture ---

type fixture struct {
	svc      *DefaultBookingService
	bookings *fakeBookingRepo
	coupons  *fakeCouponRepo
	users    *fakeUserRepo
	services *fakeServiceRepo
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	// A fixed instant with zero seconds so schedule strings round-trip.
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)

	bookings := newFakeBookingRepo()
	coupons := newFakeCouponRepo()
	users := newFakeUserRepo()
	services := newFakeServiceRepo()

	users.users["u1"] = &models.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: models.RoleUser}
	services.services["svc1"] = &models.Service{
		ID:        "svc1",
		Name:      "Deep Cleaning",
		BasePrice: 500,
		Category:  "Cleaning",
		Status:    models.ServiceStatusActive,
	}
	coupons.coupons["SAVE10"] = &models.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: 10,
		StartDate:          now.Add(-24 * time.Hour),
		ExpiryDate:         now.Add(24 * time.Hour),
		IsActive:           true,
	}

	couponSvc := &coupon.DefaultCouponService{
		Repo: coupons,
		Now:  func() time.Time { return now },
	}
	svc := &DefaultBookingService{
		Bookings:  bookings,
		Coupons:   coupons,
		Users:     users,
		Services:  services,
		CouponSvc: couponSvc,
		Now:       func() time.Time { return now },
	}
	return &fixture{svc: svc, bookings: bookings, coupons: coupons, users: users, services: services, now: now}
}

func (f *fixture) user() models.Principal {
	return models.Principal{UserID: "u1", Role: models.RoleUser}
}

func (f *fixture) admin() models.Principal {
	return models.Principal{UserID: "admin1", Role: models.RoleAdmin}
}

func (f *fixture) createInput() models.CreateBookingInput {
	at := f.now.Add(48 * time.Hour)
	return models.CreateBookingInput{
		ServiceID:     "svc1",
		ScheduledDate: at.Format("2006-01-02"),
		ScheduledTime: at.Format("15:04"),
		Quantity:      2,
		CustomerDetails: models.CustomerDetails{
			Name:    "Asha",
			Phone:   "9876543210",
			Email:   "asha@example.com",
			Address: "42 Lake Road",
		},
	}
}

// --- create ---

func TestCreateBookingWithCoupon(t *testing.T) {
	f := newFixture(t)
	in := f.createInput()
	in.Discount = &models.DiscountInfo{CouponCode: "SAVE10"}

	b, err := f.svc.Create(f.user(), in)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, b.TotalAmount)
	require.NotNil(t, b.Discount)
	assert.Equal(t, 100.0, b.Discount.Amount)
	assert.Equal(t, models.DiscountTypePercentage, b.Discount.Type)
	assert.Equal(t, 900.0, b.FinalAmount)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	require.Len(t, b.StatusHistory, 1)
	assert.Equal(t, models.BookingStatusPending, b.StatusHistory[0].Status)

	// Snapshots copied from the live records.
	assert.Equal(t, "Deep Cleaning", b.ServiceDetails.Name)
	assert.Equal(t, 500.0, b.ServiceDetails.BasePrice)

	// Post-commit effects ran exactly once.
	assert.Equal(t, 1, f.coupons.coupons["SAVE10"].UsageCount)
	require.Len(t, f.coupons.coupons["SAVE10"].UsedBy, 1)
	assert.Equal(t, b.BookingID, f.coupons.coupons["SAVE10"].UsedBy[0].BookingID)
	assert.Equal(t, 1, f.users.users["u1"].TotalBookings)
	assert.Equal(t, 900.0, f.users.users["u1"].TotalSpent)
	assert.Equal(t, 1, f.services.services["svc1"].BookingCount)
}

func TestCreateBookingIgnoresClientAmounts(t *testing.T) {
	f := newFixture(t)
	in := f.createInput()
	// A tampering client claims a much larger discount.
	in.Discount = &models.DiscountInfo{CouponCode: "SAVE10", Amount: 999, Type: models.DiscountTypeFixed}

	b, err := f.svc.Create(f.user(), in)
	require.NoError(t, err)
	assert.Equal(t, 100.0, b.Discount.Amount)
	assert.Equal(t, models.DiscountTypePercentage, b.Discount.Type)
	assert.Equal(t, 900.0, b.FinalAmount)
}

func TestCreateBookingRejectsBadCoupon(t *testing.T) {
	f := newFixture(t)
	in := f.createInput()
	in.Discount = &models.DiscountInfo{CouponCode: "NOSUCH"}

	_, err := f.svc.Create(f.user(), in)
	var be *BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, CodeValidation, be.Code)
	assert.Empty(t, f.bookings.bookings)
}

func TestCreateBookingPaymentFirstFlow(t *testing.T) {
	f := newFixture(t)
	in := f.createInput()
	in.PaymentData = &models.PaymentDataInput{PaymentID: "pi_123", Method: "card", Currency: "inr"}

	b, err := f.svc.Create(f.user(), in)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, models.PaymentStatusPaid, b.PaymentStatus)
	require.NotNil(t, b.Payment)
	assert.Equal(t, "pi_123", b.Payment.PaymentID)
	assert.Equal(t, 1000.0, b.Payment.Amount)
}

func TestCreateBookingGuards(t *testing.T) {
	f := newFixture(t)

	t.Run("admin cannot book", func(t *testing.T) {
		_, err := f.svc.Create(f.admin(), f.createInput())
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeForbidden, be.Code)
	})

	t.Run("unknown service", func(t *testing.T) {
		in := f.createInput()
		in.ServiceID = "nope"
		_, err := f.svc.Create(f.user(), in)
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeNotFound, be.Code)
	})

	t.Run("inactive service", func(t *testing.T) {
		f.services.services["svc1"].Status = models.ServiceStatusInactive
		defer func() { f.services.services["svc1"].Status = models.ServiceStatusActive }()
		_, err := f.svc.Create(f.user(), f.createInput())
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeValidation, be.Code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		in := f.createInput()
		in.Quantity = -1
		_, err := f.svc.Create(f.user(), in)
		assert.Error(t, err)
	})
}

// --- status transitions ---

func (f *fixture) createdBooking(t *testing.T) *models.Booking {
	t.Helper()
	b, err := f.svc.Create(f.user(), f.createInput())
	require.NoError(t, err)
	return b
}

func TestUpdateStatusAppendsHistory(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	updated, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{
		Status: models.BookingStatusConfirmed,
		Notes:  "payment received",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, "admin1", updated.StatusHistory[1].UpdatedBy)
	assert.Equal(t, "payment received", updated.StatusHistory[1].Notes)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateStatusCompletedStampsTime(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	updated, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{
		Status: models.BookingStatusCompleted,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, f.now, *updated.CompletedAt)
}

func TestUpdateStatusGuards(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	t.Run("non-admin rejected", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(f.user(), b.BookingID, models.StatusUpdateInput{Status: models.BookingStatusConfirmed})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeForbidden, be.Code)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{Status: "Bogus"})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeValidation, be.Code)
	})

	t.Run("terminal state is sticky", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{Status: models.BookingStatusCompleted})
		require.NoError(t, err)
		_, err = f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{Status: models.BookingStatusPending})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeConflict, be.Code)
	})
}

// --- cancel ---

func TestCancelByUser(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	cancelled, err := f.svc.CancelByUser(f.user(), b.BookingID, models.CancelBookingInput{Reason: "changed plans"})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.Cancellation)
	assert.Equal(t, "changed plans", cancelled.Cancellation.Reason)
	assert.Equal(t, "u1", cancelled.Cancellation.CancelledBy)
}

func TestCancelCompletedBookingRejected(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)
	_, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{Status: models.BookingStatusCompleted})
	require.NoError(t, err)

	_, err = f.svc.CancelByUser(f.user(), b.BookingID, models.CancelBookingInput{})
	var be *BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, CodeConflict, be.Code)

	stored, _ := f.bookings.GetByBookingID(b.BookingID)
	assert.Equal(t, models.BookingStatusCompleted, stored.Status)
}

func TestCancelOthersBookingForbidden(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	other := models.Principal{UserID: "u2", Role: models.RoleUser}
	_, err := f.svc.CancelByUser(other, b.BookingID, models.CancelBookingInput{})
	var be *BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, CodeForbidden, be.Code)
}

// --- user edit window ---

func (f *fixture) bookingScheduledIn(t *testing.T, d time.Duration) *models.Booking {
	t.Helper()
	in := f.createInput()
	at := f.now.Add(d)
	in.ScheduledDate = at.Format("2006-01-02")
	in.ScheduledTime = at.Format("15:04")
	b, err := f.svc.Create(f.user(), in)
	require.NoError(t, err)
	return b
}

func TestUserEditWindow(t *testing.T) {
	f := newFixture(t)

	t.Run("exactly 2h ahead is editable", func(t *testing.T) {
		b := f.bookingScheduledIn(t, 2*time.Hour)
		notes := "ring the bell twice"
		updated, err := f.svc.UserEdit(f.user(), b.BookingID, models.UserEditInput{Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, notes, updated.Notes)
	})

	t.Run("1h59m ahead is not", func(t *testing.T) {
		b := f.bookingScheduledIn(t, time.Hour+59*time.Minute)
		notes := "too late"
		_, err := f.svc.UserEdit(f.user(), b.BookingID, models.UserEditInput{Notes: &notes})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeConflict, be.Code)
	})
}

func TestUserEditGuards(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	t.Run("not the owner", func(t *testing.T) {
		other := models.Principal{UserID: "u2", Role: models.RoleUser}
		notes := "x"
		_, err := f.svc.UserEdit(other, b.BookingID, models.UserEditInput{Notes: &notes})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeForbidden, be.Code)
	})

	t.Run("assigned booking is locked", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{Status: models.BookingStatusAssigned})
		require.NoError(t, err)
		notes := "x"
		_, err = f.svc.UserEdit(f.user(), b.BookingID, models.UserEditInput{Notes: &notes})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeConflict, be.Code)
	})

	t.Run("reschedule updates date and time", func(t *testing.T) {
		b2 := f.bookingScheduledIn(t, 72*time.Hour)
		at := f.now.Add(96 * time.Hour)
		date := at.Format("2006-01-02")
		clock := at.Format("15:04")
		updated, err := f.svc.UserEdit(f.user(), b2.BookingID, models.UserEditInput{
			ScheduledDate: date,
			ScheduledTime: clock,
		})
		require.NoError(t, err)
		assert.Equal(t, date, updated.ScheduledDate)
		assert.Equal(t, clock, updated.ScheduledTime)
	})
}

// --- review ---

func TestAttachReview(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)
	_, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{Status: models.BookingStatusCompleted})
	require.NoError(t, err)

	reviewed, err := f.svc.AttachReview(f.user(), b.BookingID, models.ReviewInput{Rating: 5, Comment: "spotless"})
	require.NoError(t, err)
	require.NotNil(t, reviewed.ReviewDetails)
	assert.Equal(t, 5, reviewed.ReviewDetails.Rating)

	t.Run("second review rejected", func(t *testing.T) {
		_, err := f.svc.AttachReview(f.user(), b.BookingID, models.ReviewInput{Rating: 4})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeConflict, be.Code)
	})
}

func TestAttachReviewGuards(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	t.Run("not completed", func(t *testing.T) {
		_, err := f.svc.AttachReview(f.user(), b.BookingID, models.ReviewInput{Rating: 5})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeConflict, be.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{Status: models.BookingStatusCompleted})
		require.NoError(t, err)
		_, err = f.svc.AttachReview(f.user(), b.BookingID, models.ReviewInput{Rating: 6})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeValidation, be.Code)
	})
}

// --- listing ---

func TestListScopesNonAdminsToOwnBookings(t *testing.T) {
	f := newFixture(t)
	f.createdBooking(t)
	f.users.users["u2"] = &models.User{ID: "u2", Email: "other@example.com", Role: models.RoleUser}
	other := models.Principal{UserID: "u2", Role: models.RoleUser}
	_, err := f.svc.Create(other, f.createInput())
	require.NoError(t, err)

	mine, total, err := f.svc.List(f.user(), models.BookingFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, mine, 1)
	assert.Equal(t, "u1", mine[0].UserID)

	all, total, err := f.svc.List(f.admin(), models.BookingFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}

func TestBookingIDsAreUnique(t *testing.T) {
	f := newFixture(t)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		b := f.createdBooking(t)
		assert.False(t, seen[b.BookingID], "duplicate booking id %s", b.BookingID)
		seen[b.BookingID] = true
	}
}

// --- admin partial patch ---

func TestAdminUpdateAssignsProfessional(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	updated, err := f.svc.AdminUpdate(f.admin(), models.AdminEditInput{
		BookingID:           b.BookingID,
		Status:              models.BookingStatusAssigned,
		StatusNotes:         "assigned to Ravi",
		ProfessionalDetails: &models.ProfessionalDetails{Name: "Ravi", Phone: "9000000001"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAssigned, updated.Status)
	require.NotNil(t, updated.ProfessionalDetails)
	assert.Equal(t, "Ravi", updated.ProfessionalDetails.Name)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, models.BookingStatusAssigned, updated.StatusHistory[1].Status)
	assert.Equal(t, "assigned to Ravi", updated.StatusHistory[1].Notes)

	// Amounts are derived, never patchable.
	assert.Equal(t, b.TotalAmount, updated.TotalAmount)
	assert.Equal(t, b.FinalAmount, updated.FinalAmount)
}

func TestAdminUpdatePaymentStatus(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	t.Run("refund on a cancelled booking", func(t *testing.T) {
		_, err := f.svc.CancelByUser(f.user(), b.BookingID, models.CancelBookingInput{Reason: "changed plans"})
		require.NoError(t, err)

		updated, err := f.svc.AdminUpdate(f.admin(), models.AdminEditInput{
			BookingID:     b.BookingID,
			PaymentStatus: models.PaymentStatusRefunded,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusRefunded, updated.PaymentStatus)
		assert.Equal(t, models.BookingStatusCancelled, updated.Status)
	})

	t.Run("unknown payment status rejected", func(t *testing.T) {
		_, err := f.svc.AdminUpdate(f.admin(), models.AdminEditInput{
			BookingID:     b.BookingID,
			PaymentStatus: "Void",
		})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeValidation, be.Code)
	})
}

func TestAdminUpdateGuards(t *testing.T) {
	f := newFixture(t)
	b := f.createdBooking(t)

	t.Run("non-admin rejected", func(t *testing.T) {
		_, err := f.svc.AdminUpdate(f.user(), models.AdminEditInput{BookingID: b.BookingID})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeForbidden, be.Code)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := f.svc.AdminUpdate(f.admin(), models.AdminEditInput{BookingID: "CSnope"})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeNotFound, be.Code)
	})

	t.Run("terminal status cannot be left", func(t *testing.T) {
		_, err := f.svc.UpdateStatus(f.admin(), b.BookingID, models.StatusUpdateInput{Status: models.BookingStatusCompleted})
		require.NoError(t, err)

		_, err = f.svc.AdminUpdate(f.admin(), models.AdminEditInput{
			BookingID: b.BookingID,
			Status:    models.BookingStatusPending,
		})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeConflict, be.Code)
	})

	t.Run("invalid schedule rejected", func(t *testing.T) {
		b2 := f.createdBooking(t)
		_, err := f.svc.AdminUpdate(f.admin(), models.AdminEditInput{
			BookingID:     b2.BookingID,
			ScheduledTime: "25:99",
		})
		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeValidation, be.Code)
	})
}
