package coupon

import (
	"testing"
	"time"

	couponRepo "citixo/database/repository/coupon"
	"citixo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCouponRepo is an in-memory CouponRepository.
type fakeCouponRepo struct {
	coupons map[string]*models.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[string]*models.Coupon)}
}

func (r *fakeCouponRepo) Create(c *models.Coupon) error {
	if _, ok := r.coupons[c.Code]; ok {
		return couponRepo.ErrDuplicateCode
	}
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

func (r *fakeCouponRepo) Update(c *models.Coupon) error {
	cp := *c
	r.coupons[c.Code] = &cp
	return nil
}

func (r *fakeCouponRepo) Delete(code string) error {
	delete(r.coupons, code)
	return nil
}

func (r *fakeCouponRepo) List() ([]models.Coupon, error) {
	var out []models.Coupon
	for _, c := range r.coupons {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCouponRepo) RecordUsage(code string, usage models.CouponUsage) error {
	c := r.coupons[code]
	c.UsageCount++
	c.UsedBy = append(c.UsedBy, usage)
	return nil
}

func newService(repo *fakeCouponRepo, now time.Time) *DefaultCouponService {
	return &DefaultCouponService{
		Repo: repo,
		Now:  func() time.Time { return now },
	}
}

func activeCoupon(code string, pct float64, now time.Time) *models.Coupon {
	return &models.Coupon{
		Code:               code,
		Description:        "test coupon",
		DiscountPercentage: pct,
		StartDate:          now.Add(-24 * time.Hour),
		ExpiryDate:         now.Add(24 * time.Hour),
		IsActive:           true,
	}
}

func TestValidateComputesDiscount(t *testing.T) {
	now := time.Now()
	repo := newFakeCouponRepo()
	repo.coupons["SAVE10"] = activeCoupon("SAVE10", 10, now)
	svc := newService(repo, now)

	preview, err := svc.Validate("SAVE10", 1000)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", preview.CouponCode)
	assert.Equal(t, 100.0, preview.DiscountAmount)
	assert.Equal(t, 1000.0, preview.OriginalAmount)
	assert.Equal(t, 900.0, preview.FinalAmount)
}

func TestValidateNormalizesCode(t *testing.T) {
	now := time.Now()
	repo := newFakeCouponRepo()
	repo.coupons["SAVE10"] = activeCoupon("SAVE10", 10, now)
	svc := newService(repo, now)

	preview, err := svc.Validate("  save10 ", 200)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", preview.CouponCode)
	assert.Equal(t, 20.0, preview.DiscountAmount)
}

func TestValidateRoundsToWholeUnit(t *testing.T) {
	now := time.Now()
	repo := newFakeCouponRepo()
	repo.coupons["SAVE15"] = activeCoupon("SAVE15", 15, now)
	svc := newService(repo, now)

	// 15% of 333 = 49.95, rounds to 50.
	preview, err := svc.Validate("SAVE15", 333)
	require.NoError(t, err)
	assert.Equal(t, 50.0, preview.DiscountAmount)
	assert.Equal(t, 283.0, preview.FinalAmount)
}

func TestValidateFailureOrder(t *testing.T) {
	now := time.Now()

	t.Run("not found", func(t *testing.T) {
		svc := newService(newFakeCouponRepo(), now)
		_, err := svc.Validate("NOSUCH", 100)
		assert.Equal(t, ErrCouponNotFound, err)
	})

	t.Run("inactive wins over expired", func(t *testing.T) {
		repo := newFakeCouponRepo()
		c := activeCoupon("SAVE10", 10, now)
		c.IsActive = false
		c.ExpiryDate = now.Add(-time.Hour)
		repo.coupons["SAVE10"] = c
		svc := newService(repo, now)

		_, err := svc.Validate("SAVE10", 100)
		assert.Equal(t, ErrCouponInactive, err)
	})

	t.Run("not yet active", func(t *testing.T) {
		repo := newFakeCouponRepo()
		c := activeCoupon("SAVE10", 10, now)
		c.StartDate = now.Add(time.Hour)
		repo.coupons["SAVE10"] = c
		svc := newService(repo, now)

		_, err := svc.Validate("SAVE10", 100)
		assert.Equal(t, ErrCouponNotYetActive, err)
	})

	t.Run("expired", func(t *testing.T) {
		repo := newFakeCouponRepo()
		c := activeCoupon("SAVE10", 10, now)
		c.ExpiryDate = now.Add(-time.Hour)
		repo.coupons["SAVE10"] = c
		svc := newService(repo, now)

		_, err := svc.Validate("SAVE10", 100)
		assert.Equal(t, ErrCouponExpired, err)
	})
}

func TestValidateWindowBoundaries(t *testing.T) {
	now := time.Now()

	t.Run("start exactly now is valid", func(t *testing.T) {
		repo := newFakeCouponRepo()
		c := activeCoupon("SAVE10", 10, now)
		c.StartDate = now
		repo.coupons["SAVE10"] = c

		_, err := newService(repo, now).Validate("SAVE10", 100)
		assert.NoError(t, err)
	})

	t.Run("one second before start is not", func(t *testing.T) {
		repo := newFakeCouponRepo()
		c := activeCoupon("SAVE10", 10, now)
		c.StartDate = now.Add(time.Second)
		repo.coupons["SAVE10"] = c

		_, err := newService(repo, now).Validate("SAVE10", 100)
		assert.Equal(t, ErrCouponNotYetActive, err)
	})

	t.Run("expiry exactly now is valid", func(t *testing.T) {
		repo := newFakeCouponRepo()
		c := activeCoupon("SAVE10", 10, now)
		c.ExpiryDate = now
		repo.coupons["SAVE10"] = c

		_, err := newService(repo, now).Validate("SAVE10", 100)
		assert.NoError(t, err)
	})

	t.Run("one second after expiry is not", func(t *testing.T) {
		repo := newFakeCouponRepo()
		c := activeCoupon("SAVE10", 10, now)
		c.ExpiryDate = now.Add(-time.Second)
		repo.coupons["SAVE10"] = c

		_, err := newService(repo, now).Validate("SAVE10", 100)
		assert.Equal(t, ErrCouponExpired, err)
	})
}

func TestValidateHasNoSideEffects(t *testing.T) {
	now := time.Now()
	repo := newFakeCouponRepo()
	repo.coupons["SAVE10"] = activeCoupon("SAVE10", 10, now)
	svc := newService(repo, now)

	first, err := svc.Validate("SAVE10", 400)
	require.NoError(t, err)
	second, err := svc.Validate("SAVE10", 400)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, repo.coupons["SAVE10"].UsageCount)
	assert.Empty(t, repo.coupons["SAVE10"].UsedBy)
}

func couponInput(code string, pct float64, start, expiry time.Time) models.CouponInput {
	return models.CouponInput{
		Code:               code,
		DiscountPercentage: pct,
		StartDate:          start.Format(time.RFC3339),
		ExpiryDate:         expiry.Format(time.RFC3339),
	}
}

func TestCreateCoupon(t *testing.T) {
	now := time.Now()
	svc := newService(newFakeCouponRepo(), now)

	t.Run("stores normalized code", func(t *testing.T) {
		c, err := svc.Create(couponInput("save10", 10, now, now.Add(time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", c.Code)
		assert.True(t, c.IsActive)
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		for _, code := range []string{"ABC", "TOOLONG7", "SAVE 1", "SAVE-1", ""} {
			_, err := svc.Create(couponInput(code, 10, now, now.Add(time.Hour)))
			assert.Error(t, err, "code %q should be rejected", code)
		}
	})

	t.Run("rejects percentage out of range", func(t *testing.T) {
		_, err := svc.Create(couponInput("PCTBAD", 0.5, now, now.Add(time.Hour)))
		assert.Error(t, err)
		_, err = svc.Create(couponInput("PCTBAD", 101, now, now.Add(time.Hour)))
		assert.Error(t, err)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := svc.Create(couponInput("WINBAD", 10, now.Add(time.Hour), now))
		assert.Error(t, err)
	})

	t.Run("rejects window out of sane range", func(t *testing.T) {
		_, err := svc.Create(couponInput("OLDONE", 10, now.Add(-400*24*time.Hour), now.Add(time.Hour)))
		assert.Error(t, err)
		_, err = svc.Create(couponInput("FARFUT", 10, now, now.Add(6*365*24*time.Hour)))
		assert.Error(t, err)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		_, err := svc.Create(couponInput("DUPES1", 10, now, now.Add(time.Hour)))
		require.NoError(t, err)
		_, err = svc.Create(couponInput("DUPES1", 20, now, now.Add(time.Hour)))
		var ce *CouponError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, CodeConflict, ce.Code)
	})
}
