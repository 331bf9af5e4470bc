package coupon

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	couponRepo "citixo/database/repository/coupon"
	"citixo/models"
	"citixo/utils"

	"go.uber.org/zap"
)

// Window sanity bounds for coupon creation and update.
const (
	maxStartAge    = 365 * 24 * time.Hour     // start not more than 1 year in the past
	maxExpiryAhead = 5 * 365 * 24 * time.Hour // expiry not more than 5 years ahead
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// DefaultCouponService is the production CouponService implementation.
type DefaultCouponService struct {
	Repo couponRepo.CouponRepository
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultCouponService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// NormalizeCode trims and uppercases a client-supplied coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RoundDiscount rounds a raw discount to the nearest whole currency unit.
// Both the validation preview and the booking-creation calculation go through
// this, so the two can never disagree by a rounding step.
func RoundDiscount(raw float64) float64 {
	return math.Round(raw)
}

// Validate checks a code against its activity window and computes the
// discount for the given pre-discount amount. Checks run in a fixed order and
// the first failure wins. A coupon whose window starts or ends exactly now is
// valid.
func (s *DefaultCouponService) Validate(code string, amount float64) (*models.DiscountPreview, error) {
	if amount <= 0 {
		return nil, newValidationError("Amount must be positive")
	}

	normalized := NormalizeCode(code)
	c, err := s.Repo.GetByCode(normalized)
	if err != nil {
		utils.GetLogger().Error("coupon lookup failed", zap.String("code", normalized), zap.Error(err))
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if c == nil {
		return nil, ErrCouponNotFound
	}
	if !c.IsActive {
		return nil, ErrCouponInactive
	}
	now := s.now()
	if now.Before(c.StartDate) {
		return nil, ErrCouponNotYetActive
	}
	if now.After(c.ExpiryDate) {
		return nil, ErrCouponExpired
	}

	discountAmount := RoundDiscount(amount * c.DiscountPercentage / 100)
	return &models.DiscountPreview{
		CouponCode:         c.Code,
		DiscountPercentage: c.DiscountPercentage,
		DiscountAmount:     discountAmount,
		OriginalAmount:     amount,
		FinalAmount:        amount - discountAmount,
		Description:        c.Description,
	}, nil
}

// Get fetches one coupon by code.
func (s *DefaultCouponService) Get(code string) (*models.Coupon, error) {
	c, err := s.Repo.GetByCode(NormalizeCode(code))
	if err != nil {
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if c == nil {
		return nil, ErrCouponNotFound
	}
	return c, nil
}

// List returns all coupons.
func (s *DefaultCouponService) List() ([]models.Coupon, error) {
	return s.Repo.List()
}

// Create validates and stores a new coupon.
func (s *DefaultCouponService) Create(in models.CouponInput) (*models.Coupon, error) {
	c, err := s.buildCoupon(in)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(c); err != nil {
		if err == couponRepo.ErrDuplicateCode {
			return nil, &CouponError{Code: CodeConflict, Message: "A coupon with this code already exists"}
		}
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return c, nil
}

// Update validates and rewrites an existing coupon. The code itself is
// immutable; usage tracking fields are preserved.
func (s *DefaultCouponService) Update(code string, in models.CouponInput) (*models.Coupon, error) {
	existing, err := s.Get(code)
	if err != nil {
		return nil, err
	}

	in.Code = existing.Code
	updated, err := s.buildCoupon(in)
	if err != nil {
		return nil, err
	}
	updated.UsageCount = existing.UsageCount
	updated.UsedBy = existing.UsedBy
	updated.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(updated); err != nil {
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}
	return updated, nil
}

// Delete removes a coupon by code.
func (s *DefaultCouponService) Delete(code string) error {
	if _, err := s.Get(code); err != nil {
		return err
	}
	return s.Repo.Delete(NormalizeCode(code))
}

// buildCoupon normalizes and validates admin input into a coupon record.
func (s *DefaultCouponService) buildCoupon(in models.CouponInput) (*models.Coupon, error) {
	code := NormalizeCode(in.Code)
	if !codePattern.MatchString(code) {
		return nil, newValidationError("Coupon code must be exactly 6 uppercase letters or digits")
	}
	if in.DiscountPercentage < 1 || in.DiscountPercentage > 100 {
		return nil, newValidationError("Discount percentage must be between 1 and 100")
	}

	start, err := time.Parse(time.RFC3339, in.StartDate)
	if err != nil {
		return nil, newValidationError("Invalid start date")
	}
	expiry, err := time.Parse(time.RFC3339, in.ExpiryDate)
	if err != nil {
		return nil, newValidationError("Invalid expiry date")
	}
	if !start.Before(expiry) {
		return nil, newValidationError("Start date must precede expiry date")
	}
	now := s.now()
	if start.Before(now.Add(-maxStartAge)) {
		return nil, newValidationError("Start date cannot be more than 1 year in the past")
	}
	if expiry.After(now.Add(maxExpiryAhead)) {
		return nil, newValidationError("Expiry date cannot be more than 5 years in the future")
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	return &models.Coupon{
		Code:               code,
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		StartDate:          start,
		ExpiryDate:         expiry,
		IsActive:           isActive,
		UsedBy:             []models.CouponUsage{},
	}, nil
}
