package coupon

import "citixo/models"

// CouponService validates discount codes and manages the coupon catalog.
// Validate has no side effects; usage is recorded by the booking flow once a
// booking that applies the coupon actually commits.
type CouponService interface {
	Validate(code string, amount float64) (*models.DiscountPreview, error)
	Get(code string) (*models.Coupon, error)
	List() ([]models.Coupon, error)
	Create(in models.CouponInput) (*models.Coupon, error)
	Update(code string, in models.CouponInput) (*models.Coupon, error)
	Delete(code string) error
}
