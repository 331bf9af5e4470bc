package couponRepo

import "citixo/models"

// CouponRepository defines data access for coupon records. Codes are stored
// uppercase; callers normalize before lookup.
type CouponRepository interface {
	Create(c *models.Coupon) error
	GetByCode(code string) (*models.Coupon, error)
	Update(c *models.Coupon) error
	Delete(code string) error
	List() ([]models.Coupon, error)
	// RecordUsage appends a usage entry and increments the usage counter in
	// one write.
	RecordUsage(code string, usage models.CouponUsage) error
}
