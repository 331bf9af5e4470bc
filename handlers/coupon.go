package handlers

import (
	"net/http"

	"citixo/models"
	"citixo/services/coupon"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CouponHandler exposes coupon validation and admin CRUD over HTTP.
type CouponHandler struct {
	svc    coupon.CouponService
	logger *zap.Logger
}

// NewCouponHandler creates a CouponHandler.
func NewCouponHandler(svc coupon.CouponService, logger *zap.Logger) *CouponHandler {
	return &CouponHandler{svc: svc, logger: logger}
}

// GetCoupon handles GET /api/coupons?code=.
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		coupons, err := h.svc.List()
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"coupons": coupons})
		return
	}

	cp, err := h.svc.Get(code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon": cp})
}

// ValidateCoupon handles POST /api/coupons/validate. Validation never
// mutates state; the same request always yields the same preview.
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var in models.ValidateCouponInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	preview, err := h.svc.Validate(in.Code, in.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// CreateCoupon handles POST /api/coupons (admin).
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var in models.CouponInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cp, err := h.svc.Create(in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.logger.Info("coupon created", zap.String("code", cp.Code))
	c.JSON(http.StatusCreated, gin.H{"coupon": cp})
}

// UpdateCoupon handles PUT /api/coupons/:code (admin).
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	var in models.CouponInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cp, err := h.svc.Update(c.Param("code"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon": cp})
}

// DeleteCoupon handles DELETE /api/coupons/:code (admin).
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.svc.Delete(c.Param("code")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
