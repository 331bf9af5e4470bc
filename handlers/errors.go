package handlers

import (
	"errors"
	"net/http"

	"citixo/services/auth"
	"citixo/services/booking"
	"citixo/services/coupon"
	"citixo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusForCode maps service error codes onto HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case booking.CodeValidation:
		return http.StatusBadRequest
	case auth.CodeAuth:
		return http.StatusUnauthorized
	case booking.CodeForbidden:
		return http.StatusForbidden
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeConflict:
		return http.StatusConflict
	case auth.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError translates a service-layer error into the standard
// error envelope. Unexpected errors become a generic 500; the detail stays in
// the server log only.
func respondServiceError(c *gin.Context, err error) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		c.JSON(statusForCode(be.Code), gin.H{"error": be.Message})
		return
	}
	var ce *coupon.CouponError
	if errors.As(err, &ce) {
		c.JSON(statusForCode(ce.Code), gin.H{"error": ce.Message})
		return
	}
	var ae *auth.AuthError
	if errors.As(err, &ae) {
		status := statusForCode(ae.Code)
		if ae.RetryAfter > 0 {
			c.JSON(status, gin.H{"error": ae.Message, "retryAfter": ae.RetryAfter})
			return
		}
		c.JSON(status, gin.H{"error": ae.Message})
		return
	}

	utils.GetLogger().Error("unexpected service error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again later"})
}
