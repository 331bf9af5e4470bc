package booking

import (
	"errors"
	"fmt"
	"math"

	"citixo/models"
	"citixo/services/coupon"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentIntentResult is returned to the client for the pay-first flow.
type PaymentIntentResult struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// CreatePaymentIntent recomputes the chargeable amount from the live service
// and coupon records and opens a Stripe payment intent for it. The booking
// itself is created afterwards, once the client confirms the payment.
func (s *DefaultBookingService) CreatePaymentIntent(principal models.Principal, in models.CreateBookingInput) (*PaymentIntentResult, error) {
	if principal.IsAdmin() {
		return nil, NewForbiddenError("Admins cannot create bookings for themselves")
	}

	svc, err := s.Services.GetByID(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, NewNotFoundError("Service not found")
	}
	if svc.Status != models.ServiceStatusActive {
		return nil, NewValidationError("Service is not available for booking")
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, NewValidationError("Quantity must be at least 1")
	}

	amount := ComputeTotal(svc.BasePrice, quantity)
	if in.Discount != nil && in.Discount.CouponCode != "" {
		preview, err := s.CouponSvc.Validate(in.Discount.CouponCode, amount)
		if err != nil {
			var ce *coupon.CouponError
			if errors.As(err, &ce) {
				return nil, NewValidationError(ce.Message)
			}
			return nil, fmt.Errorf("coupon validation failed: %w", err)
		}
		amount = preview.FinalAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))), // paise
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.SetIdempotencyKey(uuid.New().String())
	params.AddMetadata("userId", principal.UserID)
	params.AddMetadata("serviceId", svc.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResult{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          amount,
		Currency:        string(stripe.CurrencyINR),
	}, nil
}
