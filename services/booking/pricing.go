package booking

import "citixo/models"

// ComputeTotal derives the pre-discount amount from the service's snapshot
// price and the booked quantity.
func ComputeTotal(basePrice float64, quantity int) float64 {
	return basePrice * float64(quantity)
}

// ApplyDiscount derives the final amount from a total and an optional
// discount descriptor. The discount amount is always the server-side
// recomputed value; client-sent amounts never reach this function.
func ApplyDiscount(total float64, discount *models.DiscountInfo) float64 {
	if discount == nil {
		return total
	}
	return total - discount.Amount
}
