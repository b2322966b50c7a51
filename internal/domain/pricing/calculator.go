// Package pricing implements the payment-proposal money math: the
// discount/down-payment calculator and the installment builder. It has
// no storage dependency and every function here is side-effect free.
package pricing

import (
	"math"

	"mobiplan/internal/domain/entities"
)

// Quote holds the figures derived from a budget total and its optional
// discount and down-payment adjustments.

type Quote struct {
	TotalWithDiscount float64 `json:"total_with_discount"`
	DownPaymentAmount float64 `json:"down_payment_amount"`
	RemainingAmount   float64 `json:"remaining_amount"`
}

// Calculate derives the discounted total, the down-payment amount and the
// remaining balance from totalAmount.
//
// Evaluation order is fixed:
//  1. the discount is applied to totalAmount;
//  2. a percentage down payment is applied to the discounted total, a
//     fixed one is taken as-is;
//  3. remaining = discounted total - down payment.
//
// An unknown adjustment type behaves as "none". Results are not clamped:
// a discount or down payment larger than the total yields a negative
// remaining amount, and rejecting that is the caller's decision.
func Calculate(totalAmount float64, discountType entities.AdjustmentType, discountValue float64, downPaymentType entities.AdjustmentType, downPaymentValue float64) Quote {
	totalWithDiscount := totalAmount
	switch discountType {
	case entities.AdjustmentPercentage:
		totalWithDiscount = totalAmount * (1 - discountValue/100)
	case entities.AdjustmentFixed:
		totalWithDiscount = totalAmount - discountValue
	}

	downPayment := 0.0
	switch downPaymentType {
	case entities.AdjustmentPercentage:
		downPayment = totalWithDiscount * (downPaymentValue / 100)
	case entities.AdjustmentFixed:
		downPayment = downPaymentValue
	}

	return Quote{
		TotalWithDiscount: totalWithDiscount,
		DownPaymentAmount: downPayment,
		RemainingAmount:   totalWithDiscount - downPayment,
	}
}

// RoundCents rounds a monetary value to two decimals. Persisted derived
// fields go through this; the raw Calculate output does not.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a copy of q with every figure rounded to cents.
func (q Quote) Rounded() Quote {
	return Quote{
		TotalWithDiscount: RoundCents(q.TotalWithDiscount),
		DownPaymentAmount: RoundCents(q.DownPaymentAmount),
		RemainingAmount:   RoundCents(q.RemainingAmount),
	}
}
