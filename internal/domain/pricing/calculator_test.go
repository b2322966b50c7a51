package pricing

import (
	"math"
	"testing"

	"mobiplan/internal/domain/entities"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name             string
		total            float64
		discountType     entities.AdjustmentType
		discountValue    float64
		downPaymentType  entities.AdjustmentType
		downPaymentValue float64
		want             Quote
	}{
		{
			name:  "no adjustments keeps total",
			total: 500,
			want:  Quote{TotalWithDiscount: 500, DownPaymentAmount: 0, RemainingAmount: 500},
		},
		{
			name:          "percentage discount",
			total:         1000,
			discountType:  entities.AdjustmentPercentage,
			discountValue: 10,
			want:          Quote{TotalWithDiscount: 900, DownPaymentAmount: 0, RemainingAmount: 900},
		},
		{
			name:          "fixed discount",
			total:         1000,
			discountType:  entities.AdjustmentFixed,
			discountValue: 150,
			want:          Quote{TotalWithDiscount: 850, DownPaymentAmount: 0, RemainingAmount: 850},
		},
		{
			name:             "percentage down payment applies to discounted total",
			total:            1000,
			discountType:     entities.AdjustmentPercentage,
			discountValue:    10,
			downPaymentType:  entities.AdjustmentPercentage,
			downPaymentValue: 10,
			want:             Quote{TotalWithDiscount: 900, DownPaymentAmount: 90, RemainingAmount: 810},
		},
		{
			name:             "fixed down payment",
			total:            1000,
			downPaymentType:  entities.AdjustmentFixed,
			downPaymentValue: 300,
			want:             Quote{TotalWithDiscount: 1000, DownPaymentAmount: 300, RemainingAmount: 700},
		},
		{
			name:          "hundred percent discount",
			total:         1000,
			discountType:  entities.AdjustmentPercentage,
			discountValue: 100,
			want:          Quote{TotalWithDiscount: 0, DownPaymentAmount: 0, RemainingAmount: 0},
		},
		{
			name:             "oversized adjustments go negative unclamped",
			total:            100,
			discountType:     entities.AdjustmentFixed,
			discountValue:    80,
			downPaymentType:  entities.AdjustmentFixed,
			downPaymentValue: 50,
			want:             Quote{TotalWithDiscount: 20, DownPaymentAmount: 50, RemainingAmount: -30},
		},
		{
			name:          "explicit none type keeps total",
			total:         250,
			discountType:  entities.AdjustmentNone,
			discountValue: 10,
			want:          Quote{TotalWithDiscount: 250, DownPaymentAmount: 0, RemainingAmount: 250},
		},
		{
			name:  "zero total",
			total: 0,
			want:  Quote{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.total, tc.discountType, tc.discountValue, tc.downPaymentType, tc.downPaymentValue)
			if !almostEqual(got.TotalWithDiscount, tc.want.TotalWithDiscount) ||
				!almostEqual(got.DownPaymentAmount, tc.want.DownPaymentAmount) ||
				!almostEqual(got.RemainingAmount, tc.want.RemainingAmount) {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestCalculate_PercentageSweep(t *testing.T) {
	for v := 0.0; v <= 100.0; v += 12.5 {
		got := Calculate(840, entities.AdjustmentPercentage, v, "", 0)
		want := 840 * (1 - v/100)
		if !almostEqual(got.TotalWithDiscount, want) {
			t.Fatalf("discount %v: expected %v, got %v", v, want, got.TotalWithDiscount)
		}
		if !almostEqual(got.RemainingAmount, want) {
			t.Fatalf("discount %v: expected remaining %v, got %v", v, want, got.RemainingAmount)
		}
	}
}

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{12.344, 12.34},
		{12.345, 12.35},
		{12.346, 12.35},
		{-1.005, -1.0},
		{0, 0},
	}
	for _, tc := range cases {
		if got := RoundCents(tc.in); got != tc.want {
			t.Fatalf("RoundCents(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestQuoteRounded(t *testing.T) {
	q := Quote{TotalWithDiscount: 333.333333, DownPaymentAmount: 33.3333333, RemainingAmount: 299.9999997}
	r := q.Rounded()
	if r.TotalWithDiscount != 333.33 || r.DownPaymentAmount != 33.33 || r.RemainingAmount != 300 {
		t.Fatalf("unexpected rounded quote: %+v", r)
	}
}
