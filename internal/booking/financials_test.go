package booking

import (
	"testing"

	"bridal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestComputeFinancials(t *testing.T) {
	items := []domain.Item{
		{ID: 1, RentalCost: 600},
		{ID: 2, RentalCost: 400},
	}

	t.Run("Canonical roll-up", func(t *testing.T) {
		b := ComputeFinancials(FinancialInput{
			Items:                     items,
			Discount:                  100,
			AdditionalCost:            50,
			TravelCost:                50,
			SecurityDepositPercentage: 30,
			AdvancePercentage:         50,
		})
		assert.Equal(t, 1000.0, b.ItemsTotal)
		assert.Equal(t, 900.0, b.DiscountedItemsTotal)
		assert.Equal(t, 100.0, b.AdditionalCosts)
		assert.Equal(t, 1000.0, b.Subtotal)
		assert.Equal(t, 300.0, b.SecurityDeposit)
		assert.Equal(t, 30.0, b.SecurityDepositPercentage)
		assert.Equal(t, 500.0, b.Advance)
		assert.Equal(t, 50.0, b.AdvancePercentage)
		assert.Equal(t, 1300.0, b.Total)
	})

	t.Run("Explicit deposit amount wins and re-derives percentage", func(t *testing.T) {
		b := ComputeFinancials(FinancialInput{
			Items:                     items,
			Discount:                  100,
			AdditionalCost:            50,
			TravelCost:                50,
			SecurityDepositPercentage: 30,
			SecurityDepositAmount:     ptr(250),
			AdvancePercentage:         50,
		})
		assert.Equal(t, 250.0, b.SecurityDeposit)
		assert.Equal(t, 25.0, b.SecurityDepositPercentage)
		assert.Equal(t, 1250.0, b.Total)
	})

	t.Run("Explicit advance amount wins and re-derives percentage", func(t *testing.T) {
		b := ComputeFinancials(FinancialInput{
			Items:             items,
			AdvancePercentage: 50,
			AdvanceAmount:     ptr(100),
		})
		assert.Equal(t, 100.0, b.Advance)
		assert.Equal(t, 10.0, b.AdvancePercentage)
	})

	t.Run("Zero subtotal keeps input percentages, no NaN", func(t *testing.T) {
		b := ComputeFinancials(FinancialInput{
			SecurityDepositPercentage: 30,
			AdvancePercentage:         50,
		})
		assert.Equal(t, 0.0, b.Subtotal)
		assert.Equal(t, 0.0, b.SecurityDeposit)
		assert.Equal(t, 30.0, b.SecurityDepositPercentage)
		assert.Equal(t, 0.0, b.Advance)
		assert.Equal(t, 50.0, b.AdvancePercentage)
	})

	t.Run("Idempotent for identical inputs", func(t *testing.T) {
		in := FinancialInput{
			Items:                     items,
			Discount:                  100,
			AdditionalCost:            50,
			TravelCost:                50,
			SecurityDepositPercentage: 30,
			AdvancePercentage:         50,
		}
		assert.Equal(t, ComputeFinancials(in), ComputeFinancials(in))
	})
}

func TestPercentageConversion(t *testing.T) {
	t.Run("Amount from percentage", func(t *testing.T) {
		assert.Equal(t, 300.0, AmountFromPercentage(30, 1000))
	})

	t.Run("Percentage from amount", func(t *testing.T) {
		assert.Equal(t, 25.0, PercentageFromAmount(250, 1000))
	})

	t.Run("Zero base yields zero, not Inf", func(t *testing.T) {
		assert.Equal(t, 0.0, PercentageFromAmount(250, 0))
	})

	t.Run("Round trip", func(t *testing.T) {
		pct := PercentageFromAmount(AmountFromPercentage(42, 1000), 1000)
		assert.InDelta(t, 42.0, pct, 1e-9)
	})
}

func TestSummarizePayments(t *testing.T) {
	breakdown := FinancialBreakdown{Total: 1000}

	t.Run("Fully paid", func(t *testing.T) {
		s := SummarizePayments(breakdown, []domain.Payment{
			{Amount: 1000, Type: domain.PaymentTypeAdvance},
		})
		assert.Equal(t, domain.PaymentStatusPaid, s.Status)
		assert.Equal(t, 1000.0, s.TotalPaid)
		assert.Equal(t, 0.0, s.Remaining)
		assert.Equal(t, 100.0, s.PercentagePaid)
	})

	t.Run("Partial", func(t *testing.T) {
		s := SummarizePayments(breakdown, []domain.Payment{
			{Amount: 400, Type: domain.PaymentTypeAdvance},
		})
		assert.Equal(t, domain.PaymentStatusPartial, s.Status)
		assert.Equal(t, 600.0, s.Remaining)
		assert.Equal(t, 40.0, s.PercentagePaid)
	})

	t.Run("Unpaid", func(t *testing.T) {
		s := SummarizePayments(breakdown, nil)
		assert.Equal(t, domain.PaymentStatusUnpaid, s.Status)
		assert.Equal(t, 1000.0, s.Remaining)
	})

	t.Run("Refund overrides regardless of totals", func(t *testing.T) {
		s := SummarizePayments(breakdown, []domain.Payment{
			{Amount: 1000, Type: domain.PaymentTypeAdvance},
			{Amount: 200, Type: domain.PaymentTypeRefund},
		})
		assert.Equal(t, domain.PaymentStatusRefunded, s.Status)
		// Refund amounts never count toward the paid total.
		assert.Equal(t, 1000.0, s.TotalPaid)
	})

	t.Run("Zero total yields zero percentage", func(t *testing.T) {
		s := SummarizePayments(FinancialBreakdown{}, []domain.Payment{
			{Amount: 100, Type: domain.PaymentTypeOther},
		})
		assert.Equal(t, 0.0, s.PercentagePaid)
	})
}
