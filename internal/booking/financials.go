package booking

import "bridal-backend/internal/domain"

// FinancialInput collects everything the calculator needs. Amount fields
// are explicit overrides: when set they win over the corresponding
// percentage, and the percentage is re-derived from them.
type FinancialInput struct {
	Items                     []domain.Item
	AdditionalCost            float64
	TravelCost                float64
	Discount                  float64
	SecurityDepositPercentage float64
	AdvancePercentage         float64
	SecurityDepositAmount     *float64
	AdvanceAmount             *float64
}

// FinancialBreakdown is the consistent roll-up shared by the add, edit,
// view and quote flows.
type FinancialBreakdown struct {
	ItemsTotal                float64 `json:"itemsTotal"`
	Discount                  float64 `json:"discount"`
	DiscountedItemsTotal      float64 `json:"discountedItemsTotal"`
	AdditionalCosts           float64 `json:"additionalCosts"`
	Subtotal                  float64 `json:"subtotal"`
	SecurityDeposit           float64 `json:"securityDeposit"`
	SecurityDepositPercentage float64 `json:"securityDepositPercentage"`
	Advance                   float64 `json:"advance"`
	AdvancePercentage         float64 `json:"advancePercentage"`
	Total                     float64 `json:"total"`
}

// ComputeFinancials rolls the selected items and cost inputs up into a
// breakdown, in canonical order:
//
//	itemsTotal           = Σ rentalCost
//	discountedItemsTotal = itemsTotal − discount
//	additionalCosts      = additionalCost + travelCost
//	subtotal             = discountedItemsTotal + additionalCosts
//	securityDeposit      = override amount, else subtotal × pct/100
//	advance              = override amount, else subtotal × pct/100
//	total                = subtotal + securityDeposit
//
// Percentages are normalized back from the effective amounts so the two
// representations always agree; a zero subtotal keeps the input
// percentage rather than dividing by zero.
func ComputeFinancials(in FinancialInput) FinancialBreakdown {
	var itemsTotal float64
	for _, item := range in.Items {
		itemsTotal += item.RentalCost
	}
	discountedItemsTotal := itemsTotal - in.Discount
	additionalCosts := in.AdditionalCost + in.TravelCost
	subtotal := discountedItemsTotal + additionalCosts

	securityDeposit := AmountFromPercentage(in.SecurityDepositPercentage, subtotal)
	if in.SecurityDepositAmount != nil {
		securityDeposit = *in.SecurityDepositAmount
	}
	securityDepositPercentage := in.SecurityDepositPercentage
	if subtotal > 0 {
		securityDepositPercentage = (securityDeposit / subtotal) * 100
	}

	advance := AmountFromPercentage(in.AdvancePercentage, subtotal)
	if in.AdvanceAmount != nil {
		advance = *in.AdvanceAmount
	}
	advancePercentage := in.AdvancePercentage
	if subtotal > 0 {
		advancePercentage = (advance / subtotal) * 100
	}

	return FinancialBreakdown{
		ItemsTotal:                itemsTotal,
		Discount:                  in.Discount,
		DiscountedItemsTotal:      discountedItemsTotal,
		AdditionalCosts:           additionalCosts,
		Subtotal:                  subtotal,
		SecurityDeposit:           securityDeposit,
		SecurityDepositPercentage: securityDepositPercentage,
		Advance:                   advance,
		AdvancePercentage:         advancePercentage,
		Total:                     subtotal + securityDeposit,
	}
}

// AmountFromPercentage converts a percentage edit into the absolute
// amount it represents against the given base.
func AmountFromPercentage(percentage, base float64) float64 {
	return base * percentage / 100
}

// PercentageFromAmount converts an amount edit back into a percentage of
// the base. A zero or negative base yields 0, never NaN or Inf.
func PercentageFromAmount(amount, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return amount / base * 100
}

// PaymentSummary is the derived (never stored) payment roll-up for one
// reservation.
type PaymentSummary struct {
	TotalPaid      float64              `json:"totalPaid"`
	Remaining      float64              `json:"remaining"`
	PercentagePaid float64              `json:"percentagePaid"`
	Status         domain.PaymentStatus `json:"status"`
}

// SummarizePayments aggregates a reservation's payments against its
// financial breakdown. Refund-type payments are excluded from the paid
// total, and the presence of any refund overrides the status to
// Refunded regardless of amounts.
func SummarizePayments(b FinancialBreakdown, payments []domain.Payment) PaymentSummary {
	var totalPaid float64
	hasRefund := false
	for _, p := range payments {
		if p.Type == domain.PaymentTypeRefund {
			hasRefund = true
			continue
		}
		totalPaid += p.Amount
	}

	status := domain.PaymentStatusUnpaid
	switch {
	case totalPaid >= b.Total:
		status = domain.PaymentStatusPaid
	case totalPaid > 0:
		status = domain.PaymentStatusPartial
	}
	if hasRefund {
		status = domain.PaymentStatusRefunded
	}

	var percentage float64
	if b.Total > 0 {
		percentage = totalPaid / b.Total * 100
	}

	return PaymentSummary{
		TotalPaid:      totalPaid,
		Remaining:      b.Total - totalPaid,
		PercentagePaid: percentage,
		Status:         status,
	}
}
