package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Balance is the derived money view of an order.
type Balance struct {
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	Remaining  decimal.Decimal
}

// ComputeTotal sums weight*price over the items. Item subtotals are
// recomputed here rather than trusted, so a stale Subtotal field cannot
// skew the order total.
func ComputeTotal(items []OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		sub, err := item.WeightKg.Mul(item.PricePerKg)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error: %w", err)
		}
		total, err = total.Add(sub)
		if err != nil {
			return decimal.Zero, fmt.Errorf("math error: %w", err)
		}
	}
	return total, nil
}

// CalculateBalance derives total, paid and remaining from the order. Pure:
// AmountPaid is re-derived from the payment history, not read from the
// stored running counter. Remaining may go negative on overpayment; that is
// not guarded here.
func CalculateBalance(order *Order) (Balance, error) {
	paid := decimal.Zero
	var err error
	for _, p := range order.Payments {
		paid, err = paid.Add(p.Amount)
		if err != nil {
			return Balance{}, fmt.Errorf("math error: %w", err)
		}
	}

	remaining, err := order.Total.Sub(paid)
	if err != nil {
		return Balance{}, fmt.Errorf("math error: %w", err)
	}

	return Balance{
		Total:      order.Total,
		AmountPaid: paid,
		Remaining:  remaining,
	}, nil
}
