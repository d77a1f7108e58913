package usecase

import (
	"github.com/shopspring/decimal"

	"stitchworks/internal/domain/entities"
)

// LineSubtotal returns quantity x unit price for a single draft line.
func LineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeTotals derives the money summary of a draft order from its lines,
// a flat discount and an advance payment.
//
//	subtotal = sum(quantity x unit price)
//	total    = subtotal - discount
//	balance  = total - advance
//
// Neither total nor balance is floored at zero: a discount larger than the
// subtotal or an advance larger than the total produces a negative value that
// is surfaced as-is. Pure and deterministic; callers re-run it on every line
// edit.
func ComputeTotals(lines []entities.OrderLine, discount, advance decimal.Decimal) entities.OrderTotals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineSubtotal(l.Quantity, l.UnitPrice))
	}

	total := subtotal.Sub(discount)
	return entities.OrderTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Advance:  advance,
		Balance:  total.Sub(advance),
	}
}
