package usecase

import (
	"testing"

	"github.com/shopspring/decimal"

	"stitchworks/internal/domain/entities"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLineSubtotal(t *testing.T) {
	t.Run("quantity times unit price", func(t *testing.T) {
		got := LineSubtotal(10, dec("25.00"))
		if !got.Equal(dec("250.00")) {
			t.Fatalf("expected 250.00, got %s", got)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		got := LineSubtotal(7, decimal.Zero)
		if !got.Equal(decimal.Zero) {
			t.Fatalf("expected 0, got %s", got)
		}
	})
}

func TestComputeTotals(t *testing.T) {
	lines := []entities.OrderLine{
		{Quantity: 10, UnitPrice: dec("25.00"), Subtotal: dec("250.00")},
		{Quantity: 5, UnitPrice: dec("40.00"), Subtotal: dec("200.00")},
	}

	t.Run("subtotal sums line subtotals", func(t *testing.T) {
		totals := ComputeTotals(lines, decimal.Zero, decimal.Zero)
		if !totals.Subtotal.Equal(dec("450.00")) {
			t.Fatalf("expected subtotal 450.00, got %s", totals.Subtotal)
		}
		if !totals.Total.Equal(dec("450.00")) {
			t.Fatalf("expected total 450.00, got %s", totals.Total)
		}
		if !totals.Balance.Equal(dec("450.00")) {
			t.Fatalf("expected balance 450.00, got %s", totals.Balance)
		}
	})

	t.Run("discount and advance", func(t *testing.T) {
		totals := ComputeTotals(lines, dec("50"), dec("200"))
		if !totals.Total.Equal(dec("400")) {
			t.Fatalf("expected total 400, got %s", totals.Total)
		}
		if !totals.Balance.Equal(dec("200")) {
			t.Fatalf("expected balance 200, got %s", totals.Balance)
		}
	})

	t.Run("overpaid advance yields negative balance", func(t *testing.T) {
		totals := ComputeTotals(lines, decimal.Zero, dec("500"))
		if !totals.Balance.Equal(dec("-50")) {
			t.Fatalf("expected balance -50, got %s", totals.Balance)
		}
	})

	t.Run("discount above subtotal yields negative total", func(t *testing.T) {
		totals := ComputeTotals(lines, dec("500"), decimal.Zero)
		if !totals.Total.Equal(dec("-50")) {
			t.Fatalf("expected total -50, got %s", totals.Total)
		}
	})

	t.Run("no lines", func(t *testing.T) {
		totals := ComputeTotals(nil, decimal.Zero, decimal.Zero)
		if !totals.Subtotal.Equal(decimal.Zero) || !totals.Balance.Equal(decimal.Zero) {
			t.Fatalf("expected zero totals, got %+v", totals)
		}
	})

	t.Run("same input gives same output", func(t *testing.T) {
		a := ComputeTotals(lines, dec("50"), dec("200"))
		b := ComputeTotals(lines, dec("50"), dec("200"))
		if !a.Subtotal.Equal(b.Subtotal) || !a.Total.Equal(b.Total) || !a.Balance.Equal(b.Balance) {
			t.Fatalf("totals not deterministic: %+v vs %+v", a, b)
		}
	})
}
