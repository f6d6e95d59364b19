// Package quote derives the monetary figures of a quotation from a subtotal
// and a VAT flag. The calculator is always re-run in full on edits; figures
// are never patched incrementally.
package quote

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuoteInput is returned for a negative or non-finite subtotal.
var ErrInvalidQuoteInput = errors.New("invalid quote input")

// Figures is the full set of derived quotation amounts.
//
// Invariants, for every output of Calculate:
//   - VatAmount == round2(Subtotal * rate) when IncludesVat, else 0
//   - Total == Subtotal + VatAmount
type Figures struct {
	Subtotal    float64
	VatAmount   float64
	Total       float64
	IncludesVat bool
}

// Calculator computes quotation figures with a fixed VAT rate. The rate is
// injected at construction so tests and future tax changes don't touch the
// call sites.
type Calculator struct {
	vatRate decimal.Decimal
}

// NewCalculator builds a Calculator for the given VAT rate (e.g. 0.15).
func NewCalculator(vatRate float64) Calculator {
	return Calculator{vatRate: decimal.NewFromFloat(vatRate)}
}

// Calculate derives the VAT amount and total for a subtotal. All amounts are
// rounded to 2 decimal places, half up. Calling it twice with the same
// inputs yields the same outputs.
func (c Calculator) Calculate(subtotal float64, applyVat bool) (Figures, error) {
	if subtotal < 0 || math.IsNaN(subtotal) || math.IsInf(subtotal, 0) {
		return Figures{}, ErrInvalidQuoteInput
	}

	sub := decimal.NewFromFloat(subtotal).Round(2)

	vat := decimal.Zero
	if applyVat {
		vat = sub.Mul(c.vatRate).Round(2)
	}
	total := sub.Add(vat)

	return Figures{
		Subtotal:    sub.InexactFloat64(),
		VatAmount:   vat.InexactFloat64(),
		Total:       total.InexactFloat64(),
		IncludesVat: applyVat,
	}, nil
}
