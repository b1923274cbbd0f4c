package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
)

// GSTRate is the fixed Goods and Services Tax rate applied to every taxable
// sale. Displayed as CGST 9% + SGST 9%, never IGST.
const GSTRate = 0.18

var (
	gstNumerator   = decimal.NewFromInt(18)
	gstDenominator = decimal.NewFromInt(118)
)

// Totals is the result of pricing an order
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// BillingService prices orders. It is a pure computation layer: same inputs
// always produce the same outputs, no I/O.
type BillingService struct{}

// NewBillingService creates a new billing service
func NewBillingService() *BillingService {
	return &BillingService{}
}

// ComputeTotals prices an order from its line totals, a discount and the
// payment method. Cash sales carry no GST line. Non-cash sales treat GST as
// already included in the subtotal and extract it. When split payments are
// present the extraction base is the sum of the split amounts instead of the
// subtotal, and tax applies whenever at least one slice is non-cash.
func (b *BillingService) ComputeTotals(lineTotals []float64, discount float64, method enum.PaymentMethod, splitPayments []entity.PaymentDetail) Totals {
	subtotal := decimal.Zero
	for _, t := range lineTotals {
		subtotal = subtotal.Add(decimal.NewFromFloat(t))
	}
	subtotal = subtotal.Round(0)

	tax := decimal.Zero
	if len(splitPayments) > 0 {
		anyNonCash := false
		paid := decimal.Zero
		for _, p := range splitPayments {
			if p.PaymentMethod != enum.PaymentMethodCash {
				anyNonCash = true
			}
			paid = paid.Add(decimal.NewFromFloat(p.Amount))
		}
		if anyNonCash {
			tax = extractInclusiveTax(paid)
		}
	} else if method != enum.PaymentMethodCash {
		tax = extractInclusiveTax(subtotal)
	}

	total := subtotal.Add(tax).Sub(decimal.NewFromFloat(discount)).Round(0)

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}

// extractInclusiveTax recovers the GST portion of a tax-inclusive amount:
// round(base * 18 / 118).
func extractInclusiveTax(base decimal.Decimal) decimal.Decimal {
	return base.Mul(gstNumerator).Div(gstDenominator).Round(0)
}

// WalkInTax computes the tax added at walk-in order creation. Unlike
// ComputeTotals this adds GST on top of the subtotal rather than extracting
// an included amount. The two entry points intentionally disagree.
func (b *BillingService) WalkInTax(subtotal float64) float64 {
	return decimal.NewFromFloat(subtotal).Mul(decimal.NewFromFloat(GSTRate)).Round(0).InexactFloat64()
}

// SplitGST halves a tax amount into its CGST and SGST display components
func (b *BillingService) SplitGST(tax float64) (cgst, sgst float64) {
	half := tax / 2
	return half, half
}

// LineGST breaks a GST-inclusive line price down at the line's own rate.
// Product rows carry a gst_percentage of their own for HSN invoicing, which
// may differ from the order-level rate. Returns the tax-exclusive base and
// the CGST/SGST halves, each rounded to two decimals.
func (b *BillingService) LineGST(inclusivePrice, gstPercentage float64) (base, cgst, sgst float64) {
	if gstPercentage <= 0 {
		return inclusivePrice, 0, 0
	}
	price := decimal.NewFromFloat(inclusivePrice)
	rate := decimal.NewFromFloat(gstPercentage).Div(decimal.NewFromInt(100))
	baseDec := price.Div(decimal.NewFromInt(1).Add(rate)).Round(2)
	halfTax := price.Sub(baseDec).Div(decimal.NewFromInt(2)).Round(2)
	return baseDec.InexactFloat64(), halfTax.InexactFloat64(), halfTax.InexactFloat64()
}

// PendingAmount reconciles recorded payments against the order total in
// integer paise. Gaps of one rupee or less are treated as fully paid, as is
// any payment total that matches the pre-tax subtotal that closely (a cash
// payer settling the untaxed figure).
func (b *BillingService) PendingAmount(total, subtotal float64, payments entity.PaymentList) float64 {
	totalPaise := toPaise(total)
	subtotalPaise := toPaise(subtotal)

	var paidPaise int64
	for _, p := range payments {
		paidPaise += toPaise(p.Amount)
	}

	pendingPaise := totalPaise - paidPaise
	if pendingPaise < 0 {
		pendingPaise = 0
	}
	if abs64(paidPaise-subtotalPaise) <= 100 {
		pendingPaise = 0
	}
	if pendingPaise <= 100 {
		pendingPaise = 0
	}
	if paidPaise >= totalPaise {
		pendingPaise = 0
	}

	return float64(pendingPaise) / 100
}

func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
