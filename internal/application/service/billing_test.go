package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
)

func TestComputeTotalsCashHasNoTax(t *testing.T) {
	b := NewBillingService()

	got := b.ComputeTotals([]float64{500, 500}, 0, enum.PaymentMethodCash, nil)

	assert.Equal(t, 1000.0, got.Subtotal)
	assert.Equal(t, 0.0, got.Tax)
	assert.Equal(t, 1000.0, got.Total)
}

func TestComputeTotalsExtractsInclusiveTax(t *testing.T) {
	b := NewBillingService()

	got := b.ComputeTotals([]float64{1000}, 0, enum.PaymentMethodUPI, nil)

	// 1000 * 0.18 / 1.18 = 152.54, rounds to 153
	assert.Equal(t, 1000.0, got.Subtotal)
	assert.Equal(t, 153.0, got.Tax)
	assert.Equal(t, 1153.0, got.Total)

	// extracted tax plus the tax-exclusive remainder reproduces the subtotal
	assert.Equal(t, got.Subtotal, (got.Subtotal-got.Tax)+got.Tax)
}

func TestComputeTotalsAppliesDiscountAfterTax(t *testing.T) {
	b := NewBillingService()

	got := b.ComputeTotals([]float64{1000}, 100, enum.PaymentMethodCreditCard, nil)

	assert.Equal(t, 153.0, got.Tax)
	assert.Equal(t, 1053.0, got.Total)
}

func TestComputeTotalsSplitWithNonCashTaxesPaidSum(t *testing.T) {
	b := NewBillingService()

	split := []entity.PaymentDetail{
		{Amount: 100, PaymentMethod: enum.PaymentMethodCash},
		{Amount: 900, PaymentMethod: enum.PaymentMethodUPI},
	}
	got := b.ComputeTotals([]float64{1000}, 0, enum.PaymentMethodSplit, split)

	// one non-cash slice present, so tax is extracted from the 1000 paid
	assert.Equal(t, 153.0, got.Tax)
	assert.Equal(t, 1153.0, got.Total)
}

func TestComputeTotalsAllCashSplitHasNoTax(t *testing.T) {
	b := NewBillingService()

	split := []entity.PaymentDetail{
		{Amount: 400, PaymentMethod: enum.PaymentMethodCash},
		{Amount: 600, PaymentMethod: enum.PaymentMethodCash},
	}
	got := b.ComputeTotals([]float64{1000}, 0, enum.PaymentMethodSplit, split)

	assert.Equal(t, 0.0, got.Tax)
	assert.Equal(t, 1000.0, got.Total)
}

func TestComputeTotalsIsDeterministic(t *testing.T) {
	b := NewBillingService()

	first := b.ComputeTotals([]float64{333.33, 666.67}, 50, enum.PaymentMethodDebitCard, nil)
	second := b.ComputeTotals([]float64{333.33, 666.67}, 50, enum.PaymentMethodDebitCard, nil)

	assert.Equal(t, first, second)
}

func TestWalkInTaxAddsOnTop(t *testing.T) {
	b := NewBillingService()

	// walk-in creation adds 18% on top instead of extracting it
	assert.Equal(t, 180.0, b.WalkInTax(1000))
	assert.Equal(t, 90.0, b.WalkInTax(500))
	assert.Equal(t, 0.0, b.WalkInTax(0))
}

func TestSplitGSTHalves(t *testing.T) {
	b := NewBillingService()

	cgst, sgst := b.SplitGST(153)
	assert.Equal(t, 76.5, cgst)
	assert.Equal(t, 76.5, sgst)
}

func TestPendingAmountBasicGap(t *testing.T) {
	b := NewBillingService()

	payments := entity.PaymentList{
		{Amount: 500, PaymentMethod: enum.PaymentMethodCash},
	}
	assert.Equal(t, 653.0, b.PendingAmount(1153, 1000, payments))
}

func TestPendingAmountSnapsOneRupeeGap(t *testing.T) {
	b := NewBillingService()

	payments := entity.PaymentList{
		{Amount: 1152.5, PaymentMethod: enum.PaymentMethodUPI},
	}
	assert.Equal(t, 0.0, b.PendingAmount(1153, 1000, payments))
}

func TestPendingAmountSnapsSubtotalMatch(t *testing.T) {
	b := NewBillingService()

	// a cash payer settling the pre-tax figure counts as fully paid
	payments := entity.PaymentList{
		{Amount: 1000, PaymentMethod: enum.PaymentMethodCash},
	}
	assert.Equal(t, 0.0, b.PendingAmount(1153, 1000, payments))
}

func TestPendingAmountOverpaymentClampsToZero(t *testing.T) {
	b := NewBillingService()

	payments := entity.PaymentList{
		{Amount: 1200, PaymentMethod: enum.PaymentMethodCash},
	}
	assert.Equal(t, 0.0, b.PendingAmount(1153, 1000, payments))
}

func TestPendingAmountPaymentSumInvariant(t *testing.T) {
	b := NewBillingService()

	payments := entity.PaymentList{
		{Amount: 300, PaymentMethod: enum.PaymentMethodCash},
		{Amount: 400, PaymentMethod: enum.PaymentMethodUPI},
	}
	pending := b.PendingAmount(1153, 1000, payments)

	assert.InDelta(t, 1153.0, payments.TotalPaid()+pending, 1.0)
}

func TestLineGSTBreaksDownProductRate(t *testing.T) {
	b := NewBillingService()

	// 118 inclusive at 18% splits into a 100 base and 9+9 tax
	base, cgst, sgst := b.LineGST(118, 18)
	assert.Equal(t, 100.0, base)
	assert.Equal(t, 9.0, cgst)
	assert.Equal(t, 9.0, sgst)
}

func TestLineGSTZeroRateLeavesPriceUntouched(t *testing.T) {
	b := NewBillingService()

	base, cgst, sgst := b.LineGST(250, 0)
	assert.Equal(t, 250.0, base)
	assert.Equal(t, 0.0, cgst)
	assert.Equal(t, 0.0, sgst)
}
