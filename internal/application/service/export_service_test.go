package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
)

func newExportService(orderRepo *mockOrderRepo) *ExportService {
	return NewExportService(orderRepo, NewAggregatorService(), NewBillingService())
}

func seedOrder(t *testing.T, repo *mockOrderRepo, order *entity.Order) *entity.Order {
	t.Helper()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = enum.OrderStatusCompleted
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = enum.PaymentMethodCash
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestDeriveDisplayIDsRunsIndependentSequences(t *testing.T) {
	repo := newMockOrderRepo()
	salon1 := seedOrder(t, repo, &entity.Order{ClientName: "Stock Room", IsSalonConsumption: true})
	sales1 := seedOrder(t, repo, &entity.Order{ClientName: "Asha Rao"})
	salon2 := seedOrder(t, repo, &entity.Order{ClientName: "Back Bar", IsSalonConsumption: true})
	sales2 := seedOrder(t, repo, &entity.Order{ClientName: "Bina Shah"})

	orders, err := repo.ListAllAscending(context.Background())
	require.NoError(t, err)

	ids := DeriveDisplayIDs(orders)
	assert.Equal(t, "salon-0001", ids[salon1.ID])
	assert.Equal(t, "sales-0001", ids[sales1.ID])
	assert.Equal(t, "salon-0002", ids[salon2.ID])
	assert.Equal(t, "sales-0002", ids[sales2.ID])
}

func TestDeriveDisplayIDsRenumbersAfterDeletion(t *testing.T) {
	repo := newMockOrderRepo()
	first := seedOrder(t, repo, &entity.Order{ClientName: "Asha Rao"})
	second := seedOrder(t, repo, &entity.Order{ClientName: "Bina Shah"})
	third := seedOrder(t, repo, &entity.Order{ClientName: "Chitra Nair"})

	ctx := context.Background()
	orders, err := repo.ListAllAscending(ctx)
	require.NoError(t, err)
	before := DeriveDisplayIDs(orders)
	assert.Equal(t, "sales-0003", before[third.ID])

	// sequences are derived, not stored: deleting the middle order shifts
	// every later order down on the next derivation
	require.NoError(t, repo.Delete(ctx, second.ID))
	orders, err = repo.ListAllAscending(ctx)
	require.NoError(t, err)
	after := DeriveDisplayIDs(orders)
	assert.Equal(t, "sales-0001", after[first.ID])
	assert.Equal(t, "sales-0002", after[third.ID])
}

func TestDisplayIDForUnknownOrder(t *testing.T) {
	repo := newMockOrderRepo()
	seedOrder(t, repo, &entity.Order{ClientName: "Asha Rao"})

	svc := newExportService(repo)
	_, err := svc.DisplayIDFor(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestExportOrdersCSVRoundsAmounts(t *testing.T) {
	repo := newMockOrderRepo()
	seedOrder(t, repo, &entity.Order{
		ClientName:    "Asha Rao",
		StylistName:   "Bina",
		Services:      entity.LineItems{{ServiceID: "svc-1", Name: "Facial", Price: 1000, Quantity: 1}},
		Subtotal:      1000,
		Tax:           153,
		Total:         1153,
		PaymentMethod: enum.PaymentMethodUPI,
	})

	svc := newExportService(repo)
	out, err := svc.ExportOrdersCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "CGST,SGST")

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 13)
	assert.Equal(t, "sales-0001", fields[0])
	assert.Equal(t, "Asha Rao", fields[2])
	// 153 split into 76.5 + 76.5, each half rounded to whole rupees
	assert.Equal(t, "1000", fields[5])
	assert.Equal(t, "77", fields[6])
	assert.Equal(t, "77", fields[7])
	assert.Equal(t, "1153", fields[9])
}

func TestExportOrdersCSVCollapsesMultiExpertGroup(t *testing.T) {
	repo := newMockOrderRepo()
	apptID := uuid.New()
	seedOrder(t, repo, &entity.Order{
		ClientName:    "Asha Rao",
		StylistName:   "Bina",
		AppointmentID: &apptID,
		TotalExperts:  2,
		ExpertIndex:   1,
		Services:      entity.LineItems{{ServiceID: "svc-1", Name: "Bridal Package", Price: 500, Quantity: 1}},
		Subtotal:      500, Tax: 77, Total: 577,
	})
	seedOrder(t, repo, &entity.Order{
		ClientName:    "Asha Rao",
		StylistName:   "Chitra",
		AppointmentID: &apptID,
		TotalExperts:  2,
		ExpertIndex:   2,
		Services:      entity.LineItems{{ServiceID: "svc-1", Name: "Bridal Package", Price: 500, Quantity: 1}},
		Subtotal:      500, Tax: 76, Total: 576,
	})

	svc := newExportService(repo)
	out, err := svc.ExportOrdersCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "1000")
	assert.Contains(t, lines[1], "1153")
}

func TestExportOrdersXLSXProducesWorkbook(t *testing.T) {
	repo := newMockOrderRepo()
	seedOrder(t, repo, &entity.Order{
		ClientName: "Asha Rao",
		Services:   entity.LineItems{{ServiceID: "svc-1", Name: "Haircut", Price: 500, Quantity: 1}},
		Subtotal:   500, Tax: 90, Total: 590,
	})

	svc := newExportService(repo)
	out, err := svc.ExportOrdersXLSX(context.Background())
	require.NoError(t, err)
	// xlsx files are zip archives
	require.Greater(t, len(out), 4)
	assert.Equal(t, []byte{'P', 'K'}, out[:2])
}

func TestRenderReceiptHTMLShowsGSTBreakdown(t *testing.T) {
	svc := newExportService(newMockOrderRepo())

	order := AggregatedOrder{Order: entity.Order{
		ClientName:  "Asha Rao",
		StylistName: "Bina",
		CreatedAt:   time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC),
		Services:    entity.LineItems{{ServiceID: "svc-1", Name: "Facial", Price: 1000, Quantity: 1}},
		Subtotal:    1000,
		Tax:         153,
		Total:       1153,
		Payments: entity.PaymentList{
			{Amount: 1153, PaymentMethod: enum.PaymentMethodUPI},
		},
	}}

	html, err := svc.RenderReceiptHTML(order, "sales-0042")
	require.NoError(t, err)
	assert.Contains(t, html, "RG Salon")
	assert.Contains(t, html, "sales-0042")
	assert.Contains(t, html, "CGST (9%): ₹76.50")
	assert.Contains(t, html, "SGST (9%): ₹76.50")
	assert.Contains(t, html, "Total: ₹1153.00")
	assert.NotContains(t, html, "Balance due")
}

func TestRenderReceiptHTMLShowsBalanceDue(t *testing.T) {
	svc := newExportService(newMockOrderRepo())

	order := AggregatedOrder{Order: entity.Order{
		ClientName:    "Asha Rao",
		Services:      entity.LineItems{{ServiceID: "svc-1", Name: "Facial", Price: 1000, Quantity: 1}},
		Subtotal:      1000,
		Tax:           153,
		Total:         1153,
		PendingAmount: 653,
		Payments: entity.PaymentList{
			{Amount: 500, PaymentMethod: enum.PaymentMethodUPI},
		},
	}}

	html, err := svc.RenderReceiptHTML(order, "sales-0001")
	require.NoError(t, err)
	assert.Contains(t, html, "Balance due: ₹653.00")
}

func TestRenderReceiptHTMLCorrectsSharedCashSlices(t *testing.T) {
	svc := newExportService(newMockOrderRepo())

	// a dedup-aggregated pair of expert rows: the total covers the full
	// bill but each row only recorded its half of the cash payment
	order := AggregatedOrder{
		Order: entity.Order{
			ClientName: "Asha Rao",
			Subtotal:   1000,
			Tax:        180,
			Total:      1180,
			Payments: entity.PaymentList{
				{Amount: 590, PaymentMethod: enum.PaymentMethodCash},
			},
		},
		AggregatedMultiExpert: true,
		ExpertCount:           2,
	}

	html, err := svc.RenderReceiptHTML(order, "sales-0001")
	require.NoError(t, err)
	assert.Contains(t, html, "₹1180.00")
	assert.NotContains(t, html, "₹590.00")
}
