package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
)

// FormatDisplayID renders the human-facing order sequence: "sales-0001" for
// customer orders, "salon-0001" for salon-consumption orders.
func FormatDisplayID(salonConsumption bool, seq int) string {
	if salonConsumption {
		return fmt.Sprintf("salon-%04d", seq)
	}
	return fmt.Sprintf("sales-%04d", seq)
}

// DeriveDisplayIDs assigns every order its display sequence number: the
// count of same-type orders at-or-before it when all orders are sorted
// ascending by creation time. Customer and salon sequences run
// independently. Deleting an order therefore renumbers everything after it
// on the next derivation; nothing is persisted.
func DeriveDisplayIDs(orders []entity.Order) map[uuid.UUID]string {
	sorted := append([]entity.Order{}, orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	ids := make(map[uuid.UUID]string, len(sorted))
	salesSeq, salonSeq := 0, 0
	for _, o := range sorted {
		if o.IsSalonConsumption {
			salonSeq++
			ids[o.ID] = FormatDisplayID(true, salonSeq)
		} else {
			salesSeq++
			ids[o.ID] = FormatDisplayID(false, salesSeq)
		}
	}
	return ids
}

// ExportService renders orders for export and printing: CSV and XLSX lists
// with derived display ids, and the receipt HTML handed to the printer.
type ExportService struct {
	orderRepo  repository.OrderRepository
	aggregator *AggregatorService
	billing    *BillingService
}

// NewExportService creates a new export service
func NewExportService(orderRepo repository.OrderRepository, aggregator *AggregatorService, billing *BillingService) *ExportService {
	return &ExportService{
		orderRepo:  orderRepo,
		aggregator: aggregator,
		billing:    billing,
	}
}

// DisplayIDFor derives one order's current display id
func (s *ExportService) DisplayIDFor(ctx context.Context, orderID uuid.UUID) (string, error) {
	orders, err := s.orderRepo.ListAllAscending(ctx)
	if err != nil {
		return "", apperror.NewStoreError("deriving display id", err)
	}
	ids := DeriveDisplayIDs(orders)
	id, ok := ids[orderID]
	if !ok {
		return "", apperror.NewNotFoundError("Order")
	}
	return id, nil
}

// ReceiptForOrder loads an order together with its multi-expert siblings
// and renders the printable receipt for the whole visit.
func (s *ExportService) ReceiptForOrder(ctx context.Context, orderID uuid.UUID) (string, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return "", apperror.NewStoreError("loading order for receipt", err)
	}
	if order == nil {
		return "", apperror.NewNotFoundError("Order")
	}

	group := []entity.Order{*order}
	if order.AppointmentID != nil {
		siblings, err := s.orderRepo.ListByAppointmentID(ctx, *order.AppointmentID)
		if err != nil {
			return "", apperror.NewStoreError("loading sibling orders for receipt", err)
		}
		if len(siblings) > 1 {
			group = siblings
		}
	}

	aggregated := s.aggregator.AggregateOrders(group)
	if len(aggregated) == 0 {
		return "", apperror.NewNotFoundError("Order")
	}

	displayID, err := s.DisplayIDFor(ctx, aggregated[0].ID)
	if err != nil {
		displayID = aggregated[0].InvoiceNumber
	}
	return s.RenderReceiptHTML(aggregated[0], displayID)
}

var csvHeader = []string{
	"Order ID", "Date", "Client", "Stylist", "Items",
	"Subtotal", "CGST", "SGST", "Discount", "Total", "Pending", "Payment Method", "Status",
}

// ExportOrdersCSV renders every order as CSV, multi-expert groups collapsed
// to one row. Currency amounts are integer-rounded.
func (s *ExportService) ExportOrdersCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.exportRows(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.DisplayID,
			r.Date.Format("2006-01-02"),
			r.ClientName,
			r.StylistName,
			fmt.Sprintf("%d", r.ItemCount),
			fmt.Sprintf("%d", roundRupees(r.Subtotal)),
			fmt.Sprintf("%d", roundRupees(r.CGST)),
			fmt.Sprintf("%d", roundRupees(r.SGST)),
			fmt.Sprintf("%d", roundRupees(r.Discount)),
			fmt.Sprintf("%d", roundRupees(r.Total)),
			fmt.Sprintf("%d", roundRupees(r.Pending)),
			r.PaymentMethod,
			r.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportOrdersXLSX renders the same rows as an Excel workbook
func (s *ExportService) ExportOrdersXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.exportRows(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Orders"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, h := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.DisplayID,
			r.Date.Format("2006-01-02"),
			r.ClientName,
			r.StylistName,
			r.ItemCount,
			roundRupees(r.Subtotal),
			roundRupees(r.CGST),
			roundRupees(r.SGST),
			roundRupees(r.Discount),
			roundRupees(r.Total),
			roundRupees(r.Pending),
			r.PaymentMethod,
			r.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportRow is one flattened order line ready for CSV/XLSX rendering
type exportRow struct {
	DisplayID     string
	Date          time.Time
	ClientName    string
	StylistName   string
	ItemCount     int
	Subtotal      float64
	CGST          float64
	SGST          float64
	Discount      float64
	Total         float64
	Pending       float64
	PaymentMethod string
	Status        string
}

func (s *ExportService) exportRows(ctx context.Context) ([]exportRow, error) {
	orders, err := s.orderRepo.ListAllAscending(ctx)
	if err != nil {
		return nil, apperror.NewStoreError("loading orders for export", err)
	}

	displayIDs := DeriveDisplayIDs(orders)
	aggregated := s.aggregator.AggregateOrders(orders)

	rows := make([]exportRow, 0, len(aggregated))
	for _, a := range aggregated {
		cgst, sgst := s.billing.SplitGST(a.Tax)
		rows = append(rows, exportRow{
			DisplayID:     displayIDs[a.ID],
			Date:          a.CreatedAt,
			ClientName:    a.ClientName,
			StylistName:   a.StylistName,
			ItemCount:     len(a.Services),
			Subtotal:      a.Subtotal,
			CGST:          cgst,
			SGST:          sgst,
			Discount:      a.Discount,
			Total:         a.Total,
			Pending:       a.PendingAmount,
			PaymentMethod: a.PaymentMethod.String(),
			Status:        a.Status.String(),
		})
	}
	return rows, nil
}

func roundRupees(v float64) int64 {
	return int64(math.Round(v))
}

// receiptLine is one printed line item
type receiptLine struct {
	Name     string
	Quantity int
	Amount   string
}

// receiptPayment is one printed payment slice
type receiptPayment struct {
	Method string
	Amount string
}

// receiptData feeds the receipt template
type receiptData struct {
	InvoiceNumber string
	Date          string
	ClientName    string
	StylistName   string
	Lines         []receiptLine
	Subtotal      string
	CGST          string
	SGST          string
	Discount      string
	HasDiscount   bool
	Total         string
	Pending       string
	HasPending    bool
	Payments      []receiptPayment
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Receipt {{.InvoiceNumber}}</title></head>
<body>
<div class="receipt">
  <h2>RG Salon</h2>
  <p>Invoice: {{.InvoiceNumber}}<br>Date: {{.Date}}</p>
  <p>Client: {{.ClientName}}{{if .StylistName}}<br>Stylist: {{.StylistName}}{{end}}</p>
  <table>
    {{range .Lines}}<tr><td>{{.Name}} x{{.Quantity}}</td><td>{{.Amount}}</td></tr>
    {{end}}
  </table>
  <p>Subtotal: {{.Subtotal}}<br>
  CGST (9%): {{.CGST}}<br>
  SGST (9%): {{.SGST}}{{if .HasDiscount}}<br>
  Discount: {{.Discount}}{{end}}</p>
  <h3>Total: {{.Total}}</h3>
  {{if .Payments}}<p>{{range .Payments}}{{.Method}}: {{.Amount}}<br>{{end}}</p>{{end}}
  {{if .HasPending}}<p>Balance due: {{.Pending}}</p>{{end}}
</div>
</body>
</html>
`))

// rupees formats an amount for the receipt: two decimals with the currency
// prefix.
func rupees(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// RenderReceiptHTML renders the printable bill for one (possibly
// multi-expert aggregated) order. For aggregated orders each sibling row
// recorded only its slice of a shared cash payment, so cash slices are
// multiplied back up by the expert count to show what actually changed
// hands.
func (s *ExportService) RenderReceiptHTML(order AggregatedOrder, displayID string) (string, error) {
	cgst, sgst := s.billing.SplitGST(order.Tax)

	data := receiptData{
		InvoiceNumber: displayID,
		Date:          order.CreatedAt.Format("02 Jan 2006 15:04"),
		ClientName:    order.ClientName,
		StylistName:   order.StylistName,
		Subtotal:      rupees(order.Subtotal),
		CGST:          rupees(cgst),
		SGST:          rupees(sgst),
		Discount:      rupees(order.Discount),
		HasDiscount:   order.Discount > 0,
		Total:         rupees(order.Total),
		Pending:       rupees(order.PendingAmount),
		HasPending:    order.PendingAmount > 0,
	}
	if data.InvoiceNumber == "" {
		data.InvoiceNumber = order.InvoiceNumber
	}

	for _, li := range order.Services {
		qty := li.Quantity
		if qty <= 0 {
			qty = 1
		}
		data.Lines = append(data.Lines, receiptLine{
			Name:     li.Name,
			Quantity: qty,
			Amount:   rupees(li.Total()),
		})
	}

	for _, p := range order.Payments {
		amount := p.Amount
		if order.AggregatedMultiExpert && p.PaymentMethod == enum.PaymentMethodCash && order.ExpertCount > 1 && !paymentsWereSummed(order) {
			amount = amount * float64(order.ExpertCount)
		}
		data.Payments = append(data.Payments, receiptPayment{
			Method: p.PaymentMethod.String(),
			Amount: rupees(amount),
		})
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// paymentsWereSummed reports whether the aggregation already merged sibling
// payment slices into full amounts, in which case no cash correction is
// needed.
func paymentsWereSummed(order AggregatedOrder) bool {
	var paid float64
	for _, p := range order.Payments {
		paid += p.Amount
	}
	// summed-share aggregation leaves payments covering the summed total
	return paid >= order.Total-order.PendingAmount-1
}
