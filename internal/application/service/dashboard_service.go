package service

import (
	"context"
	"time"

	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
)

// DashboardService summarises revenue for reporting. Salon-consumption
// orders are internal stock usage and never count as client revenue.
type DashboardService struct {
	orderRepo repository.OrderRepository
	billing   *BillingService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(orderRepo repository.OrderRepository, billing *BillingService) *DashboardService {
	return &DashboardService{orderRepo: orderRepo, billing: billing}
}

// RevenueSummary represents aggregate sales figures for a period
type RevenueSummary struct {
	TotalOrders       int64               `json:"total_orders"`
	CompletedOrders   int64               `json:"completed_orders"`
	PendingOrders     int64               `json:"pending_orders"`
	GrossRevenue      float64             `json:"gross_revenue"`
	TotalTax          float64             `json:"total_tax"`
	CGST              float64             `json:"cgst"`
	SGST              float64             `json:"sgst"`
	TotalDiscount     float64             `json:"total_discount"`
	OutstandingAmount float64             `json:"outstanding_amount"`
	SalonConsumption  float64             `json:"salon_consumption"`
	DailyRevenue      []DailyRevenuePoint `json:"daily_revenue"`
}

// DailyRevenuePoint is one day's revenue
type DailyRevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// Summarize computes the revenue summary for the window. Nil bounds leave
// that side open.
func (s *DashboardService) Summarize(ctx context.Context, start, end *time.Time) (*RevenueSummary, error) {
	orders, err := s.orderRepo.ListAllAscending(ctx)
	if err != nil {
		return nil, apperror.NewStoreError("loading orders for summary", err)
	}

	summary := &RevenueSummary{}
	daily := make(map[string]*DailyRevenuePoint)
	var dayOrder []string

	for _, o := range orders {
		if start != nil && o.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && o.CreatedAt.After(*end) {
			continue
		}
		if o.Status == enum.OrderStatusCancelled {
			continue
		}

		summary.TotalOrders++
		switch o.Status {
		case enum.OrderStatusCompleted:
			summary.CompletedOrders++
		case enum.OrderStatusPending:
			summary.PendingOrders++
		}

		if o.IsSalonConsumption {
			summary.SalonConsumption += o.Total
			continue
		}

		summary.GrossRevenue += o.Total
		summary.TotalTax += o.Tax
		summary.TotalDiscount += o.Discount
		summary.OutstandingAmount += o.PendingAmount

		day := o.CreatedAt.Format("2006-01-02")
		point, ok := daily[day]
		if !ok {
			point = &DailyRevenuePoint{Date: day}
			daily[day] = point
			dayOrder = append(dayOrder, day)
		}
		point.Revenue += o.Total
		point.Orders++
	}

	summary.CGST, summary.SGST = s.billing.SplitGST(summary.TotalTax)

	for _, day := range dayOrder {
		summary.DailyRevenue = append(summary.DailyRevenue, *daily[day])
	}
	return summary, nil
}
