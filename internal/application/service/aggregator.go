package service

import (
	"sort"
	"strings"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
)

// AggregatedOrder is one logical order view reconstructed from the sibling
// rows of a multi-expert visit. Single orders pass through unchanged with
// AggregatedMultiExpert false.
type AggregatedOrder struct {
	entity.Order
	AggregatedMultiExpert bool `json:"aggregated_multi_expert"`
	// ExpertCount is the number of sibling rows merged into this view
	ExpertCount int `json:"expert_count"`
}

// AggregatorService merges sibling order rows that share an appointment into
// one logical order. Pure read-side computation, no I/O.
type AggregatorService struct{}

// NewAggregatorService creates a new aggregator service
func NewAggregatorService() *AggregatorService {
	return &AggregatorService{}
}

// AggregateOrders partitions orders by appointment id and collapses each
// multi-expert group into a single view. Orders without an appointment id
// are always their own group.
func (a *AggregatorService) AggregateOrders(orders []entity.Order) []AggregatedOrder {
	groups := make(map[string][]entity.Order)
	var keys []string

	for _, o := range orders {
		key := o.ID.String()
		if o.AppointmentID != nil {
			key = "appt:" + o.AppointmentID.String()
		}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], o)
	}

	result := make([]AggregatedOrder, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		if len(group) == 1 {
			result = append(result, AggregatedOrder{Order: group[0], ExpertCount: 1})
			continue
		}
		result = append(result, a.aggregateGroup(group))
	}
	return result
}

// mergedService accumulates one service line across sibling orders
type mergedService struct {
	item    entity.LineItem
	experts map[string]entity.ExpertShare
}

func (a *AggregatorService) aggregateGroup(group []entity.Order) AggregatedOrder {
	// merge line items by service id, unioning expert names across siblings
	merged := make(map[string]*mergedService)
	var serviceOrder []string
	stylistNames := make(map[string]bool)
	var stylistList []string

	for _, o := range group {
		if o.StylistName != "" && !stylistNames[o.StylistName] {
			stylistNames[o.StylistName] = true
			stylistList = append(stylistList, o.StylistName)
		}
		for _, li := range o.Services {
			ms, ok := merged[li.ServiceID]
			if !ok {
				ms = &mergedService{item: li, experts: make(map[string]entity.ExpertShare)}
				merged[li.ServiceID] = ms
				serviceOrder = append(serviceOrder, li.ServiceID)
			}
			for _, e := range li.Experts {
				ms.experts[e.Name] = e
			}
			if len(li.Experts) == 0 && o.StylistName != "" {
				ms.experts[o.StylistName] = entity.ExpertShare{Name: o.StylistName}
			}
		}
	}

	sumShares := a.sharesAreSplit(group)

	base := group[0]
	if sumShares {
		base = a.sumGroup(group, merged, serviceOrder)
	} else {
		// duplicated full-amount copies: the max total wins
		for _, o := range group[1:] {
			if o.Total > base.Total {
				base = o
			}
		}
		base.Services = mergedLineItems(merged, serviceOrder, 1)
	}

	base.StylistName = strings.Join(stylistList, ", ")
	base.MultiExpert = true
	base.TotalExperts = len(group)

	return AggregatedOrder{
		Order:                 base,
		AggregatedMultiExpert: true,
		ExpertCount:           len(group),
	}
}

// sharesAreSplit decides whether sibling totals are independent revenue
// shares to be summed or duplicate copies of one total. Shares are summed
// when the siblings agree on total_experts, or all carry the multi-expert
// flag, or their totals lie within 10% of the largest.
func (a *AggregatorService) sharesAreSplit(group []entity.Order) bool {
	sameTotalExperts := true
	allMultiExpert := true
	minTotal, maxTotal := group[0].Total, group[0].Total

	for _, o := range group {
		if o.TotalExperts != group[0].TotalExperts {
			sameTotalExperts = false
		}
		if !o.MultiExpert {
			allMultiExpert = false
		}
		if o.Total < minTotal {
			minTotal = o.Total
		}
		if o.Total > maxTotal {
			maxTotal = o.Total
		}
	}

	similarTotals := maxTotal > 0 && (maxTotal-minTotal) < maxTotal*0.1
	return sameTotalExperts || allMultiExpert || similarTotals
}

// sumGroup rebuilds the logical order from split revenue shares: totals are
// summed and each merged service price is multiplied back up by its expert
// count to recover the pre-split price.
func (a *AggregatorService) sumGroup(group []entity.Order, merged map[string]*mergedService, serviceOrder []string) entity.Order {
	base := group[0]

	var subtotal, tax, discount, total, pending float64
	paymentsByMethod := make(map[string]*entity.PaymentDetail)
	var methodOrder []string

	for _, o := range group {
		subtotal += o.Subtotal
		tax += o.Tax
		discount += o.Discount
		total += o.Total
		pending += o.PendingAmount
		for _, p := range o.Payments {
			key := p.PaymentMethod.String()
			if existing, ok := paymentsByMethod[key]; ok {
				existing.Amount += p.Amount
			} else {
				cp := p
				paymentsByMethod[key] = &cp
				methodOrder = append(methodOrder, key)
			}
		}
	}

	base.Subtotal = subtotal
	base.Tax = tax
	base.Discount = discount
	base.Total = total
	base.PendingAmount = pending
	base.Services = mergedLineItems(merged, serviceOrder, len(group))

	payments := make(entity.PaymentList, 0, len(methodOrder))
	for _, key := range methodOrder {
		payments = append(payments, *paymentsByMethod[key])
	}
	base.Payments = payments

	return base
}

// mergedLineItems flattens the merged service map preserving first-seen
// order. priceMultiplier scales each line's price by its expert count when
// the group's shares were split.
func mergedLineItems(merged map[string]*mergedService, serviceOrder []string, priceMultiplier int) entity.LineItems {
	items := make(entity.LineItems, 0, len(serviceOrder))
	for _, id := range serviceOrder {
		ms := merged[id]
		item := ms.item

		experts := make([]entity.ExpertShare, 0, len(ms.experts))
		var names []string
		for name := range ms.experts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			experts = append(experts, ms.experts[name])
		}
		item.Experts = experts

		if priceMultiplier > 1 && len(experts) > 1 {
			item.Price = item.Price * float64(len(experts))
		}
		items = append(items, item)
	}
	return items
}

// AggregateAppointments collapses sibling appointment rows sharing a booking
// id into one logical appointment, merging service lines and stylist names.
func (a *AggregatorService) AggregateAppointments(appointments []entity.Appointment) []entity.Appointment {
	groups := make(map[string][]entity.Appointment)
	var keys []string

	for _, ap := range appointments {
		key := ap.ID.String()
		if ap.BookingID != nil {
			key = "booking:" + ap.BookingID.String()
		}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], ap)
	}

	result := make([]entity.Appointment, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		if len(group) == 1 {
			result = append(result, group[0])
			continue
		}

		base := group[0]
		seenService := make(map[string]bool)
		var services entity.LineItems
		var stylists []string
		seenStylist := make(map[string]bool)

		for _, ap := range group {
			if ap.StylistName != "" && !seenStylist[ap.StylistName] {
				seenStylist[ap.StylistName] = true
				stylists = append(stylists, ap.StylistName)
			}
			for _, li := range ap.Services {
				if seenService[li.ServiceID] {
					continue
				}
				seenService[li.ServiceID] = true
				services = append(services, li)
			}
		}

		base.Services = services
		base.StylistName = strings.Join(stylists, ", ")
		result = append(result, base)
	}
	return result
}
