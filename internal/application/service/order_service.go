package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	infraRepo "github.com/rgsalon/salonpos-api/internal/infrastructure/repository"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
	"github.com/rgsalon/salonpos-api/pkg/pagination"
)

// OrderSnapshotCache is the read-path fallback store. A nil cache disables
// the fallback.
type OrderSnapshotCache interface {
	StoreOrders(ctx context.Context, orders []entity.Order) error
	LoadOrders(ctx context.Context) ([]entity.Order, bool, error)
}

// membershipNamePatterns flags line items sold as memberships when the tier
// catalogue does not resolve them directly.
var membershipNamePatterns = []string{
	"silver", "gold", "platinum", "diamond",
	"membership", "member", "tier", "package", "subscription", "plan",
}

// OrderService drives the order lifecycle: walk-in sales, appointment
// settlement, incremental payments, edits and deletion, with the membership,
// stock and client-ledger side effects each of those implies.
type OrderService struct {
	orderRepo       repository.OrderRepository
	orderItemRepo   repository.OrderItemRepository
	appointmentRepo repository.AppointmentRepository
	tierRepo        repository.MembershipTierRepository
	memberRepo      repository.MemberRepository
	productRepo     repository.ProductRepository
	profileRepo     repository.ProfileRepository
	clientService   *ClientService
	billing         *BillingService
	cache           OrderSnapshotCache
	log             *logrus.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	appointmentRepo repository.AppointmentRepository,
	tierRepo repository.MembershipTierRepository,
	memberRepo repository.MemberRepository,
	productRepo repository.ProductRepository,
	profileRepo repository.ProfileRepository,
	clientService *ClientService,
	billing *BillingService,
	cache OrderSnapshotCache,
	log *logrus.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		orderItemRepo:   orderItemRepo,
		appointmentRepo: appointmentRepo,
		tierRepo:        tierRepo,
		memberRepo:      memberRepo,
		productRepo:     productRepo,
		profileRepo:     profileRepo,
		clientService:   clientService,
		billing:         billing,
		cache:           cache,
		log:             log,
	}
}

// resolveProfile maps the session's account onto a staff profile. Orders are
// attributed to profiles, never directly to accounts.
func (s *OrderService) resolveProfile(ctx context.Context) (*entity.Profile, error) {
	authUserID, ok := infraRepo.GetAuthUserID(ctx)
	if !ok {
		return nil, apperror.ErrNoSession
	}
	profile, err := s.profileRepo.GetByAuthUserID(ctx, authUserID)
	if err != nil {
		return nil, apperror.NewStoreError("resolving profile", err)
	}
	if profile == nil {
		return nil, apperror.NewProfileNotFoundError()
	}
	return profile, nil
}

// CreateWalkInOrderInput represents a walk-in sale at the counter
type CreateWalkInOrderInput struct {
	CustomerName       string
	ClientID           *uuid.UUID
	Services           []entity.LineItem
	Products           []entity.LineItem
	PaymentMethod      enum.PaymentMethod
	Payments           []entity.PaymentDetail
	Discount           float64
	StylistID          *uuid.UUID
	StylistName        string
	IsSalonConsumption bool
	ConsumptionPurpose string
}

// CreateWalkInOrder creates and prices a walk-in order, persisting the order
// row, its item rows and any membership, stock and client-ledger side
// effects. Tax is added on top of the subtotal at this entry point.
func (s *OrderService) CreateWalkInOrder(ctx context.Context, input *CreateWalkInOrderInput) (*entity.Order, error) {
	profile, err := s.resolveProfile(ctx)
	if err != nil {
		return nil, err
	}

	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationError("Unknown payment method: " + input.PaymentMethod.String())
	}
	if len(input.Services) == 0 && len(input.Products) == 0 {
		return nil, apperror.NewValidationError("Order must contain at least one item")
	}

	lines := make(entity.LineItems, 0, len(input.Services)+len(input.Products))
	for _, li := range input.Services {
		if li.Type == "" {
			li.Type = enum.LineItemTypeService
		}
		lines = append(lines, li)
	}
	for _, li := range input.Products {
		li.Type = enum.LineItemTypeProduct
		lines = append(lines, li)
	}

	var subtotal float64
	for _, li := range lines {
		subtotal += li.Total()
	}
	tax := s.billing.WalkInTax(subtotal)
	total := subtotal + tax - input.Discount

	payments := entity.PaymentList(input.Payments)
	var pending float64
	if len(payments) == 0 && input.PaymentMethod != enum.PaymentMethodBNPL {
		// single up-front payment covering the full amount
		payments = entity.PaymentList{{
			ID:            uuid.New(),
			Amount:        total,
			PaymentMethod: input.PaymentMethod,
			PaymentDate:   time.Now(),
		}}
	} else {
		pending = s.billing.PendingAmount(total, subtotal, payments)
	}

	// bnpl means no money has been received; the order stays pending even
	// when the recorded payments nominally cover the total
	status := enum.OrderStatusCompleted
	if pending > 0 || input.PaymentMethod == enum.PaymentMethodBNPL {
		status = enum.OrderStatusPending
	}

	invoiceNumber, err := s.nextInvoiceNumber(ctx, input.IsSalonConsumption)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:                 uuid.New(),
		UserID:             profile.ID,
		ClientID:           input.ClientID,
		ClientName:         input.CustomerName,
		StylistID:          input.StylistID,
		StylistName:        input.StylistName,
		Services:           lines,
		Subtotal:           subtotal,
		Tax:                tax,
		Discount:           input.Discount,
		Total:              total,
		PaymentMethod:      paymentMethodForList(input.PaymentMethod, payments),
		Payments:           payments,
		PendingAmount:      pending,
		Status:             status,
		IsWalkIn:           true,
		IsSalonConsumption: input.IsSalonConsumption,
		ConsumptionPurpose: input.ConsumptionPurpose,
		TotalExperts:       1,
		ExpertIndex:        1,
		InvoiceNumber:      invoiceNumber,
	}

	if order.HasProducts() {
		s.snapshotStock(ctx, order)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.NewStoreError("creating order", err)
	}
	if err := s.orderItemRepo.CreateBatch(ctx, buildOrderItems(order)); err != nil {
		return nil, apperror.NewStoreError("creating order items", err)
	}

	s.recordMembershipSales(ctx, order, profile.ID)

	if status == enum.OrderStatusCompleted {
		s.decrementStock(ctx, order)
	}

	if !order.IsSalonConsumption {
		if _, err := s.clientService.ApplyOrderToClient(ctx, order.ClientID, order.ClientName, order.Total, input.PaymentMethod, time.Now()); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// paymentMethodForList collapses multiple payment slices into the split
// pseudo-method on the order row.
func paymentMethodForList(method enum.PaymentMethod, payments entity.PaymentList) enum.PaymentMethod {
	if len(payments) > 1 {
		return enum.PaymentMethodSplit
	}
	if len(payments) == 1 {
		return payments[0].PaymentMethod
	}
	return method
}

// nextInvoiceNumber derives the next human-facing sequence number for the
// order's type. Customer and salon-consumption orders number independently.
func (s *OrderService) nextInvoiceNumber(ctx context.Context, salonConsumption bool) (string, error) {
	orders, err := s.orderRepo.ListAllAscending(ctx)
	if err != nil {
		return "", apperror.NewStoreError("deriving invoice number", err)
	}
	count := 0
	for _, o := range orders {
		if o.IsSalonConsumption == salonConsumption {
			count++
		}
	}
	return FormatDisplayID(salonConsumption, count+1), nil
}

// buildOrderItems mirrors the order's service lines into child rows,
// preserving the tax classification fields.
func buildOrderItems(order *entity.Order) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(order.Services))
	for _, li := range order.Services {
		qty := li.Quantity
		if qty <= 0 {
			qty = 1
		}
		item := entity.OrderItem{
			OrderID:       order.ID,
			Name:          li.Name,
			Type:          li.Type,
			Quantity:      qty,
			UnitPrice:     li.Price,
			TotalPrice:    li.Total(),
			GSTPercentage: li.GSTPercentage,
			HSNCode:       li.HSNCode,
		}
		if id, err := uuid.Parse(li.ServiceID); err == nil {
			if li.Type == enum.LineItemTypeProduct {
				item.ProductID = &id
			} else {
				item.ServiceID = &id
			}
		}
		items = append(items, item)
	}
	return items
}

// recordMembershipSales inserts a members row for every line item that
// resolves to a membership tier. Tier resolution failures only skip the
// member record; the sale itself stands.
func (s *OrderService) recordMembershipSales(ctx context.Context, order *entity.Order, profileID uuid.UUID) {
	var tiers []entity.MembershipTier
	tiersLoaded := false

	for _, li := range order.Services {
		if !isMembershipLine(li) {
			continue
		}

		if !tiersLoaded {
			loaded, err := s.tierRepo.List(ctx)
			if err != nil {
				s.log.WithError(err).Warn("could not load membership tiers; skipping member records")
				return
			}
			tiers = loaded
			tiersLoaded = true
		}

		tier := matchTier(tiers, li)
		if tier == nil {
			s.log.WithField("item", li.Name).Warn("membership item has no matching tier; skipping member record")
			continue
		}

		months := tier.DurationMonths
		if li.DurationMonths > 0 {
			months = li.DurationMonths
		}
		if months <= 0 {
			months = 12
		}

		purchaseDate := time.Now()
		member := &entity.Member{
			ClientID:     order.ClientID,
			ClientName:   order.ClientName,
			TierID:       tier.ID,
			UserID:       profileID,
			PurchaseDate: purchaseDate,
			ExpiresAt:    purchaseDate.AddDate(0, months, 0),
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			s.log.WithError(err).WithField("tier", tier.Name).Warn("could not record membership purchase")
		}
	}
}

// isMembershipLine reports whether a line item is a membership sale, by its
// explicit type, by the tier-specific fields it carries, or by its name.
func isMembershipLine(li entity.LineItem) bool {
	if li.Type == enum.LineItemTypeMembership {
		return true
	}
	if li.DurationMonths > 0 || li.BenefitAmount > 0 {
		return true
	}
	name := strings.ToLower(li.Name)
	for _, pattern := range membershipNamePatterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}

func matchTier(tiers []entity.MembershipTier, li entity.LineItem) *entity.MembershipTier {
	name := strings.ToLower(li.Name)
	for i := range tiers {
		tierName := strings.ToLower(tiers[i].Name)
		if tierName == name || strings.Contains(name, tierName) {
			return &tiers[i]
		}
	}
	if id, err := uuid.Parse(li.ServiceID); err == nil {
		for i := range tiers {
			if tiers[i].ID == id {
				return &tiers[i]
			}
		}
	}
	return nil
}

// snapshotStock captures pre-order stock quantities for the order's product
// lines so the later decrement can be audited or reversed. Failures here
// never fail the order.
func (s *OrderService) snapshotStock(ctx context.Context, order *entity.Order) {
	var ids []uuid.UUID
	for _, li := range order.Services {
		if li.Type != enum.LineItemTypeProduct {
			continue
		}
		if id, err := uuid.Parse(li.ServiceID); err == nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.log.WithError(err).Warn("could not snapshot stock before order")
		return
	}

	snapshot := make(map[string]int, len(products))
	for _, p := range products {
		snapshot[p.ID.String()] = p.StockQuantity
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.log.WithError(err).Warn("could not encode stock snapshot")
		return
	}
	order.StockSnapshot = string(payload)
}

// decrementStock applies the stock decrement for every product line. Runs
// only once per order, on completion.
func (s *OrderService) decrementStock(ctx context.Context, order *entity.Order) {
	for _, li := range order.Services {
		if li.Type != enum.LineItemTypeProduct {
			continue
		}
		id, err := uuid.Parse(li.ServiceID)
		if err != nil {
			continue
		}
		qty := li.Quantity
		if qty <= 0 {
			qty = 1
		}
		if err := s.productRepo.DecrementStock(ctx, id, qty); err != nil {
			s.log.WithError(err).WithField("product_id", id).Warn("stock decrement failed")
		}
	}
}

// ProcessAppointmentPaymentInput settles an appointment at the counter
type ProcessAppointmentPaymentInput struct {
	AppointmentID uuid.UUID
	PaymentMethod enum.PaymentMethod
	Payments      []entity.PaymentDetail
	Discount      float64
}

// ProcessAppointmentPayment converts an unpaid appointment into an order.
// The appointment is only marked paid once nothing remains outstanding.
func (s *OrderService) ProcessAppointmentPayment(ctx context.Context, input *ProcessAppointmentPaymentInput) (*entity.Order, error) {
	profile, err := s.resolveProfile(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, input.AppointmentID)
	if err != nil {
		return nil, apperror.NewStoreError("loading appointment", err)
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	if appointment.Paid {
		return nil, apperror.NewConflictError("Appointment is already paid")
	}

	lineTotals := make([]float64, 0, len(appointment.Services))
	for _, li := range appointment.Services {
		lineTotals = append(lineTotals, li.Total())
	}
	totals := s.billing.ComputeTotals(lineTotals, input.Discount, input.PaymentMethod, input.Payments)

	payments := entity.PaymentList(input.Payments)
	if len(payments) == 0 {
		payments = entity.PaymentList{{
			ID:            uuid.New(),
			Amount:        totals.Total,
			PaymentMethod: input.PaymentMethod,
			PaymentDate:   time.Now(),
		}}
	}
	pending := s.billing.PendingAmount(totals.Total, totals.Subtotal, payments)

	status := enum.OrderStatusCompleted
	if pending > 0 {
		status = enum.OrderStatusPending
	}

	invoiceNumber, err := s.nextInvoiceNumber(ctx, false)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        profile.ID,
		ClientID:      appointment.ClientID,
		ClientName:    appointment.ClientName,
		StylistID:     appointment.StylistID,
		StylistName:   appointment.StylistName,
		AppointmentID: &appointment.ID,
		Services:      appointment.Services,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      input.Discount,
		Total:         totals.Total,
		PaymentMethod: paymentMethodForList(input.PaymentMethod, payments),
		Payments:      payments,
		PendingAmount: pending,
		Status:        status,
		TotalExperts:  1,
		ExpertIndex:   1,
		InvoiceNumber: invoiceNumber,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.NewStoreError("creating order from appointment", err)
	}
	if err := s.orderItemRepo.CreateBatch(ctx, buildOrderItems(order)); err != nil {
		return nil, apperror.NewStoreError("creating order items", err)
	}

	if pending == 0 {
		if err := s.appointmentRepo.UpdateFields(ctx, appointment.ID, map[string]interface{}{"paid": true}); err != nil {
			return nil, apperror.NewStoreError("marking appointment paid", err)
		}
	}

	if _, err := s.clientService.ApplyOrderToClient(ctx, order.ClientID, order.ClientName, order.Total, input.PaymentMethod, time.Now()); err != nil {
		return nil, err
	}

	return order, nil
}

// AddOrderPayment appends a payment to a partially-paid order and
// reconciles the pending amount from the full payment list. On the
// pending-to-completed transition the deferred stock decrement runs.
func (s *OrderService) AddOrderPayment(ctx context.Context, orderID uuid.UUID, detail entity.PaymentDetail) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.NewStoreError("loading order", err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewConflictError("Cannot record a payment on a cancelled order")
	}

	if detail.ID == uuid.Nil {
		detail.ID = uuid.New()
	}
	if detail.PaymentDate.IsZero() {
		detail.PaymentDate = time.Now()
	}

	updatedPayments := append(entity.PaymentList{}, order.Payments...)
	updatedPayments = append(updatedPayments, detail)

	pending := s.billing.PendingAmount(order.Total, order.Subtotal, updatedPayments)

	wasIncomplete := order.Status == enum.OrderStatusPending
	nowComplete := pending <= 0

	status := order.Status
	if nowComplete {
		status = enum.OrderStatusCompleted
	}

	fields := map[string]interface{}{
		"payments":       updatedPayments,
		"pending_amount": pending,
		"status":         status,
	}
	if len(updatedPayments) > 1 {
		fields["payment_method"] = enum.PaymentMethodSplit
	}
	if err := s.orderRepo.UpdateFields(ctx, order.ID, fields); err != nil {
		return nil, apperror.NewStoreError("recording order payment", err)
	}

	order.Payments = updatedPayments
	order.PendingAmount = pending
	order.Status = status
	if len(updatedPayments) > 1 {
		order.PaymentMethod = enum.PaymentMethodSplit
	}

	if wasIncomplete && nowComplete {
		s.decrementStock(ctx, order)
		if order.AppointmentID != nil {
			if err := s.appointmentRepo.UpdateFields(ctx, *order.AppointmentID, map[string]interface{}{"paid": true}); err != nil {
				s.log.WithError(err).Warn("could not mark appointment paid after settlement")
			}
		}
	}

	return order, nil
}

// UpdateOrderInput represents an order edit; nil fields are left unchanged
type UpdateOrderInput struct {
	ClientName    *string
	StylistID     *uuid.UUID
	StylistName   *string
	Services      []entity.LineItem
	Subtotal      *float64
	Tax           *float64
	Discount      *float64
	Total         *float64
	PaymentMethod *enum.PaymentMethod
	Status        *enum.OrderStatus
}

// UpdateOrder applies a partial edit to an order. A missing order is
// recreated under the requested id instead of failing, repairing rows that
// went missing from storage. Supplying a new service list replaces every
// item row.
func (s *OrderService) UpdateOrder(ctx context.Context, orderID uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.NewStoreError("loading order", err)
	}

	if order == nil {
		return s.recreateOrder(ctx, orderID, input)
	}

	if input.Status != nil {
		if !order.Status.CanTransitionTo(*input.Status) {
			return nil, apperror.NewConflictError(fmt.Sprintf("Cannot move order from %s to %s", order.Status, *input.Status))
		}
	}

	fields := map[string]interface{}{}
	if input.ClientName != nil {
		fields["client_name"] = *input.ClientName
	}
	if input.StylistID != nil {
		fields["stylist_id"] = *input.StylistID
	}
	if input.StylistName != nil {
		fields["stylist_name"] = *input.StylistName
	}
	if input.Subtotal != nil {
		fields["subtotal"] = *input.Subtotal
	}
	if input.Tax != nil {
		fields["tax"] = *input.Tax
	}
	if input.Discount != nil {
		fields["discount"] = *input.Discount
	}
	if input.Total != nil {
		fields["total"] = *input.Total
	}
	if input.PaymentMethod != nil {
		fields["payment_method"] = *input.PaymentMethod
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Services != nil {
		fields["services"] = entity.LineItems(input.Services)
	}

	if len(fields) > 0 {
		if err := s.orderRepo.UpdateFields(ctx, orderID, fields); err != nil {
			return nil, apperror.NewStoreError("updating order", err)
		}
	}

	if input.Services != nil {
		// full item replacement: delete then reinsert
		if err := s.orderItemRepo.DeleteByOrderID(ctx, orderID); err != nil {
			return nil, apperror.NewStoreError("replacing order items", err)
		}
		order.Services = input.Services
		if err := s.orderItemRepo.CreateBatch(ctx, buildOrderItems(order)); err != nil {
			return nil, apperror.NewStoreError("replacing order items", err)
		}
	}

	return s.orderRepo.GetByID(ctx, orderID)
}

// recreateOrder rebuilds an order under a known id when an edit targets a
// row that no longer exists.
func (s *OrderService) recreateOrder(ctx context.Context, orderID uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	profile, err := s.resolveProfile(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:           orderID,
		UserID:       profile.ID,
		Status:       enum.OrderStatusPending,
		TotalExperts: 1,
		ExpertIndex:  1,
	}
	if input.ClientName != nil {
		order.ClientName = *input.ClientName
	}
	if input.StylistID != nil {
		order.StylistID = input.StylistID
	}
	if input.StylistName != nil {
		order.StylistName = *input.StylistName
	}
	if input.Services != nil {
		order.Services = input.Services
	}
	if input.Subtotal != nil {
		order.Subtotal = *input.Subtotal
	}
	if input.Tax != nil {
		order.Tax = *input.Tax
	}
	if input.Discount != nil {
		order.Discount = *input.Discount
	}
	if input.Total != nil {
		order.Total = *input.Total
	}
	if input.PaymentMethod != nil {
		order.PaymentMethod = *input.PaymentMethod
	}
	if input.Status != nil {
		order.Status = *input.Status
	}

	s.log.WithField("order_id", orderID).Warn("edit targeted a missing order; recreating it")

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.NewStoreError("recreating order", err)
	}
	if len(order.Services) > 0 {
		if err := s.orderItemRepo.CreateBatch(ctx, buildOrderItems(order)); err != nil {
			return nil, apperror.NewStoreError("recreating order items", err)
		}
	}
	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreError("loading order", err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders retrieves orders with pagination and filters. When the store is
// unreachable the last cached snapshot is served instead, so the counter
// keeps working through an outage.
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		if s.cache != nil {
			cached, ok, cacheErr := s.cache.LoadOrders(ctx)
			if cacheErr == nil && ok {
				s.log.WithError(err).Warn("order list read failed; serving cached snapshot")
				return pagination.NewPaginatedResult(cached, pagination.NewPagination(1, len(cached), int64(len(cached)))), nil
			}
		}
		return nil, apperror.NewStoreError("listing orders", err)
	}

	if s.cache != nil {
		if cacheErr := s.cache.StoreOrders(ctx, orders); cacheErr != nil {
			s.log.WithError(cacheErr).Debug("could not refresh order snapshot")
		}
	}

	page, perPage := 1, len(orders)
	if params != nil && params.Pagination != nil {
		page, perPage = params.Pagination.Page, params.Pagination.PerPage
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(page, perPage, total)), nil
}

// DeleteOrder removes an order and its item rows, items first so the child
// rows never orphan. Either step failing aborts the whole operation.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NewStoreError("loading order", err)
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if err := s.orderItemRepo.DeleteByOrderID(ctx, id); err != nil {
		return apperror.NewOrderDeletionError(err)
	}
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return apperror.NewOrderDeletionError(err)
	}

	// display sequence numbers are derived on read, so later orders renumber
	// themselves on the next fetch
	s.log.WithFields(logrus.Fields{
		"order_id": id,
		"invoice":  order.InvoiceNumber,
	}).Info("order deleted")
	return nil
}

// DeleteOrdersInRange bulk-deletes every order created inside the window,
// dependent item rows first. Nil bounds leave that side open.
func (s *OrderService) DeleteOrdersInRange(ctx context.Context, start, end *time.Time) (int64, error) {
	ids, err := s.orderRepo.ListIDsInRange(ctx, start, end)
	if err != nil {
		return 0, apperror.NewStoreError("selecting orders to delete", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := s.orderItemRepo.DeleteByOrderIDs(ctx, ids); err != nil {
		return 0, apperror.NewOrderDeletionError(err)
	}
	count, err := s.orderRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, apperror.NewOrderDeletionError(err)
	}
	return count, nil
}

// DeleteAllOrders removes every order and order item, reporting the count
func (s *OrderService) DeleteAllOrders(ctx context.Context) (int64, error) {
	return s.DeleteOrdersInRange(ctx, nil, nil)
}
