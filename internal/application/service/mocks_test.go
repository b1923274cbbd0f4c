package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/pagination"
)

// ============================================================================
// MOCK REPOSITORIES
// ============================================================================

type mockClientRepo struct {
	clients map[uuid.UUID]*entity.Client

	createErr error
	getErr    error
	listErr   error
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (m *mockClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if m.createErr != nil {
		return m.createErr
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	cp := *client
	m.clients[client.ID] = &cp
	return nil
}

func (m *mockClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	c, ok := m.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *mockClientRepo) FindByName(ctx context.Context, fullName string) (*entity.Client, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, c := range m.clients {
		if strings.EqualFold(c.FullName, fullName) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockClientRepo) FindConflict(ctx context.Context, fullName, phone, email string) (*entity.Client, string, error) {
	for _, c := range m.clients {
		if strings.EqualFold(c.FullName, fullName) {
			cp := *c
			return &cp, "name", nil
		}
	}
	for _, c := range m.clients {
		if phone != "" && c.Phone == phone {
			cp := *c
			return &cp, "phone", nil
		}
	}
	for _, c := range m.clients {
		if email != "" && strings.EqualFold(c.Email, email) {
			cp := *c
			return &cp, "email", nil
		}
	}
	return nil, "", nil
}

func (m *mockClientRepo) Update(ctx context.Context, client *entity.Client) error {
	cp := *client
	m.clients[client.ID] = &cp
	return nil
}

func (m *mockClientRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	c, ok := m.clients[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "full_name":
			c.FullName = v.(string)
		case "phone":
			c.Phone = v.(string)
		case "email":
			c.Email = v.(string)
		case "gender":
			c.Gender = v.(string)
		case "notes":
			c.Notes = v.(string)
		case "total_spent":
			c.TotalSpent = v.(float64)
		case "pending_payment":
			c.PendingPayment = v.(float64)
		case "appointment_count":
			c.AppointmentCount = v.(int)
		case "last_visit":
			t := v.(time.Time)
			c.LastVisit = &t
		case "pending_payment_receiving_date":
			t := v.(time.Time)
			c.PendingPaymentReceivingDate = &t
		case "birth_date":
			t := v.(time.Time)
			c.BirthDate = &t
		}
	}
	return nil
}

func (m *mockClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.clients, id)
	return nil
}

func (m *mockClientRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var out []entity.Client
	for _, c := range m.clients {
		if search == "" || strings.Contains(strings.ToLower(c.FullName), strings.ToLower(search)) {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockClientRepo) ListWithDuePending(ctx context.Context, asOf time.Time) ([]entity.Client, error) {
	var out []entity.Client
	for _, c := range m.clients {
		if c.PendingPayment > 0 && c.PendingPaymentReceivingDate != nil && !c.PendingPaymentReceivingDate.After(asOf) {
			out = append(out, *c)
		}
	}
	return out, nil
}

type mockPendingRepo struct {
	records   []entity.PendingPayment
	createErr error
}

func (m *mockPendingRepo) Create(ctx context.Context, payment *entity.PendingPayment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	m.records = append(m.records, *payment)
	return nil
}

func (m *mockPendingRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.PendingPayment, error) {
	var out []entity.PendingPayment
	for _, r := range m.records {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	seq    int

	createErr error
	getErr    error
	listErr   error
	deleteErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		m.seq++
		order.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	}
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *mockOrderRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	o, ok := m.orders[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "client_name":
			o.ClientName = v.(string)
		case "stylist_name":
			o.StylistName = v.(string)
		case "subtotal":
			o.Subtotal = v.(float64)
		case "tax":
			o.Tax = v.(float64)
		case "discount":
			o.Discount = v.(float64)
		case "total":
			o.Total = v.(float64)
		case "pending_amount":
			o.PendingAmount = v.(float64)
		case "payments":
			o.Payments = v.(entity.PaymentList)
		case "services":
			o.Services = v.(entity.LineItems)
		case "status":
			o.Status = v.(enum.OrderStatus)
		case "payment_method":
			o.PaymentMethod = v.(enum.PaymentMethod)
		}
	}
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	var count int64
	for _, id := range ids {
		if _, ok := m.orders[id]; ok {
			delete(m.orders, id)
			count++
		}
	}
	return count, nil
}

func (m *mockOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	orders, _ := m.ListAllAscending(ctx)
	return orders, int64(len(orders)), nil
}

func (m *mockOrderRepo) ListAllAscending(ctx context.Context) ([]entity.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []entity.Order
	for _, o := range m.orders {
		out = append(out, *o)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.Before(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListByAppointmentID(ctx context.Context, appointmentID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range m.orders {
		if o.AppointmentID != nil && *o.AppointmentID == appointmentID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListIDsInRange(ctx context.Context, start, end *time.Time) ([]uuid.UUID, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []uuid.UUID
	for _, o := range m.orders {
		if start != nil && o.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && o.CreatedAt.After(*end) {
			continue
		}
		out = append(out, o.ID)
	}
	return out, nil
}

func (m *mockOrderRepo) ListUnsettled(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range m.orders {
		if o.PendingAmount > 0 {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) DetachClient(ctx context.Context, clientID uuid.UUID) error {
	for _, o := range m.orders {
		if o.ClientID != nil && *o.ClientID == clientID {
			o.ClientID = nil
		}
	}
	return nil
}

type mockOrderItemRepo struct {
	items map[uuid.UUID][]entity.OrderItem

	createErr error
	deleteErr error
}

func newMockOrderItemRepo() *mockOrderItemRepo {
	return &mockOrderItemRepo{items: make(map[uuid.UUID][]entity.OrderItem)}
}

func (m *mockOrderItemRepo) CreateBatch(ctx context.Context, items []entity.OrderItem) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, it := range items {
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		m.items[it.OrderID] = append(m.items[it.OrderID], it)
	}
	return nil
}

func (m *mockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	return m.items[orderID], nil
}

func (m *mockOrderItemRepo) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.items, orderID)
	return nil
}

func (m *mockOrderItemRepo) DeleteByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for _, id := range orderIDs {
		delete(m.items, id)
	}
	return nil
}

type mockAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	cp := *appointment
	m.appointments[appointment.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	cp := *appointment
	m.appointments[appointment.ID] = &cp
	return nil
}

func (m *mockAppointmentRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	a, ok := m.appointments[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "paid":
			a.Paid = v.(bool)
		case "status":
			a.Status = v.(string)
		case "notes":
			a.Notes = v.(string)
		case "start_time":
			a.StartTime = v.(time.Time)
		case "end_time":
			a.EndTime = v.(time.Time)
		case "services":
			a.Services = v.(entity.LineItems)
		}
	}
	return nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.appointments, id)
	return nil
}

func (m *mockAppointmentRepo) List(ctx context.Context, start, end *time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range m.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAppointmentRepo) ListByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range m.appointments {
		if a.BookingID != nil && *a.BookingID == bookingID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) DetachClient(ctx context.Context, clientID uuid.UUID) error {
	for _, a := range m.appointments {
		if a.ClientID != nil && *a.ClientID == clientID {
			a.ClientID = nil
		}
	}
	return nil
}

type mockTierRepo struct {
	tiers   []entity.MembershipTier
	listErr error
}

func (m *mockTierRepo) Create(ctx context.Context, tier *entity.MembershipTier) error {
	if tier.ID == uuid.Nil {
		tier.ID = uuid.New()
	}
	m.tiers = append(m.tiers, *tier)
	return nil
}

func (m *mockTierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MembershipTier, error) {
	for i := range m.tiers {
		if m.tiers[i].ID == id {
			cp := m.tiers[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockTierRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MembershipTier, error) {
	var out []entity.MembershipTier
	for _, id := range ids {
		for i := range m.tiers {
			if m.tiers[i].ID == id {
				out = append(out, m.tiers[i])
			}
		}
	}
	return out, nil
}

func (m *mockTierRepo) List(ctx context.Context) ([]entity.MembershipTier, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]entity.MembershipTier{}, m.tiers...), nil
}

type mockMemberRepo struct {
	members   []entity.Member
	createErr error
}

func (m *mockMemberRepo) Create(ctx context.Context, member *entity.Member) error {
	if m.createErr != nil {
		return m.createErr
	}
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	m.members = append(m.members, *member)
	return nil
}

func (m *mockMemberRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Member, error) {
	var out []entity.Member
	for _, mem := range m.members {
		if mem.ClientID != nil && *mem.ClientID == clientID {
			out = append(out, mem)
		}
	}
	return out, nil
}

type mockProductRepo struct {
	products map[uuid.UUID]*entity.Product

	getErr       error
	decrementErr error

	decrements map[uuid.UUID]int
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products:   make(map[uuid.UUID]*entity.Product),
		decrements: make(map[uuid.UUID]int),
	}
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	cp := *product
	m.products[product.ID] = &cp
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var out []entity.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	if m.decrementErr != nil {
		return m.decrementErr
	}
	p, ok := m.products[productID]
	if ok {
		p.StockQuantity -= quantity
	}
	m.decrements[productID] += quantity
	return nil
}

type mockProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	cp := *profile
	m.profiles[profile.AuthUserID] = &cp
	return nil
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	for _, p := range m.profiles {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockProfileRepo) GetByAuthUserID(ctx context.Context, authUserID uuid.UUID) (*entity.Profile, error) {
	p, ok := m.profiles[authUserID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type mockSnapshotCache struct {
	orders []entity.Order
	stored bool

	loadErr  error
	storeErr error
}

func (m *mockSnapshotCache) StoreOrders(ctx context.Context, orders []entity.Order) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.orders = append([]entity.Order{}, orders...)
	m.stored = true
	return nil
}

func (m *mockSnapshotCache) LoadOrders(ctx context.Context) ([]entity.Order, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	if !m.stored {
		return nil, false, nil
	}
	return append([]entity.Order{}, m.orders...), true, nil
}
