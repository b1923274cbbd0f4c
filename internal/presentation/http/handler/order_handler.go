package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rgsalon/salonpos-api/internal/application/service"
	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/dto/request"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/dto/response"
	"github.com/rgsalon/salonpos-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	aggregator   *service.AggregatorService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, aggregator *service.AggregatorService) *OrderHandler {
	return &OrderHandler{orderService: orderService, aggregator: aggregator}
}

func toLineItems(lines []request.OrderLineRequest, itemType enum.LineItemType) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(lines))
	for _, l := range lines {
		qty := l.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, entity.LineItem{
			ServiceID:      l.ServiceID,
			Name:           l.Name,
			Price:          l.Price,
			Quantity:       qty,
			Type:           itemType,
			GSTPercentage:  l.GSTPercentage,
			HSNCode:        l.HSNCode,
			DurationMonths: l.DurationMonths,
			BenefitAmount:  l.BenefitAmount,
		})
	}
	return items
}

func toPayments(payments []request.PaymentRequest) []entity.PaymentDetail {
	details := make([]entity.PaymentDetail, 0, len(payments))
	for _, p := range payments {
		date := time.Now()
		if p.PaymentDate != nil {
			date = *p.PaymentDate
		}
		details = append(details, entity.PaymentDetail{
			ID:            uuid.New(),
			Amount:        p.Amount,
			PaymentMethod: enum.PaymentMethod(p.PaymentMethod),
			PaymentDate:   date,
		})
	}
	return details
}

// Create handles creating a walk-in order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	method := enum.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	order, err := h.orderService.CreateWalkInOrder(c.Request.Context(), &service.CreateWalkInOrderInput{
		CustomerName:       req.CustomerName,
		ClientID:           req.ClientID,
		Services:           toLineItems(req.Services, enum.LineItemTypeService),
		Products:           toLineItems(req.Products, enum.LineItemTypeProduct),
		PaymentMethod:      method,
		Payments:           toPayments(req.Payments),
		Discount:           req.Discount,
		StylistID:          req.StylistID,
		StylistName:        req.StylistName,
		IsSalonConsumption: req.IsSalonConsumption,
		ConsumptionPurpose: req.ConsumptionPurpose,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// List handles listing orders. Sibling rows of a multi-expert appointment
// are collapsed into one entry unless aggregate=false is passed.
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	params := &repository.OrderFilterParams{
		Search:    req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
	}

	if req.Status != "" {
		status := enum.OrderStatus(req.Status)
		params.Status = &status
	}
	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		params.ClientID = &clientID
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}
	if req.SalonConsumption != "" {
		salonConsumption, err := strconv.ParseBool(req.SalonConsumption)
		if err != nil {
			response.BadRequest(c, "Invalid salon_consumption flag")
			return
		}
		params.SalonConsumption = &salonConsumption
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.DefaultQuery("aggregate", "true") == "true" {
		aggregated := h.aggregator.AggregateOrders(result.Items)
		response.OK(c, "Orders retrieved successfully", gin.H{
			"items":      aggregated,
			"pagination": result.Pagination,
		})
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Update handles editing an order
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateOrderInput{
		ClientName:  req.ClientName,
		StylistID:   req.StylistID,
		StylistName: req.StylistName,
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
		Discount:    req.Discount,
		Total:       req.Total,
	}
	if len(req.Services) > 0 {
		input.Services = toLineItems(req.Services, enum.LineItemTypeService)
	}
	if req.PaymentMethod != nil {
		method := enum.PaymentMethod(*req.PaymentMethod)
		if !method.Valid() {
			response.BadRequest(c, "Invalid payment method")
			return
		}
		input.PaymentMethod = &method
	}
	if req.Status != nil {
		status := enum.OrderStatus(*req.Status)
		if !status.Valid() {
			response.BadRequest(c, "Invalid order status")
			return
		}
		input.Status = &status
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// AddPayment handles recording an additional payment against an order
func (h *OrderHandler) AddPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	method := enum.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	detail := entity.PaymentDetail{
		Amount:        req.Amount,
		PaymentMethod: method,
	}
	if req.PaymentDate != nil {
		detail.PaymentDate = *req.PaymentDate
	}

	order, err := h.orderService.AddOrderPayment(c.Request.Context(), id, detail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", order)
}

// PayAppointment handles settling an appointment into an order
func (h *OrderHandler) PayAppointment(c *gin.Context) {
	var req request.AppointmentPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	method := enum.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	order, err := h.orderService.ProcessAppointmentPayment(c.Request.Context(), &service.ProcessAppointmentPaymentInput{
		AppointmentID: req.AppointmentID,
		PaymentMethod: method,
		Payments:      toPayments(req.Payments),
		Discount:      req.Discount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment payment processed successfully", order)
}

// Delete handles deleting a single order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}

// DeleteRange handles bulk order deletion, optionally bounded by dates.
// Admin only.
func (h *OrderHandler) DeleteRange(c *gin.Context) {
	var req request.DeleteOrdersRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	count, err := h.orderService.DeleteOrdersInRange(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders deleted successfully", gin.H{"deleted": count})
}
