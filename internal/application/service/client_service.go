package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"github.com/rgsalon/salonpos-api/internal/domain/repository"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
	"github.com/rgsalon/salonpos-api/pkg/pagination"
)

// ClientService maintains the client roster and the per-client financial
// ledger (total spent, pending BNPL balance, visit history).
type ClientService struct {
	clientRepo      repository.ClientRepository
	pendingRepo     repository.PendingPaymentRepository
	orderRepo       repository.OrderRepository
	appointmentRepo repository.AppointmentRepository
	log             *logrus.Logger
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo repository.ClientRepository,
	pendingRepo repository.PendingPaymentRepository,
	orderRepo repository.OrderRepository,
	appointmentRepo repository.AppointmentRepository,
	log *logrus.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:      clientRepo,
		pendingRepo:     pendingRepo,
		orderRepo:       orderRepo,
		appointmentRepo: appointmentRepo,
		log:             log,
	}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	FullName  string
	Phone     string
	Email     string
	Gender    string
	BirthDate *time.Time
	Notes     string
}

// CreateClient creates a new client. Name, phone and email must each be
// unique across the roster; name and email compare case-insensitively.
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if input.FullName == "" {
		return nil, apperror.NewValidationError("Client name is required")
	}

	existing, field, err := s.clientRepo.FindConflict(ctx, input.FullName, input.Phone, input.Email)
	if err != nil {
		return nil, apperror.NewStoreError("checking client uniqueness", err)
	}
	if existing != nil {
		return nil, apperror.NewDuplicateClientError(field, existing.FullName)
	}

	client := &entity.Client{
		FullName:  input.FullName,
		Phone:     input.Phone,
		Email:     input.Email,
		Gender:    input.Gender,
		BirthDate: input.BirthDate,
		Notes:     input.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperror.NewStoreError("creating client", err)
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients retrieves clients with pagination and optional search
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(clients, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateClientInput represents the update client input; nil fields are left
// unchanged.
type UpdateClientInput struct {
	FullName  *string
	Phone     *string
	Email     *string
	Gender    *string
	BirthDate *time.Time
	Notes     *string
}

// UpdateClient applies a partial update to a client
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.FullName != nil {
		fields["full_name"] = *input.FullName
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Gender != nil {
		fields["gender"] = *input.Gender
	}
	if input.BirthDate != nil {
		fields["birth_date"] = *input.BirthDate
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if len(fields) == 0 {
		return client, nil
	}

	if err := s.clientRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, apperror.NewStoreError("updating client", err)
	}
	return s.GetClient(ctx, id)
}

// DeleteClient removes a client, first detaching their orders and
// appointments so history survives the deletion.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}

	if err := s.orderRepo.DetachClient(ctx, id); err != nil {
		return apperror.NewStoreError("detaching client orders", err)
	}
	if err := s.appointmentRepo.DetachClient(ctx, id); err != nil {
		return apperror.NewStoreError("detaching client appointments", err)
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return apperror.NewStoreError("deleting client", err)
	}
	return nil
}

// ApplyOrderToClient updates the client ledger after a sale. BNPL amounts
// accrue into the pending balance and only move to total spent when settled;
// every other method counts as money received. Unknown client names get a
// fresh ledger row rather than failing the sale.
func (s *ClientService) ApplyOrderToClient(ctx context.Context, clientID *uuid.UUID, clientName string, amount float64, method enum.PaymentMethod, date time.Time) (*entity.Client, error) {
	var client *entity.Client
	var err error

	if clientID != nil {
		client, err = s.clientRepo.GetByID(ctx, *clientID)
	} else if clientName != "" {
		client, err = s.clientRepo.FindByName(ctx, clientName)
	}
	if err != nil {
		return nil, apperror.NewStoreError("looking up client for ledger update", err)
	}

	if client == nil {
		if clientName == "" {
			return nil, apperror.NewValidationError("Client name is required for ledger update")
		}
		client = &entity.Client{
			FullName:         clientName,
			LastVisit:        &date,
			AppointmentCount: 1,
			Notes:            "Created from order",
		}
		if method == enum.PaymentMethodBNPL {
			client.PendingPayment = amount
		} else {
			client.TotalSpent = amount
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return nil, apperror.NewStoreError("creating client from order", err)
		}
		return client, nil
	}

	fields := map[string]interface{}{
		"last_visit":        date,
		"appointment_count": client.AppointmentCount + 1,
	}
	if method == enum.PaymentMethodBNPL {
		fields["pending_payment"] = client.PendingPayment + amount
	} else {
		fields["total_spent"] = client.TotalSpent + amount
	}

	if err := s.clientRepo.UpdateFields(ctx, client.ID, fields); err != nil {
		return nil, apperror.NewStoreError("updating client ledger", err)
	}
	return s.clientRepo.GetByID(ctx, client.ID)
}

// ProcessPendingPaymentInput represents a BNPL settlement
type ProcessPendingPaymentInput struct {
	ClientID      uuid.UUID
	Amount        float64
	PaymentMethod enum.PaymentMethod
	PaymentDate   time.Time
	Note          string
}

// ProcessPendingPayment settles part or all of a client's BNPL balance. The
// settled amount moves from pending into total spent and the settlement is
// recorded in the payment history trail.
func (s *ClientService) ProcessPendingPayment(ctx context.Context, input *ProcessPendingPaymentInput) (*entity.Client, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewValidationError("Payment amount must be positive")
	}

	client, err := s.GetClient(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	if input.Amount > client.PendingPayment {
		return nil, apperror.NewExcessPaymentError(input.Amount, client.PendingPayment)
	}

	history := &entity.PendingPayment{
		ClientID:      client.ID,
		ClientName:    client.FullName,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod.String(),
		PaymentDate:   input.PaymentDate,
		Note:          input.Note,
	}
	if err := s.pendingRepo.Create(ctx, history); err != nil {
		return nil, apperror.NewStoreError("recording pending payment", err)
	}

	fields := map[string]interface{}{
		"pending_payment":                client.PendingPayment - input.Amount,
		"total_spent":                    client.TotalSpent + input.Amount,
		"pending_payment_receiving_date": input.PaymentDate,
	}
	if err := s.clientRepo.UpdateFields(ctx, client.ID, fields); err != nil {
		return nil, apperror.NewStoreError("settling pending payment", err)
	}

	s.log.WithFields(logrus.Fields{
		"client_id": client.ID,
		"amount":    input.Amount,
	}).Info("pending payment settled")

	return s.clientRepo.GetByID(ctx, client.ID)
}

// ListPendingPayments returns a client's BNPL settlement history
func (s *ClientService) ListPendingPayments(ctx context.Context, clientID uuid.UUID) ([]entity.PendingPayment, error) {
	return s.pendingRepo.ListByClient(ctx, clientID)
}
