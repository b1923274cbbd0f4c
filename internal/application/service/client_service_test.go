package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
	"github.com/rgsalon/salonpos-api/pkg/apperror"
	"github.com/rgsalon/salonpos-api/pkg/logger"
)

func newClientService(clientRepo *mockClientRepo, pendingRepo *mockPendingRepo) *ClientService {
	return NewClientService(clientRepo, pendingRepo, newMockOrderRepo(), newMockAppointmentRepo(), logger.Get())
}

func TestCreateClientRejectsDuplicateName(t *testing.T) {
	clientRepo := newMockClientRepo()
	svc := newClientService(clientRepo, &mockPendingRepo{})
	ctx := context.Background()

	_, err := svc.CreateClient(ctx, &CreateClientInput{FullName: "Asha Rao"})
	require.NoError(t, err)

	// same name, different case: still a duplicate, no row inserted
	_, err = svc.CreateClient(ctx, &CreateClientInput{FullName: "asha rao"})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Contains(t, appErr.Message, "name")
	assert.Contains(t, appErr.Message, "Asha Rao")
	assert.Len(t, clientRepo.clients, 1)
}

func TestCreateClientRejectsDuplicatePhoneAndEmail(t *testing.T) {
	clientRepo := newMockClientRepo()
	svc := newClientService(clientRepo, &mockPendingRepo{})
	ctx := context.Background()

	_, err := svc.CreateClient(ctx, &CreateClientInput{FullName: "Asha Rao", Phone: "9876543210", Email: "asha@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateClient(ctx, &CreateClientInput{FullName: "Bina Shah", Phone: "9876543210"})
	require.Error(t, err)
	assert.Contains(t, apperror.GetAppError(err).Message, "phone")

	_, err = svc.CreateClient(ctx, &CreateClientInput{FullName: "Chitra Iyer", Email: "ASHA@example.com"})
	require.Error(t, err)
	assert.Contains(t, apperror.GetAppError(err).Message, "email")
}

func TestApplyOrderToClientBNPLBranch(t *testing.T) {
	clientRepo := newMockClientRepo()
	svc := newClientService(clientRepo, &mockPendingRepo{})
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, &CreateClientInput{FullName: "Asha Rao"})
	require.NoError(t, err)

	date := time.Now()
	updated, err := svc.ApplyOrderToClient(ctx, &created.ID, "", 500, enum.PaymentMethodBNPL, date)
	require.NoError(t, err)

	// BNPL accrues into the pending balance; nothing was received yet
	assert.Equal(t, 500.0, updated.PendingPayment)
	assert.Equal(t, 0.0, updated.TotalSpent)
	assert.Equal(t, 1, updated.AppointmentCount)
	require.NotNil(t, updated.LastVisit)
}

func TestApplyOrderToClientCashBranch(t *testing.T) {
	clientRepo := newMockClientRepo()
	svc := newClientService(clientRepo, &mockPendingRepo{})
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, &CreateClientInput{FullName: "Asha Rao"})
	require.NoError(t, err)

	updated, err := svc.ApplyOrderToClient(ctx, &created.ID, "", 500, enum.PaymentMethodCash, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 500.0, updated.TotalSpent)
	assert.Equal(t, 0.0, updated.PendingPayment)
}

func TestApplyOrderToClientMatchesNameCaseInsensitively(t *testing.T) {
	clientRepo := newMockClientRepo()
	svc := newClientService(clientRepo, &mockPendingRepo{})
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, &CreateClientInput{FullName: "Asha Rao"})
	require.NoError(t, err)

	updated, err := svc.ApplyOrderToClient(ctx, nil, "ASHA RAO", 300, enum.PaymentMethodUPI, time.Now())
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 300.0, updated.TotalSpent)
	assert.Len(t, clientRepo.clients, 1)
}

func TestApplyOrderToClientCreatesMissingClient(t *testing.T) {
	clientRepo := newMockClientRepo()
	svc := newClientService(clientRepo, &mockPendingRepo{})
	ctx := context.Background()

	client, err := svc.ApplyOrderToClient(ctx, nil, "Walk In Customer", 750, enum.PaymentMethodBNPL, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Walk In Customer", client.FullName)
	assert.Equal(t, 750.0, client.PendingPayment)
	assert.Equal(t, 0.0, client.TotalSpent)
	assert.Equal(t, 1, client.AppointmentCount)
	assert.Equal(t, "Created from order", client.Notes)
}

func TestProcessPendingPaymentSettlesBalance(t *testing.T) {
	clientRepo := newMockClientRepo()
	pendingRepo := &mockPendingRepo{}
	svc := newClientService(clientRepo, pendingRepo)
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, &CreateClientInput{FullName: "Asha Rao"})
	require.NoError(t, err)
	_, err = svc.ApplyOrderToClient(ctx, &created.ID, "", 1000, enum.PaymentMethodBNPL, time.Now())
	require.NoError(t, err)

	date := time.Now()
	updated, err := svc.ProcessPendingPayment(ctx, &ProcessPendingPaymentInput{
		ClientID:      created.ID,
		Amount:        400,
		PaymentMethod: enum.PaymentMethodCash,
		PaymentDate:   date,
	})
	require.NoError(t, err)

	// the settled amount moves from pending into total spent
	assert.Equal(t, 600.0, updated.PendingPayment)
	assert.Equal(t, 400.0, updated.TotalSpent)
	require.NotNil(t, updated.PendingPaymentReceivingDate)

	require.Len(t, pendingRepo.records, 1)
	assert.Equal(t, 400.0, pendingRepo.records[0].Amount)
	assert.Equal(t, created.ID, pendingRepo.records[0].ClientID)
}

func TestProcessPendingPaymentRejectsExcessAmount(t *testing.T) {
	clientRepo := newMockClientRepo()
	pendingRepo := &mockPendingRepo{}
	svc := newClientService(clientRepo, pendingRepo)
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, &CreateClientInput{FullName: "Asha Rao"})
	require.NoError(t, err)
	_, err = svc.ApplyOrderToClient(ctx, &created.ID, "", 300, enum.PaymentMethodBNPL, time.Now())
	require.NoError(t, err)

	_, err = svc.ProcessPendingPayment(ctx, &ProcessPendingPaymentInput{
		ClientID:      created.ID,
		Amount:        500,
		PaymentMethod: enum.PaymentMethodCash,
		PaymentDate:   time.Now(),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// nothing mutated, nothing recorded
	after, err := svc.GetClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, after.PendingPayment)
	assert.Equal(t, 0.0, after.TotalSpent)
	assert.Empty(t, pendingRepo.records)
}

func TestDeleteClientDetachesHistory(t *testing.T) {
	clientRepo := newMockClientRepo()
	orderRepo := newMockOrderRepo()
	appointmentRepo := newMockAppointmentRepo()
	svc := NewClientService(clientRepo, &mockPendingRepo{}, orderRepo, appointmentRepo, logger.Get())
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, &CreateClientInput{FullName: "Asha Rao"})
	require.NoError(t, err)

	order := &entity.Order{ClientID: &created.ID, ClientName: created.FullName, Total: 500}
	require.NoError(t, orderRepo.Create(ctx, order))

	require.NoError(t, svc.DeleteClient(ctx, created.ID))

	assert.Empty(t, clientRepo.clients)
	detached, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.ClientID)
}
