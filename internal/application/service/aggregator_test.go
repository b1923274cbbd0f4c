package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgsalon/salonpos-api/internal/domain/entity"
	"github.com/rgsalon/salonpos-api/internal/domain/enum"
)

func expertOrder(appointmentID uuid.UUID, stylist string, total float64, multiExpert bool, totalExperts int) entity.Order {
	return entity.Order{
		ID:            uuid.New(),
		AppointmentID: &appointmentID,
		StylistName:   stylist,
		Subtotal:      total,
		Total:         total,
		MultiExpert:   multiExpert,
		TotalExperts:  totalExperts,
		Services: entity.LineItems{
			{ServiceID: "svc-1", Name: "Haircut", Price: total, Quantity: 1, Type: enum.LineItemTypeService},
		},
	}
}

func TestAggregateOrdersSingleOrderPassesThrough(t *testing.T) {
	a := NewAggregatorService()

	order := entity.Order{ID: uuid.New(), Total: 500}
	got := a.AggregateOrders([]entity.Order{order})

	require.Len(t, got, 1)
	assert.False(t, got[0].AggregatedMultiExpert)
	assert.Equal(t, 500.0, got[0].Total)
	assert.Equal(t, 1, got[0].ExpertCount)
}

func TestAggregateOrdersSumsSplitShares(t *testing.T) {
	a := NewAggregatorService()
	apptID := uuid.New()

	// both rows flagged multi-expert with matching expert counts: revenue
	// shares, so totals sum and the shared service price is recovered
	orders := []entity.Order{
		expertOrder(apptID, "Asha", 500, true, 2),
		expertOrder(apptID, "Bina", 500, true, 2),
	}
	got := a.AggregateOrders(orders)

	require.Len(t, got, 1)
	assert.True(t, got[0].AggregatedMultiExpert)
	assert.Equal(t, 1000.0, got[0].Total)
	assert.Equal(t, 2, got[0].ExpertCount)
	assert.Equal(t, "Asha, Bina", got[0].StylistName)

	require.Len(t, got[0].Services, 1)
	// two experts on the one service: its share price multiplies back up
	assert.Equal(t, 1000.0, got[0].Services[0].Price)
	assert.Len(t, got[0].Services[0].Experts, 2)
}

func TestAggregateOrdersSimilarTotalsAreSummed(t *testing.T) {
	a := NewAggregatorService()
	apptID := uuid.New()

	// no flags set but totals within 10% of the max: treated as shares
	orders := []entity.Order{
		expertOrder(apptID, "Asha", 480, false, 1),
		expertOrder(apptID, "Bina", 500, false, 2),
	}
	got := a.AggregateOrders(orders)

	require.Len(t, got, 1)
	assert.Equal(t, 980.0, got[0].Total)
}

func TestAggregateOrdersDeduplicatesFullCopies(t *testing.T) {
	a := NewAggregatorService()
	apptID := uuid.New()

	// dissimilar totals, mismatched expert counts, no flags: the rows are
	// duplicate copies and the max total wins
	first := expertOrder(apptID, "Asha", 1000, false, 1)
	second := expertOrder(apptID, "Bina", 400, false, 2)
	got := a.AggregateOrders([]entity.Order{first, second})

	require.Len(t, got, 1)
	assert.True(t, got[0].AggregatedMultiExpert)
	assert.Equal(t, 1000.0, got[0].Total)
	// display still carries every stylist observed in the group
	assert.Equal(t, "Asha, Bina", got[0].StylistName)
}

func TestAggregateOrdersMergesPaymentsByMethod(t *testing.T) {
	a := NewAggregatorService()
	apptID := uuid.New()

	first := expertOrder(apptID, "Asha", 500, true, 2)
	first.Payments = entity.PaymentList{
		{Amount: 300, PaymentMethod: enum.PaymentMethodCash},
		{Amount: 200, PaymentMethod: enum.PaymentMethodUPI},
	}
	second := expertOrder(apptID, "Bina", 500, true, 2)
	second.Payments = entity.PaymentList{
		{Amount: 500, PaymentMethod: enum.PaymentMethodCash},
	}

	got := a.AggregateOrders([]entity.Order{first, second})

	require.Len(t, got, 1)
	require.Len(t, got[0].Payments, 2)

	byMethod := make(map[enum.PaymentMethod]float64)
	for _, p := range got[0].Payments {
		byMethod[p.PaymentMethod] = p.Amount
	}
	assert.Equal(t, 800.0, byMethod[enum.PaymentMethodCash])
	assert.Equal(t, 200.0, byMethod[enum.PaymentMethodUPI])
}

func TestAggregateOrdersKeepsSeparateAppointmentsApart(t *testing.T) {
	a := NewAggregatorService()

	orders := []entity.Order{
		expertOrder(uuid.New(), "Asha", 500, true, 1),
		expertOrder(uuid.New(), "Bina", 700, true, 1),
	}
	got := a.AggregateOrders(orders)

	assert.Len(t, got, 2)
}

func TestAggregateAppointmentsMergesBookingSiblings(t *testing.T) {
	a := NewAggregatorService()
	bookingID := uuid.New()

	first := entity.Appointment{
		ID:          uuid.New(),
		BookingID:   &bookingID,
		StylistName: "Asha",
		Services: entity.LineItems{
			{ServiceID: "svc-1", Name: "Haircut", Price: 500},
		},
	}
	second := entity.Appointment{
		ID:          uuid.New(),
		BookingID:   &bookingID,
		StylistName: "Bina",
		Services: entity.LineItems{
			{ServiceID: "svc-2", Name: "Colour", Price: 1500},
		},
	}

	got := a.AggregateAppointments([]entity.Appointment{first, second})

	require.Len(t, got, 1)
	assert.Equal(t, "Asha, Bina", got[0].StylistName)
	assert.Len(t, got[0].Services, 2)
}
