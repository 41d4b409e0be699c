package partner_test

import (
	"testing"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/partner"
	"bakeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPartner(t *testing.T) *partner.DeliveryPartner {
	t.Helper()

	p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi Kumar", "+91-9876500001", 4.5)
	require.NoError(t, err)
	return p
}

func TestNewDeliveryPartner(t *testing.T) {
	t.Run("should onboard offline with no orders", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := partner.NewDeliveryPartner(id, "Ravi Kumar", "+91-9876500001", 4.5)

		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Ravi Kumar", p.Name())
		assert.Equal(t, "+91-9876500001", p.Phone())
		assert.Equal(t, partner.Offline, p.Availability())
		assert.False(t, p.IsOnline())
		assert.Equal(t, 4.5, p.PerformanceScore())
		assert.Empty(t, p.CurrentOrders())
		require.NoError(t, p.Validate())
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		_, err := partner.NewDeliveryPartner(kernel.UUID{}, "", "", 6)

		require.Error(t, err)
		require.ErrorIs(t, err, partner.ErrNameIsRequired)
		require.ErrorIs(t, err, partner.ErrPhoneIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject score outside bounds", func(t *testing.T) {
		for _, score := range []float64{-0.1, 5.1} {
			_, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi", "+91-1", score)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should accept boundary scores", func(t *testing.T) {
		for _, score := range []float64{0, 5} {
			_, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi", "+91-1", score)

			require.NoError(t, err)
		}
	})
}

func TestRestoreDeliveryPartner(t *testing.T) {
	t.Run("should restore full state", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID, err := kernel.OrderIDFromString("ORD-7")
		require.NoError(t, err)

		p, err := partner.RestoreDeliveryPartner(
			id, "Anita Desai", "+91-9876500002", partner.Online, 4.9, []kernel.OrderID{orderID})

		require.NoError(t, err)
		assert.True(t, p.IsOnline())
		assert.Equal(t, 1, p.OrderCount())
		assert.Equal(t, []kernel.OrderID{orderID}, p.CurrentOrders())
	})

	t.Run("should reject invalid availability", func(t *testing.T) {
		_, err := partner.RestoreDeliveryPartner(
			kernel.NewUUID(), "Anita Desai", "+91-9876500002", partner.AvailabilityUnknown, 4.9, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryPartner_ToggleAvailability(t *testing.T) {
	p := mustPartner(t)

	assert.Equal(t, partner.Online, p.ToggleAvailability())
	assert.True(t, p.IsOnline())
	assert.Equal(t, partner.Offline, p.ToggleAvailability())
	assert.False(t, p.IsOnline())
}

func TestDeliveryPartner_TakeOrder(t *testing.T) {
	t.Run("should add order once", func(t *testing.T) {
		p := mustPartner(t)
		orderID := kernel.NewOrderID()

		require.NoError(t, p.TakeOrder(orderID))
		assert.Equal(t, 1, p.OrderCount())

		err := p.TakeOrder(orderID)

		require.Error(t, err)
		assert.Equal(t, partner.ErrOrderAlreadyTaken, err)
		assert.Equal(t, 1, p.OrderCount())
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		p := mustPartner(t)

		require.Error(t, p.TakeOrder(kernel.OrderID{}))
		assert.Zero(t, p.OrderCount())
	})
}

func TestDeliveryPartner_ReleaseOrder(t *testing.T) {
	t.Run("should remove carried order", func(t *testing.T) {
		p := mustPartner(t)
		first, err := kernel.OrderIDFromString("ORD-1")
		require.NoError(t, err)
		second, err := kernel.OrderIDFromString("ORD-2")
		require.NoError(t, err)
		require.NoError(t, p.TakeOrder(first))
		require.NoError(t, p.TakeOrder(second))

		require.NoError(t, p.ReleaseOrder(first))

		assert.Equal(t, []kernel.OrderID{second}, p.CurrentOrders())
	})

	t.Run("should fail for order not carried", func(t *testing.T) {
		p := mustPartner(t)

		err := p.ReleaseOrder(kernel.NewOrderID())

		require.Error(t, err)
		assert.Equal(t, partner.ErrOrderNotCarried, err)
	})
}

func TestDeliveryPartner_CurrentOrders(t *testing.T) {
	t.Run("should return a copy", func(t *testing.T) {
		p := mustPartner(t)
		require.NoError(t, p.TakeOrder(kernel.NewOrderID()))

		orders := p.CurrentOrders()
		orders[0] = kernel.OrderID{}

		require.NoError(t, p.CurrentOrders()[0].Validate())
	})
}

func TestDeliveryPartner_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var p partner.DeliveryPartner

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, partner.ErrPartnerIsNotConstructed, err)
	})

	t.Run("nil should fail validation", func(t *testing.T) {
		var p *partner.DeliveryPartner

		require.Error(t, p.Validate())
	})
}

func TestDeliveryPartner_IsEqual(t *testing.T) {
	p := mustPartner(t)
	other := mustPartner(t)

	assert.True(t, p.IsEqual(p))
	assert.False(t, p.IsEqual(other))
	assert.False(t, p.IsEqual(nil))
}
