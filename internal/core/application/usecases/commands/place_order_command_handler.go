package commands

import (
	"context"
	"errors"

	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/order"
	"bakeshop/internal/core/domain/model/pricing"
	"bakeshop/internal/core/domain/services"
)

// Goods and services tax applied to the subtotal, split evenly between the
// central and state components.
const (
	cgstRate = 0.025
	sgstRate = 0.025
)

// ErrOrderValueOutOfBounds is returned when a home delivery subtotal falls
// outside the configured order value bounds.
var ErrOrderValueOutOfBounds = errors.New("order value is outside the accepted home delivery bounds")

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Prices the cart (subtotal, GST, delivery fee) and creates the order in
// "NEW" status with a pending payment.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, storeLocation, settings)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", placed.ID())
type PlaceOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	storeLocation kernel.GeoPoint
	settings      pricing.DeliverySettings
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, the store
// location and the delivery pricing configuration.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	storeLocation kernel.GeoPoint,
	settings pricing.DeliverySettings,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:    uowFactory,
		storeLocation: storeLocation,
		settings:      settings,
	}
}

// Handle processes the order placement command.
// Computes the charges, enforces the home delivery order value bounds, and
// persists the new order. Returns the placed order on success.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	subtotal := cmd.Subtotal()
	if cmd.Method() == order.HomeDelivery && !h.settings.AllowsOrderValue(subtotal) {
		return nil, ErrOrderValueOutOfBounds
	}

	quote, err := h.quote(cmd)
	if err != nil {
		return nil, err
	}

	charges, err := order.NewCharges(subtotal, subtotal*(cgstRate+sgstRate), quote.Fee)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.Address(),
		cmd.Items(),
		cmd.Method(),
		charges,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

func (h PlaceOrderCommandHandler) quote(cmd PlaceOrderCommand) (services.DeliveryQuote, error) {
	drop := h.storeLocation
	if cmd.DropPoint() != nil {
		drop = *cmd.DropPoint()
	}

	return services.NewFeeCalculator().Quote(h.storeLocation, drop, h.settings, cmd.Method())
}
