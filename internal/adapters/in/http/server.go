// Package http exposes the ordering and dispatch use cases over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"bakeshop/internal/core/application/usecases/commands"
	"bakeshop/internal/core/application/usecases/queries"
	"bakeshop/internal/core/domain/model/kernel"
	"bakeshop/internal/core/domain/model/order"
	"bakeshop/internal/core/domain/model/partner"
	"bakeshop/internal/core/domain/model/pricing"
	"bakeshop/internal/core/domain/services"
	"bakeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the REST endpoints to the command and query handlers.
type Server struct {
	// Command handlers
	placeOrderHandler          commands.PlaceOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	assignPartnerHandler       commands.AssignPartnerCommandHandler
	createPartnerHandler       commands.CreatePartnerCommandHandler
	togglePartnerStatusHandler commands.TogglePartnerStatusCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getAllPartnersHandler queries.GetAllPartnersQueryHandler

	// Quote endpoint dependencies
	feeCalculator    services.FeeCalculator
	storeLocation    kernel.GeoPoint
	deliverySettings pricing.DeliverySettings
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	togglePartnerStatusHandler commands.TogglePartnerStatusCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllPartnersHandler queries.GetAllPartnersQueryHandler,
	storeLocation kernel.GeoPoint,
	deliverySettings pricing.DeliverySettings,
) *Server {
	return &Server{
		placeOrderHandler:          placeOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		assignPartnerHandler:       assignPartnerHandler,
		createPartnerHandler:       createPartnerHandler,
		togglePartnerStatusHandler: togglePartnerStatusHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getAllPartnersHandler:      getAllPartnersHandler,
		feeCalculator:              services.NewFeeCalculator(),
		storeLocation:              storeLocation,
		deliverySettings:           deliverySettings,
	}
}

// RegisterRoutes attaches all API endpoints to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/api/orders", s.GetOrders)
	e.POST("/api/orders", s.PlaceOrder)
	e.PATCH("/api/orders/:id/status", s.ChangeOrderStatus)
	e.POST("/api/orders/:id/assign", s.AssignPartner)

	e.GET("/api/partners", s.GetPartners)
	e.POST("/api/partners", s.CreatePartner)
	e.PATCH("/api/partners/:id/status", s.TogglePartnerStatus)

	e.POST("/api/delivery/quote", s.QuoteDelivery)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/orders - retrieves all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderView, len(orders))
	for i, o := range orders {
		response[i] = orderViewFromReadModel(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/orders - places a new bakery order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	method, err := order.DeliveryMethodFromString(req.Method)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid delivery method: " + req.Method,
		})
	}

	items := make([]order.ItemLine, 0, len(req.Items))
	for _, line := range req.Items {
		item, itemErr := order.NewItemLine(line.ProductID, line.Name, line.UnitPrice, line.Quantity)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid order item: " + itemErr.Error(),
			})
		}
		items = append(items, item)
	}

	var dropPoint *kernel.GeoPoint
	if req.Drop != nil {
		point, pointErr := kernel.NewGeoPoint(req.Drop.Lat, req.Drop.Lng)
		if pointErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid drop point: " + pointErr.Error(),
			})
		}
		dropPoint = &point
	}

	cmd, err := commands.NewPlaceOrderCommand(
		req.CustomerName, req.CustomerPhone, req.Address, items, method, dropPoint)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid order data: " + err.Error(),
		})
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrOrderValueOutOfBounds) {
			return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, orderViewFromDomain(placed))
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid order id",
		})
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid status: " + req.Status,
		})
	}

	var partnerID *kernel.UUID
	if req.PartnerID != "" {
		id, idErr := kernel.UUIDFromString(req.PartnerID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid partner id",
			})
		}
		partnerID = &id
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, partnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid status change: " + err.Error(),
		})
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Message: "Order not found",
			})
		case errors.Is(err, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Message: err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Failed to change order status",
			})
		}
	}

	return ctx.JSON(http.StatusOK, orderViewFromDomain(updated))
}

// AssignPartner handles POST /api/orders/:id/assign - hands an order to a
// delivery partner.
func (s *Server) AssignPartner(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid order id",
		})
	}

	var req AssignPartnerRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid partner id",
		})
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid assignment: " + err.Error(),
		})
	}

	assigned, err := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Message: err.Error(),
			})
		case errors.Is(err, partner.ErrOrderAlreadyTaken),
			errors.Is(err, order.ErrOrderIsClosed),
			errors.Is(err, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Message: err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Failed to assign partner",
			})
		}
	}

	return ctx.JSON(http.StatusOK, orderViewFromDomain(assigned))
}

// GetPartners handles GET /api/partners - retrieves all delivery partners.
func (s *Server) GetPartners(ctx echo.Context) error {
	query := queries.NewGetAllPartnersQuery()

	partners, err := s.getAllPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to retrieve partners",
		})
	}

	response := make([]PartnerView, len(partners))
	for i, p := range partners {
		currentOrders := p.CurrentOrders
		if currentOrders == nil {
			currentOrders = []string{}
		}
		response[i] = PartnerView{
			ID:               p.ID.String(),
			Name:             p.Name,
			Phone:            p.Phone,
			Availability:     p.Availability,
			PerformanceScore: p.PerformanceScore,
			CurrentOrders:    currentOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/partners - registers a delivery partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req CreatePartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreatePartnerCommand(req.Name, req.Phone, req.PerformanceScore)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid partner data: " + err.Error(),
		})
	}

	created, err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsOutOfRange) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid partner data: " + err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to create partner",
		})
	}

	return ctx.JSON(http.StatusCreated, partnerViewFromDomain(created))
}

// TogglePartnerStatus handles PATCH /api/partners/:id/status - flips a
// partner between online and offline.
func (s *Server) TogglePartnerStatus(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid partner id",
		})
	}

	cmd, err := commands.NewTogglePartnerStatusCommand(partnerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid toggle request: " + err.Error(),
		})
	}

	toggled, err := s.togglePartnerStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Message: "Partner not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to toggle partner status",
		})
	}

	return ctx.JSON(http.StatusOK, partnerViewFromDomain(toggled))
}

// QuoteDelivery handles POST /api/delivery/quote - prices a delivery to the
// given drop point without placing an order.
func (s *Server) QuoteDelivery(ctx echo.Context) error {
	var req QuoteDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	method := order.HomeDelivery
	if req.Method != "" {
		parsed, err := order.DeliveryMethodFromString(req.Method)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid delivery method: " + req.Method,
			})
		}
		method = parsed
	}

	drop := s.storeLocation
	if method == order.HomeDelivery {
		point, err := kernel.NewGeoPoint(req.Lat, req.Lng)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid drop point: " + err.Error(),
			})
		}
		drop = point
	}

	quote, err := s.feeCalculator.Quote(s.storeLocation, drop, s.deliverySettings, method)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Failed to quote delivery: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, QuoteDeliveryResponse{
		Fee:      quote.Fee,
		Distance: quote.DistanceKm,
	})
}

// orderViewFromDomain renders an order aggregate as an API payload.
func orderViewFromDomain(o *order.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, line := range o.Items() {
		items = append(items, OrderItemView{
			ProductID: line.ProductID(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
		})
	}

	log := make([]OrderActivityView, 0, len(o.ActivityLog()))
	for _, entry := range o.ActivityLog() {
		log = append(log, OrderActivityView{
			Status:    entry.Status(),
			Timestamp: entry.OccurredAt(),
			Message:   entry.Message(),
		})
	}

	var transactionID, partnerID string
	if id := o.TransactionID(); id != nil {
		transactionID = id.String()
	}
	if id := o.Partner(); id != nil {
		partnerID = id.String()
	}

	return OrderView{
		ID:            o.ID().String(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		Address:       o.Address(),
		Method:        o.Method().String(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		TransactionID: transactionID,
		PartnerID:     partnerID,
		Subtotal:      o.Charges().Subtotal(),
		Tax:           o.Charges().Tax(),
		Shipping:      o.Charges().Shipping(),
		Total:         o.Total(),
		Items:         items,
		ActivityLog:   log,
		CreatedAt:     o.CreatedAt(),
	}
}

// orderViewFromReadModel renders a query read model as an API payload.
func orderViewFromReadModel(o queries.GetAllOrdersQueryResponse) OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, OrderItemView{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	log := make([]OrderActivityView, 0, len(o.ActivityLog))
	for _, entry := range o.ActivityLog {
		log = append(log, OrderActivityView{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Message:   entry.Message,
		})
	}

	var transactionID, partnerID string
	if o.TransactionID != nil {
		transactionID = o.TransactionID.String()
	}
	if o.PartnerID != nil {
		partnerID = o.PartnerID.String()
	}

	return OrderView{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		Method:        o.Method,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		TransactionID: transactionID,
		PartnerID:     partnerID,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Shipping:      o.Shipping,
		Total:         o.Total,
		Items:         items,
		ActivityLog:   log,
		CreatedAt:     o.CreatedAt,
	}
}

// partnerViewFromDomain renders a partner aggregate as an API payload.
func partnerViewFromDomain(p *partner.DeliveryPartner) PartnerView {
	currentOrders := make([]string, 0, p.OrderCount())
	for _, id := range p.CurrentOrders() {
		currentOrders = append(currentOrders, id.String())
	}

	return PartnerView{
		ID:               p.ID().String(),
		Name:             p.Name(),
		Phone:            p.Phone(),
		Availability:     p.Availability().String(),
		PerformanceScore: p.PerformanceScore(),
		CurrentOrders:    currentOrders,
	}
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

// GeoPointRequest is a latitude/longitude pair in a request body.
type GeoPointRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OrderItemRequest is one cart line in a place order request.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/orders.
type PlaceOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Address       string             `json:"address"`
	Items         []OrderItemRequest `json:"items"`
	Method        string             `json:"method"`
	Drop          *GeoPointRequest   `json:"drop,omitempty"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status    string `json:"status"`
	PartnerID string `json:"partnerId,omitempty"`
}

// AssignPartnerRequest is the body of POST /api/orders/:id/assign.
type AssignPartnerRequest struct {
	PartnerID string `json:"partnerId"`
}

// CreatePartnerRequest is the body of POST /api/partners.
type CreatePartnerRequest struct {
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	PerformanceScore float64 `json:"performanceScore"`
}

// QuoteDeliveryRequest is the body of POST /api/delivery/quote.
type QuoteDeliveryRequest struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Method string  `json:"method,omitempty"`
}

// QuoteDeliveryResponse is the payload returned by the quote endpoint.
type QuoteDeliveryResponse struct {
	Fee      float64 `json:"fee"`
	Distance float64 `json:"distance"`
}

// OrderItemView is one cart line in an order payload.
type OrderItemView struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// OrderActivityView is one activity log record in an order payload.
type OrderActivityView struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// OrderView is the full order payload returned by the API.
type OrderView struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone"`
	Address       string              `json:"address,omitempty"`
	Method        string              `json:"method"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	TransactionID string              `json:"transactionId,omitempty"`
	PartnerID     string              `json:"partnerId,omitempty"`
	Subtotal      float64             `json:"subtotal"`
	Tax           float64             `json:"tax"`
	Shipping      float64             `json:"shipping"`
	Total         float64             `json:"total"`
	Items         []OrderItemView     `json:"items"`
	ActivityLog   []OrderActivityView `json:"activityLog"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// PartnerView is the delivery partner payload returned by the API.
type PartnerView struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Availability     string   `json:"availability"`
	PerformanceScore float64  `json:"performanceScore"`
	CurrentOrders    []string `json:"currentOrders"`
}
