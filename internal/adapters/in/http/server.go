// Package http exposes the restaurant engine over a JSON API built on
// echo. It coordinates between HTTP handlers and application use cases:
// request bodies are bound into commands and queries, domain errors are
// mapped to status codes, read models pass through as JSON.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
)

// Server handles HTTP requests for the restaurant engine.
type Server struct {
	// Command handlers
	registerClientHandler  commands.RegisterClientCommandHandler
	placeOrderHandler      commands.PlaceOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	addOrderNoteHandler    commands.AddOrderNoteCommandHandler
	removeOrderNoteHandler commands.RemoveOrderNoteCommandHandler
	sendToKitchenHandler   commands.SendToKitchenCommandHandler
	advanceKitchenHandler  commands.AdvanceKitchenStateCommandHandler
	markDeliveredHandler   commands.MarkDeliveredCommandHandler
	annotateDelayHandler   commands.AnnotateDelayCommandHandler
	raiseRequestHandler    commands.RaiseRequestCommandHandler
	resolveRequestHandler  commands.ResolveRequestCommandHandler
	settleHandler          commands.SettleCommandHandler

	// Query handlers
	getTableHandler        queries.GetTableQueryHandler
	getTableByTokenHandler queries.GetTableByTokenQueryHandler
	listTablesHandler      queries.ListTablesQueryHandler
	kitchenQueueHandler    queries.GetKitchenQueueQueryHandler
	readyToServeHandler    queries.GetReadyToServeQueryHandler
	pendingRequestsHandler queries.GetPendingRequestsQueryHandler
	getMenuHandler         queries.GetMenuQueryHandler
}

// Handlers bundles every command and query handler the server needs.
type Handlers struct {
	RegisterClient  commands.RegisterClientCommandHandler
	PlaceOrder      commands.PlaceOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	AddOrderNote    commands.AddOrderNoteCommandHandler
	RemoveOrderNote commands.RemoveOrderNoteCommandHandler
	SendToKitchen   commands.SendToKitchenCommandHandler
	AdvanceKitchen  commands.AdvanceKitchenStateCommandHandler
	MarkDelivered   commands.MarkDeliveredCommandHandler
	AnnotateDelay   commands.AnnotateDelayCommandHandler
	RaiseRequest    commands.RaiseRequestCommandHandler
	ResolveRequest  commands.ResolveRequestCommandHandler
	Settle          commands.SettleCommandHandler

	GetTable        queries.GetTableQueryHandler
	GetTableByToken queries.GetTableByTokenQueryHandler
	ListTables      queries.ListTablesQueryHandler
	KitchenQueue    queries.GetKitchenQueueQueryHandler
	ReadyToServe    queries.GetReadyToServeQueryHandler
	PendingRequests queries.GetPendingRequestsQueryHandler
	GetMenu         queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		registerClientHandler:  h.RegisterClient,
		placeOrderHandler:      h.PlaceOrder,
		cancelOrderHandler:     h.CancelOrder,
		addOrderNoteHandler:    h.AddOrderNote,
		removeOrderNoteHandler: h.RemoveOrderNote,
		sendToKitchenHandler:   h.SendToKitchen,
		advanceKitchenHandler:  h.AdvanceKitchen,
		markDeliveredHandler:   h.MarkDelivered,
		annotateDelayHandler:   h.AnnotateDelay,
		raiseRequestHandler:    h.RaiseRequest,
		resolveRequestHandler:  h.ResolveRequest,
		settleHandler:          h.Settle,
		getTableHandler:        h.GetTable,
		getTableByTokenHandler: h.GetTableByToken,
		listTablesHandler:      h.ListTables,
		kitchenQueueHandler:    h.KitchenQueue,
		readyToServeHandler:    h.ReadyToServe,
		pendingRequestsHandler: h.PendingRequests,
		getMenuHandler:         h.GetMenu,
	}
}

// RegisterRoutes mounts all routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)
	api.GET("/tables", s.ListTables)
	api.GET("/tables/:tableId", s.GetTable)
	api.GET("/access/:token", s.GetTableByToken)

	api.POST("/tables/:tableId/clients", s.RegisterClient)
	api.POST("/tables/:tableId/seats/:seatKey/orders", s.PlaceOrder)
	api.DELETE("/tables/:tableId/seats/:seatKey/orders/:orderId", s.CancelOrder)
	api.POST("/tables/:tableId/seats/:seatKey/orders/:orderId/notes", s.AddOrderNote)
	api.DELETE("/tables/:tableId/seats/:seatKey/orders/:orderId/notes/:index", s.RemoveOrderNote)
	api.POST("/tables/:tableId/kitchen", s.SendToKitchen)
	api.POST("/tables/:tableId/settlements", s.Settle)

	api.POST("/tables/:tableId/orders/:orderId/prepare", s.StartPreparation)
	api.POST("/tables/:tableId/orders/:orderId/ready", s.MarkReady)
	api.POST("/tables/:tableId/orders/:orderId/deliver", s.MarkDelivered)
	api.POST("/tables/:tableId/orders/:orderId/delay", s.AnnotateDelay)

	api.POST("/tables/:tableId/requests", s.RaiseRequest)
	api.POST("/tables/:tableId/requests/resolve", s.ResolveRequest)

	api.GET("/kitchen/queue", s.GetKitchenQueue)
	api.GET("/kitchen/ready", s.GetReadyToServe)
	api.GET("/requests/pending", s.GetPendingRequests)
}

// RegisterClient handles POST /api/v1/tables/:tableId/clients.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterClientCommand(ctx.Param("tableId"), body.Name)
	if err != nil {
		return badRequest(ctx, err)
	}

	seatKey, err := s.registerClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"seat_key": seatKey})
}

// PlaceOrder handles POST /api/v1/tables/:tableId/seats/:seatKey/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body struct {
		DishID   string `json:"dish_id"`
		Quantity int    `json:"quantity"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		ctx.Param("tableId"), ctx.Param("seatKey"), body.DishID, body.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"order_id": orderID})
}

// CancelOrder handles DELETE /api/v1/tables/:tableId/seats/:seatKey/orders/:orderId.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(
		ctx.Param("tableId"), ctx.Param("seatKey"), ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderNote handles POST .../orders/:orderId/notes.
func (s *Server) AddOrderNote(ctx echo.Context) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddOrderNoteCommand(
		ctx.Param("tableId"), ctx.Param("seatKey"), ctx.Param("orderId"), body.Text)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.addOrderNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderNote handles DELETE .../orders/:orderId/notes/:index.
func (s *Server) RemoveOrderNote(ctx echo.Context) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderNoteCommand(
		ctx.Param("tableId"), ctx.Param("seatKey"), ctx.Param("orderId"), index)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.removeOrderNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendToKitchen handles POST /api/v1/tables/:tableId/kitchen.
func (s *Server) SendToKitchen(ctx echo.Context) error {
	cmd, err := commands.NewSendToKitchenCommand(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	sent, err := s.sendToKitchenHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	type sentOrder struct {
		OrderID    string `json:"order_id"`
		ClientName string `json:"client"`
		DishName   string `json:"dish"`
		Quantity   int    `json:"quantity"`
	}
	response := make([]sentOrder, 0, len(sent))
	for _, o := range sent {
		response = append(response, sentOrder{
			OrderID:    o.OrderID,
			ClientName: o.ClientName,
			DishName:   o.DishName,
			Quantity:   o.Quantity,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// StartPreparation handles POST .../orders/:orderId/prepare.
func (s *Server) StartPreparation(ctx echo.Context) error {
	return s.advanceKitchen(ctx, "prepare")
}

// MarkReady handles POST .../orders/:orderId/ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	return s.advanceKitchen(ctx, "ready")
}

// MarkDelivered handles POST .../orders/:orderId/deliver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	cmd, err := commands.NewMarkDeliveredCommand(ctx.Param("tableId"), ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AnnotateDelay handles POST .../orders/:orderId/delay.
func (s *Server) AnnotateDelay(ctx echo.Context) error {
	var body struct {
		Minutes int `json:"minutes"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAnnotateDelayCommand(
		ctx.Param("tableId"), ctx.Param("orderId"), body.Minutes)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.annotateDelayHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RaiseRequest handles POST /api/v1/tables/:tableId/requests.
func (s *Server) RaiseRequest(ctx echo.Context) error {
	var body struct {
		Client  string `json:"client"`
		Message string `json:"message"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRaiseRequestCommand(ctx.Param("tableId"), body.Client, body.Message)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.raiseRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveRequest handles POST /api/v1/tables/:tableId/requests/resolve.
func (s *Server) ResolveRequest(ctx echo.Context) error {
	var body struct {
		Client  string `json:"client"`
		Message string `json:"message"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewResolveRequestCommand(ctx.Param("tableId"), body.Client, body.Message)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.resolveRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Settle handles POST /api/v1/tables/:tableId/settlements.
func (s *Server) Settle(ctx echo.Context) error {
	var body struct {
		Scope   string `json:"scope"`
		SeatKey string `json:"seat_key"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	scope, err := payment.ScopeFromString(body.Scope)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSettleCommand(ctx.Param("tableId"), scope, body.SeatKey)
	if err != nil {
		return badRequest(ctx, err)
	}

	record, err := s.settleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"record_id": record.ID(),
		"scope":     record.Scope().String(),
		"total":     record.Total(),
		"paid_at":   record.PaidAt(),
	})
}

// GetTable handles GET /api/v1/tables/:tableId.
func (s *Server) GetTable(ctx echo.Context) error {
	query, err := queries.NewGetTableQuery(ctx.Param("tableId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	t, err := s.getTableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, t)
}

// GetTableByToken handles GET /api/v1/access/:token.
func (s *Server) GetTableByToken(ctx echo.Context) error {
	query, err := queries.NewGetTableByTokenQuery(ctx.Param("token"))
	if err != nil {
		return badRequest(ctx, err)
	}

	t, err := s.getTableByTokenHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, t)
}

// ListTables handles GET /api/v1/tables.
func (s *Server) ListTables(ctx echo.Context) error {
	tables, err := s.listTablesHandler.Handle(ctx.Request().Context(), queries.NewListTablesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tables)
}

// GetKitchenQueue handles GET /api/v1/kitchen/queue.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	entries, err := s.kitchenQueueHandler.Handle(ctx.Request().Context(), queries.NewGetKitchenQueueQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

// GetReadyToServe handles GET /api/v1/kitchen/ready.
func (s *Server) GetReadyToServe(ctx echo.Context) error {
	entries, err := s.readyToServeHandler.Handle(ctx.Request().Context(), queries.NewGetReadyToServeQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

// GetPendingRequests handles GET /api/v1/requests/pending.
func (s *Server) GetPendingRequests(ctx echo.Context) error {
	pending, err := s.pendingRequestsHandler.Handle(ctx.Request().Context(), queries.NewGetPendingRequestsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pending)
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// advanceKitchen maps the prepare/ready route suffix onto the kitchen
// transition command.
func (s *Server) advanceKitchen(ctx echo.Context, step string) error {
	target, err := kitchenTarget(step)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceKitchenStateCommand(
		ctx.Param("tableId"), ctx.Param("orderId"), target)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.advanceKitchenHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func kitchenTarget(step string) (order.Status, error) {
	switch step {
	case "prepare":
		return order.InPreparation, nil
	case "ready":
		return order.ReadyToServe, nil
	default:
		return order.Unknown, errors.New("unknown kitchen step: " + step)
	}
}
