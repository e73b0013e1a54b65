// Package http exposes the dispatch use cases over a JSON API.
//
// Caller identity arrives in the X-Actor-Id header, set by the edge
// proxy after authentication; this service trusts it and enforces
// authorization (ownership, assignment, role) in the domain layer.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorIDHeader = "X-Actor-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler
	updateStatusHandler   commands.UpdateDeliveryStatusCommandHandler
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler
	updateReceiverHandler commands.UpdateReceiverCommandHandler

	// Query handlers
	getAvailableHandler        queries.GetAvailableDeliveriesQueryHandler
	getDriverDeliveriesHandler queries.GetDriverDeliveriesQueryHandler
	getSenderDeliveriesHandler queries.GetSenderDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	updateReceiverHandler commands.UpdateReceiverCommandHandler,
	getAvailableHandler queries.GetAvailableDeliveriesQueryHandler,
	getDriverDeliveriesHandler queries.GetDriverDeliveriesQueryHandler,
	getSenderDeliveriesHandler queries.GetSenderDeliveriesQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:      createDeliveryHandler,
		acceptDeliveryHandler:      acceptDeliveryHandler,
		updateStatusHandler:        updateStatusHandler,
		cancelDeliveryHandler:      cancelDeliveryHandler,
		updateReceiverHandler:      updateReceiverHandler,
		getAvailableHandler:        getAvailableHandler,
		getDriverDeliveriesHandler: getDriverDeliveriesHandler,
		getSenderDeliveriesHandler: getSenderDeliveriesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/available", s.GetAvailableDeliveries)
	api.POST("/deliveries/:id/accept", s.AcceptDelivery)
	api.POST("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.POST("/deliveries/:id/cancel", s.CancelDelivery)
	api.PUT("/deliveries/:id/receiver", s.UpdateReceiver)
	api.GET("/drivers/me/deliveries", s.GetDriverDeliveries)
	api.GET("/senders/me/deliveries", s.GetSenderDeliveries)
}

// CreateDelivery handles POST /api/v1/deliveries - opens a new record for the
// calling sender.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	var body NewDelivery
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, actorID,
		body.SenderName, body.SenderPhone,
		body.ReceiverName, body.ReceiverPhone,
		body.Origin, body.Destination,
		body.Category, body.Tier,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, DeliveryCreated{ID: deliveryID.String()})
}

// GetAvailableDeliveries handles GET /api/v1/deliveries/available - the
// driver-facing backlog.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	backlog, err := s.getAvailableHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableDeliveriesQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve available deliveries")
	}

	response := make([]AvailableDelivery, len(backlog))
	for i, entry := range backlog {
		response[i] = AvailableDelivery{
			ID:                   entry.ID.String(),
			Origin:               entry.Origin,
			Destination:          entry.Destination,
			Category:             entry.Category,
			Tier:                 entry.Tier,
			DistanceKm:           entry.DistanceKm,
			Price:                entry.Price,
			MaxDeliveryTimeHours: entry.MaxDeliveryTimeHours,
			Status:               entry.Status,
			CreatedAt:            entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptDelivery handles POST /api/v1/deliveries/:id/accept - the calling
// driver claims an open record.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	driverID, err := actorFromHeader(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid claim: "+err.Error())
	}

	if err = s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:id/status - the
// assigned driver reports Delivered or Returned.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	driverID, err := actorFromHeader(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, driverID, body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status report: "+err.Error())
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel - the sender
// (or an administrator, via the X-Actor-Role header) cancels a record.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	role := ctx.Request().Header.Get("X-Actor-Role")
	if role == "" {
		role = delivery.RoleSender.String()
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, actorID, role)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation: "+err.Error())
	}

	if err = s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateReceiver handles PUT /api/v1/deliveries/:id/receiver - the sender
// edits receiver details before pickup.
func (s *Server) UpdateReceiver(ctx echo.Context) error {
	senderID, err := actorFromHeader(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery ID")
	}

	var body ReceiverUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateReceiverCommand(
		deliveryID, senderID, body.ReceiverName, body.ReceiverPhone)
	if err != nil {
		return badRequest(ctx, "Invalid receiver data: "+err.Error())
	}

	if err = s.updateReceiverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetDriverDeliveries handles GET /api/v1/drivers/me/deliveries - the
// calling driver's board with per-record earnings.
func (s *Server) GetDriverDeliveries(ctx echo.Context) error {
	driverID, err := actorFromHeader(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetDriverDeliveriesQuery(driverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver ID")
	}

	board, err := s.getDriverDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve driver deliveries")
	}

	response := make([]DriverDelivery, len(board))
	for i, entry := range board {
		response[i] = DriverDelivery{
			ID:          entry.ID.String(),
			Origin:      entry.Origin,
			Destination: entry.Destination,
			Category:    entry.Category,
			Tier:        entry.Tier,
			Price:       entry.Price,
			Earnings:    entry.Earnings,
			Status:      entry.Status,
			UpdatedAt:   entry.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSenderDeliveries handles GET /api/v1/senders/me/deliveries - the
// calling sender's board.
func (s *Server) GetSenderDeliveries(ctx echo.Context) error {
	senderID, err := actorFromHeader(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	query, err := queries.NewGetSenderDeliveriesQuery(senderID)
	if err != nil {
		return badRequest(ctx, "Invalid sender ID")
	}

	board, err := s.getSenderDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve sender deliveries")
	}

	response := make([]SenderDelivery, len(board))
	for i, entry := range board {
		response[i] = SenderDelivery{
			ID:            entry.ID.String(),
			ReceiverName:  entry.ReceiverName,
			ReceiverPhone: entry.ReceiverPhone,
			Origin:        entry.Origin,
			Destination:   entry.Destination,
			Category:      entry.Category,
			Tier:          entry.Tier,
			Price:         entry.Price,
			Status:        entry.Status,
			CreatedAt:     entry.CreatedAt,
			UpdatedAt:     entry.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func actorFromHeader(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(actorIDHeader))
}

// domainError translates a use-case failure into the HTTP status and
// human-readable message the API contract promises for each error kind.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, kernel.ErrUnknownRegion):
		return respond(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, "Delivery not found")
	case errors.Is(err, delivery.ErrUnauthorized):
		return respond(ctx, http.StatusForbidden, "Not allowed to perform this action")
	case errors.Is(err, delivery.ErrInvalidTransition):
		return respond(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, ports.ErrDeliveryUnavailable):
		return respond(ctx, http.StatusConflict, "Delivery is no longer available")
	case errors.Is(err, ports.ErrDriverBusy):
		return respond(ctx, http.StatusConflict, "Finish your current delivery before accepting another")
	case errors.Is(err, errs.ErrObjectIsStale):
		return respond(ctx, http.StatusConflict, "Delivery was modified concurrently, retry")
	default:
		return respond(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func unauthenticated(ctx echo.Context) error {
	return respond(ctx, http.StatusUnauthorized, "Missing or invalid "+actorIDHeader+" header")
}

func internalError(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusInternalServerError, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
