// Package http exposes the order lifecycle and presence API over echo.
// Command endpoints parse the payload, build a guard-validated command with
// the acting principal and delegate to the application layer; query
// endpoints return read models directly.
package http

import (
	"net/http"
	"time"

	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/application/usecases/queries"
	"rescue/internal/core/domain/model/kernel"
	"rescue/internal/presence"

	"github.com/labstack/echo/v4"
)

const timeFormat = time.RFC3339

// Identity headers carrying the acting principal. Validating them against a
// session is the API gateway's job; the service trusts what arrives here.
const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
	headerCompanyID = "X-Company-Id"
)

// Handlers bundles the application layer entry points the server routes to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AcceptOrder        commands.AcceptOrderCommandHandler
	DispatchVehicle    commands.DispatchVehicleCommandHandler
	MarkVehicleArrived commands.MarkVehicleArrivedCommandHandler
	CompleteInspection commands.CompleteInspectionCommandHandler
	UpdatePrice        commands.UpdatePriceCommandHandler
	ConfirmPrice       commands.ConfirmPriceCommandHandler
	RejectPrice        commands.RejectPriceCommandHandler
	StartRepair        commands.StartRepairCommandHandler
	CompleteRepair     commands.CompleteRepairCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	MarkInvoicePaid    commands.MarkInvoicePaidCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetCompanyVehicles queries.GetCompanyVehiclesQueryHandler
	GetOrderInvoice    queries.GetOrderInvoiceQueryHandler
}

// Server handles HTTP requests for the rescue API.
type Server struct {
	handlers Handlers
	bridge   *presence.Bridge
}

// NewServer creates an HTTP server over the given application handlers and
// presence bridge.
func NewServer(handlers Handlers, bridge *presence.Bridge) *Server {
	return &Server{
		handlers: handlers,
		bridge:   bridge,
	}
}

// RegisterRoutes binds the API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/accept", s.AcceptOrder)
	api.POST("/orders/:orderId/dispatch", s.DispatchVehicle)
	api.POST("/orders/:orderId/arrived", s.MarkVehicleArrived)
	api.POST("/orders/:orderId/inspection", s.CompleteInspection)
	api.POST("/orders/:orderId/price", s.UpdatePrice)
	api.POST("/orders/:orderId/price/confirm", s.ConfirmPrice)
	api.POST("/orders/:orderId/price/reject", s.RejectPrice)
	api.POST("/orders/:orderId/repair/start", s.StartRepair)
	api.POST("/orders/:orderId/repair/complete", s.CompleteRepair)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/orders/:orderId/invoice", s.GetOrderInvoice)
	api.POST("/orders/:orderId/invoice/paid", s.MarkInvoicePaid)
	api.GET("/companies/:companyId/vehicles", s.GetCompanyVehicles)
	api.GET("/presence", s.GetPresence)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	serviceID, err := kernel.UUIDFromString(request.ServiceID)
	if err != nil {
		return respondError(ctx, err)
	}

	companyID, err := kernel.UUIDFromString(request.CompanyID)
	if err != nil {
		return respondError(ctx, err)
	}

	var estimatedPrice *kernel.Price
	if request.EstimatedPrice != nil {
		price, priceErr := kernel.PriceFromString(*request.EstimatedPrice)
		if priceErr != nil {
			return respondError(ctx, priceErr)
		}
		estimatedPrice = &price
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, serviceID, companyID, estimatedPrice, request.Notes, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// AcceptOrder handles POST /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewAcceptOrderCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// DispatchVehicle handles POST /api/v1/orders/:orderId/dispatch.
func (s *Server) DispatchVehicle(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request DispatchVehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	vehicleID, err := kernel.UUIDFromString(request.VehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDispatchVehicleCommand(orderID, vehicleID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DispatchVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkVehicleArrived handles POST /api/v1/orders/:orderId/arrived.
func (s *Server) MarkVehicleArrived(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewMarkVehicleArrivedCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.MarkVehicleArrived.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteInspection handles POST /api/v1/orders/:orderId/inspection.
func (s *Server) CompleteInspection(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewCompleteInspectionCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.CompleteInspection.Handle(ctx.Request().Context(), cmd)
	})
}

// UpdatePrice handles POST /api/v1/orders/:orderId/price.
func (s *Server) UpdatePrice(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdatePriceRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	price, err := kernel.PriceFromString(request.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePriceCommand(orderID, price, request.Notes, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdatePrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPrice handles POST /api/v1/orders/:orderId/price/confirm.
func (s *Server) ConfirmPrice(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewConfirmPriceCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.ConfirmPrice.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectPrice handles POST /api/v1/orders/:orderId/price/reject.
func (s *Server) RejectPrice(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewRejectPriceCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.RejectPrice.Handle(ctx.Request().Context(), cmd)
	})
}

// StartRepair handles POST /api/v1/orders/:orderId/repair/start.
func (s *Server) StartRepair(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewStartRepairCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.StartRepair.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteRepair handles POST /api/v1/orders/:orderId/repair/complete.
func (s *Server) CompleteRepair(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewCompleteRepairCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.CompleteRepair.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkInvoicePaid handles POST /api/v1/orders/:orderId/invoice/paid.
func (s *Server) MarkInvoicePaid(ctx echo.Context) error {
	return s.lifecycleCommand(ctx, func(orderID kernel.UUID, actor commands.Actor) error {
		cmd, err := commands.NewMarkInvoicePaidCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.handlers.MarkInvoicePaid.Handle(ctx.Request().Context(), cmd)
	})
}

// GetOrderInvoice handles GET /api/v1/orders/:orderId/invoice.
func (s *Server) GetOrderInvoice(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderInvoiceQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetOrderInvoice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInvoiceResponse(view))
}

// GetCompanyVehicles handles GET /api/v1/companies/:companyId/vehicles.
func (s *Server) GetCompanyVehicles(ctx echo.Context) error {
	companyID, err := kernel.UUIDFromString(ctx.Param("companyId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCompanyVehiclesQuery(companyID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.handlers.GetCompanyVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVehicleResponses(views))
}

// GetPresence handles GET /api/v1/presence.
func (s *Server) GetPresence(ctx echo.Context) error {
	users, err := s.bridge.Query(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PresenceResponse{Users: users})
}

// lifecycleCommand factors the shared shape of the bodyless transition
// endpoints: resolve the actor, parse the order ID, build and run the command.
func (s *Server) lifecycleCommand(
	ctx echo.Context, run func(orderID kernel.UUID, actor commands.Actor) error,
) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := run(orderID, actor); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actorFromRequest builds the acting principal from the identity headers.
func (s *Server) actorFromRequest(ctx echo.Context) (commands.Actor, error) {
	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerActorID))
	if err != nil {
		return commands.Actor{}, err
	}

	role, err := commands.RoleFromString(ctx.Request().Header.Get(headerActorRole))
	if err != nil {
		return commands.Actor{}, err
	}

	var companyID kernel.UUID
	if role == commands.RoleManager {
		companyID, err = kernel.UUIDFromString(ctx.Request().Header.Get(headerCompanyID))
		if err != nil {
			return commands.Actor{}, err
		}
	}

	return commands.NewActor(actorID, role, companyID)
}
