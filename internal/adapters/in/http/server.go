package http

import (
	"context"
	"net/http"
	"strconv"

	"orderprocessing/internal/core/application/usecases/commands"
	"orderprocessing/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// OrderBatchProcessor runs a processing batch for one user.
type OrderBatchProcessor interface {
	Handle(ctx context.Context, cmd commands.ProcessUserOrdersCommand) bool
}

// UserOrdersReader reads back the orders of one user.
type UserOrdersReader interface {
	Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.GetUserOrdersQueryResponse, error)
}

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProcessResult is the body of the process endpoint.
type ProcessResult struct {
	Processed bool `json:"processed"`
}

// Order is one entry of the user orders listing.
type Order struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Flag     bool    `json:"flag"`
	Status   string  `json:"status"`
	Priority string  `json:"priority"`
}

// Server handles HTTP requests by delegating to the application use cases.
type Server struct {
	processHandler OrderBatchProcessor
	ordersHandler  UserOrdersReader
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(processHandler OrderBatchProcessor, ordersHandler UserOrdersReader) *Server {
	return &Server{
		processHandler: processHandler,
		ordersHandler:  ordersHandler,
	}
}

// Register mounts the routes on e. metrics may be nil.
func (s *Server) Register(e *echo.Echo, metrics http.Handler) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/users/:userId/orders/process", s.ProcessUserOrders)
	api.GET("/users/:userId/orders", s.GetUserOrders)

	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ProcessUserOrders handles POST /api/v1/users/:userId/orders/process.
// A failed batch is reported as 422 with processed=false. The batch runs to
// completion even if the client goes away.
func (s *Server) ProcessUserOrders(ctx echo.Context) error {
	userID, err := userIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewProcessUserOrdersCommand(userID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if !s.processHandler.Handle(context.WithoutCancel(ctx.Request().Context()), cmd) {
		return ctx.JSON(http.StatusUnprocessableEntity, ProcessResult{Processed: false})
	}

	return ctx.JSON(http.StatusOK, ProcessResult{Processed: true})
}

// GetUserOrders handles GET /api/v1/users/:userId/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := userIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.ordersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:       o.ID,
			Type:     o.Type.String(),
			Amount:   o.Amount,
			Flag:     o.Flag,
			Status:   o.Status.String(),
			Priority: o.Priority.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func userIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("userId"), 10, 64)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid user id: " + err.Error(),
	})
}
