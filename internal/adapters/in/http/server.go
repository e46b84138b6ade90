// Package http is the echo boundary of the service. It translates JSON
// requests into commands and queries and maps error kinds to status codes.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UseCase is any command or query handler.
type UseCase[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreatePartner     UseCase[commands.CreatePartnerCommand, *partner.Partner]
	SetPartnerActive  UseCase[commands.SetPartnerActiveCommand, *partner.Partner]
	UpdateCreditLimit UseCase[commands.UpdateCreditLimitCommand, *partner.Partner]
	GetPartner        UseCase[queries.GetPartnerQuery, queries.PartnerResponse]
	ListPartners      UseCase[queries.ListPartnersQuery, queries.PageResponse[queries.PartnerResponse]]
	GetPartnerCredit  UseCase[queries.GetPartnerCreditQuery, queries.PartnerCreditResponse]

	CreateOrder  UseCase[commands.CreateOrderCommand, *order.Order]
	AdvanceOrder UseCase[commands.AdvanceOrderStatusCommand, *order.Order]
	CancelOrder  UseCase[commands.CancelOrderCommand, *order.Order]
	GetOrder     UseCase[queries.GetOrderQuery, queries.OrderResponse]
	ListOrders   UseCase[queries.ListOrdersQuery, queries.PageResponse[queries.OrderResponse]]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h              Handlers
	metricsHandler http.Handler
	logger         *slog.Logger
}

// NewServer creates the server. metricsHandler may be nil, in which case
// /metrics is not registered.
func NewServer(h Handlers, metricsHandler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		h:              h,
		metricsHandler: metricsHandler,
		logger:         logger.With("component", "http"),
	}
}

// RegisterRoutes installs the error handler and all routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = s.ErrorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if s.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(s.metricsHandler))
	}

	api := e.Group("/api/v1")

	api.POST("/partners", s.CreatePartner)
	api.GET("/partners", s.ListPartners)
	api.GET("/partners/:id", s.GetPartner)
	api.GET("/partners/:id/credit", s.GetPartnerCredit)
	api.PUT("/partners/:id/activate", s.ActivatePartner)
	api.PUT("/partners/:id/deactivate", s.DeactivatePartner)
	api.PUT("/partners/:id/credit-limit", s.UpdateCreditLimit)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.AdvanceOrderStatus)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
}

// CreatePartner handles POST /api/v1/partners.
func (s *Server) CreatePartner(c echo.Context) error {
	var body NewPartner
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreatePartnerCommand(body.Name, body.TaxID, money(body.CreditLimit))
	if err != nil {
		return err
	}

	p, err := s.h.CreatePartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPartner(queries.NewPartnerResponse(p)))
}

// ListPartners handles GET /api/v1/partners?page=&size=.
func (s *Server) ListPartners(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	resp, err := s.h.ListPartners.Handle(c.Request().Context(), queries.NewListPartnersQuery(page))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPage(resp, toPartner))
}

// GetPartner handles GET /api/v1/partners/:id.
func (s *Server) GetPartner(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	q, err := queries.NewGetPartnerQuery(id)
	if err != nil {
		return err
	}

	resp, err := s.h.GetPartner.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPartner(resp))
}

// GetPartnerCredit handles GET /api/v1/partners/:id/credit?amount=.
func (s *Server) GetPartnerCredit(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var amount *kernel.Money
	if raw := c.QueryParam("amount"); raw != "" {
		m, parseErr := kernel.MoneyFromString(raw)
		if parseErr != nil {
			return parseErr
		}
		amount = &m
	}

	q, err := queries.NewGetPartnerCreditQuery(id, amount)
	if err != nil {
		return err
	}

	resp, err := s.h.GetPartnerCredit.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPartnerCredit(resp))
}

// ActivatePartner handles PUT /api/v1/partners/:id/activate.
func (s *Server) ActivatePartner(c echo.Context) error {
	return s.setPartnerActive(c, true)
}

// DeactivatePartner handles PUT /api/v1/partners/:id/deactivate.
func (s *Server) DeactivatePartner(c echo.Context) error {
	return s.setPartnerActive(c, false)
}

func (s *Server) setPartnerActive(c echo.Context, active bool) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetPartnerActiveCommand(id, active)
	if err != nil {
		return err
	}

	p, err := s.h.SetPartnerActive.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPartner(queries.NewPartnerResponse(p)))
}

// UpdateCreditLimit handles PUT /api/v1/partners/:id/credit-limit.
func (s *Server) UpdateCreditLimit(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var body CreditLimitChange
	if err = c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCreditLimitCommand(id, money(body.CreditLimit))
	if err != nil {
		return err
	}

	p, err := s.h.UpdateCreditLimit.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPartner(queries.NewPartnerResponse(p)))
}

// CreateOrder handles POST /api/v1/orders. A created order is already Approved.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	partnerID, err := kernel.PublicIDFromString(body.PartnerID)
	if err != nil {
		return err
	}

	lines := make([]commands.ItemLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, commands.ItemLine{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: money(item.UnitPrice),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(partnerID, lines, body.Notes)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(o)))
}

// ListOrders handles GET /api/v1/orders?status=&from=&to=&page=&size=.
// from and to are RFC 3339 timestamps.
func (s *Server) ListOrders(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	from, err := timeParam(c, "from")
	if err != nil {
		return err
	}
	to, err := timeParam(c, "to")
	if err != nil {
		return err
	}

	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		st, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return parseErr
		}
		status = &st
	}

	q, err := queries.NewListOrdersQuery(from, to, status, page)
	if err != nil {
		return err
	}

	resp, err := s.h.ListOrders.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPage(resp, toOrder))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	q, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	resp, err := s.h.GetOrder.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrder(resp))
}

// AdvanceOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) AdvanceOrderStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(id, target)
	if err != nil {
		return err
	}

	o, err := s.h.AdvanceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}

	o, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

func idParam(c echo.Context) (kernel.PublicID, error) {
	return kernel.PublicIDFromString(c.Param("id"))
}

func pageParam(c echo.Context) (ports.Page, error) {
	number, err := intParam(c, "page", 0)
	if err != nil {
		return ports.Page{}, err
	}
	size, err := intParam(c, "size", 0)
	if err != nil {
		return ports.Page{}, err
	}
	return ports.NewPage(number, size), nil
}

func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func timeParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &t, nil
}
