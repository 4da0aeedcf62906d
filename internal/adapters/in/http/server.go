// Package http is the inbound REST adapter: echo handlers, auth and metrics
// middleware, and the mapping of use case results to HTTP responses.
package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"laborders/internal/core/application/usecase"
	"laborders/internal/core/application/usecases/orders"
	"laborders/internal/core/application/usecases/users"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const userIDKey = "userID"

// OrderUseCases are the order executors the server dispatches to.
type OrderUseCases struct {
	Create     usecase.Executor[*order.Order]
	Get        usecase.Executor[*order.Order]
	List       usecase.Executor[ports.OrderPage]
	PatchState usecase.Executor[*order.Order]
}

// UserUseCases are the credential executors the server dispatches to.
type UserUseCases struct {
	Register usecase.Executor[users.Session]
	Login    usecase.Executor[users.Session]
}

// Server holds the HTTP handlers. Handlers only extract raw input from the
// request and write the dispatched response.
type Server struct {
	orders OrderUseCases
	users  UserUseCases
	now    func() time.Time
}

func NewServer(orderUseCases OrderUseCases, userUseCases UserUseCases) *Server {
	return &Server{orders: orderUseCases, users: userUseCases, now: time.Now}
}

type messageJSON struct {
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Root godoc
// @Summary  API banner
// @Tags     system
// @Produce  json
// @Success  200 {object} messageJSON
// @Router   / [get]
func (s *Server) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, messageJSON{Message: "API running"})
}

// Health godoc
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200 {object} messageJSON
// @Router   /health [get]
func (s *Server) Health(c echo.Context) error {
	now := s.now().UTC()
	return c.JSON(http.StatusOK, messageJSON{Message: "ok", Timestamp: &now})
}

// Register godoc
// @Summary  Create an account and return a session
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body users.CredentialsInput true "credentials"
// @Success  201 {object} SessionJSON
// @Failure  400 {object} ErrorBody
// @Failure  409 {object} ErrorBody
// @Router   /auth/register [post]
func (s *Server) Register(c echo.Context) error {
	raw, rejected := readBody(c)
	if rejected != nil {
		return send(c, *rejected)
	}

	result := s.users.Register.Execute(c.Request().Context(), usecase.Identity{}, raw)
	return send(c, ToResponse(usecase.MapResult(result, presentSession), Created))
}

// Login godoc
// @Summary  Exchange credentials for a session
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body users.CredentialsInput true "credentials"
// @Success  200 {object} SessionJSON
// @Failure  400 {object} ErrorBody
// @Failure  401 {object} ErrorBody
// @Router   /auth/login [post]
func (s *Server) Login(c echo.Context) error {
	raw, rejected := readBody(c)
	if rejected != nil {
		return send(c, *rejected)
	}

	result := s.users.Login.Execute(c.Request().Context(), usecase.Identity{}, raw)
	return send(c, ToResponse(usecase.MapResult(result, presentSession)))
}

// CreateOrder godoc
// @Summary  Create a lab order owned by the caller
// @Tags     orders
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    body body orders.CreateInput true "order"
// @Success  201 {object} OrderJSON
// @Failure  400 {object} ErrorBody
// @Failure  404 {object} ErrorBody
// @Router   /orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	raw, rejected := readBody(c)
	if rejected != nil {
		return send(c, *rejected)
	}

	result := s.orders.Create.Execute(c.Request().Context(), identity(c), raw)
	return send(c, ToResponse(usecase.MapResult(result, presentOrder), Created))
}

// ListOrders godoc
// @Summary  List the caller's active orders, newest first
// @Tags     orders
// @Security BearerAuth
// @Produce  json
// @Param    page    query int    false "page, default 1, at most 1000000"
// @Param    perPage query int    false "page size, default 50, at most 100"
// @Param    state   query string false "CREATED, ANALYSIS or COMPLETED"
// @Success  200 {object} PageJSON
// @Failure  404 {object} ErrorBody
// @Router   /orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	result := s.orders.List.Execute(c.Request().Context(), identity(c), listInput(c))
	return send(c, ToResponse(usecase.MapResult(result, presentPage)))
}

// GetOrder godoc
// @Summary  Fetch one order
// @Tags     orders
// @Security BearerAuth
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} OrderJSON
// @Failure  404 {object} ErrorBody
// @Failure  422 {object} ErrorBody
// @Router   /orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	result := s.orders.Get.Execute(c.Request().Context(), identity(c), orders.GetInput{})
	return send(c, ToResponse(usecase.MapResult(result, presentOrder)))
}

// PatchOrderState godoc
// @Summary  Move an order one step forward in its lifecycle
// @Tags     orders
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id   path string                 true "order id"
// @Param    body body orders.PatchStateInput true "target state"
// @Success  200 {object} OrderJSON
// @Failure  400 {object} ErrorBody
// @Failure  404 {object} ErrorBody
// @Failure  409 {object} ErrorBody
// @Failure  422 {object} ErrorBody
// @Router   /orders/{id}/state [patch]
func (s *Server) PatchOrderState(c echo.Context) error {
	raw, rejected := readBody(c)
	if rejected != nil {
		return send(c, *rejected)
	}

	result := s.orders.PatchState.Execute(c.Request().Context(), identity(c), raw)
	return send(c, ToResponse(usecase.MapResult(result, presentOrder)))
}

func identity(c echo.Context) usecase.Identity {
	userID, _ := c.Get(userIDKey).(kernel.UUID)
	return usecase.Identity{UserID: userID, ResourceID: c.Param("id")}
}

// listInput binds the optional query parameters. Values that fail to bind are
// left at zero and replaced by their defaults.
func listInput(c echo.Context) orders.ListInput {
	var page, perPage *int
	var state *string

	query := c.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &page); err != nil {
		page = nil
	}
	if err := runtime.BindQueryParameter("form", true, false, "perPage", query, &perPage); err != nil {
		perPage = nil
	}
	if err := runtime.BindQueryParameter("form", true, false, "state", query, &state); err != nil {
		state = nil
	}

	var input orders.ListInput
	if page != nil {
		input.Page = *page
	}
	if perPage != nil {
		input.PerPage = *perPage
	}
	if state != nil {
		input.State = *state
	}
	return input.Normalize()
}

// readBody decodes the JSON body into a generic value for schema validation.
// An empty body is an empty object. A body that is not JSON yields a 400 response.
func readBody(c echo.Context) (any, *Response) {
	var raw any
	err := c.Echo().JSONSerializer.Deserialize(c, &raw)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &Response{
			StatusCode: http.StatusBadRequest,
			Body:       ErrorBody{ErrorMessage: "request body must be valid JSON"},
		}
	}

	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func send(c echo.Context, resp Response) error {
	if resp.Body == nil {
		return c.NoContent(resp.StatusCode)
	}
	return c.JSON(resp.StatusCode, resp.Body)
}
