package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "laborders/internal/adapters/in/http"
	"laborders/internal/core/application/usecase"
	"laborders/internal/core/application/usecases/orders"
	"laborders/internal/core/application/usecases/users"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/domain/model/user"
	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type call struct {
	identity usecase.Identity
	raw      any
}

type stubExecutor[O any] struct {
	result usecase.Result[O]
	calls  []call
}

func (s *stubExecutor[O]) Execute(_ context.Context, identity usecase.Identity, raw any) usecase.Result[O] {
	s.calls = append(s.calls, call{identity: identity, raw: raw})
	return s.result
}

type MockTokens struct{ mock.Mock }

func (m *MockTokens) Issue(userID kernel.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) Verify(token string) (kernel.UUID, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type ServerTestSuite struct {
	suite.Suite
	create     *stubExecutor[*order.Order]
	get        *stubExecutor[*order.Order]
	list       *stubExecutor[ports.OrderPage]
	patchState *stubExecutor[*order.Order]
	register   *stubExecutor[users.Session]
	login      *stubExecutor[users.Session]
	tokens     *MockTokens
	registry   *prometheus.Registry
	router     *echo.Echo
	userID     kernel.UUID
}

func (suite *ServerTestSuite) SetupTest() {
	suite.create = &stubExecutor[*order.Order]{}
	suite.get = &stubExecutor[*order.Order]{}
	suite.list = &stubExecutor[ports.OrderPage]{}
	suite.patchState = &stubExecutor[*order.Order]{}
	suite.register = &stubExecutor[users.Session]{}
	suite.login = &stubExecutor[users.Session]{}
	suite.tokens = &MockTokens{}
	suite.registry = prometheus.NewRegistry()
	suite.userID = kernel.NewUUID()

	suite.tokens.On("Verify", "good-token").Return(suite.userID, nil).Maybe()
	suite.tokens.On("Verify", mock.Anything).Return(kernel.UUID{}, ports.ErrInvalidToken).Maybe()

	server := httpadapter.NewServer(
		httpadapter.OrderUseCases{Create: suite.create, Get: suite.get, List: suite.list, PatchState: suite.patchState},
		httpadapter.UserUseCases{Register: suite.register, Login: suite.login},
	)
	suite.router = httpadapter.NewRouter(server, suite.tokens, suite.registry, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (suite *ServerTestSuite) do(method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorized {
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	}

	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *ServerTestSuite) sampleOrder() *order.Order {
	svc, err := order.NewService("Hemogram", 25, order.Pending)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Owner{ID: suite.userID, Email: "owner@lab.com"},
		"Lab Central", "Ana Souza", "Clinica Norte", []order.Service{svc})
	suite.Require().NoError(err)
	return o
}

func (suite *ServerTestSuite) TestRootAndHealthArePublic() {
	rec := suite.do(http.MethodGet, "/", "", false)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("API running", suite.decode(rec)["message"])

	rec = suite.do(http.MethodGet, "/health", "", false)
	suite.Equal(http.StatusOK, rec.Code)
	body := suite.decode(rec)
	suite.Equal("ok", body["message"])
	suite.NotEmpty(body["timestamp"])
}

func (suite *ServerTestSuite) TestProtectedRouteWithoutToken() {
	rec := suite.do(http.MethodGet, "/orders", "", false)

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal("token not provided", suite.decode(rec)["errorMessage"])
	suite.Empty(suite.list.calls)
}

func (suite *ServerTestSuite) TestProtectedRouteWithBadToken() {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal("invalid or expired token", suite.decode(rec)["errorMessage"])
}

func (suite *ServerTestSuite) TestAuthRoutesArePublicOnlyForPost() {
	rec := suite.do(http.MethodGet, "/auth/login", "", false)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ServerTestSuite) TestRegister_Created() {
	u, err := user.NewUser(suite.userID, "new@lab.com", "hash")
	suite.Require().NoError(err)
	suite.register.result = usecase.Success(users.Session{User: u, Token: "jwt"})

	rec := suite.do(http.MethodPost, "/auth/register", `{"email":"new@lab.com","password":"password1","extra":null}`, false)

	suite.Equal(http.StatusCreated, rec.Code)
	body := suite.decode(rec)
	suite.Equal("jwt", body["token"])
	suite.Equal("new@lab.com", body["user"].(map[string]any)["email"])
	suite.NotContains(rec.Body.String(), "hash")

	suite.Require().Len(suite.register.calls, 1)
	suite.Equal(map[string]any{"email": "new@lab.com", "password": "password1", "extra": nil}, suite.register.calls[0].raw)
}

func (suite *ServerTestSuite) TestLogin_Unauthorized() {
	suite.login.result = usecase.Failure[users.Session](errs.NewUnauthorizedError("invalid email or password"))

	rec := suite.do(http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"wrong-pass"}`, false)

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal("invalid email or password", suite.decode(rec)["errorMessage"])
}

func (suite *ServerTestSuite) TestMalformedBodyIsRejectedBeforeExecute() {
	rec := suite.do(http.MethodPost, "/orders", `{"lab":`, true)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("request body must be valid JSON", suite.decode(rec)["errorMessage"])
	suite.Empty(suite.create.calls)
}

func (suite *ServerTestSuite) TestEmptyBodyIsAnEmptyObject() {
	suite.create.result = usecase.Failure[*order.Order](errs.NewInvalidInputError("invalid input",
		errs.FieldViolation{Field: "lab", Message: "lab is required and must have at least 3 characters"}))

	rec := suite.do(http.MethodPost, "/orders", "", true)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Require().Len(suite.create.calls, 1)
	suite.Equal(map[string]any{}, suite.create.calls[0].raw)

	body := suite.decode(rec)
	suite.Equal("invalid input", body["errorMessage"])
	suite.Len(body["data"], 1)
}

func (suite *ServerTestSuite) TestCreateOrder_Created() {
	o := suite.sampleOrder()
	suite.create.result = usecase.Success(o)

	rec := suite.do(http.MethodPost, "/orders", `{"lab":"Lab Central"}`, true)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.Require().Len(suite.create.calls, 1)
	suite.True(suite.create.calls[0].identity.UserID.IsEqual(suite.userID))

	body := suite.decode(rec)
	suite.Equal(o.ID().String(), body["id"])
	suite.Equal("CREATED", body["state"])
	suite.Equal("ACTIVE", body["status"])
	suite.Equal(map[string]any{"id": suite.userID.String(), "email": "owner@lab.com"}, body["user"])
	suite.Equal([]any{map[string]any{"name": "Hemogram", "value": 25.0, "status": "PENDING"}}, body["services"])
}

func (suite *ServerTestSuite) TestCreateOrder_NilOrderIsNoContent() {
	suite.create.result = usecase.Success[*order.Order](nil)

	rec := suite.do(http.MethodPost, "/orders", `{"lab":"Lab Central"}`, true)

	suite.Equal(http.StatusNoContent, rec.Code)
	suite.Empty(rec.Body.String())
	suite.Require().Len(suite.create.calls, 1)
}

func (suite *ServerTestSuite) TestLogin_SessionWithoutUserIsNoContent() {
	suite.login.result = usecase.Success(users.Session{Token: "token"})

	rec := suite.do(http.MethodPost, "/auth/login", `{"email":"owner@lab.com","password":"secret1"}`, false)

	suite.Equal(http.StatusNoContent, rec.Code)
	suite.Empty(rec.Body.String())
}

func (suite *ServerTestSuite) TestGetOrder_PassesPathID() {
	suite.get.result = usecase.Failure[*order.Order](errs.NewUnprocessableError("invalid order id"))

	rec := suite.do(http.MethodGet, "/orders/not-an-id", "", true)

	suite.Equal(http.StatusUnprocessableEntity, rec.Code)
	suite.Require().Len(suite.get.calls, 1)
	suite.Equal("not-an-id", suite.get.calls[0].identity.ResourceID)
	suite.Equal(orders.GetInput{}, suite.get.calls[0].raw)
}

func (suite *ServerTestSuite) TestPatchState_Ok() {
	o := suite.sampleOrder()
	suite.patchState.result = usecase.Success(o)

	rec := suite.do(http.MethodPatch, "/orders/"+o.ID().String()+"/state", `{"state":"ANALYSIS"}`, true)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Require().Len(suite.patchState.calls, 1)
	suite.Equal(o.ID().String(), suite.patchState.calls[0].identity.ResourceID)
	suite.Equal(map[string]any{"state": "ANALYSIS"}, suite.patchState.calls[0].raw)
}

func (suite *ServerTestSuite) TestPatchState_FaultHidesDetail() {
	suite.patchState.result = usecase.Failure[*order.Order](
		errs.NewFaultError(errs.UpdateFailed, "failed to update order state", io.ErrUnexpectedEOF))

	rec := suite.do(http.MethodPatch, "/orders/"+kernel.NewUUID().String()+"/state", `{"state":"ANALYSIS"}`, true)

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.Equal("failed to update order state", suite.decode(rec)["errorMessage"])
}

func (suite *ServerTestSuite) TestListOrders_BindsQuery() {
	suite.list.result = usecase.Success(ports.OrderPage{
		Orders:       []*order.Order{suite.sampleOrder()},
		TotalRecords: 3,
		Page:         2,
		PerPage:      2,
	})

	rec := suite.do(http.MethodGet, "/orders?page=2&perPage=2&state=ANALYSIS", "", true)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Require().Len(suite.list.calls, 1)
	suite.Equal(orders.ListInput{Page: 2, PerPage: 2, State: "ANALYSIS"}, suite.list.calls[0].raw)

	body := suite.decode(rec)
	suite.Len(body["data"], 1)
	suite.InDelta(3, body["totalRecords"], 0)
	suite.InDelta(2, body["totalPages"], 0)
	suite.InDelta(2, body["perPage"], 0)
	suite.InDelta(2, body["currentPage"], 0)
}

func (suite *ServerTestSuite) TestListOrders_BadPagingFallsBackToDefaults() {
	suite.list.result = usecase.Success(ports.OrderPage{Page: 1, PerPage: 50})

	rec := suite.do(http.MethodGet, "/orders?page=abc&perPage=-4", "", true)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Require().Len(suite.list.calls, 1)
	suite.Equal(orders.ListInput{Page: orders.DefaultPage, PerPage: orders.DefaultPerPage}, suite.list.calls[0].raw)
	suite.Equal([]any{}, suite.decode(rec)["data"])
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	rec := suite.do(http.MethodGet, "/nope?x=1", "", true)

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal(map[string]any{"error": map[string]any{
		"code":    "ENDPOINT_NOT_FOUND",
		"message": "endpoint not found",
		"path":    "/nope?x=1",
	}}, suite.decode(rec))
}

func (suite *ServerTestSuite) TestMetricsAreRecorded() {
	suite.do(http.MethodGet, "/health", "", false)

	rec := suite.do(http.MethodGet, "/metrics", "", false)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `laborders_http_requests_total{code="200",method="GET",route="/health"} 1`)
}

func (suite *ServerTestSuite) TestSwaggerIsServed() {
	rec := suite.do(http.MethodGet, "/swagger/doc.json", "", false)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "/orders/{id}/state")
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestNewServer_HealthUsesUTC(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	server := httpadapter.NewServer(httpadapter.OrderUseCases{}, httpadapter.UserUseCases{})
	require.NoError(t, server.Health(c))

	var body struct {
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, time.UTC, body.Timestamp.Location())
}
