package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"nestly/internal/delivery/http/middleware"
	"nestly/internal/domain/entity"
	"nestly/internal/domain/repository"
	"nestly/internal/usecase"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the production error handler so
// tests observe the real wire-format of failures.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// stubAccountUsecase is a canned-response AccountUsecase for handler tests.
type stubAccountUsecase struct {
	registerOutput *usecase.RegisterOutput
	registerErr    error
	loginOutput    *usecase.LoginOutput
	loginErr       error

	gotRegister *usecase.RegisterInput
	gotLogin    *usecase.LoginInput
}

func (s *stubAccountUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.gotRegister = input

	return s.registerOutput, s.registerErr
}

func (s *stubAccountUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.gotLogin = input

	return s.loginOutput, s.loginErr
}

// stubCatalogUsecase is a canned-response CatalogUsecase for handler tests.
type stubCatalogUsecase struct {
	insertResult *repository.InsertResult
	listings     []entity.Listing
	previous     *entity.Listing
	removeResult *repository.RemoveResult
	err          error

	gotCreate map[string]any
	gotID     string
	gotFields map[string]any
}

func (s *stubCatalogUsecase) Create(_ context.Context, payload map[string]any) (*repository.InsertResult, error) {
	s.gotCreate = payload

	return s.insertResult, s.err
}

func (s *stubCatalogUsecase) List(context.Context) ([]entity.Listing, error) {
	return s.listings, s.err
}

func (s *stubCatalogUsecase) Update(_ context.Context, id string, fields map[string]any) (*entity.Listing, error) {
	s.gotID, s.gotFields = id, fields

	return s.previous, s.err
}

func (s *stubCatalogUsecase) Delete(_ context.Context, id string) (*repository.RemoveResult, error) {
	s.gotID = id

	return s.removeResult, s.err
}

func registerAccountRoutes(e *echo.Echo, uc usecase.AccountUsecase) {
	h := NewAccountHandler(uc, newDiscardLogger())
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
}

func registerCatalogRoutes(e *echo.Echo, uc usecase.CatalogUsecase) {
	h := NewCatalogHandler(uc, newDiscardLogger())
	e.GET("/", Root)
	e.POST("/api/products", h.Create)
	e.GET("/api/products", h.List)
	e.PUT("/api/products/:productId", h.Update)
	e.DELETE("/api/products/:productId", h.Delete)
}
