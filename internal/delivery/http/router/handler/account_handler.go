// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"nestly/internal/delivery/http/response"
	domainerrors "nestly/internal/domain/errors"
	"nestly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for the signup and login handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the registration request.
//
// Validation misses (taken account, short password) answer 200 with a message
// body rather than a 4xx code. That inconsistency is part of the API contract
// this service preserves; clients switch on the message text.
func (h *AccountHandler) Signup(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountExists) || errors.Is(err, domainerrors.ErrPasswordTooShort) {
			var appErr domainerrors.AppError
			errors.As(err, &appErr)

			return response.Message(c, http.StatusOK, appErr.Message())
		}

		return errors.WithStack(err)
	}

	// The stored record goes back as-is, password hash included.
	return c.JSON(http.StatusOK, output.User)
}

// Login handles the authentication request. Unknown accounts and password
// mismatches surface as domainerrors.ErrInvalidCredentials and become a 401
// through the central error handler.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.LoginBody{
		Message: "Successful login",
		Token:   output.Token,
		RoleID:  int(output.RoleID),
	})
}
