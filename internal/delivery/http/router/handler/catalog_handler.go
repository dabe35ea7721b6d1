package handler

import (
	"log/slog"
	"net/http"

	"nestly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Banner is the response body of GET /.
const Banner = "Nestly listing service is up and running"

// CatalogHandler holds dependencies for the listing CRUD handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create inserts the raw request body as a new listing.
func (h *CatalogHandler) Create(c echo.Context) error {
	var payload map[string]any
	if err := c.Bind(&payload); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Create(c.Request().Context(), payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, result)
}

// List returns all listings, unfiltered and unpaginated.
func (h *CatalogHandler) List(c echo.Context) error {
	listings, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, listings)
}

// Update merges the fields under the body's "product" key into the listing
// and answers with the pre-update document.
func (h *CatalogHandler) Update(c echo.Context) error {
	var input usecase.UpdateListingInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	previous, err := h.uc.Update(c.Request().Context(), c.Param("productId"), input.Product)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, previous)
}

// Delete removes the listing and answers with the removal acknowledgement.
func (h *CatalogHandler) Delete(c echo.Context) error {
	result, err := h.uc.Delete(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, result)
}

// Root serves the static banner.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, Banner)
}
