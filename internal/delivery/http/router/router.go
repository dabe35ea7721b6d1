// Package router contains routing setup for the HTTP delivery.
package router

import (
	"nestly/internal/delivery/http/middleware"
	"nestly/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	CatalogHandler      *handler.CatalogHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	catalogHandler      *handler.CatalogHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		catalogHandler:      params.CatalogHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
//
// None of the routes sit behind token verification: tokens are issued at
// login but never checked afterwards.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Banner endpoint
	e.GET("/", handler.Root)

	// Auth routes
	e.POST("/signup", r.accountHandler.Signup)
	e.POST("/login", r.accountHandler.Login)

	// Listing CRUD
	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/products", r.catalogHandler.Create)
		apiGroup.GET("/products", r.catalogHandler.List)
		apiGroup.PUT("/products/:productId", r.catalogHandler.Update)
		apiGroup.DELETE("/products/:productId", r.catalogHandler.Delete)
	}
}
