// Package response holds the wire-format helpers shared by the HTTP handlers.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the `{"message": ...}` envelope used by the auth routes and
// every error response.
type MessageBody struct {
	Message string `json:"message"`
}

// Message writes a `{"message": ...}` body with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// LoginBody is the success body of POST /login.
type LoginBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	RoleID  int    `json:"roleId"`
}
