// Package response holds the wire shapes shared by all HTTP handlers.
package response

import "github.com/labstack/echo/v4"

// MessageBody is the plain `{message}` body used by acknowledgments and errors.
type MessageBody struct {
	Message string `json:"message"`
}

// Message writes a `{message}` body with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
