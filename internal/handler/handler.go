// Package handler wires HTTP routes to the service layer. Every handler
// binds its payload, delegates to a service, and wraps the result in the
// shared response envelope.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventorypro/internal/service"
	"inventorypro/pkg/response"
)

// statusFromError maps service sentinel errors onto HTTP status codes
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	status := statusFromError(err)
	c.JSON(status, response.Error(status, err.Error()))
}

// identity pulls the caller's id and display name set by the auth middleware
func identity(c *gin.Context) (string, string) {
	return c.GetString("userID"), c.GetString("userName")
}
