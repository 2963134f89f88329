package common

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body for every failure path. Error carries the
// underlying error text and is only populated for server-side failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SendClientError sends a 400 with a human-readable message and no internal
// error detail.
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// SendServerError sends a 500 with the message plus the underlying error text.
func SendServerError(c echo.Context, message string, err error) error {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, resp)
}

// SendNotFoundError sends a 404 for a missing resource.
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("%s not found", resource)})
}

// SendTimeoutError sends a 503 when a request deadline expired mid-flight.
func SendTimeoutError(c echo.Context, message string) error {
	return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: message})
}

// ValidateRequiredString validates required string fields.
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}
