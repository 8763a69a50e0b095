package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/subcategory"
	"cardapio-admin-svc/pkg/logger"
	"cardapio-admin-svc/pkg/utils"
)

// unreachableMessage is shown when the menu API cannot be reached
const unreachableMessage = "Could not reach the menu API, check your connection"

// statusFor maps service errors to HTTP statuses
func statusFor(err error) (int, string) {
	var validation *cardapio.ValidationError
	var plan *subcategory.PlanError
	var apiErr *cardapio.APIError

	switch {
	case errors.As(err, &validation), errors.As(err, &plan):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, cardapio.ErrUnreachable):
		return http.StatusServiceUnavailable, unreachableMessage
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "The menu API did not answer in time"
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound, apiErr.Message
		}
		return http.StatusBadGateway, apiErr.Message
	default:
		return http.StatusInternalServerError, ""
	}
}

// handleError logs err and writes the matching error response
func handleError(c *gin.Context, log *logger.Logger, message string, err error) {
	status, detail := statusFor(err)
	entry := log.WithError(err).WithField("path", c.FullPath())
	if status >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Warn(message)
	}
	if detail != "" {
		message = detail
	}
	utils.ErrorResponse(c, status, message, err)
}
