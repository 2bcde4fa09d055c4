package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"vetpost/backend/internal/logger"
	"vetpost/backend/internal/service"
)

const (
	msgMethodNotAllowed = "Método não permitido"
	msgInvalidAction    = "Ação inválida."
	msgInvalidBody      = "Corpo da requisição inválido."
	msgInternal         = "Erro interno do servidor."
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps a service error to its status code. Validation and
// configuration messages are safe to show; upstream failures are logged and
// reported with the provider-facing summary only.
func writeServiceError(c echo.Context, err error) (int, error) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest, Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMisconfigured):
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "config", "result", "failed", "error", err)
		return http.StatusInternalServerError, Error(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, service.ErrUpstream):
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "upstream", "result", "failed", "error", err)
		return http.StatusInternalServerError, Error(c, http.StatusInternalServerError, upstreamMessage(err))
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "server", "result", "failed", "error", err)
		return http.StatusInternalServerError, Error(c, http.StatusInternalServerError, msgInternal)
	}
}

func upstreamMessage(err error) string {
	var upErr *service.UpstreamError
	if errors.As(err, &upErr) && upErr.Raw != "" {
		return "Resposta inválida do provedor " + upErr.Upstream + "."
	}
	if errors.As(err, &upErr) {
		return "Falha ao comunicar com o provedor " + upErr.Upstream + "."
	}
	return msgInternal
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
