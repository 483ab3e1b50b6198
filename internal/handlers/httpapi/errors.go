package httpapi

import (
	"errors"
	"net/http"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/mint"
	"github.com/gabapcia/photonscan/internal/pkg/logger"
	"github.com/gabapcia/photonscan/internal/pkg/validator"
	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txlookup"
	"github.com/gabapcia/photonscan/internal/wallet"

	"github.com/labstack/echo/v4"
)

// ErrInvalidParameter is returned for malformed query or body parameters.
var ErrInvalidParameter = errors.New("invalid parameter")

var statusByError = []struct {
	err  error
	code int
}{
	{ErrInvalidParameter, http.StatusBadRequest},
	{validator.ErrValidationFailed, http.StatusBadRequest},
	{chain.ErrInvalidAddress, http.StatusBadRequest},
	{txlookup.ErrInvalidHash, http.StatusBadRequest},
	{txlookup.ErrTransactionNotFound, http.StatusNotFound},
	{chain.ErrNotFound, http.StatusNotFound},
	{wallet.ErrConnectInProgress, http.StatusConflict},
	{mint.ErrSequenceMismatch, http.StatusConflict},
	{mint.ErrInsufficientFunds, http.StatusUnprocessableEntity},
	{mint.ErrZeroSupply, http.StatusServiceUnavailable},
	{txfeed.ErrChainUnavailable, http.StatusServiceUnavailable},
}

// statusCode maps a service error to the HTTP status it is reported with.
func statusCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	for _, entry := range statusByError {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}
	return http.StatusInternalServerError
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			he = &echo.HTTPError{
				Code:     statusCode(err),
				Message:  err.Error(),
				Internal: err,
			}
		}

		if he.Code >= http.StatusInternalServerError {
			logger.Error(c.Request().Context(), "request failed", "error", err, "http.status", he.Code)
		}

		e.DefaultHTTPErrorHandler(he, c)
	}
}
