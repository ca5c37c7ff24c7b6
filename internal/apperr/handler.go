package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler maps interpreter error kinds onto HTTP responses.
// Parse and domain errors are the caller's fault; repository failures
// and anything unknown are server-side.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var pe *ParseError
		if errors.As(err, &pe) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": pe.Message, "title": "syntax error"})
			return
		}

		var de *DomainError
		if errors.As(err, &de) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": de.Message, "title": "domain error"})
			return
		}

		var re *RepositoryError
		if errors.As(err, &re) {
			slog.Error("repository failure", "error", re)
			_ = c.JSON(http.StatusBadGateway, map[string]string{"error": "operation failed"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
