package apperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewRepositoryWrap("failed to fetch events", cause)

	assert.Equal(t, "failed to fetch events: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	var re *RepositoryError
	require.ErrorAs(t, error(err), &re)
	assert.Equal(t, "failed to fetch events", re.Message)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	var pe *ParseError
	var de *DomainError

	err := NewDomain("Event not found")
	assert.False(t, errors.As(error(err), &pe))
	assert.True(t, errors.As(error(err), &de))

	assert.Equal(t, "Event not found", err.Error())
	assert.Nil(t, err.Unwrap())
}

func handle(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/run", nil), rec)
	GlobalErrorHandler()(err, c)
	return rec
}

func TestGlobalErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"parse error", NewParse("unexpected token"), http.StatusBadRequest, "unexpected token"},
		{"domain error", NewDomain("Booking not found"), http.StatusUnprocessableEntity, "Booking not found"},
		{"repository error", NewRepositoryWrap("failed to fetch", errors.New("boom")), http.StatusBadGateway, "operation failed"},
		{"echo error", echo.NewHTTPError(http.StatusNotFound, "no route"), http.StatusNotFound, "no route"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handle(t, tt.err)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestGlobalErrorHandler_WrappedErrorsUnwrap(t *testing.T) {
	// Handlers often wrap before returning; the kind mapping wins over
	// the outer HTTPError because errors.As unwraps through Internal.
	wrapped := echo.NewHTTPError(http.StatusInternalServerError).
		SetInternal(NewDomain("Cannot pay for booking in pending status"))

	rec := handle(t, wrapped)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cannot pay for booking in pending status")
}
