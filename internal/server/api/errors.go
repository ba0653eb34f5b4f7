package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dayadevraha/devraha/internal/common"
	"github.com/dayadevraha/devraha/internal/logging"
)

// errorResponse is the error envelope the client reads.
type errorResponse struct {
	Message string `json:"message"`
}

// knownErrors maps service errors to deterministic answers. Order matters:
// the first match wins.
var knownErrors = []struct {
	err  error
	code int
	msg  string
}{
	{common.ErrorAlreadyExists, http.StatusConflict, "Email already registered"},
	{common.ErrorUnauthorized, http.StatusUnauthorized, "Not authenticated"},
	{common.ErrTokenExpired, http.StatusUnauthorized, "Session expired"},
	{common.ErrInvalidToken, http.StatusBadRequest, "Invalid or expired token"},
	{common.ErrInvalidOTP, http.StatusBadRequest, "Invalid or expired OTP"},
	{common.ErrUnsupportedField, http.StatusBadRequest, "Some fields cannot be changed for this account"},
	{common.ErrorNotFound, http.StatusNotFound, "Account not found"},
	{context.Canceled, http.StatusServiceUnavailable, "Request cancelled"},
}

func lookupError(err error) (int, string, bool) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			return he.Code, m, true
		}
		return he.Code, fmt.Sprintf("%v", he.Message), true
	}
	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return k.code, k.msg, true
		}
	}
	return http.StatusInternalServerError, "Internal server error", false
}

// statusOf is the status newHTTPErrorHandler will answer err with.
func statusOf(err error) int {
	code, _, _ := lookupError(err)
	return code
}

// newHTTPErrorHandler maps known errors to their status codes, logs the
// unexpected ones and renders {"message": "..."}.
func newHTTPErrorHandler(logger logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, known := lookupError(err)
		if !known {
			logger.Error(c.Request().Context(), "unhandled error",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Path())
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}
