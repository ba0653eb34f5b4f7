package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dayadevraha/devraha/internal/common"
	"github.com/dayadevraha/devraha/internal/server/accounts"
	"github.com/dayadevraha/devraha/internal/server/metrics"
)

const accountKey = "account"

// requireSession resolves the kind's session cookie to an account and
// stores it under accountKey.
func (h *handler) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(h.cookieName())
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
		}

		a, err := h.svc.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
			}
			if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrorUnauthorized) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
			return err
		}

		c.Set(accountKey, a)
		return next(c)
	}
}

func currentAccount(c echo.Context) (*accounts.Account, error) {
	a, ok := c.Get(accountKey).(*accounts.Account)
	if !ok || a == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return a, nil
}

// instrument records AuthRequestsTotal and AuthRequestDuration for kind.
// The status of a failed handler is resolved the way the error handler
// will resolve it.
func instrument(kind string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			endpoint := c.Path()
			if i := strings.LastIndex(endpoint, "/"); i >= 0 {
				endpoint = endpoint[i+1:]
			}

			status := c.Response().Status
			if err != nil {
				status = statusOf(err)
			}
			metrics.AuthRequestsTotal.WithLabelValues(kind, endpoint, metrics.Outcome(status)).Inc()
			metrics.AuthRequestDuration.WithLabelValues(kind, endpoint).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
