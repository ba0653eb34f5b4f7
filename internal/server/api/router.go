package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dayadevraha/devraha/internal/logging"
	"github.com/dayadevraha/devraha/internal/server/accounts"
)

// BasePath prefixes every account route.
const BasePath = "/api/v1"

// newRouter builds the Echo instance with every route registered. Each
// service serves the routes under BasePath/<its kind>.
func newRouter(logger logging.Logger, secureCookies bool, services ...*accounts.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			args := []any{
				"status", v.Status,
				"method", v.Method,
				"uri", v.URI,
				"ip", v.RemoteIP,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.Warn(c.Request().Context(), "request", append(args, "error", v.Error.Error())...)
				return nil
			}
			logger.Info(c.Request().Context(), "request", args...)
			return nil
		},
	}))

	// --- Probes and metrics (no auth) ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, response{Message: "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Account routes, one group per kind ---
	for _, svc := range services {
		h := &handler{svc: svc, secureCookies: secureCookies}
		g := e.Group(BasePath+"/"+svc.Kind(), instrument(svc.Kind()))

		g.POST("/register", h.register)
		g.POST("/login", h.login)
		g.POST("/verify-otp", h.verifyOTP)
		g.POST("/logout", h.logout)
		g.GET("/verify-email", h.verifyEmail)
		g.POST("/resend-verification", h.resendVerification)
		g.POST("/forgot-password", h.forgotPassword)
		g.POST("/reset-password", h.resetPassword)

		g.GET("/validate-token", h.validateToken, h.requireSession)
		g.GET("/profile", h.profile, h.requireSession)
		g.PUT("/update-profile", h.updateProfile, h.requireSession)
		g.DELETE("/delete-account", h.deleteAccount, h.requireSession)
		g.POST("/enable-two-factor", h.enableTwoFactor, h.requireSession)
		g.POST("/disable-two-factor", h.disableTwoFactor, h.requireSession)
		g.GET("/verification-status", h.verificationStatus, h.requireSession)
	}

	return e
}
