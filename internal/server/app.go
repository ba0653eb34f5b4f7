// Package server wires the sandbox API: configuration, logging, one account
// service per kind and the HTTP server, with graceful shutdown on signals.
package server

import (
	"context"
	"fmt"

	"github.com/dayadevraha/devraha/internal/logging"
	"github.com/dayadevraha/devraha/internal/server/accounts"
	"github.com/dayadevraha/devraha/internal/server/api"
	"github.com/dayadevraha/devraha/internal/server/config"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *api.Server
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	mailer, err := accounts.NewMailer(c.ResendAPIKey, c.MailFrom, c.AppBaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("mailer init error: %w", err)
	}

	otp := accounts.NewTOTPProvider("DAYA Devraha")
	services := make([]*accounts.Service, 0, len(accounts.Kinds))
	for _, kind := range accounts.Kinds {
		services = append(services, accounts.NewService(
			kind,
			accounts.NewMemoryRepository(),
			accounts.NewMemoryTokenRepository(),
			mailer,
			otp,
			logger,
			accounts.Options{
				SecretKey:         c.SecretKey,
				SessionTTL:        c.SessionTTL,
				TokenTTL:          c.TokenTTL,
				EmergencyContacts: kind == accounts.KindUser,
				ProfileEdits:      kind == accounts.KindAdmin,
			},
		))
	}

	return &App{
		config: c,
		logger: logger,
		server: api.NewServer(c.EndpointAddr, logger, c.SecureCookies, services...),
	}, nil
}

// Run serves until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	app.logger.Info(ctx, "Stopped")
	return nil
}
