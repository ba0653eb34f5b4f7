package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dayadevraha/devraha/internal/buildinfo"
	"github.com/dayadevraha/devraha/internal/logging"
	"github.com/dayadevraha/devraha/internal/server"
	"github.com/dayadevraha/devraha/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Backend: cfg.LogBackend,
		Pretty:  cfg.LogPretty,
		Output:  os.Stdout,
	})

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
