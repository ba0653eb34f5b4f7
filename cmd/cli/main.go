package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dayadevraha/devraha/internal/buildinfo"
	"github.com/dayadevraha/devraha/internal/client/cli"
	"github.com/dayadevraha/devraha/internal/client/config"
	"github.com/dayadevraha/devraha/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Backend: cfg.LogBackend,
		Pretty:  cfg.LogPretty,
	})

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
