package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/UDAY704467/ai-career-guidance/internal/buildinfo"
	"github.com/UDAY704467/ai-career-guidance/internal/cli"
	"github.com/UDAY704467/ai-career-guidance/internal/config"
	"github.com/UDAY704467/ai-career-guidance/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
