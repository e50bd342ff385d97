package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MMN3003/loopmint/src/cli"
	"github.com/MMN3003/loopmint/src/config"
	"github.com/MMN3003/loopmint/src/logger"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.New("dev", false).Fatalf("Failed to load config: %v", err)
	}
	logg := logger.New(cfg.Env, cfg.Verbose)

	// --- Cancellation on SIGINT/SIGTERM ---
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// --- Run ---
	root := cli.NewRootCmd(cli.NewApp(cfg, logg))
	if err := root.ExecuteContext(ctx); err != nil {
		logg.Errorf("loopmint failed: %v", err)
		stop()
		os.Exit(1)
	}
	stop()
}
