package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"kiadmin_backend/internals/commands"
	"kiadmin_backend/internals/helpers/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		logger.L().Error("❌ gagal", "err", err)
		logger.L().Sync()
		os.Exit(1)
	}
	logger.L().Sync()
}
