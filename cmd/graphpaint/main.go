package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"graphpaint/internal/app"
	"graphpaint/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		log, _ := logger.New("error")
		log.Error("graphpaint failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}
