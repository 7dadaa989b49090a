package main

import (
	"context"
	"log"

	"voiceorder-server/internal/bootstrap"
	"voiceorder-server/internal/config"
	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Error(ctx, "shutdown failed", err)
	}
}
