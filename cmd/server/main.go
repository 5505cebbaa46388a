package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gptlocal/calculator/config"
	"github.com/gptlocal/calculator/grpclog"
	"github.com/gptlocal/calculator/internal/logging"
	"github.com/gptlocal/calculator/server"
)

var (
	configPath = flag.String("config", "", "path to a calculator.yaml (optional)")
	addr       = flag.String("addr", "", "listen address, overrides the config file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calculator server: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calculator server: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	grpclog.Use(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg.Server, logger)
	if err != nil {
		logger.Fatal("failed to initialize", zap.Error(err))
	}

	logger.Info("starting gRPC calculator server",
		zap.String("addr", cfg.Server.Addr),
		zap.String("stop", "press Ctrl+C to stop the server"))
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
