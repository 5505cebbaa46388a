package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	pb "github.com/gptlocal/calculator/calculatorpb"
	"github.com/gptlocal/calculator/client"
	"github.com/gptlocal/calculator/config"
	"github.com/gptlocal/calculator/grpclog"
	"github.com/gptlocal/calculator/internal/logging"
)

var (
	configPath = flag.String("config", "", "path to a calculator.yaml (optional)")
	addr       = flag.String("addr", "", "the address to connect to, overrides the config file")
	noWait     = flag.Bool("no-wait", false, "exit without waiting for a key press")
	logLevel   = flag.String("log-level", "", "client log level, overrides the config file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calculator client: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Client.Addr = *addr
	}
	if *noWait {
		cfg.Client.WaitForAck = false
	}
	if *logLevel != "" {
		cfg.Client.LogLevel = *logLevel
	}

	logger, err := logging.New(cfg.ClientLog())
	if err != nil {
		fmt.Fprintf(os.Stderr, "calculator client: %v\n", err)
		os.Exit(1)
	}
	grpclog.Use(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, cfg.Client, logger)
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.ClientConfig, logger *zap.Logger) int {
	conn, err := client.Dial(cfg)
	if err != nil {
		logger.Error("did not connect", zap.Error(err))
		return 1
	}
	defer conn.Close()

	d := client.NewDriver(pb.NewCalculatorServiceClient(conn), os.Stdout, cfg.CallTimeout)

	code := 0
	if err := d.Run(ctx); err != nil {
		d.Report(err)
		code = 1
	}

	if cfg.WaitForAck {
		if err := d.WaitForAck(ctx, os.Stdin); err != nil {
			logger.Warn("no acknowledgment", zap.Error(err))
		}
	}
	return code
}
