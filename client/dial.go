package client

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/gptlocal/calculator/config"
)

// DialOptions turns cfg into grpc dial options: plaintext HTTP/2, keepalive pings only
// while calls are in flight, and capped reconnect backoff.
func DialOptions(cfg config.ClientConfig) []grpc.DialOption {
	bc := backoff.DefaultConfig
	if cfg.MaxBackoff > 0 {
		bc.MaxDelay = cfg.MaxBackoff
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{Backoff: bc}),
	}
	if cfg.KeepaliveTime > 0 {
		opts = append(opts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                cfg.KeepaliveTime,
			Timeout:             cfg.KeepaliveTimeout,
			PermitWithoutStream: false,
		}))
	}
	return opts
}

// Dial creates a client connection to cfg.Addr. It does not wait for the server; an
// unreachable server shows up as Unavailable on the first call.
func Dial(cfg config.ClientConfig, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	conn, err := grpc.Dial(cfg.Addr, append(DialOptions(cfg), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.Addr, err)
	}
	return conn, nil
}
