package client_test

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/gptlocal/calculator/calculatorpb"
	"github.com/gptlocal/calculator/client"
	"github.com/gptlocal/calculator/config"
	"github.com/gptlocal/calculator/internal/grpctest"
	"github.com/gptlocal/calculator/server"
)

type s struct {
	grpctest.Tester
}

func Test(t *testing.T) {
	grpctest.RunSubTests(t, s{})
}

func clientConfig(addr string) config.ClientConfig {
	cfg := config.Default().Client
	cfg.Addr = addr
	cfg.CallTimeout = 10 * time.Second
	return cfg
}

func (s) TestEndToEnd(t *testing.T) {
	srv, err := server.New(config.Default().Server, nil)
	if err != nil {
		t.Fatal(err)
	}
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Serve: %v", err)
		}
	}()

	cfg := clientConfig(lis.Addr().String())
	conn, err := client.Dial(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var out bytes.Buffer
	d := client.NewDriver(pb.NewCalculatorServiceClient(conn), &out, cfg.CallTimeout)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, line := range []string{
		"  10 + 20 = 30\n",
		"  50 - 15 = 35\n",
		"  7 * 8 = 56\n",
		"  100 / 4 = 25\n",
		"  Error caught: InvalidArgument - Cannot divide by zero\n",
	} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("transcript is missing %q:\n%s", line, out.String())
		}
	}
}

func (s) TestServerUnavailable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := lis.Addr().String()
	lis.Close()

	cfg := clientConfig(addr)
	conn, err := client.Dial(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var out bytes.Buffer
	d := client.NewDriver(pb.NewCalculatorServiceClient(conn), &out, cfg.CallTimeout)
	err = d.Run(context.Background())
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("Run: err = %v, want Unavailable", err)
	}

	out.Reset()
	d.Report(err)
	if !strings.HasPrefix(out.String(), "gRPC Error: Unavailable - ") {
		t.Errorf("Report = %q", out.String())
	}
}
