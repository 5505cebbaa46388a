package health_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/gptlocal/calculator/health"
	"github.com/gptlocal/calculator/internal/grpctest"
)

type s struct {
	grpctest.Tester
}

func Test(t *testing.T) {
	grpctest.RunSubTests(t, s{})
}

// Make sure the service implementation complies with the proto definition.
func (s) TestRegister(t *testing.T) {
	gs := grpc.NewServer()
	health.Register(gs, "calculator.CalculatorService")
	if _, ok := gs.GetServiceInfo()["grpc.health.v1.Health"]; !ok {
		t.Fatal("health service not registered")
	}
	gs.Stop()
}

func (s) TestShutdown(t *testing.T) {
	const testService = "tteesstt"

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	gs := grpc.NewServer()
	hs := health.Register(gs, testService)
	go gs.Serve(lis)
	defer gs.Stop()

	conn, err := grpc.Dial(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()
	c := healthpb.NewHealthClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	check := func(service string, want healthpb.HealthCheckResponse_ServingStatus) {
		t.Helper()
		r, err := c.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		if err != nil {
			t.Fatalf("Check(%q): %v", service, err)
		}
		if r.GetStatus() != want {
			t.Fatalf("status for %q is %v, want %v", service, r.GetStatus(), want)
		}
	}

	check("", healthpb.HealthCheckResponse_SERVING)
	check(testService, healthpb.HealthCheckResponse_SERVING)

	hs.Shutdown()
	check("", healthpb.HealthCheckResponse_NOT_SERVING)
	check(testService, healthpb.HealthCheckResponse_NOT_SERVING)

	hs.Resume()
	check(testService, healthpb.HealthCheckResponse_SERVING)
}

func TestRootHandler(t *testing.T) {
	ts := httptest.NewServer(health.RootHandler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if string(body) != health.RootMessage {
		t.Errorf("body = %q", body)
	}

	resp, err = ts.Client().Get(ts.URL + "/elsewhere")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", resp.StatusCode)
	}

	resp, err = ts.Client().Post(ts.URL+"/", "text/plain", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", resp.StatusCode)
	}
}
