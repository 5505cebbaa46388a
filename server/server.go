package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/gptlocal/calculator/calculatorpb"
	"github.com/gptlocal/calculator/config"
	"github.com/gptlocal/calculator/health"
)

// Server exposes the calculator service, the plain-text root page and /metrics on a
// single HTTP/2 cleartext endpoint.
type Server struct {
	cfg    config.ServerConfig
	logger *zap.Logger

	grpc     *grpc.Server
	health   *grpchealth.Server
	registry *prometheus.Registry
	http     *http.Server
	inflight *inflight
}

func New(cfg config.ServerConfig, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		inflight: &inflight{},
	}
	s.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	interceptors := []grpc.UnaryServerInterceptor{NewMetrics(s.registry).UnaryServerInterceptor()}
	if l := newPeerLimiter(cfg.RateLimit); l != nil {
		logger.Info("rate limiting enabled",
			zap.Float64("rps", cfg.RateLimit.RPS),
			zap.Int("burst", cfg.RateLimit.Burst))
		interceptors = append(interceptors, l.UnaryServerInterceptor())
	}
	interceptors = append(interceptors, recoveryInterceptor(logger))

	s.grpc = grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	pb.RegisterCalculatorServiceServer(s.grpc, NewCalculator(logger.Named("calculator")))
	s.health = health.Register(s.grpc, pb.CalculatorService_ServiceDesc.ServiceName)

	mux := http.NewServeMux()
	mux.Handle("/", health.RootHandler())
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	h2s := &http2.Server{IdleTimeout: cfg.IdleTimeout}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(s.route(mux), h2s),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}
	// Lets Shutdown drain HTTP/2 connections, including the hijacked h2c ones.
	if err := http2.ConfigureServer(s.http, h2s); err != nil {
		return nil, fmt.Errorf("configure http2: %w", err)
	}
	return s, nil
}

// route sends gRPC traffic to the grpc server and everything else to mux. gRPC
// requests other than health watches are counted until their status is written.
func (s *Server) route(mux http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc") {
			if r.URL.Path != healthpb.Health_Watch_FullMethodName {
				s.inflight.add(1)
				defer s.inflight.add(-1)
			}
			s.grpc.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

// Registry returns the Prometheus registry backing /metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done or serving fails, then shuts
// down gracefully. It returns nil after a requested shutdown.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info("calculator server listening", zap.Stringer("addr", lis.Addr()))

	errc := make(chan error, 1)
	var wg conc.WaitGroup
	wg.Go(func() {
		if err := s.http.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	})

	var err error
	select {
	case <-ctx.Done():
	case err = <-errc:
		s.logger.Error("serve failed", zap.Error(err))
	}
	s.shutdown()
	wg.Wait()

	s.logger.Info("calculator server stopped")
	return err
}

// shutdown marks the server NOT_SERVING, stops accepting connections, lets running
// calls finish within ShutdownTimeout and then stops the grpc server.
func (s *Server) shutdown() {
	s.health.Shutdown()

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Warn("graceful shutdown timed out, closing connections", zap.Error(err))
		_ = s.http.Close()
	}
	// h2c connections are hijacked, so http.Server.Shutdown does not wait for their
	// streams.
	if err := s.inflight.wait(ctx); err != nil {
		s.logger.Warn("in-flight requests did not finish before shutdown timeout",
			zap.Int("active", s.inflight.count()), zap.Error(err))
	}
	s.grpc.Stop()
}
