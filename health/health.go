// Package health serves the calculator's liveness signals: a plain-text page on the
// HTTP root path and the standard grpc.health.v1.Health service.
package health

import (
	"fmt"
	"net/http"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const RootMessage = "gRPC Calculator Server is running! Use a gRPC client to connect."

// RootHandler answers "/" with RootMessage and 404s everything else.
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, RootMessage)
	})
}

// Register adds a health server to s and marks the overall status and each of
// services as SERVING. Call Shutdown on the result when the server starts draining.
func Register(s grpc.ServiceRegistrar, services ...string) *grpchealth.Server {
	hs := grpchealth.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	for _, service := range services {
		hs.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)
	}
	return hs
}
