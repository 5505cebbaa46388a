// Package grpclog routes grpc-go's internal logging into zap.
package grpclog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapgrpc"
	"google.golang.org/grpc/grpclog"
)

// Use installs logger as grpc's LoggerV2. grpc records are tagged with the "grpc"
// logger name. Call it before any grpc server or client is created; grpc does not
// guard the swap.
func Use(logger *zap.Logger) {
	grpclog.SetLoggerV2(zapgrpc.NewLogger(logger.Named("grpc")))
}

