package grpclog

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/grpclog"
)

func TestUse(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Use(zap.New(core))

	grpclog.Info("channel created")
	grpclog.Warningf("transport closing: %v", "EOF")

	if got := logs.Len(); got != 2 {
		t.Fatalf("got %d records, want 2", got)
	}
	entries := logs.All()
	if entries[0].Message != "channel created" || entries[0].LoggerName != "grpc" {
		t.Errorf("first record = %q from %q", entries[0].Message, entries[0].LoggerName)
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].Message != "transport closing: EOF" {
		t.Errorf("second record = %v %q", entries[1].Level, entries[1].Message)
	}

	if !grpclog.V(0) {
		t.Error("verbosity 0 should be enabled at info level")
	}
}
