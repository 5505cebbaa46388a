package server

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/gptlocal/calculator/calculatorpb"
)

func newObservedCalculator() (*Calculator, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewCalculator(zap.New(core)), logs
}

func TestCalculatorScenarios(t *testing.T) {
	c, logs := newObservedCalculator()
	ctx := context.Background()

	add, err := c.Add(ctx, &pb.AddRequest{A: 10, B: 20})
	if err != nil || add.GetResult() != 30 {
		t.Errorf("Add(10, 20) = %v, %v; want 30", add, err)
	}
	sub, err := c.Subtract(ctx, &pb.SubtractRequest{A: 50, B: 15})
	if err != nil || sub.GetResult() != 35 {
		t.Errorf("Subtract(50, 15) = %v, %v; want 35", sub, err)
	}
	mul, err := c.Multiply(ctx, &pb.MultiplyRequest{A: 7, B: 8})
	if err != nil || mul.GetResult() != 56 {
		t.Errorf("Multiply(7, 8) = %v, %v; want 56", mul, err)
	}
	div, err := c.Divide(ctx, &pb.DivideRequest{A: 100, B: 4})
	if err != nil || div.GetResult() != 25.0 {
		t.Errorf("Divide(100, 4) = %v, %v; want 25", div, err)
	}

	// one record on receipt and one on completion per call
	if got := logs.Len(); got != 8 {
		t.Fatalf("got %d log records, want 8", got)
	}
	for _, e := range logs.All() {
		if e.Level != zapcore.InfoLevel {
			t.Errorf("record %q at %v, want info", e.Message, e.Level)
		}
	}
	if got := logs.FilterMessage("Add operation requested").FilterField(zap.Int32("a", 10)).Len(); got != 1 {
		t.Errorf("missing Add receipt record with operands")
	}
	if got := logs.FilterMessage("Divide result").FilterField(zap.Float64("result", 25)).Len(); got != 1 {
		t.Errorf("missing Divide result record")
	}
}

func TestCalculatorDivideByZero(t *testing.T) {
	c, logs := newObservedCalculator()

	resp, err := c.Divide(context.Background(), &pb.DivideRequest{A: 10, B: 0})
	if resp != nil {
		t.Errorf("got response %v, want none", resp)
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error %v is not a status", err)
	}
	if st.Code() != codes.InvalidArgument || st.Message() != "Cannot divide by zero" {
		t.Errorf("got %v - %q, want InvalidArgument - Cannot divide by zero", st.Code(), st.Message())
	}

	if got := logs.Len(); got != 2 {
		t.Fatalf("got %d log records, want 2", got)
	}
	if e := logs.All()[1]; e.Level != zapcore.WarnLevel || e.Message != "Division by zero attempted" {
		t.Errorf("second record = %v %q, want warning", e.Level, e.Message)
	}
	if logs.FilterMessage("Divide result").Len() != 0 {
		t.Error("divide by zero must not log a result")
	}
}

func TestCalculatorIdempotent(t *testing.T) {
	c := NewCalculator(nil)
	ctx := context.Background()
	req := &pb.MultiplyRequest{A: -12345, B: 6789}

	first, err := c.Multiply(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := c.Multiply(ctx, req)
		if err != nil {
			t.Fatal(err)
		}
		if again.GetResult() != first.GetResult() {
			t.Fatalf("call %d returned %d, first returned %d", i, again.GetResult(), first.GetResult())
		}
	}
}
