package server

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/gptlocal/calculator/calculatorpb"
)

// DivideByZeroMessage is the status detail sent for a zero divisor.
const DivideByZeroMessage = "Cannot divide by zero"

// Calculator implements calculator.CalculatorService. It holds no state besides its
// logger and is safe for concurrent use.
type Calculator struct {
	pb.UnimplementedCalculatorServiceServer

	logger *zap.Logger
}

func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

func (c *Calculator) Add(_ context.Context, req *pb.AddRequest) (*pb.AddResponse, error) {
	c.logger.Info("Add operation requested", zap.Int32("a", req.GetA()), zap.Int32("b", req.GetB()))

	result := Add(req.GetA(), req.GetB())
	c.logger.Info("Add result", zap.Int64("result", result))

	return &pb.AddResponse{Result: result}, nil
}

func (c *Calculator) Subtract(_ context.Context, req *pb.SubtractRequest) (*pb.SubtractResponse, error) {
	c.logger.Info("Subtract operation requested", zap.Int32("a", req.GetA()), zap.Int32("b", req.GetB()))

	result := Subtract(req.GetA(), req.GetB())
	c.logger.Info("Subtract result", zap.Int64("result", result))

	return &pb.SubtractResponse{Result: result}, nil
}

func (c *Calculator) Multiply(_ context.Context, req *pb.MultiplyRequest) (*pb.MultiplyResponse, error) {
	c.logger.Info("Multiply operation requested", zap.Int32("a", req.GetA()), zap.Int32("b", req.GetB()))

	result := Multiply(req.GetA(), req.GetB())
	c.logger.Info("Multiply result", zap.Int64("result", result))

	return &pb.MultiplyResponse{Result: result}, nil
}

func (c *Calculator) Divide(_ context.Context, req *pb.DivideRequest) (*pb.DivideResponse, error) {
	c.logger.Info("Divide operation requested", zap.Int32("a", req.GetA()), zap.Int32("b", req.GetB()))

	result, err := Divide(req.GetA(), req.GetB())
	if errors.Is(err, ErrDivideByZero) {
		c.logger.Warn("Division by zero attempted", zap.Int32("a", req.GetA()))
		return nil, status.Error(codes.InvalidArgument, DivideByZeroMessage)
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	c.logger.Info("Divide result", zap.Float64("result", result))

	return &pb.DivideResponse{Result: result}, nil
}
