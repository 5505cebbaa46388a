// Package calculatorpb holds the wire contract of calculator.CalculatorService: the
// request and response messages and the grpc client and server bindings generated
// from api/calculator/calculator.proto.
package calculatorpb

//go:generate protoc -I .. --go_out=.. --go_opt=module=github.com/gptlocal/calculator --go-grpc_out=.. --go-grpc_opt=module=github.com/gptlocal/calculator api/calculator/calculator.proto
