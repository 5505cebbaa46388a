// Package client drives the calculator service: it runs the demonstration call
// sequence and renders each result for a person at a terminal.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/gptlocal/calculator/calculatorpb"
)

// Driver issues the demonstration calls one at a time and writes the transcript to out.
type Driver struct {
	client  pb.CalculatorServiceClient
	out     io.Writer
	timeout time.Duration
}

// NewDriver returns a driver writing to out. A positive timeout bounds each call.
func NewDriver(client pb.CalculatorServiceClient, out io.Writer, timeout time.Duration) *Driver {
	return &Driver{client: client, out: out, timeout: timeout}
}

// Run prints the banner and performs Add(10,20), Subtract(50,15), Multiply(7,8),
// Divide(100,4) and Divide(10,0) in order. The InvalidArgument failure of the last
// call is expected and printed; any other failure stops the sequence and is returned.
func (d *Driver) Run(ctx context.Context) error {
	d.println("gRPC Calculator Client")
	d.println("======================")
	d.println()

	steps := []func(context.Context) error{
		func(ctx context.Context) error { return d.Add(ctx, 10, 20) },
		func(ctx context.Context) error { return d.Subtract(ctx, 50, 15) },
		func(ctx context.Context) error { return d.Multiply(ctx, 7, 8) },
		func(ctx context.Context) error { return d.Divide(ctx, 100, 4) },
		func(ctx context.Context) error { return d.DivideByZero(ctx, 10, 0) },
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) Add(ctx context.Context, a, b int32) error {
	d.println("Testing Add operation...")
	req := &pb.AddRequest{A: a, B: b}

	ctx, cancel := d.callContext(ctx)
	defer cancel()
	resp, err := d.client.Add(ctx, req)
	if err != nil {
		return err
	}
	d.printf("  %d + %d = %d\n", req.A, req.B, resp.GetResult())
	d.println()
	return nil
}

func (d *Driver) Subtract(ctx context.Context, a, b int32) error {
	d.println("Testing Subtract operation...")
	req := &pb.SubtractRequest{A: a, B: b}

	ctx, cancel := d.callContext(ctx)
	defer cancel()
	resp, err := d.client.Subtract(ctx, req)
	if err != nil {
		return err
	}
	d.printf("  %d - %d = %d\n", req.A, req.B, resp.GetResult())
	d.println()
	return nil
}

func (d *Driver) Multiply(ctx context.Context, a, b int32) error {
	d.println("Testing Multiply operation...")
	req := &pb.MultiplyRequest{A: a, B: b}

	ctx, cancel := d.callContext(ctx)
	defer cancel()
	resp, err := d.client.Multiply(ctx, req)
	if err != nil {
		return err
	}
	d.printf("  %d * %d = %d\n", req.A, req.B, resp.GetResult())
	d.println()
	return nil
}

func (d *Driver) Divide(ctx context.Context, a, b int32) error {
	d.println("Testing Divide operation...")
	req := &pb.DivideRequest{A: a, B: b}

	ctx, cancel := d.callContext(ctx)
	defer cancel()
	resp, err := d.client.Divide(ctx, req)
	if err != nil {
		return err
	}
	d.printf("  %d / %d = %s\n", req.A, req.B, formatFloat(resp.GetResult()))
	d.println()
	return nil
}

// DivideByZero is Divide with the error path handled locally: an InvalidArgument
// status is printed and swallowed, anything else is returned.
func (d *Driver) DivideByZero(ctx context.Context, a, b int32) error {
	d.println("Testing Divide by Zero (Error Handling)...")
	req := &pb.DivideRequest{A: a, B: b}

	ctx, cancel := d.callContext(ctx)
	defer cancel()
	resp, err := d.client.Divide(ctx, req)
	if err != nil {
		st, ok := status.FromError(err)
		if !ok || st.Code() != codes.InvalidArgument {
			return err
		}
		d.printf("  Error caught: %s - %s\n", st.Code(), st.Message())
	} else {
		d.printf("  %d / %d = %s\n", req.A, req.B, formatFloat(resp.GetResult()))
	}
	d.println()
	return nil
}

// Report prints the one-line diagnostic for an error that ended the run.
func (d *Driver) Report(err error) {
	if err == nil {
		return
	}
	if st, ok := status.FromError(err); ok {
		d.printf("gRPC Error: %s - %s\n", st.Code(), st.Message())
		return
	}
	d.printf("Unexpected error: %v\n", err)
}

// WaitForAck prompts and blocks until a line (or EOF) arrives on in, or ctx is done.
func (d *Driver) WaitForAck(ctx context.Context, in io.Reader) error {
	d.println()
	d.println("Press any key to exit...")

	done := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(in).ReadString('\n')
		if errors.Is(err, io.EOF) {
			err = nil
		}
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Driver) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout > 0 {
		return context.WithTimeout(ctx, d.timeout)
	}
	return context.WithCancel(ctx)
}

func (d *Driver) println(a ...interface{}) {
	fmt.Fprintln(d.out, a...)
}

func (d *Driver) printf(format string, a ...interface{}) {
	fmt.Fprintf(d.out, format, a...)
}

// formatFloat renders the shortest representation, so 25.0 prints as 25.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
