package server

import "errors"

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("divide by zero")

// Add returns a+b. The int64 result cannot overflow for int32 operands.
func Add(a, b int32) int64 {
	return int64(a) + int64(b)
}

// Subtract returns a-b, exact for every pair of int32 operands.
func Subtract(a, b int32) int64 {
	return int64(a) - int64(b)
}

// Multiply returns a*b. The largest magnitude, MinInt32*MinInt32, is 2^62.
func Multiply(a, b int32) int64 {
	return int64(a) * int64(b)
}

// Divide promotes both operands to float64 before dividing so fractional
// quotients survive.
func Divide(a, b int32) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return float64(a) / float64(b), nil
}
