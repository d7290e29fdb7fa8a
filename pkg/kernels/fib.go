// Package kernels holds the built-in benchmark workloads: small,
// self-contained functions with well-known answers and stable work
// profiles.
package kernels

// Fib returns the nth Fibonacci number, with Fib(0) = 0 and
// Fib(1) = 1. It recurses naively on purpose: the exponential call
// tree is the workload. Do not memoize.
func Fib(n int) int {
	if n <= 1 {
		return n
	}
	return Fib(n-2) + Fib(n-1)
}
