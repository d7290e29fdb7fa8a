package cli

import (
	"github.com/eunmann/microbench/pkg/bench"
	"github.com/eunmann/microbench/pkg/kernels"
)

// sink keeps kernel calls from being optimized away.
var sink int

// section is a group of benchmark targets enabled by one argument token.
type section struct {
	Token   string
	Targets []bench.Target
}

// builtinSections returns the benchmark suite. Slice order is report
// order, regardless of the order tokens appear in the arguments. The
// fib targets use the default iteration count; the primes target runs
// fewer iterations because a single call already takes milliseconds.
func builtinSections() []section {
	return []section{
		{
			Token: "fib",
			Targets: []bench.Target{
				{Label: "fib(15)", Fn: func() { sink = kernels.Fib(15) }},
				{Label: "fib(20)", Fn: func() { sink = kernels.Fib(20) }},
			},
		},
		{
			Token: "primes",
			Targets: []bench.Target{
				{Label: "primes(1000000)", N: 100, Fn: func() { sink = kernels.CountPrimes(1000000) }},
			},
		},
	}
}

// knownTokens lists the tokens builtinSections responds to.
func knownTokens() []string {
	secs := builtinSections()
	tokens := make([]string, len(secs))
	for i, s := range secs {
		tokens[i] = s.Token
	}
	return tokens
}
