package benchutil

// Shared constants for benchmarks across packages.

// BenchmarkSeed is the default seed for reproducible randomized tests.
const BenchmarkSeed = 42

// SieveSizes are the standard sieve bounds for quick benchmark runs.
var SieveSizes = []int{1000, 10000, 100000}

// SieveScalingSizes are larger sieve bounds for scaling benchmarks.
// Used with MICROBENCH_LONG_BENCH=1.
var SieveScalingSizes = []int{100000, 1000000, 10000000}

// FibInputs are the standard Fibonacci inputs for quick benchmark runs.
var FibInputs = []int{10, 15, 20}

// FibScalingInputs are deeper recursion inputs for scaling benchmarks.
// Used with MICROBENCH_LONG_BENCH=1.
var FibScalingInputs = []int{25, 30}
