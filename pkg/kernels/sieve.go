package kernels

// CountPrimes returns the number of primes in [2, maxNumber], counted
// with a sieve of Eratosthenes over a dense boolean mask. Each prime p
// clears its multiples starting at 2*p; marking runs over the full
// range rather than stopping at sqrt(maxNumber), so the memory-walk
// pattern stays part of the workload. Do not shortcut it.
//
// maxNumber below 2 yields 0.
func CountPrimes(maxNumber int) int {
	if maxNumber < 2 {
		return 0
	}

	primeMask := make([]bool, maxNumber+1)
	for i := range primeMask {
		primeMask[i] = true
	}
	primeMask[0] = false
	primeMask[1] = false

	totalPrimesFound := 0
	for p := 2; p <= maxNumber; p++ {
		if !primeMask[p] {
			continue
		}
		totalPrimesFound++
		for i := 2 * p; i <= maxNumber; i += p {
			primeMask[i] = false
		}
	}
	return totalPrimesFound
}
