package stress

import (
	"context"
	"math"
)

// sqrtChunk is how many square roots a sqrt worker accumulates between stop
// checks, one outer repetition of the workload.
const sqrtChunk = 100_000_000

// primeChunk is how many candidates a prime worker tests between stop
// checks. Trial division gets slower as the candidates grow, so the chunk is
// much smaller than sqrtChunk.
const primeChunk = 1 << 16

// IsPrime reports whether n is prime, by trial division up to the square
// root with the 6k±1 stride.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// sqrtLoad keeps one core busy accumulating square roots of successive
// integers. It runs until ctx is cancelled, checking once per chunk; with a
// background context it runs until the process exits.
func sqrtLoad(ctx context.Context) {
	var result float64
	for {
		for i := 0; i < sqrtChunk; i++ {
			result += math.Sqrt(float64(i))
		}
		select {
		case <-ctx.Done():
			_ = result
			return
		default:
		}
	}
}

// primeLoad keeps one core busy testing successive integers for primality.
// Results are discarded; only the cycles matter.
func primeLoad(ctx context.Context) {
	num := uint64(2)
	for {
		for i := 0; i < primeChunk; i++ {
			IsPrime(num)
			num++
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
