package core

import (
	"math/rand/v2"
	"time"
)

// Inside reports whether (x, y) lies in the unit quarter circle.
// Points exactly on the arc count as inside.
func Inside(x, y float64) bool {
	return x*x+y*y <= 1
}

// Sample draws n points from rng and returns how many fall inside the quarter circle.
func Sample(rng *rand.Rand, n uint64) uint64 {
	inside := uint64(0)
	for i := uint64(0); i < n; i++ {
		x := rng.Float64()
		y := rng.Float64()
		if Inside(x, y) {
			inside++
		}
	}
	return inside
}

// MonteCarloKernel samples w.Samples points from the worker's private stream.
func MonteCarloKernel(w *Worker) uint64 {
	return Sample(w.Stream(), w.Samples)
}

// NewStream returns the generator for one worker. The PCG state is expanded
// from seed and workerID with splitmix64, so distinct ids never share a state.
func NewStream(seed uint64, workerID int) *rand.Rand {
	x := seed ^ (uint64(workerID) * 0x9e3779b97f4a7c15)
	hi := splitmix64(x)
	lo := splitmix64(hi ^ 0xda942042e4dd58b5)
	return rand.New(rand.NewPCG(hi, lo))
}

// SeedFromClock derives a run seed from the wall clock.
func SeedFromClock() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
