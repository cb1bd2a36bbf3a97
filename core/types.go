package core

import (
	"math/rand/v2"
	"time"
)

// SamplePlan describes how a requested sample count is spread over the grid.
type SamplePlan struct {
	Requested        uint64
	Groups           int
	WorkersPerGroup  int
	SamplesPerWorker uint64
	ActualTotal      uint64 // SamplesPerWorker * Groups * WorkersPerGroup, never below Requested
}

// TotalWorkers returns the number of workers in the grid.
func (p SamplePlan) TotalWorkers() int {
	return p.Groups * p.WorkersPerGroup
}

// Worker is the state one kernel invocation sees. It lives for a single launch.
type Worker struct {
	ID      int // linear index in [0, TotalWorkers)
	Group   int
	Lane    int // index within the group
	Samples uint64

	seed   uint64
	stream *rand.Rand
}

// Stream returns the worker's private generator, seeded on first use from
// the run seed and the worker id.
func (w *Worker) Stream() *rand.Rand {
	if w.stream == nil {
		w.stream = NewStream(w.seed, w.ID)
	}
	return w.stream
}

// Kernel computes the local hit count of one worker.
type Kernel func(w *Worker) uint64

// Result is the outcome of one launch.
type Result struct {
	Plan        SamplePlan
	Seed        uint64
	Partials    []uint64 // one per group
	TotalHits   uint64
	ActualTotal uint64
	Elapsed     time.Duration
}

// Estimate derives the π estimate from the result.
func (r Result) Estimate() (Estimate, error) {
	return NewEstimate(r.TotalHits, r.ActualTotal)
}
