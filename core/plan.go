package core

import (
	"fmt"
	"math/bits"
)

// NewSamplePlan spreads requested samples over groups*workersPerGroup workers
// by ceiling division, so the actual total never undercounts the request.
func NewSamplePlan(requested uint64, groups, workersPerGroup int) (SamplePlan, error) {
	if groups < 1 {
		return SamplePlan{}, fmt.Errorf("%w: %d worker groups", ErrInvalidConfig, groups)
	}
	if workersPerGroup < 1 {
		return SamplePlan{}, fmt.Errorf("%w: %d workers per group", ErrInvalidConfig, workersPerGroup)
	}

	hi, workers := bits.Mul64(uint64(groups), uint64(workersPerGroup))
	if hi != 0 {
		return SamplePlan{}, fmt.Errorf("%w: grid of %d x %d workers overflows", ErrInvalidConfig, groups, workersPerGroup)
	}

	perWorker := requested / workers
	if requested%workers != 0 {
		perWorker++
	}
	hi, actual := bits.Mul64(perWorker, workers)
	if hi != 0 {
		return SamplePlan{}, fmt.Errorf("%w: %d samples over %d workers overflows", ErrInvalidConfig, requested, workers)
	}

	return SamplePlan{
		Requested:        requested,
		Groups:           groups,
		WorkersPerGroup:  workersPerGroup,
		SamplesPerWorker: perWorker,
		ActualTotal:      actual,
	}, nil
}
