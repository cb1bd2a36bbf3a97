package core

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ConvergencePoint summarises repeated runs at one sample size.
type ConvergencePoint struct {
	Samples        uint64 // actual samples per run
	Runs           int
	MeanAbsError   float64
	StdDevAbsError float64
}

// Convergence launches runs independent grids for every requested size and
// reports how the absolute error of the estimate behaves. Each run gets its
// own seed derived from the engine seed.
func (e *Engine) Convergence(sizes []uint64, runs int) ([]ConvergencePoint, error) {
	if runs < 1 {
		return nil, fmt.Errorf("%w: %d runs", ErrInvalidConfig, runs)
	}
	base := e.cfg.Seed
	if base == 0 {
		base = SeedFromClock()
	}

	points := make([]ConvergencePoint, 0, len(sizes))
	for i, size := range sizes {
		plan, err := e.Plan(size)
		if err != nil {
			return nil, fmt.Errorf("failed to plan %d samples: %w", size, err)
		}
		errs := make([]float64, runs)
		for r := 0; r < runs; r++ {
			seed := splitmix64(base + uint64(i*runs+r))
			res, err := e.launch(plan, MonteCarloKernel, seed)
			if err != nil {
				return nil, err
			}
			est, err := res.Estimate()
			if err != nil {
				return nil, fmt.Errorf("failed to estimate %d samples: %w", size, err)
			}
			errs[r] = est.AbsError
		}
		point := ConvergencePoint{
			Samples:      plan.ActualTotal,
			Runs:         runs,
			MeanAbsError: stat.Mean(errs, nil),
		}
		if runs > 1 {
			point.StdDevAbsError = stat.StdDev(errs, nil)
		}
		points = append(points, point)
	}
	return points, nil
}
