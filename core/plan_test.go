package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Artfain/mcpi/core"
)

func TestNewSamplePlanCeiling(t *testing.T) {
	totals := []uint64{1, 2, 7, 255, 256, 257, 1000, 1_000_000, 1 << 30, 123_456_789}
	grids := [][2]int{{1, 1}, {1, 256}, {3, 7}, {32, 256}, {5, 100}}

	for _, total := range totals {
		for _, grid := range grids {
			plan, err := core.NewSamplePlan(total, grid[0], grid[1])
			require.NoError(t, err)

			workers := uint64(plan.TotalWorkers())
			want := (total + workers - 1) / workers * workers
			require.Equal(t, want, plan.ActualTotal, "T=%d grid=%v", total, grid)
			require.GreaterOrEqual(t, plan.ActualTotal, total)
			require.Zero(t, plan.ActualTotal%workers)
			require.Equal(t, plan.SamplesPerWorker*workers, plan.ActualTotal)
			require.Equal(t, total, plan.Requested)
		}
	}
}

func TestNewSamplePlanFewerSamplesThanWorkers(t *testing.T) {
	plan, err := core.NewSamplePlan(10, 4, 256)
	require.NoError(t, err)
	require.EqualValues(t, 1, plan.SamplesPerWorker)
	require.EqualValues(t, 1024, plan.ActualTotal)
}

func TestNewSamplePlanZeroSamples(t *testing.T) {
	plan, err := core.NewSamplePlan(0, 8, 256)
	require.NoError(t, err)
	require.Zero(t, plan.SamplesPerWorker)
	require.Zero(t, plan.ActualTotal)
}

func TestNewSamplePlanInvalid(t *testing.T) {
	_, err := core.NewSamplePlan(100, 0, 256)
	require.ErrorIs(t, err, core.ErrInvalidConfig)

	_, err = core.NewSamplePlan(100, 4, 0)
	require.ErrorIs(t, err, core.ErrInvalidConfig)

	_, err = core.NewSamplePlan(math.MaxUint64, 2, 1)
	require.ErrorIs(t, err, core.ErrInvalidConfig)
}
