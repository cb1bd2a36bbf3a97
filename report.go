package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/Artfain/mcpi/core"
)

// printReport writes the human-readable run summary, one value per line.
func printReport(w io.Writer, device string, res core.Result) error {
	plan := res.Plan
	lines := []string{
		fmt.Sprintf("Device: %s", device),
		fmt.Sprintf("Worker groups: %d", plan.Groups),
		fmt.Sprintf("Workers per group: %d", plan.WorkersPerGroup),
		fmt.Sprintf("Samples per worker: %d", plan.SamplesPerWorker),
		fmt.Sprintf("Requested samples: %d", plan.Requested),
		fmt.Sprintf("Actual samples: %d", res.ActualTotal),
		fmt.Sprintf("Samples in circle: %d", res.TotalHits),
		fmt.Sprintf("Elapsed: %s", res.Elapsed),
	}

	est, err := res.Estimate()
	switch {
	case errors.Is(err, core.ErrUndefinedEstimate):
		lines = append(lines,
			"Estimated pi: undefined (no samples drawn)",
			fmt.Sprintf("Reference pi: %.15f", math.Pi),
			"Absolute error: undefined",
		)
	case err != nil:
		return err
	default:
		lines = append(lines,
			fmt.Sprintf("Estimated pi: %.15f", est.Pi),
			fmt.Sprintf("Reference pi: %.15f", est.Reference),
			fmt.Sprintf("Absolute error: %.15f", est.AbsError),
		)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
