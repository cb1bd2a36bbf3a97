package core

import (
	"fmt"
	"math"
)

// Estimate is a π estimate together with its error against math.Pi.
type Estimate struct {
	Pi        float64
	Reference float64
	AbsError  float64
}

// NewEstimate computes 4*hits/samples. It fails with ErrUndefinedEstimate
// when no samples were drawn.
func NewEstimate(hits, samples uint64) (Estimate, error) {
	if samples == 0 {
		return Estimate{}, ErrUndefinedEstimate
	}
	if hits > samples {
		return Estimate{}, fmt.Errorf("%d hits exceed %d samples", hits, samples)
	}
	pi := 4 * float64(hits) / float64(samples)
	return Estimate{
		Pi:        pi,
		Reference: math.Pi,
		AbsError:  math.Abs(pi - math.Pi),
	}, nil
}
