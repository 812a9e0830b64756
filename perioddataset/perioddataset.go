// Package perioddataset represents univariate series observed at a fixed
// integer period spacing, e.g. one observation per year.
package perioddataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoData             = errors.New("no observation data")
	ErrNonMontonic        = errors.New("period feature is not monotonically increasing")
	ErrIrregularSpacing   = errors.New("period feature does not have a fixed spacing")
	ErrDatasetLenMismatch = errors.New("period feature has a different length than observations")
	ErrNonFiniteValue     = errors.New("observation data contains a non-finite value")
)

// PeriodDataset represents a series storing a slice of integer periods and
// values. Both must be of the same length and periods must increase by a
// fixed step.
type PeriodDataset struct {
	P []int
	Y []float64
}

// NewUnivariateDataset returns an instance of a PeriodDataset given a period and value slice.
func NewUnivariateDataset(p []int, y []float64) (*PeriodDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoData
	}
	if len(p) != len(y) {
		return nil, fmt.Errorf(
			"period feature has length of %d, but values has a length of %d, %w",
			len(p), len(y), ErrDatasetLenMismatch,
		)
	}

	for i := 1; i < len(p); i++ {
		if p[i] <= p[i-1] {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMontonic)
		}
	}
	if len(p) > 2 {
		step := p[1] - p[0]
		for i := 2; i < len(p); i++ {
			if p[i]-p[i-1] != step {
				return nil, fmt.Errorf("period spacing changes at %d, %w", i, ErrIrregularSpacing)
			}
		}
	}

	for i := 0; i < len(y); i++ {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return nil, fmt.Errorf("non-finite observation at %d, %w", i, ErrNonFiniteValue)
		}
	}

	pSeries := make([]int, len(p))
	ySeries := make([]float64, len(p))
	copy(pSeries, p)
	copy(ySeries, y)
	td := &PeriodDataset{
		P: pSeries,
		Y: ySeries,
	}

	return td, nil
}

// Copy returns a deep copy of the dataset.
func (td *PeriodDataset) Copy() *PeriodDataset {
	pSeries := make([]int, len(td.P))
	ySeries := make([]float64, len(td.P))
	copy(pSeries, td.P)
	copy(ySeries, td.Y)
	return &PeriodDataset{
		P: pSeries,
		Y: ySeries,
	}
}

// Len returns the number of observations.
func (td *PeriodDataset) Len() int {
	return len(td.P)
}

// Step returns the fixed spacing between consecutive periods. Defaults to 1
// when the dataset has fewer than two observations.
func (td *PeriodDataset) Step() int {
	if len(td.P) < 2 {
		return 1
	}
	return td.P[1] - td.P[0]
}
