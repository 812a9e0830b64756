// Package minimize provides bounded numerical minimization over the open
// unit box (0,1)^k to be used for smoothing parameter estimation.
package minimize

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

const (
	DefaultMaxIterations = 1000
	DefaultTolerance     = 1e-10

	// convergeIterations is the number of consecutive iterations the objective
	// must stay within tolerance before stopping.
	convergeIterations = 20
)

var (
	ErrNoObjective        = errors.New("no objective function")
	ErrNoDimensions       = errors.New("must have at least one free parameter")
	ErrNegativeIterations = errors.New("negative iterations")
	ErrNegativeTolerance  = errors.New("negative tolerance")
	ErrDidNotConverge     = errors.New("optimization did not converge within the iteration limit")
)

// Options represents input options to run the unit box minimization
type Options struct {
	// MaxIterations is the maximum number of Nelder-Mead iterations before the
	// search is abandoned.
	MaxIterations int `json:"max_iterations"`

	// Tolerance is the smallest objective change over consecutive iterations to
	// determine when to stop iterating.
	Tolerance float64 `json:"tolerance"`
}

// Validate runs basic validation on minimization options
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}

	if o.MaxIterations < 0 {
		return nil, ErrNegativeIterations
	}
	if o.Tolerance < 0 {
		return nil, ErrNegativeTolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	return o, nil
}

// NewDefaultOptions returns a default set of minimization options
func NewDefaultOptions() *Options {
	return &Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Objective evaluates the cost of a candidate point inside the open unit box.
type Objective func(x []float64) float64

// Result stores the minimizing location in unit box coordinates along with its
// objective value.
type Result struct {
	X []float64
	F float64
}

// UnitBox minimizes the objective over (0,1)^dims using Nelder-Mead on
// logistic transformed coordinates so every candidate stays strictly inside
// the box. The search starts at 0.5 in every dimension and is deterministic
// given the same objective and options.
func UnitBox(obj Objective, dims int, opt *Options) (*Result, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrNoObjective
	}
	if dims < 1 {
		return nil, ErrNoDimensions
	}

	problem := optimize.Problem{
		Func: func(z []float64) float64 {
			return obj(expit(z))
		},
	}

	// zero in transformed space maps to the 0.5 starting point
	z0 := make([]float64, dims)

	settings := &optimize.Settings{
		MajorIterations: opt.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   opt.Tolerance,
			Iterations: convergeIterations,
		},
	}

	res, err := optimize.Minimize(problem, z0, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("nelder-mead failure, %v, %w", err, ErrDidNotConverge)
	}
	if res.Status == optimize.IterationLimit || res.Status == optimize.FunctionEvaluationLimit {
		return nil, fmt.Errorf("stopped after %d iterations, %w", opt.MaxIterations, ErrDidNotConverge)
	}

	return &Result{
		X: expit(res.X),
		F: res.F,
	}, nil
}

// expit maps unconstrained coordinates into the open unit interval with the
// logistic function.
func expit(z []float64) []float64 {
	x := make([]float64, len(z))
	for i, v := range z {
		x[i] = 1.0 / (1.0 + math.Exp(-v))
	}
	return x
}
