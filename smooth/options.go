package smooth

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-holt/minimize"
)

var ErrInvalidParameter = errors.New("smoothing parameter is outside of the interval (0, 1]")

// Options configures a Holt smoothing model. Any smoothing weight left nil is
// estimated by minimizing the in-sample sum of squared one-step errors.
type Options struct {
	// Alpha is the level smoothing weight.
	Alpha *float64 `json:"alpha,omitempty"`

	// Beta is the trend smoothing weight.
	Beta *float64 `json:"beta,omitempty"`

	// Phi is the trend damping factor. Only consulted when Damped is set. A phi
	// of 1 reproduces the standard Holt model.
	Phi *float64 `json:"phi,omitempty"`

	// Damped selects the damped trend variant which shrinks the trend's
	// influence on forecasts at increasing horizons.
	Damped bool `json:"damped"`

	// EstimationOptions bounds the parameter search when any weight is left
	// nil. Defaults are used when not set.
	EstimationOptions *minimize.Options `json:"estimation_options,omitempty"`
}

// NewDefaultOptions returns a default set of smoothing options estimating all
// weights of the standard Holt model.
func NewDefaultOptions() *Options {
	return &Options{}
}

// Validate runs basic validation on the smoothing options. Supplied weights
// must lie in (0, 1].
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}

	params := []struct {
		name string
		val  *float64
	}{
		{"alpha", o.Alpha},
		{"beta", o.Beta},
		{"phi", o.Phi},
	}
	for _, p := range params {
		if p.val == nil {
			continue
		}
		if *p.val <= 0.0 || *p.val > 1.0 {
			return nil, fmt.Errorf("%s of %f, %w", p.name, *p.val, ErrInvalidParameter)
		}
	}

	estOpt, err := o.EstimationOptions.Validate()
	if err != nil {
		return nil, err
	}
	o.EstimationOptions = estOpt
	return o, nil
}
