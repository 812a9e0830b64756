package holt

import (
	"github.com/aouyang1/go-holt/smooth"
)

// DefaultIntervalZscore is the z-score used for the forecast interval bands
// covering roughly 95% assuming normally distributed one-step errors.
const DefaultIntervalZscore = 1.96

// Options configures a Forecaster wrapping the smoothing model options along
// with the forecast interval width.
type Options struct {
	SmoothOptions *smooth.Options `json:"smooth_options"`

	// IntervalZscore scales the residual standard error into the upper and
	// lower forecast bands. Defaults to DefaultIntervalZscore when not
	// positive.
	IntervalZscore float64 `json:"interval_zscore"`
}

// NewDefaultOptions returns a default set of forecaster options estimating
// all smoothing weights of the standard Holt model.
func NewDefaultOptions() *Options {
	return &Options{
		SmoothOptions:  smooth.NewDefaultOptions(),
		IntervalZscore: DefaultIntervalZscore,
	}
}
