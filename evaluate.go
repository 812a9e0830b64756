package holt

import (
	"fmt"

	"github.com/aouyang1/go-holt/smooth"
)

// Variant labels the smoothing variant of a fit.
const (
	VariantHolt       = "holt"
	VariantDampedHolt = "damped holt"
)

// VariantResult holds the fitted model, scores, and horizon forecast of one
// smoothing variant.
type VariantResult struct {
	Variant  string        `json:"variant"`
	Model    smooth.Model  `json:"model"`
	Scores   smooth.Scores `json:"scores"`
	Forecast *Results      `json:"forecast"`
}

// Evaluation compares the standard and damped trend variants fit on the same
// series.
type Evaluation struct {
	Standard VariantResult `json:"standard"`
	Damped   VariantResult `json:"damped"`

	// Preferred names the variant with the lower in-sample RMSE.
	Preferred string `json:"preferred"`
}

// Evaluate fits both the standard Holt and the damped Holt variant on the
// input series, forecasts the requested horizon with each, and names the
// variant with the better in-sample fit. The damping factor of the standard
// variant is ignored and the damped variant estimates or uses phi from the
// options.
func Evaluate(p []int, y []float64, horizon int, opt *Options) (*Evaluation, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	standard, err := evaluateVariant(p, y, horizon, opt, false)
	if err != nil {
		return nil, fmt.Errorf("unable to evaluate standard holt, %w", err)
	}
	damped, err := evaluateVariant(p, y, horizon, opt, true)
	if err != nil {
		return nil, fmt.Errorf("unable to evaluate damped holt, %w", err)
	}

	preferred := standard.Variant
	if damped.Scores.RMSE < standard.Scores.RMSE {
		preferred = damped.Variant
	}

	return &Evaluation{
		Standard:  *standard,
		Damped:    *damped,
		Preferred: preferred,
	}, nil
}

func evaluateVariant(p []int, y []float64, horizon int, opt *Options, damped bool) (*VariantResult, error) {
	smoothOpt := smooth.NewDefaultOptions()
	if opt.SmoothOptions != nil {
		cp := *opt.SmoothOptions
		smoothOpt = &cp
	}
	smoothOpt.Damped = damped
	if !damped {
		smoothOpt.Phi = nil
	}

	variantOpt := &Options{
		SmoothOptions:  smoothOpt,
		IntervalZscore: opt.IntervalZscore,
	}

	f, err := New(variantOpt)
	if err != nil {
		return nil, err
	}
	if err := f.Fit(p, y); err != nil {
		return nil, err
	}

	forecast, err := f.Forecast(horizon)
	if err != nil {
		return nil, err
	}
	model, err := f.Model()
	if err != nil {
		return nil, err
	}

	variant := VariantHolt
	if damped {
		variant = VariantDampedHolt
	}
	return &VariantResult{
		Variant:  variant,
		Model:    model.Smooth,
		Scores:   f.Scores(),
		Forecast: forecast,
	}, nil
}
