// Package smooth implements Holt double exponential smoothing with an
// optional damped trend for univariate fixed-step series. The model tracks a
// level and a trend state, produces one-step in-sample fitted values, and
// extrapolates the final state to forecast future periods.
package smooth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-holt/minimize"
	"github.com/aouyang1/go-holt/perioddataset"
	"gonum.org/v1/gonum/floats"
)

// MinObservations is the smallest series a model can be fit on. Two
// observations seed the level and trend state and at least one more is needed
// to fit.
const MinObservations = 3

var (
	ErrUninitializedModel = errors.New("uninitialized model")
	ErrInsufficientData   = errors.New("insufficient observations to seed and fit the model")
	ErrUntrainedModel     = errors.New("model has not been fit yet")
	ErrInvalidHorizon     = errors.New("forecast horizon must be at least 1")
)

// Holt represents a single double exponential smoothing model of a series.
// The level seeds from the first observation and the trend from the
// difference of the first two. Depending on the options this runs either the
// standard Holt recurrence,
//
//	l_t = alpha*y_t + (1-alpha)*(l_{t-1} + b_{t-1})
//	b_t = beta*(l_t - l_{t-1}) + (1-beta)*b_{t-1}
//
// or the damped trend variant which multiplies every previous-trend term by
// the damping factor phi.
type Holt struct {
	opt *Options

	// resolved smoothing weights after fitting. phi is held at 1 for the
	// standard variant.
	alpha float64
	beta  float64
	phi   float64

	// level and trend state at the final observed period
	level float64
	trend float64

	endPeriod int
	step      int

	fitted   []float64 // one-step fitted values for t = 2..n
	residual []float64
	scores   *Scores
	trained  bool
}

// New creates a new smoothing model instance with the given options. If none
// are provided, a default is used.
func New(opt *Options) (*Holt, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Holt{opt: opt}, nil
}

// NewFromModel creates a new smoothing model instance given a serialized
// Model. This instance can be used for forecasting immediately and does not
// need to be fit again.
func NewFromModel(model Model) (*Holt, error) {
	opt, err := model.Options.Validate()
	if err != nil {
		return nil, err
	}

	h := &Holt{
		opt:       opt,
		alpha:     model.Weights.Alpha,
		beta:      model.Weights.Beta,
		phi:       model.Weights.Phi,
		level:     model.State.Level,
		trend:     model.State.Trend,
		endPeriod: model.TrainEndPeriod,
		step:      model.PeriodStep,
		scores:    model.Scores,
		trained:   true,
	}
	if h.phi == 0 {
		h.phi = 1.0
	}
	if h.step == 0 {
		h.step = 1
	}
	return h, nil
}

// Fit takes the input training series and fits the level and trend state
// along with any smoothing weights not supplied in the options. The in-sample
// fit scores are computed as part of fitting so every failure condition
// surfaces here and no partial state is kept.
func (h *Holt) Fit(p []int, y []float64) error {
	if h == nil {
		return ErrUninitializedModel
	}

	if len(y) < MinObservations {
		return fmt.Errorf("got %d observations but need at least %d, %w", len(y), MinObservations, ErrInsufficientData)
	}

	td, err := perioddataset.NewUnivariateDataset(p, y)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}

	alpha, beta, phi, err := h.resolveWeights(td.Y)
	if err != nil {
		return err
	}

	level, trend, fitted := run(td.Y, alpha, beta, phi)

	residual := make([]float64, len(fitted))
	floats.SubTo(residual, td.Y[1:], fitted)

	scores, err := NewScores(fitted, td.Y[1:])
	if err != nil {
		return err
	}

	h.alpha = alpha
	h.beta = beta
	h.phi = phi
	h.level = level
	h.trend = trend
	h.endPeriod = td.P[td.Len()-1]
	h.step = td.Step()
	h.fitted = fitted
	h.residual = residual
	h.scores = scores
	h.trained = true
	return nil
}

// resolveWeights returns the smoothing weights to run the recurrence with,
// estimating any weight not supplied in the options by minimizing the
// in-sample sum of squared one-step errors over the unit box.
func (h *Holt) resolveWeights(y []float64) (float64, float64, float64, error) {
	const (
		freeAlpha = iota
		freeBeta
		freePhi
	)

	alpha, beta, phi := 0.0, 0.0, 1.0

	var free []int
	if h.opt.Alpha != nil {
		alpha = *h.opt.Alpha
	} else {
		free = append(free, freeAlpha)
	}
	if h.opt.Beta != nil {
		beta = *h.opt.Beta
	} else {
		free = append(free, freeBeta)
	}
	if h.opt.Damped {
		if h.opt.Phi != nil {
			phi = *h.opt.Phi
		} else {
			free = append(free, freePhi)
		}
	}

	if len(free) == 0 {
		return alpha, beta, phi, nil
	}

	obj := func(x []float64) float64 {
		a, b, p := alpha, beta, phi
		for i, param := range free {
			switch param {
			case freeAlpha:
				a = x[i]
			case freeBeta:
				b = x[i]
			case freePhi:
				p = x[i]
			}
		}
		_, _, fitted := run(y, a, b, p)
		sse, _ := SSE(fitted, y[1:])
		return sse
	}

	res, err := minimize.UnitBox(obj, len(free), h.opt.EstimationOptions)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unable to estimate smoothing weights, %w", err)
	}

	for i, param := range free {
		switch param {
		case freeAlpha:
			alpha = res.X[i]
		case freeBeta:
			beta = res.X[i]
		case freePhi:
			phi = res.X[i]
		}
	}
	slog.Debug("estimated smoothing weights",
		"alpha", alpha,
		"beta", beta,
		"phi", phi,
		"damped", h.opt.Damped,
		"sse", res.F,
	)
	return alpha, beta, phi, nil
}

// run applies the smoothing recurrence over the series returning the final
// level and trend state along with the one-step fitted values for t = 2..n. A
// phi of 1 recovers the standard Holt recurrence.
func run(y []float64, alpha, beta, phi float64) (float64, float64, []float64) {
	level := y[0]
	trend := y[1] - y[0]

	fitted := make([]float64, 0, len(y)-1)
	for t := 1; t < len(y); t++ {
		fitted = append(fitted, level+phi*trend)

		prevLevel := level
		level = alpha*y[t] + (1-alpha)*(prevLevel+phi*trend)
		trend = beta*(level-prevLevel) + (1-beta)*phi*trend
	}
	return level, trend, fitted
}

// Forecast extrapolates the fitted state producing one value per horizon step
// beyond the last observed period. The standard variant extends the trend
// linearly while the damped variant multiplies the trend by the finite
// geometric sum phi + phi^2 + ... + phi^h.
func (h *Holt) Forecast(horizon int) ([]float64, error) {
	if h == nil {
		return nil, ErrUninitializedModel
	}
	if !h.trained {
		return nil, ErrUntrainedModel
	}
	if horizon < 1 {
		return nil, fmt.Errorf("got horizon of %d, %w", horizon, ErrInvalidHorizon)
	}

	res := make([]float64, 0, horizon)
	if h.opt.Damped {
		phiSum := 0.0
		phiPow := 1.0
		for step := 1; step <= horizon; step++ {
			phiPow *= h.phi
			phiSum += phiPow
			res = append(res, h.level+phiSum*h.trend)
		}
		return res, nil
	}

	for step := 1; step <= horizon; step++ {
		res = append(res, h.level+float64(step)*h.trend)
	}
	return res, nil
}

// ForecastPeriods returns the periods immediately following the last observed
// period for the given horizon.
func (h *Holt) ForecastPeriods(horizon int) []int {
	if h == nil || !h.trained {
		return nil
	}
	periods := make([]int, 0, horizon)
	for step := 1; step <= horizon; step++ {
		periods = append(periods, h.endPeriod+step*h.step)
	}
	return periods
}

// Fitted returns a copy of the one-step in-sample fitted values aligned to
// the second through last training observation. Fitting starts one period
// after the first observation since two observations seed the state.
func (h *Holt) Fitted() []float64 {
	if h == nil {
		return nil
	}
	res := make([]float64, len(h.fitted))
	copy(res, h.fitted)
	return res
}

// Residuals returns a slice of values representing the difference between the
// training data and the fitted values.
func (h *Holt) Residuals() []float64 {
	if h == nil {
		return nil
	}
	res := make([]float64, len(h.residual))
	copy(res, h.residual)
	return res
}

// Scores returns the fit scores for evaluating how well the resulting model
// fit the training data.
func (h *Holt) Scores() Scores {
	if h == nil || h.scores == nil {
		return Scores{}
	}
	return *h.scores
}

// Alpha returns the level smoothing weight after fitting.
func (h *Holt) Alpha() float64 {
	if h == nil {
		return 0
	}
	return h.alpha
}

// Beta returns the trend smoothing weight after fitting.
func (h *Holt) Beta() float64 {
	if h == nil {
		return 0
	}
	return h.beta
}

// Phi returns the trend damping factor after fitting. This is held at 1 for
// the standard variant.
func (h *Holt) Phi() float64 {
	if h == nil {
		return 0
	}
	return h.phi
}

// Level returns the level state at the final observed period.
func (h *Holt) Level() float64 {
	if h == nil {
		return 0
	}
	return h.level
}

// Trend returns the trend state at the final observed period.
func (h *Holt) Trend() float64 {
	if h == nil {
		return 0
	}
	return h.trend
}

// Damped reports whether this model runs the damped trend variant.
func (h *Holt) Damped() bool {
	if h == nil {
		return false
	}
	return h.opt.Damped
}

// EndPeriod returns the last observed training period.
func (h *Holt) EndPeriod() int {
	if h == nil {
		return 0
	}
	return h.endPeriod
}

// Step returns the fixed spacing between consecutive training periods.
func (h *Holt) Step() int {
	if h == nil {
		return 0
	}
	return h.step
}
