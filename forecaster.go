package holt

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/aouyang1/go-holt/perioddataset"
	"github.com/aouyang1/go-holt/smooth"
	"github.com/go-echarts/go-echarts/v2/components"
)

var (
	ErrNoOptionsInModel = errors.New("no options set in model")
	ErrNoFitResults     = errors.New("no fit results, model has not been fit yet")
)

// DefaultPlotHorizon is the number of periods forecast beyond the training
// series when plotting without explicit plot options.
const DefaultPlotHorizon = 5

// Forecaster fits a Holt smoothing model and can be used to generate
// forecasts with interval bands.
type Forecaster struct {
	opt *Options

	model *smooth.Holt

	fitTrainingData *perioddataset.PeriodDataset
	fitResults      *Results
}

// New creates a new instance of a Forecaster using the provided options. If
// no options are provided a default is used.
func New(opt *Options) (*Forecaster, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.IntervalZscore <= 0 {
		opt.IntervalZscore = DefaultIntervalZscore
	}

	model, err := smooth.New(opt.SmoothOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize smoothing model, %w", err)
	}

	return &Forecaster{
		opt:   opt,
		model: model,
	}, nil
}

// NewFromModel creates a new instance of Forecaster from a pre-existing
// model. This should be generated from a previous forecaster call to Model().
func NewFromModel(model Model) (*Forecaster, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	opt := model.Options
	opt.SmoothOptions = model.Smooth.Options
	if opt.IntervalZscore <= 0 {
		opt.IntervalZscore = DefaultIntervalZscore
	}

	sm, err := smooth.NewFromModel(model.Smooth)
	if err != nil {
		return nil, fmt.Errorf("unable to load from smoothing model, %w", err)
	}

	return &Forecaster{
		opt:   opt,
		model: sm,
	}, nil
}

// Fit uses the input series and fits the smoothing model, keeping the
// in-sample fit with interval bands for inspection and plotting.
func (f *Forecaster) Fit(p []int, y []float64) error {
	td, err := perioddataset.NewUnivariateDataset(p, y)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}
	f.fitTrainingData = td.Copy()

	if err := f.model.Fit(td.P, td.Y); err != nil {
		return fmt.Errorf("unable to fit smoothing model, %w", err)
	}

	f.fitResults = f.buildFitResults(td)
	return nil
}

// buildFitResults aligns the one-step fitted values to the training periods.
// The first period has no fitted value since two observations seed the state.
func (f *Forecaster) buildFitResults(td *perioddataset.PeriodDataset) *Results {
	fitted := f.model.Fitted()
	width := f.opt.IntervalZscore * f.model.Scores().RMSE

	forecast := make([]float64, 0, td.Len())
	upper := make([]float64, 0, td.Len())
	lower := make([]float64, 0, td.Len())

	forecast = append(forecast, math.NaN())
	upper = append(upper, math.NaN())
	lower = append(lower, math.NaN())
	for _, v := range fitted {
		forecast = append(forecast, v)
		upper = append(upper, v+width)
		lower = append(lower, v-width)
	}

	return &Results{
		P:        td.P,
		Forecast: forecast,
		Upper:    upper,
		Lower:    lower,
	}
}

// Forecast generates forecast, upper, and lower values for the given number
// of periods beyond the end of the training series.
func (f *Forecaster) Forecast(horizon int) (*Results, error) {
	forecast, err := f.model.Forecast(horizon)
	if err != nil {
		return nil, fmt.Errorf("unable to forecast smoothing model, %w", err)
	}

	widths := f.intervalWidths(horizon)
	upper := make([]float64, 0, horizon)
	lower := make([]float64, 0, horizon)
	for i, v := range forecast {
		upper = append(upper, v+widths[i])
		lower = append(lower, v-widths[i])
	}

	return &Results{
		P:        f.model.ForecastPeriods(horizon),
		Forecast: forecast,
		Upper:    upper,
		Lower:    lower,
	}, nil
}

// intervalWidths computes the per step interval half-widths using the Holt
// prediction variance coefficients, c_j = alpha*(1 + j*beta) for the standard
// variant and c_j = alpha + alpha*beta*phi*(1-phi^j)/(1-phi) for the damped
// variant. The h-step variance is sigma^2 * (1 + sum of squared c_j up to
// h-1) with sigma taken from the one-step RMSE.
func (f *Forecaster) intervalWidths(horizon int) []float64 {
	sigma := f.model.Scores().RMSE
	alpha := f.model.Alpha()
	beta := f.model.Beta()
	phi := f.model.Phi()

	widths := make([]float64, 0, horizon)
	sumC2 := 0.0
	for h := 1; h <= horizon; h++ {
		widths = append(widths, f.opt.IntervalZscore*sigma*math.Sqrt(1.0+sumC2))

		var c float64
		if f.model.Damped() && phi != 1.0 {
			c = alpha + alpha*beta*phi*(1.0-math.Pow(phi, float64(h)))/(1.0-phi)
		} else {
			c = alpha * (1.0 + float64(h)*beta)
		}
		sumC2 += c * c
	}
	return widths
}

// Scores returns the in-sample fit scores of the smoothing model.
func (f *Forecaster) Scores() smooth.Scores {
	return f.model.Scores()
}

// Residuals returns the difference between the training data and the one-step
// fitted values aligned to the training periods. The first period has no
// residual and is set to NaN.
func (f *Forecaster) Residuals() []float64 {
	residual := f.model.Residuals()
	if len(residual) == 0 {
		return nil
	}
	res := make([]float64, 0, len(residual)+1)
	res = append(res, math.NaN())
	res = append(res, residual...)
	return res
}

// TrainingData returns the training data used to fit the current forecaster
// model.
func (f *Forecaster) TrainingData() *perioddataset.PeriodDataset {
	return f.fitTrainingData
}

// FitResults returns the in-sample fit aligned to the training periods which
// includes the fitted, upper, and lower values.
func (f *Forecaster) FitResults() *Results {
	return f.fitResults
}

// Model generates a serializeable representation of the forecaster options
// and the fitted smoothing model. This can be used to initialize a new
// Forecaster for immediate forecasts skipping the training step.
func (f *Forecaster) Model() (Model, error) {
	sm, err := f.model.Model()
	if err != nil {
		return Model{}, fmt.Errorf("unable to fetch smoothing model, %w", err)
	}
	return Model{
		Options: f.opt,
		Smooth:  sm,
	}, nil
}

// ModelEq returns a string representation of the forecast extrapolation
// equation for h periods past the end of the training series.
func (f *Forecaster) ModelEq() (string, error) {
	m, err := f.model.Model()
	if err != nil {
		return "", err
	}

	if f.model.Damped() {
		return fmt.Sprintf("yhat(n+h) = %.4f + sum(%.4f^k, k=1..h)*%.4f", m.State.Level, m.Weights.Phi, m.State.Trend), nil
	}
	return fmt.Sprintf("yhat(n+h) = %.4f + h*%.4f", m.State.Level, m.State.Trend), nil
}

// PlotOpts sets the horizon to forecast out when plotting.
type PlotOpts struct {
	Horizon int
}

// PlotFit uses the Apache ECharts library to generate an html page showing
// the resulting fit with interval bands, the horizon forecast, and the fit
// residual.
func (f *Forecaster) PlotFit(w io.Writer, opt *PlotOpts) error {
	if f.fitResults == nil {
		return ErrNoFitResults
	}

	horizon := DefaultPlotHorizon
	if opt != nil && opt.Horizon > 0 {
		horizon = opt.Horizon
	}

	forecastRes, err := f.Forecast(horizon)
	if err != nil {
		return fmt.Errorf("unable to forecast with horizon, %w", err)
	}

	td := f.TrainingData()
	residuals := f.Residuals()

	page := components.NewPage()
	page.AddCharts(
		LineForecaster(td, f.fitResults, forecastRes),
		LinePeriodSeries(
			"Fit Residual",
			[]string{"Residual"},
			td.P,
			[][]float64{residuals},
		),
	)
	return page.Render(w)
}
