package holt

import (
	"math"
	"testing"

	"github.com/aouyang1/go-holt/smooth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

// generateExampleSeries returns an annual human development style index
// series with a slowly flattening upward trend.
func generateExampleSeries() ([]int, []float64) {
	p := []int{2010, 2011, 2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022}
	y := []float64{66.08, 66.64, 67.21, 67.70, 68.14, 68.75, 69.24, 69.74, 70.17, 70.59, 70.74, 71.08, 71.75}
	return p, y
}

func TestForecasterFit(t *testing.T) {
	p, y := generateExampleSeries()

	f, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, f.Fit(p, y))

	fitRes := f.FitResults()
	require.NotNil(t, fitRes)
	assert.Equal(t, p, fitRes.P)
	assert.Len(t, fitRes.Forecast, len(y))
	assert.True(t, math.IsNaN(fitRes.Forecast[0]))

	scores := f.Scores()
	assert.Greater(t, scores.RMSE, 0.0)
	assert.Less(t, scores.MAPE, 1.0)

	residuals := f.Residuals()
	require.Len(t, residuals, len(y))
	assert.True(t, math.IsNaN(residuals[0]))

	td := f.TrainingData()
	require.NotNil(t, td)
	assert.Equal(t, y, td.Y)
}

func TestForecasterForecast(t *testing.T) {
	p, y := generateExampleSeries()

	opt := &Options{
		SmoothOptions: &smooth.Options{
			Alpha: floatPtr(0.8),
			Beta:  floatPtr(0.2),
		},
	}
	f, err := New(opt)
	require.NoError(t, err)
	require.NoError(t, f.Fit(p, y))

	res, err := f.Forecast(5)
	require.NoError(t, err)

	assert.Equal(t, []int{2023, 2024, 2025, 2026, 2027}, res.P)
	require.Len(t, res.Forecast, 5)

	for i := 0; i < 5; i++ {
		assert.Greater(t, res.Upper[i], res.Forecast[i])
		assert.Less(t, res.Lower[i], res.Forecast[i])
	}

	// interval bands widen with the horizon
	for i := 1; i < 5; i++ {
		prevWidth := res.Upper[i-1] - res.Lower[i-1]
		currWidth := res.Upper[i] - res.Lower[i]
		assert.Greater(t, currWidth, prevWidth)
	}
}

func TestForecasterForecastUntrained(t *testing.T) {
	f, err := New(nil)
	require.NoError(t, err)

	_, err = f.Forecast(5)
	assert.ErrorIs(t, err, smooth.ErrUntrainedModel)

	assert.ErrorIs(t, f.PlotFit(nil, nil), ErrNoFitResults)
}

func TestForecasterFitError(t *testing.T) {
	f, err := New(nil)
	require.NoError(t, err)

	err = f.Fit([]int{2010, 2011, 2012}, []float64{1.0, math.NaN(), 3.0})
	assert.Error(t, err)
}

func TestForecasterModelEq(t *testing.T) {
	p, y := generateExampleSeries()

	f, err := New(&Options{
		SmoothOptions: &smooth.Options{
			Alpha: floatPtr(0.8),
			Beta:  floatPtr(0.2),
		},
	})
	require.NoError(t, err)
	require.NoError(t, f.Fit(p, y))

	eq, err := f.ModelEq()
	require.NoError(t, err)
	assert.Contains(t, eq, "h*")

	fd, err := New(&Options{
		SmoothOptions: &smooth.Options{
			Alpha:  floatPtr(0.8),
			Beta:   floatPtr(0.2),
			Phi:    floatPtr(0.9),
			Damped: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, fd.Fit(p, y))

	eq, err = fd.ModelEq()
	require.NoError(t, err)
	assert.Contains(t, eq, "sum(")
}
