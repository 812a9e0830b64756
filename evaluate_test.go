package holt

import (
	"testing"

	"github.com/aouyang1/go-holt/smooth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	p, y := generateExampleSeries()

	eval, err := Evaluate(p, y, 5, nil)
	require.NoError(t, err)

	assert.Equal(t, VariantHolt, eval.Standard.Variant)
	assert.Equal(t, VariantDampedHolt, eval.Damped.Variant)

	require.NotNil(t, eval.Standard.Forecast)
	require.NotNil(t, eval.Damped.Forecast)
	assert.Len(t, eval.Standard.Forecast.Forecast, 5)
	assert.Len(t, eval.Damped.Forecast.Forecast, 5)

	// the preferred variant carries the lower in-sample RMSE
	expected := VariantHolt
	if eval.Damped.Scores.RMSE < eval.Standard.Scores.RMSE {
		expected = VariantDampedHolt
	}
	assert.Equal(t, expected, eval.Preferred)

	assert.False(t, eval.Standard.Model.Options.Damped)
	assert.True(t, eval.Damped.Model.Options.Damped)
	assert.Equal(t, 1.0, eval.Standard.Model.Weights.Phi)
}

func TestEvaluateFixedWeights(t *testing.T) {
	p, y := generateExampleSeries()

	opt := &Options{
		SmoothOptions: &smooth.Options{
			Alpha: floatPtr(0.8),
			Beta:  floatPtr(0.2),
			Phi:   floatPtr(0.9),
		},
	}
	eval, err := Evaluate(p, y, 3, opt)
	require.NoError(t, err)

	assert.Equal(t, 0.8, eval.Standard.Model.Weights.Alpha)
	assert.Equal(t, 0.8, eval.Damped.Model.Weights.Alpha)
	assert.Equal(t, 0.9, eval.Damped.Model.Weights.Phi)

	// rerunning with the same inputs reproduces the same evaluation
	again, err := Evaluate(p, y, 3, opt)
	require.NoError(t, err)
	assert.Equal(t, eval, again)
}

func TestEvaluateError(t *testing.T) {
	_, err := Evaluate([]int{2010, 2011}, []float64{1.0, 2.0}, 5, nil)
	assert.ErrorIs(t, err, smooth.ErrInsufficientData)
}
