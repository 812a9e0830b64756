package holt

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-holt/smooth"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromModel(t *testing.T) {
	p, y := generateExampleSeries()

	f, err := New(&Options{
		SmoothOptions: &smooth.Options{
			Alpha:  floatPtr(0.8),
			Beta:   floatPtr(0.2),
			Phi:    floatPtr(0.9),
			Damped: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, f.Fit(p, y))

	model, err := f.Model()
	require.NoError(t, err)

	out, err := json.Marshal(model)
	require.NoError(t, err)

	var decoded Model
	require.NoError(t, json.Unmarshal(out, &decoded))

	restored, err := NewFromModel(decoded)
	require.NoError(t, err)

	expected, err := f.Forecast(5)
	require.NoError(t, err)
	restoredRes, err := restored.Forecast(5)
	require.NoError(t, err)

	assert.Equal(t, expected.P, restoredRes.P)
	assert.InDeltaSlice(t, expected.Forecast, restoredRes.Forecast, 1e-12)
	assert.InDeltaSlice(t, expected.Upper, restoredRes.Upper, 1e-12)
	assert.InDeltaSlice(t, expected.Lower, restoredRes.Lower, 1e-12)
}

func TestNewFromModelNoOptions(t *testing.T) {
	_, err := NewFromModel(Model{})
	assert.ErrorIs(t, err, ErrNoOptionsInModel)
}

func TestModelTablePrint(t *testing.T) {
	p, y := generateExampleSeries()

	f, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, f.Fit(p, y))

	model, err := f.Model()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, model.TablePrint(&buf))

	out := buf.String()
	assert.Contains(t, out, "Forecaster:")
	assert.Contains(t, out, "Interval Z-score: 1.96")
	assert.Contains(t, out, "Training End Period: 2022")
}
