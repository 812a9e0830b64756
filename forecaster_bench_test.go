package holt

import (
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var benchForecastRes *Results

func BenchmarkFitToModel(b *testing.B) {
	p, y := generateExampleSeries()

	var f *Forecaster
	var err error

	b.ResetTimer()
	for b.Loop() {
		f, err = New(nil)
		if err != nil {
			panic(err)
		}

		if err := f.Fit(p, y); err != nil {
			panic(err)
		}
	}

	m, err := f.Model()
	if err != nil {
		panic(err)
	}

	bytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile("benchmark_model.json", bytes, 0o644); err != nil {
		panic(err)
	}
}

func BenchmarkForecastFromModel(b *testing.B) {
	bytes, err := os.ReadFile("benchmark_model.json")
	if err != nil {
		panic(err)
	}

	var model Model
	if err := json.Unmarshal(bytes, &model); err != nil {
		panic(err)
	}
	f, err := NewFromModel(model)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchForecastRes, err = f.Forecast(5)
		if err != nil {
			panic(err)
		}
	}
}
