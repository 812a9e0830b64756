package holt

import (
	"math"

	"github.com/aouyang1/go-holt/perioddataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// missing marks a point as absent in an echarts series.
const missing = "-"

func lineData(y []float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(y))
	for _, v := range y {
		if math.IsNaN(v) {
			data = append(data, opts.LineData{Value: missing})
			continue
		}
		data = append(data, opts.LineData{Value: v})
	}
	return data
}

func padData(data []opts.LineData, n int, before bool) []opts.LineData {
	pad := make([]opts.LineData, 0, n)
	for i := 0; i < n; i++ {
		pad = append(pad, opts.LineData{Value: missing})
	}
	if before {
		return append(pad, data...)
	}
	return append(data, pad...)
}

// LinePeriodSeries generates an echart multi-line chart for some arbitrary
// period/value combination. Every input series must have the same length as
// the input period slice.
func LinePeriodSeries(title string, seriesName []string, p []int, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	line = line.SetXAxis(p)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData(y[i]))
	}
	return line
}

// LineForecaster generates an echart line chart for a fit result plotting the
// observed values along with the in-sample fit and the horizon forecast with
// interval bands.
func LineForecaster(trainingData *perioddataset.PeriodDataset, fitRes, forecastRes *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Forecast Fit",
			},
		),
	)

	periods := make([]int, 0, len(fitRes.P)+len(forecastRes.P))
	periods = append(periods, fitRes.P...)
	periods = append(periods, forecastRes.P...)

	horizon := len(forecastRes.P)
	trainLen := len(fitRes.P)

	line.SetXAxis(periods).
		AddSeries("Actual", padData(lineData(trainingData.Y), horizon, false)).
		AddSeries("Fit", padData(lineData(fitRes.Forecast), horizon, false)).
		AddSeries("Forecast", padData(lineData(forecastRes.Forecast), trainLen, true)).
		AddSeries("Upper", padData(lineData(forecastRes.Upper), trainLen, true)).
		AddSeries("Lower", padData(lineData(forecastRes.Lower), trainLen, true))
	return line
}
