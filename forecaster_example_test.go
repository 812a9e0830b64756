package holt

import (
	"fmt"

	"github.com/aouyang1/go-holt/smooth"
)

func ExampleForecaster() {
	p := []int{2018, 2019, 2020, 2021, 2022}
	y := []float64{70.0, 70.5, 71.1, 71.6, 72.0}

	alpha := 0.8
	beta := 0.2
	f, err := New(&Options{
		SmoothOptions: &smooth.Options{
			Alpha: &alpha,
			Beta:  &beta,
		},
	})
	if err != nil {
		panic(err)
	}
	if err := f.Fit(p, y); err != nil {
		panic(err)
	}

	res, err := f.Forecast(2)
	if err != nil {
		panic(err)
	}
	for i := range res.P {
		fmt.Printf("%d: %.3f\n", res.P[i], res.Forecast[i])
	}
	// Output:
	// 2023: 72.521
	// 2024: 73.019
}
