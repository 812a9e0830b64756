package holt

// Results stores forecasted values per period along with the upper and lower
// interval bands.
type Results struct {
	P        []int     `json:"periods"`
	Forecast []float64 `json:"forecast"`
	Upper    []float64 `json:"upper"`
	Lower    []float64 `json:"lower"`
}
