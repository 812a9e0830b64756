package smooth

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrResLenMismatch = errors.New("predicted and actual have different lengths")
	ErrDivisionByZero = errors.New("division by zero, actual value is zero")
)

// Scores tracks the in-sample fit scores
type Scores struct {
	SSE  float64 `json:"sum_squared_error"`
	MSE  float64 `json:"mean_squared_error"`
	RMSE float64 `json:"root_mean_squared_error"`
	MAPE float64 `json:"mean_absolute_percent_error"`
}

// NewScores calculates the fit scores given the predicted and actual input
// slice values
func NewScores(predicted, actual []float64) (*Scores, error) {
	sse, err := SSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute sum of squared errors, %w", err)
	}
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	rmse, err := RMSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute root mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute percent error, %w", err)
	}

	return &Scores{
		SSE:  sse,
		MSE:  mse,
		RMSE: rmse,
		MAPE: mape,
	}, nil
}

// SSE computes the sum of squared errors. This is the same as sum((y-yhat)^2).
// A score of 0 means a perfect match with no errors.
func SSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	sse := 0.0
	for i := 0; i < len(actual); i++ {
		sse += math.Pow(actual[i]-predicted[i], 2.0)
	}
	return sse, nil
}

// MSE computes the mean squared error, SSE divided by the number of fitted
// points.
func MSE(predicted, actual []float64) (float64, error) {
	sse, err := SSE(predicted, actual)
	if err != nil {
		return 0, err
	}
	return sse / float64(len(actual)), nil
}

// RMSE computes the root mean squared error, the square root of MSE.
func RMSE(predicted, actual []float64) (float64, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAPE calculates the mean absolute percent error. This is the same as
// 100/n * sum(abs((y-yhat)/y)). A score of 0 means a perfect match with no
// errors.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	mape := 0.0
	for i := 0; i < len(actual); i++ {
		if actual[i] == 0 {
			return 0, fmt.Errorf("actual value at %d is zero, %w", i, ErrDivisionByZero)
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	mape *= 100.0 / float64(len(actual))
	return mape, nil
}
