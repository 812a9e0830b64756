package smooth

import (
	"fmt"
	"io"
)

// Model represents a serializeable format of a smoothing model storing the
// options, resolved weights, final state, and fit scores.
type Model struct {
	TrainEndPeriod int      `json:"train_end_period"`
	PeriodStep     int      `json:"period_step"`
	Options        *Options `json:"options"`
	Weights        Weights  `json:"weights"`
	State          State    `json:"state"`
	Scores         *Scores  `json:"scores"`
}

// Weights stores the resolved smoothing weights of a fitted model.
type Weights struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Phi   float64 `json:"phi"`
}

// State stores the level and trend at the final observed period which seed
// all forecasts.
type State struct {
	Level float64 `json:"level"`
	Trend float64 `json:"trend"`
}

// Model returns the serializeable format of the smoothing model.
func (h *Holt) Model() (Model, error) {
	if h == nil {
		return Model{}, ErrUninitializedModel
	}
	if !h.trained {
		return Model{}, ErrUntrainedModel
	}

	m := Model{
		TrainEndPeriod: h.endPeriod,
		PeriodStep:     h.step,
		Options:        h.opt,
		Weights: Weights{
			Alpha: h.alpha,
			Beta:  h.beta,
			Phi:   h.phi,
		},
		State: State{
			Level: h.level,
			Trend: h.trend,
		},
		Scores: h.scores,
	}
	return m, nil
}

// TablePrint writes a human readable summary of the model to the given
// writer.
func (m Model) TablePrint(w io.Writer, prefix, indent string) error {
	variant := "holt"
	if m.Options != nil && m.Options.Damped {
		variant = "damped holt"
	}
	if _, err := fmt.Fprintf(w, "%sModel: %s\n", prefix, variant); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sTraining End Period: %d\n", prefix, indent, m.TrainEndPeriod); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sWeights: alpha: %.4f  beta: %.4f  phi: %.4f\n",
		prefix, indent, m.Weights.Alpha, m.Weights.Beta, m.Weights.Phi); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sState: level: %.4f  trend: %.4f\n",
		prefix, indent, m.State.Level, m.State.Trend); err != nil {
		return err
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sScores: SSE: %.6f  MSE: %.6f  RMSE: %.6f  MAPE: %.4f\n",
			prefix, indent,
			m.Scores.SSE,
			m.Scores.MSE,
			m.Scores.RMSE,
			m.Scores.MAPE,
		); err != nil {
			return err
		}
	}
	return nil
}
