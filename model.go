package holt

import (
	"fmt"
	"io"

	"github.com/aouyang1/go-holt/smooth"
)

// Model represents a serializeable format of a forecaster storing the
// forecaster options and the fitted smoothing model.
type Model struct {
	Options *Options     `json:"options"`
	Smooth  smooth.Model `json:"smooth_model"`
}

// TablePrint writes a human readable summary of the forecaster model to the
// given writer.
func (m Model) TablePrint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Forecaster:\n"); err != nil {
		return err
	}
	if m.Options != nil {
		if _, err := fmt.Fprintf(w, "  Interval Z-score: %.2f\n", m.Options.IntervalZscore); err != nil {
			return err
		}
	}
	return m.Smooth.TablePrint(w, "  ", "  ")
}
