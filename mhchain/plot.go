package main

import (
	"github.com/pkg/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bayeskit/mhchain/mh"
)

// saveHistogram writes a normalized histogram of the first state
// component to a png file.
func saveHistogram(states []mh.State, fn string) error {
	if len(states) == 0 {
		return errors.New("no samples to plot")
	}
	values := make(plotter.Values, len(states))
	for i, s := range states {
		values[i] = s.Values()[0]
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	h, err := plotter.NewHist(values, 32)
	if err != nil {
		return err
	}
	h.Normalize(1)
	p.Add(h)
	p.Title.Text = "samples"

	return p.Save(4*vg.Inch, 4*vg.Inch, fn)
}
