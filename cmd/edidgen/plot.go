/*
NAME
  plot.go -

DESCRIPTION
  timing-plot: renders a PNG bar chart of a detailed timing's
  horizontal blanking-interval layout (active, front porch, sync pulse,
  back porch), a debugging aid for display engineers checking a
  timing's shape without decoding the raw descriptor bytes by hand.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotTiming renders t's horizontal active/front-porch/sync-pulse/
// back-porch segments as four separate bars, one per segment, and saves
// the chart to path.
func plotTiming(t DetailedTimingSpec, path string) error {
	p := plot.New()
	p.Title.Text = "Horizontal timing (pixels)"
	p.Y.Label.Text = "pixels"

	segments := []struct {
		name  string
		width float64
	}{
		{"active", float64(t.HActive)},
		{"front porch", float64(t.HFrontPorch)},
		{"sync pulse", float64(t.HSyncPulse)},
		{"back porch", float64(t.HBackPorch)},
	}

	values := make(plotter.Values, len(segments))
	labels := make([]string, len(segments))
	for i, s := range segments {
		values[i] = s.width
		labels[i] = s.name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return errors.Wrap(err, "could not build bar chart")
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "could not save timing plot")
	}
	return nil
}
