/*
 * plot.go, part of gosurf
 *
 * Copyright 2023 Lucas Vidal <lvidal{at}protonDOTme>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package surfplot draws quick plots from gosurf results, mostly meant for
//eyeballing a calculation before feeding it to something else.
package surfplot

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//SASAProfile plots the per-atom solvent-accessible surface areas against the
//atom index, as produced by Acc.Areas, and saves the plot as a PNG file. The
//".png" extension is appended to plotname if not already there.
func SASAProfile(areas []float64, title, plotname string) error {
	if len(areas) == 0 {
		return fmt.Errorf("surfplot: SASAProfile: no areas given")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Atom index"
	p.Y.Label.Text = "SASA (A^2)"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(areas))
	for i, a := range areas {
		pts[i].X = float64(i)
		pts[i].Y = a
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)
	if !strings.HasSuffix(plotname, ".png") {
		plotname = plotname + ".png"
	}
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname)
}

//AccHistogram plots the distribution of a field of accessibility values, as
//produced by Acc.AccField, and saves it as a PNG file. For a binary predicate
//this just shows the accessible/buried split; for smoothed values it shows how
//much of the field sits in the transition region.
func AccHistogram(vals []float64, title, plotname string) error {
	if len(vals) == 0 {
		return fmt.Errorf("surfplot: AccHistogram: no values given")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Accessibility"
	p.Y.Label.Text = "Points"
	v := make(plotter.Values, len(vals))
	copy(v, vals)
	h, err := plotter.NewHist(v, 20)
	if err != nil {
		return err
	}
	p.Add(h)
	if !strings.HasSuffix(plotname, ".png") {
		plotname = plotname + ".png"
	}
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname)
}
