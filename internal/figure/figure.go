// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure renders the localization comparison figure: a
// scatter of error region against antenna pattern colored by SNR,
// with marginal histograms of both quantities.
//
// The panels sit on a 3x3 grid with no spacing between cells. The
// scatter fills the lower-left 2x2 block, the error region histogram
// sits above it sharing its X axis, and the antenna pattern
// histogram sits to its right sharing its Y axis.
package figure

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gwloc/netloc/internal/summary"
)

// Axis limits of the scatter panel, shared with the histograms.
const (
	ErrorMin, ErrorMax     = 1e-1, 1e5
	AntennaMin, AntennaMax = 0.0, 1.4
)

// A Point is one run in the scatter panel.
type Point struct {
	ErrorRegion, AntennaPattern, SNR float64
	Outlier                          bool
}

// A Marginal is one network's contribution to the histogram panels.
type Marginal struct {
	Name        string
	Fill, Stats color.Color

	// ErrorEdges and ErrorCounts are the error region histogram.
	ErrorEdges  []float64
	ErrorCounts []int
	Error       summary.Summary

	// AntennaEdges and AntennaCounts are the antenna pattern
	// histogram.
	AntennaEdges  []float64
	AntennaCounts []int
	Antenna       summary.Summary
}

// A Figure is built up by AddScatter and AddMarginal and then
// rendered once.
type Figure struct {
	Title string

	// Width and Height are the figure size and DPI its
	// resolution.
	Width, Height vg.Length
	DPI           int

	scatter, top, right *plot.Plot
	snr                 *Viridis

	// Tallest error region and antenna pattern bins.
	errMax, antMax int
}

// New returns an empty figure with the given title.
func New(title string) *Figure {
	f := &Figure{
		Title:  title,
		Width:  8 * vg.Inch,
		Height: 6.4 * vg.Inch,
		DPI:    100,
	}

	f.scatter = plot.New()
	f.scatter.X.Label.Text = "Error Region (squared degrees)"
	f.scatter.Y.Label.Text = "Network Antenna Pattern"
	f.scatter.X.Scale = plot.LogScale{}
	f.scatter.X.Tick.Marker = plot.LogTicks{Prec: -1}

	f.top = plot.New()
	f.top.X.Scale = plot.LogScale{}
	f.top.X.Tick.Marker = unlabeled{plot.LogTicks{Prec: -1}}
	f.top.Y.Label.Text = "Count"
	f.top.Legend.Top = true
	f.top.Legend.Left = true

	f.right = plot.New()
	f.right.Y.Tick.Marker = unlabeled{plot.DefaultTicks{}}
	f.right.X.Label.Text = "Count"
	f.right.X.Tick.Marker = countTicks{Max: 5, HideFirst: true}
	f.right.Legend.Top = true

	for _, l := range []*plot.Legend{&f.top.Legend, &f.right.Legend} {
		l.TextStyle.Font.Size = vg.Points(7)
	}
	for _, p := range []*plot.Plot{f.scatter, f.top, f.right} {
		p.X.Padding, p.Y.Padding = 0, 0
	}
	return f
}

// AddScatter draws pts in the scatter panel. Colors are normalized
// over the SNR range of pts alone, and that normalization also keys
// the colorbar. Non-outliers are drawn as filled circles and
// outliers as plus signs. Points outside the axis limits are clipped.
func (f *Figure) AddScatter(pts []Point) error {
	snrs := make([]float64, len(pts))
	for i, pt := range pts {
		snrs[i] = pt.SNR
	}
	f.snr = NewViridis(stats.Bounds(snrs))

	var xys plotter.XYs
	var shown []Point
	for _, pt := range pts {
		if pt.ErrorRegion < ErrorMin || pt.ErrorRegion > ErrorMax ||
			pt.AntennaPattern < AntennaMin || pt.AntennaPattern > AntennaMax {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.ErrorRegion, Y: pt.AntennaPattern})
		shown = append(shown, pt)
	}
	if len(xys) == 0 {
		return nil
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, _ := f.snr.At(shown[i].SNR)
		sty := draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
		if shown[i].Outlier {
			sty.Shape = draw.PlusGlyph{}
		}
		return sty
	}
	f.scatter.Add(s)
	return nil
}

// AddMarginal adds m's histograms and percentile lines to the
// histogram panels.
func (f *Figure) AddMarginal(m Marginal) error {
	errFill, err := newStepFill(m.ErrorEdges, m.ErrorCounts, false, m.Fill)
	if err != nil {
		return fmt.Errorf("%s error region histogram: %w", m.Name, err)
	}
	med, lo, hi := percentileLines(m.Error.P5, m.Error.Median, m.Error.P95, true, m.Stats)
	f.top.Add(errFill, med, lo, hi)
	f.errMax = maxInt(f.errMax, m.ErrorCounts)
	f.top.Legend.Add(m.Name, errFill)

	antFill, err := newStepFill(m.AntennaEdges, m.AntennaCounts, true, m.Fill)
	if err != nil {
		return fmt.Errorf("%s antenna pattern histogram: %w", m.Name, err)
	}
	med, lo, hi = percentileLines(m.Antenna.P5, m.Antenna.Median, m.Antenna.P95, false, m.Stats)
	f.right.Add(antFill, med, lo, hi)
	f.antMax = maxInt(f.antMax, m.AntennaCounts)
	f.right.Legend.Add(m.Name+" Median", med)
	f.right.Legend.Add(m.Name+" 90% Conf.", hi)
	return nil
}

func maxInt(max int, xs []int) int {
	for _, x := range xs {
		if x > max {
			max = x
		}
	}
	return max
}

// shareAxes fixes the axis limits. It must run after every plotter
// is added, since Add widens the axes to the data.
func (f *Figure) shareAxes() {
	f.scatter.X.Min, f.scatter.X.Max = ErrorMin, ErrorMax
	f.scatter.Y.Min, f.scatter.Y.Max = AntennaMin, AntennaMax
	f.top.X.Min, f.top.X.Max = ErrorMin, ErrorMax
	f.right.Y.Min, f.right.Y.Max = AntennaMin, AntennaMax

	f.top.Y.Min, f.top.Y.Max = 0, countMax(f.errMax)
	f.right.X.Min, f.right.X.Max = 0, countMax(f.antMax)

	// Match the count ticks to the density of the scatter's
	// labeled X ticks.
	n := numLabels(f.scatter.X.Tick.Marker, ErrorMin, ErrorMax)
	f.top.Y.Tick.Marker = countTicks{Max: n, PruneLower: true}
}

// countMax pads the largest count so the tallest bin does not touch
// the panel edge.
func countMax(max int) float64 {
	if max < 1 {
		return 1
	}
	return float64(max) * 1.05
}

// Layout margins around the 3x3 grid.
const (
	marginLeft   = 0.8 * vg.Inch
	marginBottom = 0.6 * vg.Inch
	marginTop    = 0.55 * vg.Inch
	marginRight  = 1.0 * vg.Inch

	colorbarGap   = 0.6 * vg.Inch
	colorbarWidth = 0.18 * vg.Inch
)

// grid returns the data rectangle spanning rows r0..r1 and columns
// c0..c1 (inclusive, row 0 at the top) of a 3x3 grid filling area.
func grid(area vg.Rectangle, r0, r1, c0, c1 int) vg.Rectangle {
	cw := area.Size().X / 3
	ch := area.Size().Y / 3
	return vg.Rectangle{
		Min: vg.Point{X: area.Min.X + vg.Length(c0)*cw, Y: area.Max.Y - vg.Length(r1+1)*ch},
		Max: vg.Point{X: area.Min.X + vg.Length(c1+1)*cw, Y: area.Max.Y - vg.Length(r0)*ch},
	}
}

// alignData returns the canvas on which p must be drawn so that its
// data area covers data. Axis decorations extend outside data.
func alignData(p *plot.Plot, dc draw.Canvas, data vg.Rectangle) draw.Canvas {
	c := draw.Canvas{Canvas: dc.Canvas, Rectangle: data}
	// The data area depends weakly on the canvas size through
	// tick label overhang, so refine a few times.
	for i := 0; i < 3; i++ {
		inner := p.DataCanvas(c)
		c.Min.X += data.Min.X - inner.Min.X
		c.Min.Y += data.Min.Y - inner.Min.Y
		c.Max.X += data.Max.X - inner.Max.X
		c.Max.Y += data.Max.Y - inner.Max.Y
	}
	return c
}

// Draw draws the figure on dc.
func (f *Figure) Draw(dc draw.Canvas) {
	f.shareAxes()

	area := vg.Rectangle{
		Min: vg.Point{X: dc.Min.X + marginLeft, Y: dc.Min.Y + marginBottom},
		Max: vg.Point{X: dc.Max.X - marginRight, Y: dc.Max.Y - marginTop},
	}
	main := grid(area, 1, 2, 0, 1)
	f.scatter.Draw(alignData(f.scatter, dc, main))
	f.top.Draw(alignData(f.top, dc, grid(area, 0, 0, 0, 1)))
	f.right.Draw(alignData(f.right, dc, grid(area, 1, 2, 2, 2)))

	if f.snr != nil {
		bar := f.colorbar()
		x := area.Max.X + colorbarGap
		bar.Draw(alignData(bar, dc, vg.Rectangle{
			Min: vg.Point{X: x, Y: main.Min.Y},
			Max: vg.Point{X: x + colorbarWidth, Y: main.Max.Y},
		}))
	}

	sty := f.scatter.Title.TextStyle
	sty.Font.Size = vg.Points(10)
	sty.XAlign = text.XCenter
	sty.YAlign = text.YTop
	dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - marginTop/4}, f.Title)
}

func (f *Figure) colorbar() *plot.Plot {
	cm := NewViridis(f.snr.Min(), f.snr.Max())
	if cm.Min() == cm.Max() {
		cm.SetMin(cm.Min() - 0.5)
		cm.SetMax(cm.Max() + 0.5)
	}
	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	p.HideX()
	p.Y.Label.Text = "Network SNR"
	p.Y.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Padding = 0
	return p
}

// WriteTo renders the figure as a PNG image to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	f.Draw(draw.New(img))
	png := vgimg.PngCanvas{Canvas: img}
	return png.WriteTo(w)
}

// Save renders the figure as a PNG image to the named file. Nothing
// is written if rendering fails.
func (f *Figure) Save(path string) error {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}
