// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	ggpalette "github.com/aclements/go-gg/palette"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gwloc/netloc/internal/summary"
)

func TestViridis(t *testing.T) {
	v := NewViridis(10, 30)
	for _, test := range []struct {
		x, want float64
	}{
		{10, 0}, {20, 0.5}, {30, 1}, {0, 0}, {100, 1}, {math.NaN(), 0},
	} {
		if got := v.Norm(test.x); got != test.want {
			t.Errorf("Norm(%v) = %v, want %v", test.x, got, test.want)
		}
	}

	c, err := v.At(10)
	if err != nil {
		t.Fatal(err)
	}
	if !sameColor(c, ggpalette.Viridis.Map(0)) {
		t.Errorf("At(min) = %v, want first viridis color", c)
	}
	c, _ = v.At(30)
	if !sameColor(c, ggpalette.Viridis.Map(1)) {
		t.Errorf("At(max) = %v, want last viridis color", c)
	}

	if got := NewViridis(5, 5).Norm(5); got != 0 {
		t.Errorf("degenerate range: Norm = %v, want 0", got)
	}
	if n := len(v.Palette(16).Colors()); n != 16 {
		t.Errorf("Palette(16) has %d colors", n)
	}
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestCountTicks(t *testing.T) {
	for _, ct := range []countTicks{
		{Max: 5},
		{Max: 7, PruneLower: true},
		{Max: 5, HideFirst: true},
	} {
		ticks := ct.Ticks(0, 42)
		labeled := 0
		for _, tick := range ticks {
			if tick.Label == "" {
				continue
			}
			labeled++
			if tick.Value != math.Trunc(tick.Value) {
				t.Errorf("%+v: non-integer major tick %v", ct, tick.Value)
			}
		}
		if labeled == 0 || labeled > ct.Max {
			t.Errorf("%+v: %d labeled ticks", ct, labeled)
		}
		if ct.PruneLower && ticks[0].Value == 0 {
			t.Errorf("%+v: lowest tick not pruned", ct)
		}
		if ct.HideFirst && ticks[0].Label != "" {
			t.Errorf("%+v: first label %q not hidden", ct, ticks[0].Label)
		}
	}
}

func TestStepOutline(t *testing.T) {
	edges := []float64{0, 1, 2}
	counts := []int{3, 5}
	want := plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 0}}
	if diff := cmp.Diff(want, stepOutline(edges, counts, false)); diff != "" {
		t.Errorf("vertical outline mismatch (-want +got):\n%s", diff)
	}
	wantH := plotter.XYs{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 2}, {X: 0, Y: 2}}
	if diff := cmp.Diff(wantH, stepOutline(edges, counts, true)); diff != "" {
		t.Errorf("horizontal outline mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid(t *testing.T) {
	area := vg.Rectangle{Max: vg.Point{X: 300, Y: 300}}
	main := grid(area, 1, 2, 0, 1)
	top := grid(area, 0, 0, 0, 1)
	right := grid(area, 1, 2, 2, 2)

	want := vg.Rectangle{Max: vg.Point{X: 200, Y: 200}}
	if main != want {
		t.Errorf("main panel = %v, want %v", main, want)
	}
	if top.Min.Y != main.Max.Y || top.Min.X != main.Min.X || top.Max.X != main.Max.X {
		t.Errorf("top panel %v does not abut main %v", top, main)
	}
	if right.Min.X != main.Max.X || right.Min.Y != main.Min.Y || right.Max.Y != main.Max.Y {
		t.Errorf("right panel %v does not abut main %v", right, main)
	}
}

func testMarginal(name string, fill, stats color.Color, errs, ants []float64) Marginal {
	errEdges := summary.LogEdges(ErrorMin, ErrorMax, 20)
	antEdges := summary.LinearEdges(0, 1, 20)
	errSum, _ := summary.Summarize(errs)
	antSum, _ := summary.Summarize(ants)
	return Marginal{
		Name: name, Fill: fill, Stats: stats,
		ErrorEdges: errEdges, ErrorCounts: summary.Histogram(errs, errEdges), Error: errSum,
		AntennaEdges: antEdges, AntennaCounts: summary.Histogram(ants, antEdges), Antenna: antSum,
	}
}

func TestSave(t *testing.T) {
	f := New("test figure")
	f.Height = 6 * vg.Inch
	err := f.AddScatter([]Point{
		{ErrorRegion: 12, AntennaPattern: 0.4, SNR: 9},
		{ErrorRegion: 340, AntennaPattern: 0.2, SNR: 12},
		{ErrorRegion: 8000, AntennaPattern: 0.1, SNR: 8, Outlier: true},
		{ErrorRegion: 0.01, AntennaPattern: 0.5, SNR: 30},
	})
	if err != nil {
		t.Fatal(err)
	}
	m := testMarginal("HLV", color.Gray{Y: 128}, color.Black,
		[]float64{12, 340, 55, 3, 900}, []float64{0.4, 0.2, 0.6, 0.9, 0.3})
	if err := f.AddMarginal(m); err != nil {
		t.Fatal(err)
	}
	m = testMarginal("HKLV", color.RGBA{G: 255, B: 255, A: 255}, color.RGBA{B: 255, A: 255},
		[]float64{4, 30, 20, 1, 90}, []float64{0.5, 0.7, 0.6, 0.8, 0.3})
	if err := f.AddMarginal(m); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "fig.png")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	cfg, err := png.DecodeConfig(r)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("image is %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
}

func TestSaveMissingDir(t *testing.T) {
	f := New("missing dir")
	path := filepath.Join(t.TempDir(), "figures", "fig.png")
	if err := f.Save(path); err == nil {
		t.Errorf("Save into missing directory succeeded")
	}
	if _, err := os.Stat(path); err == nil {
		t.Errorf("Save left %s behind", path)
	}
}
