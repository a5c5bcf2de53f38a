// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image/color"
	"math"

	ggpalette "github.com/aclements/go-gg/palette"
	"gonum.org/v1/plot/palette"
)

// Viridis is a palette.ColorMap that linearly normalizes values from
// [Min, Max] onto the viridis gradient. Values outside the range are
// clamped to the end colors.
type Viridis struct {
	min, max float64
	alpha    float64
}

// NewViridis returns a viridis color map over [min, max].
func NewViridis(min, max float64) *Viridis {
	return &Viridis{min: min, max: max, alpha: 1}
}

// Norm maps x onto [0, 1]. A degenerate range maps everything to 0.
func (v *Viridis) Norm(x float64) float64 {
	if v.max == v.min || math.IsNaN(x) {
		return 0
	}
	t := (x - v.min) / (v.max - v.min)
	return math.Max(0, math.Min(1, t))
}

func (v *Viridis) At(x float64) (color.Color, error) {
	c := ggpalette.Viridis.Map(v.Norm(x))
	if v.alpha >= 1 {
		return c, nil
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * v.alpha)
	return n, nil
}

func (v *Viridis) Min() float64 { return v.min }
func (v *Viridis) Max() float64 { return v.max }
func (v *Viridis) SetMin(x float64) { v.min = x }
func (v *Viridis) SetMax(x float64) { v.max = x }
func (v *Viridis) Alpha() float64 { return v.alpha }
func (v *Viridis) SetAlpha(a float64) { v.alpha = a }

func (v *Viridis) Palette(n int) palette.Palette {
	cs := make(colors, n)
	for i := range cs {
		x := v.min
		if n > 1 {
			x += (v.max - v.min) * float64(i) / float64(n-1)
		}
		cs[i], _ = v.At(x)
	}
	return cs
}

type colors []color.Color

func (cs colors) Colors() []color.Color { return cs }
