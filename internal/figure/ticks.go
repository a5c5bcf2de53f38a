// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

// countTicks places at most Max major ticks at integer values.
type countTicks struct {
	Max int

	// PruneLower drops the lowest major tick.
	PruneLower bool

	// HideFirst keeps the first major tick but blanks its label.
	HideFirst bool
}

func (t countTicks) Ticks(min, max float64) []plot.Tick {
	// Levels below 0 would give fractional steps.
	o := scale.TickOptions{Max: t.Max, MinLevel: 0, MaxLevel: 1000}
	ls := scale.Linear{Min: min, Max: max}
	major, minor := ls.Ticks(o)
	if len(major) == 0 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	if t.PruneLower {
		major = major[1:]
	}

	ticks := make([]plot.Tick, 0, len(major)+len(minor))
	for i, x := range major {
		label := strconv.FormatFloat(x, 'f', -1, 64)
		if i == 0 && t.HideFirst {
			label = ""
		}
		ticks = append(ticks, plot.Tick{Value: x, Label: label})
	}
	for _, x := range minor {
		ticks = append(ticks, plot.Tick{Value: x})
	}
	return ticks
}

// unlabeled draws the ticks of a shared axis without their labels.
type unlabeled struct {
	plot.Ticker
}

func (u unlabeled) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

// numLabels returns the number of labeled ticks t places on
// [min, max].
func numLabels(t plot.Ticker, min, max float64) int {
	n := 0
	for _, tick := range t.Ticks(min, max) {
		if tick.Label != "" {
			n++
		}
	}
	return n
}
