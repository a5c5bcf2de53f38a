// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/gwloc/netloc/internal/figure"
	"github.com/gwloc/netloc/internal/network"
	"github.com/gwloc/netloc/internal/summary"
	"github.com/gwloc/netloc/runtab"
)

// Histogram bins. Error regions are binned logarithmically, antenna
// patterns linearly.
var (
	errorEdges   = summary.LogEdges(figure.ErrorMin, figure.ErrorMax, 20)
	antennaEdges = summary.LinearEdges(0, 1, 20)
)

// A pass is one network's contribution to the figure.
type pass struct {
	Network network.Network
	Style   network.Style

	// Runs is the whole table. Kept and Excluded split it by
	// outlier membership.
	Runs           []runtab.Run
	Kept, Excluded []runtab.Run

	// Error and Antenna summarize the kept runs.
	Error, Antenna summary.Summary

	// ErrorCounts bins the kept error regions. AntennaCounts
	// bins the antenna patterns of all runs, outliers included.
	ErrorCounts, AntennaCounts []int
}

func newPass(n network.Network, sty network.Style, runs []runtab.Run, outliers runtab.Outliers) (*pass, error) {
	p := &pass{Network: n, Style: sty, Runs: runs}
	p.Kept, p.Excluded = outliers.Split(runs)

	keptErr, keptAnt := columns(p.Kept)
	_, allAnt := columns(p.Runs)

	var err error
	if p.Error, err = summary.Summarize(keptErr); err != nil {
		return nil, fmt.Errorf("%s: error region: %w", n, err)
	}
	if p.Antenna, err = summary.Summarize(keptAnt); err != nil {
		return nil, fmt.Errorf("%s: antenna pattern: %w", n, err)
	}
	p.ErrorCounts = summary.Histogram(keptErr, errorEdges)
	p.AntennaCounts = summary.Histogram(allAnt, antennaEdges)
	return p, nil
}

func columns(runs []runtab.Run) (errs, ants []float64) {
	errs = make([]float64, len(runs))
	ants = make([]float64, len(runs))
	for i, r := range runs {
		errs[i], ants[i] = r.ErrorRegion, r.AntennaPattern
	}
	return
}

func (p *pass) marginal() figure.Marginal {
	return figure.Marginal{
		Name:          string(p.Network),
		Fill:          p.Style.Fill,
		Stats:         p.Style.Stats,
		ErrorEdges:    errorEdges,
		ErrorCounts:   p.ErrorCounts,
		Error:         p.Error,
		AntennaEdges:  antennaEdges,
		AntennaCounts: p.AntennaCounts,
		Antenna:       p.Antenna,
	}
}

// scatterPoints returns every run of p, with outliers marked.
func (p *pass) scatterPoints(outliers runtab.Outliers) []figure.Point {
	pts := make([]figure.Point, len(p.Runs))
	for i, r := range p.Runs {
		pts[i] = figure.Point{
			ErrorRegion:    r.ErrorRegion,
			AntennaPattern: r.AntennaPattern,
			SNR:            r.SNR,
			Outlier:        outliers.Contains(r.Number),
		}
	}
	return pts
}
