// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
)

// passesToTable returns one row of summary statistics per pass.
func passesToTable(passes []*pass) *table.Table {
	n := len(passes)
	names := make([]string, n)
	runs, excluded := make([]int, n), make([]int, n)
	errP5, errMed, errP95 := make([]float64, n), make([]float64, n), make([]float64, n)
	errMean, errSD := make([]float64, n), make([]float64, n)
	antP5, antMed, antP95 := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, p := range passes {
		names[i] = string(p.Network)
		runs[i], excluded[i] = len(p.Runs), len(p.Excluded)
		errP5[i], errMed[i], errP95[i] = p.Error.P5, p.Error.Median, p.Error.P95
		errMean[i], errSD[i] = p.Error.Mean, p.Error.StdDev
		antP5[i], antMed[i], antP95[i] = p.Antenna.P5, p.Antenna.Median, p.Antenna.P95
	}

	return new(table.Builder).
		Add("network", names).
		Add("runs", runs).
		Add("outliers", excluded).
		Add("err p5", errP5).
		Add("err median", errMed).
		Add("err p95", errP95).
		Add("err mean", errMean).
		Add("err stddev", errSD).
		Add("antenna p5", antP5).
		Add("antenna median", antMed).
		Add("antenna p95", antP95).
		Done()
}

// printTable writes the summary table of passes to w, preceded by
// the command line that produced it.
func printTable(w io.Writer, args []string, passes []*pass) {
	fmt.Fprintf(w, "# %s\n", shellquote.Join(args...))
	table.Fprint(w, passesToTable(passes),
		"%s", "%d", "%d",
		"%.4g", "%.4g", "%.4g", "%.4g", "%.4g",
		"%.3f", "%.3f", "%.3f")
}
