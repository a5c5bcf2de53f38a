// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// LogEdges returns n bin edges evenly spaced in log space from lo to
// hi inclusive.
func LogEdges(lo, hi float64, n int) []float64 {
	edges := floats.LogSpan(make([]float64, n), lo, hi)
	// Pin the ends so values equal to lo or hi land in the outer
	// bins.
	edges[0], edges[n-1] = lo, hi
	return edges
}

// LinearEdges returns n evenly spaced bin edges from lo to hi
// inclusive.
func LinearEdges(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Histogram counts xs into the bins delimited by edges, which must be
// sorted and have at least two elements. Bin i holds values in
// [edges[i], edges[i+1]), except the last bin, which also holds
// values equal to the last edge. Values outside the edges and NaNs
// are not counted.
func Histogram(xs, edges []float64) []int {
	counts := make([]int, len(edges)-1)
	first, last := edges[0], edges[len(edges)-1]
	for _, x := range xs {
		if math.IsNaN(x) || x < first || x > last {
			continue
		}
		if x == last {
			counts[len(counts)-1]++
			continue
		}
		i := sort.SearchFloat64s(edges, x)
		if edges[i] != x {
			i--
		}
		counts[i]++
	}
	return counts
}
