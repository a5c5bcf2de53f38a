// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary computes descriptive statistics and histograms of
// run values.
package summary

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// ErrNoData is returned when summarizing an empty sample.
var ErrNoData = errors.New("no values to summarize")

// Summary describes a sample by its central 90% interval.
type Summary struct {
	N int

	P5, Median, P95 float64

	// Mean and StdDev are the sample mean and the sample
	// standard deviation.
	Mean, StdDev float64
}

// Summarize computes the summary of xs. xs is not modified.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrNoData
	}
	s := sorted(xs)
	return Summary{
		N:      len(xs),
		P5:     percentile(s.Xs, 5),
		Median: percentile(s.Xs, 50),
		P95:    percentile(s.Xs, 95),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
	}, nil
}

// Percentiles returns the pcts'th percentiles of xs, using linear
// interpolation between the closest ranks. If xs is empty, every
// percentile is NaN.
func Percentiles(xs []float64, pcts ...float64) []float64 {
	out := make([]float64, len(pcts))
	if len(xs) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	s := sorted(xs)
	for i, p := range pcts {
		out[i] = percentile(s.Xs, p)
	}
	return out
}

func sorted(xs []float64) *stats.Sample {
	s := &stats.Sample{Xs: append([]float64(nil), xs...)}
	return s.Sort()
}

// percentile returns the p'th percentile of the sorted, non-empty
// slice xs. The rank is (n-1)*p/100; non-integral ranks interpolate
// between their neighbors.
func percentile(xs []float64, p float64) float64 {
	if p <= 0 {
		return xs[0]
	} else if p >= 100 {
		return xs[len(xs)-1]
	}
	rank := float64(len(xs)-1) * p / 100
	lo := math.Floor(rank)
	i := int(lo)
	if i+1 >= len(xs) {
		return xs[i]
	}
	return xs[i] + (rank-lo)*(xs[i+1]-xs[i])
}
