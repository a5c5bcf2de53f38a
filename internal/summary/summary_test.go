// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestPercentiles(t *testing.T) {
	// Expected values are the default (linear) percentiles of
	// numpy.percentile.
	for _, test := range []struct {
		xs   []float64
		pcts []float64
		want []float64
	}{
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []float64{5, 50, 95}, []float64{1.45, 5.5, 9.55}},
		{[]float64{10, 0.5, 300, 42, 7}, []float64{5, 50, 95}, []float64{1.8, 10, 248.4}},
		{[]float64{3}, []float64{5, 50, 95}, []float64{3, 3, 3}},
		{[]float64{2, 1}, []float64{0, 25, 100}, []float64{1, 1.25, 2}},
	} {
		got := Percentiles(test.xs, test.pcts...)
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("Percentiles(%v, %v) mismatch (-want +got):\n%s", test.xs, test.pcts, diff)
		}
	}

	for _, v := range Percentiles(nil, 5, 95) {
		if !math.IsNaN(v) {
			t.Errorf("percentile of empty sample = %v, want NaN", v)
		}
	}
}

func TestPercentilesDoNotModifyInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Percentiles(xs, 50)
	if diff := cmp.Diff([]float64{3, 1, 2}, xs); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{4, 2, 8, 6})
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{
		N:      4,
		P5:     2.3,
		Median: 5,
		P95:    7.7,
		Mean:   5,
		StdDev: math.Sqrt(20.0 / 3),
	}
	if diff := cmp.Diff(want, s, approx); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}

	if _, err := Summarize(nil); !errors.Is(err, ErrNoData) {
		t.Errorf("Summarize(nil): want ErrNoData, got %v", err)
	}
}

func ExamplePercentiles() {
	fmt.Println(Percentiles([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0, 50, 100))
	// Output:
	// [1 5.5 10]
}
