// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtab

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Outliers is a set of run numbers that are excluded from summary
// statistics.
type Outliers map[float64]bool

// NewOutliers returns the set of the given run numbers.
func NewOutliers(nums ...float64) Outliers {
	o := make(Outliers, len(nums))
	for _, n := range nums {
		o[n] = true
	}
	return o
}

// Contains reports whether run number n is an outlier.
func (o Outliers) Contains(n float64) bool {
	return o[n]
}

// Sorted returns the members of o in increasing order.
func (o Outliers) Sorted() []float64 {
	nums := make([]float64, 0, len(o))
	for n := range o {
		nums = append(nums, n)
	}
	sort.Float64s(nums)
	return nums
}

// ParseOutliers parses an outlier list from r. The list may have any
// shape: every number in it is a member of the set.
func ParseOutliers(r io.Reader) (Outliers, error) {
	rows, err := ParseRows(r)
	if err != nil {
		return nil, err
	}
	o := make(Outliers)
	for _, row := range rows {
		for _, n := range row {
			o[n] = true
		}
	}
	return o, nil
}

// ReadOutliers parses the outlier list in the named file.
func ReadOutliers(path string) (Outliers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	o, err := ParseOutliers(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// Split partitions runs by membership of their run number in o,
// preserving order.
func (o Outliers) Split(runs []Run) (keep, out []Run) {
	for _, r := range runs {
		if o.Contains(r.Number) {
			out = append(out, r)
		} else {
			keep = append(keep, r)
		}
	}
	return keep, out
}
