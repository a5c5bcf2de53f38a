// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runtab reads localization run tables.
//
// A run table is a whitespace-delimited numeric text file with one
// simulation run per line. The first four columns are the error
// region (square degrees), the network SNR, the network antenna
// pattern and the run number; any further columns are ignored. Blank
// lines and "#" comments are skipped.
package runtab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Run records the result of a single localization run (a single
// line of a run table).
type Run struct {
	// ErrorRegion is the localization uncertainty area in square
	// degrees.
	ErrorRegion float64

	// SNR is the network signal-to-noise ratio of the detection.
	SNR float64

	// AntennaPattern is the network antenna pattern factor.
	AntennaPattern float64

	// Number is the run number. Run tables write it as a float
	// and outlier membership is tested by float equality, so it
	// is kept as written.
	Number float64
}

// RunColumns is the number of leading columns of a run table that
// make up a Run.
const RunColumns = 4

// ErrEmpty is returned when a table contains no data rows.
var ErrEmpty = errors.New("no data rows")

// A SyntaxError reports a malformed line of a numeric table.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ParseRows parses a whitespace-delimited numeric table from r. Every
// data row must have the same number of columns.
func ParseRows(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	ncols := -1

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if ncols < 0 {
			ncols = len(f)
		} else if len(f) != ncols {
			return nil, &SyntaxError{lineno, fmt.Sprintf("have %d columns, want %d", len(f), ncols)}
		}

		row := make([]float64, len(f))
		for i, field := range f {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &SyntaxError{lineno, fmt.Sprintf("column %d: cannot parse %q", i+1, field)}
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}

// Parse parses a run table from r.
func Parse(r io.Reader) ([]Run, error) {
	rows, err := ParseRows(r)
	if err != nil {
		return nil, err
	}
	if n := len(rows[0]); n < RunColumns {
		return nil, &SyntaxError{1, fmt.Sprintf("have %d columns, want at least %d", n, RunColumns)}
	}

	runs := make([]Run, len(rows))
	for i, row := range rows {
		runs[i] = Run{row[0], row[1], row[2], row[3]}
	}
	return runs, nil
}

// ReadFile parses the run table in the named file.
func ReadFile(path string) ([]Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	runs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return runs, nil
}
