// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package network describes the detector networks and the figure
// modes that compare them.
package network

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// A Network is a detector-network configuration, named by the
// initials of its detectors.
type Network string

const (
	HLV   Network = "HLV"
	HKLV  Network = "HKLV"
	HIKLV Network = "HIKLV"
)

// All lists every known network.
var All = []Network{HLV, HKLV, HIKLV}

// DataFile returns the name of the run table for n.
func (n Network) DataFile() string {
	return "err_snr_antenna_" + string(n)
}

// OutlierFile is the name of the outlier list shared by all networks.
const OutlierFile = "outliers_HLV"

// Style is the drawing style of one network's histograms and
// summary lines.
type Style struct {
	Fill  color.Color
	Stats color.Color
}

// Styles are assigned to networks by their position in a mode.
var Styles = []Style{
	{Fill: color.Gray{Y: 128}, Stats: color.Black},
	{Fill: color.RGBA{G: 255, B: 255, A: 255}, Stats: color.RGBA{B: 255, A: 255}},
	{Fill: color.White, Stats: color.RGBA{R: 255, A: 255}},
}

// A Mode selects the networks drawn in one figure.
type Mode struct {
	Name string

	// Networks are drawn in this order. Networks[i] uses
	// Styles[i].
	Networks []Network

	// Scatter is the network whose runs are drawn in the scatter
	// panel.
	Scatter Network

	Title  string
	Output string
}

// Style returns the style of the i'th network of m.
func (m *Mode) Style(i int) Style {
	return Styles[i%len(Styles)]
}

const titlePrefix = "SNR, Error Regions, and Network Antenna Pattern for "

// Modes lists the figure modes in the order they are documented.
var Modes = []*Mode{
	{
		Name:     "all",
		Networks: []Network{HLV, HKLV, HIKLV},
		Scatter:  HIKLV,
		Title:    titlePrefix + "HLV, HKLV, and HIKLV with Scatterplot of HIKLV",
		Output:   "figures/snr_vs_err_allconfigs.png",
	},
	{
		Name:     "HLV_to_HKLV",
		Networks: []Network{HLV, HKLV},
		Scatter:  HKLV,
		Title:    titlePrefix + "HLV and HKLV with Scatterplot of HKLV",
		Output:   "figures/snr_vs_err_HLV_to_HKLV.png",
	},
	{
		Name:     "HKLV_to_HIKLV",
		Networks: []Network{HKLV, HIKLV},
		Scatter:  HIKLV,
		Title:    titlePrefix + "HKLV and HIKLV with Scatterplot of HIKLV",
		Output:   "figures/snr_vs_err_HKLV_to_HIKLV.png",
	},
	{
		Name:     "HLV",
		Networks: []Network{HLV},
		Scatter:  HLV,
		Title:    titlePrefix + "HLV",
		Output:   "figures/snr_vs_err_HLV.png",
	},
}

// ErrUnknownMode is returned by Lookup for a name that is not in
// Modes.
var ErrUnknownMode = errors.New("unknown network mode")

// Lookup returns the mode with the given name.
func Lookup(name string) (*Mode, error) {
	for _, m := range Modes {
		if m.Name == name {
			return m, nil
		}
	}
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = m.Name
	}
	if name == "" {
		return nil, fmt.Errorf("%w: none given (want one of %s)", ErrUnknownMode, strings.Join(names, ", "))
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownMode, name, strings.Join(names, ", "))
}
