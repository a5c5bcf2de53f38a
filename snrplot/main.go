// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command snrplot plots localization results across detector
// networks.
//
// snrplot reads the run tables err_snr_antenna_HLV,
// err_snr_antenna_HKLV and err_snr_antenna_HIKLV and the outlier list
// outliers_HLV from the current directory (or the directory given by
// -C). It draws error region against network antenna pattern for one
// network, colored by SNR, with histograms of both quantities for
// every network of the selected mode. Outlier runs are marked in the
// scatter and left out of the error region histogram and of all
// percentile lines.
//
// The figure is written under figures/, which must exist. With
// --table, snrplot prints the summary statistics instead.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"

	"github.com/gwloc/netloc/internal/figure"
	"github.com/gwloc/netloc/internal/network"
	"github.com/gwloc/netloc/runtab"
)

type config struct {
	Network string
	Dir     string
	Output  string
	Table   bool
	DPI     int

	// Width and Height are in inches.
	Width, Height float64

	Verbose bool
}

func main() {
	log.SetPrefix("snrplot: ")
	log.SetFlags(0)

	var cfg config
	pflag.StringVarP(&cfg.Network, "network", "n", "", "Choices are all, 'HLV_to_HKLV', and 'HKLV_to_HIKLV'")
	pflag.StringVarP(&cfg.Dir, "dir", "C", ".", "read tables from and write figures under `dir`")
	pflag.StringVarP(&cfg.Output, "output", "o", "", "write the figure to `file` (default: by network mode)")
	pflag.BoolVar(&cfg.Table, "table", false, "print summary statistics instead of a figure")
	pflag.IntVar(&cfg.DPI, "dpi", 100, "figure resolution in dots per inch")
	pflag.Float64Var(&cfg.Width, "width", 8, "figure width in inches")
	pflag.Float64Var(&cfg.Height, "height", 6.4, "figure height in inches")
	pflag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log each network's statistics")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -n network [flags]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() != 0 {
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, os.Args, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, args []string, stdout io.Writer) error {
	mode, err := network.Lookup(cfg.Network)
	if err != nil {
		return err
	}

	// Load every table, whatever the mode draws.
	tables := make(map[network.Network][]runtab.Run)
	for _, n := range network.All {
		runs, err := runtab.ReadFile(filepath.Join(cfg.Dir, n.DataFile()))
		if err != nil {
			return err
		}
		tables[n] = runs
	}
	outliers, err := runtab.ReadOutliers(filepath.Join(cfg.Dir, network.OutlierFile))
	if err != nil {
		return err
	}

	var passes []*pass
	for i, n := range mode.Networks {
		p, err := newPass(n, mode.Style(i), tables[n], outliers)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			log.Printf("%s: %d runs, %d outliers; error region median %.4g [%.4g, %.4g]; antenna pattern median %.3f [%.3f, %.3f]",
				n, len(p.Runs), len(p.Excluded),
				p.Error.Median, p.Error.P5, p.Error.P95,
				p.Antenna.Median, p.Antenna.P5, p.Antenna.P95)
		}
		passes = append(passes, p)
	}

	if cfg.Table {
		printTable(stdout, args, passes)
		return nil
	}

	fig := figure.New(mode.Title)
	fig.Width = vg.Length(cfg.Width) * vg.Inch
	fig.Height = vg.Length(cfg.Height) * vg.Inch
	fig.DPI = cfg.DPI
	for _, p := range passes {
		if p.Network == mode.Scatter {
			if err := fig.AddScatter(p.scatterPoints(outliers)); err != nil {
				return err
			}
		}
		if err := fig.AddMarginal(p.marginal()); err != nil {
			return err
		}
	}

	out := cfg.Output
	if out == "" {
		out = filepath.Join(cfg.Dir, mode.Output)
	}
	if err := fig.Save(out); err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("wrote %s", out)
	}
	return nil
}
