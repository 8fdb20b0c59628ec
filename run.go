// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gomat/inp"
	"github.com/cpmech/gomat/mdl/solid"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive one material point along a strain path",
	Long: `Reads a material database and a strain path, integrates the selected material
along the path and prints stresses, history and energies at every step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		matfn, _ := cmd.Flags().GetString("mat")
		name, _ := cmd.Flags().GetString("name")
		pathfn, _ := cmd.Flags().GetString("path")
		verbose, _ := cmd.Flags().GetBool("verbose")
		return runPoint(matfn, name, pathfn, verbose)
	},
}

func init() {
	runCmd.Flags().String("mat", "", "material file (.mat or .yaml)")
	runCmd.Flags().String("name", "", "name of solid material")
	runCmd.Flags().String("path", "", "strain path file (.json or .yaml)")
	runCmd.Flags().Bool("verbose", false, "show messages")
	runCmd.MarkFlagRequired("mat")
	runCmd.MarkFlagRequired("name")
	runCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(runCmd)
}

// runPoint runs one material point simulation
func runPoint(matfn, name, pathfn string, verbose bool) (err error) {

	// input data
	mdb, err := inp.ReadMat(filepath.Dir(matfn), filepath.Base(matfn))
	if err != nil {
		return
	}
	mdl, err := mdb.Solid(name)
	if err != nil {
		return
	}
	pth, err := solid.ReadPath(pathfn)
	if err != nil {
		return
	}

	// message
	if verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"material file", "mat", matfn,
			"material name", "name", name,
			"strain path", "path", pathfn,
			"number of points", "np", pth.Size(),
		))
	}

	// run
	var drv solid.Driver
	if err = drv.Init(mdl); err != nil {
		return
	}
	if err = drv.Run(pth); err != nil {
		return
	}

	// results
	io.Pf("%6s %10s %10s %13s %13s %13s %13s %13s %13s %13s %13s\n", "step", "time", "temp", "σxx", "σyy", "σzz", "σxy", "σyz", "σzx", "U", "P")
	for i, s := range drv.Res {
		io.Pf("%6d %10.4g %10.4g", i, s.Time, s.Temp)
		for _, v := range s.Sig {
			io.Pf(" %13.6e", v)
		}
		io.Pf(" %13.6e %13.6e\n", s.U, s.P)
		if verbose && s.Hist.Len() > 0 {
			io.Pforan("%6s %v\n", "", s.Hist)
		}
	}
	return
}
