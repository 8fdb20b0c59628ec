// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"testing"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_dp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dp01. von Mises")

	// allocate driver
	mdl := newModel(tst, "dp", dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "M", V: 0},
		&dbf.P{N: "Mb", V: 0},
		&dbf.P{N: "qy0", V: 2},
		&dbf.P{N: "H", V: 50},
	})
	var drv Driver
	err := drv.Init(mdl)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	drv.TstD = tst

	// path
	var pth Path
	err = pth.AddLinear([]float64{5e-3, -2e-3, -1e-3, 1e-3, 0.5e-3, -0.8e-3}, 20, 5, 5)
	if err != nil {
		tst.Errorf("AddLinear failed: %v\n", err)
		return
	}

	// run
	err = drv.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// check
	dp := mdl.(*DruckerPrager)
	chk.Int(tst, "number of results", len(drv.Res), 6)
	α1, _ := drv.Res[1].Hist.Scalar("alpha")
	chk.Float64(tst, "α @ 1 (elastic)", 1e-17, α1, 0)
	for i := 2; i < len(drv.Res); i++ {
		s := drv.Res[i]
		α, _ := s.Hist.Scalar("alpha")
		_, q := Pq(s.Sig)
		io.Pforan("q = %v  α = %v  u = %v  p = %v\n", q, α, s.U, s.P)
		if α <= 0 {
			tst.Errorf("α should be positive after yielding. α=%g\n", α)
			return
		}
		chk.Float64(tst, io.Sf("f @ %d", i), 1e-12, dp.YieldFunc(s.Sig, α), 0)
		if s.P <= drv.Res[i-1].P {
			tst.Errorf("dissipation must increase while yielding: %g <= %g\n", s.P, drv.Res[i-1].P)
			return
		}
	}
}

func Test_dp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dp02. Drucker-Prager and apex")

	// Mohr-Coulomb matching
	M, qy0, err := Mmatch(10, 30, 0)
	if err != nil {
		tst.Errorf("Mmatch failed: %v\n", err)
		return
	}
	chk.Float64(tst, "M", 1e-15, M, 1.2)
	chk.Float64(tst, "qy0", 1e-13, qy0, 6.0*10.0*0.8660254037844386/2.5)
	_, _, err = Mmatch(10, 30, 3)
	if !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("Mmatch with typ=3 should have failed. err=%v\n", err)
		return
	}

	// model
	mdl := newModel(tst, "dp", dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "M", V: 0.5},
		&dbf.P{N: "Mb", V: 0.5},
		&dbf.P{N: "qy0", V: 1},
		&dbf.P{N: "H", V: 20},
	})
	dp := mdl.(*DruckerPrager)

	// shear under compression: tangent check
	var drv Driver
	drv.Init(mdl)
	drv.TstD = tst
	var pth Path
	pth.AddLinear([]float64{-1e-3, -1e-3, -1e-3, 0, 0, 0}, 20, 1, 1)
	pth.AddLinear([]float64{-1e-3, -1e-3, -1e-3, 12e-3, 0, 3e-3}, 20, 2, 4)
	err = drv.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	s := drv.Res[len(drv.Res)-1]
	α, _ := s.Hist.Scalar("alpha")
	chk.Float64(tst, "f", 1e-12, dp.YieldFunc(s.Sig, α), 0)

	// hydrostatic tension: return to apex
	var apex Driver
	apex.Init(mdl)
	var tens Path
	tens.AddLinear([]float64{1e-2, 1e-2, 1e-2, 0, 0, 0}, 20, 1, 1)
	err = apex.Run(&tens)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	s = apex.Res[1]
	p, q := Pq(s.Sig)
	α, _ = s.Hist.Scalar("alpha")
	io.Pforan("apex: p = %v  q = %v  α = %v\n", p, q, α)
	chk.Float64(tst, "q @ apex", 1e-12, q, 0)
	chk.Float64(tst, "f @ apex", 1e-12, dp.YieldFunc(s.Sig, α), 0)
}
