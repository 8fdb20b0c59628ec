// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"errors"
	"testing"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gomat/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// newBase allocates a base model or fails the test
func newBase(tst *testing.T, name string, extra ...*dbf.P) solid.Small {
	p := append(dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
	}, extra...)
	mdl, err := solid.New(name, prms.New(p))
	if err != nil {
		tst.Fatalf("solid.New(%q) failed: %v\n", name, err)
	}
	return mdl
}

var tightTol = prms.New(dbf.Params{&dbf.P{N: "tol", V: 1e-12}})

func Test_damaged01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("damaged01. elastic base with creep damage")

	// model
	el := solid.NewElasticityConst(1000, 0.25)
	law := &ClassicalCreep{A: cte(20), Xi: cte(2), Phi: cte(1)}
	mdl, err := NewScalarDamaged(newBase(tst, "elast"), law, el, tightTol)
	if err != nil {
		tst.Errorf("NewScalarDamaged failed: %v\n", err)
		return
	}

	// run
	var drv solid.Driver
	drv.Init(mdl)
	drv.TstD = tst
	var pth solid.Path
	pth.AddLinear([]float64{1e-2, 0, 0, 0, 0, 0}, 300, 5, 5)
	pth.AddLinear([]float64{1e-2, 0, 0, 0, 0, 0}, 300, 10, 5)
	err = drv.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// check
	C := utl.Alloc(6, 6)
	el.C(C, 300)
	dold := 0.0
	for i, s := range drv.Res {
		d, _ := s.Hist.Scalar("damage")
		io.Pforan("t = %4.1f  d = %.6f  σ0 = %v\n", s.Time, d, s.Sig[0])
		if i > 0 && d <= dold {
			tst.Errorf("damage should increase: %g <= %g\n", d, dold)
			return
		}
		dold = d
		σb := make([]float64, 6)
		solid.MatVecMul(σb, C, s.Eps)
		for k := 0; k < 6; k++ {
			σb[k] *= 1 - d
		}
		chk.Array(tst, io.Sf("σ @ %d", i), 1e-10, s.Sig, σb)
		ε, err := mdl.ElasticStrains(s.Sig, s.Temp, s.Hist)
		if err != nil {
			tst.Errorf("ElasticStrains failed: %v\n", err)
			return
		}
		chk.Array(tst, io.Sf("εe @ %d", i), 1e-11, ε, s.Eps)
	}
}

func Test_damaged02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("damaged02. plastic base with power-law damage")

	el := solid.NewElasticityConst(1000, 0.25)
	base := newBase(tst, "dp", &dbf.P{N: "qy0", V: 2}, &dbf.P{N: "H", V: 50})
	law := &PowerLaw{Elast: el, A: cte(1), Alpha: cte(1)}
	mdl, err := NewScalarDamaged(base, law, el, tightTol)
	if err != nil {
		tst.Errorf("NewScalarDamaged failed: %v\n", err)
		return
	}

	var drv solid.Driver
	drv.Init(mdl)
	drv.TstD = tst
	var pth solid.Path
	pth.AddLinear([]float64{5e-3, -2e-3, -1e-3, 1e-3, 0.5e-3, -0.8e-3}, 300, 5, 5)
	err = drv.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	last := drv.Res[len(drv.Res)-1]
	chk.Strings(tst, "slots", last.Hist.Names(), []string{"damage", "alpha"})
	d, _ := last.Hist.Scalar("damage")
	α, _ := last.Hist.Scalar("alpha")
	io.Pforan("d = %v  α = %v\n", d, α)
	if d <= 0 || α <= 0 {
		tst.Errorf("damage and hardening should be positive: d=%g α=%g\n", d, α)
		return
	}
	d1, _ := drv.Res[1].Hist.Scalar("damage")
	chk.Float64(tst, "d @ 1 (elastic)", 1e-12, d1, 0)
}

func Test_damaged03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("damaged03. errors")

	el := solid.NewElasticityConst(1000, 0.25)
	law := &ClassicalCreep{A: cte(20), Xi: cte(2), Phi: cte(1)}
	base := newBase(tst, "dp", &dbf.P{N: "qy0", V: 2})

	// configuration
	if _, err := NewScalarDamaged(nil, law, el, nil); !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("NewScalarDamaged without base should have failed. err=%v\n", err)
	}
	collide := &prms.Set{Var: "alpha"}
	if _, err := NewScalarDamaged(base, law, el, collide); !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("NewScalarDamaged with colliding names should have failed. err=%v\n", err)
	}
	wrong := prms.New(dbf.Params{&dbf.P{N: "E", V: 1}})
	if _, err := NewScalarDamaged(base, law, el, wrong); !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("NewScalarDamaged with wrong parameter should have failed. err=%v\n", err)
	}

	// fully damaged
	mdl, err := NewScalarDamaged(base, law, el, nil)
	if err != nil {
		tst.Errorf("NewScalarDamaged failed: %v\n", err)
		return
	}
	sold, err := solid.NewState(mdl)
	if err != nil {
		tst.Errorf("NewState failed: %v\n", err)
		return
	}
	sold.Hist.SetScalar("damage", 1)
	snew := sold.Next([]float64{1e-3, 0, 0, 0, 0, 0}, 300, 1)
	err = mdl.Update(utl.Alloc(6, 6), snew, sold)
	if !errors.Is(err, errs.ErrNumericDomain) {
		tst.Errorf("Update should have failed with a numeric domain error. err=%v\n", err)
		return
	}
	chk.Array(tst, "σ untouched", 1e-17, snew.Sig, make([]float64, 6))
	_, err = mdl.ElasticStrains(snew.Sig, 300, snew.Hist)
	if !errors.Is(err, errs.ErrNumericDomain) {
		tst.Errorf("ElasticStrains should have failed with a numeric domain error. err=%v\n", err)
		return
	}

	// history of another model
	other, err := solid.NewState(base)
	if err != nil {
		tst.Errorf("NewState failed: %v\n", err)
		return
	}
	sold.Hist.SetScalar("damage", 0)
	snew = other.Next([]float64{1e-3, 0, 0, 0, 0, 0}, 300, 1)
	hold := append([]float64{}, snew.Hist.Data()...)
	err = mdl.Update(utl.Alloc(6, 6), snew, sold)
	if !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("Update with another layout should have failed with a configuration error. err=%v\n", err)
		return
	}
	chk.Array(tst, "σ untouched", 1e-17, snew.Sig, make([]float64, 6))
	chk.Array(tst, "history untouched", 1e-17, snew.Hist.Data(), hold)
}
