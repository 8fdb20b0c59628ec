// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gomat/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/rnd"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func cte(v float64) dbf.T { return &dbf.Cte{C: v} }

// randArgs returns random arguments
func randArgs() *Args {
	a := &Args{
		DNew:    0.2,
		DOld:    0.1,
		EpsNew:  make([]float64, 6),
		EpsOld:  make([]float64, 6),
		SigNew:  make([]float64, 6),
		SigOld:  make([]float64, 6),
		TempNew: 300,
		TempOld: 290,
		TimeNew: 2,
		TimeOld: 1,
	}
	for i := 0; i < 6; i++ {
		a.EpsOld[i] = rnd.Float64(-1e-3, 1e-3)
		a.EpsNew[i] = a.EpsOld[i] + rnd.Float64(-1e-3, 1e-3)
		a.SigOld[i] = rnd.Float64(-5, 5)
		a.SigNew[i] = rnd.Float64(-10, 10)
	}
	return a
}

// testLaws returns one law of each kind
func testLaws() map[string]Law {
	el := solid.NewElasticityConst(1000, 0.25)
	return map[string]Law{
		"power-law":       &PowerLaw{Elast: el, A: cte(1e-2), Alpha: cte(2)},
		"exp-work":        &ExpWork{Elast: el, W0: cte(10), K0: cte(0.01), Af: cte(0.5)},
		"classical-creep": &ClassicalCreep{A: cte(20), Xi: cte(3), Phi: cte(2)},
		"fatigue":         &Fatigue{C: cte(1e-2), M: cte(2), N: cte(1.5), Falpha: cte(1), Fbeta: cte(0.5), Rate0: cte(1e-3)},
	}
}

// checkVal compares analytical and numerical values with a relative tolerance
func checkVal(tst *testing.T, msg string, ana, dnum float64) {
	tol := 1e-5*math.Max(math.Abs(ana), math.Abs(dnum)) + 1e-10
	if chk.Verbose {
		io.Pf("%30s : ana = %23.15e  num = %23.15e\n", msg, ana, dnum)
	}
	if math.Abs(ana-dnum) > tol {
		tst.Errorf("%s failed: ana = %g != num = %g\n", msg, ana, dnum)
	}
}

// checkLaw compares the derivatives of a law with numerical derivatives
func checkLaw(tst *testing.T, name string, law Law, a *Args) {
	inc := func(b *Args) float64 {
		r, err := law.Damage(b)
		if err != nil {
			tst.Fatalf("%s: Damage failed: %v\n", name, err)
		}
		return r.Inc
	}
	res, err := law.Damage(a)
	if err != nil {
		tst.Errorf("%s: Damage failed: %v\n", name, err)
		return
	}
	io.Pforan("%s: Inc = %v\n", name, res.Inc)
	copyArgs := func() *Args {
		b := *a
		b.EpsNew = append([]float64{}, a.EpsNew...)
		b.SigNew = append([]float64{}, a.SigNew...)
		return &b
	}

	// wrt damage
	dd := num.DerivCen5(a.DNew, 1e-4, func(x float64) float64 {
		b := copyArgs()
		b.DNew = x
		return inc(b)
	})
	checkVal(tst, name+": dInc/dd", res.DIncDd, dd)

	// wrt stress and strain
	for j := 0; j < 6; j++ {
		ds := num.DerivCen5(a.SigNew[j], 1e-3*math.Max(1, math.Abs(a.SigNew[j])), func(x float64) float64 {
			b := copyArgs()
			b.SigNew[j] = x
			return inc(b)
		})
		checkVal(tst, io.Sf("%s: dInc/dσ%d", name, j), res.DIncDs[j], ds)
		de := num.DerivCen5(a.EpsNew[j], 1e-5, func(x float64) float64 {
			b := copyArgs()
			b.EpsNew[j] = x
			return inc(b)
		})
		checkVal(tst, io.Sf("%s: dInc/dε%d", name, j), res.DIncDe[j], de)
	}
}

func Test_laws01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laws01. derivatives")

	rnd.Init(1234)
	var all []Law
	for _, name := range []string{"power-law", "exp-work", "classical-creep", "fatigue"} {
		law := testLaws()[name]
		all = append(all, law)
		for k := 0; k < 3; k++ {
			checkLaw(tst, name, law, randArgs())
		}
	}
	comb, err := NewCombined(all...)
	if err != nil {
		tst.Errorf("NewCombined failed: %v\n", err)
		return
	}
	checkLaw(tst, "combined", comb, randArgs())
}

func Test_laws02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laws02. combined of two identical laws")

	rnd.Init(4321)
	for name, law := range testLaws() {
		comb, err := NewCombined(law, law)
		if err != nil {
			tst.Errorf("NewCombined failed: %v\n", err)
			return
		}
		for k := 0; k < 5; k++ {
			a := randArgs()
			a.DNew = rnd.Float64(0, 0.5)
			r1, err := law.Damage(a)
			if err != nil {
				tst.Errorf("%s: Damage failed: %v\n", name, err)
				return
			}
			r2, err := comb.Damage(a)
			if err != nil {
				tst.Errorf("%s: Damage failed: %v\n", name, err)
				return
			}
			chk.Float64(tst, name+": Inc", 1e-17, r2.Inc, 2*r1.Inc)
			chk.Float64(tst, name+": dInc/dd", 1e-17, r2.DIncDd, 2*r1.DIncDd)
			for i := 0; i < 6; i++ {
				chk.Float64(tst, name+": dInc/dε", 1e-17, r2.DIncDe[i], 2*r1.DIncDe[i])
				chk.Float64(tst, name+": dInc/dσ", 1e-17, r2.DIncDs[i], 2*r1.DIncDs[i])
			}
		}
	}
}

func Test_laws03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laws03. errors")

	laws := testLaws()
	check := func(name string, a *Args, kind error) {
		_, err := laws[name].Damage(a)
		if !errors.Is(err, kind) {
			tst.Errorf("%s: Damage should have failed with %v. err=%v\n", name, kind, err)
		}
	}

	// invalid arguments
	a := randArgs()
	a.DNew = 1
	check("classical-creep", a, errs.ErrNumericDomain)
	a = randArgs()
	a.DNew = -0.5
	check("exp-work", a, errs.ErrNumericDomain)
	a = randArgs()
	a.SigNew = a.SigNew[:3]
	for name := range laws {
		check(name, a, errs.ErrConfiguration)
	}
	fat := &Fatigue{C: cte(1), M: cte(1), N: cte(1), Falpha: cte(1), Fbeta: cte(1), Rate0: cte(0)}
	if _, err := fat.Damage(randArgs()); !errors.Is(err, errs.ErrNumericDomain) {
		tst.Errorf("fatigue with rate0=0 should have failed. err=%v\n", err)
	}

	// no driving force
	a = randArgs()
	a.SigNew = make([]float64, 6)
	for _, name := range []string{"power-law", "classical-creep", "fatigue"} {
		r, err := laws[name].Damage(a)
		if err != nil {
			tst.Errorf("%s: Damage failed: %v\n", name, err)
			return
		}
		chk.Float64(tst, name+": Inc(σ=0)", 1e-17, r.Inc, 0)
	}

	// registry
	chk.Strings(tst, "models", Models(), []string{"classical-creep", "combined", "exp-work", "fatigue", "power-law"})
	el := solid.NewElasticityConst(1000, 0.25)
	if _, err := New("nothing", nil, el); !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("New should have failed. err=%v\n", err)
	}
	if _, err := New("combined", nil, el); !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("New(combined) without sub-models should have failed. err=%v\n", err)
	}
	pl := prms.New(dbf.Params{&dbf.P{N: "A", V: 1}, &dbf.P{N: "a", V: 2}})
	if _, err := New("power-law", pl, nil); !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("New(power-law) without elasticity should have failed. err=%v\n", err)
	}
	law, err := New("power-law", pl, el)
	if err != nil {
		tst.Errorf("New(power-law) failed: %v\n", err)
		return
	}
	if _, err = New("power-law", pl, el, law); !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("New(power-law) with sub-models should have failed. err=%v\n", err)
	}
	comb, err := New("combined", nil, el, law, law)
	if err != nil {
		tst.Errorf("New(combined) failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of laws", len(comb.(*Combined).Laws), 2)
	bad := prms.New(dbf.Params{&dbf.P{N: "A", V: 1}, &dbf.P{N: "b", V: 2}})
	if _, err = New("power-law", bad, el); !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("New(power-law) with wrong parameter should have failed. err=%v\n", err)
	}
}
