// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harden

import (
	"math"
	"testing"

	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/lattice"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/rnd"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// coupledRule: sum = σ⋅σ / (1 + h⋅h)
type coupledRule struct{}

func (o coupledRule) parts(σ []float64, h *hist.History) (s, q float64) {
	for _, v := range σ {
		s += v * v
	}
	q = 1
	for _, v := range h.Data() {
		q += v * v
	}
	return
}

func (o coupledRule) SumSlip(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (float64, error) {
	s, q := o.parts(σ, h)
	return s / q, nil
}

func (o coupledRule) DSumSlipDStress(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) ([]float64, error) {
	_, q := o.parts(σ, h)
	res := make([]float64, 6)
	for i, v := range σ {
		res[i] = 2 * v / q
	}
	return res, nil
}

func (o coupledRule) DSumSlipDHist(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (*hist.History, error) {
	s, q := o.parts(σ, h)
	res, err := h.Derivative(hist.Scalar)
	if err != nil {
		return nil, err
	}
	d := res.Data()
	for i, v := range h.Data() {
		d[i] = -s * 2 * v / (q * q)
	}
	return res, nil
}

// stressRule: sum = a ⋅ σ⋅σ + c
type stressRule struct{ a, c float64 }

func (o stressRule) SumSlip(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (float64, error) {
	s := 0.0
	for _, v := range σ {
		s += v * v
	}
	return o.a*s + o.c, nil
}

func (o stressRule) DSumSlipDStress(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) ([]float64, error) {
	res := make([]float64, 6)
	for i, v := range σ {
		res[i] = 2 * o.a * v
	}
	return res, nil
}

func (o stressRule) DSumSlipDHist(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (*hist.History, error) {
	return h.Derivative(hist.Scalar)
}

// randStress returns a random stress
func randStress() []float64 {
	σ := make([]float64, 6)
	for i := range σ {
		σ[i] = rnd.Float64(-2, 2)
	}
	return σ
}

// randHist fills a history with random values
func randHist(h *hist.History, lo, hi float64) {
	for i := range h.Data() {
		h.Data()[i] = rnd.Float64(lo, hi)
	}
}

// checkDerivs compares d(rate)/dσ and the total d(rate)/dh with numerical derivatives
func checkDerivs(tst *testing.T, law Law, σ []float64, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) {

	// rate function
	rate := func(s []float64, hh *hist.History) []float64 {
		r, err := law.Hist(s, lattice.Identity(), hh, L, T, R)
		if err != nil {
			tst.Fatalf("Hist failed: %v\n", err)
		}
		return r.Data()
	}
	own := law.Own()
	n := own.Size()

	// d(rate)/dσ
	ds, err := law.DHistDs(σ, lattice.Identity(), h, L, T, R)
	if err != nil {
		tst.Errorf("DHistDs failed: %v\n", err)
		return
	}
	ana, err := hist.UnravelKind(ds, own, hist.Symmetric)
	if err != nil {
		tst.Errorf("UnravelKind failed: %v\n", err)
		return
	}
	for j := 0; j < 6; j++ {
		δ := 1e-3 * math.Max(1, math.Abs(σ[j]))
		for i := 0; i < n; i++ {
			dnum := num.DerivCen5(σ[j], δ, func(x float64) float64 {
				s := append([]float64{}, σ...)
				s[j] = x
				return rate(s, h)[i]
			})
			checkNum(tst, io.Sf("d(rate%d)/d(σ%d)", i, j), ana[i][j], dnum)
		}
	}

	// d(rate)/dh
	dh, err := DHistDhTotal(law, σ, lattice.Identity(), h, L, T, R)
	if err != nil {
		tst.Errorf("DHistDhTotal failed: %v\n", err)
		return
	}
	ana, err = hist.Unravel(dh, own, h)
	if err != nil {
		tst.Errorf("Unravel failed: %v\n", err)
		return
	}
	for j := 0; j < h.Size(); j++ {
		δ := 1e-3 * math.Max(1, math.Abs(h.Data()[j]))
		for i := 0; i < n; i++ {
			dnum := num.DerivCen5(h.Data()[j], δ, func(x float64) float64 {
				hh := h.GetCopy()
				hh.Data()[j] = x
				return rate(σ, hh)[i]
			})
			checkNum(tst, io.Sf("d(rate%d)/d(h%d)", i, j), ana[i][j], dnum)
		}
	}
}

// checkNum compares analytical and numerical values with a relative tolerance
func checkNum(tst *testing.T, msg string, ana, dnum float64) {
	tol := 1e-6 * math.Max(1, math.Abs(dnum))
	if chk.Verbose {
		io.Pf("%30s : ana = %23.15e  num = %23.15e\n", msg, ana, dnum)
	}
	if math.Abs(ana-dnum) > tol {
		tst.Errorf("%s failed: ana = %g != num = %g\n", msg, ana, dnum)
	}
}
