// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harden

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/lattice"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// MultiVoce implements N independent Voce strengths shared by all slip systems
// Slots are named Var1, Var2, ..., VarN. The rate of slot k depends on slot k only:
// the blocks d(rate_k)/d(h_j), j ≠ k, are zero.
type MultiVoce struct {
	Var    string  // base name of the slots
	TauSat []dbf.T // saturated strengths
	B      []dbf.T // rates of saturation
	Tau0   dbf.T   // static strength
	names  []string
	own    *hist.History
}

// add to database
func init() {
	allocators["multi-voce"] = func(set *prms.Set, subs []Law) (Law, error) {
		var allowed []string
		var tauSat, b []dbf.T
		for k := 1; set.Has(io.Sf("b%d", k)); k++ {
			fcns, err := set.FuncList(io.Sf("tau_sat%d", k), io.Sf("b%d", k))
			if err != nil {
				return nil, err
			}
			tauSat = append(tauSat, fcns[0])
			b = append(b, fcns[1])
			allowed = append(allowed, io.Sf("tau_sat%d", k), io.Sf("b%d", k))
		}
		if err := set.Check("multi-voce", append(allowed, "tau_0")...); err != nil {
			return nil, err
		}
		tau0, err := set.Func("tau_0")
		if err != nil {
			return nil, err
		}
		return NewMultiVoce(set.Var, tauSat, b, tau0)
	}
}

// NewMultiVoce returns a new multi-strength Voce law
func NewMultiVoce(name string, tauSat, b []dbf.T, tau0 dbf.T) (o *MultiVoce, err error) {
	if name == "" {
		name = "strength"
	}
	if len(tauSat) == 0 || len(tauSat) != len(b) {
		return nil, errs.Config("multi-voce requires the same positive number of tau_sat and b functions; %d != %d", len(tauSat), len(b))
	}
	o = &MultiVoce{Var: name, TauSat: tauSat, B: b, Tau0: tau0}
	o.names = make([]string, len(b))
	for k := range b {
		o.names[k] = io.Sf("%s%d", name, k+1)
	}
	o.own, err = own(o)
	return
}

// N returns the number of strengths
func (o *MultiVoce) N() int { return len(o.names) }

// Own returns a blank history with the strength slots
func (o *MultiVoce) Own() *hist.History { return o.own.CopyBlank() }

// Populate adds the strength slots
func (o *MultiVoce) Populate(h *hist.History) error {
	for _, name := range o.names {
		if err := h.AddScalar(name); err != nil {
			return err
		}
	}
	return nil
}

// InitHist sets all strengths to zero
func (o *MultiVoce) InitHist(h *hist.History) error {
	for _, name := range o.names {
		if err := h.SetScalar(name, 0); err != nil {
			return err
		}
	}
	return nil
}

// Static returns τ0(T)
func (o *MultiVoce) Static(T float64) float64 { return o.Tau0.F(T, nil) }

// HistToTau returns τ0 + Σ strength_k
func (o *MultiVoce) HistToTau(g, i int, h *hist.History, L *lattice.Lattice, T float64) (τ float64, err error) {
	if err = L.Check(g, i); err != nil {
		return
	}
	τ = o.Tau0.F(T, nil)
	for _, name := range o.names {
		s, err := h.Scalar(name)
		if err != nil {
			return 0, err
		}
		τ += s
	}
	return
}

// DHistToTau returns d(tau)/d(h)
func (o *MultiVoce) DHistToTau(g, i int, h *hist.History, L *lattice.Lattice, T float64) (*hist.History, error) {
	if err := L.Check(g, i); err != nil {
		return nil, err
	}
	res, err := h.Derivative(hist.Scalar)
	if err != nil {
		return nil, err
	}
	for _, name := range o.names {
		if err = res.SetScalar(name, 1); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FactorI returns b_k ⋅ (τsat_k − strength_k) for k in [0, N)
func (o *MultiVoce) FactorI(k int, h *hist.History, T float64) (float64, error) {
	if k < 0 || k >= len(o.names) {
		return 0, errs.Range("strength index %d is not in [0, %d)", k, len(o.names))
	}
	s, err := h.Scalar(o.names[k])
	if err != nil {
		return 0, err
	}
	return o.B[k].F(T, nil) * (o.TauSat[k].F(T, nil) - s), nil
}

// DFactorI returns −b_k for k in [0, N)
func (o *MultiVoce) DFactorI(k int, T float64) (float64, error) {
	if k < 0 || k >= len(o.names) {
		return 0, errs.Range("strength index %d is not in [0, %d)", k, len(o.names))
	}
	return -o.B[k].F(T, nil), nil
}

// Hist returns the strength rates
func (o *MultiVoce) Hist(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	slip, err := R.SumSlip(σ, Q, h, L, T)
	if err != nil {
		return nil, err
	}
	res := o.own.CopyBlank()
	for k, name := range o.names {
		f, err := o.FactorI(k, h, T)
		if err != nil {
			return nil, err
		}
		if err = res.SetScalar(name, f*slip); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// DHistDs returns d(rates)/d(σ)
func (o *MultiVoce) DHistDs(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	dslip, err := R.DSumSlipDStress(σ, Q, h, L, T)
	if err != nil {
		return nil, err
	}
	res, err := o.own.Derivative(hist.Symmetric)
	if err != nil {
		return nil, err
	}
	for k, name := range o.names {
		f, err := o.FactorI(k, h, T)
		if err != nil {
			return nil, err
		}
		v, err := res.Symmetric(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < 6; i++ {
			v[i] = f * dslip[i]
		}
	}
	return res, nil
}

// DHistDh returns d(rates)/d(h)
// Only the diagonal blocks strength_k/strength_k are non-zero.
func (o *MultiVoce) DHistDh(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	return o.dHistDh(σ, Q, h, L, T, R, false)
}

// DHistDhTotal returns d(rates)/d(h) including f_k ⋅ d(sum of slip rates)/d(h_j) for all j
func (o *MultiVoce) DHistDhTotal(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	return o.dHistDh(σ, Q, h, L, T, R, true)
}

// dHistDh computes d(rates)/d(h); cross blocks are zero unless total is set
func (o *MultiVoce) dHistDh(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule, total bool) (*hist.History, error) {
	slip, err := R.SumSlip(σ, Q, h, L, T)
	if err != nil {
		return nil, err
	}
	dslip, err := R.DSumSlipDHist(σ, Q, h, L, T)
	if err != nil {
		return nil, err
	}
	res, err := o.own.DerivativeOf(h)
	if err != nil {
		return nil, err
	}
	for k, a := range o.names {
		f, err := o.FactorI(k, h, T)
		if err != nil {
			return nil, err
		}
		df, err := o.DFactorI(k, T)
		if err != nil {
			return nil, err
		}
		if total {
			for _, b := range h.Names() {
				if err = block(res, a, dslip, b, f); err != nil {
					return nil, err
				}
			}
		} else {
			ds, err := dslip.Scalar(a)
			if err != nil {
				return nil, err
			}
			if err = res.SetScalar(a+"_"+a, f*ds); err != nil {
				return nil, err
			}
		}
		v, err := res.Scalar(a + "_" + a)
		if err != nil {
			return nil, err
		}
		if err = res.SetScalar(a+"_"+a, v+df*slip); err != nil {
			return nil, err
		}
	}
	return res, nil
}
