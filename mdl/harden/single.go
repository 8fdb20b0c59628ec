// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harden

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/lattice"
)

// SingleStrength implements a law with one scalar strength shared by all slip systems
type SingleStrength struct {
	Var string          // name of the history slot
	Evo SingleEvolution // evolution of the strength
	own *hist.History
}

// NewSingleStrength returns a new single-strength law
func NewSingleStrength(name string, evo SingleEvolution) (o *SingleStrength, err error) {
	if name == "" {
		name = "strength"
	}
	if evo == nil {
		return nil, errs.Config("single-strength law %q requires an evolution", name)
	}
	o = &SingleStrength{Var: name, Evo: evo}
	o.own, err = own(o)
	return
}

// Own returns a blank history with the strength slot
func (o *SingleStrength) Own() *hist.History { return o.own.CopyBlank() }

// Populate adds the strength slot
func (o *SingleStrength) Populate(h *hist.History) error {
	return h.AddScalar(o.Var)
}

// InitHist sets the initial strength
func (o *SingleStrength) InitHist(h *hist.History) error {
	return h.SetScalar(o.Var, o.Evo.InitStrength())
}

// Static returns the static strength
func (o *SingleStrength) Static(T float64) float64 {
	return o.Evo.StaticStrength(T)
}

// HistToTau returns static strength + strength
func (o *SingleStrength) HistToTau(g, i int, h *hist.History, L *lattice.Lattice, T float64) (float64, error) {
	if err := L.Check(g, i); err != nil {
		return 0, err
	}
	s, err := h.Scalar(o.Var)
	if err != nil {
		return 0, err
	}
	return o.Evo.StaticStrength(T) + s, nil
}

// DHistToTau returns d(tau)/d(h)
func (o *SingleStrength) DHistToTau(g, i int, h *hist.History, L *lattice.Lattice, T float64) (*hist.History, error) {
	if err := L.Check(g, i); err != nil {
		return nil, err
	}
	res, err := h.Derivative(hist.Scalar)
	if err != nil {
		return nil, err
	}
	return res, res.SetScalar(o.Var, 1)
}

// Hist returns the strength rate
func (o *SingleStrength) Hist(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	s, err := h.Scalar(o.Var)
	if err != nil {
		return nil, err
	}
	slip, err := R.SumSlip(σ, Q, h, L, T)
	if err != nil {
		return nil, err
	}
	res := o.own.CopyBlank()
	return res, res.SetScalar(o.Var, o.Evo.Factor(s, T)*slip)
}

// DHistDs returns d(rate)/d(σ)
func (o *SingleStrength) DHistDs(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	s, err := h.Scalar(o.Var)
	if err != nil {
		return nil, err
	}
	dslip, err := R.DSumSlipDStress(σ, Q, h, L, T)
	if err != nil {
		return nil, err
	}
	res, err := o.own.Derivative(hist.Symmetric)
	if err != nil {
		return nil, err
	}
	v, err := res.Symmetric(o.Var)
	if err != nil {
		return nil, err
	}
	f := o.Evo.Factor(s, T)
	for i := 0; i < 6; i++ {
		v[i] = f * dslip[i]
	}
	return res, nil
}

// DHistDh returns d(rate)/d(h)
func (o *SingleStrength) DHistDh(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	s, err := h.Scalar(o.Var)
	if err != nil {
		return nil, err
	}
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
	f := o.Evo.Factor(s, T)
	for _, b := range h.Names() {
		if err = block(res, o.Var, dslip, b, f); err != nil {
			return nil, err
		}
	}
	d, err := res.Ref(o.Var + "_" + o.Var)
	if err != nil {
		return nil, err
	}
	*d += o.Evo.DFactor(s, T) * slip
	return res, nil
}
