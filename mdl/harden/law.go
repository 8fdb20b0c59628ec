// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package harden implements slip-hardening laws for crystal plasticity
// A law owns named slots of a history; it never stores values itself.
// Rates are returned in the law's own layout; derivatives with respect to the
// history are taken with respect to every slot of the given (full) history.
package harden

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/lattice"
)

// HistoryOwner declares and initialises history slots
type HistoryOwner interface {
	Populate(h *hist.History) error // adds slots
	InitHist(h *hist.History) error // sets initial values
}

// Strength maps the history to the critical resolved shear stress
// HistToTau = Static + evolving strength; DHistToTau is in h.Derivative(Scalar) layout
type Strength interface {
	Static(T float64) float64
	HistToTau(g, i int, h *hist.History, L *lattice.Lattice, T float64) (float64, error)
	DHistToTau(g, i int, h *hist.History, L *lattice.Lattice, T float64) (*hist.History, error)
}

// SlipRule computes the aggregate slip rate of a crystal
type SlipRule interface {
	SumSlip(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (float64, error)
	DSumSlipDStress(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) ([]float64, error)
	DSumSlipDHist(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (*hist.History, error)
}

// RateLaw computes the rates of the owned slots and their derivatives
// Hist is in the own layout, DHistDs in own.Derivative(Symmetric) and DHistDh in
// own.DerivativeOf(h) layouts.
type RateLaw interface {
	Hist(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error)
	DHistDs(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error)
	DHistDh(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error)
}

// CoupledRateLaw is implemented by laws whose DHistDh reports the dependence of each
// rate on its own slot only; DHistDhTotal includes the dependence through the slip rate
// on every slot of h, as required by an implicit solver.
type CoupledRateLaw interface {
	DHistDhTotal(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error)
}

// DHistDhTotal returns the total derivative d(rates)/d(h) of a law in own.DerivativeOf(h) layout
func DHistDhTotal(law Law, σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	if c, ok := law.(CoupledRateLaw); ok {
		return c.DHistDhTotal(σ, Q, h, L, T, R)
	}
	return law.DHistDh(σ, Q, h, L, T, R)
}

// Law defines a slip-hardening law
type Law interface {
	HistoryOwner
	Strength
	RateLaw
	Own() *hist.History // blank history with the owned slots only
}

// SingleEvolution defines the evolution of a single scalar strength
//
//	rate = Factor(strength, T) ⋅ sum of slip rates
type SingleEvolution interface {
	InitStrength() float64
	StaticStrength(T float64) float64
	Factor(strength, T float64) float64
	DFactor(strength, T float64) float64
}

// Factor returns the evolution factor of a single-strength law
// Laws without a single evolving strength return an UnsupportedOperation error.
func Factor(law Law, strength, T float64) (float64, error) {
	if s, ok := law.(*SingleStrength); ok {
		return s.Evo.Factor(strength, T), nil
	}
	return 0, errs.Unsupported("hardening law %T has no single-strength evolution factor", law)
}

// DFactor returns d(Factor)/d(strength) of a single-strength law
// Laws without a single evolving strength return an UnsupportedOperation error.
func DFactor(law Law, strength, T float64) (float64, error) {
	if s, ok := law.(*SingleStrength); ok {
		return s.Evo.DFactor(strength, T), nil
	}
	return 0, errs.Unsupported("hardening law %T has no single-strength evolution factor", law)
}

// own returns a blank history with the slots declared by owner
func own(owner HistoryOwner) (*hist.History, error) {
	h := hist.New()
	if err := owner.Populate(h); err != nil {
		return nil, err
	}
	return h, nil
}

// block copies the values of the slot b of src (a derivative wrt a scalar) into the
// compound slot a_b of dst
func block(dst *hist.History, a string, src *hist.History, b string, scale float64) error {
	k, err := src.KindOf(b)
	if err != nil {
		return err
	}
	s, err := src.Get(b, k)
	if err != nil {
		return err
	}
	d, err := dst.Get(a+"_"+b, k)
	if err != nil {
		return err
	}
	for i, v := range s {
		d[i] += scale * v
	}
	return nil
}
