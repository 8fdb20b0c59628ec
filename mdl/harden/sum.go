// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harden

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/lattice"
	"github.com/cpmech/gomat/mdl/prms"
)

// Sum implements the sum of hardening laws
// The strength is the sum of the strengths of all laws (static and evolving);
// slots and rates are the concatenation of those of every law.
type Sum struct {
	Laws []Law
	own  *hist.History
}

// add to database
func init() {
	allocators["sum"] = func(set *prms.Set, subs []Law) (Law, error) {
		if err := set.Check("sum"); err != nil {
			return nil, err
		}
		return NewSum(subs...)
	}
}

// NewSum returns a new sum of laws
// The laws must not declare slots with the same name.
func NewSum(laws ...Law) (o *Sum, err error) {
	if len(laws) == 0 {
		return nil, errs.Config("sum of hardening laws requires at least one law")
	}
	o = &Sum{Laws: laws}
	o.own, err = own(o)
	return
}

// Own returns a blank history with the slots of all laws
func (o *Sum) Own() *hist.History { return o.own.CopyBlank() }

// Populate adds the slots of all laws
func (o *Sum) Populate(h *hist.History) error {
	for _, law := range o.Laws {
		if err := law.Populate(h); err != nil {
			return err
		}
	}
	return nil
}

// InitHist initialises the slots of all laws
func (o *Sum) InitHist(h *hist.History) error {
	for _, law := range o.Laws {
		if err := law.InitHist(h); err != nil {
			return err
		}
	}
	return nil
}

// Static returns the sum of static strengths
func (o *Sum) Static(T float64) (res float64) {
	for _, law := range o.Laws {
		res += law.Static(T)
	}
	return
}

// HistToTau returns the sum of strengths
func (o *Sum) HistToTau(g, i int, h *hist.History, L *lattice.Lattice, T float64) (τ float64, err error) {
	for _, law := range o.Laws {
		t, err := law.HistToTau(g, i, h, L, T)
		if err != nil {
			return 0, err
		}
		τ += t
	}
	return
}

// DHistToTau returns the sum of d(tau)/d(h)
func (o *Sum) DHistToTau(g, i int, h *hist.History, L *lattice.Lattice, T float64) (*hist.History, error) {
	res, err := h.Derivative(hist.Scalar)
	if err != nil {
		return nil, err
	}
	for _, law := range o.Laws {
		d, err := law.DHistToTau(g, i, h, L, T)
		if err != nil {
			return nil, err
		}
		if err = res.AddScaled(1, d); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// rateFunc computes a rate or derivative of one law
type rateFunc func(law Law) (*hist.History, error)

// concat joins the results of all laws into res; laws own consecutive slots
func (o *Sum) concat(res *hist.History, fcn rateFunc) (*hist.History, error) {
	data := res.Data()
	pos := 0
	for _, law := range o.Laws {
		r, err := fcn(law)
		if err != nil {
			return nil, err
		}
		n := len(r.Data())
		if pos+n > len(data) {
			return nil, errs.Config("sum of hardening laws: result of %T does not fit", law)
		}
		copy(data[pos:pos+n], r.Data())
		pos += n
	}
	if pos != len(data) {
		return nil, errs.Config("sum of hardening laws: results have %d values; %d expected", pos, len(data))
	}
	return res, nil
}

// Hist returns the rates of all laws
func (o *Sum) Hist(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	return o.concat(o.own.CopyBlank(), func(law Law) (*hist.History, error) {
		return law.Hist(σ, Q, h, L, T, R)
	})
}

// DHistDs returns d(rates)/d(σ) of all laws
func (o *Sum) DHistDs(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	res, err := o.own.Derivative(hist.Symmetric)
	if err != nil {
		return nil, err
	}
	return o.concat(res, func(law Law) (*hist.History, error) {
		return law.DHistDs(σ, Q, h, L, T, R)
	})
}

// DHistDh returns d(rates)/d(h) of all laws
func (o *Sum) DHistDh(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	res, err := o.own.DerivativeOf(h)
	if err != nil {
		return nil, err
	}
	return o.concat(res, func(law Law) (*hist.History, error) {
		return law.DHistDh(σ, Q, h, L, T, R)
	})
}

// DHistDhTotal returns the total d(rates)/d(h) of all laws
func (o *Sum) DHistDhTotal(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64, R SlipRule) (*hist.History, error) {
	res, err := o.own.DerivativeOf(h)
	if err != nil {
		return nil, err
	}
	return o.concat(res, func(law Law) (*hist.History, error) {
		return DHistDhTotal(law, σ, Q, h, L, T, R)
	})
}
