// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harden

import (
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gosl/fun/dbf"
)

// Voce implements the saturating evolution
//
//	Factor = b(T) ⋅ (τsat(T) − strength)
type Voce struct {
	TauSat dbf.T // saturated strength
	B      dbf.T // rate of saturation
	Tau0   dbf.T // static strength
}

// add to database
func init() {
	allocators["voce"] = func(set *prms.Set, subs []Law) (Law, error) {
		if err := set.Check("voce", "tau_sat", "b", "tau_0"); err != nil {
			return nil, err
		}
		fcns, err := set.FuncList("tau_sat", "b", "tau_0")
		if err != nil {
			return nil, err
		}
		return NewVoce(set.Var, fcns[0], fcns[1], fcns[2])
	}
}

// NewVoce returns a single-strength law with Voce evolution
func NewVoce(name string, tauSat, b, tau0 dbf.T) (*SingleStrength, error) {
	return NewSingleStrength(name, &Voce{TauSat: tauSat, B: b, Tau0: tau0})
}

// InitStrength returns zero
func (o *Voce) InitStrength() float64 { return 0 }

// StaticStrength returns τ0(T)
func (o *Voce) StaticStrength(T float64) float64 { return o.Tau0.F(T, nil) }

// Factor returns b ⋅ (τsat − strength)
func (o *Voce) Factor(strength, T float64) float64 {
	return o.B.F(T, nil) * (o.TauSat.F(T, nil) - strength)
}

// DFactor returns −b
func (o *Voce) DFactor(strength, T float64) float64 {
	return -o.B.F(T, nil)
}

// Linear implements linear hardening
//
//	Factor = k(T)
type Linear struct {
	K    dbf.T // hardening modulus
	Tau0 dbf.T // static strength
}

// add to database
func init() {
	allocators["linear"] = func(set *prms.Set, subs []Law) (Law, error) {
		if err := set.Check("linear", "k", "tau_0"); err != nil {
			return nil, err
		}
		fcns, err := set.FuncList("k", "tau_0")
		if err != nil {
			return nil, err
		}
		return NewSingleStrength(set.Var, &Linear{K: fcns[0], Tau0: fcns[1]})
	}
}

// InitStrength returns zero
func (o *Linear) InitStrength() float64 { return 0 }

// StaticStrength returns τ0(T)
func (o *Linear) StaticStrength(T float64) float64 { return o.Tau0.F(T, nil) }

// Factor returns k
func (o *Linear) Factor(strength, T float64) float64 { return o.K.F(T, nil) }

// DFactor returns zero
func (o *Linear) DFactor(strength, T float64) float64 { return 0 }
