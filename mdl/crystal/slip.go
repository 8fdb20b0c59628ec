// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package crystal implements small-strain single-crystal plasticity
package crystal

import (
	"math"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/harden"
	"github.com/cpmech/gomat/mdl/lattice"
	"github.com/cpmech/gosl/fun/dbf"
)

// PowerLawSlip implements the power-law (rate-dependent) slip rule
//
//	γ̇ = g0 ⋅ |τ/τ̂|^(n−1) ⋅ τ/τ̂
//
// τ̂ is given by the strength of a hardening law
type PowerLawSlip struct {
	Strength harden.Strength // critical resolved shear stress
	G0       dbf.T           // reference slip rate
	N        dbf.T           // rate sensitivity exponent
}

// system holds the slip data of one system
type system struct {
	P    []float64 // Schmid tensor (Mandel)
	τ    float64   // resolved shear stress
	τh   float64   // strength
	γd   float64   // slip rate
	dγdτ float64   // d(γ̇)/d(τ)
}

// systems computes the slip data of all systems
func (o *PowerLawSlip) systems(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (res []system, err error) {
	g0, n := o.G0.F(T, nil), o.N.F(T, nil)
	res = make([]system, 0, L.NTotal())
	for g := 0; g < L.NGroup(); g++ {
		for i := 0; i < L.NSlip(g); i++ {
			s := system{P: make([]float64, 6)}
			if err = L.Schmid(s.P, g, i, Q); err != nil {
				return
			}
			for k := 0; k < 6; k++ {
				s.τ += σ[k] * s.P[k]
			}
			s.τh, err = o.Strength.HistToTau(g, i, h, L, T)
			if err != nil {
				return
			}
			if s.τh <= 0 {
				return nil, errs.Domain("slip system (%d,%d) has non-positive strength %g", g, i, s.τh)
			}
			x := s.τ / s.τh
			a := math.Pow(math.Abs(x), n-1)
			s.γd = g0 * a * x
			s.dγdτ = g0 * n * a / s.τh
			if math.IsNaN(s.γd) || math.IsInf(s.γd, 0) {
				return nil, errs.Domain("slip rate of system (%d,%d) is not finite: τ=%g, τ̂=%g", g, i, s.τ, s.τh)
			}
			res = append(res, s)
		}
	}
	return
}

// Slip returns the slip rates of all systems (flat order)
func (o *PowerLawSlip) Slip(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (γd []float64, err error) {
	ss, err := o.systems(σ, Q, h, L, T)
	if err != nil {
		return
	}
	γd = make([]float64, len(ss))
	for k, s := range ss {
		γd[k] = s.γd
	}
	return
}

// SumSlip returns Σ|γ̇|
func (o *PowerLawSlip) SumSlip(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (res float64, err error) {
	ss, err := o.systems(σ, Q, h, L, T)
	if err != nil {
		return
	}
	for _, s := range ss {
		res += math.Abs(s.γd)
	}
	return
}

// DSumSlipDStress returns d(Σ|γ̇|)/dσ
func (o *PowerLawSlip) DSumSlipDStress(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (res []float64, err error) {
	ss, err := o.systems(σ, Q, h, L, T)
	if err != nil {
		return
	}
	res = make([]float64, 6)
	for _, s := range ss {
		c := s.dγdτ * sign(s.τ)
		for k := 0; k < 6; k++ {
			res[k] += c * s.P[k]
		}
	}
	return
}

// DSumSlipDHist returns d(Σ|γ̇|)/dh in h.Derivative(Scalar) layout
func (o *PowerLawSlip) DSumSlipDHist(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (res *hist.History, err error) {
	ss, err := o.systems(σ, Q, h, L, T)
	if err != nil {
		return
	}
	n := o.N.F(T, nil)
	res, err = h.Derivative(hist.Scalar)
	if err != nil {
		return
	}
	k := 0
	for g := 0; g < L.NGroup(); g++ {
		for i := 0; i < L.NSlip(g); i++ {
			s := ss[k]
			k++
			dτh, e := o.Strength.DHistToTau(g, i, h, L, T)
			if e != nil {
				return nil, e
			}
			if err = res.AddScaled(-n*math.Abs(s.γd)/s.τh, dτh); err != nil {
				return
			}
		}
	}
	return
}

// Dp returns the plastic strain rate Σ γ̇ P
func (o *PowerLawSlip) Dp(σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (res []float64, err error) {
	ss, err := o.systems(σ, Q, h, L, T)
	if err != nil {
		return
	}
	res = make([]float64, 6)
	for _, s := range ss {
		for k := 0; k < 6; k++ {
			res[k] += s.γd * s.P[k]
		}
	}
	return
}

// DDpDs returns d(Dp)/dσ = Σ dγ̇/dτ P ⊗ P
func (o *PowerLawSlip) DDpDs(dst [][]float64, σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (err error) {
	ss, err := o.systems(σ, Q, h, L, T)
	if err != nil {
		return
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			dst[i][j] = 0
		}
	}
	for _, s := range ss {
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				dst[i][j] += s.dγdτ * s.P[i] * s.P[j]
			}
		}
	}
	return
}

// DDpDh returns d(Dp)/dh = Σ P ⊗ (dγ̇/dτ̂ ⋅ dτ̂/dh); dst is 6 × h.Size()
func (o *PowerLawSlip) DDpDh(dst [][]float64, σ []float64, Q *lattice.Orientation, h *hist.History, L *lattice.Lattice, T float64) (err error) {
	ss, err := o.systems(σ, Q, h, L, T)
	if err != nil {
		return
	}
	n := o.N.F(T, nil)
	nh := h.Size()
	for i := 0; i < 6; i++ {
		for j := 0; j < nh; j++ {
			dst[i][j] = 0
		}
	}
	k := 0
	for g := 0; g < L.NGroup(); g++ {
		for i := 0; i < L.NSlip(g); i++ {
			s := ss[k]
			k++
			dτh, e := o.Strength.DHistToTau(g, i, h, L, T)
			if e != nil {
				return e
			}
			c := -n * s.γd / s.τh
			for r := 0; r < 6; r++ {
				for j, v := range dτh.Data() {
					dst[r][j] += c * s.P[r] * v
				}
			}
		}
	}
	return
}

// sign returns the sign of x (zero for zero)
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
