// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"math"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/solid"
	"github.com/cpmech/gosl/fun/dbf"
)

// PowerLaw implements damage driven by the inelastic strain
//
//	Inc = Δεp ⋅ A ⋅ σeᵃ
type PowerLaw struct {
	Elast *solid.Elasticity // elasticity to split the strain increment
	A     dbf.T             // prefactor
	Alpha dbf.T             // stress exponent
}

// Damage computes the damage increment
func (o *PowerLaw) Damage(a *Args) (res Result, err error) {
	if err = checkArgs(a); err != nil {
		return
	}
	dep, ddepde, ddepds, err := inelastic(o.Elast, a)
	if err != nil {
		return
	}
	A, α := o.A.F(a.TempNew, nil), o.Alpha.F(a.TempNew, nil)
	dse := make([]float64, 6)
	se := solid.Mises(dse, a.SigNew)
	f, df := 0.0, 0.0
	if se > 0 {
		f = A * math.Pow(se, α)
		df = A * α * math.Pow(se, α-1)
	}
	res = newResult()
	res.Inc = dep * f
	for i := 0; i < 6; i++ {
		res.DIncDe[i] = f * ddepde[i]
		res.DIncDs[i] = f*ddepds[i] + dep*df*dse[i]
	}
	return
}

// ExpWork implements damage driven by the inelastic work
//
//	Inc = Δεp ⋅ (d + k0)^af ⋅ σe / W0
type ExpWork struct {
	Elast *solid.Elasticity // elasticity to split the strain increment
	W0    dbf.T             // critical work
	K0    dbf.T             // offset of damage
	Af    dbf.T             // damage exponent
}

// Damage computes the damage increment
func (o *ExpWork) Damage(a *Args) (res Result, err error) {
	if err = checkArgs(a); err != nil {
		return
	}
	W0, k0, af := o.W0.F(a.TempNew, nil), o.K0.F(a.TempNew, nil), o.Af.F(a.TempNew, nil)
	if W0 <= 0 {
		return res, errs.Domain("exp-work: critical work must be positive; W0=%g", W0)
	}
	x := a.DNew + k0
	if x < 0 {
		return res, errs.Domain("exp-work: d + k0 = %g must be non-negative", x)
	}
	dep, ddepde, ddepds, err := inelastic(o.Elast, a)
	if err != nil {
		return
	}
	dse := make([]float64, 6)
	se := solid.Mises(dse, a.SigNew)
	g := math.Pow(x, af)
	res = newResult()
	res.Inc = dep * g * se / W0
	if x > 0 {
		res.DIncDd = dep * af * math.Pow(x, af-1) * se / W0
	}
	for i := 0; i < 6; i++ {
		res.DIncDe[i] = g * se / W0 * ddepde[i]
		res.DIncDs[i] = g / W0 * (se*ddepds[i] + dep*dse[i])
	}
	return
}

// ClassicalCreep implements Kachanov-Rabotnov creep damage
//
//	Inc = (σe / A)^ξ ⋅ (1 − d)^(−φ) ⋅ Δt
type ClassicalCreep struct {
	A   dbf.T // reference stress
	Xi  dbf.T // stress exponent
	Phi dbf.T // damage exponent
}

// Damage computes the damage increment
func (o *ClassicalCreep) Damage(a *Args) (res Result, err error) {
	if err = checkArgs(a); err != nil {
		return
	}
	A, ξ, φ := o.A.F(a.TempNew, nil), o.Xi.F(a.TempNew, nil), o.Phi.F(a.TempNew, nil)
	if A <= 0 {
		return res, errs.Domain("classical-creep: reference stress must be positive; A=%g", A)
	}
	w := 1.0 - a.DNew
	if w <= 0 {
		return res, errs.Domain("classical-creep: 1 − d = %g must be positive", w)
	}
	Δt := a.TimeNew - a.TimeOld
	dse := make([]float64, 6)
	se := solid.Mises(dse, a.SigNew)
	res = newResult()
	if se <= 0 {
		return
	}
	x := se / A
	c := math.Pow(w, -φ) * Δt
	res.Inc = math.Pow(x, ξ) * c
	res.DIncDd = φ * math.Pow(x, ξ) * math.Pow(w, -φ-1) * Δt
	for i := 0; i < 6; i++ {
		res.DIncDs[i] = ξ * math.Pow(x, ξ-1) / A * c * dse[i]
	}
	return
}

// Fatigue implements cycle-counting fatigue damage
//
//	Inc = C ⋅ σeᵐ ⋅ εeⁿ ⋅ β(εe/Δt)
//
// εe is the equivalent strain increment (range of the cycle) and β a rate modifier:
//
//	β(x) = falpha + fbeta ⋅ (x/rate0) / (1 + x/rate0)
type Fatigue struct {
	C      dbf.T // prefactor
	M      dbf.T // stress exponent
	N      dbf.T // strain exponent
	Falpha dbf.T // slow-rate modifier
	Fbeta  dbf.T // fast-rate modifier
	Rate0  dbf.T // reference strain rate
}

// Damage computes the damage increment
func (o *Fatigue) Damage(a *Args) (res Result, err error) {
	if err = checkArgs(a); err != nil {
		return
	}
	T := a.TempNew
	C, m, n := o.C.F(T, nil), o.M.F(T, nil), o.N.F(T, nil)
	fa, fb, r0 := o.Falpha.F(T, nil), o.Fbeta.F(T, nil), o.Rate0.F(T, nil)
	if r0 <= 0 {
		return res, errs.Domain("fatigue: reference rate must be positive; rate0=%g", r0)
	}
	res = newResult()

	// equivalent measures
	dse := make([]float64, 6)
	se := o.se(dse, a.SigNew)
	dee := make([]float64, 6)
	ee := o.ee(dee, a.EpsNew, a.EpsOld)
	if se <= 0 || ee <= 0 {
		return
	}

	// rate modifier
	Δt := a.TimeNew - a.TimeOld
	β, dβ := fa, 0.0
	if Δt > 0 {
		β, dβ = o.beta(ee/Δt, fa, fb, r0)
		dβ /= Δt
	}

	// increment
	sm, en := math.Pow(se, m), math.Pow(ee, n)
	res.Inc = C * sm * en * β
	dIncdee := C * sm * (n*math.Pow(ee, n-1)*β + en*dβ)
	for i := 0; i < 6; i++ {
		res.DIncDs[i] = C * m * math.Pow(se, m-1) * en * β * dse[i]
		res.DIncDe[i] = dIncdee * dee[i]
	}
	return
}

// beta computes the rate modifier and its derivative
func (o *Fatigue) beta(x, fa, fb, r0 float64) (β, dβ float64) {
	y := x / r0
	β = fa + fb*y/(1+y)
	dβ = fb / (r0 * (1 + y) * (1 + y))
	return
}

// se computes the equivalent stress and its derivative
func (o *Fatigue) se(dse, σ []float64) float64 {
	return solid.Mises(dse, σ)
}

// ee computes the equivalent strain increment √(2/3 dev(Δε):dev(Δε)) and its derivative
func (o *Fatigue) ee(dee, εnew, εold []float64) (ee float64) {
	Δε := make([]float64, 6)
	for i := 0; i < 6; i++ {
		Δε[i] = εnew[i] - εold[i]
	}
	s := make([]float64, 6)
	ee = math.Sqrt(2.0/3.0) * solid.Dev(s, Δε)
	for i := 0; i < 6; i++ {
		if ee > 0 {
			dee[i] = 2.0 / 3.0 * s[i] / ee
		} else {
			dee[i] = 0
		}
	}
	return
}
