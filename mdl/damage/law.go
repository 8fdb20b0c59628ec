// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package damage implements scalar continuum damage on top of solid models
//
// The damaged stress is σ = (1 − d) σ' where σ' is the stress of the base model.
// A damage law gives the increment of d over one step:
//
//	d_new = d_old + Inc(d_new, ε, σ, T, t)
package damage

import (
	"math"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/solid"
	"github.com/cpmech/gosl/utl"
)

// Args holds the arguments of a damage law
type Args struct {
	DNew, DOld     float64   // damage
	EpsNew, EpsOld []float64 // total strains [6]
	SigNew, SigOld []float64 // damaged stresses [6]
	TempNew        float64   // temperature
	TempOld        float64   // temperature at the beginning of the step
	TimeNew        float64   // time
	TimeOld        float64   // time at the beginning of the step
}

// Result holds the damage increment and its derivatives
type Result struct {
	Inc    float64   // increment of damage over the step
	DIncDd float64   // d(Inc)/d(DNew)
	DIncDe []float64 // d(Inc)/d(EpsNew) [6]
	DIncDs []float64 // d(Inc)/d(SigNew) [6]
}

// Law defines a scalar damage law
type Law interface {
	Damage(a *Args) (Result, error)
}

// newResult returns a result with allocated derivatives
func newResult() Result {
	return Result{DIncDe: make([]float64, 6), DIncDs: make([]float64, 6)}
}

// epsRoundoff is the relative size below which the inelastic strain increment is zero
const epsRoundoff = 1e-12

// inelastic computes the inelastic strain increment
//
//	Δεp = √(2/3 w:w) with w = Δε − S : Δσ
//
// and its derivatives with respect to the new strain and stress.
// Δεp is set to zero if it is at the level of roundoff of Δε and S : Δσ.
func inelastic(el *solid.Elasticity, a *Args) (dep float64, ddepde, ddepds []float64, err error) {
	S := utl.Alloc(6, 6)
	if err = el.S(S, a.TempNew); err != nil {
		return
	}
	Δσ := make([]float64, 6)
	for i := 0; i < 6; i++ {
		Δσ[i] = a.SigNew[i] - a.SigOld[i]
	}
	Δεe := make([]float64, 6)
	solid.MatVecMul(Δεe, S, Δσ)
	w := make([]float64, 6)
	scale := 0.0
	for i := 0; i < 6; i++ {
		Δε := a.EpsNew[i] - a.EpsOld[i]
		w[i] = Δε - Δεe[i]
		scale = math.Max(scale, math.Max(math.Abs(Δε), math.Abs(Δεe[i])))
	}
	dep = math.Sqrt(2.0 / 3.0 * solid.Dot(w, w))
	ddepde = make([]float64, 6)
	ddepds = make([]float64, 6)
	if dep <= epsRoundoff*scale {
		dep = 0
	}
	if dep > 0 {
		for i := 0; i < 6; i++ {
			ddepde[i] = 2.0 / 3.0 * w[i] / dep
		}
		solid.MatVecMul(ddepds, S, ddepde)
		for i := 0; i < 6; i++ {
			ddepds[i] = -ddepds[i]
		}
	}
	return
}

// checkArgs checks the sizes of the arguments
func checkArgs(a *Args) error {
	if len(a.EpsNew) != 6 || len(a.EpsOld) != 6 || len(a.SigNew) != 6 || len(a.SigOld) != 6 {
		return errs.Config("damage: strains and stresses must have 6 components")
	}
	return nil
}
