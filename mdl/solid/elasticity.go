// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gosl/fun/dbf"
)

// Elasticity implements isotropic linear elasticity with temperature-dependent moduli
type Elasticity struct {
	E  dbf.T // Young's modulus
	Nu dbf.T // Poisson's coefficient
}

// NewElasticity returns elasticity with parameters "E" and "nu"
func NewElasticity(set *prms.Set) (o *Elasticity, err error) {
	o = new(Elasticity)
	o.E, err = set.Func("E")
	if err != nil {
		return nil, err
	}
	o.Nu, err = set.Func("nu")
	if err != nil {
		return nil, err
	}
	return
}

// NewElasticityConst returns elasticity with constant moduli
func NewElasticityConst(E, ν float64) *Elasticity {
	return &Elasticity{E: &dbf.Cte{C: E}, Nu: &dbf.Cte{C: ν}}
}

// KG returns the bulk and shear moduli at temperature T
func (o *Elasticity) KG(T float64) (K, G float64, err error) {
	E, ν := o.E.F(T, nil), o.Nu.F(T, nil)
	if E <= 0 || ν <= -1 || ν >= 0.5 {
		return 0, 0, errs.Domain("invalid elastic moduli at T=%g: E=%g, nu=%g", T, E, ν)
	}
	return Calc_K_from_Enu(E, ν), Calc_G_from_Enu(E, ν), nil
}

// C computes the stiffness tensor at temperature T
func (o *Elasticity) C(C [][]float64, T float64) error {
	K, G, err := o.KG(T)
	if err != nil {
		return err
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			C[i][j] = K*Im[i]*Im[j] + 2.0*G*Psd[i][j]
		}
	}
	return nil
}

// S computes the compliance tensor at temperature T
func (o *Elasticity) S(S [][]float64, T float64) error {
	K, G, err := o.KG(T)
	if err != nil {
		return err
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			S[i][j] = Im[i]*Im[j]/(9.0*K) + Psd[i][j]/(2.0*G)
		}
	}
	return nil
}

// Calc_K_from_Enu computes K from E and ν
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu computes G from E and ν
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}
