// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gosl/utl"
)

// DruckerPrager implements Drucker-Prager plasticity model with linear isotropic hardening
//
//	f = q − M p − qy0 − H α
//
// M = 0 and Mb = 0 give von Mises plasticity
type DruckerPrager struct {
	Elasticity
	M   float64 // slope of fc line
	Mb  float64 // slope of fc line of plastic potential
	Qy0 float64 // initial qy
	H   float64 // hardening variable
	Var string  // name of the hardening variable
}

// add model to factory
func init() {
	allocators["dp"] = func(set *prms.Set) (Small, error) {
		return NewDruckerPrager(set)
	}
}

// NewDruckerPrager returns a new Drucker-Prager model
func NewDruckerPrager(set *prms.Set) (o *DruckerPrager, err error) {

	// parse parameters
	o = &DruckerPrager{Var: set.Var}
	if o.Var == "" {
		o.Var = "alpha"
	}
	el, err := NewElasticity(set)
	if err != nil {
		return nil, err
	}
	o.Elasticity = *el
	var c, φ float64
	var typ int
	for _, p := range set.Prms {
		switch p.N {
		case "M":
			o.M = p.V
		case "Mb":
			o.Mb = p.V
		case "qy0":
			o.Qy0 = p.V
		case "H":
			o.H = p.V
		case "c":
			c = p.V
		case "phi":
			φ = p.V
		case "typ":
			typ = int(p.V)
		case "E", "nu", "rho":
		default:
			return nil, errs.Config("dp: parameter named %q is incorrect", p.N)
		}
	}

	// compute M from φ
	if φ > 0 {
		o.M, o.Qy0, err = Mmatch(c, φ, typ)
		if err != nil {
			return nil, err
		}
		o.Mb = o.M
	}
	return
}

// Populate adds the hardening variable
func (o *DruckerPrager) Populate(h *hist.History) error {
	return h.AddScalar(o.Var)
}

// InitHist sets α = 0
func (o *DruckerPrager) InitHist(h *hist.History) error {
	return h.SetScalar(o.Var, 0)
}

// Update updates stresses for given strains
func (o *DruckerPrager) Update(D [][]float64, snew, sold *State) (err error) {

	// accessors
	if !snew.Hist.SameLayout(sold.Hist) {
		return errs.Config("dp: new and old histories have different layouts")
	}
	α0, err := sold.Hist.Scalar(o.Var)
	if err != nil {
		return
	}
	K, G, err := o.KG(snew.Temp)
	if err != nil {
		return
	}
	S := utl.Alloc(6, 6)
	if err = o.S(S, snew.Temp); err != nil {
		return
	}

	// trial stress
	Δε := make([]float64, 6)
	for i := 0; i < 6; i++ {
		Δε[i] = snew.Eps[i] - sold.Eps[i]
	}
	trΔε := Tr(Δε)
	ten := make([]float64, 6)
	for i := 0; i < 6; i++ {
		ten[i] = sold.Sig[i] + K*trΔε*Im[i] + 2.0*G*(Δε[i]-trΔε*Im[i]/3.0) // ten := σtr
	}
	ptr, qtr := Pq(ten)

	// trial yield function
	ftr := qtr - o.M*ptr - o.Qy0 - o.H*α0

	// elastic update
	σ := make([]float64, 6)
	α := α0
	if ftr <= 0.0 {
		copy(σ, ten)
		o.elasticD(D, K, G)
		return o.commit(σ, α, S, snew, sold)
	}

	// elastoplastic update
	hp := 3.0*G + K*o.M*o.Mb + o.H
	Δγ := ftr / hp
	pnew := ptr + Δγ*K*o.Mb
	m := 1.0 - Δγ*3.0*G/qtr
	unit := make([]float64, 6) // unit(str)
	nstr := sq2by3 * qtr   // norm(str)
	for i := 0; i < 6; i++ {
		str := ten[i] + ptr*Im[i]
		σ[i] = m*str - pnew*Im[i]
		unit[i] = str / nstr
	}
	α = α0 + Δγ

	// return to apex
	if qtr-Δγ*3.0*G < 0 {
		Δγ = (-o.M*ptr - o.Qy0 - o.H*α0) / (3.0*K*o.M + o.H)
		if math.IsNaN(Δγ) || math.IsInf(Δγ, 0) {
			return errs.Domain("dp: cannot return to apex with M=%g and H=%g", o.M, o.H)
		}
		α = α0 + Δγ
		pnew = ptr + Δγ*3.0*K
		a1 := K * o.H / (3.0*K*o.M + o.H)
		for i := 0; i < 6; i++ {
			σ[i] = -pnew * Im[i]
			for j := 0; j < 6; j++ {
				D[i][j] = a1 * Im[i] * Im[j]
			}
		}
		return o.commit(σ, α, S, snew, sold)
	}

	// consistent stiffness
	a1 := K - K*K*o.Mb*o.M/hp
	a2 := -2.0 * G * K * o.Mb * sq3by2 / hp
	b1 := -sq6 * G * o.M * K / hp
	b2 := 6.0 * G * G * (Δγ/qtr - 1.0/hp)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = 2.0*G*m*Psd[i][j] +
				a1*Im[i]*Im[j] +
				a2*Im[i]*unit[j] +
				b1*unit[i]*Im[j] +
				b2*unit[i]*unit[j]
		}
	}
	return o.commit(σ, α, S, snew, sold)
}

// ElasticStrains computes ε = S(T) : σ
func (o *DruckerPrager) ElasticStrains(σ []float64, T float64, h *hist.History) (ε []float64, err error) {
	S := utl.Alloc(6, 6)
	if err = o.S(S, T); err != nil {
		return
	}
	ε = make([]float64, 6)
	MatVecMul(ε, S, σ)
	return
}

// YieldFunc computes the yield function value
func (o *DruckerPrager) YieldFunc(σ []float64, α float64) float64 {
	p, q := Pq(σ)
	return q - o.M*p - o.Qy0 - o.H*α
}

// elasticD sets the elastic stiffness
func (o *DruckerPrager) elasticD(D [][]float64, K, G float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = K*Im[i]*Im[j] + 2.0*G*Psd[i][j]
		}
	}
}

// commit writes the results
func (o *DruckerPrager) commit(σ []float64, α float64, S [][]float64, snew, sold *State) error {
	if err := snew.Hist.Set(sold.Hist); err != nil {
		return err
	}
	if err := snew.Hist.SetScalar(o.Var, α); err != nil {
		return err
	}
	snew.U, snew.P = Work(σ, snew, sold, S)
	copy(snew.Sig, σ)
	return nil
}

// Mmatch computes M=q/p and qy0 from c and φ corresponding to the strength that would
// be modelled by the Mohr-Coulomb model matching one of the following cones:
//
//	typ == 0 : compression cone (outer)
//	    == 1 : extension cone (inner)
//	    == 2 : plane-strain
func Mmatch(c, φ float64, typ int) (M, qy0 float64, err error) {
	φr := φ * math.Pi / 180.0
	si := math.Sin(φr)
	co := math.Cos(φr)
	var ξ float64
	switch typ {
	case 0: // compression cone (outer)
		M = 6.0 * si / (3.0 - si)
		ξ = 6.0 * co / (3.0 - si)
	case 1: // extension cone (inner)
		M = 6.0 * si / (3.0 + si)
		ξ = 6.0 * co / (3.0 + si)
	case 2: // plane-strain
		t := si / co
		d := math.Sqrt(3.0 + 4.0*t*t)
		M = 3.0 * t / d
		ξ = 3.0 / d
	default:
		return 0, 0, errs.Config("typ=%d is invalid", typ)
	}
	qy0 = ξ * c
	return
}
