// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gomat/nls"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Norton implements J2 power-law creep integrated with backward Euler
//
//	dεcr/dt = (3/2) A(T) qⁿ s / q
type Norton struct {
	Elasticity
	A      dbf.T       // creep coefficient
	N      float64     // creep exponent
	Var    string      // name of the equivalent creep strain variable
	Solver *nls.Solver // local Newton solver
}

// nortonTrial holds the known data of one step
type nortonTrial struct {
	qtr float64 // trial von Mises stress
	c   float64 // 3 G Δt A(T)
}

// add model to factory
func init() {
	allocators["norton"] = func(set *prms.Set) (Small, error) {
		return NewNorton(set)
	}
}

// NewNorton returns a new Norton creep model
func NewNorton(set *prms.Set) (o *Norton, err error) {
	if err = set.Check("norton", "E", "nu", "A", "n", "rho", "tol", "miter"); err != nil {
		return nil, err
	}
	o = &Norton{Var: set.Var, Solver: nls.NewSolver()}
	if o.Var == "" {
		o.Var = "creep"
	}
	el, err := NewElasticity(set)
	if err != nil {
		return nil, err
	}
	o.Elasticity = *el
	o.A, err = set.Func("A")
	if err != nil {
		return nil, err
	}
	o.N, err = set.Float("n")
	if err != nil {
		return nil, err
	}
	if o.N < 1 {
		return nil, errs.Config("norton: exponent n=%g must be greater than or equal to 1", o.N)
	}
	o.Solver.Tol = set.FloatOr("tol", nls.DefaultTol)
	o.Solver.MaxIt = int(set.FloatOr("miter", nls.DefaultMaxIt))
	return
}

// Populate adds the equivalent creep strain
func (o *Norton) Populate(h *hist.History) error {
	return h.AddScalar(o.Var)
}

// InitHist sets the equivalent creep strain to zero
func (o *Norton) InitHist(h *hist.History) error {
	return h.SetScalar(o.Var, 0)
}

// NParams returns the number of unknowns: q
func (o *Norton) NParams() int { return 1 }

// InitX sets the elastic predictor
func (o *Norton) InitX(x []float64, ts *nortonTrial) error {
	x[0] = ts.qtr
	return nil
}

// RJ computes R = q + 3 G Δt A qⁿ − qtr and J = dR/dq
func (o *Norton) RJ(R []float64, J [][]float64, x []float64, ts *nortonTrial) error {
	q := x[0]
	if q < 0 {
		return errs.Domain("norton: negative equivalent stress q=%g", q)
	}
	R[0] = q + ts.c*math.Pow(q, o.N) - ts.qtr
	J[0][0] = 1 + ts.c*o.N*math.Pow(q, o.N-1)
	return nil
}

// Update updates stresses for given strains
func (o *Norton) Update(D [][]float64, snew, sold *State) (err error) {

	// check
	if !snew.Hist.SameLayout(sold.Hist) {
		return errs.Config("norton: new and old histories have different layouts")
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
	Δt := snew.Time - sold.Time
	if Δt < 0 {
		return errs.Config("norton: time increment must be non-negative; Δt=%g", Δt)
	}

	// trial stress
	Δε := make([]float64, 6)
	for i := 0; i < 6; i++ {
		Δε[i] = snew.Eps[i] - sold.Eps[i]
	}
	trΔε := Tr(Δε)
	ten := make([]float64, 6)
	for i := 0; i < 6; i++ {
		ten[i] = sold.Sig[i] + K*trΔε*Im[i] + 2.0*G*(Δε[i]-trΔε*Im[i]/3.0)
	}
	ptr, qtr := Pq(ten)

	// solve for q
	ts := &nortonTrial{qtr: qtr, c: 3.0 * G * Δt * o.A.F(snew.Temp, nil)}
	x := []float64{qtr}
	if qtr > 0 && ts.c > 0 {
		if _, err = nls.Solve[nortonTrial](o.Solver, o, ts, x); err != nil {
			return
		}
	}
	q := x[0]

	// stress
	σ := make([]float64, 6)
	m, cq := 1.0, 1.0
	unit := make([]float64, 6)
	if qtr > 0 {
		m = q / qtr
		cq = 1.0 / (1.0 + ts.c*o.N*math.Pow(q, o.N-1))
		Dev(unit, ten)
		for i := 0; i < 6; i++ {
			unit[i] /= qtr * math.Sqrt(2.0/3.0)
		}
	}
	for i := 0; i < 6; i++ {
		σ[i] = m*(ten[i]+ptr*Im[i]) - ptr*Im[i]
	}
	α := α0 + (qtr-q)/(3.0*G)

	// consistent stiffness
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = K*Im[i]*Im[j] + 2.0*G*m*Psd[i][j] + 2.0*G*(cq-m)*unit[i]*unit[j]
		}
	}

	// results
	if err = snew.Hist.Set(sold.Hist); err != nil {
		return
	}
	if err = snew.Hist.SetScalar(o.Var, α); err != nil {
		return
	}
	snew.U, snew.P = Work(σ, snew, sold, S)
	copy(snew.Sig, σ)
	return
}

// ElasticStrains computes ε = S(T) : σ
func (o *Norton) ElasticStrains(σ []float64, T float64, h *hist.History) (ε []float64, err error) {
	S := utl.Alloc(6, 6)
	if err = o.S(S, T); err != nil {
		return
	}
	ε = make([]float64, 6)
	MatVecMul(ε, S, σ)
	return
}
