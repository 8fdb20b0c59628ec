// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gomat/mdl/solid"
	"github.com/cpmech/gomat/nls"
	"github.com/cpmech/gosl/utl"
)

// ScalarDamaged implements a solid model with scalar damage
//
// The unknowns of the local problem are x = [σ, d]:
//
//	R_σ = σ − (1 − d) σ'
//	R_d = d − d_n − Inc(d, ε, σ, T, t)
//
// where σ' is computed by the base model with the effective stress σ_n / (1 − d_n).
// The damage slot comes first in the history; the slots of the base model follow.
type ScalarDamaged struct {
	Base   solid.Small       // base (undamaged) model
	Law    Law               // damage law
	Elast  *solid.Elasticity // elasticity of the base model (energy split)
	Var    string            // name of the damage variable
	Solver *nls.Solver       // local Newton solver

	names []string // slots of the base model
}

// TrialState holds the known data of one step
type TrialState struct {
	Args                 // damage arguments (DNew and SigNew are the unknowns)
	SigBase  []float64   // σ': stress of the base model
	TangBase [][]float64 // A' = dσ'/dε
}

// NewScalarDamaged returns a new damaged model
// set may hold "tol" and "miter".
func NewScalarDamaged(base solid.Small, law Law, el *solid.Elasticity, set *prms.Set) (o *ScalarDamaged, err error) {
	if base == nil || law == nil || el == nil {
		return nil, errs.Config("damaged model requires base model, damage law and elasticity")
	}
	if set == nil {
		set = new(prms.Set)
	}
	if err = set.Check("damaged", "tol", "miter"); err != nil {
		return
	}
	o = &ScalarDamaged{Base: base, Law: law, Elast: el, Var: set.Var, Solver: nls.NewSolver()}
	if o.Var == "" {
		o.Var = "damage"
	}
	o.Solver.Tol = set.FloatOr("tol", nls.DefaultTol)
	o.Solver.MaxIt = int(set.FloatOr("miter", nls.DefaultMaxIt))
	h := hist.New()
	if err = base.Populate(h); err != nil {
		return nil, err
	}
	if h.Has(o.Var) {
		return nil, errs.Config("damage variable %q collides with a slot of the base model", o.Var)
	}
	o.names = h.Names()
	return
}

// Populate adds the damage slot and the slots of the base model
func (o *ScalarDamaged) Populate(h *hist.History) error {
	if err := h.AddScalar(o.Var); err != nil {
		return err
	}
	return o.Base.Populate(h)
}

// InitHist sets d = 0 and initialises the base model
func (o *ScalarDamaged) InitHist(h *hist.History) error {
	if err := h.SetScalar(o.Var, 0); err != nil {
		return err
	}
	return o.Base.InitHist(h)
}

// NParams returns the number of unknowns
func (o *ScalarDamaged) NParams() int { return 7 }

// InitX sets x = [(1 − d_n) σ', d_n]
func (o *ScalarDamaged) InitX(x []float64, ts *TrialState) error {
	for i := 0; i < 6; i++ {
		x[i] = (1.0 - ts.DOld) * ts.SigBase[i]
	}
	x[6] = ts.DOld
	return nil
}

// RJ computes the residual and Jacobian
func (o *ScalarDamaged) RJ(R []float64, J [][]float64, x []float64, ts *TrialState) (err error) {
	a := ts.Args
	a.SigNew = x[:6]
	a.DNew = x[6]
	res, err := o.Law.Damage(&a)
	if err != nil {
		return
	}
	d := x[6]
	for i := 0; i < 6; i++ {
		R[i] = x[i] - (1.0-d)*ts.SigBase[i]
		for j := 0; j < 6; j++ {
			J[i][j] = 0
		}
		J[i][i] = 1
		J[i][6] = ts.SigBase[i]
		J[6][i] = -res.DIncDs[i]
	}
	R[6] = d - ts.DOld - res.Inc
	J[6][6] = 1.0 - res.DIncDd
	return
}

// Update updates stresses for given strains
func (o *ScalarDamaged) Update(D [][]float64, snew, sold *solid.State) (err error) {

	// damage and base states
	if !snew.Hist.SameLayout(sold.Hist) {
		return errs.Config("damaged: new and old histories have different layouts")
	}
	dn, err := sold.Hist.Scalar(o.Var)
	if err != nil {
		return
	}
	if 1.0-dn <= 0 {
		return errs.Domain("damaged: material point is fully damaged; d=%g", dn)
	}
	bold, err := o.baseState(sold, dn)
	if err != nil {
		return
	}
	bnew := bold.Next(snew.Eps, snew.Temp, snew.Time)
	A := utl.Alloc(6, 6)
	if err = o.Base.Update(A, bnew, bold); err != nil {
		return
	}

	// solve
	ts := &TrialState{
		Args: Args{
			DOld:    dn,
			EpsNew:  snew.Eps,
			EpsOld:  sold.Eps,
			SigOld:  sold.Sig,
			TempNew: snew.Temp,
			TempOld: sold.Temp,
			TimeNew: snew.Time,
			TimeOld: sold.Time,
		},
		SigBase:  bnew.Sig,
		TangBase: A,
	}
	x := make([]float64, 7)
	if _, err = nls.Solve[TrialState](o.Solver, o, ts, x); err != nil {
		return
	}

	// consistent tangent
	a := ts.Args
	a.SigNew, a.DNew = x[:6], x[6]
	res, err := o.Law.Damage(&a)
	if err != nil {
		return
	}
	R := make([]float64, 7)
	J := utl.Alloc(7, 7)
	if err = o.RJ(R, J, x, ts); err != nil {
		return
	}
	dRde := utl.Alloc(7, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			dRde[i][j] = -(1.0 - x[6]) * A[i][j]
		}
		dRde[6][i] = -res.DIncDe[i]
	}
	dxde := utl.Alloc(7, 6)
	if err = nls.Condense(dxde, J, dRde); err != nil {
		return
	}
	S := utl.Alloc(6, 6)
	if err = o.Elast.S(S, snew.Temp); err != nil {
		return
	}

	// results
	h := sold.Hist.GetCopy()
	for _, name := range o.names {
		k, e := bnew.Hist.KindOf(name)
		if e != nil {
			return e
		}
		src, e := bnew.Hist.Get(name, k)
		if e != nil {
			return e
		}
		dst, e := h.Get(name, k)
		if e != nil {
			return e
		}
		copy(dst, src)
	}
	if err = h.SetScalar(o.Var, x[6]); err != nil {
		return
	}
	if err = snew.Hist.Set(h); err != nil {
		return
	}
	for i := 0; i < 6; i++ {
		copy(D[i], dxde[i])
	}
	snew.U, snew.P = solid.Work(x[:6], snew, sold, S)
	copy(snew.Sig, x[:6])
	return
}

// ElasticStrains computes the elastic strains of the base model with σ' = σ / (1 − d)
func (o *ScalarDamaged) ElasticStrains(σ []float64, T float64, h *hist.History) (ε []float64, err error) {
	d, err := h.Scalar(o.Var)
	if err != nil {
		return
	}
	if 1.0-d <= 0 {
		return nil, errs.Domain("damaged: material point is fully damaged; d=%g", d)
	}
	bh, err := h.Extract(o.names...)
	if err != nil {
		return
	}
	σb := make([]float64, 6)
	for i := 0; i < 6; i++ {
		σb[i] = σ[i] / (1.0 - d)
	}
	return o.Base.ElasticStrains(σb, T, bh)
}

// baseState returns the state of the base model with the effective stress
func (o *ScalarDamaged) baseState(s *solid.State, d float64) (b *solid.State, err error) {
	bh, err := s.Hist.Extract(o.names...)
	if err != nil {
		return
	}
	b = &solid.State{
		Eps:  append([]float64{}, s.Eps...),
		Sig:  make([]float64, 6),
		Hist: bh,
		Temp: s.Temp,
		Time: s.Time,
	}
	for i := 0; i < 6; i++ {
		b.Sig[i] = s.Sig[i] / (1.0 - d)
	}
	return
}
