// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/harden"
	"github.com/cpmech/gomat/mdl/lattice"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gomat/mdl/solid"
	"github.com/cpmech/gomat/nls"
	"github.com/cpmech/gosl/utl"
)

// SingleCrystal implements small-strain rate-dependent single-crystal plasticity
//
// The unknowns of the local problem are x = [σ, h]:
//
//	R_σ = σ − σ_n − C : (Δε − Δt ⋅ Dp(σ, h))
//	R_h = h − h_n − Δt ⋅ ḣ(σ, h)
type SingleCrystal struct {
	solid.Elasticity
	Law    harden.Law           // hardening law; owns all history slots
	Rule   *PowerLawSlip        // slip rule
	L      *lattice.Lattice     // slip systems
	Q      *lattice.Orientation // crystal orientation
	Solver *nls.Solver          // local Newton solver
}

// Trial holds the known data of one step
type Trial struct {
	σn []float64     // old stress
	hn *hist.History // old history
	Δε []float64     // strain increment
	C  [][]float64   // stiffness at the new temperature
	Δt float64       // time increment
	T  float64       // new temperature
	h  *hist.History // scratch history with the layout of hn
}

// add model to solid database
func init() {
	solid.Register("crystal", func(set *prms.Set) (solid.Small, error) {
		if err := set.Check("crystal", "E", "nu", "g0", "n", "phi1", "Phi", "phi2", "tol", "miter", "lattice", "tau_sat", "b", "tau_0"); err != nil {
			return nil, err
		}
		fcns, err := set.FuncList("tau_sat", "b", "tau_0")
		if err != nil {
			return nil, err
		}
		law, err := harden.NewVoce(set.Var, fcns[0], fcns[1], fcns[2])
		if err != nil {
			return nil, err
		}
		L, err := Lattice(set)
		if err != nil {
			return nil, err
		}
		return New(set, law, L)
	})
}

// Lattice returns the lattice selected by the "lattice" parameter
// 0 (default) is FCC and 1 is BCC.
func Lattice(set *prms.Set) (*lattice.Lattice, error) {
	switch int(set.FloatOr("lattice", 0)) {
	case 0:
		return lattice.FCC(), nil
	case 1:
		return lattice.BCC(), nil
	}
	return nil, errs.Config("crystal: lattice type %g is invalid; use 0 (FCC) or 1 (BCC)", set.FloatOr("lattice", 0))
}

// New returns a new single-crystal model
// set holds E, nu, g0, n, phi1, Phi, phi2 (Euler angles in degrees), tol and miter.
// Other parameters are ignored and must be checked by the caller.
func New(set *prms.Set, law harden.Law, L *lattice.Lattice) (o *SingleCrystal, err error) {
	if law == nil || L == nil {
		return nil, errs.Config("crystal: hardening law and lattice are required")
	}
	el, err := solid.NewElasticity(set)
	if err != nil {
		return nil, err
	}
	o = &SingleCrystal{Elasticity: *el, Law: law, L: L, Solver: nls.NewSolver()}
	o.Rule = &PowerLawSlip{Strength: law}
	o.Rule.G0, err = set.Func("g0")
	if err != nil {
		return nil, err
	}
	o.Rule.N, err = set.Func("n")
	if err != nil {
		return nil, err
	}
	o.Q = lattice.FromEuler(set.FloatOr("phi1", 0), set.FloatOr("Phi", 0), set.FloatOr("phi2", 0))
	o.Solver.Tol = set.FloatOr("tol", nls.DefaultTol)
	o.Solver.MaxIt = int(set.FloatOr("miter", nls.DefaultMaxIt))
	return
}

// Populate adds the slots of the hardening law
func (o *SingleCrystal) Populate(h *hist.History) error {
	return o.Law.Populate(h)
}

// InitHist initialises the slots of the hardening law
func (o *SingleCrystal) InitHist(h *hist.History) error {
	return o.Law.InitHist(h)
}

// NParams returns the number of unknowns
func (o *SingleCrystal) NParams() int {
	return 6 + o.Law.Own().Size()
}

// InitX sets the elastic predictor
func (o *SingleCrystal) InitX(x []float64, ts *Trial) error {
	for i := 0; i < 6; i++ {
		x[i] = ts.σn[i]
		for j := 0; j < 6; j++ {
			x[i] += ts.C[i][j] * ts.Δε[j]
		}
	}
	copy(x[6:], ts.hn.Data())
	return nil
}

// RJ computes the residual and Jacobian
func (o *SingleCrystal) RJ(R []float64, J [][]float64, x []float64, ts *Trial) (err error) {

	// unknowns
	σ := x[:6]
	h := ts.h
	if err = h.SetData(x[6:]); err != nil {
		return
	}
	nh := h.Size()
	own := o.Law.Own()
	if !own.SameLayout(h) {
		return errs.Config("crystal: history %v is not owned by the hardening law", h.Names())
	}

	// plastic strain rate and derivatives
	Dp, err := o.Rule.Dp(σ, o.Q, h, o.L, ts.T)
	if err != nil {
		return
	}
	dDpds := utl.Alloc(6, 6)
	if err = o.Rule.DDpDs(dDpds, σ, o.Q, h, o.L, ts.T); err != nil {
		return
	}
	dDpdh := utl.Alloc(6, nh)
	if err = o.Rule.DDpDh(dDpdh, σ, o.Q, h, o.L, ts.T); err != nil {
		return
	}

	// history rate and derivatives
	hd, err := o.Law.Hist(σ, o.Q, h, o.L, ts.T, o.Rule)
	if err != nil {
		return
	}
	dhds, err := o.Law.DHistDs(σ, o.Q, h, o.L, ts.T, o.Rule)
	if err != nil {
		return
	}
	dhdsM, err := hist.UnravelKind(dhds, own, hist.Symmetric)
	if err != nil {
		return
	}
	dhdh, err := harden.DHistDhTotal(o.Law, σ, o.Q, h, o.L, ts.T, o.Rule)
	if err != nil {
		return
	}
	dhdhM, err := hist.Unravel(dhdh, own, h)
	if err != nil {
		return
	}

	// stress equations
	for i := 0; i < 6; i++ {
		R[i] = σ[i] - ts.σn[i]
		for k := 0; k < 6; k++ {
			R[i] -= ts.C[i][k] * (ts.Δε[k] - ts.Δt*Dp[k])
		}
		for j := 0; j < 6; j++ {
			J[i][j] = 0
			for k := 0; k < 6; k++ {
				J[i][j] += ts.Δt * ts.C[i][k] * dDpds[k][j]
			}
		}
		J[i][i] += 1
		for j := 0; j < nh; j++ {
			J[i][6+j] = 0
			for k := 0; k < 6; k++ {
				J[i][6+j] += ts.Δt * ts.C[i][k] * dDpdh[k][j]
			}
		}
	}

	// history equations
	hn, hdv := ts.hn.Data(), hd.Data()
	for a := 0; a < nh; a++ {
		R[6+a] = x[6+a] - hn[a] - ts.Δt*hdv[a]
		for j := 0; j < 6; j++ {
			J[6+a][j] = -ts.Δt * dhdsM[a][j]
		}
		for b := 0; b < nh; b++ {
			J[6+a][6+b] = -ts.Δt * dhdhM[a][b]
		}
		J[6+a][6+a] += 1
	}
	return
}

// Update updates stresses for given strains
func (o *SingleCrystal) Update(D [][]float64, snew, sold *solid.State) (err error) {

	// trial state
	if !snew.Hist.SameLayout(sold.Hist) {
		return errs.Config("crystal: new and old histories have different layouts")
	}
	Δt := snew.Time - sold.Time
	if Δt < 0 {
		return errs.Config("crystal: time increment must be non-negative; Δt=%g", Δt)
	}
	ts := &Trial{
		σn: sold.Sig,
		hn: sold.Hist,
		Δε: make([]float64, 6),
		C:  utl.Alloc(6, 6),
		Δt: Δt,
		T:  snew.Temp,
		h:  sold.Hist.CopyBlank(),
	}
	for i := 0; i < 6; i++ {
		ts.Δε[i] = snew.Eps[i] - sold.Eps[i]
	}
	if err = o.C(ts.C, snew.Temp); err != nil {
		return
	}
	S := utl.Alloc(6, 6)
	if err = o.S(S, snew.Temp); err != nil {
		return
	}

	// solve
	n := o.NParams()
	x := make([]float64, n)
	if _, err = nls.Solve[Trial](o.Solver, o, ts, x); err != nil {
		return
	}

	// consistent tangent
	R := make([]float64, n)
	J := utl.Alloc(n, n)
	if err = o.RJ(R, J, x, ts); err != nil {
		return
	}
	dRde := utl.Alloc(n, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			dRde[i][j] = -ts.C[i][j]
		}
	}
	dxde := utl.Alloc(n, 6)
	if err = nls.Condense(dxde, J, dRde); err != nil {
		return
	}

	// results
	if err = snew.Hist.SetData(x[6:]); err != nil {
		return
	}
	for i := 0; i < 6; i++ {
		copy(D[i], dxde[i])
	}
	snew.U, snew.P = solid.Work(x[:6], snew, sold, S)
	copy(snew.Sig, x[:6])
	return
}

// ElasticStrains computes ε = S(T) : σ
func (o *SingleCrystal) ElasticStrains(σ []float64, T float64, h *hist.History) (ε []float64, err error) {
	S := utl.Alloc(6, 6)
	if err = o.S(S, T); err != nil {
		return
	}
	ε = make([]float64, 6)
	solid.MatVecMul(ε, S, σ)
	return
}
