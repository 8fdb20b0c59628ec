// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nls

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// roots holds the known data of R_i = x_i² − a_i
type roots struct {
	a     []float64
	guess []float64
}

// quadratic implements Solvable[roots]
type quadratic struct{}

func (o quadratic) NParams() int { return 2 }

func (o quadratic) InitX(x []float64, ts *roots) error {
	copy(x, ts.guess)
	return nil
}

func (o quadratic) RJ(R []float64, J [][]float64, x []float64, ts *roots) error {
	for i := 0; i < 2; i++ {
		R[i] = x[i]*x[i] - ts.a[i]
		J[i][0], J[i][1] = 0, 0
		J[i][i] = 2 * x[i]
	}
	return nil
}

// stuck has a constant residual
type stuck struct {
	val  float64 // residual value
	diag float64 // Jacobian diagonal
}

func (o stuck) NParams() int { return 1 }

func (o stuck) InitX(x []float64, ts *struct{}) error {
	x[0] = 0
	return nil
}

func (o stuck) RJ(R []float64, J [][]float64, x []float64, ts *struct{}) error {
	R[0], J[0][0] = o.val, o.diag
	return nil
}

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. quadratic system")

	sol := NewSolver()
	sol.Tol = 1e-13
	sol.Verbose = chk.Verbose
	x := make([]float64, 2)
	ts := &roots{a: []float64{4, 9}, guess: []float64{1, 1}}
	st, err := Solve[roots](sol, quadratic{}, ts, x)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	io.Pforan("x = %v  (%d iterations)\n", x, st.NumIt)
	chk.Array(tst, "x", 1e-12, x, []float64{2, 3})
	if st.NumIt < 1 {
		tst.Errorf("at least one iteration should have been performed\n")
	}

	// converged initial guess
	ts.guess = []float64{2, 3}
	st, err = Solve[roots](sol, quadratic{}, ts, x)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of iterations", st.NumIt, 0)
	chk.Float64(tst, "norm", 1e-17, st.Norm, 0)

	// wrong size
	_, err = Solve[roots](sol, quadratic{}, ts, make([]float64, 3))
	if !errors.Is(err, errs.ErrConfiguration) {
		tst.Errorf("wrong size of x should be a configuration error. err = %v\n", err)
	}
}

func Test_solver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver02. failures")

	// non-decreasing residual
	sol := &Solver{Tol: 1e-10, MaxIt: 7}
	x := []float64{123}
	st, err := Solve[struct{}](sol, stuck{val: 1, diag: 1}, &struct{}{}, x)
	if !errors.Is(err, errs.ErrIterationLimit) {
		tst.Errorf("stuck residual should fail with an iteration limit. err = %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Int(tst, "number of iterations", st.NumIt, 7)
	chk.Float64(tst, "norm", 1e-17, st.Norm, 1)

	// NaN residual
	st, err = Solve[struct{}](sol, stuck{val: math.NaN(), diag: 1}, &struct{}{}, x)
	if !errors.Is(err, errs.ErrIterationLimit) {
		tst.Errorf("NaN residual should be reported as a convergence failure. err = %v\n", err)
		return
	}
	chk.Int(tst, "number of iterations", st.NumIt, 0)

	// Inf residual
	_, err = Solve[struct{}](sol, stuck{val: math.Inf(1), diag: 1}, &struct{}{}, x)
	if !errors.Is(err, errs.ErrIterationLimit) {
		tst.Errorf("Inf residual should be reported as a convergence failure. err = %v\n", err)
		return
	}

	// singular Jacobian
	_, err = Solve[struct{}](sol, stuck{val: 1, diag: 0}, &struct{}{}, x)
	if !errors.Is(err, errs.ErrIterationLimit) || !errors.Is(err, errs.ErrNumericDomain) {
		tst.Errorf("singular Jacobian should be an iteration limit caused by a numeric domain error. err = %v\n", err)
		return
	}
}

// overshoot has R = x − 1, valid only for x < 2; it starts at x = 0 with a
// Jacobian that jumps beyond the valid region
type overshoot struct {
	kind error // kind of error raised outside the valid region
}

func (o overshoot) NParams() int { return 1 }

func (o overshoot) InitX(x []float64, ts *struct{}) error {
	x[0] = 0
	return nil
}

func (o overshoot) RJ(R []float64, J [][]float64, x []float64, ts *struct{}) error {
	if x[0] >= 2 {
		return errs.New(o.kind, "x = %g is outside the valid region", x[0])
	}
	R[0], J[0][0] = x[0]-1, 0.25
	return nil
}

func Test_solver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver03. failures depending on the iterate")

	// invalid iterate
	sol := NewSolver()
	x := []float64{0}
	st, err := Solve[struct{}](sol, overshoot{errs.ErrNumericDomain}, &struct{}{}, x)
	io.Pforan("err = %v\n", err)
	if !errors.Is(err, errs.ErrIterationLimit) {
		tst.Errorf("invalid iterate should be reported as an iteration limit. err = %v\n", err)
		return
	}
	if !errors.Is(err, errs.ErrNumericDomain) {
		tst.Errorf("iteration limit should wrap its cause. err = %v\n", err)
		return
	}
	chk.Int(tst, "number of iterations", st.NumIt, 1)

	// configuration errors are not wrapped
	_, err = Solve[struct{}](sol, overshoot{errs.ErrConfiguration}, &struct{}{}, x)
	if !errors.Is(err, errs.ErrConfiguration) || errors.Is(err, errs.ErrIterationLimit) {
		tst.Errorf("configuration error must be returned as is. err = %v\n", err)
		return
	}
}

func Test_condense01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("condense01")

	J := [][]float64{
		{2, 1},
		{0, 4},
	}
	dRde := [][]float64{
		{1, 0, 3},
		{2, 4, 0},
	}
	dxde := [][]float64{make([]float64, 3), make([]float64, 3)}
	err := Condense(dxde, J, dRde)
	if err != nil {
		tst.Errorf("Condense failed: %v\n", err)
		return
	}

	// J⁻¹ = [[1/2, −1/8], [0, 1/4]]
	chk.Deep2(tst, "dx/dε", 1e-15, dxde, [][]float64{
		{-(0.5 - 0.25), 0.5, -1.5},
		{-0.5, -1, 0},
	})

	// J must not be modified
	chk.Deep2(tst, "J", 1e-17, J, [][]float64{{2, 1}, {0, 4}})

	// singular
	err = Condense(dxde, [][]float64{{1, 1}, {1, 1}}, dRde)
	if !errors.Is(err, errs.ErrNumericDomain) {
		tst.Errorf("singular J should be a numeric domain error. err = %v\n", err)
	}
}
