// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nls

import (
	"errors"
	"math"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// default settings
const (
	DefaultTol   = 1e-8
	DefaultMaxIt = 50
)

// Solver holds the settings of the Newton-Raphson method
type Solver struct {
	Tol     float64 // tolerance on the norm of the residual
	MaxIt   int     // maximum number of iterations
	Verbose bool    // print iterations
}

// Stats holds information about one solve
type Stats struct {
	NumIt int     // number of Newton iterations performed
	Norm  float64 // final norm of the residual
}

// NewSolver returns a solver with default settings
func NewSolver() *Solver {
	return &Solver{Tol: DefaultTol, MaxIt: DefaultMaxIt}
}

// settings returns the settings with defaults for unset values
func (o *Solver) settings() (tol float64, maxit int) {
	tol, maxit = o.Tol, o.MaxIt
	if tol <= 0 {
		tol = DefaultTol
	}
	if maxit <= 0 {
		maxit = DefaultMaxIt
	}
	return
}

// Solve finds x such that R(x; ts) = 0
// x must have length sys.NParams(); it is initialised with sys.InitX and is the
// only output written. On failure, x holds the last iterate and must be discarded.
// The norm of the residual is checked before each step; thus, a converged initial
// guess requires zero iterations. Failures that depend on an iterate (a residual
// that cannot be evaluated after the first step or a singular Jacobian) are reported
// as iteration limits wrapping their cause.
func Solve[T any](o *Solver, sys Solvable[T], ts *T, x []float64) (st Stats, err error) {

	// check
	n := sys.NParams()
	if len(x) != n {
		return st, errs.Config("size of x (%d) must be equal to the number of unknowns (%d)", len(x), n)
	}
	tol, maxit := o.settings()

	// initial guess
	err = sys.InitX(x, ts)
	if err != nil {
		return
	}

	// workspace
	R := make(la.Vector, n)
	J := utl.Alloc(n, n)
	dx := make(la.Vector, n)

	// iterations
	for st.NumIt = 0; ; st.NumIt++ {

		// residual and Jacobian
		err = sys.RJ(R, J, x, ts)
		if err != nil {
			if st.NumIt == 0 || errors.Is(err, errs.ErrConfiguration) || errors.Is(err, errs.ErrUnsupported) {
				return
			}
			return st, errs.Wrap(errs.ErrIterationLimit, err, "Newton-Raphson failed at iteration %d", st.NumIt)
		}
		st.Norm = R.Norm()
		if o.Verbose {
			io.Pf("%4d%23.15e\n", st.NumIt, st.Norm)
		}

		// check
		if math.IsNaN(st.Norm) || math.IsInf(st.Norm, 0) {
			return st, errs.Limit("Newton-Raphson diverged: residual norm is %v after %d iterations", st.Norm, st.NumIt)
		}
		if st.Norm < tol {
			return
		}
		if st.NumIt >= maxit {
			return st, errs.Limit("Newton-Raphson did not converge after %d iterations. |R| = %g", st.NumIt, st.Norm)
		}

		// update
		err = linsol(dx, J, R)
		if err != nil {
			return st, errs.Wrap(errs.ErrIterationLimit, err, "Newton-Raphson failed at iteration %d", st.NumIt)
		}
		for i := 0; i < n; i++ {
			x[i] -= dx[i]
		}
	}
}

// linsol solves A⋅x = b
// Singular systems are reported as numeric domain errors.
func linsol(x la.Vector, A [][]float64, b la.Vector) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.Domain("singular Jacobian: %v", r)
		}
	}()
	la.DenSolve(x, la.NewMatrixDeep2(A), b, false)
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.Domain("singular Jacobian: solution is not finite")
		}
	}
	return
}
