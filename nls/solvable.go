// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nls implements the local Newton-Raphson solver used by implicit material updates
// A model exposes its residual and Jacobian through Solvable; the per-step known
// quantities travel in a trial state T owned by one solve only.
package nls

// Solvable defines a nonlinear system R(x; ts) = 0 with analytic Jacobian
type Solvable[T any] interface {
	NParams() int                                            // number of unknowns
	InitX(x []float64, ts *T) error                          // initial guess
	RJ(R []float64, J [][]float64, x []float64, ts *T) error // residual and Jacobian dR/dx
}
