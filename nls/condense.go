// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nls

import (
	"math"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/la"
)

// Condense computes dx/dε = −J⁻¹ ⋅ dR/dε at a converged solution
// J is the Jacobian dR/dx [n][n] and dRde is [n][m]; the result dxde is [n][m].
// The first rows of dxde usually hold the consistent tangent dσ/dε.
func Condense(dxde, J, dRde [][]float64) (err error) {
	n := len(J)
	if len(dRde) != n || len(dxde) != n {
		return errs.Config("cannot condense: J has %d rows, dR/dε has %d and dx/dε has %d", n, len(dRde), len(dxde))
	}
	if n == 0 {
		return
	}
	m := len(dRde[0])
	defer func() {
		if r := recover(); r != nil {
			err = errs.Domain("cannot condense: singular Jacobian: %v", r)
		}
	}()
	A := la.NewMatrixDeep2(J)
	b := make(la.Vector, n)
	y := make(la.Vector, n)
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			b[i] = dRde[i][j]
		}
		la.DenSolve(y, A, b, true)
		for i := 0; i < n; i++ {
			if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
				return errs.Domain("cannot condense: solution is not finite")
			}
			dxde[i][j] = -y[i]
		}
	}
	return
}
