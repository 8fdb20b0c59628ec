// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/tsr"
)

var (
	// Im is the 2nd order identity tensor in Mandel basis
	Im = tsr.SecIdenMan

	// Psd is the symmetric-deviatoric projector in Mandel basis: Psd = I − Im ⊗ Im / 3
	Psd = tsr.FouPsdMan

	// constants
	sq6    = math.Sqrt(6.0)       // √6
	sq3by2 = math.Sqrt(3.0 / 2.0) // √(3/2)
	sq2by3 = math.Sqrt(2.0 / 3.0) // √(2/3)
)

// Tr returns the trace of a
func Tr(a []float64) float64 {
	return a[0] + a[1] + a[2]
}

// Dot returns a : b
func Dot(a, b []float64) (res float64) {
	for i := 0; i < 6; i++ {
		res += a[i] * b[i]
	}
	return
}

// Dev computes s = dev(a) and returns its norm
func Dev(s, a []float64) (nrm float64) {
	tr := Tr(a) / 3.0
	for i := 0; i < 6; i++ {
		s[i] = a[i] - tr*Im[i]
		nrm += s[i] * s[i]
	}
	return math.Sqrt(nrm)
}

// Pq computes p = −tr(σ)/3 and q = √(3/2)⋅|dev(σ)|
func Pq(σ []float64) (p, q float64) {
	s := make([]float64, 6)
	p = -Tr(σ) / 3.0
	q = sq3by2 * Dev(s, σ)
	return
}

// Mises returns the von Mises equivalent stress and computes d(σe)/dσ
// dσe is zero if σe = 0
func Mises(dσe, σ []float64) (σe float64) {
	s := make([]float64, 6)
	nrm := Dev(s, σ)
	σe = sq3by2 * nrm
	for i := 0; i < 6; i++ {
		if σe > 0 {
			dσe[i] = 1.5 * s[i] / σe
		} else {
			dσe[i] = 0
		}
	}
	return
}

// MatVecMul computes v = M ⋅ a
func MatVecMul(v []float64, M [][]float64, a []float64) {
	for i := 0; i < len(v); i++ {
		v[i] = 0
		for j := 0; j < len(a); j++ {
			v[i] += M[i][j] * a[j]
		}
	}
}
