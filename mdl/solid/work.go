// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// Work computes the stored and dissipated energies at the end of a step (trapezoidal rule)
//
//	u = u_n + ½ (σ_n + σ_new) : Δε
//	p = p_n + ½ (σ_n + σ_new) : (Δε − S : Δσ)
//
// S is the elastic compliance at the end of the step
func Work(σnew []float64, snew, sold *State, S [][]float64) (u, p float64) {
	u, p = sold.U, sold.P
	Δσ := make([]float64, 6)
	for i := 0; i < 6; i++ {
		Δσ[i] = σnew[i] - sold.Sig[i]
	}
	Δεe := make([]float64, 6)
	MatVecMul(Δεe, S, Δσ)
	for i := 0; i < 6; i++ {
		σm := 0.5 * (sold.Sig[i] + σnew[i])
		Δε := snew.Eps[i] - sold.Eps[i]
		u += σm * Δε
		p += σm * (Δε - Δεe[i])
	}
	return
}
