// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gosl/utl"
)

// LinElast implements linear elasticity: σ = C(T) : ε
type LinElast struct {
	Elasticity
}

// add model to factory
func init() {
	allocators["elast"] = func(set *prms.Set) (Small, error) {
		if err := set.Check("elast", "E", "nu", "rho"); err != nil {
			return nil, err
		}
		el, err := NewElasticity(set)
		if err != nil {
			return nil, err
		}
		return &LinElast{*el}, nil
	}
}

// Populate does nothing
func (o *LinElast) Populate(h *hist.History) error { return nil }

// InitHist does nothing
func (o *LinElast) InitHist(h *hist.History) error { return nil }

// Update updates stresses for given strains
func (o *LinElast) Update(D [][]float64, snew, sold *State) (err error) {
	C := utl.Alloc(6, 6)
	S := utl.Alloc(6, 6)
	if err = o.C(C, snew.Temp); err != nil {
		return
	}
	if err = o.S(S, snew.Temp); err != nil {
		return
	}
	σ := make([]float64, 6)
	MatVecMul(σ, C, snew.Eps)
	snew.U, snew.P = Work(σ, snew, sold, S)
	copy(snew.Sig, σ)
	for i := 0; i < 6; i++ {
		copy(D[i], C[i])
	}
	return
}

// ElasticStrains computes ε = S(T) : σ
func (o *LinElast) ElasticStrains(σ []float64, T float64, h *hist.History) (ε []float64, err error) {
	S := utl.Alloc(6, 6)
	if err = o.S(S, T); err != nil {
		return
	}
	ε = make([]float64, 6)
	MatVecMul(ε, S, σ)
	return
}
