// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements small-strain stress-update models for one material point
/*
 *            |    Rate
 *  ============================================
 *            |
 *            | dσdt = f(σ,h,dεdt)
 *    Small   | σ_(n+1) = σ_(n) + Δt * f_(n+1)
 *            | Update
 *            | D = dσ_(n+1)/dε_(n+1)
 *            | consistent with Update
 *            |
 *  --------------------------------------------
 *
 *  All tensors are symmetric and written in Mandel basis:
 *     [xx, yy, zz, √2 xy, √2 yz, √2 zx]
 */
package solid

import (
	"sort"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
	"github.com/cpmech/gomat/mdl/prms"
)

// Small defines rate type solid models for small strain analyses
//
// Update reads sold and snew.Eps, snew.Temp and snew.Time; it writes snew.Sig,
// snew.Hist, snew.U, snew.P and D = dσ_new/dε_new. Nothing is written if an
// error occurs. ElasticStrains computes the elastic strains for given stresses.
type Small interface {
	Populate(h *hist.History) error
	InitHist(h *hist.History) error
	Update(D [][]float64, snew, sold *State) error
	ElasticStrains(σ []float64, T float64, h *hist.History) ([]float64, error)
}

// allocator builds a model from parameters
type allocator func(set *prms.Set) (Small, error)

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]allocator{}

// New returns new solid model
func New(name string, set *prms.Set) (Small, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, errs.Config("model %q is not available in 'solid' database", name)
	}
	if set == nil {
		set = new(prms.Set)
	}
	return alloc(set)
}

// Register adds a model to the database
// Note: models of other packages built on top of solid models register here.
func Register(name string, alloc func(set *prms.Set) (Small, error)) {
	allocators[name] = alloc
}

// Models returns the names of all available models
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
