// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"fmt"
	"math"
	"testing"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// Driver run simulations with models for solids
type Driver struct {

	// input
	Mdl Small // solid model

	// settings
	TolD  float64 // tolerance to check consistent matrix (relative to the largest entry)
	StepD float64 // strain perturbation to check consistent matrix
	RelD  bool    // check each entry of D relative to its own magnitude
	VerD  bool    // verbose check of D

	// check D matrix
	TstD *testing.T // if != nil, do check consistent matrix

	// results
	Res []*State    // results
	D   [][]float64 // last consistent matrix
}

// Init initialises driver
func (o *Driver) Init(mdl Small) (err error) {
	if mdl == nil {
		return errs.Config("driver needs a model")
	}
	o.Mdl = mdl
	o.TolD = 1e-6
	o.StepD = 1e-7
	o.VerD = chk.Verbose
	o.D = utl.Alloc(6, 6)
	return
}

// Run runs simulation
func (o *Driver) Run(pth *Path) (err error) {

	// check
	np := pth.Size()
	if np < 1 {
		return errs.Config("path must have at least one point")
	}

	// initialise first state
	o.Res = make([]*State, np)
	zero, err := NewState(o.Mdl)
	if err != nil {
		return
	}
	o.Res[0] = zero.Next(pth.Eps[0], pth.Temp[0], pth.Time[0])
	if !allZero(pth.Eps[0]) {
		err = o.Mdl.Update(o.D, o.Res[0], zero)
		if err != nil {
			return fmt.Errorf("step 0: %w", err)
		}
	}

	// update states
	for i := 1; i < np; i++ {
		o.Res[i] = o.Res[i-1].Next(pth.Eps[i], pth.Temp[i], pth.Time[i])
		err = o.Mdl.Update(o.D, o.Res[i], o.Res[i-1])
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if o.TstD != nil {
			err = o.checkD(i)
			if err != nil {
				return
			}
		}
	}
	return
}

// checkD compares D with numerical derivatives of σ(ε)
func (o *Driver) checkD(i int) (err error) {
	old := o.Res[i-1]
	Dtmp := utl.Alloc(6, 6)
	Dnum := utl.Alloc(6, 6)
	for j := 0; j < 6; j++ {
		cache := make(map[float64][]float64)
		stress := func(x float64) []float64 {
			if σ, ok := cache[x]; ok {
				return σ
			}
			tmp := o.Res[i].GetCopy()
			tmp.Eps[j] = x
			if e := o.Mdl.Update(Dtmp, tmp, old); e != nil && err == nil {
				err = e
			}
			cache[x] = tmp.Sig
			return tmp.Sig
		}
		h := o.StepD * math.Max(1, math.Abs(o.Res[i].Eps[j]))
		for k := 0; k < 6; k++ {
			Dnum[k][j] = num.DerivCen5(o.Res[i].Eps[j], h, func(x float64) float64 {
				return stress(x)[k]
			})
		}
		if err != nil {
			return fmt.Errorf("check of D @ step %d: %w", i, err)
		}
	}
	scale := 1.0
	for k := 0; k < 6; k++ {
		for j := 0; j < 6; j++ {
			scale = math.Max(scale, math.Abs(o.D[k][j]))
		}
	}
	for k := 0; k < 6; k++ {
		for j := 0; j < 6; j++ {
			if o.RelD {
				scale = math.Max(1, math.Max(math.Abs(o.D[k][j]), math.Abs(Dnum[k][j])))
			}
			chk.AnaNum(o.TstD, io.Sf("D%d%d @ step %d", k, j, i), o.TolD, o.D[k][j]/scale, Dnum[k][j]/scale, o.VerD)
		}
	}
	return
}

// allZero tells whether all entries are zero
func allZero(a []float64) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}
	return true
}
