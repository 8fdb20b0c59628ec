// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/hist"
)

// State holds the state of one material point
type State struct {
	Eps  []float64     // ε: total strain [6]
	Sig  []float64     // σ: Cauchy stress [6]
	Hist *hist.History // internal variables
	Temp float64       // temperature
	Time float64       // time
	U    float64       // stored energy (work) per unit volume
	P    float64       // dissipated energy per unit volume
}

// NewState allocates a state with the history slots of a model
func NewState(mdl Small) (o *State, err error) {
	o = &State{
		Eps:  make([]float64, 6),
		Sig:  make([]float64, 6),
		Hist: hist.New(),
	}
	err = mdl.Populate(o.Hist)
	if err != nil {
		return nil, err
	}
	err = mdl.InitHist(o.Hist)
	if err != nil {
		return nil, err
	}
	return
}

// Set copies states
// Note: both states must have the same history layout
func (o *State) Set(other *State) error {
	if len(o.Eps) != 6 || len(o.Sig) != 6 || len(other.Eps) != 6 || len(other.Sig) != 6 {
		return errs.Config("states must have 6 strain and stress components")
	}
	copy(o.Eps, other.Eps)
	copy(o.Sig, other.Sig)
	if err := o.Hist.Set(other.Hist); err != nil {
		return err
	}
	o.Temp = other.Temp
	o.Time = other.Time
	o.U = other.U
	o.P = other.P
	return nil
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	return &State{
		Eps:  append([]float64{}, o.Eps...),
		Sig:  append([]float64{}, o.Sig...),
		Hist: o.Hist.GetCopy(),
		Temp: o.Temp,
		Time: o.Time,
		U:    o.U,
		P:    o.P,
	}
}

// Next returns a copy of this state with new strain, temperature and time
// The new stress and history must be computed by a model Update.
func (o *State) Next(ε []float64, T, t float64) *State {
	other := o.GetCopy()
	copy(other.Eps, ε)
	other.Temp = T
	other.Time = t
	return other
}
