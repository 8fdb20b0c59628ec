// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prms bundles model parameters and temperature-dependent functions
package prms

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/fun/dbf"
)

// Set holds the parameters of one model
// Funcs maps a parameter name to a function of temperature; it takes precedence
// over the constant value in Prms.
type Set struct {
	Prms  dbf.Params       // constant parameters
	Funcs map[string]dbf.T // temperature-dependent parameters
	Var   string           // name of the history variable owned by the model (optional)
}

// New returns a set with constant parameters only
func New(prms dbf.Params) *Set {
	return &Set{Prms: prms}
}

// find returns a parameter or nil
func (o *Set) find(name string) *dbf.P {
	for _, p := range o.Prms {
		if p.N == name {
			return p
		}
	}
	return nil
}

// Has tells whether a parameter is given or not
func (o *Set) Has(name string) bool {
	if _, ok := o.Funcs[name]; ok {
		return true
	}
	return o.find(name) != nil
}

// Func returns a parameter as a function of temperature
// Constant parameters are wrapped as dbf.Cte.
func (o *Set) Func(name string) (dbf.T, error) {
	if f, ok := o.Funcs[name]; ok {
		return f, nil
	}
	p := o.find(name)
	if p == nil {
		return nil, errs.Config("parameter %q is missing", name)
	}
	return &dbf.Cte{C: p.V}, nil
}

// FuncOr returns a parameter as a function of temperature or a constant default value
func (o *Set) FuncOr(name string, dflt float64) dbf.T {
	f, err := o.Func(name)
	if err != nil {
		return &dbf.Cte{C: dflt}
	}
	return f
}

// Float returns a constant parameter
func (o *Set) Float(name string) (float64, error) {
	if _, ok := o.Funcs[name]; ok {
		return 0, errs.Config("parameter %q must be constant", name)
	}
	p := o.find(name)
	if p == nil {
		return 0, errs.Config("parameter %q is missing", name)
	}
	return p.V, nil
}

// FloatOr returns a constant parameter or a default value
func (o *Set) FloatOr(name string, dflt float64) float64 {
	if p := o.find(name); p != nil {
		return p.V
	}
	return dflt
}

// FuncList returns many parameters as functions of temperature
func (o *Set) FuncList(names ...string) (res []dbf.T, err error) {
	res = make([]dbf.T, len(names))
	for i, name := range names {
		res[i], err = o.Func(name)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Check returns an error if any given parameter is not in the allowed list
func (o *Set) Check(model string, allowed ...string) error {
	ok := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		ok[name] = true
	}
	for _, p := range o.Prms {
		if !ok[p.N] {
			return errs.Config("%s: parameter named %q is incorrect", model, p.N)
		}
	}
	for name := range o.Funcs {
		if !ok[name] {
			return errs.Config("%s: function of temperature named %q is incorrect", model, name)
		}
	}
	return nil
}
