// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Path holds a strain-temperature-time loading path
type Path struct {
	Eps  [][]float64 `yaml:"eps"`  // strains at each point [np][6]
	Temp []float64   `yaml:"temp"` // temperatures at each point [np]
	Time []float64   `yaml:"time"` // times at each point [np]
}

// Size returns the number of points
func (o *Path) Size() int {
	return len(o.Eps)
}

// Init sets the first point of the path
func (o *Path) Init(ε0 []float64, T0, t0 float64) (err error) {
	if len(ε0) != 6 {
		return errs.Config("path: strain must have 6 components. %d is invalid", len(ε0))
	}
	o.Eps = [][]float64{append([]float64{}, ε0...)}
	o.Temp = []float64{T0}
	o.Time = []float64{t0}
	return
}

// AddLinear adds nincs points linearly interpolated from the last point to (εf, Tf, tf)
func (o *Path) AddLinear(εf []float64, Tf, tf float64, nincs int) (err error) {
	if o.Size() == 0 {
		err = o.Init(make([]float64, 6), 0, 0)
		if err != nil {
			return
		}
	}
	if len(εf) != 6 {
		return errs.Config("path: strain must have 6 components. %d is invalid", len(εf))
	}
	if nincs < 1 {
		return errs.Config("path: number of increments must be positive. %d is invalid", nincs)
	}
	last := o.Size() - 1
	ε0, T0, t0 := o.Eps[last], o.Temp[last], o.Time[last]
	for k := 1; k <= nincs; k++ {
		s := float64(k) / float64(nincs)
		ε := make([]float64, 6)
		for i := 0; i < 6; i++ {
			ε[i] = ε0[i] + s*(εf[i]-ε0[i])
		}
		o.Eps = append(o.Eps, ε)
		o.Temp = append(o.Temp, T0+s*(Tf-T0))
		o.Time = append(o.Time, t0+s*(tf-t0))
	}
	return
}

// Check checks the consistency of the path
func (o *Path) Check() error {
	np := o.Size()
	if np < 1 {
		return errs.Config("path: at least one point is required")
	}
	if len(o.Temp) != np || len(o.Time) != np {
		return errs.Config("path: eps, temp and time must have the same number of points: %d, %d, %d", np, len(o.Temp), len(o.Time))
	}
	for i, ε := range o.Eps {
		if len(ε) != 6 {
			return errs.Config("path: strain at point %d must have 6 components", i)
		}
		if i > 0 && o.Time[i] < o.Time[i-1] {
			return errs.Config("path: time must not decrease; t[%d]=%g < t[%d]=%g", i, o.Time[i], i-1, o.Time[i-1])
		}
	}
	return nil
}

// ReadPath reads a path from a YAML (or JSON) file
func ReadPath(fn string) (o *Path, err error) {
	var b []byte
	err = errs.Catch(errs.ErrConfiguration, func() {
		b = io.ReadFile(fn)
	})
	if err != nil {
		return nil, errs.Config("path: cannot read file %q: %v", fn, err)
	}
	return ParsePath(b)
}

// ParsePath parses a path given in YAML
// Example:
// eps:  [[0,0,0,0,0,0], [0.001,0,0,0,0,0]]
// temp: [20, 20]
// time: [0, 1]
func ParsePath(b []byte) (o *Path, err error) {
	o = new(Path)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, errs.Config("path: cannot parse: %v", err)
	}
	if err = o.Check(); err != nil {
		return nil, err
	}
	return
}
