// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads material databases
package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/crystal"
	"github.com/cpmech/gomat/mdl/damage"
	"github.com/cpmech/gomat/mdl/harden"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gomat/mdl/solid"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Material holds material data
// Type is one of "solid", "harden" or "damage". Deps lists other materials used by this one:
// solid "crystal": one hardening material (optional; Voce from own parameters otherwise)
// solid "damaged": the base solid material followed by one or more damage materials
// harden "sum", damage "combined": the sub-laws
type Material struct {
	Name   string            `json:"name" yaml:"name"`     // name of material
	Type   string            `json:"type" yaml:"type"`     // type of material; e.g. "solid", "harden", "damage"
	Model  string            `json:"model" yaml:"model"`   // name of model; e.g. "dp", "crystal", "voce", etc.
	Var    string            `json:"var" yaml:"var"`       // name of history variable (optional)
	Extra  string            `json:"extra" yaml:"extra"`   // extra information about this material
	Deps   []string          `json:"deps" yaml:"deps"`     // names of materials this one depends on
	TFuncs map[string]string `json:"tfuncs" yaml:"tfuncs"` // maps parameter name to function of temperature
	Prms   dbf.Params        `json:"prms" yaml:"prms"`     // prms holds all model parameters for this material
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Functions FuncsData `json:"functions" yaml:"functions"` // all functions
	Materials MatsData  `json:"materials" yaml:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat (JSON) or .yaml file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	var b []byte
	err = errs.Catch(errs.ErrConfiguration, func() {
		b = io.ReadFile(filepath.Join(dir, fn))
	})
	if err != nil {
		return nil, errs.Config("cannot read material file: %v", err)
	}
	return ParseMat(b, filepath.Ext(fn))
}

// ParseMat decodes materials data; ext selects the format
func ParseMat(b []byte, ext string) (mdb *MatDb, err error) {
	mdb = new(MatDb)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, mdb)
	default:
		err = json.Unmarshal(b, mdb)
	}
	if err != nil {
		return nil, errs.Config("cannot decode material file: %v", err)
	}
	if err = mdb.check(); err != nil {
		return nil, err
	}
	return
}

// Get returns a material
// Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Solid allocates the solid model of a material
func (o MatDb) Solid(name string) (solid.Small, error) {
	return o.solid(name, map[string]bool{})
}

// Harden allocates the hardening law of a material
func (o MatDb) Harden(name string) (harden.Law, error) {
	return o.harden(name, map[string]bool{})
}

// Set returns the parameters of a material with its functions of temperature
func (o MatDb) Set(m *Material) (set *prms.Set, err error) {
	set = &prms.Set{Prms: m.Prms, Var: m.Var}
	if len(m.TFuncs) > 0 {
		set.Funcs = make(map[string]dbf.T, len(m.TFuncs))
	}
	for key, fname := range m.TFuncs {
		set.Funcs[key], err = o.Functions.Get(fname)
		if err != nil {
			return nil, err
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// check checks names and types
func (o MatDb) check() error {
	names := make(map[string]bool)
	for _, m := range o.Materials {
		if m.Name == "" {
			return errs.Config("material name must not be empty")
		}
		if names[m.Name] {
			return errs.Config("material %q is defined twice", m.Name)
		}
		names[m.Name] = true
		switch m.Type {
		case "solid", "harden", "damage":
		default:
			return errs.Config("material type %q is incorrect; options are \"solid\", \"harden\" and \"damage\"", m.Type)
		}
	}
	for _, m := range o.Materials {
		for _, dep := range m.Deps {
			if !names[dep] {
				return errs.Config("material %q depends on %q which is not defined", m.Name, dep)
			}
		}
	}
	return nil
}

// find returns a material of a given type
// visiting holds the materials being allocated and detects circular dependencies.
func (o MatDb) find(name, typ string, visiting map[string]bool) (m *Material, set *prms.Set, err error) {
	m = o.Get(name)
	if m == nil {
		return nil, nil, errs.Config("cannot find material named %q", name)
	}
	if m.Type != typ {
		return nil, nil, errs.Config("material %q has type %q; %q is required", name, m.Type, typ)
	}
	if visiting[name] {
		return nil, nil, errs.Config("material %q has circular dependencies", name)
	}
	visiting[name] = true
	set, err = o.Set(m)
	return
}

// solid allocates a solid model
func (o MatDb) solid(name string, visiting map[string]bool) (mdl solid.Small, err error) {
	m, set, err := o.find(name, "solid", visiting)
	if err != nil {
		return
	}
	defer delete(visiting, name)
	switch m.Model {

	// crystal with hardening material
	case "crystal":
		if len(m.Deps) == 0 {
			return solid.New(m.Model, set)
		}
		if len(m.Deps) != 1 {
			return nil, errs.Config("crystal material %q requires one hardening material", name)
		}
		if err = set.Check("crystal", "E", "nu", "g0", "n", "phi1", "Phi", "phi2", "tol", "miter", "lattice"); err != nil {
			return
		}
		law, e := o.harden(m.Deps[0], visiting)
		if e != nil {
			return nil, e
		}
		L, e := crystal.Lattice(set)
		if e != nil {
			return nil, e
		}
		return crystal.New(set, law, L)

	// damaged base model
	case "damaged":
		if len(m.Deps) < 2 {
			return nil, errs.Config("damaged material %q requires the base material and at least one damage material", name)
		}
		base, e := o.solid(m.Deps[0], visiting)
		if e != nil {
			return nil, e
		}
		bset, e := o.Set(o.Get(m.Deps[0]))
		if e != nil {
			return nil, e
		}
		el, e := solid.NewElasticity(bset)
		if e != nil {
			return nil, e
		}
		var laws []damage.Law
		for _, dep := range m.Deps[1:] {
			law, e := o.damage(dep, el, visiting)
			if e != nil {
				return nil, e
			}
			laws = append(laws, law)
		}
		law := laws[0]
		if len(laws) > 1 {
			if law, err = damage.NewCombined(laws...); err != nil {
				return
			}
		}
		return damage.NewScalarDamaged(base, law, el, set)
	}
	if len(m.Deps) > 0 {
		return nil, errs.Config("solid material %q with model %q does not take dependencies", name, m.Model)
	}
	return solid.New(m.Model, set)
}

// harden allocates a hardening law
func (o MatDb) harden(name string, visiting map[string]bool) (law harden.Law, err error) {
	m, set, err := o.find(name, "harden", visiting)
	if err != nil {
		return
	}
	defer delete(visiting, name)
	subs := make([]harden.Law, len(m.Deps))
	for i, dep := range m.Deps {
		if subs[i], err = o.harden(dep, visiting); err != nil {
			return
		}
	}
	return harden.New(m.Model, set, subs...)
}

// damage allocates a damage law
func (o MatDb) damage(name string, el *solid.Elasticity, visiting map[string]bool) (law damage.Law, err error) {
	m, set, err := o.find(name, "damage", visiting)
	if err != nil {
		return
	}
	defer delete(visiting, name)
	subs := make([]damage.Law, len(m.Deps))
	for i, dep := range m.Deps {
		if subs[i], err = o.damage(dep, el, visiting); err != nil {
			return
		}
	}
	return damage.New(m.Model, set, el, subs...)
}
