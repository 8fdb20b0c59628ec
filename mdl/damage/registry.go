// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import (
	"sort"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gomat/mdl/solid"
)

// allocator builds a law from parameters, elasticity and (optional) sub-laws
type allocator func(set *prms.Set, el *solid.Elasticity, subs []Law) (Law, error)

// allocators holds all available damage laws
var allocators = map[string]allocator{
	"power-law": func(set *prms.Set, el *solid.Elasticity, subs []Law) (Law, error) {
		if err := set.Check("power-law", "A", "a"); err != nil {
			return nil, err
		}
		fcns, err := set.FuncList("A", "a")
		if err != nil {
			return nil, err
		}
		if el == nil {
			return nil, errs.Config("power-law damage requires elasticity")
		}
		return &PowerLaw{Elast: el, A: fcns[0], Alpha: fcns[1]}, nil
	},
	"exp-work": func(set *prms.Set, el *solid.Elasticity, subs []Law) (Law, error) {
		if err := set.Check("exp-work", "W0", "k0", "af"); err != nil {
			return nil, err
		}
		fcns, err := set.FuncList("W0", "k0", "af")
		if err != nil {
			return nil, err
		}
		if el == nil {
			return nil, errs.Config("exp-work damage requires elasticity")
		}
		return &ExpWork{Elast: el, W0: fcns[0], K0: fcns[1], Af: fcns[2]}, nil
	},
	"classical-creep": func(set *prms.Set, el *solid.Elasticity, subs []Law) (Law, error) {
		if err := set.Check("classical-creep", "A", "xi", "phi"); err != nil {
			return nil, err
		}
		fcns, err := set.FuncList("A", "xi", "phi")
		if err != nil {
			return nil, err
		}
		return &ClassicalCreep{A: fcns[0], Xi: fcns[1], Phi: fcns[2]}, nil
	},
	"fatigue": func(set *prms.Set, el *solid.Elasticity, subs []Law) (Law, error) {
		if err := set.Check("fatigue", "C", "m", "n", "falpha", "fbeta", "rate0"); err != nil {
			return nil, err
		}
		fcns, err := set.FuncList("C", "m", "n", "falpha", "fbeta", "rate0")
		if err != nil {
			return nil, err
		}
		return &Fatigue{C: fcns[0], M: fcns[1], N: fcns[2], Falpha: fcns[3], Fbeta: fcns[4], Rate0: fcns[5]}, nil
	},
	"combined": func(set *prms.Set, el *solid.Elasticity, subs []Law) (Law, error) {
		if err := set.Check("combined"); err != nil {
			return nil, err
		}
		return NewCombined(subs...)
	},
}

// New returns a new damage law
// el is required by laws driven by the inelastic strain; subs are used by "combined" only.
func New(name string, set *prms.Set, el *solid.Elasticity, subs ...Law) (Law, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, errs.Config("damage model %q is not available in 'damage' database", name)
	}
	if set == nil {
		set = new(prms.Set)
	}
	if len(subs) > 0 && name != "combined" {
		return nil, errs.Config("damage model %q does not take sub-models", name)
	}
	return alloc(set, el, subs)
}

// Models returns the names of all available laws
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
