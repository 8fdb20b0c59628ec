// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harden

import (
	"sort"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/prms"
)

// allocator builds a law from parameters and (optional) sub-laws
type allocator func(set *prms.Set, subs []Law) (Law, error)

// allocators holds all available laws
var allocators = map[string]allocator{}

// New returns a new hardening law
// subs are used by composite laws (e.g. "sum") only.
func New(name string, set *prms.Set, subs ...Law) (Law, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, errs.Config("hardening model %q is not available in 'harden' database", name)
	}
	if set == nil {
		set = new(prms.Set)
	}
	if len(subs) > 0 && name != "sum" {
		return nil, errs.Config("hardening model %q does not take sub-models", name)
	}
	return alloc(set, subs)
}

// Models returns the names of all available laws
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
