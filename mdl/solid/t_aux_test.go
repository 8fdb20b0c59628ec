// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gomat/mdl/prms"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newModel allocates a model or fails the test
func newModel(tst *testing.T, name string, prms0 dbf.Params) Small {
	mdl, err := New(name, prms.New(prms0))
	if err != nil {
		tst.Fatalf("New(%q) failed: %v\n", name, err)
	}
	return mdl
}

// picky is linear elastic but fails when the axial strain is negative
type picky struct {
	LinElast
}

func (o *picky) Update(D [][]float64, snew, sold *State) error {
	if snew.Eps[0] < 0 {
		return errs.Domain("picky: negative strain %g", snew.Eps[0])
	}
	return o.LinElast.Update(D, snew, sold)
}
