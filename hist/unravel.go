// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/utl"
)

// Unravel assembles the derivative history d = d(of)/d(wrt) into a dense matrix
// The result has of.Size() rows and wrt.Size() columns; block "a_b" is placed at
// (offset(a), offset(b)) with the values of the slot stored row-major.
func Unravel(d, of, wrt *History) (M [][]float64, err error) {
	l, err := of.lay.derivLayout(wrt.lay)
	if err != nil {
		return
	}
	if !d.SameLayout(&History{lay: l}) {
		return nil, errs.Config("derivative history does not match d(%v)/d(%v)", of.lay.names, wrt.lay.names)
	}
	M = utl.Alloc(of.lay.size, wrt.lay.size)
	nb := len(wrt.lay.names)
	for a := range of.lay.names {
		nr := of.lay.kinds[a].Size()
		r0 := of.lay.offsets[a]
		for b := range wrt.lay.names {
			nc := wrt.lay.kinds[b].Size()
			c0 := wrt.lay.offsets[b]
			off := d.lay.offsets[a*nb+b]
			for i := 0; i < nr; i++ {
				for j := 0; j < nc; j++ {
					M[r0+i][c0+j] = d.data[off+i*nc+j]
				}
			}
		}
	}
	return
}

// UnravelKind assembles the derivative history d = d(of)/d(kind) into a dense matrix
// The result has of.Size() rows and kind.Size() columns.
func UnravelKind(d, of *History, wrt Kind) (M [][]float64, err error) {
	l, err := of.lay.derivKind(wrt)
	if err != nil {
		return
	}
	if !d.SameLayout(&History{lay: l}) {
		return nil, errs.Config("derivative history does not match d(%v)/d(%v)", of.lay.names, wrt)
	}
	nc := wrt.Size()
	M = utl.Alloc(of.lay.size, nc)
	for a := range of.lay.names {
		nr := of.lay.kinds[a].Size()
		r0 := of.lay.offsets[a]
		off := d.lay.offsets[a]
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				M[r0+i][j] = d.data[off+i*nc+j]
			}
		}
	}
	return
}
