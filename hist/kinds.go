// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import "github.com/cpmech/gomat/errs"

// Kind is the semantic type tag of a history slot
type Kind int

// kinds of slots
const (
	Scalar    Kind = iota // one value
	Symmetric             // symmetric 2nd order tensor in Mandel basis [6]
	SymSym                // 4th order tensor with minor symmetries, row-major [6][6]
)

// Size returns the number of values stored in a slot of this kind
func (k Kind) Size() int {
	switch k {
	case Scalar:
		return 1
	case Symmetric:
		return 6
	case SymSym:
		return 36
	}
	return 0
}

// Rows returns the number of rows of a slot of this kind when seen as a matrix
func (k Kind) Rows() int {
	if k == SymSym {
		return 6
	}
	return k.Size()
}

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Symmetric:
		return "symmetric"
	case SymSym:
		return "symsym"
	}
	return "unknown"
}

// DerivKind returns the kind of d(of)/d(wrt)
func DerivKind(of, wrt Kind) (Kind, error) {
	switch {
	case of == Scalar && wrt == Scalar:
		return Scalar, nil
	case of == Scalar && wrt == Symmetric:
		return Symmetric, nil
	case of == Symmetric && wrt == Scalar:
		return Symmetric, nil
	case of == Symmetric && wrt == Symmetric:
		return SymSym, nil
	}
	return Scalar, errs.Config("derivative of %v with respect to %v is not available", of, wrt)
}
