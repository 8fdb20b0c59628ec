// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lattice holds slip systems and crystal orientations
// Laws read these data but never modify them.
package lattice

import (
	"math"
	"sort"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/tsr"
)

// SlipSystem holds the unit slip direction and the unit plane normal in the crystal frame
type SlipSystem struct {
	D [3]float64 // direction
	N [3]float64 // normal
}

// Lattice holds groups of slip systems
type Lattice struct {
	Groups [][]SlipSystem
}

// NewLattice returns a lattice with the given groups
// Directions and normals are normalised; non-orthogonal pairs are rejected.
func NewLattice(groups ...[]SlipSystem) (o *Lattice, err error) {
	o = new(Lattice)
	o.Groups = make([][]SlipSystem, len(groups))
	for g, group := range groups {
		if len(group) == 0 {
			return nil, errs.Config("slip group %d is empty", g)
		}
		o.Groups[g] = make([]SlipSystem, len(group))
		for i, s := range group {
			d, dn := unit(s.D)
			n, nn := unit(s.N)
			if dn == 0 || nn == 0 {
				return nil, errs.Config("slip system (%d,%d) has a zero vector", g, i)
			}
			if math.Abs(dot(d, n)) > 1e-10 {
				return nil, errs.Config("slip system (%d,%d): direction %v is not on plane %v", g, i, s.D, s.N)
			}
			o.Groups[g][i] = SlipSystem{d, n}
		}
	}
	return
}

// CubicFamily returns all systems equivalent to (dir, plane) under cubic symmetry
// Opposite directions and normals are counted once.
func CubicFamily(dir, plane [3]float64) (res []SlipSystem) {
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	seen := make(map[string]bool)
	for _, p := range perms {
		for s := 0; s < 8; s++ {
			var d, n [3]float64
			for k := 0; k < 3; k++ {
				sgn := 1.0
				if s&(1<<k) != 0 {
					sgn = -1
				}
				d[k] = sgn * dir[p[k]]
				n[k] = sgn * plane[p[k]]
			}
			d, n = canonical(d), canonical(n)
			key := io.Sf("%v%v", d, n)
			if seen[key] {
				continue
			}
			seen[key] = true
			res = append(res, SlipSystem{d, n})
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		for k := 2; k >= 0; k-- {
			if res[i].N[k] != res[j].N[k] {
				return res[i].N[k] > res[j].N[k]
			}
		}
		for k := 2; k >= 0; k-- {
			if res[i].D[k] != res[j].D[k] {
				return res[i].D[k] > res[j].D[k]
			}
		}
		return false
	})
	return
}

// FCC returns the face-centred cubic lattice with {111}<110> systems
func FCC() *Lattice {
	o, err := NewLattice(CubicFamily([3]float64{1, -1, 0}, [3]float64{1, 1, 1}))
	if err != nil {
		chk.Panic("%v", err)
	}
	return o
}

// BCC returns the body-centred cubic lattice with {110}<111> systems
func BCC() *Lattice {
	o, err := NewLattice(CubicFamily([3]float64{1, -1, 1}, [3]float64{1, 1, 0}))
	if err != nil {
		chk.Panic("%v", err)
	}
	return o
}

// NGroup returns the number of slip groups
func (o *Lattice) NGroup() int { return len(o.Groups) }

// NSlip returns the number of slip systems in group g
func (o *Lattice) NSlip(g int) int {
	if g < 0 || g >= len(o.Groups) {
		return 0
	}
	return len(o.Groups[g])
}

// NTotal returns the total number of slip systems
func (o *Lattice) NTotal() (n int) {
	for _, group := range o.Groups {
		n += len(group)
	}
	return
}

// Flat returns the position of system (g, i) when all systems are listed in sequence
func (o *Lattice) Flat(g, i int) int {
	k := i
	for j := 0; j < g; j++ {
		k += len(o.Groups[j])
	}
	return k
}

// Check returns an OutOfRange error if (g, i) does not exist
func (o *Lattice) Check(g, i int) error {
	if g < 0 || g >= len(o.Groups) || i < 0 || i >= len(o.Groups[g]) {
		return errs.Range("slip system (%d,%d) does not exist", g, i)
	}
	return nil
}

// Schmid computes the Mandel representation of sym(Q⋅d ⊗ Q⋅n)
func (o *Lattice) Schmid(P []float64, g, i int, Q *Orientation) error {
	if err := o.Check(g, i); err != nil {
		return err
	}
	s := o.Groups[g][i]
	d, n := Q.Apply(s.D), Q.Apply(s.N)
	for I := 0; I < 6; I++ {
		a, b := tsr.ManToSecI[I], tsr.ManToSecJ[I]
		P[I] = (d[a]*n[b] + d[b]*n[a]) / 2.0
		if I > 2 {
			P[I] *= math.Sqrt2
		}
	}
	return nil
}

// Shear computes the resolved shear stress τ = σ : P on system (g, i)
func (o *Lattice) Shear(g, i int, Q *Orientation, σ []float64) (τ float64, err error) {
	P := make([]float64, 6)
	if err = o.Schmid(P, g, i, Q); err != nil {
		return
	}
	for k := 0; k < 6; k++ {
		τ += σ[k] * P[k]
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func unit(a [3]float64) (u [3]float64, nrm float64) {
	nrm = math.Sqrt(dot(a, a))
	if nrm > 0 {
		u = [3]float64{a[0] / nrm, a[1] / nrm, a[2] / nrm}
	}
	return
}

// canonical flips the sign of a so that its first non-zero component is positive
func canonical(a [3]float64) [3]float64 {
	for k := 0; k < 3; k++ {
		if a[k] < 0 {
			a = [3]float64{-a[0], -a[1], -a[2]}
			break
		}
		if a[k] > 0 {
			break
		}
	}
	for k := 0; k < 3; k++ {
		if a[k] == 0 {
			a[k] = 0 // no negative zeros
		}
	}
	return a
}
