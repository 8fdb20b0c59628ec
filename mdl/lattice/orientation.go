// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import "math"

// Orientation holds the rotation from the crystal frame to the sample frame
type Orientation struct {
	R [3][3]float64
}

// Identity returns the orientation of a crystal aligned with the sample
func Identity() *Orientation {
	return &Orientation{R: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// FromEuler returns the orientation given by Bunge Euler angles in degrees
func FromEuler(φ1, Φ, φ2 float64) *Orientation {
	c1, s1 := math.Cos(φ1*math.Pi/180), math.Sin(φ1*math.Pi/180)
	c, s := math.Cos(Φ*math.Pi/180), math.Sin(Φ*math.Pi/180)
	c2, s2 := math.Cos(φ2*math.Pi/180), math.Sin(φ2*math.Pi/180)

	// g maps sample to crystal; R = gᵀ
	g := [3][3]float64{
		{c1*c2 - s1*s2*c, s1*c2 + c1*s2*c, s2 * s},
		{-c1*s2 - s1*c2*c, -s1*s2 + c1*c2*c, c2 * s},
		{s1 * s, -c1 * s, c},
	}
	o := new(Orientation)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.R[i][j] = g[j][i]
		}
	}
	return o
}

// Apply returns R⋅v
func (o *Orientation) Apply(v [3]float64) (w [3]float64) {
	for i := 0; i < 3; i++ {
		w[i] = o.R[i][0]*v[0] + o.R[i][1]*v[1] + o.R[i][2]*v[2]
	}
	return
}
