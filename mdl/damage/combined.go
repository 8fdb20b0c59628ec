// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package damage

import "github.com/cpmech/gomat/errs"

// Combined sums the increments of many damage laws
type Combined struct {
	Laws []Law
}

// NewCombined returns a new combination of damage laws
func NewCombined(laws ...Law) (*Combined, error) {
	if len(laws) == 0 {
		return nil, errs.Config("combined damage requires at least one law")
	}
	return &Combined{Laws: laws}, nil
}

// Damage computes the damage increment
func (o *Combined) Damage(a *Args) (res Result, err error) {
	res = newResult()
	for _, law := range o.Laws {
		r, e := law.Damage(a)
		if e != nil {
			return Result{}, e
		}
		res.Inc += r.Inc
		res.DIncDd += r.DIncDd
		for i := 0; i < 6; i++ {
			res.DIncDe[i] += r.DIncDe[i]
			res.DIncDs[i] += r.DIncDs[i]
		}
	}
	return
}
