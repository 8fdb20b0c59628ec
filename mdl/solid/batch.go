// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"fmt"

	"github.com/cpmech/gomat/errs"
	"golang.org/x/sync/errgroup"
)

// UpdateBatch updates independent material points concurrently
// D[i], snew[i] and sold[i] correspond to point i; nworkers ≤ 0 means one
// goroutine per point. The model must be safe for concurrent Update calls.
// All points are attempted; the errors of failing points are joined and their
// new states are left untouched.
func UpdateBatch(mdl Small, D [][][]float64, snew, sold []*State, nworkers int) error {

	// check
	n := len(snew)
	if len(sold) != n || len(D) != n {
		return errs.Config("batch: sizes of D, new and old states must be equal: %d, %d, %d", len(D), n, len(sold))
	}

	// run
	perr := make([]error, n)
	var g errgroup.Group
	if nworkers > 0 {
		g.SetLimit(nworkers)
	}
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			tmp := snew[i].GetCopy()
			Dtmp := make([][]float64, 6)
			for k := range Dtmp {
				Dtmp[k] = make([]float64, 6)
			}
			if err := mdl.Update(Dtmp, tmp, sold[i]); err != nil {
				perr[i] = fmt.Errorf("point %d: %w", i, err)
				return nil
			}
			if err := snew[i].Set(tmp); err != nil {
				perr[i] = fmt.Errorf("point %d: %w", i, err)
				return nil
			}
			for k := 0; k < 6; k++ {
				copy(D[i][k], Dtmp[k])
			}
			return nil
		})
	}
	g.Wait()
	return errors.Join(perr...)
}
