// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import "math"

// updateRelMotion refreshes the relative displacement and relative velocity
// across the fault from the current solution, snapping values below the zero
// tolerance to zero
func (o *Fault) updateRelMotion(sol *SolnFields) {
	nd := o.Ndim
	for iv, cv := range o.Verts {
		N, P := cv.Neg, cv.Pos
		for i := 0; i < nd; i++ {
			v := sol.DispT[P][i] + sol.DispIncr[P][i] - sol.DispT[N][i] - sol.DispIncr[N][i]
			if math.Abs(v) <= o.ZeroTol {
				v = 0
			}
			o.DispRel[iv][i] = v
		}
		sol.velRel(o.vN, N, P)
		for i := 0; i < nd; i++ {
			v := o.vN[i]
			if math.Abs(v) <= o.ZeroTol {
				v = 0
			}
			o.VelRel[iv][i] = v
		}
	}
}
