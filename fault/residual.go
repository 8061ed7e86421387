// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// IntegrateResidual adds the contribution of the fault tractions to the
// residual at the negative and positive vertices. external initial tractions
// oppose the internal tractions carried by the Lagrange multipliers. when
// the fault has opened, the normal traction must have vanished already;
// a nonzero normal traction across an open fault is an error
func (o *Fault) IntegrateResidual(sol *SolnFields, t float64) (err error) {
	nd := o.Ndim
	indexN := nd - 1
	for iv, cv := range o.Verts {
		N, P, L := cv.Neg, cv.Pos, cv.Lag

		// contributions are assembled across processors
		if !sol.Local[L] {
			continue
		}

		// normal slip and normal traction at t+dt
		slipNormal := 0.0
		tractionNormal := 0.0
		for j := 0; j < nd; j++ {
			c := o.Orient[iv][indexN*nd+j]
			slipNormal += c * (sol.DispT[P][j] + sol.DispIncr[P][j] - sol.DispT[N][j] - sol.DispIncr[N][j])
			tractionNormal += c * (sol.DispT[L][j] + sol.DispIncr[L][j])
		}

		if slipNormal < o.ZeroTol { // no opening
			for i := 0; i < nd; i++ {
				t0 := 0.0
				if o.TractInit != nil {
					t0 = o.TractInit[iv][i]
				}
				r := o.Area[iv] * (sol.DispT[L][i] + sol.DispIncr[L][i] - t0)
				sol.Residual[N][i] += r
				sol.Residual[P][i] -= r
			}
			continue
		}

		// opening: normal traction must be zero
		if math.Abs(tractionNormal) >= o.ZeroTol {
			return chk.Err("fault with tag=%d: fault opened with nonzero normal traction: slip=%g traction=%g", o.Tag, slipNormal, tractionNormal)
		}
	}
	return
}

// UpdateStateVars commits the converged solution: it refreshes the relative
// motion across the fault and updates the state variables of the friction
// model at every fault vertex
func (o *Fault) UpdateStateVars(t float64, sol *SolnFields) (err error) {
	nd := o.Ndim
	indexN := nd - 1
	o.updateRelMotion(sol)
	for iv, cv := range o.Verts {
		L := cv.Lag

		// slip, slip rate and traction at t+dt in fault coordinates
		for i := 0; i < nd; i++ {
			o.slip[i] = 0
			o.slipRate[i] = 0
			o.tract[i] = 0
			for j := 0; j < nd; j++ {
				c := o.Orient[iv][i*nd+j]
				o.slip[i] += c * o.DispRel[iv][j]
				o.slipRate[i] += c * o.VelRel[iv][j]
				o.tract[i] += c * (sol.DispT[L][j] + sol.DispIncr[L][j])
			}
		}

		slipMag := o.shearMag(o.slip)
		slipRateMag := o.shearMag(o.slipRate)
		err = o.Fric.UpdateStateVars(t, sol.Dt, slipMag, slipRateMag, o.tract[indexN], o.States[iv])
		if err != nil {
			return chk.Err("fault with tag=%d: cannot update friction state: %v", o.Tag, err)
		}
	}
	return
}
