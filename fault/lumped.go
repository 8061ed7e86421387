// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import "github.com/cpmech/gosl/chk"

// AdjustSolnLumped adjusts the solution of a solver with lumped Jacobian so
// that it satisfies the Lagrange multiplier constraints and the friction
// criterion. kdiag holds the diagonal of the lumped Jacobian, indexed by
// mesh vertex id and dimension.
//
// the Lagrange increments in sol.DispIncr are overwritten (the preliminary
// solve gives bogus values there); the displacement adjustments at the
// negative and positive vertices accumulate into sol.DispIncrAdj so that
// they can be assembled across processors
func (o *Fault) AdjustSolnLumped(sol *SolnFields, t float64, kdiag [][]float64) (err error) {
	nd := o.Ndim
	for iv, cv := range o.Verts {
		N, P, L := cv.Neg, cv.Pos, cv.Lag
		area := o.Area[iv]
		kN := kdiag[N]
		kP := kdiag[P]

		// increment in the Lagrange multipliers and corresponding
		// displacement increments, as in prescribed rupture
		for i := 0; i < nd; i++ {
			if kN[i] <= 0 || kP[i] <= 0 {
				return chk.Err("fault with tag=%d: lumped Jacobian must be positive at fault vertices: kN=%g kP=%g", o.Tag, kN[i], kP[i])
			}
			S := (1.0/kP[i] + 1.0/kN[i]) * area * area
			o.dLagGlob[i] = 1.0 / S * (-sol.Residual[L][i] + area*(sol.DispIncr[P][i]-sol.DispIncr[N][i]))
			o.vN[i] = +area / kN[i] * o.dLagGlob[i]
			o.vP[i] = -area / kP[i] * o.dLagGlob[i]
		}

		// slip, slip rate and traction at t+dt in fault coordinates
		for i := 0; i < nd; i++ {
			o.slip[i] = 0
			o.slipRate[i] = 0
			o.tract[i] = 0
			for j := 0; j < nd; j++ {
				c := o.Orient[iv][i*nd+j]
				o.slip[i] += c * o.DispRel[iv][j]
				o.slipRate[i] += c * o.VelRel[iv][j]
				o.tract[i] += c * (sol.DispT[L][j] + o.dLagGlob[j])
			}
		}

		// friction projection, without iteration
		for i := 0; i < nd; i++ {
			o.dLag[i] = 0
		}
		err = o.proj.project(o.dLag, t, o.slip, o.slipRate, o.tract, iv, false)
		if err != nil {
			return
		}

		// rotate the traction change back to global coordinates
		for i := 0; i < nd; i++ {
			o.dTract[i] = 0
			for j := 0; j < nd; j++ {
				o.dTract[i] += o.Orient[iv][j*nd+i] * o.dLag[j]
			}
		}

		// fold the traction change into the displacement adjustments, the
		// relative displacement estimate and the Lagrange increment
		for i := 0; i < nd; i++ {
			o.vN[i] += area * o.dTract[i] / kN[i]
			o.vP[i] -= area * o.dTract[i] / kP[i]
			o.dDispRel[i] = -area * 2.0 * o.dTract[i] / (kN[i] + kP[i])
			o.dLagGlob[i] += o.dTract[i]
		}

		// the adjustment at N and P is assembled across processors; the
		// Lagrange multiplier and relative displacement are not
		if sol.Local[L] {
			for i := 0; i < nd; i++ {
				sol.DispIncrAdj[N][i] += o.vN[i]
				sol.DispIncrAdj[P][i] += o.vP[i]
			}
		}
		for i := 0; i < nd; i++ {
			sol.DispIncr[L][i] = o.dLagGlob[i]
			o.DispRel[iv][i] += o.dDispRel[i]
		}
	}
	return
}
