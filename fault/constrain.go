// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import "math"

// ConstrainSolnSpace projects the trial solution onto the space satisfying
// the friction criterion and the contact constraints. it adjusts the
// Lagrange multiplier increments and the displacement increments of the
// fault vertices in sol, and refreshes DispRel.
//
// the returned error is either fatal (sensitivity solve failure) or a
// recoverable FrictionIterError counting the vertices where the projection
// fired with the shear traction already within the friction limit. callers
// iterating towards stick should keep iterating on the latter
func (o *Fault) ConstrainSolnSpace(sol *SolnFields, t float64, jac JacGetter) (err error) {
	nd := o.Ndim
	indexN := nd - 1
	o.sensStart()
	overshoot0 := o.Diag.Overshoot

	// steps 1 and 2: correct nonphysical trial solutions and apply the
	// friction criterion to obtain the change in the Lagrange multipliers
	for iv, cv := range o.Verts {
		N, P, L := cv.Neg, cv.Pos, cv.Lag

		// slip, slip rate and traction at t+dt in fault coordinates
		for i := 0; i < nd; i++ {
			o.slip[i] = 0
			o.slipRate[i] = 0
			o.tract[i] = 0
			for j := 0; j < nd; j++ {
				c := o.Orient[iv][i*nd+j]
				o.slip[i] += c * (sol.DispT[P][j] + sol.DispIncr[P][j] - sol.DispT[N][j] - sol.DispIncr[N][j])
				o.slipRate[i] += c * (sol.DispIncr[P][j] - sol.DispIncr[N][j]) / sol.Dt
				o.tract[i] += c * (sol.DispT[L][j] + sol.DispIncr[L][j])
			}
			if math.Abs(o.slipRate[i]) < o.ZeroTol {
				o.slipRate[i] = 0
			}
		}
		if math.Abs(o.slip[indexN]) < o.ZeroTol {
			o.slip[indexN] = 0
		}

		// the product of normal slip and normal traction must be
		// nonnegative: zero the smaller of the two when it is not
		dSlipNormal := 0.0
		dTractNormal := 0.0
		if o.slip[indexN]*o.tract[indexN] < 0 {
			o.Diag.NormalFix++
			if math.Abs(o.slip[indexN]) > math.Abs(o.tract[indexN]) {
				dTractNormal = -o.tract[indexN]
				o.tract[indexN] = 0
			} else {
				dSlipNormal = -o.slip[indexN]
				o.slip[indexN] = 0
			}
		}
		if o.slip[indexN] < 0 {
			o.Diag.Interpen++
			dSlipNormal = -o.slip[indexN]
			o.slip[indexN] = 0
		}

		// friction projection
		for i := 0; i < nd; i++ {
			o.dLag[i] = 0
		}
		err = o.proj.project(o.dLag, t, o.slip, o.slipRate, o.tract, iv, true)
		if err != nil {
			return
		}

		// rotate the traction change back to global coordinates, folding in
		// the normal traction correction from the contact check above
		for i := 0; i < nd; i++ {
			o.sens.dLag[iv][i] = 0
			for j := 0; j < nd; j++ {
				o.sens.dLag[iv][i] += o.Orient[iv][j*nd+i] * o.dLag[j]
			}
			o.sens.dLag[iv][i] += o.Orient[iv][indexN*nd+i] * dTractNormal
		}

		// make the trial displacements conform to the corrected normal slip
		if dSlipNormal != 0 {
			for i := 0; i < nd; i++ {
				v := o.Orient[iv][indexN*nd+i] * dSlipNormal
				sol.DispIncr[N][i] += -0.5 * v
				sol.DispIncr[P][i] += +0.5 * v
			}
		}
	}

	// step 3: slip change caused by the change in the Lagrange multipliers,
	// solving the sensitivity problem one fault side at a time
	for _, negativeSide := range []bool{true, false} {
		o.sensUpdateJacobian(negativeSide, jac, sol)
		err = o.sensReformResidual(negativeSide)
		if err != nil {
			return
		}
		err = o.sensSolve()
		if err != nil {
			return
		}
		o.sensUpdateSoln(negativeSide)
	}

	// step 4: update the Lagrange multipliers and displacement increments
	// with the changes from steps 2 and 3
	for iv, cv := range o.Verts {
		N, P, L := cv.Neg, cv.Pos, cv.Lag

		// slip, change in slip and tractions in fault coordinates
		for i := 0; i < nd; i++ {
			o.dSlip[i] = 0
			o.slip[i] = 0
			o.tract[i] = 0
			o.dTract[i] = 0
			for j := 0; j < nd; j++ {
				c := o.Orient[iv][i*nd+j]
				o.dSlip[i] += c * o.sens.dispRel[iv][j]
				o.slip[i] += c * (sol.DispT[P][j] - sol.DispT[N][j] + sol.DispIncr[P][j] - sol.DispIncr[N][j])
				o.tract[i] += c * (sol.DispT[L][j] + sol.DispIncr[L][j])
				o.dTract[i] += c * o.sens.dLag[iv][j]
			}
		}
		if math.Abs(o.slip[indexN]) < o.ZeroTol {
			o.slip[indexN] = 0
		}
		if math.Abs(o.dSlip[indexN]) < o.ZeroTol {
			o.dSlip[indexN] = 0
		}

		// repeat the contact check on the updated normal slip and traction
		if (o.slip[indexN]+o.dSlip[indexN])*(o.tract[indexN]+o.dTract[indexN]) < 0 {
			o.Diag.NormalFix++
			if math.Abs(o.slip[indexN]+o.dSlip[indexN]) > math.Abs(o.tract[indexN]+o.dTract[indexN]) {
				o.dTract[indexN] = -o.tract[indexN]
			} else {
				o.dSlip[indexN] = -o.slip[indexN]
			}
		}
		if o.slip[indexN]+o.dSlip[indexN] < 0 {
			o.Diag.Interpen++
			o.dSlip[indexN] = -o.slip[indexN]
		}

		// current estimate of slip from t to t+dt
		for i := 0; i < nd; i++ {
			o.slip[i] += o.dSlip[i]
		}

		// back to global coordinates; relative displacement is overwritten,
		// displacement increments accumulate
		for i := 0; i < nd; i++ {
			dispRel := 0.0
			dDispRel := 0.0
			dLagGlob := 0.0
			for j := 0; j < nd; j++ {
				c := o.Orient[iv][j*nd+i]
				dispRel += c * o.slip[j]
				dDispRel += c * o.dSlip[j]
				dLagGlob += c * o.dTract[j]
			}
			o.DispRel[iv][i] = dispRel
			sol.DispIncr[L][i] += dLagGlob
			sol.DispIncr[N][i] += -0.5 * dDispRel
			sol.DispIncr[P][i] += +0.5 * dDispRel
		}
	}

	if n := o.Diag.Overshoot - overshoot0; n > 0 {
		return &FrictionIterError{n}
	}
	return
}
