// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// FrictionIterError reports that, while iterating, the friction projection
// was applied at vertices whose shear traction was already within the
// friction limit but whose slip rate had not settled to zero. the projection
// is still applied; callers may treat this error as a convergence diagnostic
type FrictionIterError struct {
	Count int // number of vertices where this happened
}

// Error returns the error message
func (e *FrictionIterError) Error() string {
	return io.Sf("friction projection applied at %d sticking vertices with nonzero slip rate", e.Count)
}

// IsFrictionIter tells whether an error is a recoverable friction iteration diagnostic
func IsFrictionIter(err error) bool {
	_, ok := err.(*FrictionIterError)
	return ok
}

// projector computes the change in fault-local traction (dLag) required to
// satisfy the friction criterion, given trial slip, slip rate and traction
// in the fault coordinate system. dLag must be zeroed by the caller
type projector interface {
	project(dLag []float64, t float64, slip, slipRate, tract []float64, iv int, iterating bool) error
}

// projector1D handles faults in 1D: any opening means zero traction
type projector1D struct {
	ft *Fault
}

func (o *projector1D) project(dLag []float64, t float64, slip, slipRate, tract []float64, iv int, iterating bool) error {
	if math.Abs(slip[0]) < o.ft.ZeroTol {
		// in contact: no changes to solution
		return nil
	}
	// opening: traction must vanish
	dLag[0] = -tract[0]
	return nil
}

// projector2D handles faults in 2D: slip components are {strike, normal}
type projector2D struct {
	ft *Fault
}

func (o *projector2D) project(dLag []float64, t float64, slip, slipRate, tract []float64, iv int, iterating bool) error {
	ft := o.ft
	slipMag := math.Abs(slip[0])
	slipRateMag := math.Abs(slipRate[0])
	tractNormal := tract[1]
	tractShearMag := math.Abs(tract[0])

	if !ft.AllowOpen || (math.Abs(slip[1]) < ft.ZeroTol && tractNormal < -ft.ZeroTol) {
		// in compression and no opening
		limit, err := ft.Fric.CalcFriction(t, slipMag, slipRateMag, tractNormal, ft.States[iv])
		if err != nil {
			return err
		}
		if tractShearMag > limit || (iterating && slipRateMag > 0) {
			// sliding, or slip-rate overshoot with traction within the limit
			if !(tractShearMag > limit) {
				ft.Diag.Overshoot++
			}
			if tractShearMag > 0 {
				dLag[0] = -(tractShearMag - limit) * tract[0] / tractShearMag
				dLag[1] = 0
			} else {
				// zero shear magnitude: leave shear unchanged, zero normal change
				ft.Diag.DegenShear++
				dLag[0] = 0
				dLag[1] = 0
			}
		}
		return nil
	}

	// in tension: traction must vanish
	dLag[0] = -tract[0]
	dLag[1] = -tract[1]
	return nil
}

// projector3D handles faults in 3D: slip components are {strike, dip, normal}
type projector3D struct {
	ft *Fault
}

func (o *projector3D) project(dLag []float64, t float64, slip, slipRate, tract []float64, iv int, iterating bool) error {
	ft := o.ft
	slipMag := math.Sqrt(slip[0]*slip[0] + slip[1]*slip[1])
	slipRateMag := math.Sqrt(slipRate[0]*slipRate[0] + slipRate[1]*slipRate[1])
	tractNormal := tract[2]
	tractShearMag := math.Sqrt(tract[0]*tract[0] + tract[1]*tract[1])

	if !ft.AllowOpen || (math.Abs(slip[2]) < ft.ZeroTol && tractNormal < -ft.ZeroTol) {
		// in compression and no opening
		limit, err := ft.Fric.CalcFriction(t, slipMag, slipRateMag, tractNormal, ft.States[iv])
		if err != nil {
			return err
		}
		if tractShearMag > limit || (iterating && slipRateMag > 0) {
			if !(tractShearMag > limit) {
				ft.Diag.Overshoot++
			}
			if tractShearMag > 0 {
				dLag[0] = -(tractShearMag - limit) * tract[0] / tractShearMag
				dLag[1] = -(tractShearMag - limit) * tract[1] / tractShearMag
				dLag[2] = 0
			} else {
				ft.Diag.DegenShear++
				dLag[0] = 0
				dLag[1] = 0
				dLag[2] = 0
			}
		}
		return nil
	}

	// in tension: traction must vanish
	dLag[0] = -tract[0]
	dLag[1] = -tract[1]
	dLag[2] = -tract[2]
	return nil
}
