// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"testing"

	"github.com/cpmech/gofault/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_constrain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constrain01. constrain solution space in 2D")

	sim, err := inp.ReadSim("data/o2coh.sim", "", 0)
	if err != nil {
		tst.Errorf("cannot read simulation:\n%v", err)
		return
	}
	ft, err := New(sim, sim.Faults[0], 0)
	if err != nil {
		tst.Errorf("cannot allocate fault:\n%v", err)
		return
	}

	// diagonal system Jacobian with stiffness 100 at every equation
	neq := 6 * 2
	jac := &DenseJac{A: utl.Alloc(neq, neq)}
	for i := 0; i < neq; i++ {
		jac.A[i][i] = 100.0
	}

	// trial solution: shear traction 5 exceeds the friction limit 4
	// (mu=0.4, normal traction -10); shear slip 0.005 on both vertices
	sol := NewSolnFields(2, 6, 1.0)
	for _, P := range []int{2, 3} {
		sol.DispIncr[P][0] = 0.005
	}
	for _, L := range []int{4, 5} {
		sol.DispIncr[L][0] = 5.0
		sol.DispIncr[L][1] = -10.0
	}

	err = ft.ConstrainSolnSpace(sol, 0, jac)
	if err != nil {
		tst.Errorf("constrain failed:\n%v", err)
		return
	}

	// the Lagrange multipliers dropped to the friction limit
	for _, L := range []int{4, 5} {
		chk.Array(tst, "lagrange", 1e-12, sol.DispIncr[L], []float64{4, -10})
	}

	// the slip grew by the sensitivity of both sides: each side moves
	// by dLagrange/k = 1/100, so the relative displacement grows by 0.02
	for iv := 0; iv < 2; iv++ {
		chk.Array(tst, "disprel", 1e-12, ft.DispRel[iv], []float64{0.025, 0})
	}

	// displacement increments moved apart by the same amount
	chk.Float64(tst, "dincr neg", 1e-12, sol.DispIncr[0][0], -0.01)
	chk.Float64(tst, "dincr pos", 1e-12, sol.DispIncr[2][0], 0.015)

	// no contact corrections were needed
	if ft.Diag.NormalFix != 0 || ft.Diag.Interpen != 0 {
		tst.Errorf("contact corrections should not have fired: %+v", ft.Diag)
	}
}
