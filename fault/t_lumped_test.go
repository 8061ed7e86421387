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

func Test_lumped01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumped01. adjust solution with lumped Jacobian")

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

	// lumped Jacobian with stiffness 100 at every vertex
	kdiag := utl.Alloc(6, 2)
	for i := range kdiag {
		utl.Fill(kdiag[i], 100.0)
	}

	// trial solution: displacement jump 0.02 across the fault and
	// compressive Lagrange multiplier -10 at time t.
	// S = (1/100 + 1/100) * 1 = 0.02 and dLagrange = 0.02/S = 1
	sol := NewSolnFields(2, 6, 1.0)
	for _, L := range []int{4, 5} {
		sol.DispT[L][1] = -10.0
	}
	for _, P := range []int{2, 3} {
		sol.DispIncr[P][0] = 0.02
	}

	err = ft.AdjustSolnLumped(sol, 0, kdiag)
	if err != nil {
		tst.Errorf("adjust failed:\n%v", err)
		return
	}

	// shear traction 1 is below the friction limit 4: no projection
	for _, L := range []int{4, 5} {
		chk.Array(tst, "lagrange", 1e-14, sol.DispIncr[L], []float64{1, 0})
	}
	chk.Array(tst, "adj neg", 1e-14, sol.DispIncrAdj[1], []float64{0.01, 0})
	chk.Array(tst, "adj pos", 1e-14, sol.DispIncrAdj[3], []float64{-0.01, 0})
	for iv := 0; iv < 2; iv++ {
		chk.Array(tst, "disprel", 1e-14, ft.DispRel[iv], []float64{0, 0})
	}
}

func Test_lumped02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lumped02. lumped adjustment with sliding")

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

	kdiag := utl.Alloc(6, 2)
	for i := range kdiag {
		utl.Fill(kdiag[i], 100.0)
	}

	// displacement jump 0.2 gives trial dLagrange = 10, above the
	// friction limit 4; the projection removes 6
	sol := NewSolnFields(2, 6, 1.0)
	for _, L := range []int{4, 5} {
		sol.DispT[L][1] = -10.0
	}
	for _, P := range []int{2, 3} {
		sol.DispIncr[P][0] = 0.2
	}

	err = ft.AdjustSolnLumped(sol, 0, kdiag)
	if err != nil {
		tst.Errorf("adjust failed:\n%v", err)
		return
	}

	// final shear traction sits at the friction limit
	for _, L := range []int{4, 5} {
		chk.Array(tst, "lagrange", 1e-13, sol.DispIncr[L], []float64{4, 0})
	}

	// adjustments: 0.1 from the trial multiplier minus 0.06 from the projection
	chk.Array(tst, "adj neg", 1e-13, sol.DispIncrAdj[1], []float64{0.04, 0})
	chk.Array(tst, "adj pos", 1e-13, sol.DispIncrAdj[3], []float64{-0.04, 0})

	// relative displacement estimate grew by 2*area*6/(kN+kP) = 0.06
	for iv := 0; iv < 2; iv++ {
		chk.Array(tst, "disprel", 1e-13, ft.DispRel[iv], []float64{0.06, 0})
	}
}
