// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"testing"

	"github.com/cpmech/gofault/inp"

	"github.com/cpmech/gosl/chk"
)

func Test_project01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("project01. friction projection in 2D")

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

	// sliding: shear traction above the friction limit must drop to it
	dLag := make([]float64, 2)
	slip := []float64{0.001, 0}
	slipRate := []float64{0.01, 0}
	tract := []float64{5.0, -10.0}
	err = ft.proj.project(dLag, 0, slip, slipRate, tract, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag sliding", 1e-14, dLag, []float64{-1, 0})

	// sticking: shear below the limit with zero slip rate leaves the traction alone
	dLag[0], dLag[1] = 0, 0
	err = ft.proj.project(dLag, 0, []float64{0, 0}, []float64{0, 0}, []float64{3.0, -10.0}, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag sticking", 1e-14, dLag, []float64{0, 0})

	// iterating with residual slip rate: traction is pushed to the limit
	nfix := ft.Diag.Overshoot
	dLag[0], dLag[1] = 0, 0
	err = ft.proj.project(dLag, 0, []float64{0.001, 0}, []float64{0.01, 0}, []float64{3.0, -10.0}, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag overshoot", 1e-14, dLag, []float64{1, 0})
	if ft.Diag.Overshoot != nfix+1 {
		tst.Errorf("overshoot counter was not incremented")
		return
	}

	// tension with opening allowed: traction must vanish
	ft.AllowOpen = true
	dLag[0], dLag[1] = 0, 0
	err = ft.proj.project(dLag, 0, []float64{0, 0.001}, []float64{0, 0}, []float64{2.0, 1.0}, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag tension", 1e-14, dLag, []float64{-2, -1})
}

func Test_project02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("project02. friction projection in 1D")

	sim, err := inp.ReadSim("data/o1coh.sim", "", 0)
	if err != nil {
		tst.Errorf("cannot read simulation:\n%v", err)
		return
	}
	ft, err := New(sim, sim.Faults[0], 0)
	if err != nil {
		tst.Errorf("cannot allocate fault:\n%v", err)
		return
	}

	// a point fault has unit area and orientation along +x
	chk.Float64(tst, "area0", 1e-14, ft.Area[0], 1.0)
	chk.Array(tst, "orient0", 1e-14, ft.Orient[0], []float64{1})

	// in contact: opening below the tolerance leaves the traction alone,
	// no matter how large the traction is
	dLag := make([]float64, 1)
	err = ft.proj.project(dLag, 0, []float64{1e-12}, []float64{0}, []float64{-25.0}, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag contact", 1e-14, dLag, []float64{0})

	// opening: traction must vanish
	dLag[0] = 0
	err = ft.proj.project(dLag, 0, []float64{0.001}, []float64{0}, []float64{3.0}, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag opening", 1e-14, dLag, []float64{-3})
}

func Test_project03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("project03. friction projection in 3D")

	sim, err := inp.ReadSim("data/o3coh.sim", "", 0)
	if err != nil {
		tst.Errorf("cannot read simulation:\n%v", err)
		return
	}
	ft, err := New(sim, sim.Faults[0], 0)
	if err != nil {
		tst.Errorf("cannot allocate fault:\n%v", err)
		return
	}

	// sliding: the shear traction drops to the friction limit and the
	// reduction is spread over both shear components without changing
	// the shear direction
	dLag := make([]float64, 3)
	slip := []float64{0.001, 0.002, 0}
	slipRate := []float64{0.01, 0.02, 0}
	tract := []float64{3.0, 4.0, -10.0}
	err = ft.proj.project(dLag, 0, slip, slipRate, tract, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag sliding", 1e-14, dLag, []float64{-0.6, -0.8, 0})

	// sticking: shear below the limit with zero slip rate leaves the traction alone
	dLag[0], dLag[1], dLag[2] = 0, 0, 0
	err = ft.proj.project(dLag, 0, []float64{0, 0, 0}, []float64{0, 0, 0}, []float64{1.0, 2.0, -10.0}, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag sticking", 1e-14, dLag, []float64{0, 0, 0})

	// tension with opening allowed: traction must vanish
	ft.AllowOpen = true
	dLag[0], dLag[1], dLag[2] = 0, 0, 0
	err = ft.proj.project(dLag, 0, []float64{0, 0, 0.001}, []float64{0, 0, 0}, []float64{2.0, 1.0, 1.0}, 0, true)
	if err != nil {
		tst.Errorf("projection failed:\n%v", err)
		return
	}
	chk.Array(tst, "dLag tension", 1e-14, dLag, []float64{-2, -1, -1})
}
