// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation input file")

	sim, err := ReadSim("data/frict01.sim", "", 0)
	if err != nil {
		tst.Errorf("cannot read simulation:\n%v", err)
		return
	}

	if sim.Key != "frict01" {
		tst.Errorf("simulation key is incorrect: %q", sim.Key)
		return
	}
	if sim.Ndim != 2 {
		tst.Errorf("space dimension is incorrect: %d != 2", sim.Ndim)
		return
	}

	// defaults
	if sim.LinSol.Name != "umfpack" {
		tst.Errorf("default linear solver is incorrect: %q", sim.LinSol.Name)
		return
	}
	if sim.Solver.NmaxIt != 20 {
		tst.Errorf("default number of iterations is incorrect: %d", sim.Solver.NmaxIt)
		return
	}
	chk.Float64(tst, "zerotol default", 1e-20, sim.Faults[0].ZeroTol, 1e-10)

	// material
	mat := sim.Materials.Get("fric1")
	if mat == nil {
		tst.Errorf("cannot find material fric1")
		return
	}
	if mat.Model != "static" {
		tst.Errorf("model name is incorrect: %q", mat.Model)
		return
	}
	if sim.Materials.Get("missing") != nil {
		tst.Errorf("missing material should return nil")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. invalid simulation input")

	_, err := ReadSim("data/badtol.sim", "", 0)
	if err == nil {
		tst.Errorf("negative zerotol should have failed")
		return
	}
	_, err = ReadSim("data/nomat.sim", "", 0)
	if err == nil {
		tst.Errorf("missing friction material should have failed")
		return
	}
	_, err = ReadSim("data/doesnotexist.sim", "", 0)
	if err == nil {
		tst.Errorf("missing file should have failed")
	}
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. mesh with cohesive cells")

	msh, err := ReadMsh("data", "frict01.msh", 0)
	if err != nil {
		tst.Errorf("cannot read mesh:\n%v", err)
		return
	}

	if msh.Ndim != 2 {
		tst.Errorf("space dimension is incorrect: %d != 2", msh.Ndim)
		return
	}
	chk.Float64(tst, "xmin", 1e-17, msh.Xmin, 0)
	chk.Float64(tst, "xmax", 1e-17, msh.Xmax, 2)

	// cohesive cell
	c := msh.Cells[0]
	if !c.IsCoh() {
		tst.Errorf("cell 0 must be a cohesive cell")
		return
	}
	if c.SideNverts() != 2 {
		tst.Errorf("number of side vertices is incorrect: %d != 2", c.SideNverts())
		return
	}
	chk.Ints(tst, "neg", c.NegVerts(), []int{1, 0})
	chk.Ints(tst, "pos", c.PosVerts(), []int{3, 2})
	chk.Ints(tst, "lag", c.LagVerts(), []int{4, 5})
	if c.Shp == nil || c.Shp.Type != "lin2" {
		tst.Errorf("shape of fault surface is incorrect")
		return
	}

	// cohesive cells by tag
	cells, err := msh.CohCells(-1)
	if err != nil {
		tst.Errorf("cannot find cohesive cells:\n%v", err)
		return
	}
	if len(cells) != 1 {
		tst.Errorf("number of cohesive cells is incorrect: %d != 1", len(cells))
		return
	}
	_, err = msh.CohCells(-2)
	if err == nil {
		tst.Errorf("unknown tag should have failed")
	}
}
