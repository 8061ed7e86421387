// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"

	"github.com/cpmech/gofault/fault"
	"github.com/cpmech/gofault/inp"

	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, _ := io.ArgToFilename(0, "data/frict01", ".sim", true)
	verbose := io.ArgToBool(1, true)
	alias := io.ArgToString(2, "")

	// message
	if verbose {
		io.PfWhite("\nGofault -- dynamic fault friction constraint solver\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation filename", "simfn", simfn,
			"show messages", "verbose", verbose,
			"word to add to results", "alias", alias,
		))
	}

	// read simulation file
	sim, err := inp.ReadSim(simfn, alias, 0)
	if err != nil {
		io.PfRed("cannot read simulation:\n%v", err)
		return
	}
	if verbose {
		io.Pf("simulation %q: %s\n", sim.Key, sim.Data.Desc)
		io.Pf("mesh: %d vertices, %d cells, ndim=%d\n", len(sim.Msh.Verts), len(sim.Msh.Cells), sim.Ndim)
	}

	// allocate faults and report their setup
	var report bytes.Buffer
	for _, fd := range sim.Faults {
		ft, err := fault.New(sim, fd, 0)
		if err != nil {
			io.PfRed("cannot allocate fault:\n%v", err)
			return
		}
		area := 0.0
		for iv := 0; iv < ft.NumVerts(); iv++ {
			area += ft.Area[iv]
		}
		if verbose {
			io.Pf("fault tag=%d: %d cells, %d vertex groups, area=%g\n", ft.Tag, len(ft.Cells), ft.NumVerts(), area)
		}
		io.Ff(&report, "fault tag=%d\n", ft.Tag)
		io.Ff(&report, "  cells        = %d\n", len(ft.Cells))
		io.Ff(&report, "  vertexgroups = %d\n", ft.NumVerts())
		io.Ff(&report, "  area         = %g\n", area)
		for iv := 0; iv < ft.NumVerts(); iv++ {
			io.Ff(&report, "  vertex %d: lag=%d area=%g orient=%v\n", iv, ft.Verts[iv].Lag, ft.Area[iv], ft.Orient[iv])
		}
	}

	// save report
	io.WriteFileVD(sim.DirOut, sim.Key+"-faults.txt", &report)
}
