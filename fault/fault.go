// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fault implements the constraint solver for dynamic fault friction
// on zero-thickness cohesive cells with Lagrange multiplier tractions
package fault

import (
	"math"

	"github.com/cpmech/gofault/fric"
	"github.com/cpmech/gofault/inp"
	"github.com/cpmech/gofault/sdb"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// CohVert holds the mesh vertices of one cohesive vertex group
type CohVert struct {
	Neg int // vertex id on the negative side of the fault
	Pos int // vertex id on the positive side of the fault
	Lag int // vertex id holding the Lagrange multiplier
}

// Diagnostics holds counters of corrections applied while constraining the
// solution space. they indicate rough convergence, not failure
type Diagnostics struct {
	Overshoot  int // friction projection triggered by nonzero slip rate with shear within the limit
	DegenShear int // friction projection requested with zero shear traction magnitude
	NormalFix  int // nonphysical normal slip/traction pairs corrected
	Interpen   int // interpenetration corrections
}

// Fault implements the fault friction constraint solver for one fault surface
type Fault struct {

	// input
	Tag       int       // tag of cohesive cells
	Ndim      int       // space dimension
	ZeroTol   float64   // tolerance for snapping small slips and rates to zero
	AllowOpen bool      // allow fault opening
	Up        []float64 // 3D only: up-dip reference direction

	// friction
	Fric   fric.Model    // friction model
	States []*fric.State // [nv] friction state at each fault vertex

	// topology
	Msh   *inp.Mesh     // the mesh
	Cells []*inp.Cell   // cohesive cells of this fault
	Verts []CohVert     // [nv] cohesive vertex groups, one per Lagrange vertex
	l2f   map[int]int   // Lagrange vertex id => fault-local index
	cellF [][]int       // [cell][sideNverts] fault-local vertex indices
	cellX [][][]float64 // [cell][ndim][sideNverts] fault surface coordinates

	// fault fields
	Orient    [][]float64 // [nv][ndim*ndim] rotation matrices; rows are strike, (dip,) normal
	Area      []float64   // [nv] lumped fault surface area
	DispRel   [][]float64 // [nv][ndim] relative displacement (global coordinates)
	VelRel    [][]float64 // [nv][ndim] relative velocity (global coordinates)
	TractInit [][]float64 // [nv][ndim] initial tractions (global coordinates); nil if none

	// sensitivity problem
	sens *sensProblem

	// projector selected by dimension
	proj projector

	// diagnostics
	Diag Diagnostics

	// scratch
	slip     []float64
	slipRate []float64
	tract    []float64
	dLag     []float64
	dLagGlob []float64
	dSlip    []float64
	dTract   []float64
	dDispRel []float64
	vN       []float64
	vP       []float64
}

// New creates a fault solver for the fault described by fd
func New(sim *inp.Simulation, fd *inp.FaultData, goroutineId int) (o *Fault, err error) {

	// check dimension
	ndim := sim.Ndim
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("fault with tag=%d: space dimension must be 1, 2 or 3. %d is invalid", fd.Tag, ndim)
	}

	// new fault
	o = new(Fault)
	o.Tag = fd.Tag
	o.Ndim = ndim
	o.ZeroTol = fd.ZeroTol
	o.AllowOpen = fd.AllowOpen
	o.Msh = sim.Msh

	// up-dip reference direction
	if ndim == 3 {
		o.Up = []float64{0, 0, 1}
		if len(fd.Up) == 3 {
			o.Up = fd.Up
		}
	}

	// friction model
	mat := sim.Materials.Get(fd.FricMat)
	if mat == nil {
		return nil, chk.Err("fault with tag=%d: cannot find friction material %q", fd.Tag, fd.FricMat)
	}
	o.Fric, err = fric.New(mat.Model)
	if err != nil {
		return nil, chk.Err("fault with tag=%d: %v", fd.Tag, err)
	}
	err = o.Fric.Init(ndim, mat.Prms)
	if err != nil {
		return nil, chk.Err("fault with tag=%d: cannot initialise friction model: %v", fd.Tag, err)
	}

	// cohesive cells
	o.Cells, err = sim.Msh.CohCells(fd.Tag)
	if err != nil {
		return nil, err
	}

	// topology and geometry
	err = o.buildTopology()
	if err != nil {
		return nil, err
	}
	err = o.buildOrientArea()
	if err != nil {
		return nil, err
	}

	// fault fields
	nv := len(o.Verts)
	o.DispRel = utl.Alloc(nv, ndim)
	o.VelRel = utl.Alloc(nv, ndim)

	// friction states and initial tractions
	o.States = make([]*fric.State, nv)
	σn := make([]float64, nv)
	if fd.InitTract != "" {
		var db sdb.DB
		db, err = sdb.Open(sim.FaultPath(fd.InitTract))
		if err != nil {
			return nil, chk.Err("fault with tag=%d: %v", fd.Tag, err)
		}
		err = o.setInitialTractions(db, σn)
		if err != nil {
			return nil, err
		}
	}
	for i := 0; i < nv; i++ {
		o.States[i] = fric.NewState(o.Fric.NumStateVars())
		err = o.Fric.InitState(o.States[i], σn[i])
		if err != nil {
			return nil, chk.Err("fault with tag=%d: cannot initialise friction state: %v", fd.Tag, err)
		}
	}

	// sensitivity problem
	o.sensInit(sim.LinSol.Name)

	// projector
	switch ndim {
	case 1:
		o.proj = &projector1D{o}
	case 2:
		o.proj = &projector2D{o}
	case 3:
		o.proj = &projector3D{o}
	}

	// scratch
	o.slip = make([]float64, ndim)
	o.slipRate = make([]float64, ndim)
	o.tract = make([]float64, ndim)
	o.dLag = make([]float64, ndim)
	o.dLagGlob = make([]float64, ndim)
	o.dSlip = make([]float64, ndim)
	o.dTract = make([]float64, ndim)
	o.dDispRel = make([]float64, ndim)
	o.vN = make([]float64, ndim)
	o.vP = make([]float64, ndim)
	return
}

// NumVerts returns the number of cohesive vertex groups
func (o *Fault) NumVerts() int {
	return len(o.Verts)
}

// rotation conventions; O is the row-major [ndim*ndim] orientation matrix:
//   local_i  = Σ_j O[i*ndim+j] * global_j
//   global_i = Σ_j O[j*ndim+i] * local_j

// toLocal rotates a global vector into the fault coordinate system
func (o *Fault) toLocal(local []float64, iv int, global []float64) {
	nd := o.Ndim
	O := o.Orient[iv]
	for i := 0; i < nd; i++ {
		local[i] = 0
		for j := 0; j < nd; j++ {
			local[i] += O[i*nd+j] * global[j]
		}
	}
}

// toGlobal rotates a fault-local vector back to the global coordinate system
func (o *Fault) toGlobal(global []float64, iv int, local []float64) {
	nd := o.Ndim
	O := o.Orient[iv]
	for i := 0; i < nd; i++ {
		global[i] = 0
		for j := 0; j < nd; j++ {
			global[i] += O[j*nd+i] * local[j]
		}
	}
}

// shearMag returns the magnitude of the shear part of a fault-local vector
func (o *Fault) shearMag(v []float64) float64 {
	switch o.Ndim {
	case 1:
		return 0
	case 2:
		return math.Abs(v[0])
	}
	return math.Sqrt(v[0]*v[0] + v[1]*v[1])
}
