// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.msh) JSON files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// readFile wraps io.ReadFile so that unreadable files surface as
// errors instead of panics
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot read file %q", fn)
		}
	}()
	b = io.ReadFile(fn)
	return
}

// Data holds global simulation data
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Mshfile string `json:"mshfile"` // path of mesh file
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gofault
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `json:"name"`      // "mumps" or "umfpack"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Timing    bool   `json:"timing"`    // show timing statistics
	Ordering  string `json:"ordering"`  // ordering scheme
	Scaling   string `json:"scaling"`   // scaling scheme
}

// SetDefault sets defaults
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
	o.Ordering = "amf"
	o.Scaling = "rcit"
}

// SolverData holds data for the nonlinear solver
type SolverData struct {
	NmaxIt int     `json:"nmaxit"` // number of max iterations
	Atol   float64 `json:"atol"`   // absolute tolerance
	Rtol   float64 `json:"rtol"`   // relative tolerance
	ShowR  bool    `json:"showr"`  // show residual
}

// SetDefault sets defaults
func (o *SolverData) SetDefault() {
	o.NmaxIt = 20
	o.Atol = 1e-6
	o.Rtol = 1e-6
}

// FaultData holds data for one fault surface
type FaultData struct {
	Tag       int       `json:"tag"`       // tag of cohesive cells forming this fault
	FricMat   string    `json:"fricmat"`   // name of friction material
	ZeroTol   float64   `json:"zerotol"`   // tolerance for snapping small slips and rates to zero
	AllowOpen bool      `json:"allowopen"` // allow fault opening (tension) instead of treating it as an error
	InitTract string    `json:"inittract"` // path of initial tractions database file; "" means none
	Up        []float64 `json:"up"`        // 3D only: up-dip reference direction; default is {0,0,1}
}

// Material holds friction material data
type Material struct {
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of model; e.g. "static", "slipweak", "ratestate"
	Prms  utl.Params `json:"prms"`  // model parameters
}

// MatsData holds materials
type MatsData []*Material

// Get returns a material by name. returns nil if not found
func (o MatsData) Get(name string) *Material {
	for _, mat := range o {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Simulation holds all simulation input data
type Simulation struct {

	// input
	Data      Data         `json:"data"`      // global data
	LinSol    LinSolData   `json:"linsol"`    // linear solver data
	Solver    SolverData   `json:"solver"`    // nonlinear solver data
	Faults    []*FaultData `json:"faults"`    // faults data
	Materials MatsData     `json:"materials"` // friction materials

	// derived
	GoroutineId int    // id of goroutine to avoid race problems
	Key         string // simulation key; e.g. simulation filename without extension
	Dir         string // directory of input files
	DirOut      string // output directory
	Ndim        int    // space dimension, read from mesh
	Msh         *Mesh  // the mesh
}

// ReadSim reads a simulation input file, the mesh and sets default values
func ReadSim(simfilepath, alias string, goroutineId int) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)
	o.GoroutineId = goroutineId

	// read file
	b, err := readFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.LinSol.SetDefault()
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Dir = dir
	o.Key = io.FnKey(fn)
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gofault/" + o.Key
	}

	// faults
	if len(o.Faults) < 1 {
		return nil, chk.Err("simulation file %q must define at least one fault", simfilepath)
	}
	for _, fd := range o.Faults {
		if fd.ZeroTol < 0 {
			return nil, chk.Err("fault with tag=%d: zerotol cannot be negative: %g", fd.Tag, fd.ZeroTol)
		}
		if fd.ZeroTol == 0 {
			fd.ZeroTol = 1e-10
		}
		if o.Materials.Get(fd.FricMat) == nil {
			return nil, chk.Err("fault with tag=%d: cannot find friction material %q", fd.Tag, fd.FricMat)
		}
	}

	// read mesh
	o.Msh, err = ReadMsh(dir, o.Data.Mshfile, goroutineId)
	if err != nil {
		return nil, chk.Err("cannot read mesh file: %v", err)
	}
	o.Ndim = o.Msh.Ndim
	return
}

// FaultPath returns the full path of an auxiliary fault file such as the initial tractions database
func (o *Simulation) FaultPath(fn string) string {
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(o.Dir, fn)
}
