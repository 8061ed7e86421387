// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fric implements fault friction constitutive models
package fric

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// State holds the internal state variables of a friction model at one fault vertex
type State struct {
	Phi []float64 // internal variables; e.g. cumulative slip or ageing variable
}

// NewState allocates a state structure with nphi internal variables
func NewState(nphi int) *State {
	return &State{Phi: make([]float64, nphi)}
}

// Set copies states
//  Note: this and other states must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	copy(o.Phi, other.Phi)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	s := NewState(len(o.Phi))
	s.Set(o)
	return s
}

// Model defines the interface for fault friction models
//  Conventions:
//   σn    -- fault-normal traction; negative means compression
//   slip  -- magnitude of shear slip
//   sliprate -- magnitude of shear slip rate
type Model interface {

	// Init initialises model with parameters
	Init(ndim int, prms utl.Params) error

	// GetPrms gets (an example) of parameters
	GetPrms() utl.Params

	// NumStateVars returns the number of internal state variables
	NumStateVars() int

	// InitState initialises the internal state variables
	InitState(s *State, σn float64) error

	// CalcFriction computes the friction limit: the maximum magnitude
	// of shear traction the fault can sustain
	CalcFriction(t, slip, sliprate, σn float64, s *State) (limit float64, err error)

	// UpdateStateVars updates the internal state variables after a converged time step
	UpdateStateVars(t, dt, slip, sliprate, σn float64, s *State) error

	// HasPropStateVar tells whether this model has a property or state variable with given name
	HasPropStateVar(name string) bool

	// Val returns the current value of a property or state variable
	Val(name string, s *State) float64
}

// allocators holds all friction models available
var allocators = make(map[string]func() Model)

// New allocates a new friction model
func New(name string) (Model, error) {
	if allocator, ok := allocators[name]; ok {
		return allocator(), nil
	}
	return nil, chk.Err("cannot find friction model named %q", name)
}
