// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fric

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// StaticFric implements static (Coulomb) friction with constant coefficient and cohesion
type StaticFric struct {
	Mu float64 // coefficient of friction
	C  float64 // cohesion
}

// add model to factory
func init() {
	allocators["static"] = func() Model { return new(StaticFric) }
}

// Init initialises model
func (o *StaticFric) Init(ndim int, prms utl.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "c":
			o.C = p.V
		default:
			return chk.Err("static: parameter named %q is incorrect", p.N)
		}
	}
	if o.Mu < 0 {
		return chk.Err("static: coefficient of friction must be non-negative. mu=%g is incorrect", o.Mu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o StaticFric) GetPrms() utl.Params {
	return utl.Params{
		&utl.P{N: "mu", V: 0.6},
		&utl.P{N: "c", V: 0},
	}
}

// NumStateVars returns the number of internal state variables
func (o StaticFric) NumStateVars() int {
	return 0
}

// InitState initialises the internal state variables
func (o StaticFric) InitState(s *State, σn float64) error {
	return nil
}

// CalcFriction computes the friction limit
func (o StaticFric) CalcFriction(t, slip, sliprate, σn float64, s *State) (limit float64, err error) {
	limit = o.C
	if σn < 0 {
		limit -= o.Mu * σn
	}
	return
}

// UpdateStateVars updates the internal state variables
func (o StaticFric) UpdateStateVars(t, dt, slip, sliprate, σn float64, s *State) error {
	return nil
}

// HasPropStateVar tells whether this model has a property or state variable with given name
func (o StaticFric) HasPropStateVar(name string) bool {
	return name == "friction_coefficient" || name == "cohesion"
}

// Val returns the current value of a property or state variable
func (o StaticFric) Val(name string, s *State) float64 {
	switch name {
	case "friction_coefficient":
		return o.Mu
	case "cohesion":
		return o.C
	}
	return 0
}
