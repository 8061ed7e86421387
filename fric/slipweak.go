// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fric

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// SlipWeak implements linear slip-weakening friction: the coefficient of
// friction decreases linearly from μs to μd over the weakening distance d0
type SlipWeak struct {
	Mus float64 // static coefficient of friction
	Mud float64 // dynamic coefficient of friction
	D0  float64 // slip-weakening distance
	C   float64 // cohesion
}

// indices of state variables
const (
	sw_cumslip  = iota // cumulative slip
	sw_prevslip        // slip at previous time step
	sw_nphi            // number of state variables
)

// add model to factory
func init() {
	allocators["slipweak"] = func() Model { return new(SlipWeak) }
}

// Init initialises model
func (o *SlipWeak) Init(ndim int, prms utl.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "mus":
			o.Mus = p.V
		case "mud":
			o.Mud = p.V
		case "d0":
			o.D0 = p.V
		case "c":
			o.C = p.V
		default:
			return chk.Err("slipweak: parameter named %q is incorrect", p.N)
		}
	}
	if o.D0 <= 0 {
		return chk.Err("slipweak: slip-weakening distance must be positive. d0=%g is incorrect", o.D0)
	}
	if o.Mud > o.Mus {
		return chk.Err("slipweak: dynamic coefficient cannot exceed static one. mud=%g, mus=%g", o.Mud, o.Mus)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SlipWeak) GetPrms() utl.Params {
	return utl.Params{
		&utl.P{N: "mus", V: 0.6},
		&utl.P{N: "mud", V: 0.5},
		&utl.P{N: "d0", V: 0.2},
		&utl.P{N: "c", V: 0},
	}
}

// NumStateVars returns the number of internal state variables
func (o SlipWeak) NumStateVars() int {
	return sw_nphi
}

// InitState initialises the internal state variables
func (o SlipWeak) InitState(s *State, σn float64) error {
	s.Phi[sw_cumslip] = 0
	s.Phi[sw_prevslip] = 0
	return nil
}

// CalcFriction computes the friction limit
//  the cumulative slip within the current step is accounted for without
//  committing it; UpdateStateVars commits after convergence
func (o SlipWeak) CalcFriction(t, slip, sliprate, σn float64, s *State) (limit float64, err error) {
	d := s.Phi[sw_cumslip] + math.Abs(slip-s.Phi[sw_prevslip])
	μ := o.Mud
	if d < o.D0 {
		μ = o.Mus - (o.Mus-o.Mud)*d/o.D0
	}
	limit = o.C
	if σn < 0 {
		limit -= μ * σn
	}
	return
}

// UpdateStateVars updates the internal state variables
func (o SlipWeak) UpdateStateVars(t, dt, slip, sliprate, σn float64, s *State) error {
	s.Phi[sw_cumslip] += math.Abs(slip - s.Phi[sw_prevslip])
	s.Phi[sw_prevslip] = slip
	return nil
}

// HasPropStateVar tells whether this model has a property or state variable with given name
func (o SlipWeak) HasPropStateVar(name string) bool {
	switch name {
	case "static_coefficient", "dynamic_coefficient", "slip_weakening_parameter", "cohesion", "cumulative_slip", "previous_slip":
		return true
	}
	return false
}

// Val returns the current value of a property or state variable
func (o SlipWeak) Val(name string, s *State) float64 {
	switch name {
	case "static_coefficient":
		return o.Mus
	case "dynamic_coefficient":
		return o.Mud
	case "slip_weakening_parameter":
		return o.D0
	case "cohesion":
		return o.C
	case "cumulative_slip":
		return s.Phi[sw_cumslip]
	case "previous_slip":
		return s.Phi[sw_prevslip]
	}
	return 0
}
