// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fric

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// RateState implements rate- and state-dependent friction with the ageing
// evolution law for the state variable θ
//
//   μ = μ0 + a·ln(V/V0) + b·ln(V0·θ/L)
//
// below the linearisation slip rate vlin the logarithmic term in V is
// replaced by a linear expression to keep μ finite as V → 0
type RateState struct {
	Mu0  float64 // reference coefficient of friction
	A    float64 // direct-effect coefficient
	B    float64 // state-evolution coefficient
	V0   float64 // reference slip rate
	L    float64 // characteristic slip distance
	Vlin float64 // slip rate below which the direct effect is linearised
}

// add model to factory
func init() {
	allocators["ratestate"] = func() Model { return new(RateState) }
}

// Init initialises model
func (o *RateState) Init(ndim int, prms utl.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "mu0":
			o.Mu0 = p.V
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "v0":
			o.V0 = p.V
		case "l":
			o.L = p.V
		case "vlin":
			o.Vlin = p.V
		default:
			return chk.Err("ratestate: parameter named %q is incorrect", p.N)
		}
	}
	if o.V0 <= 0 {
		return chk.Err("ratestate: reference slip rate must be positive. v0=%g is incorrect", o.V0)
	}
	if o.L <= 0 {
		return chk.Err("ratestate: characteristic slip distance must be positive. l=%g is incorrect", o.L)
	}
	if o.Vlin <= 0 {
		return chk.Err("ratestate: linearisation slip rate must be positive. vlin=%g is incorrect", o.Vlin)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o RateState) GetPrms() utl.Params {
	return utl.Params{
		&utl.P{N: "mu0", V: 0.6},
		&utl.P{N: "a", V: 0.008},
		&utl.P{N: "b", V: 0.012},
		&utl.P{N: "v0", V: 1e-6},
		&utl.P{N: "l", V: 0.01},
		&utl.P{N: "vlin", V: 1e-12},
	}
}

// NumStateVars returns the number of internal state variables
func (o RateState) NumStateVars() int {
	return 1 // θ
}

// InitState initialises the internal state variables with the steady-state
// value of θ at the reference slip rate
func (o RateState) InitState(s *State, σn float64) error {
	s.Phi[0] = o.L / o.V0
	return nil
}

// CalcFriction computes the friction limit
func (o RateState) CalcFriction(t, slip, sliprate, σn float64, s *State) (limit float64, err error) {
	θ := s.Phi[0]
	if θ <= 0 {
		return 0, chk.Err("ratestate: state variable must be positive. theta=%g is incorrect", θ)
	}
	var μ float64
	if sliprate >= o.Vlin {
		μ = o.Mu0 + o.A*math.Log(sliprate/o.V0) + o.B*math.Log(o.V0*θ/o.L)
	} else {
		μ = o.Mu0 + o.A*math.Log(o.Vlin/o.V0) + o.B*math.Log(o.V0*θ/o.L) - o.A*(1.0-sliprate/o.Vlin)
	}
	if μ < 0 {
		μ = 0
	}
	if σn < 0 {
		limit = -μ * σn
	}
	return
}

// UpdateStateVars updates θ with the exact integration of the ageing law
// dθ/dt = 1 - V·θ/L over the time step, assuming V constant within the step
func (o RateState) UpdateStateVars(t, dt, slip, sliprate, σn float64, s *State) error {
	θ := s.Phi[0]
	if sliprate > 0 {
		e := math.Exp(-sliprate * dt / o.L)
		s.Phi[0] = θ*e - (o.L/sliprate)*math.Expm1(-sliprate*dt/o.L)
	} else {
		s.Phi[0] = θ + dt
	}
	return nil
}

// HasPropStateVar tells whether this model has a property or state variable with given name
func (o RateState) HasPropStateVar(name string) bool {
	switch name {
	case "reference_coefficient", "characteristic_slip_distance", "state_variable":
		return true
	}
	return false
}

// Val returns the current value of a property or state variable
func (o RateState) Val(name string, s *State) float64 {
	switch name {
	case "reference_coefficient":
		return o.Mu0
	case "characteristic_slip_distance":
		return o.L
	case "state_variable":
		return s.Phi[0]
	}
	return 0
}
