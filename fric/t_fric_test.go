// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fric

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_static01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static01. Coulomb friction")

	mdl, err := New("static")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prms := utl.Params{
		&utl.P{N: "mu", V: 0.4},
		&utl.P{N: "c", V: 0},
	}
	err = mdl.Init(2, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// compression
	limit, err := mdl.CalcFriction(0, 0, 0, -10.0, nil)
	if err != nil {
		tst.Errorf("CalcFriction failed:\n%v", err)
		return
	}
	chk.Float64(tst, "limit @ compression", 1e-15, limit, 4.0)

	// tension gives no frictional strength
	limit, err = mdl.CalcFriction(0, 0, 0, 2.0, nil)
	if err != nil {
		tst.Errorf("CalcFriction failed:\n%v", err)
		return
	}
	chk.Float64(tst, "limit @ tension", 1e-15, limit, 0.0)

	// negative mu is rejected
	err = mdl.Init(2, utl.Params{&utl.P{N: "mu", V: -0.1}})
	if err == nil {
		tst.Errorf("Init must fail with negative mu\n")
	}
}

func Test_slipweak01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slipweak01. slip-weakening friction")

	mdl, err := New("slipweak")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prms := utl.Params{
		&utl.P{N: "mus", V: 0.6},
		&utl.P{N: "mud", V: 0.5},
		&utl.P{N: "d0", V: 0.2},
	}
	err = mdl.Init(2, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	s := NewState(mdl.NumStateVars())
	mdl.InitState(s, -10.0)

	// no slip yet: static strength
	limit, err := mdl.CalcFriction(0, 0, 0, -10.0, s)
	if err != nil {
		tst.Errorf("CalcFriction failed:\n%v", err)
		return
	}
	chk.Float64(tst, "limit @ d=0", 1e-15, limit, 6.0)

	// halfway through weakening
	limit, _ = mdl.CalcFriction(0, 0.1, 0, -10.0, s)
	chk.Float64(tst, "limit @ d=d0/2", 1e-14, limit, 5.5)

	// beyond the weakening distance: dynamic strength
	limit, _ = mdl.CalcFriction(0, 0.5, 0, -10.0, s)
	chk.Float64(tst, "limit @ d>d0", 1e-14, limit, 5.0)

	// committed slip stays weakened even if slip returns to zero
	mdl.UpdateStateVars(0, 1.0, 0.5, 0, -10.0, s)
	chk.Float64(tst, "cum_slip", 1e-15, mdl.Val("cumulative_slip", s), 0.5)
	limit, _ = mdl.CalcFriction(0, 0.5, 0, -10.0, s)
	chk.Float64(tst, "limit after commit", 1e-14, limit, 5.0)
}

func Test_ratestate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ratestate01. rate-and-state friction with ageing law")

	mdl, err := New("ratestate")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	μ0, a, b := 0.6, 0.008, 0.012
	v0, l := 1e-6, 0.01
	prms := utl.Params{
		&utl.P{N: "mu0", V: μ0},
		&utl.P{N: "a", V: a},
		&utl.P{N: "b", V: b},
		&utl.P{N: "v0", V: v0},
		&utl.P{N: "l", V: l},
		&utl.P{N: "vlin", V: 1e-12},
	}
	err = mdl.Init(3, prms)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	s := NewState(mdl.NumStateVars())
	mdl.InitState(s, -10.0)
	chk.Float64(tst, "theta0", 1e-15, s.Phi[0], l/v0)

	// at the reference slip rate and steady state: μ == μ0
	limit, err := mdl.CalcFriction(0, 0, v0, -10.0, s)
	if err != nil {
		tst.Errorf("CalcFriction failed:\n%v", err)
		return
	}
	chk.Float64(tst, "limit @ steady state", 1e-13, limit, μ0*10.0)

	// velocity stepping: e.g. 10x jump raises μ by (a-b)·ln(10) at the new steady state
	v1 := 10.0 * v0
	s.Phi[0] = l / v1
	limit, _ = mdl.CalcFriction(0, 0, v1, -10.0, s)
	chk.Float64(tst, "limit @ 10x steady state", 1e-13, limit, (μ0+(a-b)*math.Log(10.0))*10.0)

	// ageing at V=0: θ grows linearly
	s.Phi[0] = 1.0
	mdl.UpdateStateVars(0, 2.5, 0, 0, -10.0, s)
	chk.Float64(tst, "theta @ V=0", 1e-15, s.Phi[0], 3.5)

	// exact integrator approaches steady state θ = L/V for long dt
	s.Phi[0] = 1.0
	mdl.UpdateStateVars(0, 1e6, 0, v1, -10.0, s)
	chk.Float64(tst, "theta @ steady state", 1e-10, s.Phi[0], l/v1)
}
