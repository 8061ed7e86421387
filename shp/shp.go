// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for fault surfaces
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// Ipoint holds integration point data: natural coordinates and weight
//  Components: [r, s, t, w]
type Ipoint []float64

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds the geometry data of one fault surface cell
type Shape struct {

	// geometry
	Type      string      // name; e.g. "lin2"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry dimension; e.g. "lin2" => gnd == 1 (even in 3D simulations)
	Nverts    int         // number of vertices; e.g. "qua4" => 4
	VtkCode   int         // VTK code
	NatCoords [][]float64 // natural coordinates [gndim][nverts]
	Ips       []Ipoint    // integration points

	// scratchpad
	S      []float64   // [nverts] shape functions
	DSdR   [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR   [][]float64 // [ndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	Jvec3d []float64   // Jacobian vector for line elements (size==3)
	Nvec   []float64   // [ndim] unit normal to surface
	J      float64     // Jacobian: surface metric determinant
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	var p Shape
	p.Type = o.Type
	p.Func = o.Func
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.VtkCode = o.VtkCode
	p.NatCoords = utl.Clone(o.NatCoords)
	p.Ips = o.Ips
	p.S = utl.GetCopy(o.S)
	p.DSdR = utl.Clone(o.DSdR)
	p.DxdR = utl.Clone(o.DxdR)
	p.Jvec3d = utl.GetCopy(o.Jvec3d)
	p.Nvec = utl.GetCopy(o.Nvec)
	p.J = o.J
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates surface data such as S, J and Nvec at integration point ip
//  Input:
//   x[ndim][nverts] -- coordinates matrix of surface cell
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, J, and Nvec
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}
	ndim := len(x)

	// point in 1D: unit metric and normal along x
	if o.Gndim == 0 {
		o.J = 1.0
		o.Nvec[0] = 1.0
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < ndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// line in 2D: J = norm of tangent and normal (dy,-dx)/J
	if o.Gndim == 1 {
		for i := 0; i < len(o.Jvec3d); i++ {
			o.Jvec3d[i] = 0.0
		}
		for i := 0; i < ndim; i++ {
			o.Jvec3d[i] = o.DxdR[i][0]
		}
		o.J = la.Vector(o.Jvec3d).Norm()
		if o.J < MINDET {
			return chk.Err("surface cell %q is degenerate: J=%g is too small", o.Type, o.J)
		}
		o.Nvec[0] = o.Jvec3d[1] / o.J
		o.Nvec[1] = -o.Jvec3d[0] / o.J
		return
	}

	// surface in 3D: J = norm of cross product of tangents
	o.Nvec[0] = o.DxdR[1][0]*o.DxdR[2][1] - o.DxdR[2][0]*o.DxdR[1][1]
	o.Nvec[1] = o.DxdR[2][0]*o.DxdR[0][1] - o.DxdR[0][0]*o.DxdR[2][1]
	o.Nvec[2] = o.DxdR[0][0]*o.DxdR[1][1] - o.DxdR[1][0]*o.DxdR[0][1]
	o.J = la.Vector(o.Nvec).Norm()
	if o.J < MINDET {
		return chk.Err("surface cell %q is degenerate: J=%g is too small", o.Type, o.J)
	}
	for i := 0; i < 3; i++ {
		o.Nvec[i] /= o.J
	}
	return
}

// init_scratchpad initialise surface data (scratchpad)
//  ndim is the space dimension the surface is embedded in
func (o *Shape) init_scratchpad(ndim int) {
	gnd := o.Gndim
	if gnd < 1 {
		gnd = 1
	}
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, gnd)
	o.DxdR = utl.Alloc(ndim, gnd)
	o.Jvec3d = make([]float64, 3)
	o.Nvec = make([]float64, ndim)
}
