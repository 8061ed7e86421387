// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Pnt calculates the shape function of a point "element"
//  used as the fault surface of cohesive cells in 1D
func Pnt(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 1.0
	if derivs {
		dSdR[0][0] = 0.0
	}
}

func init() {
	var o Shape
	o.Type = "pnt"
	o.Func = Pnt
	o.Gndim = 0
	o.Nverts = 1
	o.VtkCode = 1 // VTK_VERTEX
	o.NatCoords = [][]float64{{0}}
	o.Ips = []Ipoint{{0, 0, 0, 1}}
	o.init_scratchpad(1)
	factory["pnt"] = &o
}
