// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    s
//    |
//    2
//    | \
//    |   \
//    |     \
//    0-------1-->r
//
func Tri3(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 1.0 - r[0] - r[1]
	S[1] = r[0]
	S[2] = r[1]
	if !derivs {
		return
	}
	dSdR[0][0] = -1.0
	dSdR[0][1] = -1.0
	dSdR[1][0] = 1.0
	dSdR[1][1] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 1.0
}

func init() {
	var o Shape
	o.Type = "tri3"
	o.Func = Tri3
	o.Gndim = 2
	o.Nverts = 3
	o.VtkCode = 5 // VTK_TRIANGLE
	o.NatCoords = [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	}
	o.Ips = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}
	o.init_scratchpad(3)
	factory["tri3"] = &o
}
