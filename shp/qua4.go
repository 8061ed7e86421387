// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    s
//    |
//    3-----------2
//    |           |
//    |           |
//    |           |-->r
//    |           |
//    |           |
//    0-----------1
//
func Qua4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 0.25 * (1.0 - r[0]) * (1.0 - r[1])
	S[1] = 0.25 * (1.0 + r[0]) * (1.0 - r[1])
	S[2] = 0.25 * (1.0 + r[0]) * (1.0 + r[1])
	S[3] = 0.25 * (1.0 - r[0]) * (1.0 + r[1])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.25 * (1.0 - r[1])
	dSdR[0][1] = -0.25 * (1.0 - r[0])
	dSdR[1][0] = 0.25 * (1.0 - r[1])
	dSdR[1][1] = -0.25 * (1.0 + r[0])
	dSdR[2][0] = 0.25 * (1.0 + r[1])
	dSdR[2][1] = 0.25 * (1.0 + r[0])
	dSdR[3][0] = -0.25 * (1.0 + r[1])
	dSdR[3][1] = 0.25 * (1.0 - r[0])
}

func init() {
	g := 1.0 / math.Sqrt(3.0)
	var o Shape
	o.Type = "qua4"
	o.Func = Qua4
	o.Gndim = 2
	o.Nverts = 4
	o.VtkCode = 9 // VTK_QUAD
	o.NatCoords = [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}
	o.Ips = []Ipoint{
		{-g, -g, 0, 1},
		{g, -g, 0, 1},
		{g, g, 0, 1},
		{-g, g, 0, 1},
	}
	o.init_scratchpad(3)
	factory["qua4"] = &o
}
