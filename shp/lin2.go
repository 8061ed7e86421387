// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// Lin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    -1     0    +1
//     0-----------1-->r
//
func Lin2(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 0.5 * (1.0 - r[0])
	S[1] = 0.5 * (1.0 + r[0])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

func init() {
	g := 1.0 / math.Sqrt(3.0)
	var o Shape
	o.Type = "lin2"
	o.Func = Lin2
	o.Gndim = 1
	o.Nverts = 2
	o.VtkCode = 3 // VTK_LINE
	o.NatCoords = [][]float64{{-1, 1}}
	o.Ips = []Ipoint{
		{-g, 0, 0, 1},
		{g, 0, 0, 1},
	}
	o.init_scratchpad(2)
	factory["lin2"] = &o
}
