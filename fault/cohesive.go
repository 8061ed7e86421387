// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"math"

	"github.com/cpmech/gofault/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// buildTopology builds the cohesive vertex groups of this fault, one per
// unique Lagrange vertex, and the per-cell fault-local indices and coordinates
func (o *Fault) buildTopology() (err error) {
	o.l2f = make(map[int]int)
	for _, c := range o.Cells {
		neg := c.NegVerts()
		pos := c.PosVerts()
		lag := c.LagVerts()
		for k := 0; k < c.SideNverts(); k++ {
			if idx, ok := o.l2f[lag[k]]; ok {
				v := o.Verts[idx]
				if v.Neg != neg[k] || v.Pos != pos[k] {
					return chk.Err("fault with tag=%d: cell %d: Lagrange vertex %d is shared by incompatible cohesive cells", o.Tag, c.Id, lag[k])
				}
				continue
			}
			o.l2f[lag[k]] = len(o.Verts)
			o.Verts = append(o.Verts, CohVert{Neg: neg[k], Pos: pos[k], Lag: lag[k]})
		}
	}

	// cell fault-local indices and fault surface coordinates
	nc := len(o.Cells)
	o.cellF = make([][]int, nc)
	o.cellX = make([][][]float64, nc)
	for ic, c := range o.Cells {
		n := c.SideNverts()
		o.cellF[ic] = make([]int, n)
		o.cellX[ic] = utl.Alloc(o.Ndim, n)
		for k, lv := range c.LagVerts() {
			o.cellF[ic][k] = o.l2f[lv]
			for i := 0; i < o.Ndim; i++ {
				o.cellX[ic][i][k] = o.Msh.Verts[lv].C[i]
			}
		}
	}
	return
}

// buildOrientArea computes the lumped fault surface area and the rotation
// matrix at each fault vertex. the normal is accumulated from the surface
// cells touching the vertex and points from the negative to the positive
// side of the fault, which requires the mesh to order the fault side
// vertices accordingly
func (o *Fault) buildOrientArea() (err error) {
	nv := len(o.Verts)
	nd := o.Ndim
	o.Area = make([]float64, nv)
	normal := utl.Alloc(nv, nd)
	for ic, c := range o.Cells {
		s := c.Shp
		for _, ip := range s.Ips {
			err = s.CalcAtIp(o.cellX[ic], ip, true)
			if err != nil {
				return chk.Err("fault with tag=%d: cell %d: %v", o.Tag, c.Id, err)
			}
			coef := ip[3] * s.J
			for k := 0; k < s.Nverts; k++ {
				iv := o.cellF[ic][k]
				o.Area[iv] += coef * s.S[k]
				for i := 0; i < nd; i++ {
					normal[iv][i] += coef * s.S[k] * s.Nvec[i]
				}
			}
		}
	}

	// rotation matrices with rows strike, (dip,) normal; the normal is last
	o.Orient = utl.Alloc(nv, nd*nd)
	for iv := 0; iv < nv; iv++ {
		n := normal[iv]
		nrm := la.Vector(n).Norm()
		if nrm < shp.MINDET {
			return chk.Err("fault with tag=%d: degenerate normal at Lagrange vertex %d", o.Tag, o.Verts[iv].Lag)
		}
		for i := 0; i < nd; i++ {
			n[i] /= nrm
		}
		O := o.Orient[iv]
		switch nd {
		case 1:
			O[0] = n[0]
		case 2:
			O[0], O[1] = n[1], -n[0] // strike
			O[2], O[3] = n[0], n[1]  // normal
		case 3:
			// strike = up × normal
			sx := o.Up[1]*n[2] - o.Up[2]*n[1]
			sy := o.Up[2]*n[0] - o.Up[0]*n[2]
			sz := o.Up[0]*n[1] - o.Up[1]*n[0]
			smag := math.Sqrt(sx*sx + sy*sy + sz*sz)
			if smag < shp.MINDET {
				return chk.Err("fault with tag=%d: up-dip direction %v is parallel to the fault normal at Lagrange vertex %d", o.Tag, o.Up, o.Verts[iv].Lag)
			}
			sx, sy, sz = sx/smag, sy/smag, sz/smag
			// dip = normal × strike
			dx := n[1]*sz - n[2]*sy
			dy := n[2]*sx - n[0]*sz
			dz := n[0]*sy - n[1]*sx
			O[0], O[1], O[2] = sx, sy, sz
			O[3], O[4], O[5] = dx, dy, dz
			O[6], O[7], O[8] = n[0], n[1], n[2]
		}
	}
	return
}
