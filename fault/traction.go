// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/cpmech/gofault/sdb"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// tractNames returns the names of the initial traction components in the
// fault coordinate system, shear first and normal last
func tractNames(ndim int) []string {
	switch ndim {
	case 1:
		return []string{"traction-normal"}
	case 2:
		return []string{"traction-shear", "traction-normal"}
	}
	return []string{"traction-shear-leftlateral", "traction-shear-updip", "traction-normal"}
}

// setInitialTractions queries the spatial database for the initial fault
// tractions at every fault vertex, stores them in global coordinates and
// records the initial normal traction for the friction model
func (o *Fault) setInitialTractions(db sdb.DB, σn []float64) (err error) {
	nd := o.Ndim
	nv := len(o.Verts)
	names := tractNames(nd)
	o.TractInit = utl.Alloc(nv, nd)
	local := make([]float64, nd)
	for iv, cv := range o.Verts {
		x := o.Msh.Verts[cv.Lag].C
		var vals []float64
		vals, err = db.Query(x, names)
		if err != nil {
			return chk.Err("fault with tag=%d: cannot read initial tractions: %v", o.Tag, err)
		}
		copy(local, vals)
		σn[iv] = local[nd-1]
		o.toGlobal(o.TractInit[iv], iv, local)
	}
	return
}

// VertexField returns a diagnostic field over the fault vertices. vector
// fields (slip, slip_rate, traction, initial_traction and the orientation
// directions) have one column per dimension, with shear components first and
// the normal component last; friction properties and state variables listed
// by the friction model are scalar
func (o *Fault) VertexField(name string, sol *SolnFields) (vals [][]float64, err error) {
	nd := o.Ndim
	nv := len(o.Verts)
	indexN := nd - 1
	switch name {

	case "slip":
		vals = utl.Alloc(nv, nd)
		for iv := range o.Verts {
			o.toLocal(vals[iv], iv, o.DispRel[iv])
		}
		return

	case "slip_rate":
		vals = utl.Alloc(nv, nd)
		for iv := range o.Verts {
			o.toLocal(vals[iv], iv, o.VelRel[iv])
		}
		return

	case "strike_dir":
		if nd < 2 {
			return nil, chk.Err("fault with tag=%d: strike_dir is not available in 1D", o.Tag)
		}
		vals = utl.Alloc(nv, nd)
		for iv := range o.Verts {
			copy(vals[iv], o.Orient[iv][:nd])
		}
		return

	case "dip_dir":
		if nd != 3 {
			return nil, chk.Err("fault with tag=%d: dip_dir is only available in 3D", o.Tag)
		}
		vals = utl.Alloc(nv, nd)
		for iv := range o.Verts {
			copy(vals[iv], o.Orient[iv][nd:2*nd])
		}
		return

	case "normal_dir":
		vals = utl.Alloc(nv, nd)
		for iv := range o.Verts {
			copy(vals[iv], o.Orient[iv][indexN*nd:(indexN+1)*nd])
		}
		return

	case "initial_traction":
		vals = utl.Alloc(nv, nd)
		if o.TractInit != nil {
			for iv := range o.Verts {
				o.toLocal(vals[iv], iv, o.TractInit[iv])
			}
		}
		return

	case "traction":
		if sol == nil {
			return nil, chk.Err("fault with tag=%d: traction requires the solution fields", o.Tag)
		}

		// tractions from the converged Lagrange multipliers at time t;
		// the pending increment is not included
		vals = utl.Alloc(nv, nd)
		for iv, cv := range o.Verts {
			L := cv.Lag
			o.toLocal(vals[iv], iv, sol.DispT[L])
		}
		return
	}

	// friction properties and state variables
	if o.Fric.HasPropStateVar(name) {
		vals = utl.Alloc(nv, 1)
		for iv := range o.Verts {
			vals[iv][0] = o.Fric.Val(name, o.States[iv])
		}
		return
	}
	return nil, chk.Err("fault with tag=%d: unknown vertex field %q", o.Tag, name)
}
