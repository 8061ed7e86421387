// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gofault/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==1, 2 or 3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    // id
	Tag   int    // tag
	Type  string // geometry type (string)
	Part  int    // partition id
	Verts []int  // vertices

	// derived
	Shp *shp.Shape // shape of fault surface; non-nil for cohesive cells only
}

// cohSideType maps a cohesive cell type to the shape of its fault surface
var cohSideType = map[string]string{
	"coh2":  "pnt",
	"coh6":  "lin2",
	"coh9":  "tri3",
	"coh12": "qua4",
}

// cohNdim maps a cohesive cell type to the space dimension it belongs to
var cohNdim = map[string]int{
	"coh2":  1,
	"coh6":  2,
	"coh9":  3,
	"coh12": 3,
}

// IsCohesive tells whether a cell type corresponds to a cohesive cell or not
func IsCohesive(ctype string) bool {
	_, ok := cohSideType[ctype]
	return ok
}

// IsCoh tells whether this cell is a cohesive cell or not
func (o *Cell) IsCoh() bool {
	return IsCohesive(o.Type)
}

// SideNverts returns the number of vertices on each side of a cohesive cell
func (o *Cell) SideNverts() int {
	return len(o.Verts) / 3
}

// NegVerts returns the vertices on the negative side of a cohesive cell
func (o *Cell) NegVerts() []int {
	n := o.SideNverts()
	return o.Verts[:n]
}

// PosVerts returns the vertices on the positive side of a cohesive cell
func (o *Cell) PosVerts() []int {
	n := o.SideNverts()
	return o.Verts[n : 2*n]
}

// LagVerts returns the Lagrange multiplier vertices of a cohesive cell
func (o *Cell) LagVerts() []int {
	n := o.SideNverts()
	return o.Verts[2*n:]
}

// Mesh holds a mesh for fault analyses
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert    // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell    // cell tag => set of cells
	Ctype2cells   map[string][]*Cell // cell type => set of cells
	Part2cells    map[int][]*Cell    // partition number => set of cells
}

// ReadMsh reads a mesh for fault analyses
func ReadMsh(dir, fn string, goroutineId int) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := readFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q", o.FnamePath)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q: %v", o.FnamePath, err)
	}

	// check
	if len(o.Verts) < 2 {
		return nil, chk.Err("mesh must have at least 2 vertices. %d is invalid", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return nil, chk.Err("mesh must have at least 1 cell. %d is invalid", len(o.Cells))
	}

	// vertex related derived data
	o.Ndim = len(o.Verts[0].C)
	if o.Ndim < 1 || o.Ndim > 3 {
		return nil, chk.Err("space dimension must be 1, 2 or 3. %d is invalid", o.Ndim)
	}
	o.Xmin = o.Verts[0].C[0]
	o.Xmax = o.Xmin
	if o.Ndim > 1 {
		o.Ymin = o.Verts[0].C[1]
		o.Ymax = o.Ymin
	}
	if o.Ndim > 2 {
		o.Zmin = o.Verts[0].C[2]
		o.Zmax = o.Zmin
	}
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id and coordinates
		if v.Id != i {
			return nil, chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d", v.Id, i)
		}
		if len(v.C) != o.Ndim {
			return nil, chk.Err("all vertices must have the same number of coordinates. %d != %d", len(v.C), o.Ndim)
		}

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		if o.Ndim > 1 {
			o.Ymin = utl.Min(o.Ymin, v.C[1])
			o.Ymax = utl.Max(o.Ymax, v.C[1])
		}
		if o.Ndim > 2 {
			o.Zmin = utl.Min(o.Zmin, v.C[2])
			o.Zmax = utl.Max(o.Zmax, v.C[2])
		}
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.Ctype2cells = make(map[string][]*Cell)
	o.Part2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return nil, chk.Err("cells ids must coincide with order in \"cells\" list. %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return nil, chk.Err("cells tags must be negative. %d is incorrect", c.Tag)
		}

		// maps
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		o.Ctype2cells[c.Type] = append(o.Ctype2cells[c.Type], c)
		o.Part2cells[c.Part] = append(o.Part2cells[c.Part], c)

		// cohesive cells: allocate shape of fault surface
		if c.IsCoh() {
			if cohNdim[c.Type] != o.Ndim {
				return nil, chk.Err("cell %d: cohesive type %q does not work in %dD", c.Id, c.Type, o.Ndim)
			}
			c.Shp = shp.Get(cohSideType[c.Type], goroutineId)
			if c.Shp == nil {
				return nil, chk.Err("cannot allocate shape structure with type = %q", cohSideType[c.Type])
			}
			if len(c.Verts) != 3*c.Shp.Nverts {
				return nil, chk.Err("cell %d: cohesive type %q must have %d vertices. %d is incorrect", c.Id, c.Type, 3*c.Shp.Nverts, len(c.Verts))
			}
		}
	}
	return
}

// CohCells returns all cohesive cells with a given tag
func (o *Mesh) CohCells(tag int) (cells []*Cell, err error) {
	for _, c := range o.CellTag2cells[tag] {
		if !c.IsCoh() {
			return nil, chk.Err("cell %d with tag=%d is not a cohesive cell", c.Id, tag)
		}
		cells = append(cells, c)
	}
	if len(cells) < 1 {
		return nil, chk.Err("cannot find cohesive cells with tag=%d", tag)
	}
	return
}
