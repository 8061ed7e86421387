// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// SolnFields gathers the global solution arrays the fault solver reads and
// adjusts. all arrays are indexed by mesh vertex id; Lagrange multiplier
// values live in the displacement slots of the Lagrange vertices
type SolnFields struct {
	Ndim        int
	Dt          float64     // time step size
	DispT       [][]float64 // [nverts][ndim] converged displacement at time t
	DispIncr    [][]float64 // [nverts][ndim] displacement increment from t to t+dt (trial solution)
	Vel         [][]float64 // [nverts][ndim] velocity at time t; nil means dispIncr/dt
	Residual    [][]float64 // [nverts][ndim] residual; assembled with add semantics
	DispIncrAdj [][]float64 // [nverts][ndim] lumped-solver adjustments; assembled with add semantics
	Eqs         [][]int     // [nverts][ndim] global equation numbers
	Local       []bool      // [nverts] whether this process owns the vertex
}

// NewSolnFields allocates the solution arrays for a mesh with nverts vertices
func NewSolnFields(ndim, nverts int, dt float64) (o *SolnFields) {
	o = new(SolnFields)
	o.Ndim = ndim
	o.Dt = dt
	o.DispT = utl.Alloc(nverts, ndim)
	o.DispIncr = utl.Alloc(nverts, ndim)
	o.Residual = utl.Alloc(nverts, ndim)
	o.DispIncrAdj = utl.Alloc(nverts, ndim)
	o.Eqs = make([][]int, nverts)
	o.Local = make([]bool, nverts)
	for i := 0; i < nverts; i++ {
		o.Eqs[i] = make([]int, ndim)
		for j := 0; j < ndim; j++ {
			o.Eqs[i][j] = i*ndim + j
		}
		o.Local[i] = true
	}
	return
}

// velRel computes the relative velocity across the fault at vertices n and p
func (o *SolnFields) velRel(res []float64, n, p int) {
	if o.Vel != nil {
		for i := 0; i < o.Ndim; i++ {
			res[i] = o.Vel[p][i] - o.Vel[n][i]
		}
		return
	}
	for i := 0; i < o.Ndim; i++ {
		res[i] = (o.DispIncr[p][i] - o.DispIncr[n][i]) / o.Dt
	}
}

// JacGetter provides read access to the assembled system Jacobian
type JacGetter interface {
	Val(i, j int) float64 // value at global equations (i,j)
}

// DenseJac implements JacGetter for a dense matrix
type DenseJac struct {
	A [][]float64
}

// Val returns the value at global equations (i,j)
func (o *DenseJac) Val(i, j int) float64 {
	return o.A[i][j]
}

// SpJac implements JacGetter for a sparse triplet matrix via a dense view.
// rebuild it whenever the system Jacobian changes
type SpJac struct {
	A *la.Matrix
}

// NewSpJac creates the dense view of a triplet matrix
func NewSpJac(T *la.Triplet) *SpJac {
	return &SpJac{A: T.ToDense()}
}

// Val returns the value at global equations (i,j)
func (o *SpJac) Val(i, j int) float64 {
	return o.A.Get(i, j)
}
