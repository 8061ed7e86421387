// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// sensProblem holds the sensitivity sub-problem used to compute the change
// in slip caused by a change in the Lagrange multipliers. one unknown vector
// per fault side, with fault-local equations iv*ndim+d
type sensProblem struct {
	ndim    int
	nv      int
	neq     int
	lisname string      // name of linear solver
	dLag    [][]float64 // [nv][ndim] change in Lagrange multiplier (global coordinates)
	dispRel [][]float64 // [nv][ndim] accumulated change in relative displacement
	soln    []float64   // [neq] solution of one sensitivity solve
	resid   []float64   // [neq] right-hand side
	dense   [][]float64 // [neq][neq] fault Jacobian, assembled with overwrite semantics
	tr      la.Triplet  // sparse version of dense
	chkvec  []float64   // [neq] scratch for the post-solve residual check
}

// sensInit allocates the sensitivity sub-problem
func (o *Fault) sensInit(lisname string) {
	s := new(sensProblem)
	s.ndim = o.Ndim
	s.nv = len(o.Verts)
	s.neq = s.nv * s.ndim
	s.lisname = lisname
	s.dLag = utl.Alloc(s.nv, s.ndim)
	s.dispRel = utl.Alloc(s.nv, s.ndim)
	s.soln = make([]float64, s.neq)
	s.resid = make([]float64, s.neq)
	s.dense = utl.Alloc(s.neq, s.neq)
	s.tr.Init(s.neq, s.neq, s.neq*s.neq)
	s.chkvec = make([]float64, s.neq)
	o.sens = s
}

// sensStart zeroes the sensitivity fields before a new projection pass
func (o *Fault) sensStart() {
	s := o.sens
	for iv := 0; iv < s.nv; iv++ {
		for d := 0; d < s.ndim; d++ {
			s.dLag[iv][d] = 0
			s.dispRel[iv][d] = 0
		}
	}
}

// sensUpdateJacobian extracts the sub-blocks of the system Jacobian that
// couple the vertices of one fault side and assembles the fault Jacobian.
// vertices not owned by this process contribute an identity diagonal
func (o *Fault) sensUpdateJacobian(negativeSide bool, jac JacGetter, sol *SolnFields) {
	s := o.sens
	nd := s.ndim
	for i := range s.dense {
		utl.Fill(s.dense[i], 0)
	}
	for ic, c := range o.Cells {
		nb := c.Shp.Nverts
		m := nb * nd
		side := c.PosVerts()
		if negativeSide {
			side = c.NegVerts()
		}

		// global equations of the side vertices; -1 when not local
		idx := make([]int, m)
		sub := utl.Alloc(m, m)
		for iB := 0; iB < nb; iB++ {
			v := side[iB]
			for iDim := 0; iDim < nd; iDim++ {
				iBd := iB*nd + iDim
				if sol.Local[v] {
					idx[iBd] = sol.Eqs[v][iDim]
				} else {
					idx[iBd] = -1
				}
				sub[iBd][iBd] = 1.0
			}
		}

		// restrict the system Jacobian to the side vertices
		for i := 0; i < m; i++ {
			if idx[i] < 0 {
				continue
			}
			for j := 0; j < m; j++ {
				if idx[j] < 0 {
					continue
				}
				sub[i][j] = jac.Val(idx[i], idx[j])
			}
		}

		// insert cell contribution with overwrite semantics
		for iB := 0; iB < nb; iB++ {
			for iDim := 0; iDim < nd; iDim++ {
				r := o.cellF[ic][iB]*nd + iDim
				for jB := 0; jB < nb; jB++ {
					for jDim := 0; jDim < nd; jDim++ {
						s.dense[r][o.cellF[ic][jB]*nd+jDim] = sub[iB*nd+iDim][jB*nd+jDim]
					}
				}
			}
		}
	}

	// load sparse version
	s.tr.Start()
	for i := 0; i < s.neq; i++ {
		for j := 0; j < s.neq; j++ {
			if s.dense[i][j] != 0 || i == j {
				s.tr.Put(i, j, s.dense[i][j])
			}
		}
	}
}

// sensReformResidual computes the right-hand side sign * Σ w|J| Ni Nj dLagrange
// with sign +1 for the negative side and -1 for the positive side
func (o *Fault) sensReformResidual(negativeSide bool) (err error) {
	s := o.sens
	nd := s.ndim
	sign := -1.0
	if negativeSide {
		sign = 1.0
	}
	utl.Fill(s.resid, 0)
	for ic, c := range o.Cells {
		sh := c.Shp
		nb := sh.Nverts

		// products of basis functions summed over integration points
		products := utl.Alloc(nb, nb)
		for _, ip := range sh.Ips {
			err = sh.CalcAtIp(o.cellX[ic], ip, true)
			if err != nil {
				return chk.Err("fault with tag=%d: cell %d: %v", o.Tag, c.Id, err)
			}
			coef := ip[3] * sh.J
			for i := 0; i < nb; i++ {
				for j := 0; j < nb; j++ {
					products[i][j] += coef * sh.S[i] * sh.S[j]
				}
			}
		}

		// assemble cell contribution
		for iB := 0; iB < nb; iB++ {
			for jB := 0; jB < nb; jB++ {
				l := sign * products[iB][jB]
				for d := 0; d < nd; d++ {
					s.resid[o.cellF[ic][iB]*nd+d] += l * s.dLag[o.cellF[ic][jB]][d]
				}
			}
		}
	}
	return
}

// sensSolve solves the sensitivity sub-problem and verifies that the
// solution satisfies ‖A·x − b‖ ≤ rtol·‖b‖ + atol with rtol = 1e-3·ZeroTol
// and atol = 1e-5·ZeroTol
func (o *Fault) sensSolve() (err error) {
	s := o.sens
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("fault with tag=%d: sensitivity solve failed: %v", o.Tag, r)
		}
	}()
	lis := la.NewSparseSolver(s.lisname)
	defer lis.Free()
	lis.Init(&s.tr, nil)
	lis.Fact()
	lis.Solve(s.soln, s.resid)

	// residual check
	rtol := 1e-3 * o.ZeroTol
	atol := 1e-5 * o.ZeroTol
	la.SpTriMatVecMul(s.chkvec, &s.tr, s.soln)
	for i := 0; i < s.neq; i++ {
		s.chkvec[i] -= s.resid[i]
	}
	dev := la.Vector(s.chkvec).Norm()
	if dev > rtol*la.Vector(s.resid).Norm()+atol {
		return chk.Err("fault with tag=%d: sensitivity solve did not converge: ‖A·x−b‖=%g", o.Tag, dev)
	}
	return
}

// sensUpdateSoln accumulates the change in relative displacement with
// sign -1 for the negative side and +1 for the positive side
func (o *Fault) sensUpdateSoln(negativeSide bool) {
	s := o.sens
	sign := 1.0
	if negativeSide {
		sign = -1.0
	}
	for iv := 0; iv < s.nv; iv++ {
		for d := 0; d < s.ndim; d++ {
			s.dispRel[iv][d] += sign * s.soln[iv*s.ndim+d]
		}
	}
}
