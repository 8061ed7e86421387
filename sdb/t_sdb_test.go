// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdb

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sdb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sdb01. uniform database")

	db, err := Open("data/tract-uniform.json")
	if err != nil {
		tst.Errorf("Open failed:\n%v", err)
		return
	}
	if db.Label() != "initial tractions" {
		tst.Errorf("label is incorrect: %q\n", db.Label())
		return
	}

	// reversed order of names
	vals, err := db.Query([]float64{0, 1}, []string{"traction-normal", "traction-shear"})
	if err != nil {
		tst.Errorf("Query failed:\n%v", err)
		return
	}
	chk.Array(tst, "vals", 1e-17, vals, []float64{-10, 2})

	// unknown name
	_, err = db.Query([]float64{0, 1}, []string{"traction-shear-updip"})
	if err == nil {
		tst.Errorf("Query must fail with unknown name\n")
	}
}

func Test_sdb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sdb02. points database with nearest-point lookup")

	db, err := Open("data/tract-points.json")
	if err != nil {
		tst.Errorf("Open failed:\n%v", err)
		return
	}

	vals, err := db.Query([]float64{0.1, 0.3}, []string{"traction-shear", "traction-normal"})
	if err != nil {
		tst.Errorf("Query failed:\n%v", err)
		return
	}
	chk.Array(tst, "vals near bottom", 1e-17, vals, []float64{1, -5})

	vals, err = db.Query([]float64{-0.2, 3.9}, []string{"traction-normal"})
	if err != nil {
		tst.Errorf("Query failed:\n%v", err)
		return
	}
	chk.Array(tst, "vals near top", 1e-17, vals, []float64{-15})
}
