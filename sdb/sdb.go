// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sdb implements spatial databases: named values queried at points in space
package sdb

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DB defines the interface for spatial databases
type DB interface {

	// Label returns a short description used in error messages
	Label() string

	// Query returns the values with given names at point x
	//  the result is ordered as the names argument
	Query(x []float64, names []string) (vals []float64, err error)
}

// dbfile is the JSON structure of a spatial database file
type dbfile struct {
	Kind   string      `json:"kind"`   // "uniform" or "points"
	Desc   string      `json:"desc"`   // description
	Names  []string    `json:"names"`  // names of values held
	Vals   []float64   `json:"vals"`   // uniform: one value per name
	Points []*dbfpoint `json:"points"` // points: values at scattered points
}

// dbfpoint holds one point of a "points" database
type dbfpoint struct {
	C    []float64 `json:"c"`    // coordinates
	Vals []float64 `json:"vals"` // one value per name
}

// readFile wraps io.ReadFile so that unreadable files surface as
// errors instead of panics
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot read file %q", fn)
		}
	}()
	b = io.ReadFile(fn)
	return
}

// Open reads a spatial database from a JSON file
func Open(fn string) (DB, error) {

	// read and decode file
	b, err := readFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read spatial database file %q", fn)
	}
	var f dbfile
	err = json.Unmarshal(b, &f)
	if err != nil {
		return nil, chk.Err("cannot unmarshal spatial database file %q: %v", fn, err)
	}
	if f.Desc == "" {
		f.Desc = io.FnKey(fn)
	}
	if len(f.Names) < 1 {
		return nil, chk.Err("spatial database %q must hold at least one named value", fn)
	}

	// allocate database
	switch f.Kind {
	case "uniform":
		if len(f.Vals) != len(f.Names) {
			return nil, chk.Err("spatial database %q: \"vals\" must have %d values. %d is incorrect", fn, len(f.Names), len(f.Vals))
		}
		return &Uniform{desc: f.Desc, names: f.Names, vals: f.Vals}, nil
	case "points":
		if len(f.Points) < 1 {
			return nil, chk.Err("spatial database %q must hold at least one point", fn)
		}
		for i, p := range f.Points {
			if len(p.Vals) != len(f.Names) {
				return nil, chk.Err("spatial database %q: point %d must have %d values. %d is incorrect", fn, i, len(f.Names), len(p.Vals))
			}
		}
		return &Points{desc: f.Desc, names: f.Names, points: f.Points}, nil
	}
	return nil, chk.Err("spatial database %q: kind %q is incorrect; options are \"uniform\" and \"points\"", fn, f.Kind)
}

// find returns the index of a name in names. returns -1 if not found
func find(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// Uniform implements a spatial database with values constant in space
type Uniform struct {
	desc  string
	names []string
	vals  []float64
}

// Label returns a short description used in error messages
func (o *Uniform) Label() string { return o.desc }

// Query returns the values with given names at point x
func (o *Uniform) Query(x []float64, names []string) (vals []float64, err error) {
	vals = make([]float64, len(names))
	for i, name := range names {
		idx := find(o.names, name)
		if idx < 0 {
			return nil, chk.Err("spatial database %q: cannot find value named %q at point %v", o.desc, name, x)
		}
		vals[i] = o.vals[idx]
	}
	return
}

// Points implements a spatial database with values given at scattered
// points; queries return the values of the nearest point
type Points struct {
	desc   string
	names  []string
	points []*dbfpoint
}

// Label returns a short description used in error messages
func (o *Points) Label() string { return o.desc }

// Query returns the values with given names at point x
func (o *Points) Query(x []float64, names []string) (vals []float64, err error) {

	// nearest point
	best := -1
	var dmin float64
	for i, p := range o.points {
		if len(p.C) != len(x) {
			return nil, chk.Err("spatial database %q: point %d has %d coordinates but query point %v has %d", o.desc, i, len(p.C), x, len(x))
		}
		d := 0.0
		for j := 0; j < len(x); j++ {
			d += (x[j] - p.C[j]) * (x[j] - p.C[j])
		}
		if best < 0 || d < dmin {
			best = i
			dmin = d
		}
	}

	// collect values
	vals = make([]float64, len(names))
	for i, name := range names {
		idx := find(o.names, name)
		if idx < 0 {
			return nil, chk.Err("spatial database %q: cannot find value named %q at point %v", o.desc, name, x)
		}
		vals[i] = o.points[best].Vals[idx]
	}
	return
}
