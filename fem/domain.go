// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular indicates a singular or ill-conditioned stiffness matrix
	ErrSingular = errors.New("singular system")

	// ErrState indicates an operation called in the wrong state of Domain
	ErrState = errors.New("invalid state")
)

// configErr returns an error wrapping inp.ErrConfig
func configErr(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", inp.ErrConfig, io.Sf(msg, prm...))
}

// State defines the state of Domain
//
//   Unassembled --Assemble--> Assembled --ApplyBcs--> Constrained --SolveStatic--> Solved
//                                                                 --Residual---->
type State int

const (
	Unassembled State = iota // nothing computed yet
	Assembled                // K, M and F are assembled
	Constrained              // boundary conditions are applied
	Solved                   // solution is available
)

// String returns the name of state
func (s State) String() string {
	switch s {
	case Unassembled:
		return "unassembled"
	case Assembled:
		return "assembled"
	case Constrained:
		return "constrained"
	case Solved:
		return "solved"
	}
	return "unknown"
}

// Options holds the options of frame analyses
type Options struct {
	FullTensor bool    // compute Ixy and Iyz products of inertia as well
	Nworkers   int     // number of goroutines computing element matrices; ≤ 1 means serial
	MaxCond    float64 // maximum condition number of K accepted by SolveStatic; ≤ 0 means 1e16
	Verbose    bool    // show messages
}

// Domain holds the beams, joints and boundary conditions of one frame analysis and the
// global system of equations. Each Domain owns its matrices; concurrent analyses must use
// different Domains.
type Domain struct {

	// input
	Beams  []*inp.Beam  // all beams; initialised with Beam.Init
	Joints []*inp.Joint // joints
	Bcs    []*inp.Bc    // clamped nodes
	Acc    []float64    // [6] global acceleration; may be nil
	Opt    Options      // options

	// derived
	Dmap  *DofMap       // global equation numbers of beam nodes
	Elems [][]*ele.Beam // [nbeams][nelems] elements
	Sys   *System       // global system
	Ebcs  *EssentialBcs // constrained equations
	state State         // current state
}

// NewDomain returns a new Domain after checking all input data
func NewDomain(beams []*inp.Beam, joints []*inp.Joint, bcs []*inp.Bc, acc []float64, opt Options) (o *Domain, err error) {
	err = inp.Check(beams, joints, bcs)
	if err != nil {
		return
	}
	if acc != nil {
		if len(acc) != ele.Ndof || !finite(acc) {
			return nil, configErr("acceleration must have %d finite components: %v", ele.Ndof, acc)
		}
	}
	if opt.MaxCond <= 0 {
		opt.MaxCond = 1e16
	}
	o = &Domain{Beams: beams, Joints: joints, Bcs: bcs, Acc: acc, Opt: opt}
	return
}

// State returns the current state
func (o *Domain) State() State { return o.state }

// Assemble computes equation numbers and element matrices and assembles K, M and F
func (o *Domain) Assemble() (err error) {
	if o.state != Unassembled {
		return fmt.Errorf("%w: cannot assemble %s domain", ErrState, o.state)
	}

	// equation numbers
	o.Dmap, err = NewDofMap(o.Beams, o.Joints)
	if err != nil {
		return
	}
	if o.Opt.Verbose {
		io.Pf("> number of unique nodes = %d\n", o.Dmap.Nnodes)
		io.Pf("> number of equations    = %d\n", o.Dmap.Dim)
	}

	// elements
	err = o.buildElements()
	if err != nil {
		return
	}

	// matrices
	asm := NewAssembler(o.Dmap.Dim)
	for ib, elems := range o.Elems {
		bases := o.Dmap.Bases[ib]
		for e, elem := range elems {
			asm.AddElement(elem, bases[e], bases[e+1])
		}
	}

	// loads
	for ib, beam := range o.Beams {
		for i, f := range beam.Loads {
			asm.AddNodalLoad(o.Dmap.Bases[ib][i], f)
		}
	}
	if o.Acc != nil {
		asm.AddInertia(o.Acc)
		for ib, beam := range o.Beams {
			for i, m := range beam.ExtraMass {
				asm.AddPointMass(o.Dmap.Bases[ib][i], m, o.Acc)
			}
		}
	}
	o.Sys = asm.Assemble()
	o.state = Assembled
	return
}

// ApplyBcs applies the boundary conditions to K, M and F. It may be called again once constrained
func (o *Domain) ApplyBcs() (err error) {
	switch o.state {
	case Assembled:
		o.Ebcs, err = NewEssentialBcs(o.Dmap, o.Bcs)
		if err != nil {
			return
		}
	case Constrained:
	default:
		return fmt.Errorf("%w: cannot apply boundary conditions to %s domain", ErrState, o.state)
	}
	o.Ebcs.Apply(o.Sys)
	o.state = Constrained
	return
}

// SolveStatic solves K・U = F
func (o *Domain) SolveStatic() (sol *Solution, err error) {
	if o.state != Constrained {
		return nil, fmt.Errorf("%w: cannot solve %s domain", ErrState, o.state)
	}

	// factorisation
	var lu mat.LU
	lu.Factorize(o.Sys.K)
	cond := lu.Cond()
	if o.Opt.Verbose {
		io.Pf("> condition number of K  = %g\n", cond)
	}
	if math.IsNaN(cond) || cond > o.Opt.MaxCond {
		return nil, fmt.Errorf("%w: condition number of K is %g (maximum is %g)", ErrSingular, cond, o.Opt.MaxCond)
	}

	// solution
	U := mat.NewVecDense(o.Sys.Dim, nil)
	err = lu.SolveVecTo(U, false, o.Sys.F)
	var c mat.Condition
	if errors.As(err, &c) {
		err = nil // conditioning already judged against MaxCond
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	if !finite(U.RawVector().Data) {
		return nil, fmt.Errorf("%w: solution has invalid values", ErrSingular)
	}

	// residual: K・U - F
	R := mat.NewVecDense(o.Sys.Dim, nil)
	R.MulVec(o.Sys.K, U)
	R.SubVec(R, o.Sys.F)
	o.state = Solved
	return o.newSolution("static", U.RawVector().Data, nil, R.RawVector().Data), nil
}

// Residual computes R = K・U + M・Ü - F for given U and Ü without solving
func (o *Domain) Residual(U, Uddot []float64) (sol *Solution, err error) {
	if o.state != Constrained {
		return nil, fmt.Errorf("%w: cannot compute residual of %s domain", ErrState, o.state)
	}
	if len(U) != o.Sys.Dim || len(Uddot) != o.Sys.Dim {
		return nil, configErr("U and Ü must have %d components. %d and %d are incorrect", o.Sys.Dim, len(U), len(Uddot))
	}
	u := mat.NewVecDense(o.Sys.Dim, append([]float64{}, U...))
	a := mat.NewVecDense(o.Sys.Dim, append([]float64{}, Uddot...))
	var ma mat.VecDense
	ma.MulVec(o.Sys.M, a)
	R := mat.NewVecDense(o.Sys.Dim, nil)
	R.MulVec(o.Sys.K, u)
	R.AddVec(R, &ma)
	R.SubVec(R, o.Sys.F)
	o.state = Solved
	return o.newSolution("residual", u.RawVector().Data, a.RawVector().Data, R.RawVector().Data), nil
}

// MassProps returns the mass properties of all elements. Domain must be assembled
func (o *Domain) MassProps() (*MassProps, error) {
	if o.state == Unassembled {
		return nil, fmt.Errorf("%w: cannot compute mass properties of %s domain", ErrState, o.state)
	}
	return NewMassProps(o.Elems, o.Opt.FullTensor), nil
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// buildElements allocates all elements; concurrently if Nworkers > 1
func (o *Domain) buildElements() (err error) {
	o.Elems = make([][]*ele.Beam, len(o.Beams))
	for ib, beam := range o.Beams {
		o.Elems[ib] = make([]*ele.Beam, beam.Nelems())
	}
	if o.Opt.Nworkers <= 1 {
		for ib := range o.Beams {
			for e := range o.Elems[ib] {
				if err = o.newElement(ib, e); err != nil {
					return
				}
			}
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(o.Opt.Nworkers)
	for ib := range o.Beams {
		for e := range o.Elems[ib] {
			ib, e := ib, e
			g.Go(func() error { return o.newElement(ib, e) })
		}
	}
	return g.Wait()
}

// newElement allocates element e of beam ib
func (o *Domain) newElement(ib, e int) (err error) {
	beam := o.Beams[ib]
	sec := beam.Prof.Element(e).Props()
	elem, err := ele.NewBeam(beam.X[e], beam.X[e+1], beam.Material, sec, true)
	if err != nil {
		return fmt.Errorf("beam %q: element %d: %w", beam.Name, e, err)
	}
	o.Elems[ib][e] = elem
	return
}

// newSolution returns a new Solution referring to the equations and elements of this domain
func (o *Domain) newSolution(mode string, U, Uddot, R []float64) *Solution {
	return &Solution{
		Mode:  mode,
		U:     U,
		Uddot: Uddot,
		R:     R,
		Mass:  NewMassProps(o.Elems, o.Opt.FullTensor),
		Dmap:  o.Dmap,
		Beams: o.Beams,
		Elems: o.Elems,
	}
}

// finite returns whether all values are finite numbers
func finite(vals []float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Solve runs a static analysis: K・U = F
func Solve(beams []*inp.Beam, joints []*inp.Joint, bcs []*inp.Bc, acc []float64, opt Options) (sol *Solution, err error) {
	dom, err := NewDomain(beams, joints, bcs, acc, opt)
	if err != nil {
		return
	}
	if err = dom.Assemble(); err != nil {
		return
	}
	if err = dom.ApplyBcs(); err != nil {
		return
	}
	return dom.SolveStatic()
}

// EvalResidual evaluates R = K・U + M・Ü - F for given U and Ü
func EvalResidual(beams []*inp.Beam, joints []*inp.Joint, bcs []*inp.Bc, acc, U, Uddot []float64, opt Options) (sol *Solution, err error) {
	dom, err := NewDomain(beams, joints, bcs, acc, opt)
	if err != nil {
		return
	}
	if err = dom.Assemble(); err != nil {
		return
	}
	if err = dom.ApplyBcs(); err != nil {
		return
	}
	return dom.Residual(U, Uddot)
}
