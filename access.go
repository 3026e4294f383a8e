/*
 * access.go, part of gosurf.
 *
 * Copyright 2023 Lucas Vidal <lvidal{at}protonDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package surf

import (
	"math"
	"runtime"

	v3 "github.com/lvidal/gosurf/v3"
)

//Below this value the product of smoothed per-atom factors is taken as zero and
//the evaluation short-circuits.
const vSmall float64 = 1e-12

//Options contains the construction options for an Acc.
type Options struct {
	nx, ny, nz int
	nsphere    int
	cpus       int
	focus      *BoundingBox
}

//DefaultOptions returns an Options with the default settings: a 32x32x32 cell
//grid covering all atoms, around 200 quadrature points on the sphere, and as
//many workers as logical CPUs for the concurrent functions.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.nx, ret.ny, ret.nz = 32, 32, 32
	ret.nsphere = 200
	ret.cpus = runtime.NumCPU()
	return ret
}

//Dims returns the cell grid dimensions, and sets them first if values are
//given. Dimensions smaller than 3 are rejected at construction, not here.
func (r *Options) Dims(dims ...[3]int) [3]int {
	ret := [3]int{r.nx, r.ny, r.nz}
	if len(dims) > 0 {
		r.nx, r.ny, r.nz = dims[0][0], dims[0][1], dims[0][2]
	}
	return ret
}

//SpherePoints returns the target number of quadrature points on the sphere,
//and sets it, if a valid value is given. The actual number of points used is
//an artifact of the ring-packing generation (see UnitSphere).
func (r *Options) SpherePoints(n ...int) int {
	ret := r.nsphere
	if len(n) > 0 && n[0] > 0 {
		r.nsphere = n[0]
	}
	return ret
}

//Cpus returns the number of goroutines used by the concurrent batch functions,
//and sets it, if a valid value is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}

//Focus returns the explicit bounding box for the grid, nil meaning a box
//derived from the atom coordinates, and sets it, if one is given.
func (r *Options) Focus(box ...*BoundingBox) *BoundingBox {
	ret := r.focus
	if len(box) > 0 {
		r.focus = box[0]
	}
	return ret
}

//Acc answers accessibility and solvent-accessible-area queries for one
//conformation of a set of atoms. It is built once and immutable afterwards,
//except for two pieces of scratch: the dedup tags used by SplineAcc and the
//per-atom area cache filled by TotalSASA. The discrete predicates (VdwAcc,
//IVdwAcc, MolAcc, FastMolAcc), AtomSASA and AccField only read, so they are
//safe to call concurrently on the same Acc; SplineAcc, SplineAccGrad and
//TotalSASA are not, and need external synchronization.
//
//The atom set and coordinates are borrowed, never modified, and must not
//change while the Acc is in use.
type Acc struct {
	coord    *v3.Matrix
	mol      Atomer
	maxProbe float64
	grid     *cellGrid
	sphere   *v3.Matrix
	nsphere  int
	cpus     int
	//scratch for SplineAcc: an atom is "seen" in the current evaluation iff
	//seen[atom] == gen, so resetting is a counter increment, not an O(atoms)
	//sweep.
	seen []uint32
	gen  uint32
	area []float64 //per-atom SASA cache, filled by TotalSASA/ConcTotalSASA
}

//NewAcc builds an accessibility engine for the given coordinates and atoms,
//able to answer queries for any probe radius up to maxProbe. Coordinates and
//atom set must have matching lengths. Queries use the atoms' Vdw radii as
//stored at construction time.
func NewAcc(coord *v3.Matrix, mol Atomer, maxProbe float64, options ...*Options) (*Acc, error) {
	if coord == nil || mol == nil {
		panic(ErrNilMolecule)
	}
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	grid, err := newCellGrid(coord, mol, maxProbe, o.nx, o.ny, o.nz, o.focus)
	if err != nil {
		if err2, ok := err.(Error); ok {
			err2.Decorate("NewAcc")
		}
		return nil, err
	}
	sphere, nsphere := UnitSphere(o.nsphere)
	A := &Acc{
		coord:    coord,
		mol:      mol,
		maxProbe: maxProbe,
		grid:     grid,
		sphere:   sphere,
		nsphere:  nsphere,
		cpus:     o.cpus,
		seen:     make([]uint32, mol.Len()),
		area:     make([]float64, mol.Len()),
	}
	return A, nil
}

//MaxProbe returns the maximum probe radius the engine was provisioned for.
func (A *Acc) MaxProbe() float64 {
	return A.maxProbe
}

//SpherePoints returns the actual number of quadrature points in use.
func (A *Acc) SpherePoints() int {
	return A.nsphere
}

//vdwAcc is the hard-sphere test on raw coordinates. True means accessible.
func (A *Acc) vdwAcc(x, y, z float64) bool {
	ui, ok := A.grid.locate(x, y, z)
	if !ok {
		return true
	}
	for _, i := range A.grid.bucket(ui) {
		r := A.mol.Atom(i).Vdw
		dx := x - A.coord.At(i, 0)
		dy := y - A.coord.At(i, 1)
		dz := z - A.coord.At(i, 2)
		if dx*dx+dy*dy+dz*dz < r*r {
			return false
		}
	}
	return true
}

//ivdwAccExclus is the probe-inflated test on raw coordinates, ignoring the
//atom with index exclude (-1 for none). Atoms with zero radius never obstruct.
//True means accessible. The probe radius must have been validated against
//maxProbe by the caller: the buckets don't index far enough for anything
//larger.
func (A *Acc) ivdwAccExclus(x, y, z, probe float64, exclude int) bool {
	ui, ok := A.grid.locate(x, y, z)
	if !ok {
		return true
	}
	for _, i := range A.grid.bucket(ui) {
		if i == exclude {
			continue
		}
		r := A.mol.Atom(i).Vdw
		if r <= 0 {
			continue
		}
		rtot := r + probe
		dx := x - A.coord.At(i, 0)
		dy := y - A.coord.At(i, 1)
		dz := z - A.coord.At(i, 2)
		if dx*dx+dy*dy+dz*dz < rtot*rtot {
			return false
		}
	}
	return true
}

//molAcc runs the three stages of the molecular surface test on raw
//coordinates. 1 means accessible.
func (A *Acc) molAcc(x, y, z, probe float64) float64 {
	//Outside the inflated surface: trivially accessible.
	if A.ivdwAccExclus(x, y, z, probe, -1) {
		return 1.0
	}
	//Inside some atom: trivially buried.
	if !A.vdwAcc(x, y, z) {
		return 0.0
	}
	return A.sampleMolAcc(x, y, z, probe)
}

//sampleMolAcc decides accessibility for a point in the ambiguous annulus
//between the van der Waals and the inflated surfaces: the point is on the
//solvent side of the molecular surface iff a probe sphere can be rolled to
//touch it, i.e. iff some point of the probe-radius sphere around it is outside
//the inflated surface.
func (A *Acc) sampleMolAcc(x, y, z, probe float64) float64 {
	for ip := 0; ip < A.nsphere; ip++ {
		sx := probe*A.sphere.At(ip, 0) + x
		sy := probe*A.sphere.At(ip, 1) + y
		sz := probe*A.sphere.At(ip, 2) + z
		if A.ivdwAccExclus(sx, sy, sz, probe, -1) {
			return 1.0
		}
	}
	return 0.0
}

//VdwAcc returns 1.0 if the point is outside the union of the atoms' van der
//Waals spheres, 0.0 otherwise. Points outside the indexed grid box are always
//accessible. Atoms with zero radius never bury a point.
func (A *Acc) VdwAcc(point *v3.Matrix) float64 {
	if A.vdwAcc(point.At(0, 0), point.At(0, 1), point.At(0, 2)) {
		return 1.0
	}
	return 0.0
}

//IVdwAcc returns 1.0 if the point is outside the union of the atoms' spheres
//inflated by the probe radius, 0.0 otherwise. It fails if probe exceeds the
//maximum the engine was built for.
func (A *Acc) IVdwAcc(point *v3.Matrix, probe float64) (float64, error) {
	if probe > A.maxProbe {
		return 0, precondError("IVdwAcc", "probe radius %g exceeds the maximum %g set at construction", probe, A.maxProbe)
	}
	if A.ivdwAccExclus(point.At(0, 0), point.At(0, 1), point.At(0, 2), probe, -1) {
		return 1.0, nil
	}
	return 0.0, nil
}

//IVdwAccExcluding is IVdwAcc ignoring the contribution of the atom with the
//given index. It is the test behind per-atom SASA, where an atom must not
//occlude its own surface samples.
func (A *Acc) IVdwAccExcluding(point *v3.Matrix, probe float64, exclude int) (float64, error) {
	if probe > A.maxProbe {
		return 0, precondError("IVdwAccExcluding", "probe radius %g exceeds the maximum %g set at construction", probe, A.maxProbe)
	}
	if A.ivdwAccExclus(point.At(0, 0), point.At(0, 1), point.At(0, 2), probe, exclude) {
		return 1.0, nil
	}
	return 0.0, nil
}

//MolAcc returns 1.0 if the point is on the solvent side of the molecular
//(reentrant) surface for the given probe radius, 0.0 otherwise. Points outside
//both surfaces or inside an atom are resolved cheaply; only the ambiguous
//annulus in between needs probe-sphere sampling.
func (A *Acc) MolAcc(point *v3.Matrix, probe float64) (float64, error) {
	if probe > A.maxProbe {
		return 0, precondError("MolAcc", "probe radius %g exceeds the maximum %g set at construction", probe, A.maxProbe)
	}
	return A.molAcc(point.At(0, 0), point.At(0, 1), point.At(0, 2), probe), nil
}

//FastMolAcc is MolAcc without the two cheap pre-checks. It is only worthwhile
//for callers that have already restricted evaluation to the annulus between
//the van der Waals and inflated surfaces; anywhere else it gives the same
//answer as MolAcc at the full sampling cost.
func (A *Acc) FastMolAcc(point *v3.Matrix, probe float64) (float64, error) {
	if probe > A.maxProbe {
		return 0, precondError("FastMolAcc", "probe radius %g exceeds the maximum %g set at construction", probe, A.maxProbe)
	}
	return A.sampleMolAcc(point.At(0, 0), point.At(0, 1), point.At(0, 2), probe), nil
}

//splineAtom evaluates the C1 smoothed characteristic function of one atom,
//inflated by probe, at distance d from raw coordinates: 0 inside the inflated
//sphere shrunk by the window, 1 outside it grown by the window, and a cubic
//Hermite smoothstep in between. Zero-radius atoms contribute 1.
func (A *Acc) splineAtom(x, y, z, window, probe float64, atom int) float64 {
	r := A.mol.Atom(atom).Vdw
	if r <= 0 {
		return 1.0
	}
	arad := r + probe
	dx := x - A.coord.At(atom, 0)
	dy := y - A.coord.At(atom, 1)
	dz := z - A.coord.At(atom, 2)
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if d <= arad-window {
		return 0.0
	}
	if d >= arad+window {
		return 1.0
	}
	sm := d - arad + window
	w2i := 1.0 / (window * window)
	w3i := w2i / window
	return 0.75*sm*sm*w2i - 0.25*sm*sm*sm*w3i
}

//SplineAcc returns a C1-continuous relaxation of the inflated accessibility at
//the point, in [0,1]: the product of the per-atom smoothstep factors over every
//distinct atom in the point's cell bucket, with the transition spread over
//±window around each atom's inflated surface. Zero-radius atoms contribute a
//factor of 1. Points outside the grid return 1.0. The evaluation
//short-circuits once the product cannot recover from ~0.
//
//The window+probe sum must not exceed the maximum probe radius set at
//construction; the buckets don't reach far enough for more, and truncating
//silently would misreport buried points as accessible.
//
//SplineAcc mutates the engine's dedup scratch: it must not be called
//concurrently on the same Acc without external synchronization.
func (A *Acc) SplineAcc(point *v3.Matrix, window, probe float64) (float64, error) {
	if window+probe > A.maxProbe {
		return 0, precondError("SplineAcc", "window %g + probe %g exceeds the maximum radius %g set at construction", window, probe, A.maxProbe)
	}
	x, y, z := point.At(0, 0), point.At(0, 1), point.At(0, 2)
	ui, ok := A.grid.locate(x, y, z)
	if !ok {
		return 1.0, nil
	}
	A.gen++
	if A.gen == 0 { //wrapped around: clear stale tags once
		for i := range A.seen {
			A.seen[i] = 0
		}
		A.gen = 1
	}
	value := 1.0
	for _, i := range A.grid.bucket(ui) {
		if A.seen[i] == A.gen {
			continue
		}
		A.seen[i] = A.gen
		value *= A.splineAtom(x, y, z, window, probe, i)
		if value < vSmall {
			return 0.0, nil
		}
	}
	return value, nil
}

//SplineAccAtomGrad returns the negated gradient of the logarithm of the given
//atom's smoothed characteristic function at the point, as a 1-vector matrix:
//it points from the smoothing window down toward the atom, the direction a
//force built on the smoothed accessibility pushes along. It is exactly zero
//outside the smoothing window and for zero-radius atoms. Panics if the atom
//index is out of range, like Atomer.Atom.
func (A *Acc) SplineAccAtomGrad(point *v3.Matrix, window, probe float64, atom int) *v3.Matrix {
	grad := v3.Zeros(1)
	r := A.mol.Atom(atom).Vdw
	if r <= 0 {
		return grad
	}
	arad := r + probe
	x, y, z := point.At(0, 0), point.At(0, 1), point.At(0, 2)
	dx := x - A.coord.At(atom, 0)
	dy := y - A.coord.At(atom, 1)
	dz := z - A.coord.At(atom, 2)
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if d <= arad-window || d >= arad+window || d == 0 {
		return grad
	}
	sm := d - arad + window
	w2i := 1.0 / (window * window)
	w3i := w2i / window
	chi := 0.75*sm*sm*w2i - 0.25*sm*sm*sm*w3i
	dchi := 1.5*sm*w2i - 0.75*sm*sm*w3i
	f := -(dchi / chi) / d
	grad.Set(0, 0, f*dx)
	grad.Set(0, 1, f*dy)
	grad.Set(0, 2, f*dz)
	return grad
}

//SplineAccGrad returns the negated log-gradient of the smoothed accessibility
//at the point, taken from the bucket atom closest to it (the factor that
//dominates the product there). It is the zero vector off-grid, in empty
//buckets, and outside every atom's smoothing window.
func (A *Acc) SplineAccGrad(point *v3.Matrix, window, probe float64) (*v3.Matrix, error) {
	if window+probe > A.maxProbe {
		return nil, precondError("SplineAccGrad", "window %g + probe %g exceeds the maximum radius %g set at construction", window, probe, A.maxProbe)
	}
	x, y, z := point.At(0, 0), point.At(0, 1), point.At(0, 2)
	ui, ok := A.grid.locate(x, y, z)
	if !ok {
		return v3.Zeros(1), nil
	}
	closest := -1
	best := math.Inf(1)
	for _, i := range A.grid.bucket(ui) {
		if A.mol.Atom(i).Vdw <= 0 {
			continue
		}
		dx := x - A.coord.At(i, 0)
		dy := y - A.coord.At(i, 1)
		dz := z - A.coord.At(i, 2)
		if d2 := dx*dx + dy*dy + dz*dz; d2 < best {
			best = d2
			closest = i
		}
	}
	if closest < 0 {
		return v3.Zeros(1), nil
	}
	return A.SplineAccAtomGrad(point, window, probe, closest), nil
}

//Method selects which accessibility predicate AccField evaluates.
type Method int

const (
	//MolSurface is the molecular (reentrant) surface test, MolAcc.
	MolSurface Method = iota
	//InflatedVdw is the probe-inflated test, IVdwAcc.
	InflatedVdw
	//HardVdw is the hard-sphere test, VdwAcc. The probe radius is ignored.
	HardVdw
)

//AccField evaluates the chosen predicate at every vector of points and returns
//the values in the same order, one in {0,1} per point. Typical use is
//producing a per-vertex scalar field on an externally generated mesh. The
//evaluation is read-only and spread over the engine's configured number of
//goroutines.
func (A *Acc) AccField(points *v3.Matrix, method Method, probe float64) ([]float64, error) {
	if method != HardVdw && probe > A.maxProbe {
		return nil, precondError("AccField", "probe radius %g exceeds the maximum %g set at construction", probe, A.maxProbe)
	}
	if method != MolSurface && method != InflatedVdw && method != HardVdw {
		return nil, configError("AccField", "unknown accessibility method %d", method)
	}
	n := points.NVecs()
	vals := make([]float64, n)
	cpus := A.cpus
	if cpus > n {
		cpus = n
	}
	if cpus < 1 {
		cpus = 1
	}
	done := make(chan bool, cpus)
	for w := 0; w < cpus; w++ {
		go func(start int) {
			for i := start; i < n; i += cpus {
				x, y, z := points.At(i, 0), points.At(i, 1), points.At(i, 2)
				switch method {
				case MolSurface:
					vals[i] = A.molAcc(x, y, z, probe)
				case InflatedVdw:
					if A.ivdwAccExclus(x, y, z, probe, -1) {
						vals[i] = 1.0
					}
				case HardVdw:
					if A.vdwAcc(x, y, z) {
						vals[i] = 1.0
					}
				}
			}
			done <- true
		}(w)
	}
	for w := 0; w < cpus; w++ {
		<-done
	}
	return vals, nil
}
