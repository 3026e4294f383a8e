/*
 * sasa.go, part of gosurf.
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

	"gonum.org/v1/gonum/floats"
)

//AtomSASA returns the contribution of one atom to the probe-centered
//solvent-accessible surface area, for the given probe (solvent) radius: the
//fraction of quadrature points on the sphere of radius (vdW+probe) around the
//atom that are outside every other atom's inflated sphere, scaled by the full
//sphere area 4*pi*(vdW+probe)^2. The atom itself is excluded from the test, so
//a lone atom always gets its full sphere area.
func (A *Acc) AtomSASA(atom int, probe float64) (float64, error) {
	if probe > A.maxProbe {
		return 0, precondError("AtomSASA", "probe radius %g exceeds the maximum %g set at construction", probe, A.maxProbe)
	}
	if atom < 0 || atom >= A.mol.Len() {
		return 0, precondError("AtomSASA", "atom index %d out of range (have %d atoms)", atom, A.mol.Len())
	}
	x := A.coord.At(atom, 0)
	y := A.coord.At(atom, 1)
	z := A.coord.At(atom, 2)
	rtot := A.mol.Atom(atom).Vdw + probe
	accessible := 0
	for ip := 0; ip < A.nsphere; ip++ {
		sx := rtot*A.sphere.At(ip, 0) + x
		sy := rtot*A.sphere.At(ip, 1) + y
		sz := rtot*A.sphere.At(ip, 2) + z
		if A.ivdwAccExclus(sx, sy, sz, probe, atom) {
			accessible++
		}
	}
	return float64(accessible) / float64(A.nsphere) * 4.0 * math.Pi * rtot * rtot, nil
}

//TotalSASA returns the probe-centered solvent-accessible surface area of the
//whole atom set, caching each atom's contribution (see Areas). It mutates the
//cache, so it must not race with itself or with Areas on the same Acc.
func (A *Acc) TotalSASA(probe float64) (float64, error) {
	for i := 0; i < A.mol.Len(); i++ {
		a, err := A.AtomSASA(i, probe)
		if err != nil {
			if err2, ok := err.(Error); ok {
				err2.Decorate("TotalSASA")
			}
			return 0, err
		}
		A.area[i] = a
	}
	return floats.Sum(A.area), nil
}

//ConcTotalSASA is TotalSASA computed by the engine's configured number of
//goroutines. The per-atom test path is read-only and each worker fills a
//disjoint set of cache slots, so the workers don't race; the call as a whole
//still mutates the cache like TotalSASA does.
func (A *Acc) ConcTotalSASA(probe float64) (float64, error) {
	if probe > A.maxProbe {
		return 0, precondError("ConcTotalSASA", "probe radius %g exceeds the maximum %g set at construction", probe, A.maxProbe)
	}
	natoms := A.mol.Len()
	cpus := A.cpus
	if cpus > natoms {
		cpus = natoms
	}
	if cpus < 1 {
		cpus = 1
	}
	done := make(chan bool, cpus)
	for w := 0; w < cpus; w++ {
		go func(start int) {
			for i := start; i < natoms; i += cpus {
				a, _ := A.AtomSASA(i, probe) //can't fail: probe and index are already validated
				A.area[i] = a
			}
			done <- true
		}(w)
	}
	for w := 0; w < cpus; w++ {
		<-done
	}
	return floats.Sum(A.area), nil
}

//Areas returns a copy of the per-atom areas cached by the last call to
//TotalSASA or ConcTotalSASA, in atom order. Before any such call, all zeros.
func (A *Acc) Areas() []float64 {
	ret := make([]float64, len(A.area))
	copy(ret, A.area)
	return ret
}
