/*
 * grid.go, part of gosurf.
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

	v3 "github.com/lvidal/gosurf/v3"
)

//BoundingBox is an axis-aligned box in the coordinate frame of the atoms, used
//to focus a grid on a sub-region (e.g. for nested, refined calculations).
type BoundingBox struct {
	Min [3]float64
	Max [3]float64
}

//The constants inflating the grid so that every atom's worst-case inflated
//sphere is covered by cells: 2.84 > 2*sqrt(2) for the total extent and
//1.42 > sqrt(2) for the margin on each side.
const (
	gridInflation = 2.84
	gridMargin    = 1.42
)

//cellGrid indexes which atoms can affect accessibility queries inside each of
//its cells. An atom index appears in a cell's bucket iff the sphere of radius
//(vdW radius + maxProbe) around the atom touches the cell's closed box. By
//construction a point query only ever needs the bucket of the single cell
//containing the point. Buckets are stored compressed-sparse-row style: one flat
//arena of atom indexes plus a per-cell offset table. Immutable once built.
type cellGrid struct {
	nx, ny, nz int
	hx, hy, hz float64
	lower      [3]float64
	off        []int //len nx*ny*nz+1; bucket for cell ui is atoms[off[ui]:off[ui+1]]
	atoms      []int //atom indexes, ascending within each bucket
}

//coveredRange returns the inclusive range of cell indexes along one axis
//touched by the interval [c-rtot, c+rtot], where c is already relative to the
//grid's lower corner, clamped to [0, dim-1]. The returned range may be empty
//(lo > hi) for atoms entirely outside a focused grid. The ranges are only
//candidates: a corner cell of the product range can miss the sphere itself,
//which cellSphereOverlap weeds out.
func coveredRange(c, rtot, h float64, dim int) (lo, hi int) {
	lo = int(math.Floor((c - rtot) / h))
	hi = int(math.Floor((c + rtot) / h))
	if lo < 0 {
		lo = 0
	}
	if hi > dim-1 {
		hi = dim - 1
	}
	return lo, hi
}

//newCellGrid builds the cell index for the given coordinates and atom set,
//provisioned so that any probe radius up to maxProbe can be queried. If focus
//is nil the box is derived from the coordinate extents; otherwise the given
//box is used, and atoms outside it are still indexed in the border cells their
//inflated spheres reach.
func newCellGrid(coord *v3.Matrix, mol Atomer, maxProbe float64, nx, ny, nz int, focus *BoundingBox) (*cellGrid, error) {
	if nx < 3 || ny < 3 || nz < 3 {
		return nil, configError("newCellGrid", "grid dimensions must be at least 3, got %d x %d x %d", nx, ny, nz)
	}
	natoms := mol.Len()
	if coord == nil || natoms == 0 {
		return nil, configError("newCellGrid", "need at least one atom with coordinates")
	}
	if coord.NVecs() != natoms {
		return nil, configError("newCellGrid", "coordinates for %d atoms but atom set has %d", coord.NVecs(), natoms)
	}
	if maxProbe < 0 {
		return nil, configError("newCellGrid", "negative maximum probe radius %g", maxProbe)
	}

	var box BoundingBox
	if focus != nil {
		box = *focus
	} else {
		for j := 0; j < 3; j++ {
			box.Min[j] = math.Inf(1)
			box.Max[j] = math.Inf(-1)
		}
		for i := 0; i < natoms; i++ {
			for j := 0; j < 3; j++ {
				c := coord.At(i, j)
				if c < box.Min[j] {
					box.Min[j] = c
				}
				if c > box.Max[j] {
					box.Max[j] = c
				}
			}
		}
	}
	rmax := 0.0
	for i := 0; i < natoms; i++ {
		if r := mol.Atom(i).Vdw; r > rmax {
			rmax = r
		}
	}

	pad := rmax + maxProbe
	g := &cellGrid{nx: nx, ny: ny, nz: nz}
	g.hx = (box.Max[0] - box.Min[0] + gridInflation*pad) / float64(nx-1)
	g.hy = (box.Max[1] - box.Min[1] + gridInflation*pad) / float64(ny-1)
	g.hz = (box.Max[2] - box.Min[2] + gridInflation*pad) / float64(nz-1)
	for j := 0; j < 3; j++ {
		g.lower[j] = box.Min[j] - gridMargin*pad
	}
	//happens when every radius, the maximum probe and the coordinate extents
	//are all zero; locate would divide by zero
	if g.hx <= 0 || g.hy <= 0 || g.hz <= 0 {
		return nil, configError("newCellGrid", "grid has zero extent: no atom radii, no probe and no spread in the coordinates")
	}

	//Two passes: count the atoms touching each cell, turn the counts into CSR
	//offsets, then re-scan the atoms in index order filling the arena, which
	//leaves every bucket sorted by atom index.
	n := nx * ny * nz
	counts := make([]int, n)
	for i := 0; i < natoms; i++ {
		x := coord.At(i, 0) - g.lower[0]
		y := coord.At(i, 1) - g.lower[1]
		z := coord.At(i, 2) - g.lower[2]
		rtot := mol.Atom(i).Vdw + maxProbe
		ilo, ihi := coveredRange(x, rtot, g.hx, nx)
		jlo, jhi := coveredRange(y, rtot, g.hy, ny)
		klo, khi := coveredRange(z, rtot, g.hz, nz)
		for ii := ilo; ii <= ihi; ii++ {
			for jj := jlo; jj <= jhi; jj++ {
				for kk := klo; kk <= khi; kk++ {
					if !g.cellSphereOverlap(x, y, z, rtot, ii, jj, kk) {
						continue
					}
					counts[nz*ny*ii+nz*jj+kk]++
				}
			}
		}
	}
	g.off = make([]int, n+1)
	for i := 0; i < n; i++ {
		g.off[i+1] = g.off[i] + counts[i]
		counts[i] = 0 //reused as per-cell fill cursor below
	}
	g.atoms = make([]int, g.off[n])
	for i := 0; i < natoms; i++ {
		x := coord.At(i, 0) - g.lower[0]
		y := coord.At(i, 1) - g.lower[1]
		z := coord.At(i, 2) - g.lower[2]
		rtot := mol.Atom(i).Vdw + maxProbe
		ilo, ihi := coveredRange(x, rtot, g.hx, nx)
		jlo, jhi := coveredRange(y, rtot, g.hy, ny)
		klo, khi := coveredRange(z, rtot, g.hz, nz)
		for ii := ilo; ii <= ihi; ii++ {
			for jj := jlo; jj <= jhi; jj++ {
				for kk := klo; kk <= khi; kk++ {
					if !g.cellSphereOverlap(x, y, z, rtot, ii, jj, kk) {
						continue
					}
					ui := nz*ny*ii + nz*jj + kk
					g.atoms[g.off[ui]+counts[ui]] = i
					counts[ui]++
				}
			}
		}
	}
	return g, nil
}

func axisDist2(c, lo, hi float64) float64 {
	if c < lo {
		return (lo - c) * (lo - c)
	}
	if c > hi {
		return (c - hi) * (c - hi)
	}
	return 0
}

//cellSphereOverlap tells whether the sphere of radius rtot centered at
//(x, y, z), all relative to the grid's lower corner, touches the closed box of
//the cell with grid coordinates i, j, k.
func (g *cellGrid) cellSphereOverlap(x, y, z, rtot float64, i, j, k int) bool {
	d2 := axisDist2(x, float64(i)*g.hx, float64(i+1)*g.hx) +
		axisDist2(y, float64(j)*g.hy, float64(j+1)*g.hy) +
		axisDist2(z, float64(k)*g.hz, float64(k+1)*g.hz)
	return d2 <= rtot*rtot
}

//locate converts a point to the natural index of the cell containing it. The
//second return value is false if the point is outside the grid on any axis,
//which callers treat as "definitely accessible".
func (g *cellGrid) locate(x, y, z float64) (int, bool) {
	i := int(math.Floor((x - g.lower[0]) / g.hx))
	j := int(math.Floor((y - g.lower[1]) / g.hy))
	k := int(math.Floor((z - g.lower[2]) / g.hz))
	if i < 0 || i >= g.nx || j < 0 || j >= g.ny || k < 0 || k >= g.nz {
		return 0, false
	}
	return g.nz*g.ny*i + g.nz*j + k, true
}

//bucket returns a read-only view of the atom indexes whose inflated spheres
//can reach the cell with natural index ui.
func (g *cellGrid) bucket(ui int) []int {
	if ui < 0 || ui+1 >= len(g.off) {
		panic(ErrCellOutOfRange)
	}
	return g.atoms[g.off[ui]:g.off[ui+1]]
}

//cellBox returns the bounds of the cell with grid coordinates i, j, k.
func (g *cellGrid) cellBox(i, j, k int) (min, max [3]float64) {
	min[0] = g.lower[0] + float64(i)*g.hx
	min[1] = g.lower[1] + float64(j)*g.hy
	min[2] = g.lower[2] + float64(k)*g.hz
	max[0] = min[0] + g.hx
	max[1] = min[1] + g.hy
	max[2] = min[2] + g.hz
	return min, max
}
