/*
 * doc.go, part of gosurf.
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

/*Package surf answers solvent-accessibility queries on molecules. Given a set of
atoms (positions plus van der Waals radii) it builds a cell grid that indexes, for
every cell, the atoms that can affect points inside that cell, and answers point
queries by looking at a single cell.


	**gosurf Capabilities**

    Classifies arbitrary points as inside or outside the van der Waals surface,
	the probe-inflated surface, and the molecular (reentrant) surface.

    Evaluates a C1-continuous smoothed version of the accessibility
	characteristic function, together with its analytic gradient, for solvers
	that need differentiable accessibility.

    Calculates per-atom and total solvent-accessible surface areas (SASA) by
	quadrature over a deterministic sphere point set.

    Evaluates any of the discrete accessibility predicates over a batch of
	external coordinates (e.g. mesh vertices), concurrently.

The binary predicates and the SASA routines are safe for concurrent use on the
same object after construction. The smoothed accessibility functions mutate
internal scratch and need external synchronization (or one object per goroutine).

Coordinates are handled as Nx3 matrices from the gosurf/v3 package. The atom
set and its coordinates are only borrowed by this package: they are never
modified, and they must outlive any object built from them.
*/
package surf
