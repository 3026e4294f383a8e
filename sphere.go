/*
 * sphere.go, part of gosurf.
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

//UnitSphere returns an approximately uniform, fully deterministic set of points
//on the unit sphere, and the number of points produced. Points are placed on
//rings of constant latitude, with the number of points per ring proportional to
//its circumference, so the actual count normally differs a bit from targetCount.
//Rings that round to zero points (the poles) are skipped, but the set is never
//empty: targets too small for any ring yield a single pole point. There is no
//randomness involved: the same targetCount always yields the same point set,
//which makes every quadrature built on it reproducible.
func UnitSphere(targetCount int) (*v3.Matrix, int) {
	if targetCount < 1 {
		targetCount = 1
	}
	ntheta := int(math.Round(math.Sqrt(math.Pi * float64(targetCount) / 4.0)))
	if ntheta < 1 {
		ntheta = 1
	}
	dtheta := math.Pi / float64(ntheta)
	nphimax := 2 * ntheta

	//First count the actual number of points to be used.
	nactual := 0
	for itheta := 0; itheta < ntheta; itheta++ {
		theta := dtheta * float64(itheta)
		nactual += int(math.Round(math.Sin(theta) * float64(nphimax)))
	}
	//for very small targets every ring rounds to zero points; fall back to a
	//single pole point rather than returning an empty set
	if nactual == 0 {
		points := v3.Zeros(1)
		points.Set(0, 2, 1.0)
		return points, 1
	}

	points := v3.Zeros(nactual)
	n := 0
	for itheta := 0; itheta < ntheta; itheta++ {
		theta := dtheta * float64(itheta)
		sintheta := math.Sin(theta)
		costheta := math.Cos(theta)
		nphi := int(math.Round(sintheta * float64(nphimax)))
		if nphi == 0 {
			continue
		}
		dphi := 2 * math.Pi / float64(nphi)
		for iphi := 0; iphi < nphi; iphi++ {
			phi := dphi * float64(iphi)
			points.Set(n, 0, math.Cos(phi)*sintheta)
			points.Set(n, 1, math.Sin(phi)*sintheta)
			points.Set(n, 2, costheta)
			n++
		}
	}
	return points, nactual
}
