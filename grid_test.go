package surf

import (
	"math"
	"sort"
	"testing"

	v3 "github.com/lvidal/gosurf/v3"
)

//testSystem builds coordinates and an atom list from flat data. Radii are
//assigned as given; everything else is filler.
func testSystem(coords, radii []float64) (*v3.Matrix, *AtomList) {
	m, err := v3.NewMatrix(coords)
	if err != nil {
		panic(err.Error())
	}
	ats := make([]*Atom, len(radii))
	for i, r := range radii {
		ats[i] = &Atom{Name: "X", ID: i + 1, Symbol: "C", Vdw: r}
	}
	mol, err := NewAtomList(ats)
	if err != nil {
		panic(err.Error())
	}
	return m, mol
}

//scatteredSystem places natoms atoms on a deterministic, irregular cloud, with
//radii cycling through a few values. Atom 7 (if present) gets radius 0.
func scatteredSystem(natoms int) (*v3.Matrix, *AtomList) {
	coords := make([]float64, 0, natoms*3)
	radii := make([]float64, 0, natoms)
	for i := 0; i < natoms; i++ {
		fi := float64(i)
		coords = append(coords, 7*math.Sin(fi*1.7), 6*math.Cos(fi*2.3)+0.4*fi, 0.8*fi-8+3*math.Sin(fi))
		radii = append(radii, 1.0+0.5*math.Mod(fi, 3))
	}
	if natoms > 7 {
		radii[7] = 0
	}
	return testSystem(coords, radii)
}

func TestGridDims(Te *testing.T) {
	coord, mol := testSystem([]float64{0, 0, 0}, []float64{2.0})
	o := DefaultOptions()
	o.Dims([3]int{2, 5, 5})
	_, err := NewAcc(coord, mol, 1.4, o)
	if err == nil {
		Te.Fatal("Accepted a grid with a dimension smaller than 3")
	}
	if _, ok := err.(ConfigError); !ok {
		Te.Errorf("Expected a ConfigError, got %T: %v", err, err)
	}
}

//All-zero radii, a zero probe and coincident coordinates leave the grid with
//no extent at all; that must be rejected rather than produce NaN cell indexes.
func TestZeroExtentGrid(Te *testing.T) {
	coord, mol := testSystem(
		[]float64{0, 0, 0, 0, 0, 0},
		[]float64{0, 0},
	)
	_, err := NewAcc(coord, mol, 0)
	if err == nil {
		Te.Fatal("Accepted a grid with zero extent on every axis")
	}
	if _, ok := err.(ConfigError); !ok {
		Te.Errorf("Expected a ConfigError, got %T: %v", err, err)
	}
}

//TestBucketInvariant checks, by brute force, that an atom index is in a cell's
//bucket exactly when the atom's (vdW+maxProbe) sphere touches the cell's
//closed box.
func TestBucketInvariant(Te *testing.T) {
	const maxProbe = 1.4
	coord, mol := scatteredSystem(25)
	g, err := newCellGrid(coord, mol, maxProbe, 9, 8, 7, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < g.nx; i++ {
		for j := 0; j < g.ny; j++ {
			for k := 0; k < g.nz; k++ {
				ui := g.nz*g.ny*i + g.nz*j + k
				bucket := g.bucket(ui)
				if !sort.IntsAreSorted(bucket) {
					Te.Fatalf("Bucket for cell %d not in ascending atom order: %v", ui, bucket)
				}
				bmin, bmax := g.cellBox(i, j, k)
				for at := 0; at < mol.Len(); at++ {
					rtot := mol.Atom(at).Vdw + maxProbe
					//squared distance from the atom center to the closest
					//point of the cell box
					d2 := 0.0
					for ax := 0; ax < 3; ax++ {
						c := coord.At(at, ax)
						if c < bmin[ax] {
							d2 += (bmin[ax] - c) * (bmin[ax] - c)
						} else if c > bmax[ax] {
							d2 += (c - bmax[ax]) * (c - bmax[ax])
						}
					}
					intersects := d2 <= rtot*rtot
					inBucket := false
					for _, b := range bucket {
						if b == at {
							inBucket = true
							break
						}
					}
					if intersects != inBucket {
						Te.Errorf("Cell (%d,%d,%d), atom %d: sphere-box intersection %v but bucket membership %v", i, j, k, at, intersects, inBucket)
					}
				}
			}
		}
	}
}

func TestLocate(Te *testing.T) {
	coord, mol := scatteredSystem(10)
	g, err := newCellGrid(coord, mol, 1.4, 5, 5, 5, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//A point well outside the grid is not located.
	if _, ok := g.locate(1e6, 0, 0); ok {
		Te.Error("Located a point far outside the grid")
	}
	if _, ok := g.locate(g.lower[0]-0.001, g.lower[1]+0.1, g.lower[2]+0.1); ok {
		Te.Error("Located a point just below the lower corner")
	}
	//Every atom center must be on the grid (the box is derived from them).
	for i := 0; i < mol.Len(); i++ {
		ui, ok := g.locate(coord.At(i, 0), coord.At(i, 1), coord.At(i, 2))
		if !ok {
			Te.Fatalf("Atom %d center not on the grid", i)
		}
		//and its own cell must index it
		found := false
		for _, b := range g.bucket(ui) {
			if b == i {
				found = true
				break
			}
		}
		if !found {
			Te.Errorf("Atom %d missing from the bucket of its own cell", i)
		}
	}
}

//TestFocusGrid builds a grid restricted to a sub-box and checks that queries
//inside it agree with an unrestricted grid.
func TestFocusGrid(Te *testing.T) {
	coord, mol := scatteredSystem(25)
	focus := &BoundingBox{Min: [3]float64{-2, -2, -2}, Max: [3]float64{2, 2, 2}}
	o := DefaultOptions()
	o.Dims([3]int{6, 6, 6})
	o.Focus(focus)
	A, err := NewAcc(coord, mol, 1.4, o)
	if err != nil {
		Te.Fatal(err)
	}
	full, err := NewAcc(coord, mol, 1.4)
	if err != nil {
		Te.Fatal(err)
	}
	//Inside the focus box both grids must agree on the hard-sphere test.
	for x := -1.5; x <= 1.5; x += 0.75 {
		for y := -1.5; y <= 1.5; y += 0.75 {
			p, _ := v3.NewMatrix([]float64{x, y, 0})
			if A.VdwAcc(p) != full.VdwAcc(p) {
				Te.Errorf("Focused and full grid disagree at (%g,%g,0)", x, y)
			}
		}
	}
}
