package surf

import (
	"fmt"
	"math"
	"testing"
)

//An atom with nothing around it keeps its full inflated sphere area.
func TestIsolatedAtomSASA(Te *testing.T) {
	coord, mol := testSystem([]float64{0, 0, 0}, []float64{2.0})
	A, err := NewAcc(coord, mol, 1.4)
	if err != nil {
		Te.Fatal(err)
	}
	want := 4 * math.Pi * 3.4 * 3.4
	got, err := A.AtomSASA(0, 1.4)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(got-want) > 1e-9 {
		Te.Errorf("Isolated atom: expected the full sphere area %.10g, got %.10g", want, got)
	}
	total, err := A.TotalSASA(1.4)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(total-want) > 1e-9 {
		Te.Errorf("Total for a single atom: expected %.10g, got %.10g", want, total)
	}
	areas := A.Areas()
	if len(areas) != 1 || math.Abs(areas[0]-want) > 1e-9 {
		Te.Errorf("Cached areas don't match: %v", areas)
	}
}

//A small atom fully inside a larger one contributes nothing, and doesn't take
//anything from its host either: every sample of the host's inflated sphere
//stays outside the small atom's inflated sphere.
func TestBuriedAtomSASA(Te *testing.T) {
	coord, mol := testSystem(
		[]float64{0, 0, 0, 0, 0, 0},
		[]float64{2.0, 1.0},
	)
	A, err := NewAcc(coord, mol, 1.4)
	if err != nil {
		Te.Fatal(err)
	}
	buried, err := A.AtomSASA(1, 1.4)
	if err != nil {
		Te.Fatal(err)
	}
	if buried != 0.0 {
		Te.Errorf("Fully buried atom has nonzero SASA %g", buried)
	}
	full := 4 * math.Pi * 3.4 * 3.4
	total, err := A.TotalSASA(1.4)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(total-full) > 1e-9 {
		Te.Errorf("Total with a buried atom: expected the host's area %.10g, got %.10g", full, total)
	}
}

//Two overlapping atoms each lose part of their sphere, but not all of it.
func TestOverlapSASA(Te *testing.T) {
	coord, mol := testSystem(
		[]float64{0, 0, 0, 3, 0, 0},
		[]float64{2.0, 2.0},
	)
	A, err := NewAcc(coord, mol, 1.4)
	if err != nil {
		Te.Fatal(err)
	}
	full := 4 * math.Pi * 3.4 * 3.4
	total, err := A.TotalSASA(1.4)
	if err != nil {
		Te.Fatal(err)
	}
	if total >= 2*full {
		Te.Errorf("Overlapping atoms kept their full areas: %g", total)
	}
	if total <= full {
		Te.Errorf("Overlapping atoms lost too much area: %g", total)
	}
	for i, a := range A.Areas() {
		if a <= 0 || a >= full {
			Te.Errorf("Atom %d area %g out of the open interval (0, %g)", i, a, full)
		}
	}
	fmt.Println("two-atom total SASA:", total)
}

func TestConcTotalSASA(Te *testing.T) {
	coord, mol := scatteredSystem(25)
	o := DefaultOptions()
	o.Cpus(3)
	A, err := NewAcc(coord, mol, 1.4, o)
	if err != nil {
		Te.Fatal(err)
	}
	seq, err := A.TotalSASA(1.4)
	if err != nil {
		Te.Fatal(err)
	}
	seqAreas := A.Areas()
	conc, err := A.ConcTotalSASA(1.4)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(seq-conc) > 1e-12 {
		Te.Errorf("Sequential total %.17g but concurrent total %.17g", seq, conc)
	}
	for i, a := range A.Areas() {
		if a != seqAreas[i] {
			Te.Errorf("Atom %d: sequential area %g, concurrent area %g", i, seqAreas[i], a)
		}
	}
}

func TestSASAErrors(Te *testing.T) {
	coord, mol := testSystem([]float64{0, 0, 0}, []float64{2.0})
	A, err := NewAcc(coord, mol, 1.4)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := A.AtomSASA(0, 2.0); err == nil {
		Te.Error("AtomSASA accepted a probe larger than the construction maximum")
	} else if _, ok := err.(PreconditionError); !ok {
		Te.Errorf("Expected a PreconditionError, got %T: %v", err, err)
	}
	if _, err := A.AtomSASA(-1, 1.4); err == nil {
		Te.Error("AtomSASA accepted a negative atom index")
	}
	if _, err := A.AtomSASA(1, 1.4); err == nil {
		Te.Error("AtomSASA accepted an out-of-range atom index")
	}
	if _, err := A.ConcTotalSASA(2.0); err == nil {
		Te.Error("ConcTotalSASA accepted a probe larger than the construction maximum")
	}
}
