package surf

import (
	"testing"
)

func TestFillVdw(Te *testing.T) {
	ats := []*Atom{
		{Name: "CA", ID: 1, Symbol: "C"},
		{Name: "O", ID: 2, Symbol: "O"},
		{Name: "XX", ID: 3, Symbol: "Xx"}, //not a known element
	}
	mol, err := NewAtomList(ats)
	if err != nil {
		Te.Fatal(err)
	}
	missing := mol.FillVdw()
	if missing != 1 {
		Te.Errorf("Expected 1 atom without a tabulated radius, got %d", missing)
	}
	if mol.Atom(0).Vdw <= 0 || mol.Atom(1).Vdw <= 0 {
		Te.Error("Known elements didn't get a radius")
	}
	//unknown elements stay transparent
	if mol.Atom(2).Vdw != 0 {
		Te.Errorf("Unknown element got radius %g", mol.Atom(2).Vdw)
	}
}

func TestSomeAtoms(Te *testing.T) {
	ats := []*Atom{
		{Name: "N", ID: 1, Symbol: "N", Vdw: 1.55},
		{Name: "CA", ID: 2, Symbol: "C", Vdw: 1.7},
		{Name: "O", ID: 3, Symbol: "O", Vdw: 1.52},
	}
	mol, err := NewAtomList(ats)
	if err != nil {
		Te.Fatal(err)
	}
	sub, err := mol.SomeAtoms([]int{2, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if sub.Len() != 2 || sub.Atom(0).Symbol != "O" || sub.Atom(1).Symbol != "N" {
		Te.Error("Wrong subset of atoms")
	}
	if _, err := mol.SomeAtoms([]int{5}); err == nil {
		Te.Error("Accepted an out-of-range index")
	}
}
