package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("NewMatrix accepted a slice with length not divisible by 3")
	}
	m, err := NewMatrix([]float64{1, 0, 0, 0, 2, 0})
	if err != nil {
		Te.Error(err)
	}
	if m.NVecs() != 2 {
		Te.Errorf("Wrong number of vectors: %d", m.NVecs())
	}
}

func TestVecViewAliases(Te *testing.T) {
	m, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	v := m.VecView(1)
	v.Set(0, 0, 40)
	if m.At(1, 0) != 40 {
		Te.Error("VecView does not alias the original matrix")
	}
}

func TestSubNorm(Te *testing.T) {
	a, _ := NewMatrix([]float64{1, 2, 2})
	b := Zeros(1)
	d := Zeros(1)
	d.Sub(a, b)
	if math.Abs(d.Norm(2)-3.0) > appzero {
		Te.Errorf("Wrong norm: %f", d.Norm(2))
	}
	if math.Abs(Dist(a, b, d)-3.0) > appzero {
		Te.Errorf("Wrong distance: %f", Dist(a, b, d))
	}
}

func TestCross(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	want, _ := NewMatrix([]float64{0, 0, 1})
	if !z.AppEqual(want) {
		Te.Errorf("Wrong cross product: %v", z)
	}
	if math.Abs(x.Dot(y)) > appzero {
		Te.Error("Orthogonal vectors should have zero dot product")
	}
}

func TestSomeVecs(Te *testing.T) {
	m, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3})
	s := Zeros(2)
	s.SomeVecs(m, []int{2, 0})
	if s.At(0, 0) != 3 || s.At(1, 2) != 1 {
		Te.Error("SomeVecs copied the wrong vectors")
	}
}
