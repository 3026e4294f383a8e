/*
 * v3.go, part of gosurf
 *
 * Copyright 2023 Lucas Vidal <lvidal{at}protonDOTme>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package v3 implements matrices of 3D vectors (Nx3 matrices) on top of
//gonum's mat.Dense. Within the package it is understood that a "vector" is
//a row vector, i.e. the cartesian coordinates of a point in 3D space.
package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, backed by a gonum dense matrix
//with 3 columns.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum dense matrix into a Matrix. The matrix must
//have 3 columns, or the function panics.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//NewMatrix builds a Matrix with 3 columns from data, row by row.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//SomeVecs copies the vectors of A with the given indexes, in order, into
//the receiver. The receiver must have exactly len(indexes) vectors.
func (F *Matrix) SomeVecs(A *Matrix, indexes []int) {
	if F.NVecs() != len(indexes) {
		panic(ErrShape)
	}
	for k, i := range indexes {
		for j := 0; j < 3; j++ {
			F.Set(k, j, A.At(i, j))
		}
	}
}

//SetVecs replaces the vectors of the receiver at the given indexes with
//the consecutive vectors of A.
func (F *Matrix) SetVecs(A *Matrix, indexes []int) {
	if A.NVecs() < len(indexes) {
		panic(ErrNotEnoughElements)
	}
	for k, i := range indexes {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(k, j))
		}
	}
}

//Sub puts A-B on the receiver.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Add puts A+B on the receiver.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//AddVec adds the vector vec to each vector of A, putting the result on
//the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 || F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

//SubVec subtracts the vector vec from each vector of A, putting the
//result on the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	if vec.NVecs() != 1 || F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

//Scale puts the matrix A scaled by v on the receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//Dot returns the dot product between the receiver and B, both of which
//must be 1-vector matrices.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrNotXx3Matrix)
	}
	var d float64
	for j := 0; j < 3; j++ {
		d += F.At(0, j) * B.At(0, j)
	}
	return d
}

//Cross puts the cross product of A and B, both 1-vector matrices, on the
//receiver.
func (F *Matrix) Cross(A, B *Matrix) {
	if A.NVecs() != 1 || B.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	ax, ay, az := A.At(0, 0), A.At(0, 1), A.At(0, 2)
	bx, by, bz := B.At(0, 0), B.At(0, 1), B.At(0, 2)
	F.Set(0, 0, ay*bz-az*by)
	F.Set(0, 1, az*bx-ax*bz)
	F.Set(0, 2, ax*by-ay*bx)
}

//Norm returns the ord-norm of the receiver. For a 1-vector matrix the
//2-norm is the euclidean length of the vector.
func (F *Matrix) Norm(ord float64) float64 {
	return mat.Norm(F.Dense, ord)
}

//Unit puts in the receiver the unit vector pointing in the direction of
//A, which must be a 1-vector matrix.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm(2)
	if n == 0 {
		panic(ErrZeroVector)
	}
	F.Scale(1/n, A)
}

//Dist returns the euclidean distance between the 1-vector matrices A and
//B, using tmp (also a 1-vector matrix) as scratch.
func Dist(A, B, tmp *Matrix) float64 {
	tmp.Sub(A, B)
	return tmp.Norm(2)
}

//Copy returns a fresh copy of the receiver.
func (F *Matrix) Copy() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

//Equal tells whether F and B have the same dimensions and elements. Only
//meant for testing, as it performs exact floating point comparisons.
func (F *Matrix) Equal(B *Matrix) bool {
	if F.NVecs() != B.NVecs() {
		return false
	}
	for i := 0; i < F.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			if F.At(i, j) != B.At(i, j) {
				return false
			}
		}
	}
	return true
}

//used to correct floating point errors. Everything with absolute value
//equal or smaller than this is considered zero.
const appzero float64 = 1e-12

//AppEqual tells whether F and B have the same dimensions and elements
//within appzero.
func (F *Matrix) AppEqual(B *Matrix) bool {
	if F.NVecs() != B.NVecs() {
		return false
	}
	for i := 0; i < F.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(F.At(i, j)-B.At(i, j)) > appzero {
				return false
			}
		}
	}
	return true
}

//Errors

//Error is the concrete error type for the v3 package. It is the same as
//surf.Error but redeclared here to avoid a circular import.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice. An empty dec only retrieves the
//current decorations.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//PanicMsg is a message used for panics. It satisfies the error interface,
//but for returned errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("gosurf/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("gosurf/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("gosurf/v3: not enough elements in Matrix")
	ErrZeroVector        = PanicMsg("gosurf/v3: Can't normalize a zero-length vector")
	ErrShape             = PanicMsg("gosurf/v3: Dimension mismatch")
)
