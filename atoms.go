/*
 * atoms.go, part of gosurf.
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

import "fmt"

//Atom contains the time-invariant information for one atom. The coordinates are
//kept separately, in a v3.Matrix, so the same atom set can describe several
//conformations.
type Atom struct {
	Name   string
	ID     int
	Symbol string
	Vdw    float64 //van der Waals radius. A radius of 0 marks the atom as "transparent": it never obstructs any accessibility test.
	Charge float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	at := new(Atom)
	*at = *A
	return at
}

//Atomer is the basic interface for a set of atoms. The index of an atom in the
//set is its identity for every function in this library, and must remain stable
//for the lifetime of any object built from the set.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//AtomList is the simplest concrete Atomer: an ordered slice of atoms.
type AtomList struct {
	atoms []*Atom
}

//NewAtomList builds an AtomList from the given atoms. It returns an error if
//given a nil slice.
func NewAtomList(ats []*Atom) (*AtomList, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil atom slice", []string{"NewAtomList"}}
	}
	return &AtomList{atoms: ats}, nil
}

//Atom returns the Atom corresponding to the index i. Panics if out of range.
func (L *AtomList) Atom(i int) *Atom {
	if i < 0 || i >= L.Len() {
		panic(ErrAtomOutOfRange)
	}
	return L.atoms[i]
}

//SetAtom sets the ith Atom of the list to at. Panics if out of range.
func (L *AtomList) SetAtom(i int, at *Atom) {
	if i < 0 || i >= L.Len() {
		panic(ErrAtomOutOfRange)
	}
	L.atoms[i] = at
}

//AppendAtom appends an atom at the end of the list.
func (L *AtomList) AppendAtom(at *Atom) {
	L.atoms = append(L.atoms, at)
}

//Len returns the number of atoms in the list.
func (L *AtomList) Len() int {
	return len(L.atoms)
}

//SomeAtoms, given a list of indexes, returns a new AtomList with the atoms in
//the corresponding positions, in order. The returned list shares the atoms with
//the original, so changes to them affect both.
func (L *AtomList) SomeAtoms(indexes []int) (*AtomList, error) {
	ret := make([]*Atom, 0, len(indexes))
	for k, i := range indexes {
		if i < 0 || i >= L.Len() {
			return nil, CError{fmt.Sprintf("Atom requested (Number: %d, value: %d) out of range", k, i), []string{"SomeAtoms"}}
		}
		ret = append(ret, L.atoms[i])
	}
	return &AtomList{atoms: ret}, nil
}

//FillVdw assigns van der Waals radii to every atom in the list from its Symbol,
//using the built-in table. Atoms with unknown symbols get a radius of 0 and are
//thus transparent to every accessibility test. It returns the number of atoms
//that could not be assigned.
func (L *AtomList) FillVdw() int {
	missing := 0
	for _, at := range L.atoms {
		r, ok := symbolVdwrad[at.Symbol]
		if !ok {
			missing++
			at.Vdw = 0
			continue
		}
		at.Vdw = r
	}
	return missing
}
