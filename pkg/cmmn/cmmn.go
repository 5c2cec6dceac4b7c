// Package cmmn has the common definitions for coordinates and
// structures. Everything downstream (reading, site extraction,
// coverage counting) works on these types.
package cmmn

import (
	"math"
)

type Xyz struct{ X, Y, Z float32 }
type XyzSl []Xyz // xyz's are coordinates

var BrokenXyz = Xyz{math.MaxFloat32, 0, -math.MaxFloat32}

var BrokenResNum int = -9999

func (xyz *Xyz) Ok() bool {
	if *xyz != BrokenXyz {
		return true
	}
	return false
}

// A Residue is one residue from a structure with all of its atom
// coordinates. Het says whether it came from a HETATM record (ligands,
// ions, waters) rather than the polymer.
type Residue struct {
	Name    string // three letter name like "CYS" or a het code like "LIG"
	SeqNum  int    // residue number from the file. Not a real index
	InsCode byte   // insertion code, ' ' if none
	Het     bool
	Atoms   XyzSl
}

// A Chain is one chain from one model.
type Chain struct {
	ChainID  string // Name, like "A" or "B"
	MdlNum   int16  // Model number
	Residues []Residue
}

// A Structure is everything we keep from one file.
type Structure struct {
	ID     string // usually the four letter acquisition code or file base
	Path   string // where it came from, for error messages
	Chains []Chain
}

// This is obviously just a slice of chains, but we have to define a type
// if we want to define a method on it
type ChnSl []Chain

// ChainNames returns a slice with the names of the chains.
func (chns ChnSl) ChainNames() (ret []string) {
	ret = make([]string, 0, len(chns))
	for _, k := range chns {
		ret = append(ret, k.ChainID)
	}
	return
}

// AllResidues walks every chain and hands back the residues in file
// order. The slice elements are indices into the original chains, so
// the caller may not hang on to them across a reread.
func (s *Structure) AllResidues() []*Residue {
	n := 0
	for i := range s.Chains {
		n += len(s.Chains[i].Residues)
	}
	ret := make([]*Residue, 0, n)
	for i := range s.Chains {
		for j := range s.Chains[i].Residues {
			ret = append(ret, &s.Chains[i].Residues[j])
		}
	}
	return ret
}

// NAtoms counts the valid atoms in a structure.
func (s *Structure) NAtoms() int {
	var n int
	for _, r := range s.AllResidues() {
		for i := range r.Atoms {
			if r.Atoms[i].Ok() {
				n++
			}
		}
	}
	return n
}

// solventNames is the set of residue names we treat as solvent. The
// original analysis only ever saw crystallographic waters, but the
// deuterated and coarse-grained names cost nothing.
var solventNames = map[string]bool{
	"HOH": true, "WAT": true, "DOD": true, "H2O": true, "SOL": true,
}

// IsSolvent says whether a residue counts as solvent. Solvent is never
// a binding site candidate.
func (r *Residue) IsSolvent() bool {
	return solventNames[r.Name]
}
