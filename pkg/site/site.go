// Package site finds the residues around a bound ligand in one
// structure. The recipe is the one the original analysis used: take
// the centroid of the ligand's atoms, then keep every residue with at
// least one atom within a distance cutoff of that centroid.
package site

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/cmmn"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/geom"
)

// DfltDistCutoff is the default search radius in Angstrom around the
// ligand centroid.
const DfltDistCutoff float32 = 15

// LigandNotFound is returned when a structure has no residue with the
// wanted ligand name.
type LigandNotFound struct {
	StructID string
	Ligand   string
}

func (e *LigandNotFound) Error() string {
	return fmt.Sprintf("structure %s: no ligand named %q", e.StructID, e.Ligand)
}

// ResSet is a set of residue sequence numbers.
type ResSet map[int]bool

// Sorted returns the members in ascending order.
func (rs ResSet) Sorted() []int {
	ret := make([]int, 0, len(rs))
	for r := range rs {
		ret = append(ret, r)
	}
	sort.Ints(ret)
	return ret
}

// CanonName strips the Biopython style "H_" prefix, so both "LIG" and
// "H_LIG" name the same ligand. The old notebooks used the prefixed
// form, people on the command line never do.
func CanonName(ligName string) string {
	return strings.TrimPrefix(ligName, "H_")
}

// FindLigand looks for the residue with the given name. If more than
// one matches, the first in file order wins and we say so on the
// logger; picking a copy arbitrarily but deterministically beats
// refusing to run on structures with two ligand copies in the
// asymmetric unit.
func FindLigand(s *cmmn.Structure, ligName string, lg *log.Logger) (*cmmn.Residue, error) {
	want := CanonName(ligName)
	var found *cmmn.Residue
	nmatch := 0
	for _, r := range s.AllResidues() {
		if r.Name == want {
			if found == nil {
				found = r
			}
			nmatch++
		}
	}
	if found == nil {
		return nil, &LigandNotFound{StructID: s.ID, Ligand: want}
	}
	if nmatch > 1 && lg != nil {
		lg.Printf("%s: ligand %s matches %d residues, using the first (%d)",
			s.ID, want, nmatch, found.SeqNum)
	}
	return found, nil
}

// NearResidues gives the binding site of one structure: the sequence
// numbers of every residue with an atom within distCutoff of the
// ligand centroid. The ligand itself, any other copy of it, and
// solvent are never candidates. An empty set is a valid answer, not
// an error; a ligand dangling in solvent just has no neighbours.
func NearResidues(s *cmmn.Structure, ligName string, distCutoff float32,
	lg *log.Logger) (ResSet, error) {
	if distCutoff <= 0 {
		return nil, fmt.Errorf("distance cutoff must be positive, got %g", distCutoff)
	}
	lig, err := FindLigand(s, ligName, lg)
	if err != nil {
		return nil, err
	}
	centroid, err := geom.Centroid(lig.Atoms)
	if err != nil {
		return nil, fmt.Errorf("structure %s ligand %s: %w", s.ID, lig.Name, err)
	}

	want := CanonName(ligName)
	ret := make(ResSet)
	for _, r := range s.AllResidues() {
		if r.Name == want || r.IsSolvent() {
			continue
		}
		if geom.WithinCutoff(r.Atoms, centroid, distCutoff) {
			ret[r.SeqNum] = true
		}
	}
	return ret, nil
}
