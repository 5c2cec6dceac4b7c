// Package coverage turns the per-structure residue sets into a
// consensus. Residue numbers are tallied over all structures and only
// those seen in at least a given fraction of them survive.
package coverage

import (
	"fmt"
	"sort"

	"github.com/andrew-torda/matrix"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/site"
)

// DfltCutoff is the default coverage cutoff. A residue has to turn up
// in at least half the structures.
const DfltCutoff float64 = 0.5

// Tally holds the result of aggregating the per-structure sets. The
// occupancy matrix has one row per structure and one column per
// residue ever seen; entry (i,j) is 1 if structure i had residue j in
// its site. Column sums divided by the row count give the coverage
// fractions, which are also what the plot and the chimera attributes
// show.
type Tally struct {
	Residues  []int // every residue ever seen, ascending, = matrix columns
	Occupancy *matrix.FMatrix2d
	Total     int // denominator for the coverage fractions
}

// CheckCutoff validates a coverage cutoff. The computation would
// quietly do something for values outside [0,1], but only something
// meaningless, so we refuse early.
func CheckCutoff(cutoff float64) error {
	if cutoff < 0 || cutoff > 1 {
		return fmt.Errorf("coverage cutoff must be in [0,1], got %g", cutoff)
	}
	return nil
}

// NewTally builds the occupancy matrix from the per-structure sets.
// total is the number of structures the sets came from. It is a
// separate argument since the caller may have skipped unreadable
// structures and gets to decide what the denominator means.
func NewTally(sets []site.ResSet, total int) *Tally {
	union := make(site.ResSet)
	for _, s := range sets {
		for r := range s {
			union[r] = true
		}
	}
	residues := union.Sorted()
	col := make(map[int]int, len(residues))
	for j, r := range residues {
		col[r] = j
	}

	occ := matrix.NewFMatrix2d(len(sets), len(residues))
	for i, s := range sets {
		for r := range s {
			occ.Mat[i][col[r]] = 1
		}
	}
	return &Tally{Residues: residues, Occupancy: occ, Total: total}
}

// Count says how many structures contained residue j (column index).
func (t *Tally) Count(j int) int {
	var n float32
	for i := range t.Occupancy.Mat {
		n += t.Occupancy.Mat[i][j]
	}
	return int(n)
}

// Fractions returns the coverage fraction per residue, in the order
// of t.Residues.
func (t *Tally) Fractions() []float64 {
	ret := make([]float64, len(t.Residues))
	if t.Total == 0 {
		return ret
	}
	for j := range t.Residues {
		ret[j] = float64(t.Count(j)) / float64(t.Total)
	}
	return ret
}

// Consensus returns the residues whose coverage fraction is at least
// cutoff, ascending. With cutoff 0 you get the union, with 1 the
// intersection, and an empty input gives an empty answer.
func (t *Tally) Consensus(cutoff float64) []int {
	ret := make([]int, 0, len(t.Residues))
	fr := t.Fractions()
	for j, r := range t.Residues {
		if t.Total == 0 {
			break
		}
		if fr[j] >= cutoff {
			ret = append(ret, r)
		}
	}
	sort.Ints(ret) // Residues is already sorted, but promise it anyway
	return ret
}

// Consensus is the one-call version for callers who do not want the
// intermediate tally.
func Consensus(sets []site.ResSet, total int, cutoff float64) ([]int, error) {
	if err := CheckCutoff(cutoff); err != nil {
		return nil, err
	}
	return NewTally(sets, total).Consensus(cutoff), nil
}
