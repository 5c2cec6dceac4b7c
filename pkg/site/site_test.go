package site_test

import (
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/cmmn"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/pdb"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/pdb/pdbtest"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/site"
)

// readTest builds a structure from synthetic atoms via the real file
// reader, so the whole path from text to residue set is exercised.
func readTest(t *testing.T, atoms []pdbtest.TAtom) *cmmn.Structure {
	t.Helper()
	fname, err := pdbtest.WriteFile(t.TempDir(), "s.pdb", pdbtest.PDBText(atoms))
	if err != nil {
		t.Fatal(err)
	}
	s, err := pdb.ReadStructure(fname)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNearResidues(t *testing.T) {
	// residues 10..13 at 5, 10, 15 and 20 Angstrom from the ligand
	s := readTest(t, pdbtest.SiteAtoms("LIG", 10, 5, 10, 15, 20))
	got, err := site.NearResidues(s, "LIG", 15, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{10, 11, 12} // 20 A is out, 15 A is on the boundary and in
	if diff := cmp.Diff(want, got.Sorted()); diff != "" {
		t.Fatalf("site members wrong (-want +got):\n%s", diff)
	}
}

// TestBiopythonName checks that the notebook style H_LIG spelling
// selects the same ligand.
func TestBiopythonName(t *testing.T) {
	s := readTest(t, pdbtest.SiteAtoms("LIG", 10, 5))
	a, err := site.NearResidues(s, "LIG", 15, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := site.NearResidues(s, "H_LIG", 15, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Sorted(), b.Sorted()); diff != "" {
		t.Fatalf("H_LIG and LIG disagree:\n%s", diff)
	}
}

func TestSolventExcluded(t *testing.T) {
	// the water in SiteAtoms sits 1 A from the ligand, well inside
	s := readTest(t, pdbtest.SiteAtoms("LIG", 10, 5))
	got, err := site.NearResidues(s, "LIG", 15, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got.Sorted() {
		if r == 950 {
			t.Fatal("water residue made it into the site")
		}
	}
}

func TestEmptySite(t *testing.T) {
	// all residues far away: an empty set, not an error
	s := readTest(t, pdbtest.SiteAtoms("LIG", 10, 100, 200))
	got, err := site.NearResidues(s, "LIG", 15, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("wanted empty site, got %v", got.Sorted())
	}
}

func TestLigandNotFound(t *testing.T) {
	s := readTest(t, pdbtest.SiteAtoms("LIG", 10, 5))
	_, err := site.NearResidues(s, "XYZ", 15, nil)
	var lnf *site.LigandNotFound
	if !errors.As(err, &lnf) {
		t.Fatalf("wanted LigandNotFound, got %v", err)
	}
	if lnf.Ligand != "XYZ" {
		t.Errorf("error names wrong ligand: %v", lnf)
	}
}

// TestAmbiguousLigand has two copies of the ligand. The first must be
// used and a warning logged.
func TestAmbiguousLigand(t *testing.T) {
	atoms := pdbtest.SiteAtoms("LIG", 10, 5)
	atoms = append(atoms,
		pdbtest.TAtom{Het: true, Name: "C1", Res: "LIG", Chain: 'A', Seq: 901, X: 500})
	s := readTest(t, atoms)
	var sb strings.Builder
	lg := log.New(&sb, "", 0)
	got, err := site.NearResidues(s, "LIG", 15, lg)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 { // only residue 10 is near the first copy
		t.Fatalf("ambiguous ligand: wanted 1 residue, got %v", got.Sorted())
	}
	if !strings.Contains(sb.String(), "matches 2") {
		t.Errorf("no warning about the two ligand copies: %q", sb.String())
	}
}

// TestDistMonotonic grows the cutoff and checks the site never
// shrinks.
func TestDistMonotonic(t *testing.T) {
	s := readTest(t, pdbtest.SiteAtoms("LIG", 10, 3, 7, 11, 16, 23))
	prev := -1
	for _, cutoff := range []float32{1, 5, 9, 13, 18, 30} {
		got, err := site.NearResidues(s, "LIG", cutoff, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) < prev {
			t.Fatalf("site shrank when cutoff grew to %g", cutoff)
		}
		prev = len(got)
	}
}

func TestBadCutoff(t *testing.T) {
	s := readTest(t, pdbtest.SiteAtoms("LIG", 10, 5))
	if _, err := site.NearResidues(s, "LIG", 0, nil); err == nil {
		t.Fatal("wanted an error for zero cutoff")
	}
	if _, err := site.NearResidues(s, "LIG", -3, nil); err == nil {
		t.Fatal("wanted an error for negative cutoff")
	}
}
