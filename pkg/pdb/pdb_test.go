package pdb_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/pdb"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/pdb/pdbtest"
)

// smallAtoms is two protein residues, a ligand and a water.
var smallAtoms = []pdbtest.TAtom{
	{Name: "N", Res: "MET", Chain: 'A', Seq: 1, X: 1.0, Y: 2.0, Z: 3.0},
	{Name: "CA", Res: "MET", Chain: 'A', Seq: 1, X: 1.5, Y: 2.5, Z: 3.5},
	{Name: "CA", Res: "GLY", Chain: 'A', Seq: 2, X: 4.0, Y: 5.0, Z: 6.0},
	{Het: true, Name: "C1", Res: "LIG", Chain: 'A', Seq: 501, X: 0, Y: 0, Z: 0},
	{Het: true, Name: "O", Res: "HOH", Chain: 'A', Seq: 601, X: 9, Y: 9, Z: 9},
}

// checkSmall verifies that either reader got the same picture of
// smallAtoms.
func checkSmall(t *testing.T, fname string) {
	t.Helper()
	s, err := pdb.ReadStructure(fname)
	if err != nil {
		t.Fatal("reading", fname, err)
	}
	rr := s.AllResidues()
	if len(rr) != 4 {
		t.Fatalf("%s: wanted 4 residues got %d", fname, len(rr))
	}
	if rr[0].Name != "MET" || rr[0].SeqNum != 1 || len(rr[0].Atoms) != 2 {
		t.Errorf("%s: first residue wrong: %+v", fname, rr[0])
	}
	if rr[2].Name != "LIG" || !rr[2].Het {
		t.Errorf("%s: ligand not seen as het: %+v", fname, rr[2])
	}
	if !rr[3].IsSolvent() {
		t.Errorf("%s: water not seen as solvent", fname)
	}
	if rr[1].Atoms[0].X != 4.0 {
		t.Errorf("%s: coordinate mangled, got %v", fname, rr[1].Atoms[0])
	}
}

func TestReadOldFmt(t *testing.T) {
	dir := t.TempDir()
	fname, err := pdbtest.WriteFile(dir, "small.pdb", pdbtest.PDBText(smallAtoms))
	if err != nil {
		t.Fatal(err)
	}
	checkSmall(t, fname)
}

func TestReadMmcif(t *testing.T) {
	dir := t.TempDir()
	fname, err := pdbtest.WriteFile(dir, "small.cif", pdbtest.CifText("small", smallAtoms))
	if err != nil {
		t.Fatal(err)
	}
	checkSmall(t, fname)
}

// TestReadGzipped writes the pdb format file gzipped and checks it
// comes back the same.
func TestReadGzipped(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "small.pdb.gz")
	fp, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fp)
	if _, err := zw.Write([]byte(pdbtest.PDBText(smallAtoms))); err != nil {
		t.Fatal(err)
	}
	zw.Close()
	fp.Close()
	checkSmall(t, fname)
}

// TestSniffContent has a file with no useful extension, so the reader
// has to peek inside.
func TestSniffContent(t *testing.T) {
	dir := t.TempDir()
	fname, err := pdbtest.WriteFile(dir, "noext", pdbtest.PDBText(smallAtoms))
	if err != nil {
		t.Fatal(err)
	}
	checkSmall(t, fname)
}

func TestUnrecognised(t *testing.T) {
	dir := t.TempDir()
	fname, err := pdbtest.WriteFile(dir, "junk", "this is not a structure\nreally not\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pdb.ReadStructure(fname); err == nil {
		t.Fatal("wanted an error on junk input")
	}
}

// TestMultiModel checks that only the first model survives.
func TestMultiModel(t *testing.T) {
	dir := t.TempDir()
	one := pdbtest.PDBText(smallAtoms[:3])
	two := pdbtest.PDBText(smallAtoms)
	content := "MODEL        1\n" + one + "ENDMDL\nMODEL        2\n" + two + "ENDMDL\n"
	fname, err := pdbtest.WriteFile(dir, "nmr.pdb", content)
	if err != nil {
		t.Fatal(err)
	}
	s, err := pdb.ReadStructure(fname)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.AllResidues()); n != 2 {
		t.Fatalf("wanted 2 residues from first model, got %d", n)
	}
}
