// Package pdbtest makes little synthetic structure files for testing.
// Real entries are big and we are not allowed to ship them, so the
// tests build exactly the atoms they need.
package pdbtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TAtom is one atom for a synthetic file.
type TAtom struct {
	Het     bool
	Name    string // atom name like "CA"
	Res     string // residue name like "ALA" or "LIG"
	Chain   byte
	Seq     int
	X, Y, Z float64
}

// PDBText renders atoms as old-style PDB format text, one model,
// columns per the wwPDB format guide.
func PDBText(atoms []TAtom) string {
	var b strings.Builder
	for i, a := range atoms {
		rec := "ATOM"
		if a.Het {
			rec = "HETATM"
		}
		fmt.Fprintf(&b, "%-6s%5d %-4s%1s%-3s %c%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f\n",
			rec, i+1, a.Name, " ", a.Res, a.Chain, a.Seq, " ", a.X, a.Y, a.Z, 1.0, 0.0)
	}
	b.WriteString("END\n")
	return b.String()
}

// CifText renders the same atoms as a minimal mmcif atom_site loop.
func CifText(id string, atoms []TAtom) string {
	var b strings.Builder
	fmt.Fprintf(&b, "data_%s\n#\nloop_\n", id)
	for _, h := range []string{
		"group_PDB", "id", "auth_atom_id", "auth_comp_id", "auth_asym_id",
		"auth_seq_id", "pdbx_PDB_ins_code", "Cartn_x", "Cartn_y", "Cartn_z",
		"pdbx_PDB_model_num",
	} {
		fmt.Fprintf(&b, "_atom_site.%s\n", h)
	}
	for i, a := range atoms {
		rec := "ATOM"
		if a.Het {
			rec = "HETATM"
		}
		fmt.Fprintf(&b, "%s %d %s %s %c %d ? %.3f %.3f %.3f 1\n",
			rec, i+1, a.Name, a.Res, a.Chain, a.Seq, a.X, a.Y, a.Z)
	}
	b.WriteString("#\n")
	return b.String()
}

// WriteFile puts content into dir/name and fails the caller's test
// via the returned error if anything goes wrong.
func WriteFile(dir, name, content string) (string, error) {
	fname := filepath.Join(dir, name)
	if err := os.WriteFile(fname, []byte(content), 0644); err != nil {
		return "", err
	}
	return fname, nil
}

// SiteAtoms builds a standard little test structure: a one-atom ligand
// named ligName at the origin, protein residues at the given distances
// along x (numbered from firstSeq), and one water nearby. Useful for
// cutoff tests where the answer should be obvious by eye.
func SiteAtoms(ligName string, firstSeq int, dists ...float64) []TAtom {
	atoms := []TAtom{
		{Het: true, Name: "C1", Res: ligName, Chain: 'A', Seq: 900},
	}
	for i, d := range dists {
		atoms = append(atoms, TAtom{
			Name: "CA", Res: "ALA", Chain: 'A', Seq: firstSeq + i, X: d})
	}
	atoms = append(atoms,
		TAtom{Het: true, Name: "O", Res: "HOH", Chain: 'A', Seq: 950, X: 1})
	return atoms
}
