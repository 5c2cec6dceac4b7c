package mmcif_test

import (
	"strings"
	"testing"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/pdb/mmcif"
)

// A small atom_site loop with the columns shuffled, quoted atom names
// and a second model that must be ignored.
const messyCif = `data_test
#
_entry.id test
#
loop_
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.group_PDB
_atom_site.auth_comp_id
_atom_site.auth_asym_id
_atom_site.auth_seq_id
_atom_site.label_alt_id
_atom_site.pdbx_PDB_model_num
1.0 2.0 3.0 ATOM MET A 1 . 1
1.5 2.5 3.5 ATOM MET A 1 . 1
4.0 5.0 6.0 ATOM DG A 2 . 1
4.5 5.5 6.5 ATOM DG A 2 B 1
0.0 0.0 0.0 HETATM LIG A 501 . 1
9.9 9.9 9.9 ATOM MET A 1 . 2
#
loop_
_chem_comp.id
_chem_comp.name
LIG 'made up ligand'
#
`

func TestReadAtomSite(t *testing.T) {
	s, err := mmcif.ReadAtomSite(strings.NewReader(messyCif), "test")
	if err != nil {
		t.Fatal(err)
	}
	rr := s.AllResidues()
	if len(rr) != 3 {
		t.Fatalf("wanted 3 residues got %d", len(rr))
	}
	if rr[0].Name != "MET" || len(rr[0].Atoms) != 2 {
		t.Errorf("first residue wrong: %+v", rr[0])
	}
	if len(rr[1].Atoms) != 1 {
		t.Errorf("alt location B should have been dropped, got %d atoms",
			len(rr[1].Atoms))
	}
	if rr[2].Name != "LIG" || !rr[2].Het || rr[2].SeqNum != 501 {
		t.Errorf("ligand wrong: %+v", rr[2])
	}
}

// Quoted fields must survive splitting. The O5' name on nucleotides is
// the classic trap.
const quotedCif = `data_q
loop_
_atom_site.group_PDB
_atom_site.auth_comp_id
_atom_site.auth_asym_id
_atom_site.auth_seq_id
_atom_site.auth_atom_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
ATOM DG A 7 "O5'" 1.0 2.0 3.0
#
`

func TestQuotedFields(t *testing.T) {
	s, err := mmcif.ReadAtomSite(strings.NewReader(quotedCif), "q")
	if err != nil {
		t.Fatal(err)
	}
	rr := s.AllResidues()
	if len(rr) != 1 || rr[0].SeqNum != 7 {
		t.Fatalf("quoted line misparsed: %+v", rr)
	}
	if rr[0].Atoms[0].X != 1.0 {
		t.Fatalf("coordinate after quoted field wrong: %v", rr[0].Atoms[0])
	}
}

func TestMissingColumns(t *testing.T) {
	bad := `data_b
loop_
_atom_site.group_PDB
_atom_site.auth_comp_id
ATOM MET
#
`
	if _, err := mmcif.ReadAtomSite(strings.NewReader(bad), "b"); err == nil {
		t.Fatal("wanted error for missing columns")
	}
}

func TestNoAtoms(t *testing.T) {
	if _, err := mmcif.ReadAtomSite(strings.NewReader("data_x\n_entry.id x\n"), "x"); err == nil {
		t.Fatal("wanted error when there is no atom_site loop")
	}
}
