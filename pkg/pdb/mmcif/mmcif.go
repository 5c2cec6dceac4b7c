// Package mmcif reads the _atom_site loop from mmcif files. That is
// the only table the binding site hunt needs, so unlike a general cif
// reader we do not keep a dictionary of wanted items. We walk the file
// until we find the atom_site loop, note which column is which (files
// differ in column order) and then eat data rows until the loop ends.
package mmcif

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/cmmn"
)

// names of the _atom_site items we care about
const (
	itmGroup   = "_atom_site.group_PDB"
	itmCompA   = "_atom_site.auth_comp_id"
	itmCompL   = "_atom_site.label_comp_id"
	itmAsymA   = "_atom_site.auth_asym_id"
	itmAsymL   = "_atom_site.label_asym_id"
	itmSeqA    = "_atom_site.auth_seq_id"
	itmSeqL    = "_atom_site.label_seq_id"
	itmInsCode = "_atom_site.pdbx_PDB_ins_code"
	itmAltID   = "_atom_site.label_alt_id"
	itmModel   = "_atom_site.pdbx_PDB_model_num"
	itmX       = "_atom_site.Cartn_x"
	itmY       = "_atom_site.Cartn_y"
	itmZ       = "_atom_site.Cartn_z"
)

// colNdx says where each interesting item sits in a data row. An
// entry of -1 means the file does not have that column.
type colNdx struct {
	group, comp, asym, seq int
	insCode, altID, model  int
	x, y, z                int
}

// pick prefers the auth_ numbering. The auth numbers are the ones
// crystallographers quote in papers and the ones the consensus site
// must be expressed in. label_ is the fallback.
func (c *colNdx) fill(hdrs map[string]int) {
	get := func(name string) int {
		if i, ok := hdrs[name]; ok {
			return i
		}
		return -1
	}
	pick := func(auth, label string) int {
		if i := get(auth); i != -1 {
			return i
		}
		return get(label)
	}
	c.group = get(itmGroup)
	c.comp = pick(itmCompA, itmCompL)
	c.asym = pick(itmAsymA, itmAsymL)
	c.seq = pick(itmSeqA, itmSeqL)
	c.insCode = get(itmInsCode)
	c.altID = get(itmAltID)
	c.model = get(itmModel)
	c.x = get(itmX)
	c.y = get(itmY)
	c.z = get(itmZ)
}

func (c *colNdx) complete() bool {
	return c.group != -1 && c.comp != -1 && c.asym != -1 &&
		c.seq != -1 && c.x != -1 && c.y != -1 && c.z != -1
}

// field returns column i of a split row, or "" for missing and for
// the cif placeholders.
func field(words [][]byte, i int) string {
	if i < 0 || i >= len(words) {
		return ""
	}
	s := string(words[i])
	if s == "." || s == "?" {
		return ""
	}
	return s
}

type resKey struct {
	asym    string
	seqNum  int
	insCode byte
	name    string
}

// ReadAtomSite reads an mmcif file and returns the structure built
// from its atom_site loop. Only the first model is kept. Alternate
// locations other than the first are dropped, as in the pdb reader.
func ReadAtomSite(rdr io.Reader, id string) (*cmmn.Structure, error) {
	s := &cmmn.Structure{ID: id}
	scnnr := bufio.NewScanner(rdr)
	scnnr.Buffer(make([]byte, 0, 1<<16), 1<<20)

	hdrs := make(map[string]int)
	var cols colNdx
	var inHdrs, inData bool
	var wantModel string
	var curChain *cmmn.Chain
	var curKey resKey
	var curRes *cmmn.Residue
	scrtch := make([][]byte, 0, 32)

	nline := 0
	for scnnr.Scan() {
		nline++
		line := scnnr.Bytes()
		trimmed := strings.TrimSpace(string(line))
		switch {
		case strings.HasPrefix(trimmed, "_atom_site."):
			if !inHdrs {
				hdrs = make(map[string]int)
				inHdrs = true
			}
			hdrs[trimmed] = len(hdrs)
			continue
		case inHdrs && !inData:
			cols.fill(hdrs)
			if !cols.complete() {
				return nil, &readError{nline, trimmed,
					"atom_site loop is missing needed columns"}
			}
			inHdrs, inData = false, true
			// fall through to treat this very line as data
		case !inData:
			continue
		}
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '_' ||
			strings.HasPrefix(trimmed, "loop_") ||
			strings.HasPrefix(trimmed, "data_") {
			break // the atom_site loop is over. Nothing else matters.
		}

		words, err := splitCifLine(line, scrtch)
		if err != nil {
			return nil, &readError{nline, trimmed, err.Error()}
		}
		grp := field(words, cols.group)
		if grp != "ATOM" && grp != "HETATM" {
			return nil, &readError{nline, trimmed, "row is not ATOM or HETATM"}
		}
		if m := field(words, cols.model); m != "" {
			if wantModel == "" {
				wantModel = m
			} else if m != wantModel {
				break // second model starts here
			}
		}
		if alt := field(words, cols.altID); alt != "" && alt != "A" && alt != "1" {
			continue
		}
		seqNum := cmmn.BrokenResNum
		if v := field(words, cols.seq); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				seqNum = n
			}
		}
		xyz := cmmn.BrokenXyz
		xs, ys, zs := field(words, cols.x), field(words, cols.y), field(words, cols.z)
		if xs != "" && ys != "" && zs != "" {
			x, ex := strconv.ParseFloat(xs, 32)
			y, ey := strconv.ParseFloat(ys, 32)
			z, ez := strconv.ParseFloat(zs, 32)
			if ex == nil && ey == nil && ez == nil {
				xyz = cmmn.Xyz{X: float32(x), Y: float32(y), Z: float32(z)}
			}
		}
		var ins byte = ' '
		if v := field(words, cols.insCode); v != "" {
			ins = v[0]
		}
		key := resKey{
			asym:    field(words, cols.asym),
			seqNum:  seqNum,
			insCode: ins,
			name:    field(words, cols.comp),
		}
		if curChain == nil || curChain.ChainID != key.asym {
			s.Chains = append(s.Chains, cmmn.Chain{ChainID: key.asym})
			curChain = &s.Chains[len(s.Chains)-1]
			curRes = nil
		}
		if curRes == nil || key != curKey {
			curChain.Residues = append(curChain.Residues, cmmn.Residue{
				Name:    key.name,
				SeqNum:  key.seqNum,
				InsCode: key.insCode,
				Het:     grp == "HETATM",
			})
			curRes = &curChain.Residues[len(curChain.Residues)-1]
			curKey = key
		}
		curRes.Atoms = append(curRes.Atoms, xyz)
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	if len(s.Chains) == 0 {
		return nil, &readError{0, "", "no atom_site loop found"}
	}
	return s, nil
}
