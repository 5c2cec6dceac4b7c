// Parse old-style PDB format. The format is fixed columns, set in
// stone since the punch card days, so we slice the line rather than
// split it.
// Column offsets (0-based, half-open) from the wwPDB format guide:
//   0:6 record, 6:11 serial, 12:16 atom name, 16 altLoc, 17:20 resName,
//   21 chain, 22:26 resSeq, 26 insCode, 30:38 x, 38:46 y, 46:54 z.

package pdb

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/cmmn"
)

// resKey identifies one residue while we are collecting its atoms.
type resKey struct {
	chain   byte
	seqNum  int
	insCode byte
	name    string
}

// lineError remembers which line broke, in the same spirit as the
// mmcif reader's errors.
type lineError struct {
	n    int
	desc string
}

func (e *lineError) Error() string {
	return "line " + strconv.Itoa(e.n) + ": " + e.desc
}

// parseCoord pulls one of the three coordinate fields out of a line.
func parseCoord(line string, lo, hi int) (float32, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(line[lo:hi]), 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// parseOldFmt reads ATOM and HETATM records from buf and groups them
// into residues and chains. Alternate locations other than the first
// (' ', 'A' or '1') are dropped. Reading stops at ENDMDL, so NMR
// ensembles contribute only their first model.
func parseOldFmt(buf []byte, id string) (*cmmn.Structure, error) {
	s := &cmmn.Structure{ID: id}
	var curChain *cmmn.Chain
	var curKey resKey
	var curRes *cmmn.Residue

	scnnr := bufio.NewScanner(bytes.NewReader(buf))
	scnnr.Buffer(make([]byte, 0, 1<<16), 1<<20)
	nline := 0
	for scnnr.Scan() {
		nline++
		line := scnnr.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		isAtom := strings.HasPrefix(line, "ATOM  ")
		isHet := strings.HasPrefix(line, "HETATM")
		if !isAtom && !isHet {
			continue
		}
		if len(line) < 54 {
			return nil, &lineError{nline, "atom record too short"}
		}
		if alt := line[16]; alt != ' ' && alt != 'A' && alt != '1' {
			continue
		}
		seqNum, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
		if err != nil {
			seqNum = cmmn.BrokenResNum
		}
		x, okx := parseCoord(line, 30, 38)
		y, oky := parseCoord(line, 38, 46)
		z, okz := parseCoord(line, 46, 54)
		xyz := cmmn.Xyz{X: x, Y: y, Z: z}
		if !okx || !oky || !okz {
			xyz = cmmn.BrokenXyz
		}

		key := resKey{
			chain:   line[21],
			seqNum:  seqNum,
			insCode: line[26],
			name:    strings.TrimSpace(line[17:20]),
		}
		if curChain == nil || curChain.ChainID != string(key.chain) {
			s.Chains = append(s.Chains, cmmn.Chain{ChainID: string(key.chain)})
			curChain = &s.Chains[len(s.Chains)-1]
			curRes = nil
		}
		if curRes == nil || key != curKey {
			curChain.Residues = append(curChain.Residues, cmmn.Residue{
				Name:    key.name,
				SeqNum:  key.seqNum,
				InsCode: key.insCode,
				Het:     isHet,
			})
			curRes = &curChain.Residues[len(curChain.Residues)-1]
			curKey = key
		}
		curRes.Atoms = append(curRes.Atoms, xyz)
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
