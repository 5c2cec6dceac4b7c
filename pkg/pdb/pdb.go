// This is the upper level for reading structure files.
// Decide if a file is compressed or not, and what format we are going
// to read. Then call the corresponding pdb or mmcif format reader.

package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/cmmn"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/pdb/mmcif"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/zwrap"
)

const (
	old_fmt byte = iota
	mmcif_fmt
	unk_fmt
)

// comparefirst says if two words are the same, looking at the
// length of the shorter
func comparefirst(s, t string) bool {
	l1 := len(s)
	l2 := len(t)
	if l2 < l1 {
		l1 = l2
	}
	s = s[:l1]
	t = t[:l1]
	return s == t
}

// lookInBuf guesses from the content whether we have old PDB format
// or mmcif.
func lookInBuf(buf []byte, fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(bytes.NewReader(buf))
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if comparefirst(s, w) {
				return mmcif_fmt, nil
			}
		}
		for _, w := range pdbWords {
			if comparefirst(s, w) {
				return old_fmt, nil
			}
		}
	}
	return unk_fmt, errors.New(fname + ": cannot recognise format")
}

// oldOrMmcif decides what format we will use. Maybe it uses the file
// name or maybe it peeks inside. We cannot use the function from
// filepath to get the file type, since it will return .gz if we feed
// it a.pdb.gz.
func oldOrMmcif(fname string, buf []byte) (byte, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:])
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return old_fmt, nil
		} else if strings.Contains(s, "mmcif") || strings.Contains(s, "cif") {
			return mmcif_fmt, nil
		}
	}
	return lookInBuf(buf, fname)
}

var gzMagic = []byte{0x1f, 0x8b}

// slurp gets the whole file into memory. Plain files are mapped, which
// saves a copy on the big multi-model entries. Compressed files have
// to go through the decompressor, so they are read conventionally.
// The caller gets a function to give the memory back.
func slurp(fname string) ([]byte, func() error, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	var magic [2]byte
	if _, err := io.ReadFull(fp, magic[:]); err != nil {
		fp.Close()
		return nil, nil, errors.New(fname + ": too short to be a structure file")
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		fp.Close()
		return nil, nil, err
	}

	if magic[0] == gzMagic[0] && magic[1] == gzMagic[1] {
		rdr, e2 := zwrap.Wrap(fp)
		if e2 != nil {
			fp.Close()
			return nil, nil, errors.New("reading " + fname + " " + e2.Error())
		}
		buf, e3 := io.ReadAll(rdr)
		rdr.Close()
		if e3 != nil {
			return nil, nil, errors.New("decompressing " + fname + " " + e3.Error())
		}
		return buf, func() error { return nil }, nil
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, nil, errors.New("mapping " + fname + " " + err.Error())
	}
	done := func() error {
		e1 := mm.Unmap()
		e2 := fp.Close()
		if e1 != nil {
			return e1
		}
		return e2
	}
	return mm, done, nil
}

// structID derives the structure identifier from a file name, so
// "xy/6lu7.pdb.gz" becomes "6lu7".
func structID(fname string) string {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = s[:i]
	}
	return s
}

// ReadStructure takes a filename and reads one structure from it,
// whichever of the two formats it is in and whether or not it is
// compressed. Only the first model of a multi-model entry is kept.
func ReadStructure(fname string) (*cmmn.Structure, error) {
	buf, done, err := slurp(fname)
	if err != nil {
		return nil, err
	}
	defer done()

	typ, err := oldOrMmcif(fname, buf)
	if err != nil {
		return nil, err
	}
	var s *cmmn.Structure
	switch typ {
	case old_fmt:
		s, err = parseOldFmt(buf, structID(fname))
	case mmcif_fmt:
		s, err = mmcif.ReadAtomSite(bytes.NewReader(buf), structID(fname))
	default:
		return nil, errors.New(fname + ": unknown format")
	}
	if err != nil {
		return nil, errors.New(fname + ": " + err.Error())
	}
	s.Path = fname
	if len(s.Chains) == 0 {
		return nil, errors.New(fname + ": no coordinates found")
	}
	return s, nil
}
