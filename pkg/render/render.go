// Package render turns the consensus residue list into text for other
// programs. Nothing here validates the other programs' syntax; these
// are strings to paste, nothing more.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// joinInts renders residue numbers with the given separator. PyMOL
// wants "+" between numbers, Matt wants commas.
func joinInts(rr []int, sep string) string {
	ss := make([]string, len(rr))
	for i, r := range rr {
		ss[i] = strconv.Itoa(r)
	}
	return strings.Join(ss, sep)
}

// PymolScript gives a pymol script which fetches the reference
// structure, throws away the waters, selects the consensus residues
// and draws them as sticks.
func PymolScript(refID string, residues []int) string {
	var b strings.Builder
	fmt.Fprintln(&b, "fetch", refID)
	fmt.Fprintln(&b, "remove solvent")
	fmt.Fprintln(&b, "select consensus_site, resi", joinInts(residues, "+"))
	fmt.Fprintln(&b, "show sticks, consensus_site")
	return b.String()
}

// MattSelection gives the chain selection expression for the Matt
// structure alignment program, like "ref.pdb:A(20,21,25)".
func MattSelection(refFile, chain string, residues []int) string {
	return refFile + ":" + chain + "(" + joinInts(residues, ",") + ")"
}

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// wrtAtt writes one attribute block in the format wanted by chimera
// for attributes.
func wrtAtt(fp io.Writer, attname string, residues []int, vals []float64) error {
	head := "\nattribute: " + attname + "\nmatch mode: 1-to-1\nrecipient: residues"
	fmt.Fprintln(fp, "#", time.Now().Format(time.RFC1123), head)
	for i, r := range residues {
		if _, err := fmt.Fprintf(fp, "\t:%d\t%#g\n", r, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteChimeraAttr writes the coverage fraction of every residue ever
// seen as a chimera attribute file, so the whole tally can be painted
// onto a structure. residues and fractions run in parallel.
func WriteChimeraAttr(fname string, residues []int, fractions []float64) error {
	if len(residues) != len(fractions) {
		return fmt.Errorf("chimera attributes: %d residues but %d fractions",
			len(residues), len(fractions))
	}
	var fp io.WriteCloser
	var err error
	if fname == "-" { // Write to stdout
		fp = os.Stdout
	} else { //            Write to a named file
		warnExists(fname)
		if fp, err = os.Create(fname); err != nil {
			return fmt.Errorf("chimera output file %v: %w", fname, err)
		}
		defer fp.Close()
	}
	return wrtAtt(fp, "coverage", residues, fractions)
}
