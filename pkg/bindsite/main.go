// Package bindsite glues the pieces together: find the structure
// files, pull the binding site out of each one, aggregate and print.
// This is the program behind cmd/bindsite.
package bindsite

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/coverage"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/pdb"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/plot"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/render"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/site"
)

const nReaderDflt = 3

// CmdFlag is everything the command line can set.
type CmdFlag struct {
	Ligand     string  // residue name of the ligand, "LIG" or "H_LIG" style
	DistCutoff float64 // Angstrom from the ligand centroid
	CovCutoff  float64 // fraction of structures a residue must appear in
	RefID      string  // structure the pymol script fetches; first file if ""
	Chain      string  // chain for the Matt selection expression
	NReader    int     // parallel structure readers
	Strict     bool    // abort on the first unusable structure
	Chimera    string  // write coverage as chimera attributes here, "" for none
	Plot       string  // write a coverage png here, "" for none
	FontFile   string  // ttf for plot labels
	LogTo      string  // "" discard, "stdout", or a filename
}

// logWhere decides where to send diagnostic output.
func logWhere(outinfo string) (*log.Logger, error) {
	var iowriter io.Writer
	switch outinfo { // Decide where to send the logged output
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
	}
	return log.New(iowriter, "", log.Lshortfile), nil
}

// structExts are the file endings we treat as structure files when
// scanning a directory.
var structExts = []string{
	".pdb", ".ent", ".cif", ".mmcif",
	".pdb.gz", ".ent.gz", ".cif.gz", ".mmcif.gz",
}

// ListStructFiles returns the structure files in dir, sorted, so runs
// are deterministic whatever order the directory hands them back in.
func ListStructFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var ret []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		for _, ext := range structExts {
			if strings.HasSuffix(name, ext) {
				ret = append(ret, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	sort.Strings(ret)
	return ret, nil
}

// extrResult is what one reader sends back for one file.
type extrResult struct {
	ndx int
	set site.ResSet
	err error
}

type job struct {
	ndx   int
	fname string
}

// reader takes file names from a channel, reads each structure and
// extracts its binding site. Extraction of one structure never
// depends on another, which is why we can run several of these.
func reader(jobs <-chan job, res chan<- extrResult, wg *sync.WaitGroup,
	flags *CmdFlag, lg *log.Logger) {
	defer wg.Done()
	for j := range jobs {
		s, err := pdb.ReadStructure(j.fname)
		if err != nil {
			res <- extrResult{ndx: j.ndx, err: err}
			continue
		}
		set, err := site.NearResidues(s, flags.Ligand, float32(flags.DistCutoff), lg)
		res <- extrResult{ndx: j.ndx, set: set, err: err}
	}
}

// ExtractAll runs the per-structure extraction over all files with a
// small pool of readers. The returned slice is in input order; a nil
// entry means that file failed and the matching error is in errs.
func ExtractAll(files []string, flags *CmdFlag, lg *log.Logger) ([]site.ResSet, []error) {
	nReader := flags.NReader
	if nReader < 1 {
		nReader = nReaderDflt
	}
	jobs := make(chan job, len(files))
	res := make(chan extrResult)

	var wg sync.WaitGroup
	for i := 0; i < nReader; i++ {
		wg.Add(1)
		go reader(jobs, res, &wg, flags, lg)
	}
	go func() {
		for i, f := range files {
			jobs <- job{ndx: i, fname: f}
		}
		close(jobs)
		wg.Wait()
		close(res)
	}()

	sets := make([]site.ResSet, len(files))
	errs := make([]error, len(files))
	for r := range res {
		sets[r.ndx] = r.set
		errs[r.ndx] = r.err
	}
	return sets, errs
}

// checkFlags refuses the parameter combinations that would make the
// numbers meaningless.
func checkFlags(flags *CmdFlag) error {
	if flags.Ligand == "" {
		return fmt.Errorf("no ligand name given")
	}
	if flags.DistCutoff <= 0 {
		return fmt.Errorf("distance cutoff must be positive, got %g", flags.DistCutoff)
	}
	return coverage.CheckCutoff(flags.CovCutoff)
}

// Mymain is the whole computation: list, extract, aggregate, print.
// The report goes to out; diagnostics go wherever flags.LogTo says.
func Mymain(flags *CmdFlag, dir string, out io.Writer) error {
	if err := checkFlags(flags); err != nil {
		return err
	}
	lg, err := logWhere(flags.LogTo)
	if err != nil {
		return fmt.Errorf("%s creating log file", err)
	}

	files, err := ListStructFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no structure files found in %s", dir)
	}

	sets, errs := ExtractAll(files, flags, lg)

	var used []site.ResSet
	var refFile string
	nskip := 0
	for i, err := range errs {
		if err != nil {
			if flags.Strict {
				return fmt.Errorf("%s (running with -strict)", err)
			}
			lg.Printf("skipping %s: %v", files[i], err)
			fmt.Fprintf(os.Stderr, "Warning, skipping %s: %v\n", files[i], err)
			nskip++
			continue
		}
		if refFile == "" {
			refFile = files[i]
		}
		used = append(used, sets[i])
	}
	if len(used) == 0 {
		return fmt.Errorf("no structure yielded a binding site for ligand %s",
			flags.Ligand)
	}

	tally := coverage.NewTally(used, len(used))
	consensus := tally.Consensus(flags.CovCutoff)

	refID := flags.RefID
	if refID == "" {
		refID = structIDOf(refFile)
	}

	fmt.Fprintf(out, "Structures used: %d (skipped %d)\n", len(used), nskip)
	fmt.Fprintf(out, "Consensus binding site: %d residues at coverage >= %.2f\n",
		len(consensus), flags.CovCutoff)
	fmt.Fprintf(out, "Residues: %s\n", intsAsString(consensus))
	fmt.Fprintf(out, "\nPyMOL script:\n%s", render.PymolScript(refID, consensus))
	fmt.Fprintf(out, "\nMatt selection:\n%s\n",
		render.MattSelection(filepath.Base(refFile), flags.Chain, consensus))

	if flags.Chimera != "" {
		if err := render.WriteChimeraAttr(flags.Chimera,
			tally.Residues, tally.Fractions()); err != nil {
			return err
		}
	}
	if flags.Plot != "" {
		args := &plot.Args{
			Residues:  tally.Residues,
			Fractions: tally.Fractions(),
			Cutoff:    flags.CovCutoff,
			FontFile:  flags.FontFile,
		}
		if err := plot.Write(flags.Plot, args); err != nil {
			return err
		}
	}
	return nil
}

// structIDOf repeats the little name-mangling the reader does, so the
// pymol script fetches "6lu7" when the reference file was 6lu7.pdb.gz.
func structIDOf(fname string) string {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = s[:i]
	}
	return s
}

// intsAsString is for the human-readable residue list in the report.
func intsAsString(rr []int) string {
	ss := make([]string, len(rr))
	for i, r := range rr {
		ss[i] = fmt.Sprintf("%d", r)
	}
	return strings.Join(ss, " ")
}
