// 14 Feb 2021
// Find the consensus ligand binding site over a directory of
// structures.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/bindsite"
	. "github.com/yonghui-cc/covid19-SBapproach/pkg/common"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/coverage"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/site"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]),
		"[flags] -l ligand structure_dir")
	long := `Reads every structure file in the directory, finds the residues near
the named ligand in each one and prints the residues that turn up in
enough of the structures, plus pymol and Matt selections for them.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags bindsite.CmdFlag

	flag.StringVar(&flags.Ligand, "l", "", "ligand residue name, LIG or H_LIG style")
	flag.Float64Var(&flags.DistCutoff, "d", float64(site.DfltDistCutoff),
		"distance cutoff from ligand centroid (Angstrom)")
	flag.Float64Var(&flags.CovCutoff, "c", coverage.DfltCutoff,
		"coverage cutoff, fraction of structures in [0,1]")
	flag.StringVar(&flags.RefID, "ref", "", "structure for the pymol script to fetch")
	flag.StringVar(&flags.Chain, "chain", "A", "chain for the Matt selection")
	flag.IntVar(&flags.NReader, "r", 0, "num reader threads, 0 for the default")
	flag.BoolVar(&flags.Strict, "strict", false,
		"abort on the first unreadable or ligand-free structure")
	flag.StringVar(&flags.Chimera, "chimera", "",
		"write per-residue coverage as a chimera attribute file")
	flag.StringVar(&flags.Plot, "plot", "", "write a coverage bar chart png")
	flag.StringVar(&flags.FontFile, "font", "", "ttf font for plot labels")
	flag.StringVar(&flags.LogTo, "log", "",
		`diagnostics to a file, "stdout", or nowhere if empty`)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(ExitUsageError)
	}

	if err := bindsite.Mymain(&flags, flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
