// 9 Feb 2021
// Download structures from the protein data bank into a directory,
// ready for bindsite to chew on.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/yonghui-cc/covid19-SBapproach/pkg/common"
	"github.com/yonghui-cc/covid19-SBapproach/pkg/pdb"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]),
		"[-o dir] code [code ...]")
	fmt.Fprintln(os.Stderr, "or    :", path.Base(os.Args[0]),
		"[-o dir] -f codefile")
	flag.PrintDefaults()
}

// codesFromFile reads four letter codes, one per line. Blank lines
// and lines starting with # are skipped.
func codesFromFile(fname string) ([]string, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	var codes []string
	scnnr := bufio.NewScanner(fp)
	for scnnr.Scan() {
		s := scnnr.Text()
		if s == "" || s[0] == '#' {
			continue
		}
		codes = append(codes, s)
	}
	return codes, scnnr.Err()
}

func mymain() int {
	var outdir, codefile string
	flag.StringVar(&outdir, "o", ".", "directory to put the files in")
	flag.StringVar(&codefile, "f", "", "file with one pdb code per line")
	flag.Usage = usage
	flag.Parse()

	codes := flag.Args()
	if codefile != "" {
		fromFile, err := codesFromFile(codefile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return ExitFailure
		}
		codes = append(codes, fromFile...)
	}
	if len(codes) == 0 {
		usage()
		return ExitUsageError
	}

	nfail := 0
	for i, code := range codes {
		// rotate over the mirror sites so one slow site does not
		// throttle a long list
		fname, err := pdb.FetchToFile(code, outdir, i)
		if err != nil {
			fmt.Fprintln(os.Stderr, code, err)
			nfail++
			continue
		}
		fmt.Println(fname)
	}
	if nfail > 0 {
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
