// Go to a pdb website and download coordinates.
// pdb europe files are at http://www.ebi.ac.uk/pdbe/entry-files/download/5pti.cif
// The main point is to visit the web page and return a reader that
// can be used like the file readers.

package pdb

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/zwrap"
)

// Fetch is given a four letter pdb code. It goes to the protein data
// bank and returns a reader for the mmcif entry.
// There are three sites for structures. You can pick which one you
// want with siteNum. If you give a value that is too big, we use a
// modulo to wrap it around, rather than generate an error. This makes
// it easier to cycle through them or pick one at random.
// Sites return normal or gzipped data, but if it is a gzipping site,
// we call zwrap to decompress and return that as the reader.
func Fetch(acqCode string, siteNum int) (io.ReadCloser, error) {
	var url string
	var urls = []struct {
		urlBase   string
		urlSuffix string
		gzipped   bool
	}{
		{"https://files.rcsb.org/download/",
			".cif.gz",
			true},
		{"http://www.ebi.ac.uk/pdbe/entry-files/download/",
			".cif",
			false},
		{"http://ftp.pdbj.org/mmcif/",
			".cif.gz",
			true},
	}

	if siteNum >= len(urls) {
		siteNum = siteNum % len(urls)
	}

	if len(acqCode) != 4 {
		return nil, errors.New("acq code should be four char, not " + acqCode)
	}

	url = urls[siteNum].urlBase + strings.ToLower(acqCode) + urls[siteNum].urlSuffix

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		s := "Wanted " + acqCode + " using " + url
		t := ", got " + resp.Status
		return nil, errors.New(s + t)
	}

	if urls[siteNum].gzipped {
		var body io.ReadCloser
		if body, err = zwrap.Wrap(resp.Body); err != nil {
			resp.Body.Close()
			return nil, err
		}
		return body, nil
	}

	return resp.Body, nil
}

// FetchToFile downloads one entry into dir as <code>.cif, decompressed,
// so the directory can be fed straight to the site hunt. It will not
// fetch again if the file is already there.
func FetchToFile(acqCode string, dir string, siteNum int) (string, error) {
	fname := filepath.Join(dir, strings.ToLower(acqCode)+".cif")
	if _, err := os.Stat(fname); err == nil {
		return fname, nil
	}
	rdr, err := Fetch(acqCode, siteNum)
	if err != nil {
		return "", err
	}
	defer rdr.Close()
	fp, err := os.Create(fname)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fp, rdr); err != nil {
		fp.Close()
		os.Remove(fname)
		return "", err
	}
	if err := fp.Close(); err != nil {
		return "", err
	}
	return fname, nil
}
