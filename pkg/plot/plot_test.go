package plot_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/plot"
)

// TestWrite draws without a font, which is the path the tests can
// rely on, and checks a decodable png of the right size comes out.
func TestWrite(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "cov.png")
	args := &plot.Args{
		Residues:  []int{20, 21, 25, 40, 192},
		Fractions: []float64{1, 0.8, 0.6, 0.4, 0.9},
		Cutoff:    0.5,
	}
	if err := plot.Write(fname, args); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal("output is not decodable png:", err)
	}
	if img.Bounds().Dx() < 100 || img.Bounds().Dy() < 100 {
		t.Fatal("plot suspiciously small:", img.Bounds())
	}
}

func TestWriteEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.png")
	if err := plot.Write(fname, &plot.Args{Cutoff: 0.5}); err != nil {
		t.Fatal("empty tally should still plot axes:", err)
	}
}

func TestMismatched(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.png")
	args := &plot.Args{Residues: []int{1}, Fractions: []float64{0.5, 0.6}}
	if err := plot.Write(fname, args); err == nil {
		t.Fatal("wanted an error for mismatched slice lengths")
	}
}

func TestBadFont(t *testing.T) {
	dir := t.TempDir()
	notAFont := filepath.Join(dir, "nope.ttf")
	if err := os.WriteFile(notAFont, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	args := &plot.Args{FontFile: notAFont}
	if err := plot.Write(filepath.Join(dir, "x.png"), args); err == nil {
		t.Fatal("wanted an error for a broken font file")
	}
}
