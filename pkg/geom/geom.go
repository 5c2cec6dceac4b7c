// Calculate the little bit of geometry the site hunting needs,
// distances and centroids.

package geom

import (
	"math"

	"github.com/yonghui-cc/covid19-SBapproach/pkg/cmmn"
)

type Error string

func (e Error) Error() string { return string(e) }

// xyzDiff gets the difference of two vectors
func xyzDiff(start, end cmmn.Xyz) (diff cmmn.Xyz) {
	diff.X = end.X - start.X
	diff.Y = end.Y - start.Y
	diff.Z = end.Z - start.Z
	return diff
}

// Dist2 returns the squared distance between two points. Squared
// distances are what the cutoff test uses, so we do not pay for a
// square root on every atom.
func Dist2(x1, x2 cmmn.Xyz) float32 {
	d := xyzDiff(x1, x2)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Dist returns the distance between two points.
func Dist(x1, x2 cmmn.Xyz) float32 {
	return float32(math.Sqrt(float64(Dist2(x1, x2))))
}

// Centroid returns the mean coordinate of a set of atoms. Broken
// coordinates are skipped. An empty or all-broken set is an error,
// since a centroid of nothing anchors nothing.
func Centroid(atoms cmmn.XyzSl) (cmmn.Xyz, error) {
	var sum struct{ x, y, z float64 }
	var n int
	for i := range atoms {
		if !atoms[i].Ok() {
			continue
		}
		sum.x += float64(atoms[i].X)
		sum.y += float64(atoms[i].Y)
		sum.z += float64(atoms[i].Z)
		n++
	}
	if n == 0 {
		return cmmn.BrokenXyz, Error("centroid of zero atoms")
	}
	f := float64(n)
	return cmmn.Xyz{
		X: float32(sum.x / f),
		Y: float32(sum.y / f),
		Z: float32(sum.z / f)}, nil
}

// WithinCutoff says whether any atom in the slice lies within cutoff
// of the point x. It works on squared distances internally.
func WithinCutoff(atoms cmmn.XyzSl, x cmmn.Xyz, cutoff float32) bool {
	c2 := cutoff * cutoff
	for i := range atoms {
		if !atoms[i].Ok() {
			continue
		}
		if Dist2(atoms[i], x) <= c2 {
			return true
		}
	}
	return false
}
