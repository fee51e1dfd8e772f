package geometry

import "github.com/go-gl/mathgl/mgl64"

// parallelEpsilon is the threshold under which two directions are treated as parallel
const parallelEpsilon = 1e-8

// RayToRay finds the closest approach between two infinite lines.
//
// Line A is aOrigin + ta*aDir and line B is bOrigin + tb*bDir, both directions
// normalized. The parameters come from the 2x2 normal equations built on the
// dot products of the directions and the origin offset, so the lines do not
// need to intersect.
//
// Returns:
//   - ta: parameter of the closest point on line A
//   - tb: parameter of the closest point on line B
//
// For (nearly) parallel lines every point is equally close: ta is pinned to 0
// and tb is the projection of aOrigin onto line B.
func RayToRay(aOrigin, aDir, bOrigin, bDir mgl64.Vec3) (float64, float64) {
	b := aDir.Dot(bDir)
	w := aOrigin.Sub(bOrigin)
	d := aDir.Dot(w)
	e := bDir.Dot(w)
	denom := 1.0 - b*b

	if denom < parallelEpsilon {
		return 0, e
	}

	return (b*e - d) / denom, (e - b*d) / denom
}

// SegmentToSegment finds the closest points between segments [a1, a2] and [b1, b2].
// The returned parameters are clamped to [0, 1] along each segment.
func SegmentToSegment(a1, a2, b1, b2 mgl64.Vec3) (float64, float64) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	la := da.LenSqr()
	lb := db.LenSqr()
	dd := da.Dot(db)
	d1 := a1.Sub(b1)
	d := da.Dot(d1)
	e := db.Dot(d1)
	n := la*lb - dd*dd

	var sn, tn float64
	sd, td := n, n

	if n < parallelEpsilon {
		// Parallel segments: start at a1 and search along B only
		sn, sd = 0, 1
		tn, td = e, lb
	} else {
		sn = dd*e - lb*d
		tn = la*e - dd*d
		if sn < 0 {
			sn = 0
			tn, td = e, lb
		} else if sn > sd {
			sn = sd
			tn, td = e+dd, lb
		}
	}

	if tn < 0 {
		tn = 0
		switch {
		case -d < 0:
			sn = 0
		case -d > la:
			sn = sd
		default:
			sn, sd = -d, la
		}
	} else if tn > td {
		tn = td
		switch {
		case -d+dd < 0:
			sn = 0
		case -d+dd > la:
			sn = sd
		default:
			sn, sd = -d+dd, la
		}
	}

	ta, tb := 0.0, 0.0
	if mgl64.Abs(sn) >= parallelEpsilon {
		ta = sn / sd
	}
	if mgl64.Abs(tn) >= parallelEpsilon {
		tb = tn / td
	}

	return ta, tb
}
