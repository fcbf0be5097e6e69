package anim

import "fyne.io/fyne/v2"

var (
	// Standard is the default material easing, cubic-bezier(0.4, 0, 0.2, 1).
	Standard = CubicBezier(0.4, 0, 0.2, 1)

	// LinearOutSlowIn leaves rest at full speed and decelerates into place.
	LinearOutSlowIn = CubicBezier(0, 0, 0.2, 1)

	Linear fyne.AnimationCurve = fyne.AnimationLinear
)

const bezierIterations = 32

// CubicBezier builds an easing curve through (0,0), (x1,y1), (x2,y2), (1,1).
// x1 and x2 must lie in [0,1] for the curve to be a function of progress.
func CubicBezier(x1, y1, x2, y2 float32) fyne.AnimationCurve {
	ax, ay := float64(x1), float64(y1)
	bx, by := float64(x2), float64(y2)

	return func(progress float32) float32 {
		if progress <= 0 {
			return 0
		}
		if progress >= 1 {
			return 1
		}

		// Fixed-depth bisection keeps the curve monotone in progress.
		x := float64(progress)
		lo, hi := 0.0, 1.0
		for i := 0; i < bezierIterations; i++ {
			mid := (lo + hi) / 2
			if bezier(mid, ax, bx) < x {
				lo = mid
			} else {
				hi = mid
			}
		}
		return float32(bezier((lo+hi)/2, ay, by))
	}
}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}
