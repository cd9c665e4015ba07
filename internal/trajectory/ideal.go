package trajectory

import (
	"fmt"
	"math"

	"github.com/san-kum/ropesim/internal/catenary"
)

// IdealCurve is the trajectory of a load hanging from a massless,
// inextensible rope of length L between (0,0) and (D,H): an arc of the
// ellipse with the anchors as foci. Eliminating the two rope segments
// from r1 + r2 = L gives the quadratic
//
//	4(L^2-H^2)*y^2 - 4KH*y + (4L^2x^2 - K^2) = 0,  K = L^2 - D^2 + 2xD - H^2
//
// of which the lower root is the hanging position. No iteration involved;
// this is the closed-form reference the heavy-rope solver is contrasted
// against.
func IdealCurve(span, rise, length float64, samples int) (Curve, error) {
	if span <= 0 {
		return Curve{}, fmt.Errorf("%w: span %g must be positive", catenary.ErrInvalidGeometry, span)
	}
	if chord := math.Hypot(span, rise); length <= chord {
		return Curve{}, fmt.Errorf("%w: rope length %g must exceed anchor distance %g",
			catenary.ErrInvalidGeometry, length, chord)
	}
	if samples < 2 {
		samples = 2
	}

	c := Curve{Label: LabelIdeal, Unit: UnitMeters}
	a := 4 * (length*length - rise*rise)
	step := span / float64(samples-1)

	for i := 0; i < samples; i++ {
		x := float64(i) * step
		k := length*length - span*span + 2*x*span - rise*rise
		b := -4 * k * rise
		cc := 4*length*length*x*x - k*k

		disc := b*b - 4*a*cc
		if disc < 0 {
			// Does not happen on [0, D] for feasible L; guard anyway.
			continue
		}
		y := (-b - math.Sqrt(disc)) / (2 * a)
		c.Append(x, y)
	}
	return c, nil
}
