package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/ropesim/internal/catenary"
	"github.com/san-kum/ropesim/internal/trajectory"
)

// MassSensitivity samples dy/dM over [0, D]: how far the continuous-rail
// trajectory y = (M/lambda)*(cosh(x*lambda/M) - 1) drops per kilogram of
// counterweight added. With u = x*lambda/M,
//
//	dy/dM = (1/lambda) * (cosh(u) - 1 - u*sinh(u))
//
// which is non-positive: more counterweight always flattens the rope.
func MassSensitivity(span, density, mass float64, samples int) (trajectory.Curve, error) {
	if span <= 0 || density <= 0 || mass <= 0 {
		return trajectory.Curve{}, fmt.Errorf("%w: mass sensitivity needs positive span, density and mass",
			catenary.ErrInvalidGeometry)
	}
	if samples < 2 {
		samples = 2
	}

	c := trajectory.Curve{Label: "dy/dM", Unit: "m/kg"}
	step := span / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := float64(i) * step
		u := x * density / mass
		c.Append(x, (math.Cosh(u)-1-u*math.Sinh(u))/density)
	}
	return c, nil
}

// LengthSensitivity samples dh/dL = sqrt(3D / (8*(L-D))) / 2 over a range
// of cable slack L-D: how strongly midspan sag reacts to paying out rope.
// The curve diverges as the cable approaches taut, which is why slack is
// the abscissa and slackMin must stay positive.
func LengthSensitivity(span, slackMin, slackMax float64, samples int) (trajectory.Curve, error) {
	if span <= 0 || slackMin <= 0 || slackMax <= slackMin {
		return trajectory.Curve{}, fmt.Errorf("%w: length sensitivity needs positive span and 0 < slackMin < slackMax",
			catenary.ErrInvalidGeometry)
	}
	if samples < 2 {
		samples = 2
	}

	c := trajectory.Curve{Label: "dh/dL", Unit: "m/m"}
	step := (slackMax - slackMin) / float64(samples-1)
	for i := 0; i < samples; i++ {
		slack := slackMin + float64(i)*step
		c.Append(slack, 0.5*math.Sqrt(3*span/(8*slack)))
	}
	return c, nil
}

// TrajectoryFamily samples the continuous-rail trajectory
// y = a*(cosh(x/a) - 1), a = M/lambda, for each counterweight mass.
// Plotted together the curves show how far off-target a mis-sized
// counterweight lands the cabin.
func TrajectoryFamily(span, density float64, masses []float64, samples int) ([]trajectory.Curve, error) {
	if span <= 0 || density <= 0 {
		return nil, fmt.Errorf("%w: trajectory family needs positive span and density",
			catenary.ErrInvalidGeometry)
	}
	if samples < 2 {
		samples = 2
	}

	curves := make([]trajectory.Curve, 0, len(masses))
	for _, m := range masses {
		if m <= 0 {
			return nil, fmt.Errorf("%w: counterweight mass %g must be positive",
				catenary.ErrInvalidGeometry, m)
		}
		a := m / density
		c := trajectory.Curve{Label: fmt.Sprintf("M=%.0f kg", m), Unit: trajectory.UnitMeters}
		step := span / float64(samples-1)
		for i := 0; i < samples; i++ {
			x := float64(i) * step
			c.Append(x, a*(math.Cosh(x/a)-1))
		}
		curves = append(curves, c)
	}
	return curves, nil
}
