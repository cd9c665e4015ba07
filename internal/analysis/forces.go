package analysis

import (
	"math"

	"github.com/san-kum/ropesim/internal/catenary"
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/trajectory"
)

// ForceProfile holds the force curves along the span for a gondola
// riding the given rope shape.
type ForceProfile struct {
	Traction trajectory.Curve // pull needed along the slope (N)
	Tension  trajectory.Curve // rope tension magnitude (N)
	AngleDeg trajectory.Curve // slope angle (degrees)
}

// Forces samples the traction force m*g*sin(theta), the cable tension
// and the slope angle along [0, D] for a gondola on the arc. The arc is
// normally the unloaded rope shape; treating it as a rigid rail is the
// standard approximation for haul-rope sizing.
func Forces(sys rope.System, arc catenary.Arc, samples int) ForceProfile {
	if samples < 2 {
		samples = 2
	}
	p := ForceProfile{
		Traction: trajectory.Curve{Label: "Traction Force", Unit: "N"},
		Tension:  trajectory.Curve{Label: "Cable Tension", Unit: "N"},
		AngleDeg: trajectory.Curve{Label: "Slope Angle", Unit: "deg"},
	}

	step := sys.Span / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := float64(i) * step
		theta := math.Atan(arc.Slope(x))

		p.Traction.Append(x, sys.Weight()*math.Sin(theta))
		p.Tension.Append(x, arc.Tension(x, sys.Density, sys.Gravity))
		p.AngleDeg.Append(x, theta*180/math.Pi)
	}
	return p
}

// MaxTraction is the largest pull the haul rope must supply.
func (p ForceProfile) MaxTraction() float64 {
	max := 0.0
	for _, f := range p.Traction.Y {
		if math.Abs(f) > max {
			max = math.Abs(f)
		}
	}
	return max
}

// MaxTension is the largest cable tension along the span.
func (p ForceProfile) MaxTension() float64 {
	return p.Tension.MaxY()
}
