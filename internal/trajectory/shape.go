package trajectory

import "github.com/san-kum/ropesim/internal/rope"

// Shape samples the loaded rope polyline for one solved configuration:
// the lower arc from the anchor to the kink, then the upper arc to the
// far anchor. Renderers draw this directly; the kink shows up as the
// characteristic V under the gondola.
func Shape(cfg rope.Configuration, span float64, samplesPerArc int) Curve {
	if samplesPerArc < 2 {
		samplesPerArc = 2
	}
	c := Curve{Label: "Loaded Rope", Unit: UnitMeters}

	xs, ys := cfg.Lower.Sample(0, cfg.XG, samplesPerArc)
	c.X = append(c.X, xs...)
	c.Y = append(c.Y, ys...)

	xs, ys = cfg.Upper.Sample(cfg.XG, span, samplesPerArc)
	// Skip the duplicated kink sample.
	c.X = append(c.X, xs[1:]...)
	c.Y = append(c.Y, ys[1:]...)
	return c
}
