package catenary

import (
	"fmt"
	"math"
)

// Arc is a single catenary segment y(x) = a*cosh((x-x0)/a) + c.
// The zero value is not usable; construct arcs with Through.
type Arc struct {
	A  float64 // shape parameter, horizontal tension / (density * gravity)
	X0 float64 // horizontal position of the vertex
	C  float64 // vertical offset
}

// Through fits an arc with shape parameter a through the endpoints
// (x1, y1) and (x2, y2). The vertex offset follows from the identity
//
//	y2 - y1 = 2a * sinh(dx/2a) * sinh((xm-x0)/a)
//
// with xm the midpoint of the endpoints, so
//
//	x0 = xm - a * asinh((y2-y1) / (2a*sinh(dx/2a)))
//
// An arc exists for any a > 0 and x1 != x2.
func Through(a, x1, y1, x2, y2 float64) (Arc, error) {
	if a <= 0 || math.IsNaN(a) {
		return Arc{}, fmt.Errorf("%w: shape parameter a=%g must be positive", ErrInvalidGeometry, a)
	}
	if x2 <= x1 {
		return Arc{}, fmt.Errorf("%w: endpoints must satisfy x1 < x2 (got %g, %g)", ErrInvalidGeometry, x1, x2)
	}

	xm := 0.5 * (x1 + x2)
	s := math.Sinh((x2 - x1) / (2 * a))
	x0 := xm - a*math.Asinh((y2-y1)/(2*a*s))
	c := y1 - a*math.Cosh((x1-x0)/a)

	return Arc{A: a, X0: x0, C: c}, nil
}

// Y evaluates the arc height at x.
func (arc Arc) Y(x float64) float64 {
	return arc.A*math.Cosh((x-arc.X0)/arc.A) + arc.C
}

// Slope is dy/dx at x.
func (arc Arc) Slope(x float64) float64 {
	return math.Sinh((x - arc.X0) / arc.A)
}

// Length is the arc length between x1 and x2:
//
//	a * [sinh((x2-x0)/a) - sinh((x1-x0)/a)]
func (arc Arc) Length(x1, x2 float64) float64 {
	return arc.A * (math.Sinh((x2-arc.X0)/arc.A) - math.Sinh((x1-arc.X0)/arc.A))
}

// Tension is the rope tension magnitude at x for a rope of the given
// linear density under gravity: T(x) = lambda*g*a*cosh((x-x0)/a).
func (arc Arc) Tension(x, density, gravity float64) float64 {
	return density * gravity * arc.A * math.Cosh((x-arc.X0)/arc.A)
}

// VerticalTension is the vertical component of the tension at x,
// lambda*g*a*sinh((x-x0)/a). It equals the weight of rope between the
// vertex and x, which is what force balance at a load point needs.
func (arc Arc) VerticalTension(x, density, gravity float64) float64 {
	return density * gravity * arc.A * arc.Slope(x)
}

// HorizontalTension is the (constant) horizontal tension component.
func (arc Arc) HorizontalTension(density, gravity float64) float64 {
	return density * gravity * arc.A
}

// Sample evaluates the arc at n evenly spaced positions over [x1, x2].
func (arc Arc) Sample(x1, x2 float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (x2 - x1) / float64(n-1)
	for i := 0; i < n; i++ {
		x := x1 + float64(i)*step
		xs[i] = x
		ys[i] = arc.Y(x)
	}
	return xs, ys
}
