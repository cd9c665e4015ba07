package rope

import (
	"fmt"
	"math"

	"github.com/san-kum/ropesim/internal/catenary"
	"github.com/san-kum/ropesim/internal/solve"
)

// Counterweight sizing: the classical ropeway design question of how much
// counterweight mass makes the cabin depart horizontally from the lower
// station. Both variants reduce to a one-unknown bracketed root-find on
// the shape parameter; the counterweight mass is then lambda*a, because
// a = T/(lambda*g) and T = M*g.

// CounterweightUnloaded sizes the counterweight so the *empty* rope
// leaves the lower anchor horizontally and still reaches the upper
// anchor: a*(cosh(D/a) - 1) = H.
func (s System) CounterweightUnloaded(opt solve.Options) (mass, shape float64, err error) {
	if s.Span <= 0 || s.Rise <= 0 || s.Density <= 0 {
		return 0, 0, fmt.Errorf("%w: counterweight sizing needs positive span, rise and density",
			catenary.ErrInvalidGeometry)
	}

	f := func(a float64) float64 {
		return a*(math.Cosh(s.Span/a)-1) - s.Rise
	}
	return s.counterweightRoot(f, opt)
}

// CounterweightLoaded sizes the counterweight so the rope leaves
// horizontally with the gondola attached at the lower station. The
// departure angle needed just to carry the gondola is
// alpha = asinh(W / (lambda*g*a)), giving the residual
//
//	a*(cosh(D/a + alpha) - cosh(alpha)) - H
func (s System) CounterweightLoaded(opt solve.Options) (mass, shape float64, err error) {
	if s.Span <= 0 || s.Rise <= 0 || s.Density <= 0 {
		return 0, 0, fmt.Errorf("%w: counterweight sizing needs positive span, rise and density",
			catenary.ErrInvalidGeometry)
	}
	if s.Gravity <= 0 {
		return 0, 0, fmt.Errorf("%w: gravity %g must be positive", catenary.ErrInvalidGeometry, s.Gravity)
	}

	f := func(a float64) float64 {
		alpha := math.Asinh(s.Weight() / (s.Density * s.Gravity * a))
		return a*(math.Cosh(s.Span/a+alpha)-math.Cosh(alpha)) - s.Rise
	}
	return s.counterweightRoot(f, opt)
}

func (s System) counterweightRoot(f solve.ScalarFunc, opt solve.Options) (mass, shape float64, err error) {
	lo, hi, err := solve.BracketDecreasing(f, 0.05*s.Span, 40*s.Span)
	if err != nil {
		return 0, 0, err
	}
	if opt.MaxIter <= 0 {
		opt.MaxIter = 200
	}
	res, err := solve.Bisect(f, lo, hi, opt)
	if err != nil {
		return 0, 0, err
	}
	shape = res.Root[0]
	return s.Density * shape, shape, nil
}
