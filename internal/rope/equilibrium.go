package rope

import (
	"github.com/san-kum/ropesim/internal/catenary"
	"github.com/san-kum/ropesim/internal/solve"
)

// Configuration is one solved equilibrium of the loaded rope: two arcs
// meeting at the kink (the gondola) with length conserved and vertical
// forces balanced.
type Configuration struct {
	XG, YG float64 // gondola position
	Lower  catenary.Arc
	Upper  catenary.Arc

	Iterations int
	Residual   float64
}

// Guess seeds the root-find for one gondola position. The sweep passes
// the previous sample's solution here for continuation.
type Guess struct {
	YG      float64
	ShapeUp float64
}

// minimum shape parameter the iteration is allowed to visit; the
// physical root is far from it, this only keeps cosh arguments finite.
const shapeFloor = 1e-3

// Residuals evaluates the two equilibrium residuals for gondola position
// xg and trial unknowns (yg, aUp):
//
//	length:  len(lower, 0..xg) + len(upper, xg..D) - L
//	force:   Vup(xg) - Vlow(xg) - W
//
// The lower arc's shape parameter is pinned by the counterweight tension,
// the upper arc's differs because it carries the gondola as well as the
// rope above the kink.
func (s System) Residuals(xg, yg, aUp float64) (length, force float64, err error) {
	lower, err := catenary.Through(s.ShapeLow(), 0, 0, xg, yg)
	if err != nil {
		return 0, 0, err
	}
	upper, err := catenary.Through(aUp, xg, yg, s.Span, s.Rise)
	if err != nil {
		return 0, 0, err
	}

	length = lower.Length(0, xg) + upper.Length(xg, s.Span) - s.Length
	force = upper.VerticalTension(xg, s.Density, s.Gravity) -
		lower.VerticalTension(xg, s.Density, s.Gravity) - s.Weight()
	return length, force, nil
}

// SolveAt finds the equilibrium configuration for gondola position xg.
// It validates eagerly, then runs a damped Newton iteration on
// (yg, aUp). A failed iteration surfaces as a ConvergenceError from the
// solve package; the caller decides whether to retry or abort.
func (s System) SolveAt(xg float64, guess Guess, opt solve.Options) (Configuration, error) {
	if err := s.Validate(); err != nil {
		return Configuration{}, err
	}
	if err := s.ValidatePosition(xg); err != nil {
		return Configuration{}, err
	}

	residual := func(u []float64) ([]float64, error) {
		length, force, err := s.Residuals(xg, u[0], u[1])
		if err != nil {
			return nil, err
		}
		return []float64{length, force}, nil
	}
	opt.Project = func(u []float64) []float64 {
		if u[1] < shapeFloor {
			u[1] = shapeFloor
		}
		return u
	}

	res, err := solve.Newton(residual, []float64{guess.YG, guess.ShapeUp}, opt)
	if err != nil {
		return Configuration{}, err
	}

	yg, aUp := res.Root[0], res.Root[1]
	lower, err := catenary.Through(s.ShapeLow(), 0, 0, xg, yg)
	if err != nil {
		return Configuration{}, err
	}
	upper, err := catenary.Through(aUp, xg, yg, s.Span, s.Rise)
	if err != nil {
		return Configuration{}, err
	}

	return Configuration{
		XG:         xg,
		YG:         yg,
		Lower:      lower,
		Upper:      upper,
		Iterations: res.Iterations,
		Residual:   res.Residual,
	}, nil
}

// DefaultGuess seeds a cold start from the unloaded rope: the kink is
// expected near the unloaded height and the upper arc near the
// counterweight shape parameter.
func (s System) DefaultGuess(xg float64, unloaded catenary.Arc) Guess {
	return Guess{
		YG:      unloaded.Y(xg) - 0.01*s.Span,
		ShapeUp: s.ShapeLow() * 1.05,
	}
}
