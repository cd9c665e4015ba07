package rope

import (
	"fmt"
	"math"

	"github.com/san-kum/ropesim/internal/catenary"
)

// Gravity is the default gravitational acceleration (m/s^2).
const Gravity = 9.81

// System describes one ropeway configuration. The lower anchor sits at
// (0, 0), the upper anchor at (Span, Rise). All units are SI.
type System struct {
	Span    float64 // horizontal anchor distance D (m)
	Rise    float64 // height difference H (m)
	Length  float64 // total rope length L (m)
	Density float64 // rope linear density lambda (kg/m)
	Gravity float64 // m/s^2

	GondolaMass float64 // kg
	TensionH    float64 // counterweight horizontal tension at the lower anchor (N)
}

// Weight is the gondola weight in newtons.
func (s System) Weight() float64 {
	return s.GondolaMass * s.Gravity
}

// ShapeLow is the lower arc's shape parameter, fixed by the counterweight:
// a = T_h / (lambda * g).
func (s System) ShapeLow() float64 {
	return s.TensionH / (s.Density * s.Gravity)
}

// Chord is the straight-line distance between the anchors.
func (s System) Chord() float64 {
	return math.Hypot(s.Span, s.Rise)
}

// Validate rejects non-physical parameters before any solving starts.
func (s System) Validate() error {
	if s.Span <= 0 {
		return fmt.Errorf("%w: span %g must be positive", catenary.ErrInvalidGeometry, s.Span)
	}
	if s.Density <= 0 {
		return fmt.Errorf("%w: density %g must be positive", catenary.ErrInvalidGeometry, s.Density)
	}
	if s.Gravity <= 0 {
		return fmt.Errorf("%w: gravity %g must be positive", catenary.ErrInvalidGeometry, s.Gravity)
	}
	if s.GondolaMass < 0 {
		return fmt.Errorf("%w: gondola mass %g must not be negative", catenary.ErrInvalidGeometry, s.GondolaMass)
	}
	if s.TensionH <= 0 {
		return fmt.Errorf("%w: horizontal tension %g must be positive", catenary.ErrInvalidGeometry, s.TensionH)
	}
	if chord := s.Chord(); s.Length <= chord {
		return fmt.Errorf("%w: rope length %g must exceed anchor distance %g",
			catenary.ErrInvalidGeometry, s.Length, chord)
	}
	return nil
}

// ValidatePosition rejects gondola positions outside the open span.
// The anchors themselves are boundary degenerate cases: one of the two
// arcs collapses there, so the model refuses them instead of returning NaN.
func (s System) ValidatePosition(xg float64) error {
	if xg <= 0 || xg >= s.Span {
		return fmt.Errorf("%w: gondola position %g outside open interval (0, %g)",
			catenary.ErrInvalidGeometry, xg, s.Span)
	}
	return nil
}
