package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/ropesim/internal/catenary"
	"github.com/san-kum/ropesim/internal/rope"
)

func testSystem() rope.System {
	return rope.System{
		Span:        200,
		Rise:        50,
		Length:      210,
		Density:     5,
		Gravity:     rope.Gravity,
		GondolaMass: 500,
		TensionH:    5000 * rope.Gravity, // 5 t counterweight
	}
}

func TestForcesAtVertex(t *testing.T) {
	sys := testSystem()
	// Horizontal-departure rail: vertex at the lower anchor.
	arc := catenary.Arc{A: sys.ShapeLow(), X0: 0, C: -sys.ShapeLow()}

	p := Forces(sys, arc, 101)

	if f := p.Traction.Y[0]; math.Abs(f) > 1e-9 {
		t.Errorf("traction at the horizontal departure point should vanish, got %g", f)
	}
	if tn := p.Tension.Y[0]; math.Abs(tn-sys.TensionH) > 1e-6 {
		t.Errorf("tension at the vertex %g, want horizontal tension %g", tn, sys.TensionH)
	}
	if a := p.AngleDeg.Y[0]; math.Abs(a) > 1e-9 {
		t.Errorf("angle at the vertex %g deg, want 0", a)
	}
}

func TestForcesMonotoneUphill(t *testing.T) {
	sys := testSystem()
	arc := catenary.Arc{A: sys.ShapeLow(), X0: 0, C: -sys.ShapeLow()}

	p := Forces(sys, arc, 50)

	// Right of the vertex both traction and tension grow with x.
	for i := 1; i < p.Traction.Len(); i++ {
		if p.Traction.Y[i] <= p.Traction.Y[i-1] {
			t.Fatalf("traction not increasing at sample %d", i)
		}
		if p.Tension.Y[i] <= p.Tension.Y[i-1] {
			t.Fatalf("tension not increasing at sample %d", i)
		}
	}

	if p.MaxTraction() != p.Traction.Y[p.Traction.Len()-1] {
		t.Error("max traction should sit at the upper end of the span")
	}
	if p.MaxTension() != p.Tension.Y[p.Tension.Len()-1] {
		t.Error("max tension should sit at the upper end of the span")
	}
}

func TestForcesBoundedByWeight(t *testing.T) {
	sys := testSystem()
	arc := catenary.Arc{A: sys.ShapeLow(), X0: 0, C: -sys.ShapeLow()}

	p := Forces(sys, arc, 80)
	for i, f := range p.Traction.Y {
		if math.Abs(f) >= sys.Weight() {
			t.Errorf("traction %g at sample %d exceeds gondola weight %g", f, i, sys.Weight())
		}
	}
}
