package catenary

import (
	"errors"
	"math"
	"testing"
)

func TestThroughEndpointRoundTrip(t *testing.T) {
	cases := []struct {
		name           string
		a              float64
		x1, y1, x2, y2 float64
	}{
		{"flat span", 250, 0, 0, 500, 0},
		{"rising span", 544, 0, 0, 500, 50},
		{"steep span", 120, 10, -5, 190, 300},
		{"descending span", 80, 0, 40, 60, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			arc, err := Through(tc.a, tc.x1, tc.y1, tc.x2, tc.y2)
			if err != nil {
				t.Fatalf("Through returned error: %v", err)
			}
			if d := math.Abs(arc.Y(tc.x1) - tc.y1); d > 1e-9 {
				t.Errorf("y(x1) off by %g", d)
			}
			if d := math.Abs(arc.Y(tc.x2) - tc.y2); d > 1e-9 {
				t.Errorf("y(x2) off by %g", d)
			}
		})
	}
}

func TestThroughInvalidGeometry(t *testing.T) {
	if _, err := Through(0, 0, 0, 100, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("a=0: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := Through(-5, 0, 0, 100, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("a<0: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := Through(100, 50, 0, 50, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("coincident x: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := Through(100, 80, 0, 20, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("reversed x: expected ErrInvalidGeometry, got %v", err)
	}
}

func TestLengthMatchesNumericIntegration(t *testing.T) {
	arc, err := Through(300, 0, 0, 400, 60)
	if err != nil {
		t.Fatal(err)
	}

	// Trapezoid rule on sqrt(1 + y'^2).
	const n = 200000
	h := 400.0 / n
	sum := 0.0
	for i := 0; i <= n; i++ {
		x := float64(i) * h
		w := 1.0
		if i == 0 || i == n {
			w = 0.5
		}
		s := arc.Slope(x)
		sum += w * math.Sqrt(1+s*s)
	}
	numeric := sum * h

	closed := arc.Length(0, 400)
	if d := math.Abs(closed-numeric) / numeric; d > 1e-8 {
		t.Errorf("closed-form length %g vs numeric %g (rel err %g)", closed, numeric, d)
	}
}

func TestLengthExceedsChord(t *testing.T) {
	arc, err := Through(150, 0, 0, 200, 30)
	if err != nil {
		t.Fatal(err)
	}
	chord := math.Hypot(200, 30)
	if l := arc.Length(0, 200); l < chord {
		t.Errorf("arc length %g shorter than chord %g", l, chord)
	}
}

func TestVertexProperties(t *testing.T) {
	arc, err := Through(200, 0, 0, 300, 20)
	if err != nil {
		t.Fatal(err)
	}
	if s := arc.Slope(arc.X0); math.Abs(s) > 1e-12 {
		t.Errorf("slope at vertex should vanish, got %g", s)
	}

	density, gravity := 5.0, 9.81
	th := arc.HorizontalTension(density, gravity)
	if tv := arc.Tension(arc.X0, density, gravity); math.Abs(tv-th) > 1e-9 {
		t.Errorf("tension at vertex %g should equal horizontal tension %g", tv, th)
	}
}

func TestSampleCoversSpan(t *testing.T) {
	arc, err := Through(100, 0, 0, 50, 5)
	if err != nil {
		t.Fatal(err)
	}
	xs, ys := arc.Sample(0, 50, 11)
	if len(xs) != 11 || len(ys) != 11 {
		t.Fatalf("expected 11 samples, got %d/%d", len(xs), len(ys))
	}
	if xs[0] != 0 || xs[10] != 50 {
		t.Errorf("sample endpoints %g..%g, want 0..50", xs[0], xs[10])
	}
	if math.Abs(ys[0]) > 1e-9 {
		t.Errorf("y at left endpoint %g, want 0", ys[0])
	}
}
