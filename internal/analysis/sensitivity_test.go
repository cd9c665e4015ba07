package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ropesim/internal/catenary"
)

func TestMassSensitivityNonPositive(t *testing.T) {
	c, err := MassSensitivity(200, 5, 5000, 100)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 100 {
		t.Fatalf("expected 100 samples, got %d", c.Len())
	}
	if c.Y[0] != 0 {
		t.Errorf("dy/dM at x=0 should be exactly 0, got %g", c.Y[0])
	}
	for i, v := range c.Y {
		if v > 0 {
			t.Errorf("dy/dM positive (%g) at sample %d; more counterweight must lower the rope", v, i)
		}
	}
	// Strictly more negative away from the anchor.
	if !(c.Y[c.Len()-1] < c.Y[1]) {
		t.Error("sensitivity should grow in magnitude along the span")
	}
}

func TestLengthSensitivityDecreasesWithSlack(t *testing.T) {
	c, err := LengthSensitivity(200, 0.1, 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < c.Len(); i++ {
		if c.Y[i] >= c.Y[i-1] {
			t.Fatalf("dh/dL not decreasing at sample %d", i)
		}
	}
	// Spot check the closed form at 1 m of slack.
	want := 0.5 * math.Sqrt(3*200.0/8.0)
	got := 0.0
	for i, s := range c.X {
		if math.Abs(s-1) < 0.03 {
			got = c.Y[i]
			break
		}
	}
	if got == 0 || math.Abs(got-want)/want > 0.05 {
		t.Errorf("dh/dL near 1 m slack %g, want about %g", got, want)
	}
}

func TestTrajectoryFamilyOrdering(t *testing.T) {
	curves, err := TrajectoryFamily(200, 5, []float64{4800, 6000, 7200}, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(curves) != 3 {
		t.Fatalf("expected 3 curves, got %d", len(curves))
	}
	// Heavier counterweights pull the rope flatter: lower sag at midspan.
	mid := 25
	if !(curves[0].Y[mid] > curves[1].Y[mid] && curves[1].Y[mid] > curves[2].Y[mid]) {
		t.Errorf("midspan heights not ordered by counterweight mass: %g, %g, %g",
			curves[0].Y[mid], curves[1].Y[mid], curves[2].Y[mid])
	}
}

func TestSensitivityValidation(t *testing.T) {
	if _, err := MassSensitivity(-1, 5, 5000, 10); !errors.Is(err, catenary.ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := LengthSensitivity(200, 0, 5, 10); !errors.Is(err, catenary.ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := TrajectoryFamily(200, 5, []float64{-10}, 10); !errors.Is(err, catenary.ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}
