package solve

import (
	"errors"
	"math"
	"testing"
)

// Intersection of the unit circle with y = x: root at (1/sqrt2, 1/sqrt2).
func circleLine(x []float64) ([]float64, error) {
	return []float64{
		x[0]*x[0] + x[1]*x[1] - 1,
		x[1] - x[0],
	}, nil
}

func TestNewtonConverges(t *testing.T) {
	res, err := Newton(circleLine, []float64{1, 0.5}, Options{})
	if err != nil {
		t.Fatalf("Newton failed: %v", err)
	}

	want := 1 / math.Sqrt2
	if math.Abs(res.Root[0]-want) > 1e-7 || math.Abs(res.Root[1]-want) > 1e-7 {
		t.Errorf("root (%g, %g), want (%g, %g)", res.Root[0], res.Root[1], want, want)
	}
	if res.Residual >= DefaultTol {
		t.Errorf("residual %g not below tolerance", res.Residual)
	}
	if res.Iterations == 0 || res.Iterations > 20 {
		t.Errorf("unexpected iteration count %d", res.Iterations)
	}
	if len(res.History) == 0 {
		t.Error("expected residual history")
	}
}

func TestNewtonQuadraticTail(t *testing.T) {
	res, err := Newton(circleLine, []float64{2, 1}, Options{Tol: 1e-12})
	if err != nil {
		t.Fatalf("Newton failed: %v", err)
	}
	// The last recorded pre-convergence residual should already be small:
	// the tail of the iteration contracts at least quadratically.
	h := res.History
	if len(h) >= 2 && h[len(h)-2] > 1e-3 {
		t.Errorf("second-to-last residual %g too large for a Newton tail", h[len(h)-2])
	}
}

func TestNewtonMaxIterations(t *testing.T) {
	// No root: distance from origin is never -1.
	f := func(x []float64) ([]float64, error) {
		return []float64{x[0]*x[0] + 1}, nil
	}

	res, err := Newton(f, []float64{3}, Options{MaxIter: 10})
	if err == nil {
		t.Fatal("expected convergence failure")
	}
	if !errors.Is(err, ErrMaxIterations) {
		t.Errorf("expected ErrMaxIterations, got %v", err)
	}

	var conv *ConvergenceError
	if !errors.As(err, &conv) {
		t.Fatal("expected a *ConvergenceError")
	}
	if conv.Iterations != 10 {
		t.Errorf("Iterations = %d, want 10", conv.Iterations)
	}
	if conv.Residual < 1 {
		t.Errorf("residual %g should stay >= 1 for x^2+1", conv.Residual)
	}
	if res.Residual != conv.Residual {
		t.Errorf("result residual %g != error residual %g", res.Residual, conv.Residual)
	}
}

func TestNewtonProject(t *testing.T) {
	// Root of log(x) - 1 at e; projection keeps iterates positive.
	f := func(x []float64) ([]float64, error) {
		return []float64{math.Log(x[0]) - 1}, nil
	}
	project := func(x []float64) []float64 {
		if x[0] < 1e-9 {
			x[0] = 1e-9
		}
		return x
	}

	res, err := Newton(f, []float64{0.5}, Options{Project: project})
	if err != nil {
		t.Fatalf("Newton failed: %v", err)
	}
	if math.Abs(res.Root[0]-math.E) > 1e-6 {
		t.Errorf("root %g, want e", res.Root[0])
	}
}
