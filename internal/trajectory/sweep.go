package trajectory

import (
	"fmt"

	"github.com/san-kum/ropesim/internal/catenary"
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/solve"
)

// FailurePolicy decides what a sweep does when one sample refuses to
// converge even after the perturbed-guess retry.
type FailurePolicy int

const (
	// FailAbort propagates the ConvergenceError and discards the sweep.
	// This is the default: a non-converging sample usually means the
	// geometry/length combination is infeasible, which the caller must see.
	FailAbort FailurePolicy = iota
	// FailSkip records the sample position in Result.Gaps and continues
	// with the next sample, cold-started from the unloaded shape.
	FailSkip
)

// Config holds the sweep parameters.
type Config struct {
	Samples      int     // trajectory samples across the span
	Margin       float64 // distance from each anchor excluded from the sweep (m)
	ShapeSamples int     // dense samples for the unloaded/ideal reference curves
	Tol          float64
	MaxIter      int
	OnFailure    FailurePolicy
}

// DefaultConfig returns sweep parameters suitable for plotting.
func DefaultConfig() Config {
	return Config{
		Samples:      80,
		Margin:       0, // 0 means 2% of the span
		ShapeSamples: 200,
		Tol:          solve.DefaultTol,
		MaxIter:      solve.DefaultMaxIter,
		OnFailure:    FailAbort,
	}
}

// Result bundles everything one sweep produces.
type Result struct {
	Unloaded Curve // dense unloaded rope shape over [0, D]
	Loaded   Curve // gondola trajectory, one point per converged sample
	Ideal    Curve // massless-rope ellipse trajectory

	UnloadedArc catenary.Arc
	Configs     []rope.Configuration // per-sample solved equilibria
	Gaps        []float64            // sample positions skipped under FailSkip
}

// Run executes the full sweep for one system. The unloaded single-arc
// solve runs exactly once; each trajectory sample is then solved with the
// previous solution as initial guess. A sample that fails gets one retry
// from a perturbed cold guess before the failure policy applies.
func Run(sys rope.System, cfg Config) (*Result, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	if cfg.Samples < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least 2 samples, got %d",
			catenary.ErrInvalidGeometry, cfg.Samples)
	}
	margin := cfg.Margin
	if margin <= 0 {
		margin = 0.02 * sys.Span
	}
	if 2*margin >= sys.Span {
		return nil, fmt.Errorf("%w: margin %g too large for span %g",
			catenary.ErrInvalidGeometry, margin, sys.Span)
	}
	if cfg.ShapeSamples < 2 {
		cfg.ShapeSamples = 200
	}
	opt := solve.Options{Tol: cfg.Tol, MaxIter: cfg.MaxIter}

	// The unloaded bisection needs more iterations than the per-sample
	// Newton solves; let it pick its own bound.
	unloaded, _, err := sys.SolveUnloaded(solve.Options{Tol: cfg.Tol})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Unloaded:    Curve{Label: LabelUnloaded, Unit: UnitMeters},
		Loaded:      Curve{Label: LabelLoaded, Unit: UnitMeters},
		Ideal:       Curve{Label: LabelIdeal, Unit: UnitMeters},
		UnloadedArc: unloaded,
		Configs:     make([]rope.Configuration, 0, cfg.Samples),
	}

	xs, ys := unloaded.Sample(0, sys.Span, cfg.ShapeSamples)
	res.Unloaded.X, res.Unloaded.Y = xs, ys

	ideal, err := IdealCurve(sys.Span, sys.Rise, sys.Length, cfg.ShapeSamples)
	if err != nil {
		return nil, err
	}
	res.Ideal = ideal

	lo := margin
	hi := sys.Span - margin
	step := (hi - lo) / float64(cfg.Samples-1)

	var warm *rope.Guess
	for i := 0; i < cfg.Samples; i++ {
		xg := lo + float64(i)*step

		guess := sys.DefaultGuess(xg, unloaded)
		if warm != nil {
			guess = *warm
		}

		cfgSolved, err := sys.SolveAt(xg, guess, opt)
		if err != nil {
			// One retry from a perturbed cold start before giving up:
			// the warm guess can sit in the wrong basin right after a gap.
			retry := sys.DefaultGuess(xg, unloaded)
			retry.YG -= 0.02 * sys.Span
			retry.ShapeUp = sys.ShapeLow() * 1.2
			cfgSolved, err = sys.SolveAt(xg, retry, opt)
		}
		if err != nil {
			if cfg.OnFailure == FailSkip {
				res.Gaps = append(res.Gaps, xg)
				warm = nil
				continue
			}
			return nil, fmt.Errorf("sweep sample %d (x=%g): %w", i, xg, err)
		}

		res.Configs = append(res.Configs, cfgSolved)
		res.Loaded.Append(cfgSolved.XG, cfgSolved.YG)
		warm = &rope.Guess{YG: cfgSolved.YG, ShapeUp: cfgSolved.Upper.A}
	}

	return res, nil
}
