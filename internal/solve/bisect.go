package solve

import "math"

// ScalarFunc is a scalar residual of a single unknown.
type ScalarFunc func(x float64) float64

// Bisect finds a root of f in [lo, hi] by bisection. The endpoints must
// bracket a sign change; infinities at an endpoint count as signed values,
// which lets callers bracket functions that blow up near a = 0.
// Convergence requires |f(x)| < opt.Tol; the interval shrinking to
// floating-point resolution without meeting the tolerance is reported as
// a ConvergenceError.
func Bisect(f ScalarFunc, lo, hi float64, opt Options) (Result, error) {
	opt = opt.withDefaults()

	flo := f(lo)
	fhi := f(hi)
	res := Result{History: make([]float64, 0, opt.MaxIter)}

	if flo == 0 {
		res.Root = []float64{lo}
		return res, nil
	}
	if fhi == 0 {
		res.Root = []float64{hi}
		return res, nil
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return res, ErrNoBracket
	}

	var mid, fmid float64
	for iter := 0; iter < opt.MaxIter; iter++ {
		mid = 0.5 * (lo + hi)
		fmid = f(mid)

		res.Iterations = iter + 1
		res.Residual = math.Abs(fmid)
		res.Root = []float64{mid}
		res.History = append(res.History, res.Residual)

		if math.Abs(fmid) < opt.Tol {
			return res, nil
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
		if hi-lo <= math.Abs(mid)*1e-15 {
			break
		}
	}

	if math.Abs(fmid) < opt.Tol {
		return res, nil
	}
	return res, &ConvergenceError{Iterations: res.Iterations, Residual: res.Residual, Wrapped: ErrMaxIterations}
}

// BracketDecreasing expands [lo, hi] until a monotonically decreasing f
// changes sign over it, doubling hi (and halving lo if needed) up to 64
// times. It returns ErrNoBracket when no sign change can be found.
func BracketDecreasing(f ScalarFunc, lo, hi float64) (float64, float64, error) {
	for i := 0; i < 64 && !(f(lo) > 0); i++ {
		lo *= 0.5
	}
	for i := 0; i < 64 && !(f(hi) < 0); i++ {
		hi *= 2
	}
	if f(lo) > 0 && f(hi) < 0 {
		return lo, hi, nil
	}
	return lo, hi, ErrNoBracket
}
