package solve

import (
	"math"
)

// Func is a residual vector as a function of the unknowns.
type Func func(x []float64) ([]float64, error)

// Options control a root-find. The zero value is completed by Defaults.
type Options struct {
	Tol     float64 // convergence threshold on the residual 2-norm
	MaxIter int
	// Project, if set, maps an iterate back into the feasible region
	// before the residual is evaluated (e.g. clamping a shape parameter
	// to stay positive).
	Project func(x []float64) []float64
}

const (
	DefaultTol     = 1e-8
	DefaultMaxIter = 50
)

func (o Options) withDefaults() Options {
	if o.Tol <= 0 {
		o.Tol = DefaultTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}
	return o
}

// Result reports a finished (or failed) root-find.
type Result struct {
	Root       []float64
	Iterations int
	Residual   float64   // final residual 2-norm
	History    []float64 // residual norm per iteration
}

// Newton runs a damped Newton iteration with forward-difference Jacobian
// from x0. It succeeds when the residual 2-norm drops below opt.Tol and
// fails with a ConvergenceError wrapping ErrMaxIterations otherwise.
// Steps that do not reduce the residual are halved up to eight times
// before being accepted as-is.
func Newton(f Func, x0 []float64, opt Options) (Result, error) {
	opt = opt.withDefaults()
	n := len(x0)

	x := append([]float64(nil), x0...)
	if opt.Project != nil {
		x = opt.Project(x)
	}

	res := Result{History: make([]float64, 0, opt.MaxIter)}

	r, err := f(x)
	if err != nil {
		return res, err
	}
	norm := norm2(r)

	for iter := 0; iter < opt.MaxIter; iter++ {
		res.Iterations = iter
		res.Residual = norm
		res.Root = append(res.Root[:0], x...)
		res.History = append(res.History, norm)

		if norm < opt.Tol {
			return res, nil
		}

		jac, err := jacobian(f, x, r)
		if err != nil {
			return res, err
		}
		step, err := solveLinear(jac, r)
		if err != nil {
			return res, &ConvergenceError{Iterations: iter, Residual: norm, Wrapped: err}
		}

		// Backtracking: halve the step until the residual shrinks.
		scale := 1.0
		var trial []float64
		var rTrial []float64
		var normTrial float64
		accepted := false
		for k := 0; k < 8; k++ {
			trial = make([]float64, n)
			for i := range trial {
				trial[i] = x[i] - scale*step[i]
			}
			if opt.Project != nil {
				trial = opt.Project(trial)
			}
			rTrial, err = f(trial)
			if err == nil {
				normTrial = norm2(rTrial)
				if normTrial < norm {
					accepted = true
					break
				}
			}
			scale *= 0.5
		}
		if !accepted {
			if err != nil {
				return res, err
			}
			// Accept the most damped step anyway; the next Jacobian may
			// point somewhere better.
		}

		x = trial
		r = rTrial
		norm = normTrial
	}

	res.Iterations = opt.MaxIter
	res.Residual = norm
	res.Root = append(res.Root[:0], x...)
	res.History = append(res.History, norm)
	if norm < opt.Tol {
		return res, nil
	}
	return res, &ConvergenceError{Iterations: opt.MaxIter, Residual: norm, Wrapped: ErrMaxIterations}
}

// jacobian builds the forward-difference Jacobian of f at x, reusing the
// residual r0 = f(x).
func jacobian(f Func, x, r0 []float64) ([][]float64, error) {
	n := len(x)
	m := len(r0)
	jac := make([][]float64, m)
	for i := range jac {
		jac[i] = make([]float64, n)
	}

	xh := append([]float64(nil), x...)
	for j := 0; j < n; j++ {
		h := 1e-7 * math.Max(math.Abs(x[j]), 1)
		xh[j] = x[j] + h
		rh, err := f(xh)
		if err != nil {
			// Fall back to a backward difference at domain boundaries.
			xh[j] = x[j] - h
			rh, err = f(xh)
			if err != nil {
				return nil, err
			}
			h = -h
		}
		for i := 0; i < m; i++ {
			jac[i][j] = (rh[i] - r0[i]) / h
		}
		xh[j] = x[j]
	}
	return jac, nil
}

// solveLinear solves jac * step = r by Gaussian elimination with
// partial pivoting. The system is tiny (two unknowns in practice).
func solveLinear(jac [][]float64, r []float64) ([]float64, error) {
	n := len(r)
	a := make([][]float64, n)
	for i := range a {
		a[i] = append(append([]float64(nil), jac[i]...), r[i])
	}

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-14 {
			return nil, ErrSingularJacobian
		}
		a[col], a[pivot] = a[pivot], a[col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k <= n; k++ {
				a[row][k] -= factor * a[col][k]
			}
		}
	}

	step := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := a[i][n]
		for k := i + 1; k < n; k++ {
			sum -= a[i][k] * step[k]
		}
		step[i] = sum / a[i][i]
	}
	return step, nil
}

func norm2(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
