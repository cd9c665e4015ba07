// Package solve provides small, deterministic root finders for the
// equilibrium equations: a bracketing bisection method for scalar
// problems and a damped Newton iteration with numeric Jacobian for
// low-dimensional systems. Both report iteration counts and residual
// history so convergence behavior can be asserted in tests.
package solve
