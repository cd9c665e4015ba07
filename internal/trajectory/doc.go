// Package trajectory sweeps the gondola across the span and collects the
// resulting curves: the unloaded rope shape, the loaded gondola
// trajectory (one equilibrium solve per sample, warm-started from the
// previous one), and the idealized massless-rope ellipse. Output is
// plain (x, y) sequences with label/unit metadata so any rendering
// target can consume them.
package trajectory
