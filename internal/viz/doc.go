// Package viz renders sweep results: a bubbletea terminal animation of
// the gondola traversing the span, and gonum/plot PNG charts of the
// trajectory curves. Everything here consumes the plain (x, y)
// sequences produced by the trajectory package; no solving happens in
// this layer.
package viz
