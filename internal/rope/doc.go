// Package rope models a heavy, inextensible ropeway loaded at one point
// by a gondola.
//
// A System fixes the anchor geometry, rope length and density, gondola
// weight and the counterweight-induced horizontal tension at the lower
// anchor. For a given gondola position the loaded rope is a pair of
// catenary arcs meeting at a kink; SolveAt finds the kink height and the
// upper arc's shape parameter so that total rope length is conserved and
// vertical forces balance at the kink. SolveUnloaded finds the single
// catenary the rope assumes with no gondola attached.
package rope
