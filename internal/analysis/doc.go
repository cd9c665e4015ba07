// Package analysis derives engineering curves from a solved ropeway.
//
// The package includes:
//
//   - [Forces]: haul-rope traction force, cable tension and slope angle
//     along the span
//   - [MassSensitivity]: trajectory height change per kilogram of
//     counterweight
//   - [LengthSensitivity]: sag sensitivity to cable slack, with its
//     singularity at a taut cable
//   - [TrajectoryFamily]: continuous-rail trajectories over a range of
//     counterweight masses
package analysis
