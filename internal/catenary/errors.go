package catenary

import "errors"

// Domain errors for catenary construction and evaluation.
var (
	// ErrInvalidGeometry indicates non-physical input: a non-positive shape
	// parameter, coincident endpoints, or an infeasible anchor/length combination.
	ErrInvalidGeometry = errors.New("catenary: invalid geometry")
)
