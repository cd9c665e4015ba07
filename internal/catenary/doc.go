// Package catenary evaluates single catenary arcs in closed form.
//
// An arc is y(x) = a*cosh((x-x0)/a) + c, where a is the shape parameter
// (horizontal tension over weight per unit length), x0 the horizontal
// position of the vertex, and c a vertical offset. [Through] fits an arc
// of given shape parameter through two endpoints; length, slope and
// tension along the arc all have closed forms.
package catenary
