// Package geometry holds the analytic shapes used to turn a turtle trace into
// pixels: points, lines, rectangles and triangles, along with the point
// generators that rasterize them onto the integer lattice.
//
// Shapes are described in floating-point screen coordinates (x grows to the
// right, y grows downwards). Every generator returns integer lattice points as
// image.Point values, rounded half away from zero.
package geometry
