// Package turtle executes parsed scripts on a resettable turtle.
//
// The turtle starts at a fixed position facing heading 0 (along +x). Headings
// are degrees, normalized to [0, 360), and grow clockwise on screen because
// the y axis points down. Every move appends one segment to the path, which
// the rasterizer later turns into pixels.
package turtle
