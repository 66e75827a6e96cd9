// Package frame is the display surface: a fixed-size buffer of lit pixels
// that is cleared and rewritten once per redraw, plus presenters that put a
// finished buffer somewhere visible.
package frame
