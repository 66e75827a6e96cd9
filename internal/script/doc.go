// Package script parses turtle scripts.
//
// A script is plain text with one instruction per line:
//
//	<indent>*<keyword> <signed integer>
//
// The keyword is one of move, turn or repeat. The number of leading indent
// markers is the scope depth of the instruction. Blank lines and lines whose
// first token starts with '#' are ignored, and a '#' token after the argument
// starts a trailing comment.
//
// Parse produces a Program holding both the flat command sequence and an
// explicit block tree. A repeat takes as its body everything collected so far
// in the innermost block at its own depth, including nested deeper blocks and
// earlier repeats, and replaces it with a single Repeat statement. A repeat
// that finds its block empty (the first instruction, or the first one after
// entering a deeper scope) is kept as an orphan for the turtle to reject at
// execution time.
package script
