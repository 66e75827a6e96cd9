// Package app contains the renderer's lifecycle. It resolves settings, wires
// the script watcher, parser, turtle, rasterizer and frame presenter together,
// and drives the frame loop, decoupled from any specific entrypoint like a
// CLI.
package app
